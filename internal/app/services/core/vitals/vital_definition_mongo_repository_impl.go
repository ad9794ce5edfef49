package vitals

import (
	"context"

	"intake-service/internal/app/contracts"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type VitalDefinitionMongoRepository struct {
	Collection *mongo.Collection
}

func NewVitalDefinitionMongoRepository(db *mongo.Client, dbName string) contracts.VitalDefinitionRepository {
	return &VitalDefinitionMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionVitalDefinitions),
	}
}

func (r *VitalDefinitionMongoRepository) FindAll(ctx context.Context) ([]models.VitalDefinition, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var definitions []models.VitalDefinition
	if err := cursor.All(ctx, &definitions); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return definitions, nil
}

func (r *VitalDefinitionMongoRepository) FindByID(ctx context.Context, definitionID string) (*models.VitalDefinition, error) {
	var definition models.VitalDefinition
	err := r.Collection.FindOne(ctx, bson.M{"_id": definitionID}).Decode(&definition)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &definition, nil
}

func (r *VitalDefinitionMongoRepository) FindByKey(ctx context.Context, key string) (*models.VitalDefinition, error) {
	var definition models.VitalDefinition
	err := r.Collection.FindOne(ctx, bson.M{"key": key}).Decode(&definition)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &definition, nil
}

func (r *VitalDefinitionMongoRepository) CreateDefinition(ctx context.Context, definition *models.VitalDefinition) (string, error) {
	if definition.ID == "" {
		definition.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Collection.InsertOne(ctx, definition)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return definition.ID, nil
}

func (r *VitalDefinitionMongoRepository) UpdateDefinition(ctx context.Context, definition *models.VitalDefinition) error {
	update := bson.M{"$set": bson.M{
		"key":    definition.Key,
		"label":  definition.Label,
		"unit":   definition.Unit,
		"minVal": definition.MinVal,
		"maxVal": definition.MaxVal,
	}}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": definition.ID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *VitalDefinitionMongoRepository) DeleteDefinition(ctx context.Context, definitionID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": definitionID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
