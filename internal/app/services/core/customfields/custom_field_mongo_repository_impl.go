package customfields

import (
	"context"

	"intake-service/internal/app/contracts"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CustomFieldMongoRepository stores all shared field definitions in one
// patientConfig document so readers always see the full set at once.
type CustomFieldMongoRepository struct {
	Collection *mongo.Collection
}

func NewCustomFieldMongoRepository(db *mongo.Client, dbName string) contracts.CustomFieldConfigRepository {
	return &CustomFieldMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatientConfig),
	}
}

func (r *CustomFieldMongoRepository) GetPersistedLabels(ctx context.Context) (*models.PersistedCustomLabels, error) {
	var doc models.PersistedCustomLabels
	err := r.Collection.FindOne(ctx, bson.M{"_id": constvars.MongoDocPersistedCustomLabels}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &doc, nil
}

func (r *CustomFieldMongoRepository) UpsertLabels(ctx context.Context, labels []models.CustomFieldDefinition) error {
	filter := bson.M{"_id": constvars.MongoDocPersistedCustomLabels}
	update := bson.M{"$set": bson.M{"labels": labels}}
	opts := options.Update().SetUpsert(true)

	_, err := r.Collection.UpdateOne(ctx, filter, update, opts)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}
