package intake

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

type IntakeMongoRepository struct {
	Collection *mongo.Collection
}

func NewIntakeMongoRepository(db *mongo.Client, dbName string) contracts.IntakeRepository {
	return &IntakeMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionIntakes),
	}
}

func (r *IntakeMongoRepository) CreateIntake(ctx context.Context, record *models.IntakeRecord) (string, error) {
	if record.ID == "" {
		record.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return record.ID, nil
}

func (r *IntakeMongoRepository) FindLatestByPatientID(ctx context.Context, patientID string) (*models.IntakeRecord, error) {
	opts := options.FindOne().SetSort(bson.M{"submittedAt": -1})

	var record models.IntakeRecord
	err := r.Collection.FindOne(ctx, bson.M{"patientId": patientID}, opts).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}
