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

type VitalsMongoRepository struct {
	Collection *mongo.Collection
}

func NewVitalsMongoRepository(db *mongo.Client, dbName string) contracts.VitalsRepository {
	return &VitalsMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionVitals),
	}
}

func (r *VitalsMongoRepository) CreateRecord(ctx context.Context, record *models.VitalsRecord) (string, error) {
	if record.ID == "" {
		record.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Collection.InsertOne(ctx, record)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return record.ID, nil
}

func (r *VitalsMongoRepository) FindLatestByPatientID(ctx context.Context, patientID string) (*models.VitalsRecord, error) {
	opts := options.FindOne().SetSort(bson.M{"recordedAt": -1})

	var record models.VitalsRecord
	err := r.Collection.FindOne(ctx, bson.M{"patientId": patientID}, opts).Decode(&record)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &record, nil
}
