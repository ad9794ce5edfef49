package packages

import (
	"context"
	"regexp"

	"intake-service/internal/app/contracts"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type PackageMongoRepository struct {
	Collection *mongo.Collection
}

func NewPackageMongoRepository(db *mongo.Client, dbName string) contracts.PackageRepository {
	return &PackageMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPackages),
	}
}

func (r *PackageMongoRepository) FindAll(ctx context.Context) ([]models.ConsultationPackage, error) {
	cursor, err := r.Collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"createdAt": 1}))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	var packageList []models.ConsultationPackage
	if err := cursor.All(ctx, &packageList); err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return packageList, nil
}

func (r *PackageMongoRepository) FindByID(ctx context.Context, packageID string) (*models.ConsultationPackage, error) {
	var pkg models.ConsultationPackage
	err := r.Collection.FindOne(ctx, bson.M{"_id": packageID}).Decode(&pkg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &pkg, nil
}

func (r *PackageMongoRepository) FindByName(ctx context.Context, name string) (*models.ConsultationPackage, error) {
	var pkg models.ConsultationPackage
	filter := bson.M{"name": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(name) + "$", Options: "i"}}
	err := r.Collection.FindOne(ctx, filter).Decode(&pkg)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &pkg, nil
}

func (r *PackageMongoRepository) CreatePackage(ctx context.Context, pkg *models.ConsultationPackage) (string, error) {
	if pkg.ID == "" {
		pkg.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Collection.InsertOne(ctx, pkg)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return pkg.ID, nil
}

func (r *PackageMongoRepository) UpdatePackage(ctx context.Context, pkg *models.ConsultationPackage) error {
	update := bson.M{"$set": bson.M{
		"name":         pkg.Name,
		"description":  pkg.Description,
		"price":        pkg.Price,
		"customFields": pkg.CustomFields,
		"updatedAt":    pkg.UpdatedAt,
	}}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": pkg.ID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *PackageMongoRepository) DeletePackage(ctx context.Context, packageID string) error {
	_, err := r.Collection.DeleteOne(ctx, bson.M{"_id": packageID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
