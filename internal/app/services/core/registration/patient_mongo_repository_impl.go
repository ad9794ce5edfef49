package registration

import (
	"context"
	"strings"

	"intake-service/internal/app/contracts"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/constvars"
	"intake-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PatientMongoRepository struct {
	Collection *mongo.Collection
}

func NewPatientMongoRepository(db *mongo.Client, dbName string) contracts.PatientRepository {
	return &PatientMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionPatients),
	}
}

func (r *PatientMongoRepository) CreatePatient(ctx context.Context, patient *models.Patient) (string, error) {
	if patient.ID == "" {
		patient.ID = primitive.NewObjectID().Hex()
	}
	_, err := r.Collection.InsertOne(ctx, patient)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return patient.ID, nil
}

func (r *PatientMongoRepository) UpdatePatient(ctx context.Context, patient *models.Patient) error {
	update := bson.M{"$set": bson.M{
		"uhid":              patient.UHID,
		"salutation":        patient.Salutation,
		"fullName":          patient.FullName,
		"gender":            patient.Gender,
		"dob":               patient.DOB,
		"age":               patient.Age,
		"contactNumber":     patient.ContactNumber,
		"alternateMobile":   patient.AlternateMobile,
		"email":             patient.Email,
		"abhaId":            patient.AbhaID,
		"bloodGroup":        patient.BloodGroup,
		"occupation":        patient.Occupation,
		"maritalStatus":     patient.MaritalStatus,
		"preferredLanguage": patient.PreferredLanguage,
		"addressLine1":      patient.AddressLine1,
		"area":              patient.Area,
		"district":          patient.District,
		"pinCode":           patient.PinCode,
		"state":             patient.State,
		"registrationType":  patient.RegistrationType,
		"patientType":       patient.PatientType,
		"visitType":         patient.VisitType,
		"paymentMethod":     patient.PaymentMethod,
		"doctorAssigned":    patient.DoctorAssigned,
		"packageName":       patient.PackageName,
		"status":            patient.Status,
		"customFields":      patient.CustomFields,
		"fileUrls":          patient.FileURLs,
		"updatedAt":         patient.UpdatedAt,
	}}
	_, err := r.Collection.UpdateOne(ctx, bson.M{"_id": patient.ID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *PatientMongoRepository) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return r.findOne(ctx, bson.M{"_id": patientID})
}

func (r *PatientMongoRepository) FindByContactNumber(ctx context.Context, contactNumber string) (*models.Patient, error) {
	return r.findOne(ctx, bson.M{"contactNumber": contactNumber})
}

func (r *PatientMongoRepository) FindByUHID(ctx context.Context, uhid string) (*models.Patient, error) {
	return r.findOne(ctx, bson.M{"uhid": strings.ToUpper(uhid)})
}

func (r *PatientMongoRepository) findOne(ctx context.Context, filter bson.M) (*models.Patient, error) {
	var patient models.Patient
	err := r.Collection.FindOne(ctx, filter).Decode(&patient)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &patient, nil
}
