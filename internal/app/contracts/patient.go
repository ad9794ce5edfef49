package contracts

import (
	"context"
	"mime/multipart"

	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
)

type PatientRepository interface {
	CreatePatient(ctx context.Context, patient *models.Patient) (string, error)
	UpdatePatient(ctx context.Context, patient *models.Patient) error
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByContactNumber(ctx context.Context, contactNumber string) (*models.Patient, error)
	FindByUHID(ctx context.Context, uhid string) (*models.Patient, error)
}

type DoctorRepository interface {
	FindAll(ctx context.Context) ([]models.Doctor, error)
}

type RegistrationUsecase interface {
	CheckPatient(ctx context.Context, request *requests.CheckPatient) (*responses.CheckPatient, error)
	SaveDraft(ctx context.Context, request *requests.RegistrationForm) (*responses.SavePatient, error)
	Register(ctx context.Context, request *requests.RegistrationForm, files []*multipart.FileHeader) (*responses.SavePatient, error)
	ListDoctors(ctx context.Context) (*responses.DoctorList, error)
}
