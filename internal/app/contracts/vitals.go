package contracts

import (
	"context"

	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
)

type VitalDefinitionRepository interface {
	FindAll(ctx context.Context) ([]models.VitalDefinition, error)
	FindByID(ctx context.Context, definitionID string) (*models.VitalDefinition, error)
	FindByKey(ctx context.Context, key string) (*models.VitalDefinition, error)
	CreateDefinition(ctx context.Context, definition *models.VitalDefinition) (string, error)
	UpdateDefinition(ctx context.Context, definition *models.VitalDefinition) error
	DeleteDefinition(ctx context.Context, definitionID string) error
}

type VitalsRepository interface {
	CreateRecord(ctx context.Context, record *models.VitalsRecord) (string, error)
	FindLatestByPatientID(ctx context.Context, patientID string) (*models.VitalsRecord, error)
}

type VitalsUsecase interface {
	SaveVitals(ctx context.Context, patientID string, request *requests.SaveVitals) (*responses.SaveVitals, error)
	ListDefinitions(ctx context.Context) (*responses.VitalDefinitionList, error)
	CreateDefinition(ctx context.Context, request *requests.CreateVitalDefinition) (*responses.VitalDefinitionList, error)
	UpdateDefinition(ctx context.Context, definitionID string, request *requests.UpdateVitalDefinition) error
	RemoveDefinition(ctx context.Context, definitionID string, confirm bool) error
}
