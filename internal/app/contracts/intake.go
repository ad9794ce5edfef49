package contracts

import (
	"context"

	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
)

type IntakeRepository interface {
	CreateIntake(ctx context.Context, record *models.IntakeRecord) (string, error)
	FindLatestByPatientID(ctx context.Context, patientID string) (*models.IntakeRecord, error)
}

type IntakeUsecase interface {
	SubmitIntake(ctx context.Context, patientID string, request *requests.SubmitIntake) (*responses.SubmitIntake, error)
}
