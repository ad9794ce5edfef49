package contracts

import (
	"context"

	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/responses"
)

type Summarizer interface {
	Summarize(ctx context.Context, intake *models.IntakeRecord, vitals *models.VitalsRecord) (string, error)
}

type SummaryUsecase interface {
	GenerateSummary(ctx context.Context, patientID string) (*responses.Summary, error)
}
