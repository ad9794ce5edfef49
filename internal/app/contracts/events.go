package contracts

import (
	"context"

	"intake-service/internal/app/models"
)

type EventPublisher interface {
	PublishPatientRegistered(ctx context.Context, event *models.PatientRegisteredEvent) error
}
