package contracts

import (
	"context"

	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
)

type FieldConfigUsecase interface {
	GetRegistrationConfig(ctx context.Context) (*responses.FieldConfig, error)
	UpdateRegistrationConfig(ctx context.Context, request *requests.UpdateFieldConfig) (*responses.FieldConfig, error)
	GetVitalsConfig(ctx context.Context) (*responses.FieldConfig, error)
	UpdateVitalsConfig(ctx context.Context, request *requests.UpdateFieldConfig) (*responses.FieldConfig, error)
}
