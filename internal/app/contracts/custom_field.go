package contracts

import (
	"context"

	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
)

type CustomFieldConfigRepository interface {
	GetPersistedLabels(ctx context.Context) (*models.PersistedCustomLabels, error)
	UpsertLabels(ctx context.Context, labels []models.CustomFieldDefinition) error
}

type CustomFieldUsecase interface {
	ListDefinitions(ctx context.Context) (*responses.CustomFieldDefinitionList, error)
	CreateDefinition(ctx context.Context, request *requests.CreateCustomFieldDefinition) (*responses.CustomFieldDefinitionList, error)
	RemoveDefinition(ctx context.Context, label string, confirm bool) (*responses.CustomFieldDefinitionList, error)
}
