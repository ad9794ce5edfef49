package customfields

import (
	"context"
	"strings"

	"intake-service/internal/app/contracts"
	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/dto/responses"
	"intake-service/internal/pkg/exceptions"
)

type customFieldUsecase struct {
	CustomFieldConfigRepository contracts.CustomFieldConfigRepository
}

func NewCustomFieldUsecase(repository contracts.CustomFieldConfigRepository) contracts.CustomFieldUsecase {
	return &customFieldUsecase{CustomFieldConfigRepository: repository}
}

func (uc *customFieldUsecase) ListDefinitions(ctx context.Context) (*responses.CustomFieldDefinitionList, error) {
	labels, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}
	return &responses.CustomFieldDefinitionList{Definitions: labels}, nil
}

// CreateDefinition reuses an existing definition with the same label rather
// than duplicating it, so adding a field twice stays harmless.
func (uc *customFieldUsecase) CreateDefinition(ctx context.Context, request *requests.CreateCustomFieldDefinition) (*responses.CustomFieldDefinitionList, error) {
	labels, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	label := strings.TrimSpace(request.Label)
	for _, existing := range labels {
		if strings.EqualFold(existing.Label, label) {
			return &responses.CustomFieldDefinitionList{Definitions: labels}, nil
		}
	}

	labels = append(labels, models.CustomFieldDefinition{
		Label:       label,
		Placeholder: strings.TrimSpace(request.Placeholder),
	})
	if err := uc.CustomFieldConfigRepository.UpsertLabels(ctx, labels); err != nil {
		return nil, err
	}

	return &responses.CustomFieldDefinitionList{Definitions: labels}, nil
}

// RemoveDefinition drops a shared definition for every future registration,
// so the caller has to confirm it explicitly.
func (uc *customFieldUsecase) RemoveDefinition(ctx context.Context, label string, confirm bool) (*responses.CustomFieldDefinitionList, error) {
	labels, err := uc.load(ctx)
	if err != nil {
		return nil, err
	}

	index := -1
	for i, existing := range labels {
		if strings.EqualFold(existing.Label, label) {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, exceptions.ErrDefinitionNotFound(nil)
	}
	if !confirm {
		return nil, exceptions.ErrRemovalNeedsConfirmation()
	}

	labels = append(labels[:index], labels[index+1:]...)
	if err := uc.CustomFieldConfigRepository.UpsertLabels(ctx, labels); err != nil {
		return nil, err
	}

	return &responses.CustomFieldDefinitionList{Definitions: labels}, nil
}

func (uc *customFieldUsecase) load(ctx context.Context) ([]models.CustomFieldDefinition, error) {
	doc, err := uc.CustomFieldConfigRepository.GetPersistedLabels(ctx)
	if err != nil {
		return nil, err
	}
	if doc == nil {
		return []models.CustomFieldDefinition{}, nil
	}
	return doc.Labels, nil
}
