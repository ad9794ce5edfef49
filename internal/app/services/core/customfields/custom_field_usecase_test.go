package customfields

import (
	"context"
	"testing"

	"intake-service/internal/app/models"
	"intake-service/internal/pkg/dto/requests"
	"intake-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

type fakeCustomFieldRepository struct {
	doc *models.PersistedCustomLabels
}

func (f *fakeCustomFieldRepository) GetPersistedLabels(ctx context.Context) (*models.PersistedCustomLabels, error) {
	return f.doc, nil
}

func (f *fakeCustomFieldRepository) UpsertLabels(ctx context.Context, labels []models.CustomFieldDefinition) error {
	f.doc = &models.PersistedCustomLabels{ID: "persistedCustomLabels", Labels: labels}
	return nil
}

func TestCreateDefinition(t *testing.T) {
	repo := &fakeCustomFieldRepository{}
	uc := NewCustomFieldUsecase(repo)

	result, err := uc.CreateDefinition(context.Background(), &requests.CreateCustomFieldDefinition{
		Label:       "Referred By",
		Placeholder: "Referring doctor or clinic",
	})
	assert.NoError(t, err)
	assert.Len(t, result.Definitions, 1)

	t.Run("same label is reused, not duplicated", func(t *testing.T) {
		result, err := uc.CreateDefinition(context.Background(), &requests.CreateCustomFieldDefinition{Label: "referred by"})
		assert.NoError(t, err)
		assert.Len(t, result.Definitions, 1)
	})
}

func TestRemoveDefinition(t *testing.T) {
	repo := &fakeCustomFieldRepository{
		doc: &models.PersistedCustomLabels{
			ID: "persistedCustomLabels",
			Labels: []models.CustomFieldDefinition{
				{Label: "Referred By"},
				{Label: "Insurance Provider"},
			},
		},
	}
	uc := NewCustomFieldUsecase(repo)

	t.Run("requires confirmation", func(t *testing.T) {
		_, err := uc.RemoveDefinition(context.Background(), "Referred By", false)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 422, customErr.StatusCode)
	})

	t.Run("removes on confirm", func(t *testing.T) {
		result, err := uc.RemoveDefinition(context.Background(), "Referred By", true)
		assert.NoError(t, err)
		assert.Len(t, result.Definitions, 1)
		assert.Equal(t, "Insurance Provider", result.Definitions[0].Label)
	})

	t.Run("unknown label is not found", func(t *testing.T) {
		_, err := uc.RemoveDefinition(context.Background(), "Nope", true)
		var customErr *exceptions.CustomError
		assert.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}
