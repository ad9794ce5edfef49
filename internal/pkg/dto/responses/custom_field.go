package responses

import "intake-service/internal/app/models"

type CustomFieldDefinitionList struct {
	Definitions []models.CustomFieldDefinition `json:"definitions"`
}
