package requests

import "intake-service/internal/app/models"

type SaveVitals struct {
	Vitals models.VitalsState `json:"vitals"`
}

type CreateVitalDefinition struct {
	Label  string   `json:"label" validate:"required"`
	Unit   string   `json:"unit"`
	MinVal *float64 `json:"minVal"`
	MaxVal *float64 `json:"maxVal"`
}

type UpdateVitalDefinition struct {
	Label  string   `json:"label"`
	Unit   string   `json:"unit"`
	MinVal *float64 `json:"minVal"`
	MaxVal *float64 `json:"maxVal"`
}

type RemoveVitalDefinition struct {
	Confirm bool `json:"confirm"`
}
