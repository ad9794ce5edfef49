package responses

import "intake-service/internal/app/models"

type SaveVitals struct {
	ID string `json:"id"`
	// Derived values and advisories recomputed server-side from the saved
	// snapshot.
	BMI              string            `json:"bmi"`
	BMIBand          string            `json:"bmiBand,omitempty"`
	MAP              string            `json:"map"`
	GCSTotal         string            `json:"gcsTotal,omitempty"`
	Advisories       []string          `json:"advisories,omitempty"`
	CustomVitalBands []CustomVitalBand `json:"customVitalBands,omitempty"`
}

// CustomVitalBand is the Warning or Normal label of one custom reading whose
// definition carries bounds.
type CustomVitalBand struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Band  string `json:"band"`
}

type VitalDefinitionList struct {
	Definitions []models.VitalDefinition `json:"definitions"`
}
