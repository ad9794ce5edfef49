package requests

import "intake-service/internal/app/models"

type SubmitIntake struct {
	Intake models.IntakeState `json:"intake"`
	// Free-text past history inputs, each describing the most recent event
	// like "Appendectomy 2019". Parsed into structured entries server-side.
	SurgeriesText        string                     `json:"surgeriesText"`
	HospitalizationsText string                     `json:"hospitalizationsText"`
	Documents            []models.ExtractedDocument `json:"documents"`
}
