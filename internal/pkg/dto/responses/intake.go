package responses

import "intake-service/internal/app/models"

type SubmitIntake struct {
	ID string `json:"id"`
	// Advisories carry the non-blocking warnings derived from the submitted
	// state: red-flag complaints, uncontrolled chronic conditions and drug
	// conflicts with the recorded allergy substance.
	RedFlags             []models.Complaint  `json:"redFlags,omitempty"`
	UncontrolledWarnings []string            `json:"uncontrolledWarnings,omitempty"`
	DrugConflicts        []models.Medication `json:"drugConflicts,omitempty"`
}

type ExtractedText struct {
	FileName string `json:"fileName"`
	MimeType string `json:"mimeType"`
	Category string `json:"category"`
	Text     string `json:"text"`
}
