package responses

import "intake-service/internal/app/models"

type SavePatient struct {
	ID   string `json:"id"`
	UHID string `json:"uhid"`
	// Form is the post-save form state: blank except for permanent custom
	// field labels, which survive the reset with cleared values.
	Form models.RegistrationForm `json:"form"`
}

type CheckPatient struct {
	Found   bool            `json:"found"`
	Patient *models.Patient `json:"patient,omitempty"`
	// Form is the autofilled form when the patient was found, or the reset
	// form with blank permanent fields when not.
	Form models.RegistrationForm `json:"form"`
}

type DoctorList struct {
	Doctors []models.Doctor `json:"doctors"`
}
