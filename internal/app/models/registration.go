package models

// FormCustomField is one custom input on the registration form. Permanent
// fields keep their definition label and placeholder across resets; one-time
// fields disappear with the form.
type FormCustomField struct {
	ID          string `json:"id"`
	Label       string `json:"label"`
	Placeholder string `json:"placeholder,omitempty"`
	Value       string `json:"value"`
	OneTime     bool   `json:"oneTime,omitempty"`
}

// RegistrationForm is the desk-side form state returned by lookup and reset.
type RegistrationForm struct {
	UHID              string            `json:"uhid"`
	Salutation        string            `json:"salutation"`
	FullName          string            `json:"fullName"`
	Gender            string            `json:"gender"`
	DOB               string            `json:"dob"`
	Age               string            `json:"age"`
	ContactNumber     string            `json:"contactNumber"`
	AlternateMobile   string            `json:"alternateMobile"`
	Email             string            `json:"email"`
	AbhaID            string            `json:"abhaId"`
	BloodGroup        string            `json:"bloodGroup"`
	Occupation        string            `json:"occupation"`
	MaritalStatus     string            `json:"maritalStatus"`
	PreferredLanguage string            `json:"preferredLanguage"`
	AddressLine1      string            `json:"addressLine1"`
	Area              string            `json:"area"`
	District          string            `json:"district"`
	PinCode           string            `json:"pinCode"`
	State             string            `json:"state"`
	RegistrationType  string            `json:"registrationType"`
	PatientType       string            `json:"patientType"`
	VisitType         string            `json:"visitType"`
	PaymentMethod     string            `json:"paymentMethod"`
	DoctorAssigned    string            `json:"doctorAssigned"`
	PackageName       string            `json:"packageName"`
	CustomFields      []FormCustomField `json:"customFields"`
}

// NewRegistrationForm returns the blank form with the desk defaults applied.
func NewRegistrationForm() RegistrationForm {
	return RegistrationForm{
		PatientType:       "OPD",
		VisitType:         "Walk-in",
		PaymentMethod:     "Cash",
		PreferredLanguage: "English",
	}
}
