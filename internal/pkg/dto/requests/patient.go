package requests

type CheckPatient struct {
	SearchValue string `json:"searchValue" validate:"required"`
}

type CustomFieldInput struct {
	Label   string `json:"label" validate:"required"`
	Value   string `json:"value"`
	OneTime bool   `json:"oneTime"`
}

// RegistrationForm is the registration desk payload, used for both drafts and
// full registrations. Required-field checks are done by the workflow so the
// caller gets the full list of missing fields back, not a validator error.
type RegistrationForm struct {
	UHID              string             `json:"uhid"`
	Salutation        string             `json:"salutation"`
	FullName          string             `json:"fullName"`
	Gender            string             `json:"gender"`
	DOB               string             `json:"dob"`
	Age               string             `json:"age"`
	ContactNumber     string             `json:"contactNumber" validate:"omitempty,contact"`
	AlternateMobile   string             `json:"alternateMobile" validate:"omitempty,contact"`
	Email             string             `json:"email" validate:"omitempty,email"`
	AbhaID            string             `json:"abhaId"`
	BloodGroup        string             `json:"bloodGroup"`
	Occupation        string             `json:"occupation"`
	MaritalStatus     string             `json:"maritalStatus"`
	PreferredLanguage string             `json:"preferredLanguage"`
	AddressLine1      string             `json:"addressLine1"`
	Area              string             `json:"area"`
	District          string             `json:"district"`
	PinCode           string             `json:"pinCode"`
	State             string             `json:"state"`
	RegistrationType  string             `json:"registrationType"`
	PatientType       string             `json:"patientType"`
	VisitType         string             `json:"visitType"`
	PaymentMethod     string             `json:"paymentMethod"`
	DoctorAssigned    string             `json:"doctorAssigned"`
	PackageName       string             `json:"packageName"`
	CustomFields      []CustomFieldInput `json:"customFields"`
}
