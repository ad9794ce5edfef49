package models

// PatientCustomField is a label/value pair captured on the registration form.
// Permanent fields come from the persisted definitions and reappear on every
// new registration; one-time fields live only on the record they were typed
// into.
type PatientCustomField struct {
	Label   string `json:"label" bson:"label"`
	Value   string `json:"value" bson:"value"`
	OneTime bool   `json:"oneTime,omitempty" bson:"oneTime,omitempty"`
}

type Patient struct {
	ID                string               `json:"id,omitempty" bson:"_id,omitempty"`
	UHID              string               `json:"uhid,omitempty" bson:"uhid,omitempty"`
	Salutation        string               `json:"salutation,omitempty" bson:"salutation,omitempty"`
	FullName          string               `json:"fullName" bson:"fullName"`
	Gender            string               `json:"gender,omitempty" bson:"gender,omitempty"`
	DOB               string               `json:"dob,omitempty" bson:"dob,omitempty"`
	Age               string               `json:"age,omitempty" bson:"age,omitempty"`
	ContactNumber     string               `json:"contactNumber" bson:"contactNumber"`
	AlternateMobile   string               `json:"alternateMobile,omitempty" bson:"alternateMobile,omitempty"`
	Email             string               `json:"email,omitempty" bson:"email,omitempty"`
	AbhaID            string               `json:"abhaId,omitempty" bson:"abhaId,omitempty"`
	BloodGroup        string               `json:"bloodGroup,omitempty" bson:"bloodGroup,omitempty"`
	Occupation        string               `json:"occupation,omitempty" bson:"occupation,omitempty"`
	MaritalStatus     string               `json:"maritalStatus,omitempty" bson:"maritalStatus,omitempty"`
	PreferredLanguage string               `json:"preferredLanguage,omitempty" bson:"preferredLanguage,omitempty"`
	AddressLine1      string               `json:"addressLine1,omitempty" bson:"addressLine1,omitempty"`
	Area              string               `json:"area,omitempty" bson:"area,omitempty"`
	District          string               `json:"district,omitempty" bson:"district,omitempty"`
	PinCode           string               `json:"pinCode,omitempty" bson:"pinCode,omitempty"`
	State             string               `json:"state,omitempty" bson:"state,omitempty"`
	RegistrationType  string               `json:"registrationType,omitempty" bson:"registrationType,omitempty"`
	PatientType       string               `json:"patientType,omitempty" bson:"patientType,omitempty"`
	VisitType         string               `json:"visitType,omitempty" bson:"visitType,omitempty"`
	PaymentMethod     string               `json:"paymentMethod,omitempty" bson:"paymentMethod,omitempty"`
	DoctorAssigned    string               `json:"doctorAssigned,omitempty" bson:"doctorAssigned,omitempty"`
	PackageName       string               `json:"packageName,omitempty" bson:"packageName,omitempty"`
	Status            string               `json:"status" bson:"status"`
	CustomFields      []PatientCustomField `json:"customFields,omitempty" bson:"customFields,omitempty"`
	FileURLs          []string             `json:"fileUrls,omitempty" bson:"fileUrls,omitempty"`
	TimeModel         `bson:",inline"`
}
