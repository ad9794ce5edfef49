package constvars

type contextKey string

const (
	CONTEXT_REQUEST_ID_KEY           contextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY contextKey = "is_client_request_id"
)

const (
	// Patient record lifecycle statuses.
	PatientStatusDraft   = "Draft"
	PatientStatusWaiting = "Waiting"

	// UHID synthesis. A draft borrows the first 6 characters of its record
	// id, a full registration the first 8.
	UHIDDraftPrefix    = "DRAFT"
	UHIDPrefix         = "UHID"
	UHIDDraftIDLength  = 6
	UHIDRecordIDLength = 8

	// Minimum length of a lookup value before the patient check runs.
	PatientLookupMinLength = 5

	// Storage object paths follow patients/{recordId}/{filename}.
	StoragePatientPathFormat = "patients/%s/%s"

	VitalsRecordedByDefault = "Medical Staff"
	VitalsStatusCompleted   = "completed"

	IntakeStatusSubmitted = "submitted"
)

const (
	// Redis keys for the two wholesale-persisted visibility maps.
	RedisKeyRegistrationFieldsConfig = "registrationFieldsConfig"
	RedisKeyVitalsConfig             = "vitalsConfig"
)

const (
	MaxComplaints        = 5
	MaxPastIllnesses     = 5
	MaxFilesPerCategory  = 5
	MaxAllergyReactionLen = 160
)

const (
	RecordCategoryLabReports         = "lab-reports"
	RecordCategoryRadiology          = "radiology"
	RecordCategoryPrescriptions      = "prescriptions"
	RecordCategoryDischargeSummaries = "discharge-summaries"
	RecordCategoryOther              = "other"
)

const (
	ComplaintSeverityMild     = "Mild"
	ComplaintSeverityModerate = "Moderate"
	ComplaintSeveritySevere   = "Severe"
)

const (
	OnMedicationYes     = "Yes"
	OnMedicationNo      = "No"
	OnMedicationUnknown = "Unknown"
)

const (
	AllergyTypeDrug  = "Drug"
	AllergyTypeFood  = "Food"
	AllergyTypeOther = "Other"
)

const (
	FieldGroupCore       = "Core"
	FieldGroupAddress    = "Address"
	FieldGroupAdditional = "Additional"

	// Gates the whole permanent/one-time custom-field block and counts as a
	// member of the Additional section.
	CustomFieldsSectionKey = "custom_fields_section"
)

const (
	VitalCategoryCritical = "Critical"
	VitalCategoryWarning  = "Warning"
	VitalCategoryNormal   = "Normal"

	BMIBandUnderweight = "Underweight"
	BMIBandNormal      = "Normal"
	BMIBandOverweight  = "Overweight"
	BMIBandObese       = "Obese"
)
