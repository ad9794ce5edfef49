package constvars

const (
	ResponseSuccess = "success"
	ResponseError   = "error"

	PatientDraftSavedSuccess   = "Patient details have been saved as a draft."
	PatientRegisteredSuccess   = "Registration Successful!"
	PatientFoundSuccess        = "Patient record found"
	PatientNotFoundSuccess     = "No matching patient record, form has been reset"
	DoctorsFetchedSuccess      = "doctors fetched successfully"
	PackagesFetchedSuccess     = "packages fetched successfully"
	PackageCreatedSuccess      = "package created successfully"
	PackageUpdatedSuccess      = "package updated successfully"
	PackageDeletedSuccess      = "package removed successfully"
	ConfigSavedSuccess         = "configuration saved successfully"
	ConfigFetchedSuccess       = "configuration fetched successfully"
	DefinitionsFetchedSuccess  = "definitions fetched successfully"
	DefinitionCreatedSuccess   = "definition created successfully"
	DefinitionUpdatedSuccess   = "definition updated successfully"
	DefinitionRemovedSuccess   = "definition removed successfully"
	VitalsSavedSuccess         = "Vitals saved successfully!"
	IntakeSubmittedSuccess     = "intake submitted successfully"
	RecordExtractedSuccess     = "record text extracted successfully"
	SummaryGeneratedSuccess    = "summary generated successfully"
)
