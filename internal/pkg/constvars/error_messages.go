package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required":     "is required",
	"email":        "must be a valid email",
	"min":          "must be at least %s characters long",
	"max":          "maximum at %s characters long",
	"numeric":      "must be a number",
	"oneof":        "must be one of [%s]",
	"gt":           "must be greater than %s",
	"gte":          "must be greater than or equal to %s",
	"lt":           "must be less than %s",
	"lte":          "must be less than or equal to %s",
	"contact":      "must be a valid contact number",
	"severity":     "must be Mild, Moderate or Severe",
	"allergy_type": "must be Drug, Food or Other",
}

// Client-facing messages. These never leak driver or infrastructure detail.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again"
	ErrClientCannotProcessRequest          = "Cannot process your request, please re-check your input"
	ErrClientServerLongRespond             = "Server took too long to respond, please try again"
	ErrClientPatientLookupFailed           = "Failed to check for existing patient. Please ensure you have permission or try again."
	ErrClientPatientNotFound               = "No existing patient found"
	ErrClientMissingRequiredFields         = "Please fill the following required fields: %s"
	ErrClientDraftRequiresNameAndContact   = "Please provide at least a Patient Name and Phone Number to save a draft."
	ErrClientLookupValueTooShort           = "Please enter a valid Mobile Number or UHID (min 5 characters) to check."
	ErrClientCouldNotSaveDraft             = "Could not save draft."
	ErrClientCouldNotRegister              = "Error registering patient. Please try again."
	ErrClientOperationInProgress           = "Another action is already in progress, please wait for it to finish"
	ErrClientPackageNameTaken              = "A package with this name already exists"
	ErrClientPackageNotFound               = "Package not found"
	ErrClientDefinitionNotFound            = "Definition not found"
	ErrClientDefinitionExists              = "A definition with this label already exists"
	ErrClientStandardVitalImmutable        = "Standard vitals cannot be deleted, disable them from the view instead"
	ErrClientRemovalNeedsConfirmation      = "Removing a shared definition affects all future registrations and must be confirmed"
	ErrClientUnsupportedFileType           = "Unsupported file type: %s. Text extraction failed."
	ErrClientTooManyFiles                  = "File limit reached for this category"
	ErrClientInvalidRecordCategory         = "Unknown record category: %s"
	ErrClientFileTooLarge                  = "File exceeds the %dMB upload limit"
	ErrClientTooManyComplaints             = "A maximum of 5 presenting complaints can be recorded"
	ErrClientAllergyReactionTooLong        = "Allergy reaction description must be 160 characters or fewer"
	ErrClientSummaryUnavailable            = "An error occurred while generating the summary."
)

// Developer-facing messages carried inside CustomError.
const (
	ErrDevValidationFailed        = "request validation failed"
	ErrDevCannotParseJSON         = "cannot parse JSON request body"
	ErrDevCannotParseMultipart    = "cannot parse multipart form"
	ErrDevMissingRequestID        = "request id missing from context"
	ErrDevURLParamMissing         = "missing URL parameter: %s"
	ErrDevMongoInsertDocument     = "mongodb failed to insert document"
	ErrDevMongoFindDocument       = "mongodb failed to find document"
	ErrDevMongoUpdateDocument     = "mongodb failed to update document"
	ErrDevMongoDeleteDocument     = "mongodb failed to delete document"
	ErrDevMongoNotObjectID        = "value is not a valid mongodb object id"
	ErrDevMinioCreateObject       = "minio failed to store object in bucket %s"
	ErrDevMinioPresignObject      = "minio failed to presign object url"
	ErrDevRedisSet                = "redis failed to set key"
	ErrDevRedisGet                = "redis failed to get key %s"
	ErrDevRedisDelete             = "redis failed to delete key"
	ErrDevCannotMarshalJSON       = "cannot marshal value to JSON"
	ErrDevQueuePublish            = "failed to publish message to queue"
	ErrDevWorkflowBusy            = "workflow gate is not idle"
	ErrDevExtractionFailed        = "text extraction failed"
	ErrDevSummarizerCall          = "summarizer call failed"
	ErrDevSummarizerThrottled     = "summarizer rate limit exceeded"
	ErrDevServerDeadlineExceeded  = "handler deadline exceeded"
)

const ResponseUnknown = "unknown"
