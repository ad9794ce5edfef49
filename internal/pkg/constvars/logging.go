package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingEndpointKey   = "endpoint"
	LoggingMethodKey     = "method"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingErrorTypeKey  = "error_type"
	LoggingOperationKey  = "operation"

	LoggingPatientIDKey  = "patient_id"
	LoggingUHIDKey       = "uhid"
	LoggingSearchKey     = "search_value"
	LoggingPackageIDKey  = "package_id"
	LoggingDefinitionKey = "definition_key"
	LoggingFileNameKey   = "file_name"
	LoggingEventKey      = "event"
)
