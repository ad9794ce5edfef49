package config

type (
	InternalConfig struct {
		App        App
		Minio      AppMinio
		RabbitMQ   AppRabbitMQ
		Summarizer AppSummarizer
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		MaxTimeRequestsPerSeconds  int
		RequestBodyLimitInMegabyte int
	}

	AppMinio struct {
		UploadMaxSizeInMB               int64
		PreSignedUrlObjectExpiryInHours int
	}

	AppRabbitMQ struct {
		PatientRegisteredQueue string
	}

	// AppSummarizer configures the clinical summary backend. With BaseUrl
	// empty the built-in stub is used.
	AppSummarizer struct {
		BaseUrl          string
		TimeoutInSeconds int
		RequestsPerMin   int
	}
)
