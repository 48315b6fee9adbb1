package config

type (
	InternalConfig struct {
		App  App
		FHIR FHIR
	}

	DriverConfig struct {
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Address                   string
		Timezone                  string
		BaseUrl                   string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeout           int
		MaxTimeRequestsPerSeconds int
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}

	Minio struct {
		Port       string
		Host       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	FHIR struct {
		ExtensionBaseUrl string
	}
)
