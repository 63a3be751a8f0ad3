package tracer

// Config holds the tracer settings.
type Config struct {
	// ServiceName identifies this client in trace backends.
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv is the deployment environment, e.g. "development" or "production".
	AppEnv string `yaml:"app_env" envconfig:"APP_ENV"`

	// EnableExport controls whether spans are exported over OTLP HTTP.
	// When false the provider is still installed so span context propagates,
	// but nothing leaves the process.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`
}
