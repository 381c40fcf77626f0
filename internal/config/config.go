package config

type Config struct {
	// Target settings
	URL           string `mapstructure:"url"`
	EndpointsPath string `mapstructure:"endpointsPath"`
	Endpoint      string `mapstructure:"endpoint"`
	OpenAPIFile   string `mapstructure:"openapiFile"`

	// HTTP client settings
	TLSVerify      bool   `mapstructure:"tlsVerify"`
	Proxy          string `mapstructure:"proxy"`
	AddHeader      string `mapstructure:"addHeader"`
	AddDebugHeader bool   `mapstructure:"addDebugHeader"`

	// GoHTTP client settings
	MaxIdleConns    int `mapstructure:"maxIdleConns"`
	MaxRedirects    int `mapstructure:"maxRedirects"`
	IdleConnTimeout int `mapstructure:"idleConnTimeout"`
	Timeout         int `mapstructure:"timeout"`

	// Output settings
	NoProgressBar bool `mapstructure:"noProgressBar"`

	// config.yaml
	HTTPHeaders map[string]string `mapstructure:"headers"`

	// Other settings
	LogLevel string `mapstructure:"logLevel"`
}
