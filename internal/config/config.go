package config

import "time"

// Config holds server configuration values.
type Config struct {
	Addr              string        `mapstructure:"addr" yaml:"addr"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout" yaml:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout" yaml:"shutdown_timeout"`
	LogLevel          string        `mapstructure:"log_level" yaml:"log_level"`
	OpenWeatherAPIKey string        `mapstructure:"openweather_api_key" yaml:"openweather_api_key"`
	UpstreamTimeout   time.Duration `mapstructure:"upstream_timeout" yaml:"upstream_timeout"`
	Upstreams         Upstreams     `mapstructure:"upstreams" yaml:"upstreams"`
}

// Upstreams holds the base URLs of the proxied public APIs.
type Upstreams struct {
	ViaCEP      string `mapstructure:"viacep" yaml:"viacep"`
	AwesomeAPI  string `mapstructure:"awesomeapi" yaml:"awesomeapi"`
	BrasilAPI   string `mapstructure:"brasilapi" yaml:"brasilapi"`
	OpenWeather string `mapstructure:"openweather" yaml:"openweather"`
	IBGE        string `mapstructure:"ibge" yaml:"ibge"`
}

// Default returns configuration with reasonable starter defaults.
func Default() Config {
	return Config{
		Addr:              ":8080",
		ReadHeaderTimeout: 5 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		LogLevel:          "info",
		UpstreamTimeout:   10 * time.Second,
		Upstreams: Upstreams{
			ViaCEP:      "https://viacep.com.br",
			AwesomeAPI:  "https://economia.awesomeapi.com.br",
			BrasilAPI:   "https://brasilapi.com.br",
			OpenWeather: "https://api.openweathermap.org",
			IBGE:        "https://servicodados.ibge.gov.br",
		},
	}
}
