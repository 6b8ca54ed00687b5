package config

import "github.com/caarlos0/env/v6"

type Config struct {
	// Server configuration
	Server struct {
		// Port the HTTP server listens on
		Port string `env:"SERVER_PORT" envDefault:"5260"`

		// Allowed CORS origins
		AllowedOrigins []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
	}

	// Read-only resources loaded once at startup
	Resources struct {
		// Serialized regression model artifact; missing or corrupt is fatal
		ModelPath string `env:"MODEL_PATH" envDefault:"data/resale_model.json"`

		// Historical resale transactions CSV; missing is non-fatal
		DatasetPath string `env:"DATASET_PATH" envDefault:"data/hdb.csv"`

		// Glob for the HTML templates of the form page
		TemplateGlob string `env:"TEMPLATE_GLOB" envDefault:"web/templates/*.html"`
	}
}

func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
