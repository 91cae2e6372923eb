// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - the default .env file of the working directory is loaded once, if it
//     exists, before the first Load; LoadEnv loads additional files;
//   - Load parses the environment into any struct using `env` and
//     `envDefault` field tags;
//   - every successfully loaded struct type is cached, so later calls return
//     the same values without parsing again. Reload bypasses the cache.
//
// # Usage
//
//	type Config struct {
//	    Locale string `env:"APP_LOCALE" envDefault:"pt_br"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//	    return err // wraps ErrParsingConfig
//	}
package config
