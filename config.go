package validkit

import (
	"github.com/dmitrymomot/validkit/pkg/config"
	"github.com/dmitrymomot/validkit/pkg/validator"
)

// Config holds the engine settings read from the environment.
type Config struct {
	Env    string `env:"APP_ENV" envDefault:"development"`
	Locale string `env:"APP_LOCALE" envDefault:"pt_br"`

	// MessagesDir replaces the embedded catalogs when set.
	MessagesDir       string `env:"VALIDKIT_MESSAGES_DIR"`
	LogMissingMessage bool   `env:"VALIDKIT_LOG_MISSING_MESSAGES" envDefault:"false"`

	PasswordMinLength int `env:"VALIDKIT_PASSWORD_MIN_LENGTH" envDefault:"8"`
	PasswordMaxRepeat int `env:"VALIDKIT_PASSWORD_MAX_REPEAT" envDefault:"3"`

	BlockedEmailDomains []string `env:"VALIDKIT_BLOCKED_EMAIL_DOMAINS" envDefault:"spam.com,fake.com" envSeparator:","`
	BlockedDocuments    []string `env:"VALIDKIT_BLOCKED_DOCUMENTS" envDefault:"11111111111,22222222222" envSeparator:","`
	DictionaryWords     []string `env:"VALIDKIT_DICTIONARY_WORDS" envDefault:"123456,password,querty" envSeparator:","`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`
}

// DefaultConfig returns the configuration used when no variable is set.
func DefaultConfig() Config {
	return Config{
		Env:                 "development",
		Locale:              "pt_br",
		PasswordMinLength:   8,
		PasswordMaxRepeat:   3,
		BlockedEmailDomains: []string{"spam.com", "fake.com"},
		BlockedDocuments:    []string{"11111111111", "22222222222"},
		DictionaryWords:     []string{"123456", "password", "querty"},
		LogLevel:            "info",
		LogFormat:           "text",
	}
}

// LoadConfig reads Config from the environment and the optional .env file.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// PasswordPolicy returns the password policy described by the config.
func (c Config) PasswordPolicy() validator.PasswordPolicy {
	p := validator.DefaultPasswordPolicy()
	if c.PasswordMinLength > 0 {
		p.MinLength = c.PasswordMinLength
	}
	p.MaxRepeat = c.PasswordMaxRepeat
	return p
}
