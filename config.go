package mediator

import (
	"errors"
	"unicode/utf8"

	"github.com/dmitrymomot/mediator/pkg/config"
	"github.com/dmitrymomot/mediator/pkg/logger"
)

// Config holds the environment-driven Mediator settings.
type Config struct {
	// Delimiter separates namespace segments.
	Delimiter string `env:"MEDIATOR_DELIMITER" envDefault:":"`

	// Strict reports misses as errors.
	Strict bool `env:"MEDIATOR_STRICT" envDefault:"false"`

	// IDFormat selects the subscriber id generator: "uuid" or "short".
	IDFormat string `env:"MEDIATOR_ID_FORMAT" envDefault:"uuid"`
}

// LoadConfig reads Config from the environment (and .env files, see config.WithEnvFiles).
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the delimiter and the id format.
func (c Config) Validate() error {
	return errors.Join(c.validate()...)
}

func (c Config) validate() []error {
	var errs []error
	if !validDelimiter(c.Delimiter) {
		errs = append(errs, ErrInvalidDelimiter)
	}
	if _, err := idGeneratorFor(c.IDFormat); err != nil {
		errs = append(errs, err)
	}
	return errs
}

// NewFromConfig validates cfg and builds a Mediator from it. Options are
// applied after the config and take precedence. Validation failures are
// logged to the logger passed with WithLogger, if any.
func NewFromConfig(cfg Config, opts ...Option) (*Mediator, error) {
	if errs := cfg.validate(); len(errs) > 0 {
		applyOptions(opts).logger.Error("invalid mediator config", logger.Errors(errs...))
		return nil, errors.Join(errs...)
	}

	gen, _ := idGeneratorFor(cfg.IDFormat)
	base := []Option{
		WithDelimiter(cfg.Delimiter),
		WithStrict(cfg.Strict),
		WithIDGenerator(gen),
	}
	return New(append(base, opts...)...), nil
}

func validDelimiter(d string) bool {
	return utf8.RuneCountInString(d) == 1
}
