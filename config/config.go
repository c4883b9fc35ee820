package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is read from CHORDEX_* environment variables.
type Config struct {
	Port           int           `default:"8080"`
	LogLevel       string        `split_words:"true" default:"info"`
	MidiPort       int           `split_words:"true" default:"0"`
	Debounce       time.Duration `default:"50ms"`
	MaxResults     int           `split_words:"true" default:"5"`
	AllowedOrigins []string      `split_words:"true" default:"*"`
}

func ProvideConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("chordex", &cfg); err != nil {
		return Config{}, fmt.Errorf("could not load config: %w", err)
	}
	return cfg, nil
}

func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
