package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Gobd/preprocess/logger"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/pflag"
)

// Environment variables read when the matching flag is not set.
const (
	EnvLogLevel  = "PREPROCESS_LOG_LEVEL"
	EnvFormat    = "PREPROCESS_FORMAT"
	EnvPrecision = "PREPROCESS_PRECISION"
	EnvAddr      = "PREPROCESS_ADDR"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

const maxPrecision = 15

// Config holds the settings shared by every command.
type Config struct {
	LogLevel  string `json:"log_level"`
	Format    string `json:"format"`
	Precision int    `json:"precision"`
}

// DefaultConfig returns the settings used when neither flags nor environment
// variables say otherwise.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "warn",
		Format:    FormatText,
		Precision: -1,
	}
}

// Validate checks every field against its allowed values.
func (c *Config) Validate() error {
	levels := make([]any, len(logger.Levels))
	for i, l := range logger.Levels {
		levels[i] = l
	}
	return validation.ValidateStruct(c,
		validation.Field(&c.LogLevel, validation.In(levels...)),
		validation.Field(&c.Format, validation.Required, validation.In(FormatText, FormatJSON, FormatYAML)),
		validation.Field(&c.Precision, validation.Min(-1), validation.Max(maxPrecision)),
	)
}

// applyEnv overrides fields from the environment unless the matching flag
// was given on the command line.
func (c *Config) applyEnv(flags *pflag.FlagSet) error {
	if v, ok := lookupEnv(flags, "log-level", EnvLogLevel); ok {
		c.LogLevel = v
	}
	if v, ok := lookupEnv(flags, "format", EnvFormat); ok {
		c.Format = v
	}
	if v, ok := lookupEnv(flags, "precision", EnvPrecision); ok {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvPrecision, err)
		}
		c.Precision = p
	}
	return nil
}

func lookupEnv(flags *pflag.FlagSet, flag, env string) (string, bool) {
	if flags.Changed(flag) {
		return "", false
	}
	return os.LookupEnv(env)
}
