package config

import (
	"os"
	"strconv"
	"strings"

	"sigdetect/internal/errors"
)

// Output formats accepted by SDT_OUTPUT
const (
	OutputText = "text"
	OutputJSON = "json"
)

const maxPrecision = 12

// Config represents the CLI configuration
type Config struct {
	Strict    bool
	Output    string
	Precision int
}

// Default returns permissive construction, text output and four decimals
func Default() *Config {
	return &Config{
		Strict:    false,
		Output:    OutputText,
		Precision: 4,
	}
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	defaults := Default()

	strict, err := getEnvBool("SDT_STRICT", defaults.Strict)
	if err != nil {
		return nil, err
	}
	precision, err := getEnvInt("SDT_PRECISION", defaults.Precision)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Strict:    strict,
		Output:    strings.ToLower(getEnvOrDefault("SDT_OUTPUT", defaults.Output)),
		Precision: precision,
	}

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

// Validate checks output format and precision bounds
func (c *Config) Validate() error {
	switch c.Output {
	case OutputText, OutputJSON:
	default:
		return errors.ConfigInvalid("output must be text or json, got " + strconv.Quote(c.Output))
	}
	if c.Precision < 0 || c.Precision > maxPrecision {
		return errors.Newf(errors.CodeConfigInvalid, "precision must be within 0..%d, got %d", maxPrecision, c.Precision)
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// Unlike the string helper, malformed numbers are reported rather than ignored.
func getEnvInt(key string, defaultValue int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		return 0, errors.Wrapf(errors.ConfigInvalid(err.Error()), "%s is not an integer", key)
	}
	return intValue, nil
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return defaultValue, nil
	}
	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		return false, errors.Wrapf(errors.ConfigInvalid(err.Error()), "%s is not a boolean", key)
	}
	return boolValue, nil
}
