package shared

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

//go:embed config.example.toml
var exampleConf []byte

// EnvPrefix prefixes environment variables that override the configuration file (e.g. UNITX_DISPLAY_CURRENCY).
const EnvPrefix = "UNITX"

// Config represents the application configuration loaded from a TOML file.
type Config struct {
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
}

// DisplayConfig controls how comparison results are rendered.
type DisplayConfig struct {
	Currency        string `toml:"currency"`
	Locale          string `toml:"locale"`
	UnitLabel       string `toml:"unit_label"`
	UnitPriceDigits int    `toml:"unit_price_digits"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// LoadConfig reads and parses a TOML configuration file from the specified path.
//
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := toml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrInvalidConfig, err)
	}

	return config, nil
}

// DefaultConfig returns a Config with sensible defaults loaded from the embedded example config.
func DefaultConfig() *Config {
	var config Config
	if err := toml.Unmarshal(exampleConf, &config); err != nil {
		panic(fmt.Sprintf("failed to parse embedded default config: %v", err))
	}
	return &config
}

// CreateConfigFile creates a config.toml file at the specified path using the embedded example config.
func CreateConfigFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := os.WriteFile(path, exampleConf, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overrides configuration values with UNITX_* environment variables.
func ApplyEnv(config *Config) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("display.currency", config.Display.Currency)
	v.SetDefault("display.locale", config.Display.Locale)
	v.SetDefault("display.unit_label", config.Display.UnitLabel)
	v.SetDefault("display.unit_price_digits", config.Display.UnitPriceDigits)
	v.SetDefault("log.level", config.Log.Level)
	v.SetDefault("log.file", config.Log.File)

	config.Display.Currency = v.GetString("display.currency")
	config.Display.Locale = v.GetString("display.locale")
	config.Display.UnitLabel = v.GetString("display.unit_label")
	config.Display.UnitPriceDigits = v.GetInt("display.unit_price_digits")
	config.Log.Level = v.GetString("log.level")
	config.Log.File = v.GetString("log.file")
}

// Validate checks that the display settings can be used for formatting.
func (c *Config) Validate() error {
	if _, err := currency.ParseISO(c.Display.Currency); err != nil {
		return fmt.Errorf("%w: currency %q: %v", ErrInvalidConfig, c.Display.Currency, err)
	}
	if _, err := language.Parse(c.Display.Locale); err != nil {
		return fmt.Errorf("%w: locale %q: %v", ErrInvalidConfig, c.Display.Locale, err)
	}
	if c.Display.UnitPriceDigits < 0 || c.Display.UnitPriceDigits > 8 {
		return fmt.Errorf("%w: unit_price_digits must be between 0 and 8, got %d", ErrInvalidConfig, c.Display.UnitPriceDigits)
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}
