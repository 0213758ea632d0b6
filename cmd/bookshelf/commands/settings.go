package commands

import (
	"fmt"
	"time"

	"github.com/spf13/viper"

	"github.com/fivetwenty-io/bookshelf/internal/constants"
)

// Settings is the effective CLI configuration, merged by viper from flags,
// BOOKSHELF_* environment variables and the config file.
type Settings struct {
	API        string        `json:"api"         mapstructure:"api"         yaml:"api"`
	Listen     string        `json:"listen"      mapstructure:"listen"      yaml:"listen"`
	Output     string        `json:"output"      mapstructure:"output"      yaml:"output"`
	Verbose    bool          `json:"verbose"     mapstructure:"verbose"     yaml:"verbose"`
	Timeout    time.Duration `json:"timeout"     mapstructure:"timeout"     yaml:"timeout"`
	RetryMax   int           `json:"retry_max"   mapstructure:"retry_max"   yaml:"retry_max"`
	CoverURL   string        `json:"cover_url"   mapstructure:"cover_url"   yaml:"cover_url"`
	SessionTTL time.Duration `json:"session_ttl" mapstructure:"session_ttl" yaml:"session_ttl"`
	UserAgent  string        `json:"user_agent"  mapstructure:"user_agent"  yaml:"user_agent"`
}

// SetDefaults registers the default of every configuration key. Keys need a
// default for AutomaticEnv to pick them up during Unmarshal.
func SetDefaults() {
	viper.SetDefault("api", "")
	viper.SetDefault("listen", constants.DefaultListenAddress)
	viper.SetDefault("output", constants.FormatTable)
	viper.SetDefault("verbose", false)
	viper.SetDefault("timeout", constants.DefaultHTTPTimeout)
	viper.SetDefault("retry_max", constants.DefaultRetryMax)
	viper.SetDefault("cover_url", constants.DefaultCoverURL)
	viper.SetDefault("session_ttl", constants.DefaultSessionTTL)
	viper.SetDefault("user_agent", constants.UserAgent)
}

// LoadSettings reads the effective configuration.
func LoadSettings() (*Settings, error) {
	settings := &Settings{}

	err := viper.Unmarshal(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	err = validateOutput(settings.Output)
	if err != nil {
		return nil, err
	}

	return settings, nil
}

func validateOutput(output string) error {
	switch output {
	case constants.FormatTable, constants.FormatJSON, constants.FormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q", constants.ErrUnknownOutputFormat, output)
	}
}
