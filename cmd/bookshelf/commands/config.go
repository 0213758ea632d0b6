package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/bookshelf/internal/constants"
)

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect CLI configuration",
		Long:  "Inspect the effective configuration merged from flags, environment and config file",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigGetCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display every configuration key with its effective value",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := LoadSettings()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			switch settings.Output {
			case constants.FormatJSON:
				encoder := json.NewEncoder(out)
				encoder.SetIndent("", "  ")

				return encoder.Encode(settingsView(settings))
			case constants.FormatYAML:
				encoder := yaml.NewEncoder(out)

				return encoder.Encode(settingsView(settings))
			default:
				return displayConfigTable(out, settings)
			}
		},
	}
}

func newConfigGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get KEY",
		Short: "Get a configuration value",
		Long:  "Print the effective value of a single configuration key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := LoadSettings()
			if err != nil {
				return err
			}

			value, ok := settingsView(settings)[args[0]]
			if !ok {
				return fmt.Errorf("%w: %s", constants.ErrUnknownConfigKey, args[0])
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)

			return err
		},
	}
}

// settingsView flattens settings into printable values. Durations are shown
// in their flag syntax rather than as nanoseconds.
func settingsView(settings *Settings) map[string]string {
	return map[string]string{
		"api":         settings.API,
		"listen":      settings.Listen,
		"output":      settings.Output,
		"verbose":     fmt.Sprint(settings.Verbose),
		"timeout":     settings.Timeout.String(),
		"retry_max":   fmt.Sprint(settings.RetryMax),
		"cover_url":   settings.CoverURL,
		"session_ttl": settings.SessionTTL.String(),
		"user_agent":  settings.UserAgent,
	}
}

func displayConfigTable(w io.Writer, settings *Settings) error {
	values := settingsView(settings)

	table := tablewriter.NewWriter(w)
	table.Header("Key", "Value")

	for _, key := range []string{
		"api", "listen", "output", "verbose", "timeout",
		"retry_max", "cover_url", "session_ttl", "user_agent",
	} {
		value := values[key]
		if value == "" {
			value = constants.NotAvailable
		}

		_ = table.Append(key, value)
	}

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		configFile = constants.NotAvailable
	}

	_ = table.Append("config_file", configFile)

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}
