package config

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	appConfig "github.com/soukonline/cli/internal/config"
	"github.com/soukonline/cli/internal/format"
)

// New builds the config command group
func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "CLI configuration commands",
		Long: `CLI configuration commands for the souk CLI.

This command group includes showing the current configuration and
setting individual values.`,
	}

	cmd.AddCommand(newShowCmd())
	cmd.AddCommand(newSetCmd())

	return cmd
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := appConfig.Get()
			// The token is a credential; show only whether one is present
			return format.Print(map[string]interface{}{
				"server_url":     cfg.Server.URL,
				"server_timeout": cfg.Server.Timeout,
				"output_format":  cfg.Format.Default,
				"colors":         cfg.Format.Colors,
				"logged_in":      cfg.Auth.Token != "",
			})
		},
	}
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Long:  "Set a configuration value, e.g. souk config set server.url http://localhost:5000",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			switch key {
			case "server.url", "server.timeout", "format.default", "format.colors":
			default:
				return fmt.Errorf("unknown configuration key %q", key)
			}

			viper.Set(key, value)
			if err := viper.WriteConfig(); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			format.PrintSuccess("✓ %s set to %s", key, value)
			return nil
		},
	}
}
