package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/soukonline/cli/cmd/auth"
	"github.com/soukonline/cli/cmd/categories"
	configcmd "github.com/soukonline/cli/cmd/config"
	"github.com/soukonline/cli/cmd/contacts"
	"github.com/soukonline/cli/cmd/orders"
	"github.com/soukonline/cli/cmd/products"
	"github.com/soukonline/cli/internal/app"
	appConfig "github.com/soukonline/cli/internal/config"
)

var (
	cfgFile     string
	debug       bool
	output      string
	application *app.App
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "souk",
	Short: "souk - storefront administration from the command line",
	Long: `souk provides command-line access to the storefront backend:
categories, products, orders, and contact messages.

The CLI talks to the backend's REST API. Reads are cached per resource for
the lifetime of an invocation and refreshed automatically after every write.`,
	Version: "1.0.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize configuration
		if err := appConfig.Initialize(cfgFile); err != nil {
			return fmt.Errorf("failed to initialize configuration: %w", err)
		}

		// Set debug mode
		if debug {
			appConfig.SetDebug(true)
		}

		// Set output format
		if output != "" {
			appConfig.SetOutputFormat(output)
		}

		// One client, one cache, one session for the whole process
		application = app.New(appConfig.Get())

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.souk.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug mode")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "output format (table, json, yaml, text)")

	// Commands resolve the application container lazily: it is built by
	// PersistentPreRunE after flags and config are known.
	resolve := func() *app.App { return application }

	rootCmd.AddCommand(auth.New(resolve))
	rootCmd.AddCommand(categories.New(resolve))
	rootCmd.AddCommand(products.New(resolve))
	rootCmd.AddCommand(orders.New(resolve))
	rootCmd.AddCommand(contacts.New(resolve))
	rootCmd.AddCommand(configcmd.New())
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".souk" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".souk")
	}

	// Environment variables
	viper.SetEnvPrefix("SOUK")
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil && debug {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
