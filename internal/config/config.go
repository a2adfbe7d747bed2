package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/soukonline/cli/internal/models"
)

// Config represents the application configuration
type Config struct {
	Server ServerConfig `yaml:"server"`
	Auth   AuthConfig   `yaml:"auth"`
	Format FormatConfig `yaml:"format"`
}

// ServerConfig contains backend connection settings
type ServerConfig struct {
	URL     string `yaml:"url"`
	Timeout string `yaml:"timeout"`
}

// AuthConfig contains the persisted session: bearer token plus the minimal
// user profile returned by login
type AuthConfig struct {
	Token string   `yaml:"token"`
	User  AuthUser `yaml:"user"`
}

// AuthUser mirrors models.User for yaml persistence
type AuthUser struct {
	ID       string `yaml:"id"`
	Username string `yaml:"username"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	IsAdmin  bool   `yaml:"is_admin"`
}

// FormatConfig contains output formatting settings
type FormatConfig struct {
	Default string `yaml:"default"`
	Colors  bool   `yaml:"colors"`
}

var (
	globalConfig *Config
	debug        bool
	outputFormat string
)

// Initialize loads the configuration from file
func Initialize(configFile string) error {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("could not get home directory: %w", err)
		}

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".souk")
	}

	// Set defaults
	setDefaults()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found; create default config
			if err := createDefaultConfig(); err != nil {
				return fmt.Errorf("could not create default config: %w", err)
			}
		} else {
			return fmt.Errorf("could not read config file: %w", err)
		}
	}

	// Unmarshal config
	globalConfig = &Config{}
	if err := viper.Unmarshal(globalConfig); err != nil {
		return fmt.Errorf("could not unmarshal config: %w", err)
	}

	// Workaround: manually sync auth fields from viper
	globalConfig.Auth.Token = viper.GetString("auth.token")
	globalConfig.Auth.User.ID = viper.GetString("auth.user.id")
	globalConfig.Auth.User.Username = viper.GetString("auth.user.username")
	globalConfig.Auth.User.Email = viper.GetString("auth.user.email")
	globalConfig.Auth.User.Phone = viper.GetString("auth.user.phone")
	globalConfig.Auth.User.IsAdmin = viper.GetBool("auth.user.is_admin")

	return nil
}

// setDefaults sets default configuration values
func setDefaults() {
	viper.SetDefault("server.url", "http://localhost:5000")
	viper.SetDefault("server.timeout", "30s")
	viper.SetDefault("auth.token", "")
	viper.SetDefault("auth.user.id", "")
	viper.SetDefault("auth.user.username", "")
	viper.SetDefault("auth.user.email", "")
	viper.SetDefault("auth.user.phone", "")
	viper.SetDefault("auth.user.is_admin", false)
	viper.SetDefault("format.default", "table")
	viper.SetDefault("format.colors", true)
}

// createDefaultConfig creates a default configuration file
func createDefaultConfig() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(home, ".souk.yaml")

	defaultConfig := Config{
		Server: ServerConfig{
			URL:     "http://localhost:5000",
			Timeout: "30s",
		},
		Auth: AuthConfig{},
		Format: FormatConfig{
			Default: "table",
			Colors:  true,
		},
	}

	data, err := yaml.Marshal(defaultConfig)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

// Get returns the global configuration
func Get() *Config {
	if globalConfig == nil {
		globalConfig = &Config{}
	}
	return globalConfig
}

// Save saves the current configuration to file
func Save() error {
	if globalConfig == nil {
		return fmt.Errorf("no configuration to save")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(home, ".souk.yaml")

	data, err := yaml.Marshal(globalConfig)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

// SetDebug sets the debug mode
func SetDebug(enabled bool) {
	debug = enabled
}

// IsDebug returns whether debug mode is enabled
func IsDebug() bool {
	return debug
}

// SetOutputFormat sets the output format
func SetOutputFormat(format string) {
	outputFormat = format
}

// GetOutputFormat returns the current output format
func GetOutputFormat() string {
	if outputFormat != "" {
		return outputFormat
	}
	if globalConfig != nil && globalConfig.Format.Default != "" {
		return globalConfig.Format.Default
	}
	return "table"
}

// UpdateAuth persists the bearer token and user profile after login
func UpdateAuth(token string, user models.User) error {
	if globalConfig == nil {
		return fmt.Errorf("configuration not initialized")
	}

	// Update both viper and globalConfig
	viper.Set("auth.token", token)
	viper.Set("auth.user.id", user.ID)
	viper.Set("auth.user.username", user.Username)
	viper.Set("auth.user.email", user.Email)
	viper.Set("auth.user.phone", user.Phone)
	viper.Set("auth.user.is_admin", user.IsAdmin)

	globalConfig.Auth.Token = token
	globalConfig.Auth.User = AuthUser{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
		Phone:    user.Phone,
		IsAdmin:  user.IsAdmin,
	}

	// Save using viper to ensure consistency
	return viper.WriteConfig()
}

// ClearAuth clears the persisted session
func ClearAuth() error {
	if globalConfig == nil {
		return fmt.Errorf("configuration not initialized")
	}

	viper.Set("auth.token", "")
	viper.Set("auth.user.id", "")
	viper.Set("auth.user.username", "")
	viper.Set("auth.user.email", "")
	viper.Set("auth.user.phone", "")
	viper.Set("auth.user.is_admin", false)

	globalConfig.Auth.Token = ""
	globalConfig.Auth.User = AuthUser{}

	return viper.WriteConfig()
}
