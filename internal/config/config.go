// This file defines the configuration structure for the application.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/promac3k/sistema-gestao-atualizacoes/internal/logging"
)

// Config holds all configuration settings for the application.
// It maps directly to the structure of config.yml.
type Config struct {
	Port     int    `mapstructure:"port"`
	Locale   string `mapstructure:"locale"`
	Database struct {
		Path string `mapstructure:"path"`
	} `mapstructure:"database"`
	Log struct {
		Level       string `mapstructure:"level"`
		Development bool   `mapstructure:"development"`
	} `mapstructure:"log"`
	Checker struct {
		Delay           time.Duration `mapstructure:"delay"`
		ScheduleMinutes int           `mapstructure:"schedule_minutes"`
	} `mapstructure:"checker"`
	HTTP struct {
		Timeout time.Duration `mapstructure:"timeout"`
	} `mapstructure:"http"`
	Catalogs struct {
		// Offline replaces the remote catalogs with a fixed in-memory one.
		Offline bool `mapstructure:"offline"`
		Winget  struct {
			APIURL string `mapstructure:"api_url"`
			RawURL string `mapstructure:"raw_url"`
		} `mapstructure:"winget"`
		Chocolatey struct {
			APIURL string `mapstructure:"api_url"`
		} `mapstructure:"chocolatey"`
		GitHub struct {
			APIURL string `mapstructure:"api_url"`
			Token  string `mapstructure:"token"`
		} `mapstructure:"github"`
	} `mapstructure:"catalogs"`
	Inventory struct {
		ImportDir string `mapstructure:"import_dir"`
	} `mapstructure:"inventory"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 8080)
	v.SetDefault("locale", "auto")
	v.SetDefault("database.path", "./sga.db")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.development", false)
	v.SetDefault("checker.delay", "1s")
	v.SetDefault("checker.schedule_minutes", 0)
	v.SetDefault("http.timeout", "20s")
	v.SetDefault("catalogs.offline", false)
	v.SetDefault("catalogs.winget.api_url", "https://api.github.com/repos/microsoft/winget-pkgs/contents")
	v.SetDefault("catalogs.winget.raw_url", "https://raw.githubusercontent.com/microsoft/winget-pkgs/master")
	v.SetDefault("catalogs.chocolatey.api_url", "https://community.chocolatey.org/api/v2")
	v.SetDefault("catalogs.github.api_url", "https://api.github.com")
	v.SetDefault("catalogs.github.token", "")
	v.SetDefault("inventory.import_dir", "")
}

// Load reads configuration from a file named "config.yml" in the
// current directory and unmarshals it into a Config struct.
func Load() (*Config, error) {
	return LoadFrom("")
}

// LoadFrom reads the given config file, or config.yml in the current
// directory when path is empty. A missing config.yml is not an error.
func LoadFrom(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config") // name of config file (without extension)
		v.SetConfigType("yml")
		v.AddConfigPath(".")
	}

	// SGA_CATALOGS_GITHUB_TOKEN overrides `catalogs.github.token`, and so on.
	v.SetEnvPrefix("SGA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Validate rejects settings the services cannot run with.
func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.Checker.Delay < 0 {
		return fmt.Errorf("checker.delay must not be negative, got %s", c.Checker.Delay)
	}
	if c.Checker.ScheduleMinutes < 0 {
		return fmt.Errorf("checker.schedule_minutes must not be negative, got %d", c.Checker.ScheduleMinutes)
	}
	if c.HTTP.Timeout <= 0 {
		return fmt.Errorf("http.timeout must be positive, got %s", c.HTTP.Timeout)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
