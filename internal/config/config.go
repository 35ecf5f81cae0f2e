package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all application configuration
type Config struct {
	General GeneralConfig `mapstructure:"general"`
	UI      UIConfig      `mapstructure:"ui"`
	Search  SearchConfig  `mapstructure:"search"`
	Export  ExportConfig  `mapstructure:"export"`
	History HistoryConfig `mapstructure:"history"`
}

type GeneralConfig struct {
	DefaultResultLimit int  `mapstructure:"default_result_limit"`
	ConfirmOnExport    bool `mapstructure:"confirm_on_export"`
}

type UIConfig struct {
	Theme           string `mapstructure:"theme"`
	MouseEnabled    bool   `mapstructure:"mouse_enabled"`
	PanelWidthRatio int    `mapstructure:"panel_width_ratio"`
}

type SearchConfig struct {
	// StripOperatorsOnSubmit rewrites the raw search box text on submit:
	// inline operators are removed and the structured filters are appended
	// instead, so operators never appear twice.
	StripOperatorsOnSubmit bool `mapstructure:"strip_operators_on_submit"`
	ExcludeShorts          bool `mapstructure:"exclude_shorts"`
}

type ExportConfig struct {
	Directory string `mapstructure:"directory"`
	Format    string `mapstructure:"format"` // "csv" or "json"
}

type HistoryConfig struct {
	Enabled    bool `mapstructure:"enabled"`
	MaxEntries int  `mapstructure:"max_entries"`
	Persist    bool `mapstructure:"persist"`
}

// GetDefaults returns a Config with all default values
func GetDefaults() *Config {
	return &Config{
		General: GeneralConfig{
			DefaultResultLimit: 100,
			ConfirmOnExport:    false,
		},
		UI: UIConfig{
			Theme:           "default",
			MouseEnabled:    true,
			PanelWidthRatio: 35,
		},
		Search: SearchConfig{
			StripOperatorsOnSubmit: true,
			ExcludeShorts:          false,
		},
		Export: ExportConfig{
			Directory: "",
			Format:    "csv",
		},
		History: HistoryConfig{
			Enabled:    true,
			MaxEntries: 1000,
			Persist:    true,
		},
	}
}

// Load loads configuration from files
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// User config directory first, then the working directory
	if configDir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(configDir, "tubesift"))
	}
	v.AddConfigPath(".")

	v.SetDefault("general.default_result_limit", 100)
	v.SetDefault("general.confirm_on_export", false)
	v.SetDefault("ui.theme", "default")
	v.SetDefault("ui.mouse_enabled", true)
	v.SetDefault("ui.panel_width_ratio", 35)
	v.SetDefault("search.strip_operators_on_submit", true)
	v.SetDefault("search.exclude_shorts", false)
	v.SetDefault("export.directory", "")
	v.SetDefault("export.format", "csv")
	v.SetDefault("history.enabled", true)
	v.SetDefault("history.max_entries", 1000)
	v.SetDefault("history.persist", true)

	// Missing config file is fine, we have defaults
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// GetConfigPath returns the user config directory path
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "tubesift"), nil
}
