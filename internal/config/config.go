package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config represents the application configuration
type Config struct {
	Fetch  FetchConfig  `toml:"fetch"`
	Verify VerifyConfig `toml:"verify"`
}

// FetchConfig holds the settings of the gallery scraper and downloader
type FetchConfig struct {
	WikiURL        string `toml:"wiki_url"`
	UserAgent      string `toml:"user_agent"`
	SaveDir        string `toml:"save_dir"`
	ThumbWidth     int    `toml:"thumb_width"`
	ExpectedCards  int    `toml:"expected_cards"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Timeout returns the per-request deadline
func (f FetchConfig) Timeout() time.Duration {
	return time.Duration(f.TimeoutSeconds) * time.Second
}

// VerifyConfig holds the settings of the image verifier
type VerifyConfig struct {
	CardsJSON string `toml:"cards_json"`
}

// Default returns the built-in configuration used when no config file exists
func Default() *Config {
	return &Config{
		Fetch: FetchConfig{
			WikiURL: "https://en.wikipedia.org/wiki/Rider%E2%80%93Waite_Tarot",
			// Wikimedia requires an identifying User-Agent
			UserAgent:      "Tarot-Reader-Downloader/1.0 (https://github.com/trungthanhnguyenn)",
			SaveDir:        filepath.Join("data", "image", "cards"),
			ThumbWidth:     250,
			ExpectedCards:  78,
			TimeoutSeconds: 30,
		},
		Verify: VerifyConfig{
			CardsJSON: filepath.Join("data", "json", "tarot_card_all.json"),
		},
	}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "tarot-assets", "config.toml")
}

// LoadConfigFile loads the config file at configPath. A missing file is not an
// error: the defaults are returned. Keys absent from the file keep their
// default value.
func LoadConfigFile(configPath string) (*Config, error) {
	config := Default()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if _, err := toml.DecodeFile(configPath, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	return config, nil
}

func (c *Config) validate() error {
	if c.Fetch.WikiURL == "" {
		return fmt.Errorf("fetch.wiki_url must not be empty")
	}
	if c.Fetch.SaveDir == "" {
		return fmt.Errorf("fetch.save_dir must not be empty")
	}
	if c.Fetch.ThumbWidth <= 0 {
		return fmt.Errorf("fetch.thumb_width must be positive, got %d", c.Fetch.ThumbWidth)
	}
	if c.Fetch.ExpectedCards <= 0 {
		return fmt.Errorf("fetch.expected_cards must be positive, got %d", c.Fetch.ExpectedCards)
	}
	if c.Fetch.TimeoutSeconds <= 0 {
		return fmt.Errorf("fetch.timeout_seconds must be positive, got %d", c.Fetch.TimeoutSeconds)
	}
	return nil
}

// WriteDefaultConfig writes the default config to configPath, creating its
// directory. An existing file is left untouched.
func WriteDefaultConfig(configPath string) (bool, error) {
	if _, err := os.Stat(configPath); err == nil {
		return false, nil
	}

	// Ensure the config directory exists
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return false, fmt.Errorf("error creating config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return false, fmt.Errorf("error creating config file: %w", err)
	}
	defer file.Close()

	// Encode the config to TOML
	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(Default()); err != nil {
		return false, fmt.Errorf("error encoding config: %w", err)
	}

	return true, nil
}
