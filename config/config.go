package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the application
type Config struct {
	// Game configuration
	Game GameConfig `json:"game"`

	// Server configuration
	Server ServerConfig `json:"server"`

	// Console configuration
	Console ConsoleConfig `json:"console"`
}

// GameConfig holds game specific configuration
type GameConfig struct {
	// Directory holding the game data files
	DataDir string `json:"data_dir" env:"CULTIVATION_DATA_DIR"`

	// Event catalog file, relative to DataDir (.json, .yaml or .yml)
	CatalogFile string `json:"catalog_file" env:"CULTIVATION_CATALOG_FILE"`

	// Seed for event selection; 0 draws a random seed at startup
	Seed int64 `json:"seed" env:"CULTIVATION_SEED"`

	// Turn limit for autopilot playthroughs
	AutoPilotMaxTurns int `json:"autopilot_max_turns" env:"CULTIVATION_AUTOPILOT_MAX_TURNS"`
}

// ServerConfig holds server specific configuration
type ServerConfig struct {
	// Server port
	Port string `json:"port" env:"CULTIVATION_PORT"`

	// Log level (debug, info, warn, error)
	LogLevel string `json:"log_level" env:"CULTIVATION_LOG_LEVEL"`

	// Public URL encoded in the share QR code
	PublicURL string `json:"public_url" env:"CULTIVATION_PUBLIC_URL"`
}

// ConsoleConfig holds terminal renderer configuration
type ConsoleConfig struct {
	// Column at which narrative text wraps
	WrapWidth int `json:"wrap_width" env:"CULTIVATION_WRAP_WIDTH"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Game: GameConfig{
			DataDir:           "./assets/data",
			CatalogFile:       "events.yaml",
			Seed:              0,
			AutoPilotMaxTurns: 500,
		},
		Server: ServerConfig{
			Port:      "8080",
			LogLevel:  "info",
			PublicURL: "http://localhost:8080",
		},
		Console: ConsoleConfig{
			WrapWidth: 72,
		},
	}
}

// LoadConfig loads configuration from a file and applies environment
// overrides. A missing file is created with the defaults.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return config, err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := SaveConfig(config, path); err != nil {
			return config, err
		}
		return config, ApplyEnv(&config)
	}

	file, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("decode config %s: %w", path, err)
	}

	return config, ApplyEnv(&config)
}

// ApplyEnv overrides configuration fields from environment variables
func ApplyEnv(config *Config) error {
	if err := env.Parse(config); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// SaveConfig saves configuration to a file
func SaveConfig(config Config, path string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	// Create or truncate file
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	// Write config to file
	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(config); err != nil {
		return err
	}

	return nil
}
