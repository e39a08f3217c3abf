package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// validator is implemented by every game configuration.
type validator interface {
	Validate() error
}

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.arcade/configs/breakout.{yaml,toml} -> ./configs/breakout.{yaml,toml} -> embedded default
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	return load("breakout", customPath, DefaultBreakoutConfig)
}

// LoadShooter loads Galaxy Shooter configuration.
// Search order: customPath -> ~/.arcade/configs/shooter.{yaml,toml} -> ./configs/shooter.{yaml,toml} -> embedded default
func LoadShooter(customPath string) (ShooterConfig, error) {
	return load("shooter", customPath, DefaultShooterConfig)
}

// LoadTetris loads Tetris configuration.
// Search order: customPath -> ~/.arcade/configs/tetris.{yaml,toml} -> ./configs/tetris.{yaml,toml} -> embedded default
func LoadTetris(customPath string) (TetrisConfig, error) {
	return load("tetris", customPath, DefaultTetrisConfig)
}

// load resolves a game's configuration. Files start from the hardcoded
// defaults so that partial files only override what they mention.
// A broken custom path is an error; broken files elsewhere are skipped.
func load[T validator](gameID, customPath string, defaults func() T) (T, error) {
	if customPath != "" {
		cfg := defaults()
		if err := decodeFile(customPath, &cfg); err != nil {
			return cfg, err
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range searchPaths(gameID) {
		cfg := defaults()
		if err := decodeFile(path, &cfg); err != nil {
			continue
		}
		if cfg.Validate() == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(GetDefaultYAML(gameID), &cfg); err != nil || cfg.Validate() != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// searchPaths lists the candidate files for a game, most specific first.
func searchPaths(gameID string) []string {
	var paths []string
	for _, ext := range []string{".yaml", ".toml"} {
		if p := userConfigPath(gameID + ext); p != "" {
			paths = append(paths, p)
		}
	}
	for _, ext := range []string{".yaml", ".toml"} {
		paths = append(paths, filepath.Join("configs", gameID+ext))
	}
	return paths
}

// decodeFile reads path into out, choosing the format by extension.
func decodeFile(path string, out any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := Decode(path, data, out); err != nil {
		return fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return nil
}

// Decode parses data as TOML when name ends in .toml and as YAML otherwise.
func Decode(name string, data []byte, out any) error {
	if strings.EqualFold(filepath.Ext(name), ".toml") {
		_, err := toml.Decode(string(data), out)
		return err
	}
	return yaml.Unmarshal(data, out)
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
