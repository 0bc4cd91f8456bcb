package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures wordbook's settings.
type Config struct {
	WordsFile    string // empty uses the built-in list
	SearchPrefix string
	GridColumns  int
	LogFile      string // empty disables logging
}

const (
	defaultConfigPath   = "~/.config/wordbook/config.toml"
	defaultSearchPrefix = "https://www.google.com/search?q="
	defaultGridColumns  = 4
	maxGridColumns      = 13
)

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		SearchPrefix: defaultSearchPrefix,
		GridColumns:  defaultGridColumns,
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		WordsFile    string `toml:"words_file"`
		SearchPrefix string `toml:"search_prefix"`
		GridColumns  int    `toml:"grid_columns"`
		LogFile      string `toml:"log_file"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if prefix := strings.TrimSpace(raw.SearchPrefix); prefix != "" {
		cfg.SearchPrefix = prefix
	}

	switch {
	case raw.GridColumns == 0:
	case raw.GridColumns < 1 || raw.GridColumns > maxGridColumns:
		return Config{}, fmt.Errorf("grid_columns must be between 1 and %d, got %d", maxGridColumns, raw.GridColumns)
	default:
		cfg.GridColumns = raw.GridColumns
	}

	if words := strings.TrimSpace(raw.WordsFile); words != "" {
		cfg.WordsFile, err = expandPath(words)
		if err != nil {
			return Config{}, fmt.Errorf("words_file: %w", err)
		}
	}
	if logFile := strings.TrimSpace(raw.LogFile); logFile != "" {
		cfg.LogFile, err = expandPath(logFile)
		if err != nil {
			return Config{}, fmt.Errorf("log_file: %w", err)
		}
	}

	return cfg, nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

// ExpandPath resolves a leading ~ and returns an absolute path.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
