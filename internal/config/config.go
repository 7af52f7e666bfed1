package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"LOG_FILE" env-default:"tictactoe.log"`
	// Inline renders in the normal screen buffer instead of the alternate one.
	Inline bool  `yaml:"inline" env:"INLINE"`
	Theme  Theme `yaml:"theme"`
}

// Theme holds terminal colours, as ANSI 256 codes or hex strings.
type Theme struct {
	XColor         string `yaml:"x-color" env:"THEME_X_COLOR" env-default:"39"`
	OColor         string `yaml:"o-color" env:"THEME_O_COLOR" env-default:"205"`
	HighlightColor string `yaml:"highlight-color" env:"THEME_HIGHLIGHT_COLOR" env-default:"220"`
	DrawColor      string `yaml:"draw-color" env:"THEME_DRAW_COLOR" env-default:"160"`
	AccentColor    string `yaml:"accent-color" env:"THEME_ACCENT_COLOR" env-default:"63"`
}

// Load - reads the config file if it exists, environment variables otherwise.
// Environment variables override values from the file.
func Load(path string) (*Config, error) {
	config := &Config{}

	_, err := os.Stat(path)
	switch {
	case err == nil:
		if err = cleanenv.ReadConfig(path, config); err != nil {
			return nil, fmt.Errorf("unable to read config file %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from environment: %w", err)
		}
	default:
		return nil, fmt.Errorf("unable to stat config file %s: %w", path, err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}
