package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Content holds configuration for the game content compiler.
type Content struct {
	// Directory with the declarative content files (object.txt etc).
	DataDir string `yaml:"data_dir"`

	// Log level: debug, info, warn, error.
	LogLevel string `yaml:"log_level"`
}

// DefaultContent returns Content config with sensible defaults.
func DefaultContent() Content {
	return Content{
		DataDir:  "gamedata",
		LogLevel: "info",
	}
}

// LoadContent loads content config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadContent(path string) (Content, error) {
	cfg := DefaultContent()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
