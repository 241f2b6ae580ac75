package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadPongora loads configuration for a variant.
// Search order: customPath -> ~/.pongora/configs/<id>.yaml -> ./configs/<id>.yaml -> embedded default.
// Every source is decoded over the variant's hard-coded defaults, so a file
// only needs the keys it changes.
func LoadPongora(customPath, id string) (PongoraConfig, error) {
	filename := id + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultFor(id), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := decode(id, data)
		if err != nil {
			return DefaultFor(id), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := decode(id, data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if cfg, err := decode(id, data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	if data := GetDefaultYAML(id); data != nil {
		if cfg, err := decode(id, data); err == nil {
			return cfg, nil
		}
	}
	return DefaultFor(id), nil // Fallback to hardcoded if embed fails
}

// decode parses data over the defaults for id and validates the result.
func decode(id string, data []byte) (PongoraConfig, error) {
	cfg := DefaultFor(id)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".pongora", "configs", filename)
}
