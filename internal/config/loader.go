package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/agar.yaml
var defaultEnvYAML []byte

// Load reads an EnvConfig from YAML.
// Search order: customPath -> ~/.agar/config.yaml -> ./configs/agar.yaml -> embedded default.
// Unknown keys fail the load rather than being silently dropped.
func Load(customPath string) (EnvConfig, error) {
	cfg := DefaultEnvConfig()

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := unmarshalStrict(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userPath := userConfigPath("config.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := unmarshalStrict(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", userPath, err)
			}
			return cfg, nil
		}
	}

	if data, err := os.ReadFile("configs/agar.yaml"); err == nil {
		if err := unmarshalStrict(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse configs/agar.yaml: %w", err)
		}
		return cfg, nil
	}

	if err := unmarshalStrict(defaultEnvYAML, &cfg); err != nil {
		return DefaultEnvConfig(), nil
	}
	return cfg, nil
}

// unmarshalStrict decodes YAML rejecting any key that does not map to a
// known field.
func unmarshalStrict(data []byte, out *EnvConfig) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// userConfigPath returns the path to a user config file, or empty if the
// home directory is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".agar", filename)
}
