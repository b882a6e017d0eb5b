package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load loads the configuration for a variant.
// Search order: customPath -> ~/.bounce/configs/<variant>.yaml -> ./configs/<variant>.yaml -> embedded default.
// Files only need to name the keys they change; everything else keeps the
// embedded default.
func Load(v Variant, customPath string) (BounceConfig, error) {
	base := embeddedDefault(v)
	filename := string(v) + ".yaml"

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return base, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := overlay(base, data)
		if err != nil {
			return base, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return base, fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then the local configs directory
	for _, path := range []string{userConfigPath(filename), filepath.Join("configs", filename)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := overlay(base, data); err == nil && cfg.Validate() == nil {
			return cfg, nil
		}
	}

	return base, nil
}

// embeddedDefault parses the embedded YAML for v.
func embeddedDefault(v Variant) BounceConfig {
	data := GetDefaultYAML(v)
	if data == nil {
		return DefaultBounceConfig(v)
	}
	var cfg BounceConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultBounceConfig(v) // Fallback to hardcoded if embed fails
	}
	return cfg
}

// overlay decodes data on top of a copy of base.
func overlay(base BounceConfig, data []byte) (BounceConfig, error) {
	cfg := base
	// Slices would otherwise be shared with base
	cfg.Ball.ExtraSpeeds = append([]float64(nil), base.Ball.ExtraSpeeds...)
	cfg.Ball.Colors = append([]string(nil), base.Ball.Colors...)
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bounce", "configs", filename)
}
