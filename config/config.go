// Package config loads wallet configuration from YAML and builds the logger.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"ternary.dev/ledger/trinary"
)

type Config struct {
	DataDir          string `yaml:"data_dir" json:"data_dir"`
	LogLevel         string `yaml:"log_level" json:"log_level"`
	LogFormat        string `yaml:"log_format" json:"log_format"`
	Security         int    `yaml:"security" json:"security"`
	HMACKey          string `yaml:"hmac_key" json:"hmac_key,omitempty"`
	VerifySignatures bool   `yaml:"verify_signatures" json:"verify_signatures"`
}

var allowedLogLevels = map[string]struct{}{
	"debug": {},
	"info":  {},
	"warn":  {},
	"error": {},
}

var allowedLogFormats = map[string]struct{}{
	"text": {},
	"json": {},
}

func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".ternary-ledger"
	}
	return filepath.Join(home, ".ternary-ledger")
}

func DefaultConfig() Config {
	return Config{
		DataDir:   DefaultDataDir(),
		LogLevel:  "info",
		LogFormat: "text",
		Security:  2,
	}
}

// ConfigPath returns the config file inside dataDir, or "" if dataDir is empty.
func ConfigPath(dataDir string) string {
	if dataDir == "" {
		return ""
	}
	return filepath.Join(dataDir, "config.yaml")
}

// LoadConfig overlays the YAML file at path on DefaultConfig. An empty path or
// a missing file yields the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path) // #nosec G304 -- operator-supplied config path.
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func ValidateConfig(cfg Config) error {
	if strings.TrimSpace(cfg.DataDir) == "" {
		return errors.New("data_dir is required")
	}
	logLevel := strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if _, ok := allowedLogLevels[logLevel]; !ok {
		return fmt.Errorf("invalid log_level %q", cfg.LogLevel)
	}
	if _, ok := allowedLogFormats[strings.ToLower(strings.TrimSpace(cfg.LogFormat))]; !ok {
		return fmt.Errorf("invalid log_format %q", cfg.LogFormat)
	}
	if cfg.Security < 1 || cfg.Security > trinary.MaxSecurityLevel {
		return fmt.Errorf("security must be in [1, %d]", trinary.MaxSecurityLevel)
	}
	if cfg.HMACKey != "" && !trinary.IsTrytes(cfg.HMACKey) {
		return errors.New("hmac_key must be trytes")
	}
	return nil
}
