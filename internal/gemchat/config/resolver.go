package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// ExpandEnvVar expands an environment variable reference in the given
// value. Supports both $VAR and ${VAR} syntax. A plain value is
// returned as-is; an unset variable expands to the empty string.
func ExpandEnvVar(value string) string {
	if !strings.HasPrefix(value, "$") {
		return value
	}

	var name string
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		name = value[2 : len(value)-1]
	} else {
		name = strings.TrimPrefix(value, "$")
	}

	return os.Getenv(name)
}

// ResolvePath converts a relative path to an absolute one, using the
// config file's directory as the base when a config file is in use.
func ResolvePath(path string) (string, error) {
	if filepath.IsAbs(path) {
		return path, nil
	}

	configFile := viper.ConfigFileUsed()
	if configFile == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current working directory: %w", err)
		}
		return filepath.Join(cwd, path), nil
	}

	configDir := filepath.Dir(configFile)
	if !filepath.IsAbs(configDir) {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("getting current working directory: %w", err)
		}
		configDir = filepath.Join(cwd, configDir)
	}

	return filepath.Join(configDir, path), nil
}
