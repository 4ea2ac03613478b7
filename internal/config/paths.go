package config

import (
	"os"
	"path/filepath"
)

// Environment variables read directly by the CLI.
const (
	EnvConfig     = "CAMEL_DASHBOARD_CONFIG"
	EnvKubeconfig = "CAMEL_DASHBOARD_KUBECONFIG"
	EnvContext    = "CAMEL_DASHBOARD_CONTEXT"
	EnvNamespace  = "CAMEL_DASHBOARD_NAMESPACE"
	EnvLocale     = "CAMEL_DASHBOARD_LOCALE"
)

// Paths contains standard filesystem paths for camel-dashboard.
type Paths struct {
	// ConfigFile is the path to the config file (~/.camel-dashboard/config.yaml).
	ConfigFile string

	// HomeDir is the camel-dashboard home directory (~/.camel-dashboard).
	HomeDir string
}

// DefaultPaths returns the default paths.
func DefaultPaths() (*Paths, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	home := filepath.Join(homeDir, ".camel-dashboard")

	return &Paths{
		ConfigFile: filepath.Join(home, "config.yaml"),
		HomeDir:    home,
	}, nil
}

// GetConfigFile returns the config file path.
// If CAMEL_DASHBOARD_CONFIG is set, it takes precedence.
func GetConfigFile() (string, error) {
	if envPath := os.Getenv(EnvConfig); envPath != "" {
		return envPath, nil
	}

	paths, err := DefaultPaths()
	if err != nil {
		return "", err
	}

	return paths.ConfigFile, nil
}

// ExpandPath expands ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if len(path) == 0 {
		return path, nil
	}

	if path[0] != '~' {
		return path, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	if len(path) == 1 {
		return homeDir, nil
	}

	// Handle ~/path/to/something
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:]), nil
	}

	// ~username is not supported
	return path, nil
}
