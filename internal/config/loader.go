package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/spf13/viper"
)

// Environment variable prefix for camel-dashboard configuration.
const envPrefix = "CAMEL_DASHBOARD"

// Loader handles loading and merging configuration from the file,
// environment variables and defaults.
type Loader struct {
	v *viper.Viper

	// file holds the config file alone, for source tracking.
	file *viper.Viper
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	v := viper.New()

	def := DefaultConfig()
	v.SetDefault("kubernetes.kubeconfig", def.Kubernetes.Kubeconfig)
	v.SetDefault("kubernetes.context", "")
	v.SetDefault("kubernetes.namespace", "")
	v.SetDefault("camel.group", def.Camel.Group)
	v.SetDefault("camel.version", def.Camel.Version)
	v.SetDefault("camel.resource", def.Camel.Resource)
	v.SetDefault("camel.appLabel", def.Camel.AppLabel)
	v.SetDefault("watch.interval", def.Watch.Interval)
	v.SetDefault("output.locale", def.Output.Locale)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Short names for the common settings.
	_ = v.BindEnv("kubernetes.kubeconfig", EnvKubeconfig)
	_ = v.BindEnv("kubernetes.context", EnvContext)
	_ = v.BindEnv("kubernetes.namespace", EnvNamespace)
	_ = v.BindEnv("output.locale", EnvLocale)

	return &Loader{v: v, file: viper.New()}
}

// Load loads configuration from the given file path.
// If configFile is empty, it uses the default config file path.
// A missing file is not an error. Environment variables take precedence
// over file values, which take precedence over defaults.
func (l *Loader) Load(configFile string) (*Config, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return nil, fmt.Errorf("expanding config path: %w", err)
	}

	for _, v := range []*viper.Viper{l.v, l.file} {
		v.SetConfigFile(expandedPath)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil && !isNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg Config
	if err := l.v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// FileValue returns the value of key as written in the config file.
func (l *Loader) FileValue(key string) (any, bool) {
	if !l.file.IsSet(key) {
		return nil, false
	}
	return l.file.Get(key), true
}

func isNotExist(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

// ConfigFileExists checks if the config file exists.
func ConfigFileExists(configFile string) (bool, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return false, err
		}
	}

	expandedPath, err := ExpandPath(configFile)
	if err != nil {
		return false, err
	}

	return fileExists(expandedPath)
}
