package config

import (
	"errors"
	"io/fs"
	"os"
	"sort"

	"github.com/camel-tooling/camel-dashboard-cli/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) CAMEL_DASHBOARD_CONFIG env, (3) default.
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv(EnvConfig)

	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	switch {
	case opts.FlagValue != "":
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	case envValue != "":
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	default:
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// ResolveOptions carries the flag values that take part in resolution.
// Empty strings and nil pointers mean the flag was not given.
type ResolveOptions struct {
	ConfigFlag     string
	KubeconfigFlag string
	ContextFlag    string
	NamespaceFlag  string
	LocaleFlag     string
	TimestampsFlag *bool
}

// Resolved is the effective configuration for one invocation.
type Resolved struct {
	Config     *Config
	ConfigPath string
	Values     []ResolvedValue
}

// Value returns the resolution record of key.
func (r *Resolved) Value(key string) (ResolvedValue, bool) {
	for _, v := range r.Values {
		if v.Key == key {
			return v, true
		}
	}
	return ResolvedValue{}, false
}

// Resolve loads the config file and applies flag > env > config > default
// to every key, recording the source of each value.
func Resolve(opts ResolveOptions) (*Resolved, error) {
	pathResult, err := ResolveConfigPath(ResolveConfigPathOptions{FlagValue: opts.ConfigFlag})
	if err != nil {
		return nil, err
	}

	loader := NewLoader()
	cfg, err := loader.Load(pathResult.ConfigPath)
	if err != nil {
		return nil, err
	}

	defaults := DefaultConfig()
	r := &Resolved{Config: cfg, ConfigPath: pathResult.ConfigPath}
	r.Values = append(r.Values, ResolvedValue{
		Key:      "config",
		Value:    pathResult.ConfigPath,
		Source:   pathResult.Source,
		Shadowed: stringShadows(pathResult.Shadowed),
	})

	strKeys := []struct {
		key    string
		env    string
		flag   string
		def    string
		target *string
	}{
		{"kubernetes.kubeconfig", EnvKubeconfig, opts.KubeconfigFlag, defaults.Kubernetes.Kubeconfig, &cfg.Kubernetes.Kubeconfig},
		{"kubernetes.context", EnvContext, opts.ContextFlag, "", &cfg.Kubernetes.Context},
		{"kubernetes.namespace", EnvNamespace, opts.NamespaceFlag, "", &cfg.Kubernetes.Namespace},
		{"output.locale", EnvLocale, opts.LocaleFlag, defaults.Output.Locale, &cfg.Output.Locale},
		{"camel.group", "", "", defaults.Camel.Group, &cfg.Camel.Group},
		{"camel.version", "", "", defaults.Camel.Version, &cfg.Camel.Version},
		{"camel.resource", "", "", defaults.Camel.Resource, &cfg.Camel.Resource},
		{"camel.appLabel", "", "", defaults.Camel.AppLabel, &cfg.Camel.AppLabel},
		{"watch.interval", "", "", defaults.Watch.Interval, &cfg.Watch.Interval},
	}

	for _, k := range strKeys {
		rv := resolveString(loader, k.key, k.env, k.flag, k.def)
		if s, ok := rv.Value.(string); ok {
			*k.target = s
		}
		r.Values = append(r.Values, rv)
	}

	ts := ResolvedValue{Key: "log.timestamps", Source: SourceDefault, Value: true, Shadowed: map[ConfigSource]any{}}
	if fv, ok := loader.FileValue("log.timestamps"); ok {
		ts.Value = fv
		ts.Source = SourceConfig
	}
	if opts.TimestampsFlag != nil {
		if ts.Source == SourceConfig {
			ts.Shadowed[SourceConfig] = ts.Value
		}
		ts.Value = *opts.TimestampsFlag
		ts.Source = SourceFlag
	}
	if b, ok := ts.Value.(bool); ok {
		cfg.Log.Timestamps = &b
	}
	r.Values = append(r.Values, ts)

	return r, nil
}

// resolveString applies flag > env > config > default to one key.
func resolveString(loader *Loader, key, env, flag, def string) ResolvedValue {
	rv := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]any)}

	var envValue string
	if env != "" {
		envValue = os.Getenv(env)
	} else {
		envValue = os.Getenv(autoEnvName(key))
	}
	fileValue, inFile := loader.FileValue(key)
	fileStr, _ := fileValue.(string)
	inFile = inFile && fileStr != ""

	switch {
	case flag != "":
		rv.Value, rv.Source = flag, SourceFlag
		if envValue != "" {
			rv.Shadowed[SourceEnv] = envValue
		}
		if inFile {
			rv.Shadowed[SourceConfig] = fileStr
		}
	case envValue != "":
		rv.Value, rv.Source = envValue, SourceEnv
		if inFile {
			rv.Shadowed[SourceConfig] = fileStr
		}
	case inFile:
		rv.Value, rv.Source = fileStr, SourceConfig
	default:
		rv.Value, rv.Source = def, SourceDefault
	}
	return rv
}

// autoEnvName mirrors the viper AutomaticEnv mapping for key.
func autoEnvName(key string) string {
	b := []byte(envPrefix + "_" + key)
	for i, c := range b {
		switch {
		case c == '.':
			b[i] = '_'
		case c >= 'a' && c <= 'z':
			b[i] = c - 'a' + 'A'
		}
	}
	return string(b)
}

func stringShadows(in map[ConfigSource]string) map[ConfigSource]any {
	out := make(map[ConfigSource]any, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		sources := make([]string, 0, len(v.Shadowed))
		for source := range v.Shadowed {
			sources = append(sources, string(source))
		}
		sort.Strings(sources)
		for _, source := range sources {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", v.Shadowed[ConfigSource(source)],
			)
		}
	}
}

func fileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}
