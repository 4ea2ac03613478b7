// Package config provides configuration loading and management.
package config

import (
	"time"

	"github.com/camel-tooling/camel-dashboard-cli/internal/camelapp"
)

// Defaults for values that have one.
const (
	DefaultKubeconfig    = "~/.kube/config"
	DefaultAppLabel      = "camel.apache.org/app"
	DefaultWatchInterval = "2s"
	DefaultLocale        = "en"
)

// KubernetesConfig contains Kubernetes-specific settings.
type KubernetesConfig struct {
	// Kubeconfig is the path to the kubeconfig file.
	// Env: CAMEL_DASHBOARD_KUBECONFIG, Default: ~/.kube/config
	Kubeconfig string `json:"kubeconfig,omitempty" mapstructure:"kubeconfig"`

	// Context is the Kubernetes context to use.
	// Env: CAMEL_DASHBOARD_CONTEXT, Default: current-context from kubeconfig
	Context string `json:"context,omitempty" mapstructure:"context"`

	// Namespace is the namespace used when neither -n nor -A is given.
	// Env: CAMEL_DASHBOARD_NAMESPACE, Default: the kubeconfig context namespace
	Namespace string `json:"namespace,omitempty" mapstructure:"namespace"`
}

// CamelConfig identifies the CamelApp resource and its workloads.
type CamelConfig struct {
	Group    string `json:"group" mapstructure:"group"`
	Version  string `json:"version" mapstructure:"version"`
	Resource string `json:"resource" mapstructure:"resource"`

	// AppLabel is the label key whose value is the CamelApp name on the
	// Deployments, Pods and Services that back it.
	AppLabel string `json:"appLabel" mapstructure:"appLabel"`
}

// WatchConfig contains settings for --watch.
type WatchConfig struct {
	// Interval is the minimum time between two redraws, as a Go duration.
	Interval string `json:"interval" mapstructure:"interval"`
}

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty" mapstructure:"timestamps"`
}

// OutputConfig contains terminal output settings.
type OutputConfig struct {
	// Locale is a BCP 47 tag used to format message text.
	// Env: CAMEL_DASHBOARD_LOCALE, Default: en
	Locale string `json:"locale,omitempty" mapstructure:"locale"`
}

// Config represents the camel-dashboard configuration file
// (~/.camel-dashboard/config.yaml).
type Config struct {
	Kubernetes KubernetesConfig `json:"kubernetes" mapstructure:"kubernetes"`
	Camel      CamelConfig      `json:"camel" mapstructure:"camel"`
	Watch      WatchConfig      `json:"watch" mapstructure:"watch"`
	Log        LogConfig        `json:"log" mapstructure:"log"`
	Output     OutputConfig     `json:"output" mapstructure:"output"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `camel-dashboard config init` to generate the initial file.
func DefaultConfig() *Config {
	return &Config{
		Kubernetes: KubernetesConfig{
			Kubeconfig: DefaultKubeconfig,
		},
		Camel: CamelConfig{
			Group:    camelapp.Group,
			Version:  camelapp.Version,
			Resource: camelapp.Resource,
			AppLabel: DefaultAppLabel,
		},
		Watch: WatchConfig{
			Interval: DefaultWatchInterval,
		},
		Output: OutputConfig{
			Locale: DefaultLocale,
		},
	}
}

// WatchInterval parses Watch.Interval, falling back to the default.
func (c *Config) WatchInterval() time.Duration {
	if d, err := time.ParseDuration(c.Watch.Interval); err == nil && d > 0 {
		return d
	}
	d, _ := time.ParseDuration(DefaultWatchInterval)
	return d
}

// ResolvedValue records where a configuration value came from.
type ResolvedValue struct {
	Key      string
	Value    any
	Source   ConfigSource
	Shadowed map[ConfigSource]any
}
