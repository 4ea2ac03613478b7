// Package config provides configuration loading and management.
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.NotNil(t, cfg)

	assert.Equal(t, "~/.kube/config", cfg.Kubernetes.Kubeconfig)
	assert.Empty(t, cfg.Kubernetes.Namespace)
	assert.Empty(t, cfg.Kubernetes.Context)

	assert.Equal(t, "camel.apache.org", cfg.Camel.Group)
	assert.Equal(t, "v1alpha1", cfg.Camel.Version)
	assert.Equal(t, "camelapps", cfg.Camel.Resource)
	assert.Equal(t, "camel.apache.org/app", cfg.Camel.AppLabel)
	assert.Equal(t, "en", cfg.Output.Locale)

	assert.NoError(t, cfg.Validate())
}

func TestWatchInterval(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, 2*time.Second, cfg.WatchInterval())

	cfg.Watch.Interval = "500ms"
	assert.Equal(t, 500*time.Millisecond, cfg.WatchInterval())

	cfg.Watch.Interval = "soon"
	assert.Equal(t, 2*time.Second, cfg.WatchInterval())
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Kubernetes.Namespace = "Bad_Namespace"
	cfg.Camel.AppLabel = "not a label"
	cfg.Watch.Interval = "-1s"
	cfg.Camel.Resource = ""

	err := cfg.Validate()
	require.Error(t, err)

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)

	fields := make(map[string]bool)
	for _, e := range verrs {
		fields[e.Field] = true
	}
	assert.True(t, fields["kubernetes.namespace"])
	assert.True(t, fields["camel.appLabel"])
	assert.True(t, fields["watch.interval"])
	assert.True(t, fields["camel.resource"])
	assert.Contains(t, err.Error(), "config validation failed")
}

func TestKubernetesConfig_ZeroValue(t *testing.T) {
	var k8sCfg KubernetesConfig

	assert.Empty(t, k8sCfg.Kubeconfig)
	assert.Empty(t, k8sCfg.Context)
	assert.Empty(t, k8sCfg.Namespace)
}
