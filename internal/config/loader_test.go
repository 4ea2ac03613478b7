package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		tmpDir := t.TempDir()
		configFile := filepath.Join(tmpDir, "config.yaml")

		content := `
kubernetes:
  kubeconfig: /path/to/kubeconfig
  context: production
  namespace: team-a
camel:
  appLabel: app.kubernetes.io/name
watch:
  interval: 5s
log:
  timestamps: false
`
		require.NoError(t, os.WriteFile(configFile, []byte(content), 0o644))

		cfg, err := NewLoader().Load(configFile)

		require.NoError(t, err)
		assert.Equal(t, "/path/to/kubeconfig", cfg.Kubernetes.Kubeconfig)
		assert.Equal(t, "production", cfg.Kubernetes.Context)
		assert.Equal(t, "team-a", cfg.Kubernetes.Namespace)
		assert.Equal(t, "app.kubernetes.io/name", cfg.Camel.AppLabel)
		assert.Equal(t, "camelapps", cfg.Camel.Resource, "unset keys keep defaults")
		assert.Equal(t, "5s", cfg.Watch.Interval)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.False(t, *cfg.Log.Timestamps)
	})

	t.Run("returns defaults for missing file", func(t *testing.T) {
		tmpDir := t.TempDir()

		cfg, err := NewLoader().Load(filepath.Join(tmpDir, "nonexistent.yaml"))

		require.NoError(t, err)
		assert.Equal(t, "~/.kube/config", cfg.Kubernetes.Kubeconfig)
		assert.Empty(t, cfg.Kubernetes.Namespace)
		assert.Equal(t, "camel.apache.org/app", cfg.Camel.AppLabel)
	})

	t.Run("loads from environment variables", func(t *testing.T) {
		t.Setenv("CAMEL_DASHBOARD_KUBECONFIG", "/env/kubeconfig")
		t.Setenv("CAMEL_DASHBOARD_NAMESPACE", "env-namespace")
		t.Setenv("CAMEL_DASHBOARD_WATCH_INTERVAL", "10s")

		cfg, err := NewLoader().Load(filepath.Join(t.TempDir(), "none.yaml"))

		require.NoError(t, err)
		assert.Equal(t, "/env/kubeconfig", cfg.Kubernetes.Kubeconfig)
		assert.Equal(t, "env-namespace", cfg.Kubernetes.Namespace)
		assert.Equal(t, "10s", cfg.Watch.Interval)
	})

	t.Run("rejects malformed file", func(t *testing.T) {
		configFile := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(configFile, []byte("kubernetes: [unclosed"), 0o644))

		_, err := NewLoader().Load(configFile)
		assert.Error(t, err)
	})
}

func TestLoaderFileValue(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("kubernetes:\n  namespace: team-a\n"), 0o644))

	loader := NewLoader()
	_, err := loader.Load(configFile)
	require.NoError(t, err)

	v, ok := loader.FileValue("kubernetes.namespace")
	assert.True(t, ok)
	assert.Equal(t, "team-a", v)

	_, ok = loader.FileValue("kubernetes.context")
	assert.False(t, ok)
}

func TestConfigFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	exists, err := ConfigFileExists(path)
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0o644))
	exists, err = ConfigFileExists(path)
	require.NoError(t, err)
	assert.True(t, exists)
}
