package kubernetes

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camel-tooling/camel-dashboard-cli/internal/config"
	oerrors "github.com/camel-tooling/camel-dashboard-cli/internal/errors"
)

func TestResolveKubeconfig(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name      string
		flagValue string
		envOwn    string
		envKube   string
		want      string
	}{
		{
			name:      "flag takes precedence",
			flagValue: "/custom/kubeconfig",
			envOwn:    "/camel/kubeconfig",
			envKube:   "/env/kubeconfig",
			want:      "/custom/kubeconfig",
		},
		{
			name:    "CAMEL_DASHBOARD_KUBECONFIG takes precedence over KUBECONFIG",
			envOwn:  "/camel/kubeconfig",
			envKube: "/env/kubeconfig",
			want:    "/camel/kubeconfig",
		},
		{
			name:    "KUBECONFIG used when no flag or own env",
			envKube: "/env/kubeconfig",
			want:    "/env/kubeconfig",
		},
		{
			name: "falls back to ~/.kube/config",
			want: filepath.Join(home, ".kube", "config"),
		},
		{
			name:      "tilde is expanded",
			flagValue: "~/clusters/dev.yaml",
			want:      filepath.Join(home, "clusters", "dev.yaml"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(config.EnvKubeconfig, tt.envOwn)
			t.Setenv("KUBECONFIG", tt.envKube)

			assert.Equal(t, tt.want, resolveKubeconfig(tt.flagValue))
		})
	}
}

func TestNewClient_MissingKubeconfig(t *testing.T) {
	ResetClient()
	t.Cleanup(ResetClient)

	_, err := NewClient(ClientOptions{Kubeconfig: filepath.Join(t.TempDir(), "absent")})
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrConnectivity)
}

func TestResetClient(t *testing.T) {
	clientMu.Lock()
	cachedClient = &Client{}
	clientMu.Unlock()

	ResetClient()

	clientMu.Lock()
	defer clientMu.Unlock()
	assert.Nil(t, cachedClient)
}

func TestNewClientFromInterfaces_DefaultNamespace(t *testing.T) {
	c := NewFakeClient("")
	assert.Equal(t, "default", c.Namespace)
	assert.NotNil(t, c.Dynamic)
	assert.NotNil(t, c.Clientset)
	assert.Nil(t, c.RestConfig)
}
