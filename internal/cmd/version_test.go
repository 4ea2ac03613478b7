package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camel-tooling/camel-dashboard-cli/internal/version"
)

func TestNewVersionCmd(t *testing.T) {
	cmd := NewVersionCmd(&GlobalConfig{})

	assert.Equal(t, "version", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotNil(t, cmd.Flags().Lookup("output"))
}

func TestVersionCmd_Execute(t *testing.T) {
	out, err := execute(t, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "camel-dashboard version "+version.Version)
	assert.Contains(t, out, "Go:")
}

func TestVersionCmd_JSON(t *testing.T) {
	out, err := execute(t, nil, "version", "-o", "json")
	require.NoError(t, err)

	var info version.Info
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, version.Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
}
