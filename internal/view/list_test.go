package view

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camel-tooling/camel-dashboard-cli/internal/camelapp"
	"github.com/camel-tooling/camel-dashboard-cli/internal/output"
	"github.com/camel-tooling/camel-dashboard-cli/internal/testutil"
)

func listFixture() []camelapp.App {
	return []camelapp.App{
		camelapp.New(testutil.OrderService()),
		camelapp.New(testutil.CamelApp("ns1", "bare", nil)),
	}
}

func TestHeaders(t *testing.T) {
	assert.Equal(t,
		[]string{"NAME", "NAMESPACE", "STATUS", "HEALTH", "RUNTIME", "CAMEL", "LAST MESSAGE"},
		Headers())
}

func TestRenderList_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderList(&buf, listFixture(), output.FormatTable, nil))

	out := buf.String()
	for _, want := range []string{"NAME", "LAST MESSAGE", "order-service", "Running", "quarkus", "4.4.0", "bare", "Unknown"} {
		assert.Contains(t, out, want)
	}
	assert.Contains(t, out, NoRuntimeProvider)
	assert.Contains(t, out, NoCamelVersion)
	assert.NotContains(t, out, NoNamespace)
}

func TestRenderList_NamespacePlaceholder(t *testing.T) {
	var buf bytes.Buffer
	apps := []camelapp.App{camelapp.New(testutil.CamelApp("", "orphan", nil))}
	require.NoError(t, RenderList(&buf, apps, output.FormatTable, nil))
	assert.Contains(t, buf.String(), NoNamespace)
}

func TestRenderList_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderList(&buf, nil, output.FormatTable, nil))
	assert.Equal(t, EmptyList+"\n", buf.String())

	buf.Reset()
	require.NoError(t, RenderList(&buf, nil, output.FormatJSON, nil))
	assert.JSONEq(t, "[]", buf.String())
}

func TestRenderList_JSONKeepsRawValues(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderList(&buf, listFixture(), output.FormatJSON, nil))

	var rows []camelapp.DisplayRow
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rows))
	require.Len(t, rows, 2)

	assert.Equal(t, "quarkus", rows[0].Runtime)
	assert.Equal(t, "4.4.0", rows[0].Camel)
	assert.Equal(t, "ok", rows[0].Health)

	assert.Equal(t, "Unknown", rows[1].Status)
	assert.Equal(t, "", rows[1].Runtime)
	assert.Equal(t, "", rows[1].Camel)
	assert.Equal(t, "", rows[1].Health)
}

func TestRenderList_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderList(&buf, listFixture()[:1], output.FormatYAML, nil))
	assert.Contains(t, buf.String(), "runtime: quarkus")
	assert.Contains(t, buf.String(), "name: order-service")
}
