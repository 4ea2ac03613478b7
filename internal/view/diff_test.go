package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/camel-tooling/camel-dashboard-cli/internal/camelapp"
	"github.com/camel-tooling/camel-dashboard-cli/internal/testutil"
)

func TestDiffSnapshots_NoChanges(t *testing.T) {
	prev := []camelapp.App{camelapp.New(testutil.OrderService())}
	next := []camelapp.App{camelapp.New(testutil.OrderService())}

	cs, err := DiffSnapshots(prev, next, false)
	require.NoError(t, err)
	assert.True(t, cs.Empty())
}

func TestDiffSnapshots_IgnoresVolatileMetadata(t *testing.T) {
	before := testutil.OrderService()
	before.SetResourceVersion("100")
	after := testutil.OrderService()
	after.SetResourceVersion("101")

	cs, err := DiffSnapshots([]camelapp.App{camelapp.New(before)}, []camelapp.App{camelapp.New(after)}, false)
	require.NoError(t, err)
	assert.True(t, cs.Empty())
	assert.Equal(t, "100", before.GetResourceVersion(), "snapshot objects are not modified")
}

func TestDiffSnapshots_AddedRemovedModified(t *testing.T) {
	changed := testutil.OrderService()
	changed.Object["status"].(map[string]interface{})["phase"] = "Error"

	prev := []camelapp.App{
		camelapp.New(testutil.OrderService()),
		camelapp.New(testutil.CamelApp("ns2", "billing", nil)),
	}
	next := []camelapp.App{
		camelapp.New(testutil.CamelApp("ns1", "audit", nil)),
		camelapp.New(changed),
	}

	cs, err := DiffSnapshots(prev, next, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"ns1/audit"}, cs.Added)
	assert.Equal(t, []string{"ns2/billing"}, cs.Removed)
	require.Len(t, cs.Modified, 1)
	assert.Equal(t, "ns1/order-service", cs.Modified[0].Name)
	assert.Contains(t, cs.Modified[0].Detail, "phase")
	assert.Contains(t, cs.Modified[0].Detail, "Error")
}
