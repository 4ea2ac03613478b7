package camelapp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/camel-tooling/camel-dashboard-cli/internal/testutil"
)

func TestExtractors_MissingStatus(t *testing.T) {
	app := New(testutil.CamelApp("ns1", "bare", nil))

	assert.NotPanics(t, func() {
		assert.Equal(t, "Unknown", Status(app))
		assert.Equal(t, "", Health(app))
		assert.Equal(t, "", RuntimeProvider(app))
		assert.Equal(t, "", CamelVersion(app, Ascending))
		assert.Equal(t, "", CamelVersion(app, Descending))
		assert.Equal(t, "", RuntimeVersion(app, Ascending))
	})
}

func TestExtractors_ZeroApp(t *testing.T) {
	var app App

	assert.NotPanics(t, func() {
		assert.Equal(t, "Unknown", Status(app))
		assert.Equal(t, "", Health(app))
		assert.Equal(t, "", RuntimeProvider(app))
		assert.Equal(t, "", app.Name())
		assert.Equal(t, "", app.Namespace())
		assert.Nil(t, app.Labels())
	})
}

func TestStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   map[string]interface{}
		expected string
	}{
		{"running passes through", map[string]interface{}{"phase": "Running"}, "Running"},
		{"case is preserved", map[string]interface{}{"phase": "running"}, "running"},
		{"arbitrary phase", map[string]interface{}{"phase": "Building Kit"}, "Building Kit"},
		{"empty phase", map[string]interface{}{"phase": ""}, "Unknown"},
		{"missing phase", map[string]interface{}{}, "Unknown"},
		{"non-string phase", map[string]interface{}{"phase": int64(3)}, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := New(testutil.CamelApp("ns1", "app", tt.status))
			assert.Equal(t, tt.expected, Status(app))
		})
	}
}

func TestStatus_StatusNotAnObject(t *testing.T) {
	app := FromMap(map[string]interface{}{"status": "Running"})
	assert.Equal(t, "Unknown", Status(app))
	assert.Equal(t, "", Health(app))
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		status   map[string]interface{}
		expected string
	}{
		{
			name:     "ok",
			status:   map[string]interface{}{"sliExchangeSuccessRate": map[string]interface{}{"status": "ok"}},
			expected: "ok",
		},
		{
			name:     "error",
			status:   map[string]interface{}{"sliExchangeSuccessRate": map[string]interface{}{"status": "Error"}},
			expected: "Error",
		},
		{
			name:     "no sli",
			status:   map[string]interface{}{"phase": "Running"},
			expected: "",
		},
		{
			name:     "sli without status",
			status:   map[string]interface{}{"sliExchangeSuccessRate": map[string]interface{}{"successPercentage": "99"}},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := New(testutil.CamelApp("ns1", "app", tt.status))
			assert.Equal(t, tt.expected, Health(app))
		})
	}
}

func TestRuntimeProvider(t *testing.T) {
	tests := []struct {
		name     string
		status   map[string]interface{}
		expected string
	}{
		{
			name:     "first pod provider",
			status:   map[string]interface{}{"pods": testutil.Slice(testutil.Pod("a", "quarkus", ""), testutil.Pod("b", "springboot", ""))},
			expected: "quarkus",
		},
		{
			name:     "empty pods",
			status:   map[string]interface{}{"pods": []interface{}{}},
			expected: "",
		},
		{
			name:     "missing pods",
			status:   map[string]interface{}{"phase": "Running"},
			expected: "",
		},
		{
			name:     "first pod without runtime",
			status:   map[string]interface{}{"pods": testutil.Slice(testutil.Pod("a", "", ""), testutil.Pod("b", "quarkus", ""))},
			expected: "",
		},
		{
			name:     "first pod not an object",
			status:   map[string]interface{}{"pods": []interface{}{"a", map[string]interface{}{"runtime": map[string]interface{}{"runtimeProvider": "quarkus"}}}},
			expected: "",
		},
		{
			name:     "pods not a list",
			status:   map[string]interface{}{"pods": "a"},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := New(testutil.CamelApp("ns1", "app", tt.status))
			assert.NotPanics(t, func() {
				assert.Equal(t, tt.expected, RuntimeProvider(app))
			})
		})
	}
}

func TestCamelVersion(t *testing.T) {
	status := map[string]interface{}{
		"pods": testutil.Slice(
			testutil.Pod("a", "quarkus", "4.10.0"),
			testutil.Pod("b", "quarkus", "4.4.0"),
			testutil.Pod("c", "quarkus", "4.10.0"),
			testutil.Pod("d", "quarkus", ""),
		),
	}
	app := New(testutil.CamelApp("ns1", "app", status))

	assert.Equal(t, "4.4.0, 4.10.0", CamelVersion(app, Ascending))
	assert.Equal(t, "4.10.0, 4.4.0", CamelVersion(app, Descending))
}

func TestCamelVersion_SinglePod(t *testing.T) {
	app := New(testutil.OrderService())
	assert.Equal(t, "4.4.0", CamelVersion(app, Ascending))
	assert.Equal(t, "4.4.0", CamelVersion(app, Descending))
}

func TestCamelVersion_UnparseableSortsLast(t *testing.T) {
	status := map[string]interface{}{
		"pods": testutil.Slice(
			testutil.Pod("a", "", "snapshot"),
			testutil.Pod("b", "", "4.8.0-redhat-00001"),
			testutil.Pod("c", "", "3.20"),
		),
	}
	app := New(testutil.CamelApp("ns1", "app", status))

	assert.Equal(t, "3.20, 4.8.0-redhat-00001, snapshot", CamelVersion(app, Ascending))
}

func TestRuntimeVersion(t *testing.T) {
	pod := map[string]interface{}{
		"name": "a",
		"runtime": map[string]interface{}{
			"runtimeProvider": "quarkus",
			"runtimeVersion":  "3.15.1",
		},
	}
	app := New(testutil.CamelApp("ns1", "app", map[string]interface{}{"pods": testutil.Slice(pod)}))
	assert.Equal(t, "3.15.1", RuntimeVersion(app, Ascending))
}

func TestParseDirection(t *testing.T) {
	assert.Equal(t, Ascending, ParseDirection("asc"))
	assert.Equal(t, Descending, ParseDirection("desc"))
	assert.Equal(t, Descending, ParseDirection("DESC"))
	assert.Equal(t, Ascending, ParseDirection(""))
	assert.Equal(t, Ascending, ParseDirection("sideways"))
}

func TestExtractors_DoNotMutateInput(t *testing.T) {
	obj := testutil.OrderService()
	before := obj.DeepCopy()
	app := New(obj)

	_ = Status(app)
	_ = Health(app)
	_ = RuntimeProvider(app)
	_ = CamelVersion(app, Descending)
	_ = Project(app, nil)

	assert.Equal(t, before.Object, obj.Object)
}
