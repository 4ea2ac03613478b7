package kubernetes

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

func makeResource(kind string, status map[string]interface{}) *unstructured.Unstructured {
	obj := &unstructured.Unstructured{
		Object: map[string]interface{}{
			"apiVersion": "v1",
			"kind":       kind,
			"metadata": map[string]interface{}{
				"name":      "order-service",
				"namespace": "ns1",
			},
		},
	}
	if status != nil {
		obj.Object["status"] = status
	}
	return obj
}

func conditions(conds ...map[string]interface{}) map[string]interface{} {
	raw := make([]interface{}, len(conds))
	for i, c := range conds {
		raw[i] = c
	}
	return map[string]interface{}{"conditions": raw}
}

func TestEvaluateHealth(t *testing.T) {
	tests := []struct {
		name     string
		obj      *unstructured.Unstructured
		expected HealthStatus
	}{
		{
			name:     "Deployment available",
			obj:      makeResource("Deployment", conditions(map[string]interface{}{"type": "Available", "status": "True"})),
			expected: HealthReady,
		},
		{
			name:     "Deployment not available",
			obj:      makeResource("Deployment", conditions(map[string]interface{}{"type": "Available", "status": "False"})),
			expected: HealthNotReady,
		},
		{
			name: "Deployment rolling out",
			obj: makeResource("Deployment", conditions(
				map[string]interface{}{"type": "Progressing", "status": "True", "reason": "ReplicaSetUpdated"},
			)),
			expected: HealthProgressing,
		},
		{
			name:     "Deployment replica failure",
			obj:      makeResource("Deployment", conditions(map[string]interface{}{"type": "ReplicaFailure", "status": "True"})),
			expected: HealthFailed,
		},
		{
			name:     "Deployment without conditions",
			obj:      makeResource("Deployment", nil),
			expected: HealthProgressing,
		},
		{
			name:     "Pod pending",
			obj:      makeResource("Pod", map[string]interface{}{"phase": "Pending"}),
			expected: HealthProgressing,
		},
		{
			name: "Pod running all containers ready",
			obj: makeResource("Pod", map[string]interface{}{
				"phase":             "Running",
				"containerStatuses": []interface{}{map[string]interface{}{"ready": true}},
			}),
			expected: HealthReady,
		},
		{
			name:     "Pod failed",
			obj:      makeResource("Pod", map[string]interface{}{"phase": "Failed"}),
			expected: HealthFailed,
		},
		{
			name:     "Pod with unknown phase",
			obj:      makeResource("Pod", nil),
			expected: HealthUnknown,
		},
		{
			name:     "Service exists",
			obj:      makeResource("Service", nil),
			expected: HealthReady,
		},
		{
			name:     "custom resource not ready",
			obj:      makeResource("Widget", conditions(map[string]interface{}{"type": "Ready", "status": "False"})),
			expected: HealthNotReady,
		},
	}

	eval := NewHealthEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := eval.EvaluateHealth(tt.obj)
			assert.Equal(t, tt.expected, res.Health)
			assert.Equal(t, "order-service", res.Name)
			assert.Equal(t, "ns1", res.Namespace)
		})
	}
}

func TestEvaluateHealth_ReplicaSet(t *testing.T) {
	rs := makeResource("ReplicaSet", map[string]interface{}{"readyReplicas": int64(1)})
	rs.Object["spec"] = map[string]interface{}{"replicas": int64(2)}

	res := NewHealthEvaluator().EvaluateHealth(rs)
	assert.Equal(t, HealthProgressing, res.Health)
	assert.Equal(t, "1/2 replicas ready", res.Message)
}

func TestEvaluateHealth_Age(t *testing.T) {
	created := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	obj := makeResource("Service", nil)
	obj.SetCreationTimestamp(metav1.NewTime(created))

	eval := &HealthEvaluator{now: func() time.Time { return created.Add(90 * time.Minute) }}
	assert.Equal(t, "1h30m", eval.EvaluateHealth(obj).Age)

	assert.Equal(t, "<unknown>", eval.EvaluateHealth(makeResource("Service", nil)).Age)
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{-time.Second, "0s"},
		{45 * time.Second, "45s"},
		{5 * time.Minute, "5m"},
		{2 * time.Hour, "2h"},
		{2*time.Hour + 10*time.Minute, "2h10m"},
		{72 * time.Hour, "3d"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.in), tt.in.String())
	}
}
