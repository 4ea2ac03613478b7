package weights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

func TestGetWeight(t *testing.T) {
	tests := []struct {
		gvk  schema.GroupVersionKind
		want int
	}{
		{schema.GroupVersionKind{Group: "apps", Version: "v1", Kind: "Deployment"}, WeightDeployment},
		{schema.GroupVersionKind{Group: "", Version: "v1", Kind: "Pod"}, WeightPod},
		{schema.GroupVersionKind{Group: "camel.apache.org", Version: "v1", Kind: "CamelApp"}, WeightCamelApp},
		{schema.GroupVersionKind{Group: "example.com", Version: "v1", Kind: "Widget"}, WeightDefault},
	}

	for _, tt := range tests {
		t.Run(tt.gvk.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, GetWeight(tt.gvk))
		})
	}
}

func TestGetWeight_OwnersFirst(t *testing.T) {
	deploy := GetWeight(schema.GroupVersionKind{Group: "apps", Version: "v1", Kind: "Deployment"})
	rs := GetWeight(schema.GroupVersionKind{Group: "apps", Version: "v1", Kind: "ReplicaSet"})
	pod := GetWeight(schema.GroupVersionKind{Version: "v1", Kind: "Pod"})

	assert.Less(t, deploy, rs)
	assert.Less(t, rs, pod)
}
