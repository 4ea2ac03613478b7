// Package weights orders Kubernetes kinds for display. Owners come before the
// objects they own, so a Deployment is listed above its ReplicaSets and Pods.
package weights

import (
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// Display weights. Lower weights are listed first.
const (
	WeightCamelApp   = 0
	WeightDeployment = 10
	WeightReplicaSet = 20
	WeightPod        = 30
	WeightService    = 40
	WeightConfigMap  = 50
	WeightSecret     = 50
	WeightDefault    = 1000
)

var gvkWeights = map[schema.GroupVersionKind]int{
	{Group: "camel.apache.org", Version: "v1alpha1", Kind: "CamelApp"}: WeightCamelApp,

	{Group: "apps", Version: "v1", Kind: "Deployment"}: WeightDeployment,
	{Group: "apps", Version: "v1", Kind: "ReplicaSet"}: WeightReplicaSet,

	{Group: "", Version: "v1", Kind: "Pod"}:       WeightPod,
	{Group: "", Version: "v1", Kind: "Service"}:   WeightService,
	{Group: "", Version: "v1", Kind: "ConfigMap"}: WeightConfigMap,
	{Group: "", Version: "v1", Kind: "Secret"}:    WeightSecret,
}

// GetWeight returns the display weight for gvk. An exact match wins, then a
// match on group and kind with any version, then WeightDefault.
func GetWeight(gvk schema.GroupVersionKind) int {
	if w, ok := gvkWeights[gvk]; ok {
		return w
	}
	for known, w := range gvkWeights {
		if known.Group == gvk.Group && known.Kind == gvk.Kind {
			return w
		}
	}
	return WeightDefault
}
