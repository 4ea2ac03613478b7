package kubernetes

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/apimachinery/pkg/runtime/schema"
	fakediscovery "k8s.io/client-go/discovery/fake"
	dynamicfake "k8s.io/client-go/dynamic/fake"
	kubefake "k8s.io/client-go/kubernetes/fake"

	"github.com/camel-tooling/camel-dashboard-cli/internal/camelapp"
)

// ListKinds maps every resource the dashboard lists to its list kind, as
// required by the fake dynamic client.
func ListKinds(camelGVR schema.GroupVersionResource) map[schema.GroupVersionResource]string {
	return map[schema.GroupVersionResource]string{
		camelGVR:       camelapp.Kind + "List",
		DeploymentsGVR: "DeploymentList",
		ReplicaSetsGVR: "ReplicaSetList",
		PodsGVR:        "PodList",
		ServicesGVR:    "ServiceList",
	}
}

// NewFakeClient returns a Client backed by in-memory fakes that serve the
// default CamelApp resource and objs.
func NewFakeClient(namespace string, objs ...runtime.Object) *Client {
	dyn := dynamicfake.NewSimpleDynamicClientWithCustomListKinds(
		runtime.NewScheme(),
		ListKinds(camelapp.GroupVersionResource),
		objs...,
	)

	cs := kubefake.NewClientset()
	if d, ok := cs.Discovery().(*fakediscovery.FakeDiscovery); ok {
		d.Resources = []*metav1.APIResourceList{{
			GroupVersion: camelapp.GroupVersionResource.GroupVersion().String(),
			APIResources: []metav1.APIResource{{
				Name:       camelapp.Resource,
				Kind:       camelapp.Kind,
				Namespaced: true,
				Verbs:      metav1.Verbs{"get", "list", "watch"},
			}},
		}}
	}

	return NewClientFromInterfaces(dyn, cs, namespace)
}
