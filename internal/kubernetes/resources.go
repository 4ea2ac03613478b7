package kubernetes

import (
	"context"
	"fmt"
	"sort"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/labels"
	"k8s.io/apimachinery/pkg/runtime/schema"

	"github.com/camel-tooling/camel-dashboard-cli/internal/camelapp"
	"github.com/camel-tooling/camel-dashboard-cli/internal/output"
	"github.com/camel-tooling/camel-dashboard-cli/pkg/weights"
)

// Workload kinds searched for resources backing a CamelApp.
var (
	DeploymentsGVR = schema.GroupVersionResource{Group: "apps", Version: "v1", Resource: "deployments"}
	ReplicaSetsGVR = schema.GroupVersionResource{Group: "apps", Version: "v1", Resource: "replicasets"}
	PodsGVR        = schema.GroupVersionResource{Version: "v1", Resource: "pods"}
	ServicesGVR    = schema.GroupVersionResource{Version: "v1", Resource: "services"}
)

var backingGVRs = []schema.GroupVersionResource{DeploymentsGVR, ReplicaSetsGVR, PodsGVR, ServicesGVR}

// appSelector matches the workloads labelled with the CamelApp name.
func appSelector(appLabel, name string) labels.Selector {
	return labels.SelectorFromSet(labels.Set{appLabel: name})
}

// DiscoverBackingResources lists the Deployments, ReplicaSets, Pods and
// Services in the CamelApp's namespace that carry appLabel=<name>. Kinds the
// caller may not list are skipped. The result is in display order.
func DiscoverBackingResources(ctx context.Context, client *Client, app camelapp.App, appLabel string) ([]*unstructured.Unstructured, error) {
	if app.Name() == "" || app.Namespace() == "" {
		return nil, fmt.Errorf("CamelApp has no name or namespace")
	}

	selector := appSelector(appLabel, app.Name())
	output.Debug("discovering backing resources",
		"app", app.Key(),
		"selector", selector.String(),
	)

	var found []*unstructured.Unstructured
	for _, gvr := range backingGVRs {
		list, err := client.Dynamic.Resource(gvr).Namespace(app.Namespace()).List(ctx, metav1.ListOptions{
			LabelSelector: selector.String(),
		})
		if err != nil {
			if apierrors.IsForbidden(err) || apierrors.IsNotFound(err) {
				output.Debug("skipping resource kind", "resource", gvr.Resource, "err", err)
				continue
			}
			return nil, classify(err, fmt.Sprintf("listing %s for CamelApp %s", gvr.Resource, app.Key()))
		}
		for i := range list.Items {
			found = append(found, &list.Items[i])
		}
	}

	SortForDisplay(found)
	return found, nil
}

// BackingResources discovers and evaluates the workloads of app.
func BackingResources(ctx context.Context, client *Client, app camelapp.App, appLabel string) ([]BackingResource, error) {
	found, err := DiscoverBackingResources(ctx, client, app, appLabel)
	if err != nil {
		return nil, err
	}
	return NewHealthEvaluator().EvaluateAll(found), nil
}

// SortForDisplay orders resources by kind weight, then by name.
func SortForDisplay(resources []*unstructured.Unstructured) {
	sort.SliceStable(resources, func(i, j int) bool {
		wi := weights.GetWeight(resources[i].GroupVersionKind())
		wj := weights.GetWeight(resources[j].GroupVersionKind())
		if wi != wj {
			return wi < wj
		}
		return resources[i].GetName() < resources[j].GetName()
	})
}
