// Package testutil provides fixtures shared by package tests.
package testutil

import (
	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// CamelAppAPIVersion is the apiVersion written into CamelApp fixtures.
const CamelAppAPIVersion = "camel.apache.org/v1alpha1"

// CamelApp builds a CamelApp object. A nil status leaves the status key out
// entirely.
func CamelApp(namespace, name string, status map[string]interface{}) *unstructured.Unstructured {
	obj := &unstructured.Unstructured{
		Object: map[string]interface{}{
			"apiVersion": CamelAppAPIVersion,
			"kind":       "CamelApp",
			"metadata": map[string]interface{}{
				"name":      name,
				"namespace": namespace,
			},
		},
	}
	if status != nil {
		obj.Object["status"] = status
	}
	return obj
}

// Pod builds one status.pods entry. Empty arguments are left out.
func Pod(name, provider, camelVersion string) map[string]interface{} {
	pod := map[string]interface{}{}
	if name != "" {
		pod["name"] = name
	}
	runtime := map[string]interface{}{}
	if provider != "" {
		runtime["runtimeProvider"] = provider
	}
	if camelVersion != "" {
		runtime["camelVersion"] = camelVersion
	}
	if len(runtime) > 0 {
		pod["runtime"] = runtime
	}
	return pod
}

// Condition builds one status.conditions entry.
func Condition(condType, status, message, lastTransitionTime string) map[string]interface{} {
	c := map[string]interface{}{
		"type":   condType,
		"status": status,
	}
	if message != "" {
		c["message"] = message
	}
	if lastTransitionTime != "" {
		c["lastTransitionTime"] = lastTransitionTime
	}
	return c
}

// Slice converts maps to the []interface{} shape the API decoder produces.
func Slice(items ...map[string]interface{}) []interface{} {
	out := make([]interface{}, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

// OrderService is the canonical running CamelApp used across tests.
func OrderService() *unstructured.Unstructured {
	return CamelApp("ns1", "order-service", map[string]interface{}{
		"phase": "Running",
		"sliExchangeSuccessRate": map[string]interface{}{
			"status": "ok",
		},
		"pods": Slice(Pod("order-service-7d9f", "quarkus", "4.4.0")),
	})
}

// Workload builds a plain Kubernetes object such as a Deployment or Pod.
func Workload(apiVersion, kind, namespace, name string, labels map[string]string) *unstructured.Unstructured {
	obj := &unstructured.Unstructured{}
	obj.SetAPIVersion(apiVersion)
	obj.SetKind(kind)
	obj.SetNamespace(namespace)
	obj.SetName(name)
	if len(labels) > 0 {
		obj.SetLabels(labels)
	}
	return obj
}
