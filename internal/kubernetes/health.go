package kubernetes

import (
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
)

// HealthStatus is the health of a workload backing a CamelApp.
type HealthStatus string

const (
	HealthReady       HealthStatus = "Ready"
	HealthProgressing HealthStatus = "Progressing"
	HealthNotReady    HealthStatus = "NotReady"
	HealthFailed      HealthStatus = "Failed"
	HealthUnknown     HealthStatus = "Unknown"
)

// BackingResource is one row of the Resources tab.
type BackingResource struct {
	Kind       string       `json:"kind" yaml:"kind"`
	APIVersion string       `json:"apiVersion" yaml:"apiVersion"`
	Name       string       `json:"name" yaml:"name"`
	Namespace  string       `json:"namespace" yaml:"namespace"`
	Age        string       `json:"age" yaml:"age"`
	Health     HealthStatus `json:"health" yaml:"health"`
	Message    string       `json:"message,omitempty" yaml:"message,omitempty"`
}

// HealthEvaluator evaluates the health of backing workloads.
type HealthEvaluator struct {
	now func() time.Time
}

// NewHealthEvaluator creates a HealthEvaluator that computes ages against
// the wall clock.
func NewHealthEvaluator() *HealthEvaluator {
	return &HealthEvaluator{now: time.Now}
}

// EvaluateHealth evaluates a single resource.
func (h *HealthEvaluator) EvaluateHealth(resource *unstructured.Unstructured) BackingResource {
	res := BackingResource{
		Kind:       resource.GetKind(),
		APIVersion: resource.GetAPIVersion(),
		Name:       resource.GetName(),
		Namespace:  resource.GetNamespace(),
		Age:        computeAge(resource, h.now()),
	}

	switch resource.GetKind() {
	case "Deployment":
		res.Health, res.Message = h.evaluateDeployment(resource)
	case "ReplicaSet":
		res.Health, res.Message = h.evaluateReplicaSet(resource)
	case "Pod":
		res.Health, res.Message = h.evaluatePod(resource)
	case "Service", "ConfigMap", "Secret":
		res.Health = HealthReady
		res.Message = "Created"
	default:
		res.Health, res.Message = h.evaluateGeneric(resource)
	}

	return res
}

// EvaluateAll evaluates every resource in order.
func (h *HealthEvaluator) EvaluateAll(resources []*unstructured.Unstructured) []BackingResource {
	result := make([]BackingResource, 0, len(resources))
	for _, r := range resources {
		result = append(result, h.EvaluateHealth(r))
	}
	return result
}

func (h *HealthEvaluator) evaluateDeployment(obj *unstructured.Unstructured) (HealthStatus, string) {
	conditions, found, _ := unstructured.NestedSlice(obj.Object, "status", "conditions")
	if !found {
		return HealthProgressing, "Waiting for conditions"
	}

	for _, c := range conditions {
		cond, ok := c.(map[string]interface{})
		if !ok {
			continue
		}

		condType, _ := cond["type"].(string)
		condStatus, _ := cond["status"].(string)
		message, _ := cond["message"].(string)

		switch condType {
		case "Available":
			if condStatus == "True" {
				return HealthReady, message
			}
		case "Progressing":
			if condStatus == "True" {
				if reason, _ := cond["reason"].(string); reason == "NewReplicaSetAvailable" {
					continue
				}
				return HealthProgressing, message
			}
		case "ReplicaFailure":
			if condStatus == "True" {
				return HealthFailed, message
			}
		}
	}

	return HealthNotReady, "Not available"
}

func (h *HealthEvaluator) evaluateReplicaSet(obj *unstructured.Unstructured) (HealthStatus, string) {
	replicas, _, _ := unstructured.NestedInt64(obj.Object, "spec", "replicas")
	readyReplicas, _, _ := unstructured.NestedInt64(obj.Object, "status", "readyReplicas")

	if replicas == 0 {
		return HealthReady, "Scaled to zero"
	}
	if readyReplicas == replicas {
		return HealthReady, fmt.Sprintf("%d/%d replicas ready", readyReplicas, replicas)
	}
	return HealthProgressing, fmt.Sprintf("%d/%d replicas ready", readyReplicas, replicas)
}

func (h *HealthEvaluator) evaluatePod(obj *unstructured.Unstructured) (HealthStatus, string) {
	phase, _, _ := unstructured.NestedString(obj.Object, "status", "phase")

	switch phase {
	case "Running":
		containerStatuses, _, _ := unstructured.NestedSlice(obj.Object, "status", "containerStatuses")
		ready := 0
		total := len(containerStatuses)
		for _, cs := range containerStatuses {
			status, ok := cs.(map[string]interface{})
			if !ok {
				continue
			}
			if isReady, _ := status["ready"].(bool); isReady {
				ready++
			}
		}
		if total > 0 && ready == total {
			return HealthReady, fmt.Sprintf("Running (%d/%d containers ready)", ready, total)
		}
		return HealthProgressing, fmt.Sprintf("Running (%d/%d containers ready)", ready, total)
	case "Succeeded":
		return HealthReady, "Completed"
	case "Failed":
		return HealthFailed, "Failed"
	case "Pending":
		return HealthProgressing, "Pending"
	default:
		return HealthUnknown, phase
	}
}

// evaluateGeneric looks for a Ready condition; a resource without one is
// healthy as long as it exists.
func (h *HealthEvaluator) evaluateGeneric(obj *unstructured.Unstructured) (HealthStatus, string) {
	conditions, found, _ := unstructured.NestedSlice(obj.Object, "status", "conditions")
	if !found {
		return HealthReady, "Created"
	}

	for _, c := range conditions {
		cond, ok := c.(map[string]interface{})
		if !ok {
			continue
		}
		condType, _ := cond["type"].(string)
		condStatus, _ := cond["status"].(string)
		message, _ := cond["message"].(string)

		if condType == "Ready" {
			if condStatus == "True" {
				return HealthReady, message
			}
			return HealthNotReady, message
		}
	}

	return HealthReady, "Created"
}

func computeAge(resource *unstructured.Unstructured, now time.Time) string {
	created := resource.GetCreationTimestamp()
	if created.IsZero() {
		return "<unknown>"
	}
	return FormatDuration(now.Sub(created.Time))
}

// FormatDuration renders a duration the way kubectl prints ages: "45s",
// "5m", "2h10m", "3d".
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	switch {
	case d < time.Minute:
		return fmt.Sprintf("%ds", int(d.Seconds()))
	case d < time.Hour:
		return fmt.Sprintf("%dm", int(d.Minutes()))
	case d < 24*time.Hour:
		hours := int(d.Hours())
		mins := int(d.Minutes()) - hours*60
		if mins > 0 {
			return fmt.Sprintf("%dh%dm", hours, mins)
		}
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dd", int(d.Hours()/24))
	}
}
