// Package camelapp derives display values from CamelApp custom resources.
//
// Every function in this package reads a single snapshot of the resource and
// is total: missing or malformed fields resolve to a documented fallback and
// never to a panic or an error. Nothing here mutates the input object.
package camelapp

import (
	"time"

	"k8s.io/apimachinery/pkg/apis/meta/v1/unstructured"
	"k8s.io/apimachinery/pkg/runtime/schema"
)

// Kubernetes identity of the CamelApp custom resource.
const (
	Group    = "camel.apache.org"
	Version  = "v1alpha1"
	Kind     = "CamelApp"
	Resource = "camelapps"
)

// GroupVersionResource is the default CamelApp GVR.
var GroupVersionResource = schema.GroupVersionResource{
	Group:    Group,
	Version:  Version,
	Resource: Resource,
}

// App is a read-only view over a CamelApp object as returned by the API.
// The zero value is a valid, empty resource.
type App struct {
	obj *unstructured.Unstructured
}

// New wraps an unstructured object. A nil object yields an empty App.
func New(obj *unstructured.Unstructured) App {
	return App{obj: obj}
}

// FromMap wraps a raw object map.
func FromMap(m map[string]interface{}) App {
	if m == nil {
		return App{}
	}
	return App{obj: &unstructured.Unstructured{Object: m}}
}

// Object returns the underlying object map, or nil.
func (a App) Object() map[string]interface{} {
	if a.obj == nil {
		return nil
	}
	return a.obj.Object
}

// Unstructured returns the wrapped object, or nil.
func (a App) Unstructured() *unstructured.Unstructured {
	return a.obj
}

// Name returns metadata.name or "".
func (a App) Name() string {
	return stringAt(a.Object(), "metadata", "name").OrElse("")
}

// Namespace returns metadata.namespace or "".
func (a App) Namespace() string {
	return stringAt(a.Object(), "metadata", "namespace").OrElse("")
}

// Key returns "namespace/name".
func (a App) Key() string {
	return a.Namespace() + "/" + a.Name()
}

// CreationTimestamp returns metadata.creationTimestamp when it parses.
func (a App) CreationTimestamp() Field[time.Time] {
	return timeAt(a.Object(), "metadata", "creationTimestamp")
}

// Labels returns metadata.labels, skipping non-string values.
func (a App) Labels() map[string]string {
	m := mapAt(a.Object(), "metadata", "labels")
	if !m.Present {
		return nil
	}
	out := make(map[string]string, len(m.Value))
	for k, v := range m.Value {
		if s, ok := v.(string); ok {
			out[k] = s
		}
	}
	return out
}

// pods returns status.pods entries that are objects, in collection order.
func (a App) pods() []map[string]interface{} {
	raw := sliceAt(a.Object(), "status", "pods")
	if !raw.Present {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(raw.Value))
	for _, p := range raw.Value {
		if m, ok := p.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}

// conditions returns status.conditions entries that are objects.
func (a App) conditions() []map[string]interface{} {
	raw := sliceAt(a.Object(), "status", "conditions")
	if !raw.Present {
		return nil
	}
	out := make([]map[string]interface{}, 0, len(raw.Value))
	for _, c := range raw.Value {
		if m, ok := c.(map[string]interface{}); ok {
			out = append(out, m)
		}
	}
	return out
}
