package camelapp

import "time"

// Details is the projection shown on the Details tab.
type Details struct {
	Name                 string            `json:"name" yaml:"name"`
	Namespace            string            `json:"namespace" yaml:"namespace"`
	Phase                string            `json:"phase" yaml:"phase"`
	Health               string            `json:"health" yaml:"health"`
	Image                string            `json:"image,omitempty" yaml:"image,omitempty"`
	Replicas             *int64            `json:"replicas,omitempty" yaml:"replicas,omitempty"`
	RuntimeProvider      string            `json:"runtimeProvider" yaml:"runtimeProvider"`
	RuntimeVersion       string            `json:"runtimeVersion" yaml:"runtimeVersion"`
	CamelVersion         string            `json:"camelVersion" yaml:"camelVersion"`
	LastMessage          string            `json:"lastMessage" yaml:"lastMessage"`
	LastMessageTimestamp string            `json:"lastMessageTimestamp,omitempty" yaml:"lastMessageTimestamp,omitempty"`
	Created              string            `json:"created,omitempty" yaml:"created,omitempty"`
	Labels               map[string]string `json:"labels,omitempty" yaml:"labels,omitempty"`
	Conditions           []Condition       `json:"conditions,omitempty" yaml:"conditions,omitempty"`
	Pods                 []Pod             `json:"pods,omitempty" yaml:"pods,omitempty"`
}

// Condition is one entry of status.conditions.
type Condition struct {
	Type               string `json:"type" yaml:"type"`
	Status             string `json:"status" yaml:"status"`
	Reason             string `json:"reason,omitempty" yaml:"reason,omitempty"`
	Message            string `json:"message,omitempty" yaml:"message,omitempty"`
	LastTransitionTime string `json:"lastTransitionTime,omitempty" yaml:"lastTransitionTime,omitempty"`
}

// Pod is one entry of status.pods.
type Pod struct {
	Name            string `json:"name" yaml:"name"`
	Status          string `json:"status" yaml:"status"`
	Ready           bool   `json:"ready" yaml:"ready"`
	InternalIP      string `json:"internalIp,omitempty" yaml:"internalIp,omitempty"`
	Uptime          string `json:"uptimeTimestamp,omitempty" yaml:"uptimeTimestamp,omitempty"`
	RuntimeStatus   string `json:"runtimeStatus,omitempty" yaml:"runtimeStatus,omitempty"`
	RuntimeProvider string `json:"runtimeProvider,omitempty" yaml:"runtimeProvider,omitempty"`
	RuntimeVersion  string `json:"runtimeVersion,omitempty" yaml:"runtimeVersion,omitempty"`
	CamelVersion    string `json:"camelVersion,omitempty" yaml:"camelVersion,omitempty"`
}

// Describe builds the Details projection of app.
func Describe(app App, t Translator) Details {
	obj := app.Object()
	d := Details{
		Name:            app.Name(),
		Namespace:       app.Namespace(),
		Phase:           Status(app),
		Health:          Health(app),
		Image:           stringAt(obj, "status", "image").OrElse(""),
		RuntimeProvider: RuntimeProvider(app),
		RuntimeVersion:  RuntimeVersion(app, Ascending),
		CamelVersion:    CamelVersion(app, Ascending),
		LastMessage:     LastMessageAsString(app, Ascending, t),
		Labels:          app.Labels(),
		Conditions:      Conditions(app),
		Pods:            Pods(app),
	}
	if r := int64At(obj, "status", "replicas"); r.Present {
		v := r.Value
		d.Replicas = &v
	}
	d.LastMessageTimestamp, _ = LastMessageTimestamp(app, Ascending)
	if created := app.CreationTimestamp(); created.Present {
		d.Created = created.Value.UTC().Format(time.RFC3339)
	}
	return d
}

// Conditions returns status.conditions in collection order.
func Conditions(app App) []Condition {
	raw := app.conditions()
	out := make([]Condition, 0, len(raw))
	for _, c := range raw {
		out = append(out, Condition{
			Type:               stringAt(c, "type").OrElse(""),
			Status:             stringAt(c, "status").OrElse(""),
			Reason:             stringAt(c, "reason").OrElse(""),
			Message:            stringAt(c, "message").OrElse(""),
			LastTransitionTime: stringAt(c, "lastTransitionTime").OrElse(""),
		})
	}
	return out
}

// Pods returns status.pods in collection order.
func Pods(app App) []Pod {
	raw := app.pods()
	out := make([]Pod, 0, len(raw))
	for _, p := range raw {
		out = append(out, Pod{
			Name:            stringAt(p, "name").OrElse(""),
			Status:          stringAt(p, "status").OrElse(""),
			Ready:           boolAt(p, "ready").OrElse(false),
			InternalIP:      stringAt(p, "internalIp").OrElse(""),
			Uptime:          stringAt(p, "uptimeTimestamp").OrElse(""),
			RuntimeStatus:   stringAt(p, "runtime", "status").OrElse(""),
			RuntimeProvider: stringAt(p, "runtime", "runtimeProvider").OrElse(""),
			RuntimeVersion:  stringAt(p, "runtime", "runtimeVersion").OrElse(""),
			CamelVersion:    stringAt(p, "runtime", "camelVersion").OrElse(""),
		})
	}
	return out
}
