package view

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/camel-tooling/camel-dashboard-cli/internal/camelapp"
	"github.com/camel-tooling/camel-dashboard-cli/internal/kubernetes"
	"github.com/camel-tooling/camel-dashboard-cli/internal/navigation"
	"github.com/camel-tooling/camel-dashboard-cli/internal/output"
)

// DetailsPage is everything the details page shows for one CamelApp. Only
// the payload of the active tab needs to be filled in.
type DetailsPage struct {
	State           navigation.NavigationState   `json:"state" yaml:"state"`
	Path            string                       `json:"path" yaml:"path"`
	Tabs            []navigation.Tab             `json:"tabs" yaml:"tabs"`
	SelectorEnabled bool                         `json:"namespaceSelectorEnabled" yaml:"namespaceSelectorEnabled"`
	Details         *camelapp.Details            `json:"details,omitempty" yaml:"details,omitempty"`
	Resources       []kubernetes.BackingResource `json:"resources,omitempty" yaml:"resources,omitempty"`
	Metrics         *camelapp.Metrics            `json:"metrics,omitempty" yaml:"metrics,omitempty"`
}

// NewDetailsPage captures the controller state for rendering.
func NewDetailsPage(c *navigation.Controller) DetailsPage {
	return DetailsPage{
		State:           c.State(),
		Path:            c.Path(),
		Tabs:            c.Tabs(),
		SelectorEnabled: c.NamespaceSelectorEnabled(),
	}
}

// RenderDetails writes the details page: header, tab bar and the body of the
// active tab.
func RenderDetails(w io.Writer, page DetailsPage, format output.Format) error {
	if format != output.FormatTable {
		return output.Encode(w, format, page)
	}

	var sb strings.Builder
	sb.WriteString(renderHeader(page))
	sb.WriteString("\n\n")

	switch page.State.ActiveTab {
	case navigation.TabResources:
		sb.WriteString(renderResources(page.Resources))
	case navigation.TabMetrics:
		sb.WriteString(renderMetrics(page.Metrics))
	default:
		sb.WriteString(renderDetailsBody(page.Details))
	}

	_, err := fmt.Fprintln(w, strings.TrimRight(sb.String(), "\n"))
	return err
}

func renderHeader(page DetailsPage) string {
	var sb strings.Builder

	sb.WriteString(output.StyleHeading.Render("CamelApp "))
	sb.WriteString(output.StyleNoun.Render(page.State.Name))
	sb.WriteString("\n")

	selector := "Namespace: " + page.State.Namespace
	if !page.SelectorEnabled {
		selector += " (selector disabled)"
	}
	sb.WriteString(output.StyleDim.Render(selector))
	sb.WriteString("\n")

	sb.WriteString(TabBar(page.Tabs, page.State.ActiveTab))
	return sb.String()
}

// TabBar renders the tab labels with the active one highlighted and
// bracketed, so the selection survives on terminals without color.
func TabBar(tabs []navigation.Tab, active navigation.Tab) string {
	labels := make([]string, len(tabs))
	for i, tab := range tabs {
		if tab == active {
			labels[i] = output.StyleActiveTab.Render("[" + tab.Title() + "]")
		} else {
			labels[i] = output.StyleInactiveTab.Render(" " + tab.Title() + " ")
		}
	}
	return strings.Join(labels, " ")
}

func renderDetailsBody(d *camelapp.Details) string {
	if d == nil {
		return output.Placeholder("No details available")
	}

	var sb strings.Builder
	field := func(label, value, placeholder string) {
		sb.WriteString(fmt.Sprintf("%-18s", label+":"))
		if value == "" {
			sb.WriteString(output.Placeholder(placeholder))
		} else {
			sb.WriteString(value)
		}
		sb.WriteString("\n")
	}

	field("Name", d.Name, "-")
	field("Namespace", d.Namespace, NoNamespace)
	field("Status", output.PhaseStyle(d.Phase).Render(d.Phase), "-")
	field("Health", output.HealthIndicator(d.Health), "-")
	field("Image", d.Image, "-")
	if d.Replicas != nil {
		field("Replicas", strconv.FormatInt(*d.Replicas, 10), "-")
	}
	field("Runtime", d.RuntimeProvider, NoRuntimeProvider)
	field("Runtime version", d.RuntimeVersion, "-")
	field("Camel version", d.CamelVersion, NoCamelVersion)
	field("Last message", d.LastMessage, "-")
	field("Last message at", d.LastMessageTimestamp, "-")
	field("Created", d.Created, "-")
	field("Labels", formatLabels(d.Labels), "-")

	if len(d.Conditions) > 0 {
		sb.WriteString("\n")
		sb.WriteString(output.StyleHeading.Render("Conditions"))
		sb.WriteString("\n")
		tbl := output.NewTable("TYPE", "STATUS", "REASON", "MESSAGE", "LAST TRANSITION")
		for _, c := range d.Conditions {
			tbl.Row(c.Type, c.Status, c.Reason, c.Message, c.LastTransitionTime)
		}
		sb.WriteString(tbl.String())
		sb.WriteString("\n")
	}

	if len(d.Pods) > 0 {
		sb.WriteString("\n")
		sb.WriteString(output.StyleHeading.Render("Pods"))
		sb.WriteString("\n")
		tbl := output.NewTable("NAME", "STATUS", "READY", "IP", "RUNTIME", "CAMEL")
		for _, p := range d.Pods {
			tbl.Row(
				output.StyleNoun.Render(p.Name),
				output.PhaseStyle(p.Status).Render(p.Status),
				strconv.FormatBool(p.Ready),
				p.InternalIP,
				strings.TrimSpace(p.RuntimeProvider+" "+p.RuntimeVersion),
				p.CamelVersion,
			)
		}
		sb.WriteString(tbl.String())
		sb.WriteString("\n")
	}

	return sb.String()
}

func formatLabels(labels map[string]string) string {
	if len(labels) == 0 {
		return ""
	}
	keys := make([]string, 0, len(labels))
	for k := range labels {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, len(keys))
	for i, k := range keys {
		pairs[i] = k + "=" + labels[k]
	}
	return strings.Join(pairs, ",")
}

func renderResources(resources []kubernetes.BackingResource) string {
	if len(resources) == 0 {
		return output.Placeholder("No backing resources found")
	}

	tbl := output.NewTable("KIND", "NAME", "HEALTH", "AGE", "MESSAGE")
	for _, r := range resources {
		tbl.Row(r.Kind, output.StyleNoun.Render(r.Name), healthCell(r.Health), r.Age, r.Message)
	}
	return tbl.String()
}

func healthCell(h kubernetes.HealthStatus) string {
	switch h {
	case kubernetes.HealthReady:
		return output.HealthStyle("ok").Render(string(h))
	case kubernetes.HealthProgressing, kubernetes.HealthNotReady:
		return output.HealthStyle("warning").Render(string(h))
	case kubernetes.HealthFailed:
		return output.HealthStyle("error").Render(string(h))
	default:
		return output.StyleDim.Render(string(h))
	}
}

func renderMetrics(m *camelapp.Metrics) string {
	if m == nil || (m.SLI == nil && len(m.Pods) == 0) {
		return output.Placeholder("No metrics reported")
	}

	var sb strings.Builder
	if m.SLI != nil {
		sb.WriteString(output.StyleHeading.Render("Exchange success rate"))
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("%-18s%s\n", "Health:", output.HealthIndicator(m.SLI.Status)))
		if m.SLI.SuccessPercentage != "" {
			sb.WriteString(fmt.Sprintf("%-18s%s%%\n", "Success:", m.SLI.SuccessPercentage))
		}
		sb.WriteString(fmt.Sprintf("%-18s%d failed of %d\n", "Sampled:", m.SLI.Failed, m.SLI.Total))
		if m.SLI.LastTimestamp != "" {
			sb.WriteString(fmt.Sprintf("%-18s%s\n", "Last sample:", m.SLI.LastTimestamp))
		}
		sb.WriteString("\n")
	}

	if len(m.Pods) > 0 {
		tbl := output.NewTable("POD", "TOTAL", "SUCCEEDED", "FAILED", "PENDING", "LAST EXCHANGE")
		for _, p := range m.Pods {
			tbl.Row(output.StyleNoun.Render(p.Pod), itoa(p.Total), itoa(p.Succeeded), itoa(p.Failed), itoa(p.Pending), p.LastTimestamp)
		}
		tbl.Row(output.StyleHeading.Render("TOTAL"), itoa(m.Totals.Total), itoa(m.Totals.Succeeded), itoa(m.Totals.Failed), itoa(m.Totals.Pending), "")
		sb.WriteString(tbl.String())
		sb.WriteString("\n")
	}

	return sb.String()
}

func itoa(n int64) string {
	return strconv.FormatInt(n, 10)
}
