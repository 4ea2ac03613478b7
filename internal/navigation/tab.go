// Package navigation maps console-style paths to CamelApp pages and keeps
// the details page tab state consistent with its path.
package navigation

import (
	"fmt"
	"strings"
)

// Tab is one of the details page tabs.
type Tab string

const (
	// TabDetails shows the CamelApp configuration. It is the default tab.
	TabDetails Tab = "details"
	// TabResources shows the workloads backing the CamelApp.
	TabResources Tab = "resources"
	// TabMetrics shows exchange metrics.
	TabMetrics Tab = "metrics"
)

// Tabs returns every tab in display order.
func Tabs() []Tab {
	return []Tab{TabDetails, TabResources, TabMetrics}
}

// Title returns the label shown in the tab bar.
func (t Tab) Title() string {
	switch t {
	case TabResources:
		return "Resources"
	case TabMetrics:
		return "Metrics"
	default:
		return "Details"
	}
}

// suffix is the path segment appended to the details route, "" for Details.
func (t Tab) suffix() string {
	switch t {
	case TabResources, TabMetrics:
		return "/" + string(t)
	default:
		return ""
	}
}

// ParseTab accepts a tab name case-insensitively. Empty input is Details.
func ParseTab(s string) (Tab, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(TabDetails):
		return TabDetails, nil
	case string(TabResources):
		return TabResources, nil
	case string(TabMetrics):
		return TabMetrics, nil
	default:
		return TabDetails, fmt.Errorf("unknown tab %q (valid: details, resources, metrics)", s)
	}
}

// tabFromSegment maps a trailing path segment to a tab. Anything that is not
// a known suffix resolves to Details.
func tabFromSegment(seg string) Tab {
	switch seg {
	case string(TabResources):
		return TabResources
	case string(TabMetrics):
		return TabMetrics
	default:
		return TabDetails
	}
}
