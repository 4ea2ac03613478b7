package camelapp

import (
	"sort"
	"strings"

	"github.com/blang/semver"
)

// StatusUnknown is reported when a CamelApp has no phase.
const StatusUnknown = "Unknown"

// Direction selects the traversal order for ordered extractors.
type Direction string

const (
	// Ascending visits values oldest (or lowest) first.
	Ascending Direction = "asc"
	// Descending visits values newest (or highest) first.
	Descending Direction = "desc"
)

// ParseDirection maps "asc"/"desc" to a Direction. Anything else is
// Ascending.
func ParseDirection(s string) Direction {
	if strings.EqualFold(s, string(Descending)) {
		return Descending
	}
	return Ascending
}

// Status returns status.phase verbatim, or "Unknown" when it is missing or
// empty.
func Status(app App) string {
	return phase(app).OrElse(StatusUnknown)
}

func phase(app App) Field[string] {
	return nonEmptyStringAt(app.Object(), "status", "phase")
}

// Health returns status.sliExchangeSuccessRate.status, or "" when absent.
// The empty string is rendered as a neutral indicator; unlike Status there
// is no "Unknown" fallback.
func Health(app App) string {
	return healthCode(app).OrElse("")
}

func healthCode(app App) Field[string] {
	return stringAt(app.Object(), "status", "sliExchangeSuccessRate", "status")
}

// RuntimeProvider returns runtime.runtimeProvider of the first pod in
// status.pods, or "" when there are no pods, the first entry is not an
// object or it carries no runtime.
func RuntimeProvider(app App) string {
	return firstPodRuntimeProvider(app).OrElse("")
}

func firstPodRuntimeProvider(app App) Field[string] {
	pods := sliceAt(app.Object(), "status", "pods")
	if !pods.Present || len(pods.Value) == 0 {
		return None[string]()
	}
	first, ok := pods.Value[0].(map[string]interface{})
	if !ok {
		return None[string]()
	}
	runtime := mapAt(first, "runtime")
	if !runtime.Present {
		return None[string]()
	}
	return stringAt(runtime.Value, "runtimeProvider")
}

// CamelVersion returns the distinct Camel versions reported by the pods,
// ordered by semantic version in the given direction and joined with ", ".
// It returns "" when no pod reports a version.
func CamelVersion(app App, dir Direction) string {
	return strings.Join(runtimeValues(app, "camelVersion", dir), ", ")
}

// RuntimeVersion applies the CamelVersion policy to runtime.runtimeVersion.
func RuntimeVersion(app App, dir Direction) string {
	return strings.Join(runtimeValues(app, "runtimeVersion", dir), ", ")
}

func runtimeValues(app App, key string, dir Direction) []string {
	seen := make(map[string]struct{})
	var values []string
	for _, pod := range app.pods() {
		v := nonEmptyStringAt(pod, "runtime", key)
		if !v.Present {
			continue
		}
		if _, dup := seen[v.Value]; dup {
			continue
		}
		seen[v.Value] = struct{}{}
		values = append(values, v.Value)
	}
	sortVersions(values, dir)
	return values
}

func sortVersions(values []string, dir Direction) {
	sort.SliceStable(values, func(i, j int) bool {
		c := compareVersions(values[i], values[j])
		if dir == Descending {
			return c > 0
		}
		return c < 0
	})
}

// compareVersions orders parseable versions semantically and places
// unparseable ones after them in lexical order.
func compareVersions(a, b string) int {
	va, errA := semver.ParseTolerant(a)
	vb, errB := semver.ParseTolerant(b)
	switch {
	case errA == nil && errB == nil:
		return va.Compare(vb)
	case errA == nil:
		return -1
	case errB == nil:
		return 1
	default:
		return strings.Compare(a, b)
	}
}
