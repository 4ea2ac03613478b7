package navigation

import (
	"fmt"
	"net/url"
	"strings"

	oerrors "github.com/camel-tooling/camel-dashboard-cli/internal/errors"
)

// Path prefixes of the console routes.
const (
	RootCamel         = "/camel"
	AllNamespacesPath = "/camel/all-namespaces"
)

// NavigationState is the details page state derived from its path.
type NavigationState struct {
	Namespace string `json:"namespace" yaml:"namespace"`
	Name      string `json:"name" yaml:"name"`
	ActiveTab Tab    `json:"activeTab" yaml:"activeTab"`
}

// ListScope selects which namespaces the list page covers.
type ListScope struct {
	AllNamespaces bool
	Namespace     string
}

// AllNamespaces is the scope of /camel/all-namespaces.
func AllNamespaces() ListScope {
	return ListScope{AllNamespaces: true}
}

// InNamespace is the scope of /camel/ns/{namespace}.
func InNamespace(ns string) ListScope {
	return ListScope{Namespace: ns}
}

// String returns a human-readable scope label.
func (s ListScope) String() string {
	if s.AllNamespaces || s.Namespace == "" {
		return "all namespaces"
	}
	return "namespace " + s.Namespace
}

// Route is a parsed console path. Exactly one of List and Details is set.
type Route struct {
	List    *ListScope
	Details *NavigationState
}

// Parse recognizes both list and details paths.
func Parse(raw string) (Route, error) {
	segs, err := splitPath(raw)
	if err != nil {
		return Route{}, err
	}
	if len(segs) >= 2 && segs[0] == "camel" && segs[1] == "app" {
		st, err := parseDetails(raw, segs)
		if err != nil {
			return Route{}, err
		}
		return Route{Details: &st}, nil
	}
	scope, err := parseList(raw, segs)
	if err != nil {
		return Route{}, err
	}
	return Route{List: &scope}, nil
}

// ParseDetailsPath parses /camel/app/ns/{namespace}/name/{name}[/{tab}].
// A missing or unrecognized tab segment resolves to Details; only a path
// that is not a details route at all is an error.
func ParseDetailsPath(raw string) (NavigationState, error) {
	segs, err := splitPath(raw)
	if err != nil {
		return NavigationState{}, err
	}
	return parseDetails(raw, segs)
}

func parseDetails(raw string, segs []string) (NavigationState, error) {
	if len(segs) < 6 || segs[0] != "camel" || segs[1] != "app" || segs[2] != "ns" || segs[4] != "name" {
		return NavigationState{}, invalidPath(raw, "/camel/app/ns/{namespace}/name/{name}[/resources|/metrics]")
	}
	st := NavigationState{
		Namespace: segs[3],
		Name:      segs[5],
		ActiveTab: TabDetails,
	}
	if st.Namespace == "" || st.Name == "" {
		return NavigationState{}, invalidPath(raw, "namespace and name must not be empty")
	}
	if len(segs) > 6 {
		st.ActiveTab = tabFromSegment(segs[6])
	}
	return st, nil
}

// ParseListPath parses /camel/all-namespaces and /camel/ns/{namespace}.
func ParseListPath(raw string) (ListScope, error) {
	segs, err := splitPath(raw)
	if err != nil {
		return ListScope{}, err
	}
	return parseList(raw, segs)
}

func parseList(raw string, segs []string) (ListScope, error) {
	switch {
	case len(segs) == 2 && segs[0] == "camel" && segs[1] == "all-namespaces":
		return AllNamespaces(), nil
	case len(segs) == 3 && segs[0] == "camel" && segs[1] == "ns" && segs[2] != "":
		return InNamespace(segs[2]), nil
	default:
		return ListScope{}, invalidPath(raw, "/camel/all-namespaces or /camel/ns/{namespace}")
	}
}

// DetailsPath builds the canonical details path for tab.
func DetailsPath(namespace, name string, tab Tab) string {
	return "/camel/app/ns/" + url.PathEscape(namespace) + "/name/" + url.PathEscape(name) + tab.suffix()
}

// Path returns the canonical path of st.
func (st NavigationState) Path() string {
	return DetailsPath(st.Namespace, st.Name, st.ActiveTab)
}

// ListPath builds the canonical list path for scope.
func ListPath(scope ListScope) string {
	if scope.AllNamespaces || scope.Namespace == "" {
		return AllNamespacesPath
	}
	return "/camel/ns/" + url.PathEscape(scope.Namespace)
}

// splitPath accepts a bare path or a full console URL, drops the query and
// fragment and returns the unescaped non-empty segments.
func splitPath(raw string) ([]string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, invalidPath(raw, "path is empty")
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, invalidPath(raw, err.Error())
	}
	p := u.Path
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	var segs []string
	for _, seg := range strings.Split(strings.Trim(p, "/"), "/") {
		if seg != "" {
			segs = append(segs, seg)
		}
	}
	return segs, nil
}

func invalidPath(raw, hint string) error {
	return &oerrors.DetailError{
		Type:    "invalid path",
		Message: fmt.Sprintf("cannot route %q", raw),
		Hint:    "expected " + hint,
		Cause:   oerrors.ErrValidation,
	}
}
