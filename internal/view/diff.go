package view

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/gonvenience/ytbx"
	"github.com/homeport/dyff/pkg/dyff"
	"sigs.k8s.io/yaml"

	"github.com/camel-tooling/camel-dashboard-cli/internal/camelapp"
	"github.com/camel-tooling/camel-dashboard-cli/internal/output"
)

// volatileMetadata changes on every write and would drown real changes.
var volatileMetadata = []string{"managedFields", "resourceVersion", "generation"}

// DiffSnapshots compares two CamelApp snapshots by namespace/name. Modified
// apps carry a dyff report of their field changes.
func DiffSnapshots(prev, next []camelapp.App, useColor bool) (output.ChangeSet, error) {
	before := index(prev)
	after := index(next)

	var cs output.ChangeSet
	for key := range after {
		if _, ok := before[key]; !ok {
			cs.Added = append(cs.Added, key)
		}
	}
	for key := range before {
		if _, ok := after[key]; !ok {
			cs.Removed = append(cs.Removed, key)
		}
	}
	sort.Strings(cs.Added)
	sort.Strings(cs.Removed)

	keys := make([]string, 0, len(after))
	for key := range after {
		if _, ok := before[key]; ok {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		detail, changed, err := diffApp(before[key], after[key], useColor)
		if err != nil {
			return output.ChangeSet{}, fmt.Errorf("comparing %s: %w", key, err)
		}
		if changed {
			cs.Modified = append(cs.Modified, output.Change{Name: key, Detail: detail})
		}
	}

	return cs, nil
}

func index(apps []camelapp.App) map[string]camelapp.App {
	m := make(map[string]camelapp.App, len(apps))
	for _, a := range apps {
		m[a.Key()] = a
	}
	return m
}

func diffApp(before, after camelapp.App, useColor bool) (string, bool, error) {
	from, err := appYAML(before)
	if err != nil {
		return "", false, err
	}
	to, err := appYAML(after)
	if err != nil {
		return "", false, err
	}
	if bytes.Equal(from, to) {
		return "", false, nil
	}

	fromInput, err := yamlInput("previous", from)
	if err != nil {
		return "", false, err
	}
	toInput, err := yamlInput("current", to)
	if err != nil {
		return "", false, err
	}

	report, err := dyff.CompareInputFiles(fromInput, toInput)
	if err != nil {
		return "", false, fmt.Errorf("comparing YAML: %w", err)
	}
	if len(report.Diffs) == 0 {
		return "", false, nil
	}

	detail, err := renderReport(report, useColor)
	return detail, true, err
}

// appYAML marshals the object without volatile metadata. The object itself
// is shared with the snapshot and is not modified.
func appYAML(app camelapp.App) ([]byte, error) {
	obj := app.Object()
	if obj == nil {
		return nil, nil
	}

	trimmed := make(map[string]interface{}, len(obj))
	for k, v := range obj {
		trimmed[k] = v
	}
	if meta, ok := obj["metadata"].(map[string]interface{}); ok {
		m := make(map[string]interface{}, len(meta))
		for k, v := range meta {
			m[k] = v
		}
		for _, k := range volatileMetadata {
			delete(m, k)
		}
		trimmed["metadata"] = m
	}

	return yaml.Marshal(trimmed)
}

func yamlInput(name string, data []byte) (ytbx.InputFile, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return ytbx.InputFile{Location: name}, nil
	}
	docs, err := ytbx.LoadYAMLDocuments(data)
	if err != nil {
		return ytbx.InputFile{}, fmt.Errorf("parsing %s YAML: %w", name, err)
	}
	return ytbx.InputFile{Location: name, Documents: docs}, nil
}

func renderReport(report dyff.Report, useColor bool) (string, error) {
	var buf bytes.Buffer
	writer := &dyff.HumanReport{
		Report:            report,
		DoNotInspectCerts: true,
		NoTableStyle:      !useColor,
		OmitHeader:        true,
	}
	if err := writer.WriteReport(&buf); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	lines := strings.Split(buf.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.TrimSpace(strings.Join(lines, "\n")), nil
}
