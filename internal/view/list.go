// Package view renders CamelApp pages as tables, panels or structured
// documents.
package view

import (
	"fmt"
	"io"

	"github.com/camel-tooling/camel-dashboard-cli/internal/camelapp"
	"github.com/camel-tooling/camel-dashboard-cli/internal/output"
)

// Placeholders shown in table cells whose value is absent.
const (
	NoNamespace       = "No namespace"
	NoRuntimeProvider = "No runtime provider"
	NoCamelVersion    = "No camel version"
	EmptyList         = "No Camel applications found"
)

var columnHeaders = map[string]string{
	camelapp.ColumnName:        "NAME",
	camelapp.ColumnNamespace:   "NAMESPACE",
	camelapp.ColumnStatus:      "STATUS",
	camelapp.ColumnHealth:      "HEALTH",
	camelapp.ColumnRuntime:     "RUNTIME",
	camelapp.ColumnCamel:       "CAMEL",
	camelapp.ColumnLastMessage: "LAST MESSAGE",
}

// Headers returns the list table headers in column order.
func Headers() []string {
	cols := camelapp.Columns()
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = columnHeaders[c]
	}
	return headers
}

// RenderList writes the list page. Structured formats carry the raw rows,
// including empty strings; the table substitutes placeholders.
func RenderList(w io.Writer, apps []camelapp.App, format output.Format, t camelapp.Translator) error {
	rows := camelapp.ProjectAll(apps, t)
	if format != output.FormatTable {
		return output.Encode(w, format, rows)
	}

	if len(rows) == 0 {
		_, err := fmt.Fprintln(w, EmptyList)
		return err
	}

	tbl := output.NewTable(Headers()...)
	for _, r := range rows {
		tbl.Row(tableCells(r)...)
	}
	_, err := fmt.Fprintln(w, tbl.String())
	return err
}

func tableCells(r camelapp.DisplayRow) []string {
	return []string{
		output.StyleNoun.Render(r.Name),
		orPlaceholder(r.Namespace, NoNamespace),
		output.PhaseStyle(r.Status).Render(r.Status),
		output.HealthIndicator(r.Health),
		orPlaceholder(r.Runtime, NoRuntimeProvider),
		orPlaceholder(r.Camel, NoCamelVersion),
		r.LastMessage,
	}
}

func orPlaceholder(value, placeholder string) string {
	if value == "" {
		return output.Placeholder(placeholder)
	}
	return value
}
