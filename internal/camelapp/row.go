package camelapp

// Column identifiers of a list row, in display order.
const (
	ColumnName        = "name"
	ColumnNamespace   = "namespace"
	ColumnStatus      = "status"
	ColumnHealth      = "health"
	ColumnRuntime     = "runtime"
	ColumnCamel       = "camel"
	ColumnLastMessage = "lastmessage"
)

// Columns returns the list row column identifiers in display order.
func Columns() []string {
	return []string{
		ColumnName,
		ColumnNamespace,
		ColumnStatus,
		ColumnHealth,
		ColumnRuntime,
		ColumnCamel,
		ColumnLastMessage,
	}
}

// DisplayRow is the flat projection of one CamelApp for the list view.
// Every field is a string; absent data is "" or "Unknown", never missing.
type DisplayRow struct {
	Name                 string `json:"name" yaml:"name"`
	Namespace            string `json:"namespace" yaml:"namespace"`
	Status               string `json:"status" yaml:"status"`
	Health               string `json:"health" yaml:"health"`
	Runtime              string `json:"runtime" yaml:"runtime"`
	Camel                string `json:"camel" yaml:"camel"`
	LastMessage          string `json:"lastMessage" yaml:"lastMessage"`
	LastMessageTimestamp string `json:"lastMessageTimestamp" yaml:"lastMessageTimestamp"`
}

// Project computes the DisplayRow of app. Ordered extractors use Ascending.
func Project(app App, t Translator) DisplayRow {
	ts, _ := LastMessageTimestamp(app, Ascending)
	return DisplayRow{
		Name:                 app.Name(),
		Namespace:            app.Namespace(),
		Status:               Status(app),
		Health:               Health(app),
		Runtime:              RuntimeProvider(app),
		Camel:                CamelVersion(app, Ascending),
		LastMessage:          LastMessageAsString(app, Ascending, t),
		LastMessageTimestamp: ts,
	}
}

// ProjectAll projects apps in order.
func ProjectAll(apps []App, t Translator) []DisplayRow {
	rows := make([]DisplayRow, 0, len(apps))
	for _, app := range apps {
		rows = append(rows, Project(app, t))
	}
	return rows
}

// Value returns the value of the named column, or "" for unknown columns.
func (r DisplayRow) Value(column string) string {
	switch column {
	case ColumnName:
		return r.Name
	case ColumnNamespace:
		return r.Namespace
	case ColumnStatus:
		return r.Status
	case ColumnHealth:
		return r.Health
	case ColumnRuntime:
		return r.Runtime
	case ColumnCamel:
		return r.Camel
	case ColumnLastMessage:
		return r.LastMessage
	default:
		return ""
	}
}

// Values returns the row values keyed by Columns order.
func (r DisplayRow) Values() []string {
	cols := Columns()
	out := make([]string, len(cols))
	for i, c := range cols {
		out[i] = r.Value(c)
	}
	return out
}
