package camelapp

import (
	"fmt"
	"sort"
	"time"

	"golang.org/x/text/message"
)

// Translator formats message text for display. *message.Printer from
// golang.org/x/text/message satisfies it.
type Translator interface {
	Sprintf(key message.Reference, a ...interface{}) string
}

// Message formats used by timeline entries.
const (
	conditionMessageFormat = "%s"
	exchangeMessageFormat  = "Last exchange on %s"
)

// MessageEntry is one timestamped message in a CamelApp's history.
type MessageEntry struct {
	// Source identifies where the entry came from, e.g. "condition/Ready"
	// or "pod/order-service-7d9f".
	Source string
	// Format and Args make up the message text before translation.
	Format string
	Args   []interface{}
	// Timestamp is when the message was recorded.
	Timestamp time.Time
}

// Text renders the message through t, or fmt when t is nil.
func (e MessageEntry) Text(t Translator) string {
	if t == nil {
		return fmt.Sprintf(e.Format, e.Args...)
	}
	return t.Sprintf(e.Format, e.Args...)
}

// Messages collects the timestamped entries of a CamelApp in collection
// order: status.conditions first, then one exchange entry per pod.
// Entries without a parseable timestamp are skipped.
func Messages(app App) []MessageEntry {
	var entries []MessageEntry

	for _, cond := range app.conditions() {
		ts := timeAt(cond, "lastTransitionTime")
		if !ts.Present {
			continue
		}
		text := stringAt(cond, "message").OrElse("")
		if text == "" {
			text = stringAt(cond, "reason").OrElse("")
		}
		entries = append(entries, MessageEntry{
			Source:    "condition/" + stringAt(cond, "type").OrElse(""),
			Format:    conditionMessageFormat,
			Args:      []interface{}{text},
			Timestamp: ts.Value,
		})
	}

	for _, pod := range app.pods() {
		ts := timeAt(pod, "runtime", "exchange", "lastTimestamp")
		if !ts.Present {
			continue
		}
		name := stringAt(pod, "name").OrElse("")
		entries = append(entries, MessageEntry{
			Source:    "pod/" + name,
			Format:    exchangeMessageFormat,
			Args:      []interface{}{name},
			Timestamp: ts.Value,
		})
	}

	return entries
}

// LastMessage selects one entry from the CamelApp's messages. Entries are
// stably ordered by timestamp in dir and the last one visited is returned,
// so Ascending yields the newest entry and Descending the oldest. Equal
// timestamps keep collection order.
func LastMessage(app App, dir Direction) (MessageEntry, bool) {
	entries := Messages(app)
	if len(entries) == 0 {
		return MessageEntry{}, false
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if dir == Descending {
			return entries[i].Timestamp.After(entries[j].Timestamp)
		}
		return entries[i].Timestamp.Before(entries[j].Timestamp)
	})
	return entries[len(entries)-1], true
}

// LastMessageAsString returns the selected message text formatted by t, or
// "" when the CamelApp has no messages.
func LastMessageAsString(app App, dir Direction, t Translator) string {
	entry, ok := LastMessage(app, dir)
	if !ok {
		return ""
	}
	return entry.Text(t)
}

// LastMessageTimestamp returns the RFC3339 timestamp of the selected
// message. The second result is false when there is none.
func LastMessageTimestamp(app App, dir Direction) (string, bool) {
	entry, ok := LastMessage(app, dir)
	if !ok {
		return "", false
	}
	return entry.Timestamp.UTC().Format(time.RFC3339), true
}
