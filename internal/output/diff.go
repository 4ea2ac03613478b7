package output

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	styleAdded    = lipgloss.NewStyle().Foreground(ColorGreen)
	styleRemoved  = lipgloss.NewStyle().Foreground(ColorBoldRed)
	styleModified = lipgloss.NewStyle().Foreground(ColorYellow)
)

// Change is one modified object and its rendered field diff.
type Change struct {
	Name   string
	Detail string
}

// ChangeSet is the difference between two snapshots of named objects.
type ChangeSet struct {
	Added    []string
	Removed  []string
	Modified []Change
}

// Empty reports whether the set holds no changes.
func (c ChangeSet) Empty() bool {
	return len(c.Added) == 0 && len(c.Removed) == 0 && len(c.Modified) == 0
}

// RenderChanges renders a change set as Added/Removed/Modified sections
// followed by a one-line summary.
func RenderChanges(c ChangeSet) string {
	if c.Empty() {
		return "No changes detected."
	}

	var sb strings.Builder

	if len(c.Added) > 0 {
		sb.WriteString(styleAdded.Render("Added:"))
		sb.WriteString("\n")
		for _, name := range c.Added {
			sb.WriteString("  + ")
			sb.WriteString(styleAdded.Render(name))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(c.Removed) > 0 {
		sb.WriteString(styleRemoved.Render("Removed:"))
		sb.WriteString("\n")
		for _, name := range c.Removed {
			sb.WriteString("  - ")
			sb.WriteString(styleRemoved.Render(name))
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}

	if len(c.Modified) > 0 {
		sb.WriteString(styleModified.Render("Modified:"))
		sb.WriteString("\n")
		for _, mod := range c.Modified {
			sb.WriteString("  ~ ")
			sb.WriteString(styleModified.Render(mod.Name))
			sb.WriteString("\n")
			sb.WriteString(IndentDiff(mod.Detail, "    "))
			sb.WriteString("\n")
		}
	}

	sb.WriteString("Summary: ")
	sb.WriteString(changeSummary(len(c.Added), len(c.Removed), len(c.Modified)))
	sb.WriteString("\n")

	return sb.String()
}

func changeSummary(added, removed, modified int) string {
	if added == 0 && removed == 0 && modified == 0 {
		return "No changes"
	}

	parts := make([]string, 0, 3)
	if added > 0 {
		parts = append(parts, strconv.Itoa(added)+" added")
	}
	if removed > 0 {
		parts = append(parts, strconv.Itoa(removed)+" removed")
	}
	if modified > 0 {
		parts = append(parts, strconv.Itoa(modified)+" modified")
	}
	return strings.Join(parts, ", ")
}

// IndentDiff prefixes every non-empty line of diff with indent.
func IndentDiff(diff string, indent string) string {
	if diff == "" {
		return ""
	}

	var sb strings.Builder
	for _, line := range strings.Split(diff, "\n") {
		if line != "" {
			sb.WriteString(indent)
			sb.WriteString(line)
			sb.WriteString("\n")
		}
	}
	return sb.String()
}
