package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// field is one "label: value" line of a page.
type field struct {
	label string
	value string
}

func renderPage(title string, fields []field, body ...string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	width := 0
	for _, f := range fields {
		width = max(width, len(f.label))
	}
	for _, f := range fields {
		b.WriteString(labelStyle.Render(f.label + ":" + strings.Repeat(" ", width-len(f.label)+1)))
		b.WriteString(valueOrDash(f.value))
		b.WriteString("\n")
	}

	for _, part := range body {
		if strings.TrimSpace(part) == "" {
			continue
		}
		b.WriteString("\n")
		b.WriteString(part)
		b.WriteString("\n")
	}

	return boxStyle.Render(strings.TrimRight(b.String(), "\n"))
}

func valueOrDash(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "-"
	}
	return v
}

func joinVertical(parts ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
