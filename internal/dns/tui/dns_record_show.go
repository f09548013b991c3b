package tui

import (
	"fmt"
	"strings"

	"simplyctl/internal/tui/styles"

	"github.com/charmbracelet/lipgloss"
)

// renderRecordShow renders the detail view for the currently selected record.
func (m recordListModel) renderRecordShow(height int) string {
	r := m.showing

	typeStyle := styles.RecordTypeStyle(string(r.Type))

	fields := []struct {
		label string
		value string
	}{
		{"ID", fmt.Sprintf("%d", r.ID)},
		{"Domain", r.Domain},
		{"Name", r.Name},
		{"Type", typeStyle.Render(string(r.Type))},
		{"Data", r.Data},
		{"TTL", fmt.Sprintf("%d", r.TTL)},
	}
	if r.Priority > 0 {
		fields = append(fields, struct {
			label string
			value string
		}{"Priority", fmt.Sprintf("%d", r.Priority)})
	}
	if r.Comment != "" {
		fields = append(fields, struct {
			label string
			value string
		}{"Comment", r.Comment})
	}

	maxLabel := 0
	for _, f := range fields {
		if len(f.label) > maxLabel {
			maxLabel = len(f.label)
		}
	}

	var lines []string
	for _, f := range fields {
		label := styles.Label.Width(maxLabel + 2).Render(f.label)
		lines = append(lines, "  "+label+styles.Value.Render(f.value))
	}

	content := strings.Join(lines, "\n")

	return lipgloss.Place(
		m.width, height,
		lipgloss.Left, lipgloss.Center,
		content,
	)
}
