// Package tui implements the interactive DNS record browser.
package tui

import (
	"context"
	"fmt"
	"strings"

	"simplyctl/internal/dns/domain"
	"simplyctl/internal/tui/components"
	"simplyctl/internal/tui/styles"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// --- Messages ---

type recordsLoadedMsg struct {
	records []domain.Record
}

type recordsErrorMsg struct {
	err error
}

// --- Record list model ---

type recordListModel struct {
	provider     domain.Provider
	providerName string
	domain       string

	records   []domain.Record
	filtered  []domain.Record
	cursor    int
	listStart int // for scrolling

	typeFilter  string // e.g. "A", "CNAME", "" for all
	filterTypes []string

	width  int
	height int

	loading       bool
	spinner       spinner.Model
	err           error
	status        string
	statusIsError bool

	showing *domain.Record // non-nil when the detail view is open
}

func newRecordListModel(provider domain.Provider, domainName string) recordListModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	return recordListModel{
		provider:     provider,
		providerName: provider.GetDisplayName(),
		domain:       domainName,
		filterTypes:  []string{"", "A", "AAAA", "CNAME", "MX", "TXT"},
		typeFilter:   "",
		loading:      true,
		spinner:      s,
	}
}

// Run starts the record browser for the given domain and blocks until quit.
func Run(provider domain.Provider, domainName string) error {
	p := tea.NewProgram(newRecordListModel(provider, domainName), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m recordListModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadRecordsCmd())
}

func (m recordListModel) loadRecordsCmd() tea.Cmd {
	return func() tea.Msg {
		records, err := m.provider.ListRecords(context.Background(), m.domain)
		if err != nil {
			return recordsErrorMsg{err}
		}
		return recordsLoadedMsg{records}
	}
}

func (m *recordListModel) applyFilter() {
	m.filtered = make([]domain.Record, 0)
	for _, r := range m.records {
		if m.typeFilter == "" || strings.EqualFold(string(r.Type), m.typeFilter) {
			m.filtered = append(m.filtered, r)
		}
	}
	if m.cursor >= len(m.filtered) {
		m.cursor = len(m.filtered) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
	}
	m.updateScroll()
}

func (m *recordListModel) updateScroll() {
	headerH, footerH, statusH := 3, 1, 1 // approximate
	contentH := max(m.height-headerH-footerH-statusH, 1)
	filterBarH := 1
	tableH := max(contentH-filterBarH-1, 1)
	visibleRows := max(tableH-3, 1)

	if m.cursor < m.listStart {
		m.listStart = m.cursor
	} else if m.cursor >= m.listStart+visibleRows {
		m.listStart = m.cursor - visibleRows + 1
	}
}

func (m recordListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		if m.loading {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			return m, nil
		}

		if m.showing != nil {
			switch msg.String() {
			case "esc", "backspace", "enter":
				m.showing = nil
			case "ctrl+c", "q":
				return m, tea.Quit
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
			m.updateScroll()
		case "down", "j":
			if m.cursor < len(m.filtered)-1 {
				m.cursor++
			}
			m.updateScroll()
		case "g":
			m.cursor = 0
			m.updateScroll()
		case "G":
			if len(m.filtered) > 0 {
				m.cursor = len(m.filtered) - 1
			}
			m.updateScroll()
		case "f":
			idx := 0
			for i, t := range m.filterTypes {
				if t == m.typeFilter {
					idx = i
					break
				}
			}
			idx = (idx + 1) % len(m.filterTypes)
			m.typeFilter = m.filterTypes[idx]
			m.applyFilter()
		case "r":
			m.loading = true
			m.err = nil
			return m, tea.Batch(m.spinner.Tick, m.loadRecordsCmd())
		case "enter":
			if len(m.filtered) > 0 {
				rec := m.filtered[m.cursor]
				m.showing = &rec
			}
		}

	case recordsLoadedMsg:
		m.loading = false
		m.records = msg.records
		m.applyFilter()
		m.status = fmt.Sprintf("%d record(s)", len(m.records))
		m.statusIsError = false

	case recordsErrorMsg:
		m.loading = false
		m.err = msg.err
		m.status = msg.err.Error()
		m.statusIsError = true

	case spinner.TickMsg:
		if m.loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m recordListModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	breadcrumb := m.domain
	if m.showing != nil {
		breadcrumb += " > " + m.showing.Name
	}
	header := components.Header(m.width, breadcrumb, m.providerName)

	var footerBindings []components.KeyBinding
	switch {
	case m.loading:
		footerBindings = []components.KeyBinding{
			{Key: "ctrl+c", Desc: "quit"},
		}
	case m.showing != nil:
		footerBindings = []components.KeyBinding{
			{Key: "esc", Desc: "back"},
			{Key: "q", Desc: "quit"},
		}
	default:
		footerBindings = []components.KeyBinding{
			{Key: "j/k", Desc: "nav"},
			{Key: "enter", Desc: "show"},
			{Key: "f", Desc: "filter"},
			{Key: "r", Desc: "refresh"},
			{Key: "q", Desc: "quit"},
		}
	}
	footer := components.Footer(m.width, footerBindings)

	statusBar := ""
	if m.status != "" {
		statusBar = components.StatusBar(m.width, m.status, m.statusIsError)
	}

	headerH := lipgloss.Height(header)
	footerH := lipgloss.Height(footer)
	statusH := lipgloss.Height(statusBar)
	contentH := max(m.height-headerH-footerH-statusH, 1)

	content := m.renderContent(contentH)

	sections := []string{header, content}
	if statusBar != "" {
		sections = append(sections, statusBar)
	}
	sections = append(sections, footer)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m recordListModel) renderContent(height int) string {
	if m.loading {
		loadingText := m.spinner.View() + "  Fetching records…"
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render(loadingText),
		)
	}

	if m.err != nil {
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			styles.ErrorText.Render(fmt.Sprintf("Error: %v", m.err)),
		)
	}

	if m.showing != nil {
		return m.renderRecordShow(height)
	}

	if len(m.records) == 0 {
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Center,
			styles.MutedText.Render("No records found for this domain."),
		)
	}

	filterBar := m.renderFilterBar()
	tableH := max(height-lipgloss.Height(filterBar)-1, 1) // -1 for margin
	table := m.renderTable(tableH)

	content := lipgloss.JoinVertical(lipgloss.Left, filterBar, "", table)

	contentLines := strings.Split(content, "\n")
	if len(contentLines) < height {
		padding := strings.Repeat("\n", height-len(contentLines))
		content += padding
	}

	return content
}

func (m recordListModel) renderFilterBar() string {
	var parts []string
	parts = append(parts, "  Filter: ")

	for _, t := range m.filterTypes {
		label := t
		if t == "" {
			label = "All"
		}

		if t == m.typeFilter {
			parts = append(parts, fmt.Sprintf("[%s]", styles.AccentText.Render(label)))
		} else {
			parts = append(parts, fmt.Sprintf(" %s ", styles.MutedText.Render(label)))
		}
	}

	return strings.Join(parts, "")
}

func (m recordListModel) renderTable(height int) string {
	if len(m.filtered) == 0 {
		return lipgloss.Place(
			m.width, height,
			lipgloss.Center, lipgloss.Top,
			styles.MutedText.Render("\nNo records match the current filter."),
		)
	}

	type column struct {
		title string
		width int
	}

	available := m.width - 4

	cols := []column{
		{title: "ID", width: 12},
		{title: "NAME", width: 20},
		{title: "TYPE", width: 8},
		{title: "DATA", width: 30},
		{title: "TTL", width: 8},
	}

	// Distribute remaining width to the DATA column
	total := 0
	for _, c := range cols {
		total += c.width
	}
	if available > total {
		extra := available - total
		for i := range cols {
			if cols[i].title == "DATA" {
				cols[i].width += extra
				break
			}
		}
	}

	headerCells := make([]string, len(cols))
	for i, col := range cols {
		headerCells[i] = styles.TableHeader.
			Width(col.width).
			Render(col.title)
	}
	headerRow := lipgloss.JoinHorizontal(lipgloss.Top, headerCells...)

	sep := styles.MutedText.Render(strings.Repeat("─", available))

	visibleRows := max(height-3, 1)

	end := m.listStart + visibleRows
	if end > len(m.filtered) {
		end = len(m.filtered)
	}

	var rows []string
	rows = append(rows, headerRow, sep)

	for i := m.listStart; i < end; i++ {
		r := m.filtered[i]

		typeStyle := styles.RecordTypeStyle(string(r.Type))
		data := ansi.Truncate(r.Data, cols[3].width-2, "…")

		cells := []string{
			lipgloss.NewStyle().Width(cols[0].width).Render(fmt.Sprintf("%d", r.ID)),
			lipgloss.NewStyle().Width(cols[1].width).Render(r.Name),
			lipgloss.NewStyle().Width(cols[2].width).Render(typeStyle.Render(string(r.Type))),
			lipgloss.NewStyle().Width(cols[3].width).Render(data),
			lipgloss.NewStyle().Width(cols[4].width).Render(fmt.Sprintf("%d", r.TTL)),
		}

		rowContent := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

		cursor := "  "
		rowStyle := styles.TableCell
		if i == m.cursor {
			cursor = styles.AccentText.Render("> ")
			rowStyle = styles.TableSelectedRow
		}

		renderedRow := lipgloss.JoinHorizontal(lipgloss.Top, cursor, rowStyle.Render(rowContent))
		rows = append(rows, renderedRow)
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
