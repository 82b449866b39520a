// ABOUTME: Generic resource browser: a filterable, scrollable table screen
// ABOUTME: One model serves every CRUD listing (courses, users, plans, ...)

package browse

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brightboard/admin-cli/internal/tui/styles"
)

// Model is a table screen over one resource listing.
type Model struct {
	title     string
	columns   []table.Column
	allRows   []table.Row
	table     table.Model
	filter    textinput.Model
	filtering bool
	width     int
	height    int
}

// New creates a browser for the given columns. Rows arrive later via SetRows.
func New(title string, columns []table.Column, width, height int) *Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(tableHeight(height)),
	)

	ts := table.DefaultStyles()
	ts.Header = ts.Header.Bold(true).Foreground(styles.Accent)
	ts.Selected = ts.Selected.Foreground(styles.Text).Background(styles.Primary)
	t.SetStyles(ts)

	f := textinput.New()
	f.Placeholder = "type to filter, enter to apply"
	f.CharLimit = 64

	return &Model{
		title:   title,
		columns: columns,
		table:   t,
		filter:  f,
		width:   width,
		height:  height,
	}
}

// Title returns the screen title.
func (m *Model) Title() string { return m.title }

// SetRows replaces the full data set and re-applies any active filter.
func (m *Model) SetRows(rows []table.Row) {
	m.allRows = rows
	m.applyFilter()
}

// SetSize updates the component dimensions.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.table.SetHeight(tableHeight(height))
}

// SelectedRow returns the highlighted row, or nil when the table is empty.
func (m *Model) SelectedRow() table.Row {
	if len(m.table.Rows()) == 0 {
		return nil
	}
	return m.table.SelectedRow()
}

// Filtering reports whether the filter input currently owns the keyboard.
func (m *Model) Filtering() bool { return m.filtering }

// Update handles keyboard input for the table and the filter prompt.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return cmd
	}

	if m.filtering {
		switch keyMsg.String() {
		case "enter":
			m.filtering = false
			m.filter.Blur()
		case "esc":
			m.filtering = false
			m.filter.Blur()
			m.filter.SetValue("")
			m.applyFilter()
		default:
			var cmd tea.Cmd
			m.filter, cmd = m.filter.Update(msg)
			m.applyFilter()
			return cmd
		}
		return nil
	}

	if keyMsg.String() == "/" {
		m.filtering = true
		return m.filter.Focus()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return cmd
}

// applyFilter keeps rows with any cell containing the filter term.
func (m *Model) applyFilter() {
	term := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if term == "" {
		m.table.SetRows(m.allRows)
		return
	}

	filtered := make([]table.Row, 0, len(m.allRows))
	for _, row := range m.allRows {
		for _, cell := range row {
			if strings.Contains(strings.ToLower(cell), term) {
				filtered = append(filtered, row)
				break
			}
		}
	}
	m.table.SetRows(filtered)
	m.table.GotoTop()
}

// View renders the browser.
func (m *Model) View() string {
	var sb strings.Builder

	sb.WriteString(styles.Title.Render(m.title))
	sb.WriteString("\n")

	if m.filtering || m.filter.Value() != "" {
		sb.WriteString("Filter: " + m.filter.View())
		sb.WriteString("\n")
	}

	sb.WriteString(m.table.View())
	sb.WriteString("\n")
	sb.WriteString(styles.Help.Render("/ filter · r refresh · esc back"))
	return sb.String()
}

func tableHeight(screenHeight int) int {
	h := screenHeight - 8
	if h < 3 {
		h = 3
	}
	return h
}
