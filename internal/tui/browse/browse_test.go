// ABOUTME: Tests for the generic resource browser
// ABOUTME: Covers filtering, row selection, and filter-mode key handling

package browse

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
)

func testModel() *Model {
	m := New("Courses", []table.Column{
		{Title: "ID", Width: 8},
		{Title: "TITLE", Width: 24},
		{Title: "CATEGORY", Width: 12},
	}, 80, 24)
	m.SetRows([]table.Row{
		{"c1", "Algebra Basics", "Math"},
		{"c2", "Organic Chemistry", "Science"},
		{"c3", "Statistics", "Math"},
	})
	return m
}

func typeRunes(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestSetRows_PopulatesTable(t *testing.T) {
	m := testModel()

	view := m.View()
	if !strings.Contains(view, "Algebra Basics") {
		t.Errorf("expected rows in view:\n%s", view)
	}
	if !strings.Contains(view, "Courses") {
		t.Error("expected title in view")
	}
}

func TestFilter_NarrowsRows(t *testing.T) {
	m := testModel()

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	if !m.Filtering() {
		t.Fatal("expected filter mode after /")
	}

	typeRunes(m, "math")
	view := m.View()
	if !strings.Contains(view, "Statistics") {
		t.Errorf("expected matching row in view:\n%s", view)
	}
	if strings.Contains(view, "Organic Chemistry") {
		t.Error("expected non-matching row to be hidden")
	}
}

func TestFilter_EnterKeepsFilter(t *testing.T) {
	m := testModel()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	typeRunes(m, "chem")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if m.Filtering() {
		t.Error("expected filter mode to end on enter")
	}
	if !strings.Contains(m.View(), "Organic Chemistry") {
		t.Error("expected applied filter to persist")
	}
}

func TestFilter_EscClears(t *testing.T) {
	m := testModel()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	typeRunes(m, "chem")
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	if m.Filtering() {
		t.Error("expected filter mode to end on esc")
	}
	view := m.View()
	if !strings.Contains(view, "Algebra Basics") || !strings.Contains(view, "Statistics") {
		t.Errorf("expected all rows back after esc:\n%s", view)
	}
}

func TestFilter_MatchesAnyCell(t *testing.T) {
	m := testModel()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	typeRunes(m, "c2")

	view := m.View()
	if !strings.Contains(view, "Organic Chemistry") {
		t.Errorf("expected id match to keep row:\n%s", view)
	}
}

func TestSelectedRow(t *testing.T) {
	m := testModel()

	row := m.SelectedRow()
	if len(row) == 0 || row[0] != "c1" {
		t.Errorf("expected first row selected, got %v", row)
	}
}
