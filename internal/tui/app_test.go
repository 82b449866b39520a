// ABOUTME: Integration tests for the TUI app
// ABOUTME: Tests menu navigation, data loading, and session expiry handling

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brightboard/admin-cli/internal/api"
	"github.com/brightboard/admin-cli/internal/tui/dashboard"
)

func testApp() *App {
	app := New(api.New("http://localhost:1"), "Ada")
	app.width = 100
	app.height = 40
	return app
}

func keyMsg(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func expiredErr() error {
	return &api.Error{Kind: api.KindSessionExpired, Message: "session expired"}
}

func networkErr() error {
	return &api.Error{Kind: api.KindNetwork, Message: "connection refused"}
}

func TestAppInitialState(t *testing.T) {
	app := testApp()

	if app.section != SectionMenu {
		t.Errorf("expected initial section to be SectionMenu, got %d", app.section)
	}
	if app.SessionExpired() {
		t.Error("fresh app must not report an expired session")
	}
}

func TestMenuOrder(t *testing.T) {
	want := []Section{
		SectionDashboard,
		SectionCourses,
		SectionCategories,
		SectionUsers,
		SectionSubscriptions,
		SectionPayments,
	}
	if len(menuEntries) != len(want) {
		t.Fatalf("expected %d menu entries, got %d", len(want), len(menuEntries))
	}
	for i, section := range want {
		if menuEntries[i].section != section {
			t.Errorf("menu entry %d: expected section %d, got %d", i, section, menuEntries[i].section)
		}
	}
}

func TestMenuNavigation(t *testing.T) {
	app := testApp()

	updated, _ := app.Update(keyMsg("j"))
	result := updated.(*App)
	if result.cursor != 1 {
		t.Errorf("expected cursor 1 after j, got %d", result.cursor)
	}

	updated, _ = result.Update(keyMsg("k"))
	result = updated.(*App)
	if result.cursor != 0 {
		t.Errorf("expected cursor 0 after k, got %d", result.cursor)
	}

	// Cursor stays inside the menu.
	updated, _ = result.Update(keyMsg("k"))
	result = updated.(*App)
	if result.cursor != 0 {
		t.Errorf("expected cursor to stay at 0, got %d", result.cursor)
	}
}

func TestMenuEnter_OpensSection(t *testing.T) {
	app := testApp()
	app.cursor = 1 // Courses

	updated, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	result := updated.(*App)

	if result.section != SectionCourses {
		t.Errorf("expected SectionCourses, got %d", result.section)
	}
	if cmd == nil {
		t.Error("expected a fetch command on section open")
	}
	if !result.loading {
		t.Error("expected loading state while fetching")
	}
}

func TestRowsLoaded_PopulatesBrowser(t *testing.T) {
	app := testApp()
	app.cursor = 1 // Courses
	updated, _ := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = updated.(*App)

	msg := rowsLoadedMsg{
		section: SectionCourses,
		rows:    []table.Row{{"Algebra Basics", "Math", "49", "6 months"}},
	}
	updated, _ = app.Update(msg)
	result := updated.(*App)

	if result.loading {
		t.Error("expected loading to clear after rows arrive")
	}
	view := result.View()
	if !strings.Contains(view, "Algebra Basics") {
		t.Errorf("expected loaded row in view:\n%s", view)
	}
}

func TestStatsLoaded_ShowsDashboard(t *testing.T) {
	app := testApp()
	app.section = SectionDashboard

	msg := statsLoadedMsg{stats: &dashboard.Stats{TotalUsers: 7, TotalCourses: 3}}
	updated, _ := app.Update(msg)
	result := updated.(*App)

	view := result.View()
	if !strings.Contains(view, "7") || !strings.Contains(view, "3") {
		t.Errorf("expected stat values in view:\n%s", view)
	}
}

func TestSessionExpiry_QuitsProgram(t *testing.T) {
	app := testApp()

	_, cmd := app.Update(rowsLoadedMsg{section: SectionCourses, err: expiredErr()})

	if !app.SessionExpired() {
		t.Error("expected expired flag after session eviction")
	}
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit on session expiry")
	}
}

func TestFetchError_ShowsToast(t *testing.T) {
	app := testApp()

	_, cmd := app.Update(rowsLoadedMsg{section: SectionCourses, err: networkErr()})

	if app.SessionExpired() {
		t.Error("a network error must not end the session")
	}
	if cmd == nil {
		t.Error("expected toast expiry timer")
	}
	if app.toast == "" {
		t.Error("expected a toast message")
	}

	updated, _ := app.Update(toastExpiredMsg{})
	if updated.(*App).toast != "" {
		t.Error("expected toast to clear")
	}
}

func TestEsc_ReturnsToMenu(t *testing.T) {
	app := testApp()
	app.section = SectionCourses

	updated, _ := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if updated.(*App).section != SectionMenu {
		t.Error("expected esc to return to the menu")
	}
}

func TestQuitFromMenu(t *testing.T) {
	app := testApp()

	_, cmd := app.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit from the menu")
	}
}
