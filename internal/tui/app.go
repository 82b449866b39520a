// ABOUTME: Root bubbletea model for the admin console TUI
// ABOUTME: Routes between the section menu, dashboard, and resource browsers

package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/brightboard/admin-cli/internal/api"
	"github.com/brightboard/admin-cli/internal/tui/browse"
	"github.com/brightboard/admin-cli/internal/tui/dashboard"
	"github.com/brightboard/admin-cli/internal/tui/styles"
)

// Section identifies one console screen.
type Section int

const (
	SectionMenu Section = iota
	SectionDashboard
	SectionCourses
	SectionCategories
	SectionUsers
	SectionSubscriptions
	SectionPayments
)

var menuEntries = []struct {
	label   string
	section Section
}{
	{"Dashboard", SectionDashboard},
	{"Courses", SectionCourses},
	{"Course Categories", SectionCategories},
	{"Users", SectionUsers},
	{"Subscriptions", SectionSubscriptions},
	{"Payments", SectionPayments},
}

// statsLoadedMsg carries dashboard data from the API.
type statsLoadedMsg struct {
	stats *dashboard.Stats
	err   error
}

// rowsLoadedMsg carries one resource listing from the API.
type rowsLoadedMsg struct {
	section Section
	rows    []table.Row
	err     error
}

// toastExpiredMsg clears the transient status message.
type toastExpiredMsg struct{}

// App is the root model for the TUI.
type App struct {
	client   *api.Client
	operator string

	section Section
	cursor  int
	width   int
	height  int

	dashboard *dashboard.Dashboard
	browsers  map[Section]*browse.Model

	toast      string
	toastError bool
	expired    bool
	loading    bool
}

// New creates the TUI application for an authenticated operator.
func New(client *api.Client, operatorName string) *App {
	return &App{
		client:   client,
		operator: operatorName,
		section:  SectionMenu,
		browsers: map[Section]*browse.Model{},
	}
}

// SessionExpired reports whether the TUI exited because the backend
// rejected the session token mid-use.
func (a *App) SessionExpired() bool { return a.expired }

// Init implements tea.Model
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		if a.dashboard != nil {
			a.dashboard.SetSize(a.contentWidth(), a.contentHeight())
		}
		for _, b := range a.browsers {
			b.SetSize(a.contentWidth(), a.contentHeight())
		}
		return a, nil

	case statsLoadedMsg:
		a.loading = false
		if msg.err != nil {
			return a, a.handleError(msg.err)
		}
		if a.dashboard == nil {
			a.dashboard = dashboard.New(msg.stats, a.contentWidth(), a.contentHeight())
		} else {
			a.dashboard.Update(msg.stats)
		}
		return a, nil

	case rowsLoadedMsg:
		a.loading = false
		if msg.err != nil {
			return a, a.handleError(msg.err)
		}
		if b, ok := a.browsers[msg.section]; ok {
			b.SetRows(msg.rows)
		}
		return a, nil

	case toastExpiredMsg:
		a.toast = ""
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The filter input owns the keyboard while active.
	if b, ok := a.browsers[a.section]; ok && b.Filtering() {
		return a, b.Update(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		if a.section == SectionMenu || msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		a.section = SectionMenu
		return a, nil

	case "esc":
		a.section = SectionMenu
		return a, nil
	}

	if a.section == SectionMenu {
		return a.handleMenuKey(msg)
	}

	if msg.String() == "r" {
		return a, a.loadSection(a.section)
	}

	if b, ok := a.browsers[a.section]; ok {
		return a, b.Update(msg)
	}
	return a, nil
}

func (a *App) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(menuEntries)-1 {
			a.cursor++
		}
	case "enter":
		entry := menuEntries[a.cursor]
		a.section = entry.section
		return a, a.loadSection(entry.section)
	}
	return a, nil
}

// loadSection kicks off the async fetch for a screen.
func (a *App) loadSection(section Section) tea.Cmd {
	a.loading = true

	if section == SectionDashboard {
		return a.fetchStats()
	}

	if _, ok := a.browsers[section]; !ok {
		a.browsers[section] = browse.New(sectionTitle(section), sectionColumns(section), a.contentWidth(), a.contentHeight())
	}
	return a.fetchRows(section)
}

func (a *App) fetchStats() tea.Cmd {
	client := a.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		users, err := client.ListUsers(ctx)
		if err != nil {
			return statsLoadedMsg{err: err}
		}
		courses, err := client.ListCourses(ctx)
		if err != nil {
			return statsLoadedMsg{err: err}
		}

		stats := &dashboard.Stats{
			TotalUsers:   len(users),
			TotalCourses: len(courses),
		}
		// Analytics endpoints are optional extras; the dashboard still
		// renders without them.
		if analytics, err := client.SubscriptionAnalytics(ctx); err == nil {
			stats.Analytics = analytics
		} else if api.IsSessionExpired(err) {
			return statsLoadedMsg{err: err}
		}
		if payments, err := client.PaymentStats(ctx); err == nil {
			stats.Payments = payments
		} else if api.IsSessionExpired(err) {
			return statsLoadedMsg{err: err}
		}

		return statsLoadedMsg{stats: stats}
	}
}

func (a *App) fetchRows(section Section) tea.Cmd {
	client := a.client
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		rows, err := fetchSectionRows(ctx, client, section)
		return rowsLoadedMsg{section: section, rows: rows, err: err}
	}
}

// handleError converts a fetch failure into a toast, or ends the program
// when the session has been evicted.
func (a *App) handleError(err error) tea.Cmd {
	if api.IsSessionExpired(err) {
		a.expired = true
		return tea.Quit
	}
	return a.showToast(api.UserMessage(err), true)
}

func (a *App) showToast(msg string, isError bool) tea.Cmd {
	a.toast = msg
	a.toastError = isError
	return tea.Tick(4*time.Second, func(time.Time) tea.Msg {
		return toastExpiredMsg{}
	})
}

// View implements tea.Model
func (a *App) View() string {
	var sb strings.Builder

	header := styles.Title.Render("Brightboard Admin") + styles.Subtitle.Render("  "+a.operator)
	sb.WriteString(header)
	sb.WriteString("\n\n")

	switch {
	case a.section == SectionMenu:
		sb.WriteString(a.menuView())
	case a.section == SectionDashboard:
		if a.dashboard == nil {
			sb.WriteString("Loading...")
		} else {
			sb.WriteString(a.dashboard.View())
		}
	default:
		if b, ok := a.browsers[a.section]; ok {
			sb.WriteString(b.View())
		}
	}

	if a.loading {
		sb.WriteString("\n")
		sb.WriteString(styles.Subtitle.Render("Loading..."))
	}
	if a.toast != "" {
		sb.WriteString("\n")
		if a.toastError {
			sb.WriteString(styles.ToastError.Render(a.toast))
		} else {
			sb.WriteString(styles.ToastInfo.Render(a.toast))
		}
	}

	return sb.String()
}

func (a *App) menuView() string {
	var sb strings.Builder
	sb.WriteString(styles.Subtitle.Render("Select a section"))
	sb.WriteString("\n")

	for i, entry := range menuEntries {
		cursor := "  "
		label := entry.label
		if i == a.cursor {
			cursor = styles.KeyStyle.Render("> ")
			label = styles.ValueStyle.Render(label)
		}
		sb.WriteString(cursor + label + "\n")
	}

	sb.WriteString(styles.Help.Render("enter open · q quit"))
	return sb.String()
}

func (a *App) contentWidth() int {
	if a.width == 0 {
		return 80
	}
	return a.width - 2
}

func (a *App) contentHeight() int {
	if a.height == 0 {
		return 24
	}
	return a.height - 6
}

func sectionTitle(section Section) string {
	for _, e := range menuEntries {
		if e.section == section {
			return e.label
		}
	}
	return fmt.Sprintf("Section %d", section)
}
