// ABOUTME: Dashboard screen showing platform totals and revenue
// ABOUTME: Mirrors the stat cards of the web console's landing page

package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/brightboard/admin-cli/internal/api"
	"github.com/brightboard/admin-cli/internal/tui/styles"
)

// Stats aggregates everything the dashboard shows.
type Stats struct {
	TotalUsers   int
	TotalCourses int
	Analytics    *api.SubscriptionAnalytics
	Payments     *api.PaymentStats
}

// Dashboard renders platform statistics.
type Dashboard struct {
	stats  *Stats
	width  int
	height int
}

// New creates a dashboard with the given stats (nil until loaded).
func New(stats *Stats, width, height int) *Dashboard {
	return &Dashboard{stats: stats, width: width, height: height}
}

// Update replaces the displayed stats.
func (d *Dashboard) Update(stats *Stats) {
	d.stats = stats
}

// SetSize updates the dashboard dimensions.
func (d *Dashboard) SetSize(width, height int) {
	d.width = width
	d.height = height
}

// View renders the dashboard.
func (d *Dashboard) View() string {
	if d.stats == nil {
		return styles.Panel.Width(d.width).Render("Loading platform statistics...")
	}

	var sb strings.Builder

	sb.WriteString(styles.Title.Render("Platform Overview"))
	sb.WriteString("\n\n")

	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		statCard("Users", fmt.Sprintf("%d", d.stats.TotalUsers)),
		" ",
		statCard("Courses", fmt.Sprintf("%d", d.stats.TotalCourses)),
	)
	sb.WriteString(cards)
	sb.WriteString("\n\n")

	if a := d.stats.Analytics; a != nil {
		sb.WriteString("Subscriptions\n")
		sb.WriteString(fmt.Sprintf("  Total:  %s\n", styles.ValueStyle.Render(fmt.Sprintf("%d", a.TotalSubscriptions))))
		sb.WriteString(fmt.Sprintf("  Active: %s\n", styles.StatusOK.Render(fmt.Sprintf("%d", a.ActiveSubscriptions))))
		sb.WriteString(fmt.Sprintf("  Trial:  %s\n", styles.StatusWarning.Render(fmt.Sprintf("%d", a.TrialSubscriptions))))
		sb.WriteString("\n")
	}

	if p := d.stats.Payments; p != nil {
		sb.WriteString("Payments\n")
		sb.WriteString(fmt.Sprintf("  Count:   %d\n", p.TotalPayments))
		sb.WriteString(fmt.Sprintf("  Revenue: %s\n", styles.ValueStyle.Render(fmt.Sprintf("%.2f", p.TotalRevenue))))
		for _, plan := range p.PlanStats {
			sb.WriteString(fmt.Sprintf("    %-12s %d payment(s)\n", plan.PlanType, plan.Count))
		}
	}

	return lipgloss.NewStyle().
		Width(d.width).
		Height(d.height).
		Render(sb.String())
}

func statCard(label, value string) string {
	content := styles.Subtitle.Render(label) + "\n" + styles.ValueStyle.Render(value)
	return styles.Panel.Render(content)
}
