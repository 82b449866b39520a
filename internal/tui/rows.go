// ABOUTME: Column layouts and row builders for each resource browser

package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/table"

	"github.com/brightboard/admin-cli/internal/api"
)

func sectionColumns(section Section) []table.Column {
	switch section {
	case SectionCourses:
		return []table.Column{
			{Title: "Title", Width: 28},
			{Title: "Category", Width: 14},
			{Title: "Price", Width: 8},
			{Title: "Duration", Width: 12},
		}
	case SectionCategories:
		return []table.Column{
			{Title: "Name", Width: 20},
			{Title: "Description", Width: 36},
			{Title: "Sort", Width: 6},
		}
	case SectionUsers:
		return []table.Column{
			{Title: "Name", Width: 20},
			{Title: "Email", Width: 28},
			{Title: "Role", Width: 8},
			{Title: "Created", Width: 12},
		}
	case SectionSubscriptions:
		return []table.Column{
			{Title: "User", Width: 26},
			{Title: "Plan", Width: 10},
			{Title: "Status", Width: 10},
			{Title: "Payment", Width: 10},
			{Title: "Ends", Width: 12},
		}
	case SectionPayments:
		return []table.Column{
			{Title: "User", Width: 26},
			{Title: "Plan", Width: 10},
			{Title: "Amount", Width: 10},
			{Title: "Status", Width: 10},
			{Title: "Date", Width: 12},
		}
	default:
		return nil
	}
}

func fetchSectionRows(ctx context.Context, client *api.Client, section Section) ([]table.Row, error) {
	switch section {
	case SectionCourses:
		courses, err := client.ListCourses(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]table.Row, 0, len(courses))
		for _, c := range courses {
			rows = append(rows, table.Row{c.Title, c.Category, fmt.Sprintf("%.0f", c.Price), c.Duration})
		}
		return rows, nil

	case SectionCategories:
		categories, err := client.ListCategories(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]table.Row, 0, len(categories))
		for _, c := range categories {
			rows = append(rows, table.Row{c.Name, c.Description, fmt.Sprintf("%d", c.SortOrder)})
		}
		return rows, nil

	case SectionUsers:
		users, err := client.ListUsers(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]table.Row, 0, len(users))
		for _, u := range users {
			rows = append(rows, table.Row{u.Name, u.Email, u.Role, shortDate(u.CreatedAt)})
		}
		return rows, nil

	case SectionSubscriptions:
		subs, err := client.ListSubscriptions(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]table.Row, 0, len(subs))
		for _, s := range subs {
			user := s.User.Email
			if user == "" {
				user = s.User.ID
			}
			ends := s.EndDate
			if s.Status == "trial" {
				ends = s.TrialEndDate
			}
			rows = append(rows, table.Row{user, s.PlanType, s.Status, s.PaymentStatus, shortDate(ends)})
		}
		return rows, nil

	case SectionPayments:
		payments, err := client.ListPayments(ctx)
		if err != nil {
			return nil, err
		}
		rows := make([]table.Row, 0, len(payments))
		for _, p := range payments {
			user := p.User.Email
			if user == "" {
				user = p.User.ID
			}
			rows = append(rows, table.Row{user, p.PlanType, fmt.Sprintf("%.2f", p.Amount), p.Status, shortDate(p.CreatedAt)})
		}
		return rows, nil

	default:
		return nil, fmt.Errorf("no listing for section %d", section)
	}
}

// shortDate trims an RFC 3339 timestamp to its date part.
func shortDate(ts string) string {
	if len(ts) >= 10 {
		return ts[:10]
	}
	return ts
}
