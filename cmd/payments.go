// ABOUTME: Payment commands: transaction listing and revenue stats

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/brightboard/admin-cli/internal/api"
)

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "Inspect payments",
}

var paymentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List payment transactions",
	Run: func(cmd *cobra.Command, args []string) {
		runStandalone(runPaymentsList)
	},
}

var paymentsStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show payment statistics",
	Run: func(cmd *cobra.Command, args []string) {
		runStandalone(runPaymentsStats)
	},
}

func init() {
	rootCmd.AddCommand(paymentsCmd)
	paymentsCmd.AddCommand(paymentsListCmd, paymentsStatsCmd)
}

func runPaymentsList(ctx context.Context, w io.Writer) int {
	s, err := newSession(ctx)
	if err != nil {
		return fail(w, err)
	}
	if !s.requireAuth(w) {
		return 1
	}

	payments, err := s.gate.ListPayments(ctx)
	if err != nil {
		return fail(w, err)
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(payments, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER\tPLAN\tAMOUNT\tSTATUS\tMETHOD\tDATE")
	for _, p := range payments {
		user := p.User.Email
		if user == "" {
			user = p.User.ID
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%.2f\t%s\t%s\t%s\n", p.ID, user, p.PlanType, p.Amount, p.Status, p.Method, p.CreatedAt)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d payment(s)\n", len(payments))
	return 0
}

func runPaymentsStats(ctx context.Context, w io.Writer) int {
	s, err := newSession(ctx)
	if err != nil {
		return fail(w, err)
	}
	if !s.requireAuth(w) {
		return 1
	}

	stats, err := s.gate.PaymentStats(ctx)
	if err != nil {
		return fail(w, err)
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(stats, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatPaymentStatsHuman(stats))
	return 0
}

// formatPaymentStatsHuman formats payment stats for human readability
func formatPaymentStatsHuman(stats *api.PaymentStats) string {
	out := fmt.Sprintf(`Total Payments:  %d
Total Revenue:   %.2f`, stats.TotalPayments, stats.TotalRevenue)

	if len(stats.PlanStats) > 0 {
		out += "\n\nBy plan:"
		for _, p := range stats.PlanStats {
			out += fmt.Sprintf("\n  %-12s %4d payment(s)  %.2f", p.PlanType, p.Count, p.Revenue)
		}
	}
	return out
}
