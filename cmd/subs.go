// ABOUTME: User subscription commands: list, analytics, trial management

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

var (
	subStatusFilter string
	trialAction     string
	trialDays       int
)

var subsCmd = &cobra.Command{
	Use:   "subs",
	Short: "Manage user subscriptions",
}

var subsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List user subscriptions",
	Run: func(cmd *cobra.Command, args []string) {
		runStandalone(runSubsList)
	},
}

var subsAnalyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show subscription analytics",
	Run: func(cmd *cobra.Command, args []string) {
		runStandalone(runSubsAnalytics)
	},
}

var subsTrialCmd = &cobra.Command{
	Use:   "trial <user-id>",
	Short: "Extend or end a user's trial",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runStandalone(func(ctx context.Context, w io.Writer) int {
			return runSubsTrial(ctx, w, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(subsCmd)
	subsCmd.AddCommand(subsListCmd, subsAnalyticsCmd, subsTrialCmd)

	subsListCmd.Flags().StringVar(&subStatusFilter, "status", "", "Only show subscriptions with this status (trial, active, expired, cancelled)")
	subsTrialCmd.Flags().StringVar(&trialAction, "action", api.TrialActionExtend, "Trial action: extend or end")
	subsTrialCmd.Flags().IntVar(&trialDays, "days", 3, "Days to extend by (ignored for end)")
}

func runSubsList(ctx context.Context, w io.Writer) int {
	s, err := newSession(ctx)
	if err != nil {
		return fail(w, err)
	}
	if !s.requireAuth(w) {
		return 1
	}

	subs, err := s.gate.ListSubscriptions(ctx)
	if err != nil {
		return fail(w, err)
	}

	if subStatusFilter != "" {
		filtered := make([]api.Subscription, 0, len(subs))
		for _, sub := range subs {
			if sub.Status == subStatusFilter {
				filtered = append(filtered, sub)
			}
		}
		subs = filtered
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(subs, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tUSER\tPLAN\tSTATUS\tPAYMENT\tENDS")
	for _, sub := range subs {
		user := sub.User.Email
		if user == "" {
			user = sub.User.ID
		}
		ends := sub.EndDate
		if sub.Status == "trial" {
			ends = sub.TrialEndDate
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n", sub.ID, user, sub.PlanType, sub.Status, sub.PaymentStatus, ends)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d subscription(s)\n", len(subs))
	return 0
}

func runSubsAnalytics(ctx context.Context, w io.Writer) int {
	s, err := newSession(ctx)
	if err != nil {
		return fail(w, err)
	}
	if !s.requireAuth(w) {
		return 1
	}

	analytics, err := s.gate.SubscriptionAnalytics(ctx)
	if err != nil {
		return fail(w, err)
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(analytics, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintln(w, formatAnalyticsHuman(analytics))
	return 0
}

// formatAnalyticsHuman formats subscription analytics for human readability
func formatAnalyticsHuman(a *api.SubscriptionAnalytics) string {
	out := fmt.Sprintf(`Total Subscriptions:  %d
Active:               %d
Trial:                %d`, a.TotalSubscriptions, a.ActiveSubscriptions, a.TrialSubscriptions)

	if len(a.PlanDistribution) > 0 {
		out += "\n\nBy plan:"
		for _, b := range a.PlanDistribution {
			out += fmt.Sprintf("\n  %-12s %d", b.PlanType, b.Count)
		}
	}
	return out
}

func runSubsTrial(ctx context.Context, w io.Writer, userID string) int {
	s, err := newSession(ctx)
	if err != nil {
		return fail(w, err)
	}
	if !s.requireAuth(w) {
		return 1
	}

	if err := s.gate.ManageTrial(ctx, userID, trialAction, trialDays); err != nil {
		return fail(w, err)
	}

	if trialAction == api.TrialActionEnd {
		fmt.Fprintln(w, "Trial ended")
	} else {
		fmt.Fprintf(w, "Trial extended by %d day(s)\n", trialDays)
	}
	return 0
}
