// ABOUTME: Subscription plan commands: list, create, update, delete

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
	planType        string
	planDescription string
	planPrice       float64
)

var plansCmd = &cobra.Command{
	Use:   "plans",
	Short: "Manage subscription plans",
}

var plansListCmd = &cobra.Command{
	Use:   "list",
	Short: "List subscription plans",
	Run: func(cmd *cobra.Command, args []string) {
		runStandalone(runPlansList)
	},
}

var plansCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a subscription plan",
	Run: func(cmd *cobra.Command, args []string) {
		runStandalone(func(ctx context.Context, w io.Writer) int {
			return runPlansCreate(ctx, w)
		})
	},
}

var plansUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a subscription plan",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runStandalone(func(ctx context.Context, w io.Writer) int {
			return runPlansUpdate(ctx, w, args[0])
		})
	},
}

var plansDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a subscription plan",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runStandalone(func(ctx context.Context, w io.Writer) int {
			return runPlansDelete(ctx, w, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(plansCmd)
	plansCmd.AddCommand(plansListCmd, plansCreateCmd, plansUpdateCmd, plansDeleteCmd)

	for _, c := range []*cobra.Command{plansCreateCmd, plansUpdateCmd} {
		c.Flags().StringVar(&planType, "type", "", "Plan type, e.g. monthly, yearly")
		c.Flags().StringVar(&planDescription, "description", "", "Plan description")
		c.Flags().Float64Var(&planPrice, "price", 0, "Plan price")
	}
	plansCreateCmd.MarkFlagRequired("type")
}

func planInput() api.PlanInput {
	return api.PlanInput{
		PlanType:    planType,
		Description: planDescription,
		Price:       planPrice,
	}
}

func runPlansList(ctx context.Context, w io.Writer) int {
	s, err := newSession(ctx)
	if err != nil {
		return fail(w, err)
	}
	if !s.requireAuth(w) {
		return 1
	}

	plans, err := s.gate.ListPlans(ctx)
	if err != nil {
		return fail(w, err)
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(plans, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTYPE\tPRICE\tDESCRIPTION")
	for _, p := range plans {
		fmt.Fprintf(tw, "%s\t%s\t%.0f\t%s\n", p.ID, p.PlanType, p.Price, p.Description)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d plan(s)\n", len(plans))
	return 0
}

func runPlansCreate(ctx context.Context, w io.Writer) int {
	s, err := newSession(ctx)
	if err != nil {
		return fail(w, err)
	}
	if !s.requireAuth(w) {
		return 1
	}

	if err := s.gate.CreatePlan(ctx, planInput()); err != nil {
		return fail(w, err)
	}
	fmt.Fprintln(w, "Plan created")
	return 0
}

func runPlansUpdate(ctx context.Context, w io.Writer, id string) int {
	s, err := newSession(ctx)
	if err != nil {
		return fail(w, err)
	}
	if !s.requireAuth(w) {
		return 1
	}

	if err := s.gate.UpdatePlan(ctx, id, planInput()); err != nil {
		return fail(w, err)
	}
	fmt.Fprintln(w, "Plan updated")
	return 0
}

func runPlansDelete(ctx context.Context, w io.Writer, id string) int {
	s, err := newSession(ctx)
	if err != nil {
		return fail(w, err)
	}
	if !s.requireAuth(w) {
		return 1
	}

	if err := s.gate.DeletePlan(ctx, id); err != nil {
		return fail(w, err)
	}
	fmt.Fprintln(w, "Plan deleted")
	return 0
}
