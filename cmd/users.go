// ABOUTME: Platform user commands: list and role changes

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var userRole string

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage platform users",
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List platform users",
	Run: func(cmd *cobra.Command, args []string) {
		runStandalone(runUsersList)
	},
}

var usersSetRoleCmd = &cobra.Command{
	Use:   "set-role <id>",
	Short: "Change a user's role",
	Long:  `Change a platform user's role to "user" or "admin".`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runStandalone(func(ctx context.Context, w io.Writer) int {
			return runUsersSetRole(ctx, w, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd, usersSetRoleCmd)

	usersSetRoleCmd.Flags().StringVar(&userRole, "role", "", "New role: user or admin")
	usersSetRoleCmd.MarkFlagRequired("role")
}

func runUsersList(ctx context.Context, w io.Writer) int {
	s, err := newSession(ctx)
	if err != nil {
		return fail(w, err)
	}
	if !s.requireAuth(w) {
		return 1
	}

	users, err := s.gate.ListUsers(ctx)
	if err != nil {
		return fail(w, err)
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(users, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEMAIL\tROLE\tCREATED")
	for _, u := range users {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", u.ID, u.Name, u.Email, u.Role, u.CreatedAt)
	}
	tw.Flush()
	fmt.Fprintf(w, "\n%d user(s)\n", len(users))
	return 0
}

func runUsersSetRole(ctx context.Context, w io.Writer, id string) int {
	if userRole != "user" && userRole != "admin" {
		fmt.Fprintf(w, "Error: invalid role %q (must be user or admin)\n", userRole)
		return 2
	}

	s, err := newSession(ctx)
	if err != nil {
		return fail(w, err)
	}
	if !s.requireAuth(w) {
		return 1
	}

	if err := s.gate.SetUserRole(ctx, id, userRole); err != nil {
		return fail(w, err)
	}
	fmt.Fprintf(w, "Role updated to %s\n", userRole)
	return 0
}
