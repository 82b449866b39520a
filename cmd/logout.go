// ABOUTME: Logout command: clears the persisted session

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out and clear the stored session",
	Long:  `Clear the persisted token and identity. Safe to run when already logged out.`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runLogout(context.Background(), os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}

// runLogout clears the session and returns the exit code
func runLogout(ctx context.Context, w io.Writer) int {
	s, err := newSession(ctx)
	if err != nil {
		return fail(w, err)
	}

	s.store.Logout()
	fmt.Fprintln(w, "Logged out")
	return 0
}
