// ABOUTME: Whoami command: shows the current session identity
// ABOUTME: Optionally probes the backend to confirm the token is still accepted

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/brightboard/admin-cli/internal/api"
)

var whoamiVerify bool

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in identity",
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runWhoami(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
	whoamiCmd.Flags().BoolVar(&whoamiVerify, "verify", false, "Probe the backend to confirm the token is still valid")
}

// runWhoami prints the session identity and returns the exit code
func runWhoami(ctx context.Context, w io.Writer) int {
	s, err := newSession(ctx)
	if err != nil {
		return fail(w, err)
	}
	if !s.requireAuth(w) {
		return 1
	}

	if whoamiVerify {
		if err := s.gate.Verify(ctx); err != nil {
			if api.IsSessionExpired(err) {
				fmt.Fprintln(w, api.UserMessage(err))
				return 1
			}
			return fail(w, err)
		}
	}

	user := s.store.Current()
	if IsJSONOutput() {
		data, _ := json.MarshalIndent(user, "", "  ")
		fmt.Fprintln(w, string(data))
	} else {
		fmt.Fprintf(w, "Name:  %s\nEmail: %s\nRole:  %s\n", user.Name, user.Email, user.Role)
	}
	return 0
}
