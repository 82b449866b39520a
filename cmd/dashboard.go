// ABOUTME: Dashboard command: launches the interactive TUI console

package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/brightboard/admin-cli/internal/config"
	"github.com/brightboard/admin-cli/internal/debuglog"
	"github.com/brightboard/admin-cli/internal/tui"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive console",
	Long: `Open the full-screen interactive console with the platform dashboard
and browsable listings for courses, categories, users, subscriptions,
and payments. Requires an active session.`,
	Run: func(cmd *cobra.Command, args []string) {
		exitCode := runDashboard(context.Background(), os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

// runDashboard starts the TUI and returns the exit code
func runDashboard(ctx context.Context, w io.Writer) int {
	cfg, err := config.Load(ctx)
	if err != nil {
		return fail(w, err)
	}

	// Open the debug log before the gate is built so API tracing lands in it.
	log, err := debuglog.Init(cfg.ConfigDir, cfg.LogLevel)
	if err == nil {
		defer debuglog.Close()
	}

	s := buildSession(cfg)
	if !s.requireAuth(w) {
		return 1
	}
	log.Info().Str("user", s.store.Current().Email).Msg("console started")

	app := tui.New(s.gate, s.store.Current().Name)
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	if app.SessionExpired() {
		fmt.Fprintln(w, "Your session has expired. Please log in again.")
		return 1
	}
	return 0
}
