// ABOUTME: Root command for the brightboard admin console
// ABOUTME: Handles global flags and session setup shared by all commands

package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/brightboard/admin-cli/internal/api"
	"github.com/brightboard/admin-cli/internal/auth"
	"github.com/brightboard/admin-cli/internal/config"
	"github.com/brightboard/admin-cli/internal/debuglog"
	"github.com/brightboard/admin-cli/internal/keystore"
)

var (
	apiURL     string
	jsonOutput bool
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "brightboard",
	Short: "Admin console for the Brightboard learning platform",
	Long: `brightboard is the staff console for the Brightboard learning platform.

It manages the course catalog, users, subscription plans, and legal content
pages through the platform's admin API. Log in first with 'brightboard login';
only accounts with the admin role can hold a session.

Environment Variables:
  BRIGHTBOARD_API_URL       Admin API base URL (required)
  BRIGHTBOARD_HTTP_TIMEOUT  API request timeout (default: 30s)
  BRIGHTBOARD_CONFIG_DIR    Session/config directory (default: XDG config)
  BRIGHTBOARD_LOG_LEVEL     Debug log level for TUI runs (default: info)`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Admin API base URL (overrides BRIGHTBOARD_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}

// session bundles the configured API gate and session store for a command run.
type session struct {
	cfg   *config.Config
	gate  *api.Client
	store *auth.Store
}

// newSession loads configuration, builds the API gate, and rehydrates any
// persisted session before the command body runs.
func newSession(ctx context.Context) (*session, error) {
	cfg, err := config.Load(ctx)
	if err != nil {
		return nil, err
	}
	return buildSession(cfg), nil
}

// buildSession wires the gate and session store from loaded configuration.
func buildSession(cfg *config.Config) *session {
	url := apiURL
	if url == "" {
		url = cfg.APIURL
	}

	gate := api.New(url,
		api.WithTimeout(cfg.HTTPTimeout),
		api.WithLogger(debuglog.Get()),
	)
	store := auth.New(keystore.New(cfg.ConfigDir), gate)
	store.Initialize()

	return &session{cfg: cfg, gate: gate, store: store}
}

// requireAuth prints guidance and returns false when no session is held.
func (s *session) requireAuth(w io.Writer) bool {
	if s.store.Authenticated() {
		return true
	}
	fmt.Fprintln(w, "Not logged in. Run 'brightboard login' first.")
	return false
}

// fail prints an error in its user-facing form and returns the error exit code.
func fail(w io.Writer, err error) int {
	fmt.Fprintf(w, "Error: %s\n", api.UserMessage(err))
	return 2
}
