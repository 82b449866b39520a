// ABOUTME: Login command: authenticates staff and persists the session
// ABOUTME: Prompts interactively for anything not passed as a flag

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/brightboard/admin-cli/internal/api"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the admin API",
	Long: `Authenticate against the admin API and persist the session.

Only accounts with the admin role may hold a console session; a valid
login with any other role is rejected without storing anything.

Exit codes:
  0 - Logged in
  1 - Credentials rejected or admin role missing
  2 - Error (connectivity, configuration, server)`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		exitCode := runLogin(ctx, os.Stdout)
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (prompted when omitted)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Account password (prompted when omitted)")
}

// runLogin executes the login flow and returns the exit code
func runLogin(ctx context.Context, w io.Writer) int {
	s, err := newSession(ctx)
	if err != nil {
		return fail(w, err)
	}

	email, password := loginEmail, loginPassword
	if email == "" || password == "" {
		email, password, err = promptCredentials(email)
		if err != nil {
			fmt.Fprintf(w, "Error: %v\n", err)
			return 2
		}
	}

	if err := s.store.Login(ctx, email, password); err != nil {
		switch {
		case api.IsAuthentication(err), api.IsAuthorization(err):
			fmt.Fprintf(w, "Error: %s\n", api.UserMessage(err))
			return 1
		default:
			return fail(w, err)
		}
	}

	user := s.store.Current()
	fmt.Fprintf(w, "Logged in as %s (%s)\n", user.Name, user.Email)
	return 0
}

// promptCredentials asks for whatever the flags did not provide.
func promptCredentials(email string) (string, string, error) {
	var password string

	fields := []huh.Field{}
	if email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email").
			Value(&email).
			Validate(notBlank("email")))
	}
	fields = append(fields, huh.NewInput().
		Title("Password").
		EchoMode(huh.EchoModePassword).
		Value(&password).
		Validate(notBlank("password")))

	form := huh.NewForm(huh.NewGroup(fields...)).WithTheme(huh.ThemeBase())
	if err := form.Run(); err != nil {
		return "", "", err
	}
	return strings.TrimSpace(email), password, nil
}

func notBlank(name string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(name + " is required")
		}
		return nil
	}
}
