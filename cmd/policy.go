// ABOUTME: Legal content commands: show and publish policy pages
// ABOUTME: Publish reads content from a file or stdin instead of a rich-text widget

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/brightboard/admin-cli/internal/api"
)

var (
	policyFile    string
	policyVersion string
)

var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Manage legal content pages",
	Long: `Manage the platform's legal content pages: the privacy policy, the
terms and conditions, and the return/refund policy. Pages are versioned;
publishing adds a new revision.`,
}

var policyShowCmd = &cobra.Command{
	Use:   "show <privacy|terms|refund>",
	Short: "Show the active revision of a policy page",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runStandalone(func(ctx context.Context, w io.Writer) int {
			return runPolicyShow(ctx, w, args[0])
		})
	},
}

var policyPublishCmd = &cobra.Command{
	Use:   "publish <privacy|terms|refund>",
	Short: "Publish a new revision of a policy page",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runStandalone(func(ctx context.Context, w io.Writer) int {
			return runPolicyPublish(ctx, w, args[0])
		})
	},
}

func init() {
	rootCmd.AddCommand(policyCmd)
	policyCmd.AddCommand(policyShowCmd, policyPublishCmd)

	policyPublishCmd.Flags().StringVar(&policyFile, "file", "", "File with the page content ('-' for stdin)")
	policyPublishCmd.Flags().StringVar(&policyVersion, "version", "", "Revision label, e.g. 2.1")
	policyPublishCmd.MarkFlagRequired("file")
	policyPublishCmd.MarkFlagRequired("version")
}

func runPolicyShow(ctx context.Context, w io.Writer, name string) int {
	policyType, err := api.ParsePolicyType(name)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	s, err := newSession(ctx)
	if err != nil {
		return fail(w, err)
	}
	if !s.requireAuth(w) {
		return 1
	}

	policy, err := s.gate.ActivePolicy(ctx, policyType)
	if err != nil {
		return fail(w, err)
	}
	if policy == nil {
		fmt.Fprintf(w, "No revisions published for %s yet.\n", policyType)
		return 0
	}

	if IsJSONOutput() {
		data, _ := json.MarshalIndent(policy, "", "  ")
		fmt.Fprintln(w, string(data))
		return 0
	}

	fmt.Fprintf(w, "Version %s (active: %t, updated: %s)\n\n%s\n", policy.Version, policy.IsActive, policy.UpdatedAt, policy.Content)
	return 0
}

func runPolicyPublish(ctx context.Context, w io.Writer, name string) int {
	policyType, err := api.ParsePolicyType(name)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	content, err := readPolicyContent(policyFile)
	if err != nil {
		fmt.Fprintf(w, "Error: %v\n", err)
		return 2
	}

	s, err := newSession(ctx)
	if err != nil {
		return fail(w, err)
	}
	if !s.requireAuth(w) {
		return 1
	}

	if err := s.gate.PublishPolicy(ctx, policyType, content, policyVersion); err != nil {
		return fail(w, err)
	}
	fmt.Fprintf(w, "Published %s version %s\n", policyType, policyVersion)
	return 0
}

// readPolicyContent loads the page body from a file, or stdin for "-"
func readPolicyContent(path string) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
