// Package cli implements the erpctl commands. Every command bootstraps the
// client, acts on the session repository, and prints its result to stdout.
package cli

import (
	"context"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "erpctl",
	Short: "Command-line client for the In-House ERP backend",
	Long: `erpctl manages an authenticated ERP session from the terminal.

The session (bearer token, profile, company list) is persisted in durable
storage and survives across invocations until you log out or the backend
rejects the token.

Configuration is taken from the environment:
  ERP_API_URL       backend base URL (default http://localhost:8000)
  ERP_STATE_DIR     session state directory (default per-user config dir)
  ERP_STORE         "file" or "redis" (default file)
  REDIS_ADDR        redis address for ERP_STORE=redis
  LOG_LEVEL         trace|debug|info|warn|error`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// ExecuteContext runs the root command with the given context.
func ExecuteContext(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
