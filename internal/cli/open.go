package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariffzainal/inhouse-erp/internal/bootstrap"
	"github.com/ariffzainal/inhouse-erp/internal/metrics"
	"github.com/ariffzainal/inhouse-erp/internal/nav"
)

var openCmd = &cobra.Command{
	Use:   "open <path>",
	Short: "Evaluate the navigation guard for a view",
	Long: `Evaluate the navigation guard for a view path against the current
session, reporting whether navigation proceeds or where it redirects.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap.Run(cmd.Context())
		if err != nil {
			return err
		}

		route, ok := nav.Lookup(args[0])
		if !ok {
			return fmt.Errorf("unknown route %q", args[0])
		}

		decision := nav.Decide(route, app.Session.Snapshot())
		if decision.Proceed {
			metrics.GuardDecisionsTotal.WithLabelValues("proceed").Inc()
			fmt.Printf("proceed to %s\n", route.Path)
			return nil
		}

		metrics.GuardDecisionsTotal.WithLabelValues("redirect").Inc()
		fmt.Printf("redirect to %s\n", decision.RedirectTo)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
}
