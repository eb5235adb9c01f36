package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariffzainal/inhouse-erp/internal/bootstrap"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the session from memory and durable storage",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap.Run(cmd.Context())
		if err != nil {
			return err
		}

		app.Session.Logout()
		fmt.Println("Logged out")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
