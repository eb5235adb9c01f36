package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariffzainal/inhouse-erp/internal/bootstrap"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and persist the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		email, _ := cmd.Flags().GetString("email")
		password, _ := cmd.Flags().GetString("password")
		if email == "" || password == "" {
			return errors.New("both --email and --password are required")
		}

		app, err := bootstrap.Run(cmd.Context())
		if err != nil {
			return err
		}

		if !app.Session.Login(cmd.Context(), email, password) {
			return errors.New(app.Session.Snapshot().Error)
		}

		snap := app.Session.Snapshot()
		fmt.Printf("Logged in as %s (%s)\n", snap.User.FullName, snap.User.Email)
		if snap.User.CurrentCompanyName != "" {
			fmt.Printf("Active company: %s (role %s)\n", snap.User.CurrentCompanyName, snap.Role())
		}
		if n := len(snap.Companies); n > 0 {
			fmt.Printf("Member of %d compan(ies); run 'erpctl companies list' to see them\n", n)
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().String("email", "", "account email")
	loginCmd.Flags().String("password", "", "account password")
	rootCmd.AddCommand(loginCmd)
}
