package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariffzainal/inhouse-erp/internal/bootstrap"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap.Run(cmd.Context())
		if err != nil {
			return err
		}

		refresh, _ := cmd.Flags().GetBool("refresh")
		if refresh {
			app.Session.RefreshUser(cmd.Context())
			app.Session.RefreshCompanies(cmd.Context())
		}

		snap := app.Session.Snapshot()
		if !snap.IsAuthenticated() {
			return errors.New("not logged in")
		}

		fmt.Printf("%s (%s)\n", snap.User.FullName, snap.User.Email)
		fmt.Printf("Phase:   %s\n", snap.Phase)
		if snap.User.CurrentCompanyName != "" {
			fmt.Printf("Company: %s (role %s)\n", snap.User.CurrentCompanyName, snap.Role())
		} else {
			fmt.Println("Company: none selected")
		}
		if snap.IsAdmin() {
			fmt.Println("Admin:   yes")
		}
		if exp := app.Session.TokenExpiry(); !exp.IsZero() {
			fmt.Printf("Token expires: %s\n", exp.Format("2006-01-02 15:04:05 MST"))
		}
		return nil
	},
}

func init() {
	whoamiCmd.Flags().Bool("refresh", false, "re-fetch the profile and company list from the backend")
	rootCmd.AddCommand(whoamiCmd)
}
