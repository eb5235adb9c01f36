package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ariffzainal/inhouse-erp/internal/bootstrap"
	"github.com/ariffzainal/inhouse-erp/internal/core/ports"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account with its first company, then log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		input := ports.RegisterInput{}
		input.Email, _ = cmd.Flags().GetString("email")
		input.FullName, _ = cmd.Flags().GetString("name")
		input.Password, _ = cmd.Flags().GetString("password")
		input.CompanyDisplayName, _ = cmd.Flags().GetString("company-name")
		input.CompanyLegalName, _ = cmd.Flags().GetString("company-legal-name")
		input.BusinessRegistrationNumber, _ = cmd.Flags().GetString("company-reg-no")
		if input.CompanyLegalName == "" {
			input.CompanyLegalName = input.CompanyDisplayName
		}

		app, err := bootstrap.Run(cmd.Context())
		if err != nil {
			return err
		}

		if !app.Session.Register(cmd.Context(), input) {
			return errors.New(app.Session.Snapshot().Error)
		}

		snap := app.Session.Snapshot()
		fmt.Printf("Registered and logged in as %s (%s)\n", snap.User.FullName, snap.User.Email)
		return nil
	},
}

func init() {
	registerCmd.Flags().String("email", "", "account email")
	registerCmd.Flags().String("name", "", "full name")
	registerCmd.Flags().String("password", "", "account password (min 8 characters)")
	registerCmd.Flags().String("company-name", "", "company display name")
	registerCmd.Flags().String("company-legal-name", "", "company legal name (defaults to display name)")
	registerCmd.Flags().String("company-reg-no", "", "business registration number")
	rootCmd.AddCommand(registerCmd)
}
