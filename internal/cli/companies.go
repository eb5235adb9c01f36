package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ariffzainal/inhouse-erp/internal/bootstrap"
)

var companiesCmd = &cobra.Command{
	Use:   "companies",
	Short: "Manage the companies this session can act within",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

var companiesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the companies you are a member of",
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := bootstrap.Run(cmd.Context())
		if err != nil {
			return err
		}

		snap := app.Session.Snapshot()
		if !snap.IsAuthenticated() {
			return errors.New("not logged in")
		}

		app.Session.RefreshCompanies(cmd.Context())
		snap = app.Session.Snapshot()
		if len(snap.Companies) == 0 {
			fmt.Println("No companies")
			return nil
		}

		active := snap.ActiveCompanyID()
		for _, co := range snap.Companies {
			marker := " "
			if co.ID == active {
				marker = "*"
			}
			fmt.Printf("%s %d\t%s\n", marker, co.ID, co.DisplayName)
		}
		return nil
	},
}

var companiesSwitchCmd = &cobra.Command{
	Use:   "switch <company-id>",
	Short: "Make a company the active scope of this session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid company id %q", args[0])
		}

		app, err := bootstrap.Run(cmd.Context())
		if err != nil {
			return err
		}

		if !app.Session.SwitchCompany(cmd.Context(), id) {
			return errors.New(app.Session.Snapshot().Error)
		}

		snap := app.Session.Snapshot()
		fmt.Printf("Switched to %s (role %s)\n", snap.User.CurrentCompanyName, snap.Role())
		return nil
	},
}

var companiesShowCmd = &cobra.Command{
	Use:   "show <company-id>",
	Short: "Show one company's full profile",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid company id %q", args[0])
		}

		app, err := bootstrap.Run(cmd.Context())
		if err != nil {
			return err
		}

		co, err := app.Gateway.GetCompany(cmd.Context(), id)
		if err != nil {
			return err
		}

		fmt.Printf("%s (id %d)\n", co.DisplayName, co.ID)
		fmt.Printf("Legal name:      %s\n", co.LegalName)
		fmt.Printf("Registration no: %s\n", co.BusinessRegistrationNumber)
		if co.Industry != "" {
			fmt.Printf("Industry:        %s\n", co.Industry)
		}
		if co.Website != "" {
			fmt.Printf("Website:         %s\n", co.Website)
		}
		return nil
	},
}

func init() {
	companiesCmd.AddCommand(companiesListCmd)
	companiesCmd.AddCommand(companiesSwitchCmd)
	companiesCmd.AddCommand(companiesShowCmd)
	rootCmd.AddCommand(companiesCmd)
}
