package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Wipe the session key and forget the stored login",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := appCtx.Accounts.Logout(); err != nil {
				return err
			}
			fmt.Printf("%s Logged out\n", color.GreenString("✓"))
			return nil
		},
	}
}
