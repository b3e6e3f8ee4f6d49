package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored login",
		RunE: func(cmd *cobra.Command, args []string) error {
			acct, ok, err := appCtx.Accounts.Current()
			if err != nil {
				return err
			}
			if !ok {
				fmt.Println("Not logged in.")
				return nil
			}
			// Each CLI invocation is a fresh process, so the session key
			// itself only lives for the command that derived it.
			fmt.Printf("Logged in as %s (user %d)\n", acct.Username, acct.UserID)
			return nil
		},
	}
}
