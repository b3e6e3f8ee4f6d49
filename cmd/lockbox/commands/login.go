package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func loginCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Authenticate and derive the session encryption key",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if username == "" {
				if username, err = readLine("Username: "); err != nil {
					return err
				}
			}
			password := masterPassword
			if password == "" {
				if password, err = readSecret("Master password: "); err != nil {
					return err
				}
			}

			stop := startSpinner("Authenticating and deriving encryption key...")
			acct, err := appCtx.Accounts.Login(cmd.Context(), username, password)
			stop()
			if err != nil {
				return err
			}

			logger.Infof("session key derived for user %d", acct.UserID)
			fmt.Printf("%s Logged in as %s\n", color.GreenString("✓"), acct.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	return cmd
}
