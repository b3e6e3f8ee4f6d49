package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lockbox/internal/domain"
	"lockbox/internal/passgen"
)

func addCmd() *cobra.Command {
	var (
		application string
		accountUser string
		appType     string
		genLength   int
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Store a new credential (sealed before it leaves this machine)",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if application == "" {
				if application, err = readLine("Application: "); err != nil {
					return err
				}
			}
			if accountUser == "" {
				if accountUser, err = readLine("Account username: "); err != nil {
					return err
				}
			}

			var secret string
			if genLength > 0 {
				secret, err = passgen.Generate(passgen.Options{
					Length: genLength, Upper: true, Digits: true, Symbols: true,
				})
				if err != nil {
					return err
				}
			} else {
				if secret, err = readSecret("Password to store: "); err != nil {
					return err
				}
			}

			if err := unlock(); err != nil {
				return err
			}

			stop := startSpinner("Storing credential...")
			cred, err := appCtx.Vault.Add(cmd.Context(), domain.CredentialDraft{
				Application:     application,
				ApplicationType: appType,
				AccountUsername: accountUser,
				SecretPlaintext: secret,
			})
			stop()
			if err != nil {
				return err
			}

			fmt.Printf("%s Stored %s as entry %d\n", color.GreenString("✓"), cred.Application, cred.ID)
			if genLength > 0 {
				fmt.Printf("Generated password: %s\n", secret)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&application, "app", "a", "", "application name")
	cmd.Flags().StringVarP(&accountUser, "account", "n", "", "account username for the application")
	cmd.Flags().StringVarP(&appType, "type", "t", "", "application type (e.g. web, banking)")
	cmd.Flags().IntVarP(&genLength, "generate", "g", 0, "generate a random password of this length instead of prompting")
	return cmd
}
