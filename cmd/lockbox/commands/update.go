package commands

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lockbox/internal/domain"
	"lockbox/internal/passgen"
)

func updateCmd() *cobra.Command {
	var (
		application string
		accountUser string
		appType     string
		genLength   int
	)

	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Replace a credential's password (and optionally its metadata)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid entry id %q", args[0])
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
				if secret, err = readSecret("New password to store: "); err != nil {
					return err
				}
			}

			if err := unlock(); err != nil {
				return err
			}

			stop := startSpinner("Updating credential...")
			cred, err := appCtx.Vault.Update(cmd.Context(), id, domain.CredentialDraft{
				Application:     application,
				ApplicationType: appType,
				AccountUsername: accountUser,
				SecretPlaintext: secret,
			})
			stop()
			if err != nil {
				return err
			}

			fmt.Printf("%s Updated entry %d\n", color.GreenString("✓"), cred.ID)
			if genLength > 0 {
				fmt.Printf("Generated password: %s\n", secret)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&application, "app", "a", "", "new application name")
	cmd.Flags().StringVarP(&accountUser, "account", "n", "", "new account username")
	cmd.Flags().StringVarP(&appType, "type", "t", "", "new application type")
	cmd.Flags().IntVarP(&genLength, "generate", "g", 0, "generate a random password of this length instead of prompting")
	return cmd
}
