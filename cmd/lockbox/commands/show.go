package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func showCmd() *cobra.Command {
	var quiet bool

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Decrypt and display one credential",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid entry id %q", args[0])
			}
			if err := unlock(); err != nil {
				return err
			}

			stop := startSpinner("Fetching and decrypting...")
			cred, secret, err := appCtx.Vault.Reveal(cmd.Context(), id)
			stop()
			if err != nil {
				return err
			}

			if quiet {
				// Password only, for piping into other tools.
				fmt.Println(secret)
				return nil
			}
			fmt.Printf("Application: %s\n", cred.Application)
			if cred.ApplicationType != "" {
				fmt.Printf("Type:        %s\n", cred.ApplicationType)
			}
			fmt.Printf("Account:     %s\n", cred.AccountUsername)
			fmt.Printf("Added:       %s\n", cred.AddedAt.Format("2006-01-02 15:04"))
			fmt.Printf("Password:    %s\n", secret)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the password")
	return cmd
}
