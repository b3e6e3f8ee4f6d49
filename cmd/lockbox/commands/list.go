package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lockbox/internal/domain"
)

func listCmd() *cobra.Command {
	var recent int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored credentials (metadata only, secrets stay sealed)",
		RunE: func(cmd *cobra.Command, args []string) error {
			stop := startSpinner("Fetching credentials...")
			creds, cached, err := listOrRecent(cmd, recent)
			stop()
			if err != nil {
				return err
			}
			if cached {
				fmt.Println(color.YellowString("! Server unreachable; showing cached listing"))
			}
			if len(creds) == 0 {
				fmt.Println("No credentials stored.")
				return nil
			}

			fmt.Printf("%-6s %-24s %-24s %-12s %s\n", "ID", "APPLICATION", "ACCOUNT", "TYPE", "ADDED")
			for _, c := range creds {
				fmt.Printf("%-6d %-24s %-24s %-12s %s\n",
					c.ID, c.Application, c.AccountUsername, c.ApplicationType,
					c.AddedAt.Format("2006-01-02"))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&recent, "recent", 0, "show only the N most recently added entries")
	return cmd
}

func listOrRecent(cmd *cobra.Command, recent int) ([]domain.Credential, bool, error) {
	if recent > 0 {
		creds, err := appCtx.Vault.Recent(cmd.Context(), recent)
		return creds, false, err
	}
	return appCtx.Vault.List(cmd.Context())
}
