package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"lockbox/internal/passgen"
)

func generateCmd() *cobra.Command {
	var (
		length  int
		noUpper bool
		noDigit bool
		noSym   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a random password locally",
		RunE: func(cmd *cobra.Command, args []string) error {
			pw, err := passgen.Generate(passgen.Options{
				Length:  length,
				Upper:   !noUpper,
				Digits:  !noDigit,
				Symbols: !noSym,
			})
			if err != nil {
				return err
			}
			fmt.Println(pw)
			return nil
		},
	}

	cmd.Flags().IntVarP(&length, "length", "l", 20, "password length")
	cmd.Flags().BoolVar(&noUpper, "no-upper", false, "exclude uppercase letters")
	cmd.Flags().BoolVar(&noDigit, "no-digits", false, "exclude digits")
	cmd.Flags().BoolVar(&noSym, "no-symbols", false, "exclude symbols")
	return cmd
}
