package commands

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"lockbox/internal/domain"
)

func signupCmd() *cobra.Command {
	var username string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account and derive the first session key",
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
				confirm, err := readSecret("Confirm master password: ")
				if err != nil {
					return err
				}
				if password != confirm {
					return fmt.Errorf("passwords do not match")
				}
			}

			questions, err := appCtx.Client.Questions(cmd.Context())
			if err != nil {
				return err
			}
			fmt.Println("Pick a security question for account recovery:")
			for _, q := range questions {
				fmt.Printf("  %d. %s\n", q.ID, q.Text)
			}
			choice, err := readLine("Question number: ")
			if err != nil {
				return err
			}
			questionID, err := strconv.ParseInt(choice, 10, 64)
			if err != nil {
				return fmt.Errorf("invalid question number %q", choice)
			}
			answer, err := readLine("Answer: ")
			if err != nil {
				return err
			}

			stop := startSpinner("Creating account and deriving encryption key...")
			acct, err := appCtx.Accounts.Signup(cmd.Context(), domain.SignupRequest{
				Username:   username,
				Password:   password,
				QuestionID: questionID,
				Answer:     answer,
			})
			stop()
			if err != nil {
				return err
			}

			fmt.Printf("%s Account created. Logged in as %s\n", color.GreenString("✓"), acct.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "account username")
	return cmd
}
