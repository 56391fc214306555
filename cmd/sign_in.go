package cmd

import (
	"connectify-cli/auth"
	"connectify-cli/term"

	"github.com/spf13/cobra"
)

var signInCmd = &cobra.Command{
	Use:     "sign-in",
	Aliases: []string{"signin"},
	Short:   "Sign in to a Connectify account",
	Args:    cobra.NoArgs,
	Run:     signIn,
}

func init() {
	RootCmd.AddCommand(signInCmd)

	signInCmd.Flags().String("email", "", "Email to sign in with (password is always prompted)")
}

func signIn(cmd *cobra.Command, args []string) {
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		term.OutputErrorAndExit("Error getting email: %v", err)
	}

	if email != "" {
		password, err := term.GetUserPasswordInput("Your password:")

		if err != nil {
			term.OutputErrorAndExit("Error prompting password: %v", err)
		}

		err = auth.SignIn(email, password)

		if err != nil {
			term.OutputErrorAndExit("Error signing in: %v", err)
		}

		return
	}

	err = auth.PromptSignIn()

	if err != nil {
		term.OutputErrorAndExit("Error signing in: %v", err)
	}
}
