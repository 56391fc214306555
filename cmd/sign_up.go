package cmd

import (
	"connectify-cli/auth"
	"connectify-cli/term"

	"github.com/spf13/cobra"
)

var signUpCmd = &cobra.Command{
	Use:     "sign-up",
	Aliases: []string{"signup"},
	Short:   "Create a Connectify account",
	Args:    cobra.NoArgs,
	Run:     signUp,
}

func init() {
	RootCmd.AddCommand(signUpCmd)
}

func signUp(cmd *cobra.Command, args []string) {
	err := auth.PromptSignUp()

	if err != nil {
		term.OutputErrorAndExit("Error creating account: %v", err)
	}
}
