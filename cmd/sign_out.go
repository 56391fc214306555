package cmd

import (
	"fmt"

	"connectify-cli/auth"
	"connectify-cli/term"

	"github.com/spf13/cobra"
)

var signOutYes bool

var signOutCmd = &cobra.Command{
	Use:     "sign-out",
	Aliases: []string{"signout", "logout"},
	Short:   "Sign out and clear the stored session token",
	Args:    cobra.NoArgs,
	Run:     signOut,
}

func init() {
	RootCmd.AddCommand(signOutCmd)

	signOutCmd.Flags().BoolVarP(&signOutYes, "yes", "y", false, "Skip confirmation")
}

func signOut(cmd *cobra.Command, args []string) {
	if !signOutYes {
		confirmed, err := term.ConfirmYesNo("Sign out of Connectify?")

		if err != nil {
			term.OutputErrorAndExit("Error getting confirmation: %v", err)
		}

		if !confirmed {
			return
		}
	}

	err := auth.SignOut()

	if err != nil {
		term.OutputErrorAndExit("Error signing out: %v", err)
	}

	fmt.Println("✅ Signed out")
	fmt.Println()
	term.PrintCmds("", "sign-in")
}
