package cmd

import (
	"fmt"

	"connectify-cli/auth"
	"connectify-cli/term"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   `connectify [command] [flags]`,
	Short: "Connectify: your world, your stories",
	Run: func(cmd *cobra.Command, args []string) {
		run(cmd, args)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		term.OutputErrorAndExit("Error executing root command: %v", err)
	}
}

const welcomeMd = `# Connectify

**Your world, your stories.**

Share posts, connect with people, and explore ideas, all from your terminal.
`

func run(cmd *cobra.Command, args []string) {
	md, err := term.GetMarkdown(welcomeMd)
	if err != nil {
		fmt.Print(welcomeMd + "\n")
	} else {
		fmt.Println(md)
	}

	if auth.ResolveAuth() {
		term.PrintCmds("", "feed", "post", "me")
	} else {
		term.PrintCmds("", "sign-up", "sign-in")
	}
}
