package term

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

var CmdDesc = map[string][2]string{
	"sign-up":    {"", "create a Connectify account"},
	"sign-in":    {"", "sign in to an existing account"},
	"sign-out":   {"logout", "sign out and clear the stored session token"},
	"feed":       {"f", "show the home feed"},
	"post":       {"p", "publish a new post with optional text and image"},
	"me":         {"", "show your profile"},
	"open-image": {"", "open a feed post's image in your browser"},
	"version":    {"", "print the version number"},
}

func PrintCmds(prefix string, cmds ...string) {
	printCmds(os.Stderr, prefix, []color.Attribute{color.Bold, color.FgHiWhite, color.BgCyan}, cmds...)
}

func printCmds(w io.Writer, prefix string, colors []color.Attribute, cmds ...string) {
	for _, cmd := range cmds {
		config, ok := CmdDesc[cmd]
		if !ok {
			continue
		}

		alias := config[0]
		desc := config[1]
		if alias != "" {
			cmd = fmt.Sprintf("%s (%s)", cmd, alias)
		}

		styled := color.New(colors...).Sprintf(" connectify %s ", cmd)

		fmt.Fprintf(w, "%s%s 👉 %s\n", prefix, styled, desc)
	}

	fmt.Fprintln(w)
}
