package cmd

import (
	"strconv"

	"connectify-cli/auth"
	"connectify-cli/term"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var openImageCmd = &cobra.Command{
	Use:   "open-image [index]",
	Short: "Open a feed post's image in your browser",
	Args:  cobra.MaximumNArgs(1),
	Run:   openImage,
}

func init() {
	RootCmd.AddCommand(openImageCmd)
}

func openImage(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	// index is 1-based, matching the feed's --table view
	index := 1
	if len(args) > 0 {
		var err error
		index, err = strconv.Atoi(args[0])
		if err != nil || index < 1 {
			term.OutputErrorAndExit("Index must be a positive number")
		}
	}

	f := mustLoadFeed()

	if index > len(f.Posts) {
		term.OutputErrorAndExit("The feed only has %d post(s)", len(f.Posts))
	}

	post := f.Posts[index-1]

	if post.ImageURL == nil {
		term.OutputSimpleError("That post has no image")
		return
	}

	if err := browser.OpenURL(*post.ImageURL); err != nil {
		term.OutputErrorAndExit("Error opening browser: %v", err)
	}
}
