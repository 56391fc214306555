package cmd

import (
	"fmt"
	"strings"

	"connectify-cli/api"
	"connectify-cli/auth"
	"connectify-cli/feed"
	"connectify-cli/term"

	"github.com/spf13/cobra"
)

var postImagePath string

var postCmd = &cobra.Command{
	Use:     "post [text]",
	Aliases: []string{"p"},
	Short:   "Publish a new post with optional text and image",
	Run:     createPost,
}

func init() {
	RootCmd.AddCommand(postCmd)

	postCmd.Flags().StringVar(&postImagePath, "image", "", "Path to an image file to attach")
}

func createPost(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	composer := &feed.Composer{
		Content: strings.Join(args, " "),
	}

	if postImagePath != "" {
		err := composer.AttachImage(postImagePath)

		if err != nil {
			term.OutputErrorAndExit("Error attaching image: %v", err)
		}

		fmt.Println("📎 " + composer.Preview())
	}

	if strings.TrimSpace(composer.Content) == "" && composer.ImagePath() == "" {
		content, err := term.GetUserStringInput("What's happening?")

		if err != nil {
			term.OutputErrorAndExit("Error getting input: %v", err)
		}

		composer.Content = content
	}

	if err := composer.Validate(); err != nil {
		term.OutputErrorAndExit("%v", err)
	}

	term.StartSpinner("📤 Posting...")
	raw, err := composer.Submit(api.Client)
	term.StopSpinner()

	if err != nil {
		term.OutputErrorAndExit("Error creating post: %v", err)
	}

	// the created post goes straight to the head of the feed, no re-fetch
	var f feed.Feed
	created := f.Prepend(raw)

	fmt.Println("✅ Posted")
	fmt.Println()
	renderPostCard(created)

	term.PrintCmds("", "feed")
}
