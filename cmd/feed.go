package cmd

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"connectify-cli/api"
	"connectify-cli/auth"
	"connectify-cli/feed"
	"connectify-cli/format"
	"connectify-cli/term"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var feedTable bool

var feedCmd = &cobra.Command{
	Use:     "feed",
	Aliases: []string{"f"},
	Short:   "Show the home feed",
	Args:    cobra.NoArgs,
	Run:     showFeed,
}

func init() {
	RootCmd.AddCommand(feedCmd)

	feedCmd.Flags().BoolVar(&feedTable, "table", false, "Compact table view")
}

func showFeed(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	f := mustLoadFeed()

	if len(f.Posts) == 0 {
		fmt.Println("🤷‍♂️ No posts yet. Be the first!")
		fmt.Println()
		term.PrintCmds("", "post")
		return
	}

	if feedTable {
		renderFeedTable(f.Posts)
	} else {
		renderFeedCards(f.Posts)
	}
}

func mustLoadFeed() *feed.Feed {
	term.StartSpinner("")
	var f feed.Feed
	apiErr := f.Load(api.Client)
	term.StopSpinner()

	if apiErr != nil {
		// details go to the log file; the user just sees that loading stopped
		log.Printf("feed load failed: %s", apiErr.Msg)
		term.OutputErrorAndExit("Couldn't load the feed")
	}

	return &f
}

func renderFeedCards(posts []feed.NormalizedPost) {
	for _, post := range posts {
		renderPostCard(post)
	}
}

func renderPostCard(post feed.NormalizedPost) {
	header := color.New(color.Bold, term.ColorHiCyan).Sprint(feed.AuthorName(post.Author))
	if t := post.CreatedTime(); !t.IsZero() {
		header += "  " + color.New(term.ColorHiYellow).Sprint(format.Time(t))
	}
	fmt.Println(header)

	if post.Content != nil && *post.Content != "" {
		fmt.Println(term.GetPlain(*post.Content))
	}

	if post.ImageURL != nil {
		fmt.Println("  🖼  " + *post.ImageURL)
	}

	stats := fmt.Sprintf("❤️ %d likes   💬 %d comments", post.Likes, feed.CommentCount(post.Comments))
	fmt.Println(color.New(term.ColorHiMagenta).Sprint(stats))
	fmt.Println()
}

func renderFeedTable(posts []feed.NormalizedPost) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"#", "Author", "Posted", "Likes", "Comments", "Text"})

	for i, post := range posts {
		posted := ""
		if t := post.CreatedTime(); !t.IsZero() {
			posted = format.Time(t)
		}

		text := ""
		if post.Content != nil {
			text = truncate(*post.Content, 40)
		}

		table.Append([]string{
			strconv.Itoa(i + 1),
			feed.AuthorName(post.Author),
			posted,
			strconv.Itoa(post.Likes),
			strconv.Itoa(feed.CommentCount(post.Comments)),
			text,
		})
	}

	table.Render()
}

// truncate shortens text to max characters, counting runes so multi-byte
// characters are never split mid-sequence.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}
