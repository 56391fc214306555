package cmd

import (
	"fmt"
	"log"
	"os"

	"connectify-cli/api"
	"connectify-cli/auth"
	"connectify-cli/shared"
	"connectify-cli/term"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var meCmd = &cobra.Command{
	Use:   "me",
	Short: "Show your profile",
	Args:  cobra.NoArgs,
	Run:   showMe,
}

var updateName string
var updateBio string
var updateAvatarPath string

var meUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update your profile",
	Args:  cobra.NoArgs,
	Run:   updateMe,
}

func init() {
	RootCmd.AddCommand(meCmd)
	meCmd.AddCommand(meUpdateCmd)

	meUpdateCmd.Flags().StringVar(&updateName, "name", "", "New display name")
	meUpdateCmd.Flags().StringVar(&updateBio, "bio", "", "New bio")
	meUpdateCmd.Flags().StringVar(&updateAvatarPath, "avatar", "", "Path to a new avatar image")
}

func showMe(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	term.StartSpinner("")
	user, apiErr := api.Client.GetMe()
	term.StopSpinner()

	if apiErr != nil {
		log.Printf("profile fetch failed: %s", apiErr.Msg)

		// fall back to the locally cached copy when we have one
		if cached := auth.CachedUser(); cached != nil {
			term.OutputSimpleError("Couldn't refresh your profile, showing a cached copy")
			renderProfile(cached)
			return
		}

		term.HandleApiError(apiErr)
	}

	if err := auth.CacheUser(user); err != nil {
		log.Printf("error caching user: %v", err)
	}

	renderProfile(user)
}

func updateMe(cmd *cobra.Command, args []string) {
	auth.MustResolveAuth()

	params := shared.UpdateProfileParams{
		Name:       updateName,
		Bio:        updateBio,
		AvatarPath: updateAvatarPath,
	}

	if params.Name == "" && params.Bio == "" && params.AvatarPath == "" {
		term.OutputErrorAndExit("Nothing to update: pass --name, --bio, or --avatar")
	}

	term.StartSpinner("")
	user, apiErr := api.Client.UpdateMe(params)
	term.StopSpinner()

	if apiErr != nil {
		term.HandleApiError(apiErr)
	}

	if err := auth.CacheUser(user); err != nil {
		log.Printf("error caching user: %v", err)
	}

	renderProfile(user)
}

func renderProfile(user *shared.User) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Name", "Username", "Email", "Bio"})
	table.Append([]string{user.Name, user.UserName, user.Email, user.Bio})
	table.Render()

	if user.Avatar != "" {
		fmt.Println("  🖼  " + user.Avatar)
		fmt.Println()
	}
}
