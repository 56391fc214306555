package auth

import (
	"fmt"
	"os"

	"connectify-cli/fs"
	"connectify-cli/term"
)

// MustResolveAuth loads the persisted session, prompting for sign-in or
// account creation when none exists.
func MustResolveAuth() {
	if apiClient == nil {
		term.OutputErrorAndExit("error resolving auth: api client not set")
	}

	auth, err := loadAuth()

	if err != nil {
		term.OutputErrorAndExit("error resolving auth: %v", err)
	}

	if auth == nil {
		err = promptInitialAuth()

		if err != nil {
			term.OutputErrorAndExit("error resolving auth: %v", err)
		}

		return
	}

	Current = auth
}

// ResolveAuth is the non-fatal variant for commands that work both signed in
// and signed out.
func ResolveAuth() bool {
	auth, err := loadAuth()

	if err != nil || auth == nil {
		return false
	}

	Current = auth
	return true
}

// SignOut removes the session token only. The cached profile is left in
// place so views can still display it.
func SignOut() error {
	err := os.Remove(fs.HomeAuthPath)

	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("error removing auth.json: %v", err)
	}

	Current = nil

	return nil
}

const (
	authSignInOption = "Sign in to an existing account"
	authSignUpOption = "Create a new account"
)

func promptInitialAuth() error {
	selected, err := term.SelectFromList("👋 Hey there!\nIt looks like this is your first time using Connectify on this computer.\nWhat would you like to do?", []string{authSignInOption, authSignUpOption})

	if err != nil {
		return fmt.Errorf("error selecting auth option: %v", err)
	}

	switch selected {
	case authSignInOption:
		err = PromptSignIn()

		if err != nil {
			return fmt.Errorf("error signing in: %v", err)
		}

	case authSignUpOption:
		err = PromptSignUp()

		if err != nil {
			return fmt.Errorf("error creating account: %v", err)
		}
	}

	return nil
}
