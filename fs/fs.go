package fs

import (
	"os"
	"path/filepath"

	"connectify-cli/term"
)

var HomeConnectifyDir string

var HomeAuthPath string
var HomeUserPath string
var HomeLogPath string

func init() {
	home, err := os.UserHomeDir()
	if err != nil {
		term.OutputErrorAndExit("Couldn't find home dir: %v", err.Error())
	}

	if os.Getenv("CONNECTIFY_ENV") == "development" {
		HomeConnectifyDir = filepath.Join(home, ".connectify-home-dev")
	} else {
		HomeConnectifyDir = filepath.Join(home, ".connectify-home")
	}

	err = os.MkdirAll(HomeConnectifyDir, os.ModePerm)
	if err != nil {
		term.OutputErrorAndExit(err.Error())
	}

	HomeAuthPath = filepath.Join(HomeConnectifyDir, "auth.json")
	HomeUserPath = filepath.Join(HomeConnectifyDir, "user.json")
	HomeLogPath = filepath.Join(HomeConnectifyDir, "connectify.log")
}
