package main

import (
	"log"

	"connectify-cli/api"
	"connectify-cli/auth"
	"connectify-cli/cmd"
	"connectify-cli/fs"

	"gopkg.in/natefinch/lumberjack.v2"
)

func init() {
	// inter-package dependency injection to avoid a circular import
	auth.SetApiClient(api.Client)

	// diagnostics go to a rotating file in the home dir, never the terminal
	log.SetOutput(&lumberjack.Logger{
		Filename:   fs.HomeLogPath,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
	})
}

func main() {
	cmd.Execute()
}
