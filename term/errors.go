package term

import (
	"fmt"
	"os"

	"connectify-cli/shared"

	"github.com/fatih/color"
)

func OutputSimpleError(msg string, args ...interface{}) {
	msg = fmt.Sprintf(msg, args...)
	fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint("🚨 "+shared.Capitalize(msg)))
}

func OutputErrorAndExit(msg string, args ...interface{}) {
	StopSpinner()

	msg = fmt.Sprintf(msg, args...)
	fmt.Fprintln(os.Stderr, color.New(ColorHiRed, color.Bold).Sprint("🚨 "+shared.Capitalize(msg)))
	os.Exit(1)
}

// HandleApiError surfaces a backend error to the user. Structured messages
// are shown verbatim; an invalid token points at sign-in instead.
func HandleApiError(apiError *shared.ApiError) {
	StopSpinner()

	if apiError.Type == shared.ApiErrorTypeInvalidToken {
		OutputSimpleError("Your session is no longer valid")
		PrintCmds("", "sign-in")
		os.Exit(1)
	}

	OutputErrorAndExit(apiError.Msg)
}
