package term

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/termenv"
)

// maxContentWidth caps rendered markdown and post text on wide terminals.
const maxContentWidth = 80

// GetMarkdown renders markdown for the terminal, picking the dark or light
// glamour theme to match the background.
func GetMarkdown(input string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(min(getTerminalWidth(), maxContentWidth)),
		glamour.WithPreservedNewLines(),
	)
	if err != nil {
		return "", err
	}

	return r.Render(input)
}

// GetPlain wraps post text to the card width and indents it under the card
// header, dimmed a step from the default foreground.
func GetPlain(input string) string {
	wrapped := wordwrap.String(input, min(getTerminalWidth()-2, maxContentWidth))

	var b strings.Builder
	for i, line := range strings.Split(wrapped, "\n") {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("  ")
		b.WriteString(line)
	}

	fg := "234"
	if IsDarkBg {
		fg = "251"
	}

	return termenv.String(b.String()).Foreground(termenv.ANSI256.Color(fg)).String()
}
