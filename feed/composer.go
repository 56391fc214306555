package feed

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"connectify-cli/shared"
	"connectify-cli/types"
)

type ComposerState int

const (
	ComposerIdle ComposerState = iota
	ComposerSubmitting
	ComposerSettled
)

var ErrNothingToPost = errors.New("add text or select an image first")
var ErrSubmitInFlight = errors.New("a post submission is already in flight")

// Composer holds local form state for a new post: optional free text and at
// most one attached image. Submission moves through
// idle -> submitting -> settled; a second Submit while one is outstanding is
// rejected instead of issuing a duplicate request.
type Composer struct {
	Content string

	imagePath string
	imageType string
	imageSize int64

	state ComposerState
}

func (c *Composer) State() ComposerState {
	return c.state
}

// AttachImage stages an image for the next submission. The file must sniff
// as an image type; anything else is rejected before any state changes.
// Attaching replaces a previously staged image.
func (c *Composer) AttachImage(path string) error {
	contentType, err := shared.DetectImageType(path)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("error reading %s: %v", path, err)
	}

	c.imagePath = path
	c.imageType = contentType
	c.imageSize = info.Size()

	return nil
}

// RemoveImage clears the staged image so the next submission omits the
// image part.
func (c *Composer) RemoveImage() {
	c.imagePath = ""
	c.imageType = ""
	c.imageSize = 0
}

func (c *Composer) ImagePath() string {
	return c.imagePath
}

// Preview describes the staged image, or returns "" when none is staged.
func (c *Composer) Preview() string {
	if c.imagePath == "" {
		return ""
	}
	return fmt.Sprintf("%s (%s, %s)", filepath.Base(c.imagePath), c.imageType, formatSize(c.imageSize))
}

// Validate rejects a submission with neither text nor image. Runs before
// any network call.
func (c *Composer) Validate() error {
	if strings.TrimSpace(c.Content) == "" && c.imagePath == "" {
		return ErrNothingToPost
	}
	return nil
}

// Submit issues the creation request and returns the raw server response;
// the caller owns normalization. On success local form state is cleared.
func (c *Composer) Submit(client types.ApiClient) (map[string]any, error) {
	if c.state == ComposerSubmitting {
		return nil, ErrSubmitInFlight
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	c.state = ComposerSubmitting

	raw, apiErr := client.CreatePost(strings.TrimSpace(c.Content), c.imagePath)

	c.state = ComposerSettled

	if apiErr != nil {
		if apiErr.Msg != "" {
			return nil, errors.New(apiErr.Msg)
		}
		return nil, errors.New("posting failed")
	}

	c.Content = ""
	c.RemoveImage()

	return raw, nil
}

func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	}
	return fmt.Sprintf("%d B", n)
}
