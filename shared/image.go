package shared

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
)

// DetectImageType sniffs the file's content type and verifies it's an
// image. Returns the detected MIME type, e.g. "image/png".
func DetectImageType(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("error opening %s: %v", path, err)
	}
	defer f.Close()

	head := make([]byte, 512)
	n, err := f.Read(head)
	if err != nil && n == 0 {
		return "", fmt.Errorf("error reading %s: %v", path, err)
	}

	contentType := http.DetectContentType(head[:n])

	if len(contentType) < 6 || contentType[:6] != "image/" {
		return "", fmt.Errorf("%s doesn't look like an image file (detected %s)", filepath.Base(path), contentType)
	}

	return contentType, nil
}
