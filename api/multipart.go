package api

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"

	"connectify-cli/shared"
)

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// buildPostForm assembles the multipart body for POST /post/upload. Both
// parts are optional; callers validate that at least one is present before
// any network call happens.
func buildPostForm(content string, imagePath string) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	content = strings.TrimSpace(content)
	if content != "" {
		if err := writer.WriteField("content", content); err != nil {
			return nil, "", fmt.Errorf("error writing content field: %v", err)
		}
	}

	if imagePath != "" {
		if err := writeImagePart(writer, "image", imagePath); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("error finalizing form: %v", err)
	}

	return body, writer.FormDataContentType(), nil
}

// buildProfileForm assembles the multipart body for PUT /user/me. Empty
// params are omitted.
func buildProfileForm(params shared.UpdateProfileParams) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	if params.Name != "" {
		if err := writer.WriteField("name", params.Name); err != nil {
			return nil, "", fmt.Errorf("error writing name field: %v", err)
		}
	}

	if params.Bio != "" {
		if err := writer.WriteField("bio", params.Bio); err != nil {
			return nil, "", fmt.Errorf("error writing bio field: %v", err)
		}
	}

	if params.AvatarPath != "" {
		if err := writeImagePart(writer, "avatar", params.AvatarPath); err != nil {
			return nil, "", err
		}
	}

	if err := writer.Close(); err != nil {
		return nil, "", fmt.Errorf("error finalizing form: %v", err)
	}

	return body, writer.FormDataContentType(), nil
}

func writeImagePart(writer *multipart.Writer, field, path string) error {
	contentType, err := shared.DetectImageType(path)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("error opening %s: %v", path, err)
	}
	defer f.Close()

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		quoteEscaper.Replace(field), quoteEscaper.Replace(filepath.Base(path))))
	h.Set("Content-Type", contentType)

	part, err := writer.CreatePart(h)
	if err != nil {
		return fmt.Errorf("error creating image part: %v", err)
	}

	if _, err := io.Copy(part, f); err != nil {
		return fmt.Errorf("error copying image data: %v", err)
	}

	return nil
}
