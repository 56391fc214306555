package api

import (
	"io"
	"mime"
	"mime/multipart"
	"os"
	"path/filepath"
	"testing"

	"connectify-cli/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempPNG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload.png")
	data := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

type formPart struct {
	name        string
	fileName    string
	contentType string
	body        string
}

func parseForm(t *testing.T, body io.Reader, contentType string) []formPart {
	t.Helper()

	mediaType, params, err := mime.ParseMediaType(contentType)
	require.NoError(t, err)
	require.Equal(t, "multipart/form-data", mediaType)

	reader := multipart.NewReader(body, params["boundary"])

	var parts []formPart
	for {
		p, err := reader.NextPart()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)

		data, err := io.ReadAll(p)
		require.NoError(t, err)

		parts = append(parts, formPart{
			name:        p.FormName(),
			fileName:    p.FileName(),
			contentType: p.Header.Get("Content-Type"),
			body:        string(data),
		})
	}

	return parts
}

func TestBuildPostFormContentOnly(t *testing.T) {
	body, contentType, err := buildPostForm("  hello world  ", "")
	require.NoError(t, err)

	parts := parseForm(t, body, contentType)
	require.Len(t, parts, 1)
	assert.Equal(t, "content", parts[0].name)
	assert.Equal(t, "hello world", parts[0].body)
}

func TestBuildPostFormWithImage(t *testing.T) {
	path := writeTempPNG(t)

	body, contentType, err := buildPostForm("with pic", path)
	require.NoError(t, err)

	parts := parseForm(t, body, contentType)
	require.Len(t, parts, 2)

	assert.Equal(t, "content", parts[0].name)

	assert.Equal(t, "image", parts[1].name)
	assert.Equal(t, "upload.png", parts[1].fileName)
	assert.Equal(t, "image/png", parts[1].contentType)
	assert.NotEmpty(t, parts[1].body)
}

func TestBuildPostFormOmitsEmptyContent(t *testing.T) {
	path := writeTempPNG(t)

	body, contentType, err := buildPostForm("   ", path)
	require.NoError(t, err)

	parts := parseForm(t, body, contentType)
	require.Len(t, parts, 1)
	assert.Equal(t, "image", parts[0].name)
}

func TestBuildPostFormRejectsNonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.pdf")
	require.NoError(t, os.WriteFile(path, []byte("%PDF-1.4 not an image"), 0o644))

	_, _, err := buildPostForm("hi", path)
	require.Error(t, err)
}

func TestBuildProfileForm(t *testing.T) {
	body, contentType, err := buildProfileForm(shared.UpdateProfileParams{
		Name: "Ada",
		Bio:  "builder of engines",
	})
	require.NoError(t, err)

	parts := parseForm(t, body, contentType)
	require.Len(t, parts, 2)
	assert.Equal(t, "name", parts[0].name)
	assert.Equal(t, "Ada", parts[0].body)
	assert.Equal(t, "bio", parts[1].name)

	// empty params are omitted entirely
	body, contentType, err = buildProfileForm(shared.UpdateProfileParams{Bio: "only bio"})
	require.NoError(t, err)
	parts = parseForm(t, body, contentType)
	require.Len(t, parts, 1)
	assert.Equal(t, "bio", parts[0].name)
}
