package feed

import (
	"os"
	"path/filepath"
	"testing"

	"connectify-cli/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempPNG(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pic.png")
	// a PNG signature is enough for content sniffing
	data := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 64)...)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestComposerValidateRejectsEmptySubmission(t *testing.T) {
	client := &stubClient{}
	c := &Composer{}

	_, err := c.Submit(client)
	assert.ErrorIs(t, err, ErrNothingToPost)

	// validation failures never reach the network
	assert.Zero(t, client.createCalls)
}

func TestComposerWhitespaceOnlyContentRejected(t *testing.T) {
	client := &stubClient{}
	c := &Composer{Content: "   \n\t "}

	_, err := c.Submit(client)
	assert.ErrorIs(t, err, ErrNothingToPost)
	assert.Zero(t, client.createCalls)
}

func TestComposerAttachImageRejectsNonImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("just some text"), 0o644))

	c := &Composer{}
	err := c.AttachImage(path)
	require.Error(t, err)
	assert.Empty(t, c.ImagePath())
	assert.Empty(t, c.Preview())
}

func TestComposerAttachImageAcceptsImage(t *testing.T) {
	path := writeTempPNG(t)

	c := &Composer{}
	require.NoError(t, c.AttachImage(path))
	assert.Equal(t, path, c.ImagePath())
	assert.Contains(t, c.Preview(), "pic.png")
	assert.Contains(t, c.Preview(), "image/png")
}

func TestComposerRemoveImageClearsPreviewAndOmitsPart(t *testing.T) {
	path := writeTempPNG(t)
	client := &stubClient{createResp: map[string]any{"_id": "p1"}}

	c := &Composer{Content: "look at this"}
	require.NoError(t, c.AttachImage(path))
	c.RemoveImage()

	assert.Empty(t, c.Preview())

	_, err := c.Submit(client)
	require.NoError(t, err)
	assert.Equal(t, 1, client.createCalls)
	assert.Equal(t, "look at this", client.lastContent)
	assert.Empty(t, client.lastImagePath)
}

func TestComposerImageOnlySubmission(t *testing.T) {
	path := writeTempPNG(t)
	client := &stubClient{createResp: map[string]any{"_id": "p2"}}

	c := &Composer{}
	require.NoError(t, c.AttachImage(path))

	_, err := c.Submit(client)
	require.NoError(t, err)
	assert.Equal(t, path, client.lastImagePath)
	assert.Empty(t, client.lastContent)
}

func TestComposerSubmitClearsStateOnSuccess(t *testing.T) {
	path := writeTempPNG(t)
	client := &stubClient{createResp: map[string]any{"_id": "p3", "content": "hey"}}

	c := &Composer{Content: "  hey  "}
	require.NoError(t, c.AttachImage(path))

	raw, err := c.Submit(client)
	require.NoError(t, err)
	assert.Equal(t, "p3", raw["_id"])

	// server sees trimmed content
	assert.Equal(t, "hey", client.lastContent)

	// local form state is cleared for the next post
	assert.Empty(t, c.Content)
	assert.Empty(t, c.ImagePath())
	assert.Equal(t, ComposerSettled, c.State())
}

func TestComposerSubmitSurfacesApiErrorMessage(t *testing.T) {
	client := &stubClient{createErr: &shared.ApiError{Msg: "image too large"}}

	c := &Composer{Content: "hi"}
	_, err := c.Submit(client)
	require.Error(t, err)
	assert.Equal(t, "image too large", err.Error())

	// failed submissions keep the draft
	assert.Equal(t, "hi", c.Content)
}

func TestComposerRejectsDuplicateSubmitInFlight(t *testing.T) {
	c := &Composer{Content: "once"}

	var reentrantErr error
	client := &stubClient{createResp: map[string]any{"_id": "p4"}}
	client.onCreate = func() {
		// a second submit while the first is on the wire
		_, reentrantErr = c.Submit(client)
	}

	_, err := c.Submit(client)
	require.NoError(t, err)

	assert.ErrorIs(t, reentrantErr, ErrSubmitInFlight)
	assert.Equal(t, 1, client.createCalls)
}
