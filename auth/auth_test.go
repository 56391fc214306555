package auth

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"connectify-cli/fs"
	"connectify-cli/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubClient struct {
	signInResp *shared.SessionResponse
	signInErr  *shared.ApiError
	signUpResp *shared.SignUpResponse
	signUpErr  *shared.ApiError
	meResp     *shared.User
	meErr      *shared.ApiError

	signInCalls int
}

func (c *stubClient) SignUp(req shared.SignUpRequest) (*shared.SignUpResponse, *shared.ApiError) {
	return c.signUpResp, c.signUpErr
}

func (c *stubClient) SignIn(req shared.SignInRequest) (*shared.SessionResponse, *shared.ApiError) {
	c.signInCalls++
	return c.signInResp, c.signInErr
}

func (c *stubClient) GetMe() (*shared.User, *shared.ApiError) {
	return c.meResp, c.meErr
}

func (c *stubClient) UpdateMe(params shared.UpdateProfileParams) (*shared.User, *shared.ApiError) {
	return nil, nil
}

func (c *stubClient) ListPosts() (any, *shared.ApiError) {
	return nil, nil
}

func (c *stubClient) CreatePost(content string, imagePath string) (map[string]any, *shared.ApiError) {
	return nil, nil
}

func useTempHome(t *testing.T) {
	t.Helper()

	dir := t.TempDir()

	prevAuth, prevUser := fs.HomeAuthPath, fs.HomeUserPath
	fs.HomeAuthPath = filepath.Join(dir, "auth.json")
	fs.HomeUserPath = filepath.Join(dir, "user.json")

	prevCurrent := Current
	Current = nil

	t.Cleanup(func() {
		fs.HomeAuthPath, fs.HomeUserPath = prevAuth, prevUser
		Current = prevCurrent
	})
}

func TestSetAuthHeader(t *testing.T) {
	useTempHome(t)

	req, err := http.NewRequest(http.MethodGet, "http://example.com", nil)
	require.NoError(t, err)

	// no session: request goes out without the header
	SetAuthHeader(req)
	assert.Empty(t, req.Header.Get("token"))

	Current = &shared.ClientAuth{Token: "tok-123"}
	SetAuthHeader(req)
	assert.Equal(t, "tok-123", req.Header.Get("token"))
}

func TestSignOutRemovesTokenButKeepsCachedUser(t *testing.T) {
	useTempHome(t)

	require.NoError(t, setAuth(&shared.ClientAuth{Token: "tok-abc", Email: "a@b.c"}))
	require.NoError(t, CacheUser(&shared.User{Name: "Ada"}))

	require.NoError(t, SignOut())

	// token gone: auth.json removed and subsequent requests are headerless
	_, err := os.Stat(fs.HomeAuthPath)
	assert.True(t, os.IsNotExist(err))

	req, _ := http.NewRequest(http.MethodGet, "http://example.com", nil)
	SetAuthHeader(req)
	assert.Empty(t, req.Header.Get("token"))

	// the cached profile is deliberately left in place
	cached := CachedUser()
	require.NotNil(t, cached)
	assert.Equal(t, "Ada", cached.Name)
}

func TestSignOutWithoutSessionIsNoop(t *testing.T) {
	useTempHome(t)
	assert.NoError(t, SignOut())
}

func TestSignInPersistsToken(t *testing.T) {
	useTempHome(t)

	SetApiClient(&stubClient{
		signInResp: &shared.SessionResponse{Token: "tok-xyz"},
		meResp:     &shared.User{Id: "u1", Name: "Ada"},
	})

	require.NoError(t, SignIn("a@b.c", "hunter2"))

	persisted, err := loadAuth()
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "tok-xyz", persisted.Token)

	cached := CachedUser()
	require.NotNil(t, cached)
	assert.Equal(t, "Ada", cached.Name)
}

func TestSignInKeepsTokenWhenProfileFetchFails(t *testing.T) {
	useTempHome(t)

	SetApiClient(&stubClient{
		signInResp: &shared.SessionResponse{Token: "tok-keep"},
		meErr:      &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: "profile service down"},
	})

	require.NoError(t, SignIn("a@b.c", "hunter2"))

	// sign-in success is not rolled back by the later profile-fetch failure
	persisted, err := loadAuth()
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "tok-keep", persisted.Token)

	assert.Nil(t, CachedUser())
}

func TestSignInValidatesLocally(t *testing.T) {
	useTempHome(t)

	client := &stubClient{}
	SetApiClient(client)

	err := SignIn("   ", "")
	require.Error(t, err)

	// validation failures never reach the network
	assert.Zero(t, client.signInCalls)
}

func TestSignInSurfacesStructuredMessage(t *testing.T) {
	useTempHome(t)

	SetApiClient(&stubClient{
		signInErr: &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: "wrong password"},
	})

	err := SignIn("a@b.c", "nope")
	require.Error(t, err)
	assert.Equal(t, "wrong password", err.Error())

	persisted, loadErr := loadAuth()
	require.NoError(t, loadErr)
	assert.Nil(t, persisted)
}

func TestSignInRejectsTokenlessResponse(t *testing.T) {
	useTempHome(t)

	SetApiClient(&stubClient{
		signInResp: &shared.SessionResponse{Message: "ok but no token"},
	})

	err := SignIn("a@b.c", "hunter2")
	require.Error(t, err)
}

func TestSignUpWithSessionToken(t *testing.T) {
	useTempHome(t)

	SetApiClient(&stubClient{
		signUpResp: &shared.SignUpResponse{
			Message: "Account created",
			Token:   "tok-new",
			User:    &shared.User{Id: "u2", Name: "Grace"},
		},
	})

	require.NoError(t, SignUp("Grace", "g@b.c", "hunter2"))

	persisted, err := loadAuth()
	require.NoError(t, err)
	require.NotNil(t, persisted)
	assert.Equal(t, "tok-new", persisted.Token)
}

func TestSignUpWithoutTokenLeavesNoSession(t *testing.T) {
	useTempHome(t)

	SetApiClient(&stubClient{
		signUpResp: &shared.SignUpResponse{Message: "Account created"},
	})

	require.NoError(t, SignUp("Grace", "g@b.c", "hunter2"))

	persisted, err := loadAuth()
	require.NoError(t, err)
	assert.Nil(t, persisted)
}

func TestSignUpValidatesLocally(t *testing.T) {
	useTempHome(t)

	SetApiClient(&stubClient{})

	err := SignUp("", "g@b.c", "hunter2")
	require.Error(t, err)
}
