package types

import (
	"connectify-cli/shared"
)

// ApiClient is the outbound surface of the Connectify backend. Methods
// return *shared.ApiError rather than error so callers can distinguish
// structured backend errors from transport failures.
//
// Post payloads are untyped on purpose: the backend's post shape is not
// contractually fixed, so raw records travel as map[string]any and the feed
// package owns normalization.
type ApiClient interface {
	SignUp(req shared.SignUpRequest) (*shared.SignUpResponse, *shared.ApiError)
	SignIn(req shared.SignInRequest) (*shared.SessionResponse, *shared.ApiError)

	GetMe() (*shared.User, *shared.ApiError)
	UpdateMe(params shared.UpdateProfileParams) (*shared.User, *shared.ApiError)

	ListPosts() (any, *shared.ApiError)
	CreatePost(content string, imagePath string) (map[string]any, *shared.ApiError)
}
