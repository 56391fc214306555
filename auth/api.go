package auth

import (
	"net/http"

	"connectify-cli/types"
)

var apiClient types.ApiClient

func SetApiClient(client types.ApiClient) {
	apiClient = client
}

// SetAuthHeader attaches the persisted session token under the backend's
// custom `token` header (not a bearer Authorization header). Requests go out
// without the header when no session exists; rejecting them is the backend's
// job.
func SetAuthHeader(req *http.Request) {
	if Current == nil || Current.Token == "" {
		return
	}

	req.Header.Set("token", Current.Token)
}
