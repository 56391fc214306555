package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"connectify-cli/shared"
)

func (a *Api) SignUp(req shared.SignUpRequest) (*shared.SignUpResponse, *shared.ApiError) {
	serverUrl := getApiBase() + "/user/signup"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := authenticatedFastClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var respBody shared.SignUpResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &respBody, nil
}

func (a *Api) SignIn(req shared.SignInRequest) (*shared.SessionResponse, *shared.ApiError) {
	serverUrl := getApiBase() + "/user/signin"

	reqBytes, err := json.Marshal(req)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error marshalling request: %v", err)}
	}

	resp, err := authenticatedFastClient.Post(serverUrl, "application/json", bytes.NewBuffer(reqBytes))
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var respBody shared.SessionResponse
	err = json.NewDecoder(resp.Body).Decode(&respBody)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return &respBody, nil
}

func (a *Api) GetMe() (*shared.User, *shared.ApiError) {
	serverUrl := getApiBase() + "/user/me"

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error reading response: %v", err)}
	}

	user, err := decodeUserPayload(body)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return user, nil
}

func (a *Api) UpdateMe(params shared.UpdateProfileParams) (*shared.User, *shared.ApiError) {
	serverUrl := getApiBase() + "/user/me"

	body, contentType, err := buildProfileForm(params)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: err.Error()}
	}

	request, err := http.NewRequest(http.MethodPut, serverUrl, body)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error creating request: %v", err)}
	}
	request.Header.Set("Content-Type", contentType)

	resp, err := authenticatedUploadClient.Do(request)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error reading response: %v", err)}
	}

	user, err := decodeUserPayload(respBytes)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return user, nil
}

// ListPosts returns the raw decoded payload. The backend's post list shape
// isn't contractually fixed, so normalization is left to the feed package.
func (a *Api) ListPosts() (any, *shared.ApiError) {
	serverUrl := getApiBase() + "/post/all-post"

	resp, err := authenticatedFastClient.Get(serverUrl)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var payload any
	err = json.NewDecoder(resp.Body).Decode(&payload)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return payload, nil
}

// CreatePost uploads a new post as multipart form data with optional
// `content` and `image` parts, returning the raw created post record.
func (a *Api) CreatePost(content string, imagePath string) (map[string]any, *shared.ApiError) {
	serverUrl := getApiBase() + "/post/upload"

	body, contentType, err := buildPostForm(content, imagePath)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: err.Error()}
	}

	resp, err := authenticatedUploadClient.Post(serverUrl, contentType, body)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error sending request: %v", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		errorBody, _ := io.ReadAll(resp.Body)
		return nil, HandleApiError(resp, errorBody)
	}

	var raw map[string]any
	err = json.NewDecoder(resp.Body).Decode(&raw)
	if err != nil {
		return nil, &shared.ApiError{Type: shared.ApiErrorTypeOther, Msg: fmt.Sprintf("error decoding response: %v", err)}
	}

	return raw, nil
}

// decodeUserPayload tolerates both `{user: {...}}` wrappers and bare user
// objects -- the backend has returned both across versions.
func decodeUserPayload(body []byte) (*shared.User, error) {
	var wrapper struct {
		User *shared.User `json:"user"`
	}
	if err := json.Unmarshal(body, &wrapper); err == nil && wrapper.User != nil {
		return wrapper.User, nil
	}

	var user shared.User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, err
	}

	return &user, nil
}
