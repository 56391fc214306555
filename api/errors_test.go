package api

import (
	"net/http"
	"testing"

	"connectify-cli/shared"

	"github.com/stretchr/testify/assert"
)

func errResponse(status int, contentType string) *http.Response {
	header := http.Header{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &http.Response{
		StatusCode: status,
		Header:     header,
	}
}

func TestHandleApiErrorStructuredMessage(t *testing.T) {
	apiErr := HandleApiError(errResponse(400, "application/json"), []byte(`{"message":"email already in use"}`))

	assert.Equal(t, shared.ApiErrorTypeValidation, apiErr.Type)
	assert.Equal(t, 400, apiErr.Status)
	assert.Equal(t, "email already in use", apiErr.Msg)
}

func TestHandleApiErrorAltMessageFields(t *testing.T) {
	apiErr := HandleApiError(errResponse(422, "application/json; charset=utf-8"), []byte(`{"error":"content too long"}`))
	assert.Equal(t, "content too long", apiErr.Msg)

	apiErr = HandleApiError(errResponse(422, "application/json"), []byte(`{"msg":"bad input"}`))
	assert.Equal(t, "bad input", apiErr.Msg)
}

func TestHandleApiErrorNonJSONBody(t *testing.T) {
	apiErr := HandleApiError(errResponse(502, "text/html"), []byte("  <html>Bad Gateway</html>\n"))

	assert.Equal(t, shared.ApiErrorTypeOther, apiErr.Type)
	assert.Equal(t, "<html>Bad Gateway</html>", apiErr.Msg)
}

func TestHandleApiErrorMalformedJSON(t *testing.T) {
	apiErr := HandleApiError(errResponse(500, "application/json"), []byte("{not json"))
	assert.Equal(t, "{not json", apiErr.Msg)
}

func TestHandleApiErrorEmptyBody(t *testing.T) {
	apiErr := HandleApiError(errResponse(500, ""), nil)
	assert.Equal(t, "request failed", apiErr.Msg)
}

func TestHandleApiErrorUnauthorized(t *testing.T) {
	apiErr := HandleApiError(errResponse(401, "application/json"), []byte(`{"message":"invalid token"}`))
	assert.Equal(t, shared.ApiErrorTypeInvalidToken, apiErr.Type)
}
