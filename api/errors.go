package api

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"connectify-cli/shared"
)

// HandleApiError turns an HTTP error response into a *shared.ApiError.
// Structured `{message}` bodies are surfaced verbatim; everything else falls
// back to the raw body or a generic message. Never returns nil.
func HandleApiError(r *http.Response, errBody []byte) *shared.ApiError {
	errType := shared.ApiErrorTypeOther
	switch r.StatusCode {
	case http.StatusUnauthorized:
		errType = shared.ApiErrorTypeInvalidToken
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		errType = shared.ApiErrorTypeValidation
	}

	// Check if the response is JSON
	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return &shared.ApiError{
			Type:   errType,
			Status: r.StatusCode,
			Msg:    fallbackMsg(errBody),
		}
	}

	var body struct {
		Message string `json:"message"`
		Msg     string `json:"msg"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(errBody, &body); err != nil {
		log.Printf("error unmarshalling error response: %v", err)
		return &shared.ApiError{
			Type:   errType,
			Status: r.StatusCode,
			Msg:    fallbackMsg(errBody),
		}
	}

	msg := body.Message
	if msg == "" {
		msg = body.Msg
	}
	if msg == "" {
		msg = body.Error
	}
	if msg == "" {
		msg = fallbackMsg(errBody)
	}

	return &shared.ApiError{
		Type:   errType,
		Status: r.StatusCode,
		Msg:    msg,
	}
}

func fallbackMsg(errBody []byte) string {
	msg := strings.TrimSpace(string(errBody))
	if msg == "" {
		msg = "request failed"
	}
	return msg
}
