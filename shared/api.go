package shared

type ApiErrorType string

const (
	ApiErrorTypeInvalidToken ApiErrorType = "invalid_token"
	ApiErrorTypeValidation   ApiErrorType = "validation"

	ApiErrorTypeOther ApiErrorType = "other"
)

type ApiError struct {
	Type   ApiErrorType `json:"type"`
	Status int          `json:"status"`
	Msg    string       `json:"msg"`
}
