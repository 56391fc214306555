package shared

// ClientAuth is the locally persisted session. The token is opaque to the
// client and is attached to every outbound request under the backend's
// custom `token` header.
type ClientAuth struct {
	Token    string `json:"token"`
	UserId   string `json:"userId,omitempty"`
	Email    string `json:"email,omitempty"`
	UserName string `json:"userName,omitempty"`
	Host     string `json:"host,omitempty"`
}
