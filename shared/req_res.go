package shared

// The Connectify backend has shipped more than one shape for most of these
// responses. Fields that only some deployments return are optional, and
// decoding tolerates both wrapped and bare payloads.

type SignUpRequest struct {
	// some backend versions read `username`, others `name` -- send both
	UserName string `json:"username"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignUpResponse struct {
	Message string `json:"message"`
	User    *User  `json:"user,omitempty"`
	Token   string `json:"token,omitempty"`
}

type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SessionResponse struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
	User    *User  `json:"user,omitempty"`
}

type User struct {
	Id       string `json:"_id,omitempty"`
	LegacyId string `json:"id,omitempty"`
	Name     string `json:"name,omitempty"`
	UserName string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	Bio      string `json:"bio,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

func (u *User) ID() string {
	if u.Id != "" {
		return u.Id
	}
	return u.LegacyId
}

func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.UserName != "" {
		return u.UserName
	}
	if u.Email != "" {
		return u.Email
	}
	return "User"
}

// UpdateProfileParams are the client-side inputs to the multipart
// PUT /user/me request. Empty fields are omitted from the form.
type UpdateProfileParams struct {
	Name       string
	Bio        string
	AvatarPath string
}
