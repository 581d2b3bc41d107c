package domain

// Role is the account role the auth service assigns at registration.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Session is the locally persisted login state: the bearer token issued by
// the auth service plus the username and role that came with it. Username
// and role are only meaningful while the token is present and unexpired.
type Session struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// HasToken reports whether a bearer token is present at all. Expiry is a
// separate check owned by the token validator.
func (s *Session) HasToken() bool {
	return s != nil && s.Token != ""
}
