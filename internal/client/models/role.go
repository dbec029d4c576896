package models

// Role is the closed set of identities a session can carry. The remote
// service reports it as the "user_type" field of the token response;
// an absent token always means RoleAnonymous.
type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
)

// ParseRole maps a wire-level user_type value onto a Role. Unknown values
// collapse to RoleAnonymous so a malformed session can never unlock a
// protected view.
func ParseRole(s string) Role {
	switch s {
	case string(RoleUser):
		return RoleUser
	case string(RoleAdmin):
		return RoleAdmin
	default:
		return RoleAnonymous
	}
}

func (r Role) String() string {
	return string(r)
}
