package domain

type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleUser  UserRole = "USER"
)

// UserStatus is 1 for active, 0 for disabled.
type UserStatus int

type User struct {
	ID        string     `json:"id" toml:"id"`
	Username  string     `json:"username" toml:"username"`
	Email     string     `json:"email" toml:"email"`
	Role      UserRole   `json:"role" toml:"role"`
	Status    UserStatus `json:"status" toml:"status"`
	CreatedAt string     `json:"createdAt" toml:"created_at"`
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

// LoginSession is the server's answer to a successful login.
type LoginSession struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	ExpiresIn int64  `json:"expiresIn"`
	User      User   `json:"user"`
}
