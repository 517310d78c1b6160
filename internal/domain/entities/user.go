package entities

import (
	"github.com/google/uuid"
)

// Role follows the backend's numeric role claim.
type Role int

const (
	RoleAdmin  Role = 0
	RoleSeller Role = 1
	RoleBuyer  Role = 2
)

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return "ADMIN"
	case RoleSeller:
		return "SELLER"
	case RoleBuyer:
		return "BUYER"
	default:
		return "UNKNOWN"
	}
}

// User represents the authenticated marketplace user.
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Email    string    `json:"email,omitempty"`
	Role     Role      `json:"role"`
}

// LoginInput represents input for username/password login
type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginInput exchanges a Google ID token for a marketplace session.
type GoogleLoginInput struct {
	IDToken string `json:"idToken" binding:"required"`
}

// FacebookLoginInput exchanges a Facebook access token for a session.
type FacebookLoginInput struct {
	AccessToken string `json:"accessToken" binding:"required"`
}

// AuthResponse represents authentication response
type AuthResponse struct {
	User         *User  `json:"user"`
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
}

// AuthSession is the client-side session persisted across launches,
// the analog of the browser's stored token/user pair.
type AuthSession struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}
