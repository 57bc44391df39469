package models

import "github.com/golang-jwt/jwt/v5"

// CustomClaims is the JWT payload issued to underwriters at login.
// UserID duplicates the registered subject as a stable UUID string so
// middleware does not have to re-parse the user out of Subject.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Email     string `json:"email,omitempty"`
	Role      string `json:"role,omitempty"`
	TokenType string `json:"token_type"`
}

func (c *CustomClaims) IsAdmin() bool {
	return c.Role == RoleAdmin
}
