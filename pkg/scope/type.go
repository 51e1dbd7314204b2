package scope

import (
	"github.com/golang-jwt/jwt/v5"
)

// Payload is the claim set carried by an admin session token.
type Payload struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

type implManager struct {
	secretKey string
}
