package model

import "github.com/golang-jwt/jwt/v5"

// AccessClaims are the platform token claims the REST layer trusts.
type AccessClaims struct {
	jwt.RegisteredClaims

	Role IdentityKind `json:"role"`
}
