package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set accepted by the JWT token validator.
//
// Only the registered claims are inspected: the signature, "exp" and,
// when configured, "iss". Tokens are never issued by this server; the
// claims type exists so that externally issued tokens can be parsed into a
// concrete type.
type TokenClaims struct {
	jwt.RegisteredClaims
}
