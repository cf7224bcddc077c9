package utils

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-posts/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptySignKey is returned by ValidateJWTToken when no verification key
// is configured.
var ErrEmptySignKey = errors.New("empty JWT sign key")

// ValidateJWTToken verifies an externally issued HS256 JWT and returns its
// claims.
//
// Validation includes:
//   - Signature verification using signKey (only HMAC methods are accepted)
//   - Expiration (exp) claim check, when present
//   - Issuer (iss) claim check, when issuer is non-empty
//
// Example usage:
//
//	claims, err := utils.ValidateJWTToken(rawToken, "secret", "posts-auth")
//	if err != nil {
//	    // reject the request
//	}
func ValidateJWTToken(tokenString, signKey, issuer string) (models.TokenClaims, error) {
	if signKey == "" {
		return models.TokenClaims{}, ErrEmptySignKey
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	var claims models.TokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(signKey), nil
	}, opts...)
	if err != nil {
		return models.TokenClaims{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	return claims, nil
}
