// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-posts/internal/config"
	"github.com/MKhiriev/go-posts/internal/logger"
	"github.com/MKhiriev/go-posts/internal/store"
	"github.com/MKhiriev/go-posts/internal/utils"
)

// NewTokenValidator returns the bearer token check used by the users
// provider.
//
// With an empty cfg.TokenSignKey every token is accepted. Otherwise tokens
// must be HS256 JWTs signed with that key, unexpired, and issued by
// cfg.TokenIssuer when it is set.
func NewTokenValidator(cfg config.App, log *logger.Logger) store.TokenValidator {
	if cfg.TokenSignKey == "" {
		log.Warn().Msg("no token sign key configured, every bearer token is accepted")
		return allowAllValidator{}
	}

	log.Debug().Str("issuer", cfg.TokenIssuer).Msg("using JWT token validator")
	return &jwtValidator{
		signKey: cfg.TokenSignKey,
		issuer:  cfg.TokenIssuer,
	}
}

// allowAllValidator accepts every token.
type allowAllValidator struct{}

func (allowAllValidator) IsTokenValid(context.Context, string) bool {
	return true
}

type jwtValidator struct {
	signKey string
	issuer  string
}

func (v *jwtValidator) IsTokenValid(ctx context.Context, token string) bool {
	claims, err := utils.ValidateJWTToken(token, v.signKey, v.issuer)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("bearer token rejected")
		return false
	}

	logger.FromContext(ctx).Debug().Str("subject", claims.Subject).Msg("bearer token accepted")
	return true
}
