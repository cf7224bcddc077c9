package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/go-posts/internal/app"
	"github.com/MKhiriev/go-posts/internal/logger"
)

const bearerPrefix = "Bearer "

// auth is the authorization gate of protected routes.
//
// It extracts the bearer token from the "Authorization" header and asks the
// global state whether the token is valid. Requests pass to next only on a
// positive answer.
//
// Every rejection is answered with HTTP 401 and the same body, so the cause
// is not disclosed:
//   - the header is absent ([ErrEmptyAuthorizationHeader]);
//   - the scheme is not "Bearer" ([ErrInvalidAuthorizationHeader]);
//   - the token is empty ([ErrEmptyToken]);
//   - the users provider rejects the token ([ErrTokenRejected]).
//
// The cause is logged using the context-scoped logger obtained via
// [logger.FromRequest]. The gate never reads or writes stored entities.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		token, err := getTokenFromAuthHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Warn().Err(err).Str("func", "*Handler.auth").Msg("request rejected")
			http.Error(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		if !h.states.Global.IsTokenValid(r.Context(), token) {
			log.Warn().Err(ErrTokenRejected).Str("func", "*Handler.auth").Msg("request rejected")
			http.Error(w, app.MsgUnauthorized, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// getTokenFromAuthHeader extracts the bearer token from a raw
// "Authorization" header value of the form:
//
//	Authorization: Bearer <token>
//
// The scheme word is case-sensitive and followed by exactly one space;
// everything after it is the token.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	if authHeader == "" {
		return "", ErrEmptyAuthorizationHeader
	}

	token, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok {
		return "", ErrInvalidAuthorizationHeader
	}
	if token == "" {
		return "", ErrEmptyToken
	}

	return token, nil
}
