package httputil

import (
	"errors"
	"net/http"
	"strings"
)

const TokenQueryParam = "token"

var ErrNoToken = errors.New("no auth token found in header or query")

// GetTokenFromRequest reads a bearer token from the Authorization header,
// falling back to the token query parameter (browsers cannot set headers
// on a WebSocket upgrade).
func GetTokenFromRequest(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader != "" {
		// Support "Bearer <token>" format
		if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
			authHeader = token
		}
		if authHeader = strings.TrimSpace(authHeader); authHeader != "" {
			return authHeader, nil
		}
	}

	if token := r.URL.Query().Get(TokenQueryParam); token != "" {
		return token, nil
	}

	return "", ErrNoToken
}
