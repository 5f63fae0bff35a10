package http

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
)

// ErrTokenUnknown indicates a bearer token that resolves to no account.
var ErrTokenUnknown = errors.New("http: unknown access token")

// Authenticator resolves a bearer token to the account email it belongs to.
type Authenticator interface {
	EmailForToken(ctx context.Context, token string) (string, error)
}

// StaticTokenAuthenticator maps fixed tokens to emails. It backs local
// development and tests; production wires an identity provider instead.
type StaticTokenAuthenticator struct {
	mu     sync.RWMutex
	tokens map[string]string
}

// NewStaticTokenAuthenticator creates an authenticator from a token→email
// map.
func NewStaticTokenAuthenticator(tokens map[string]string) *StaticTokenAuthenticator {
	copied := make(map[string]string, len(tokens))
	for token, email := range tokens {
		copied[token] = email
	}
	return &StaticTokenAuthenticator{tokens: copied}
}

// Grant registers a token for email.
func (a *StaticTokenAuthenticator) Grant(token, email string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.tokens[token] = email
}

func (a *StaticTokenAuthenticator) EmailForToken(_ context.Context, token string) (string, error) {
	a.mu.RLock()
	defer a.mu.RUnlock()

	email, ok := a.tokens[token]
	if !ok {
		return "", ErrTokenUnknown
	}
	return email, nil
}

// requireAdmin extracts the bearer token, resolves it to an email, and
// checks the allow-list. It writes the error response itself and reports
// whether the caller may proceed.
func (api *API) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if api.auth == nil || api.admins == nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{
			Error:   "unauthorized",
			Message: "admin access is not configured",
		})
		return false
	}

	token := bearerToken(r)
	if token == "" {
		writeJSON(w, http.StatusUnauthorized, errorResponse{
			Error:   "unauthorized",
			Message: "missing bearer token",
		})
		return false
	}

	email, err := api.auth.EmailForToken(r.Context(), token)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorResponse{
			Error:   "unauthorized",
			Message: "invalid access token",
		})
		return false
	}

	if !api.admins.IsAdminEmail(email) {
		api.logger.Warn("admin access denied", "email", email)
		writeJSON(w, http.StatusForbidden, errorResponse{
			Error:   "forbidden",
			Message: "account is not an administrator",
		})
		return false
	}

	return true
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, prefix))
}
