package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"RECIPES_BACK-END/internal/token"
	"RECIPES_BACK-END/internal/utils"
)

var (
	// ErrMissingCredential is returned when no token was supplied
	ErrMissingCredential = errors.New("authorization header is missing")
	// ErrForbidden is returned when the token belongs to a different user than
	// the requested resource owner
	ErrForbidden = errors.New("token does not match requested user")
)

// Authorize validates the Authorization header against the expected resource
// owner. The expected username always comes from the request, never from the
// token alone, so a valid token for user A cannot address user B's data.
func Authorize(authHeader, expectedUser string, tokens *token.Service) (string, error) {
	if authHeader == "" {
		return "", ErrMissingCredential
	}

	// Accept both a bare token and the "Bearer <token>" form
	tokenString := strings.TrimPrefix(authHeader, "Bearer ")

	claims, err := tokens.Validate(tokenString)
	if err != nil {
		return "", err
	}
	if claims.Username != expectedUser {
		return "", ErrForbidden
	}
	return expectedUser, nil
}

// RequireUser guards a per-user route. It requires the user query parameter,
// authorizes the request token against it, and puts the username into the
// request context for the handler.
func RequireUser(next http.HandlerFunc, tokens *token.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user := r.URL.Query().Get("user")
		if user == "" {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "user parameter is missing")
			return
		}

		username, err := Authorize(r.Header.Get("Authorization"), user, tokens)
		if err != nil {
			switch {
			case errors.Is(err, ErrMissingCredential):
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Authorization header is missing")
			case errors.Is(err, ErrForbidden):
				utils.WriteErrorResponse(w, http.StatusForbidden, "Forbidden", "Token does not match requested user")
			default:
				utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid token")
			}
			return
		}

		ctx := context.WithValue(r.Context(), utils.UsernameContextKey, username)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
