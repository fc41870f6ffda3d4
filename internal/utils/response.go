package utils

import (
	"context"
	"encoding/json"
	"net/http"

	"RECIPES_BACK-END/internal/dto"
)

type contextKey string

// UsernameContextKey is the request context key holding the authorized username
const UsernameContextKey contextKey = "username"

// GetUsernameFromContext returns the authorized username set by the guard middleware
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameContextKey).(string)
	return username, ok
}

// WriteJSONResponse writes a JSON response to the HTTP response writer
func WriteJSONResponse(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// WriteErrorResponse writes a JSON error response to the HTTP response writer
func WriteErrorResponse(w http.ResponseWriter, status int, errMsg, detail string) {
	WriteJSONResponse(w, status, dto.ErrorResponse{Error: errMsg, Message: detail})
}

// DecodeJSONRequest decodes a JSON request body into dst, writing a 400
// response on failure so the caller only needs to return.
func DecodeJSONRequest(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		WriteErrorResponse(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return err
	}
	return nil
}
