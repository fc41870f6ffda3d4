package handlers

import (
	"errors"
	"net/http"

	"RECIPES_BACK-END/internal/auth"
	"RECIPES_BACK-END/internal/dto"
	"RECIPES_BACK-END/internal/utils"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct {
	auth *auth.Service
}

// NewAuthHandler creates a new AuthHandler instance
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{auth: authService}
}

// Register handles user registration
// @Summary Register a new user
// @Description Create a new user account with username and password
// @Tags authentication
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 201 {object} dto.TokenResponse "User created successfully"
// @Failure 400 {object} dto.ErrorResponse "Missing fields or username taken"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/register [post]
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")
	if username == "" || password == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Missing required fields", "Username and password are required")
		return
	}

	tokenString, err := h.auth.Register(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrDuplicateUser) {
			utils.WriteErrorResponse(w, http.StatusBadRequest, "Invalid registration data", "Username already exists")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to register user", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.TokenResponse{AccessToken: tokenString})
}

// Login handles user login
// @Summary Login user
// @Description Authenticate user with username and password
// @Tags authentication
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Success 200 {object} dto.TokenResponse "Login successful"
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /api/auth/login [post]
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	username := r.PostFormValue("username")
	password := r.PostFormValue("password")

	tokenString, err := h.auth.Authenticate(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			w.Header().Set("WWW-Authenticate", "Bearer")
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Invalid credentials", "Username or password is incorrect")
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Failed to authenticate user", err.Error())
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.TokenResponse{AccessToken: tokenString})
}
