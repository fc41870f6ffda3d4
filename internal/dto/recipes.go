package dto

import "RECIPES_BACK-END/internal/models"

// RecipesResponse wraps a user's recipe collection
type RecipesResponse struct {
	Recipes []models.Recipe `json:"recipes"`
}

// MessageResponse is a generic success envelope
type MessageResponse struct {
	Message string `json:"message"`
}
