package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"RECIPES_BACK-END/internal/dto"
	"RECIPES_BACK-END/internal/models"
	"RECIPES_BACK-END/internal/store"
	"RECIPES_BACK-END/internal/utils"
)

// ImageDeleter deletes hosted images by their public URL. Satisfied by
// upload.Client; nil disables image cleanup.
type ImageDeleter interface {
	DeleteFile(ctx context.Context, fileURL string) error
}

// RecipesHandler manages recipe-related endpoints
type RecipesHandler struct {
	recipes store.RecipeStore
	images  ImageDeleter
}

// NewRecipesHandler creates a new RecipesHandler
func NewRecipesHandler(recipes store.RecipeStore, images ImageDeleter) *RecipesHandler {
	return &RecipesHandler{recipes: recipes, images: images}
}

// Recipes dispatches by HTTP method for /api/recipes/
func (h *RecipesHandler) Recipes(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.ListRecipes(w, r)
	case http.MethodPost:
		h.CreateRecipe(w, r)
	case http.MethodDelete:
		h.DeleteRecipe(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// ListRecipes handles GET /api/recipes/
// @Summary List recipes
// @Description Get all recipes for a user
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param user query string true "Resource owner username"
// @Success 200 {object} dto.RecipesResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/recipes/ [get]
func (h *RecipesHandler) ListRecipes(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	recipes, err := h.recipes.ListRecipes(r.Context(), username)
	if err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Store error", "Failed to get recipes for user: "+username)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.RecipesResponse{Recipes: recipes})
}

// CreateRecipe handles POST /api/recipes/
// @Summary Create a recipe
// @Description Add a recipe to a user's collection. The id is assigned by the server when omitted.
// @Tags recipes
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param user query string true "Resource owner username"
// @Param payload body models.Recipe true "Recipe payload"
// @Success 201 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/recipes/ [post]
func (h *RecipesHandler) CreateRecipe(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	var recipe models.Recipe
	if err := utils.DecodeJSONRequest(w, r, &recipe); err != nil {
		return // Error already handled by DecodeJSONRequest
	}

	recipe.Name = strings.TrimSpace(recipe.Name)
	if recipe.Name == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "name is required")
		return
	}
	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}

	if err := h.recipes.AddRecipe(r.Context(), username, recipe); err != nil {
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Store error", "Failed to add recipe for user: "+username)
		return
	}

	utils.WriteJSONResponse(w, http.StatusCreated, dto.MessageResponse{Message: "Recipe added successfully"})
}

// DeleteRecipe handles DELETE /api/recipes/
// @Summary Delete a recipe
// @Description Remove a recipe from a user's collection and clean up its hosted image
// @Tags recipes
// @Produce json
// @Security BearerAuth
// @Param user query string true "Resource owner username"
// @Param id query string true "Recipe id"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 403 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /api/recipes/ [delete]
func (h *RecipesHandler) DeleteRecipe(w http.ResponseWriter, r *http.Request) {
	username, ok := utils.GetUsernameFromContext(r.Context())
	if !ok {
		utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid user context")
		return
	}

	recipeID := r.URL.Query().Get("id")
	if recipeID == "" {
		utils.WriteErrorResponse(w, http.StatusBadRequest, "Validation error", "id parameter is missing")
		return
	}

	imageURI, err := h.recipes.DeleteRecipe(r.Context(), username, recipeID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			utils.WriteErrorResponse(w, http.StatusNotFound, "Not found", "No recipe with id "+recipeID+" for user: "+username)
			return
		}
		utils.WriteErrorResponse(w, http.StatusInternalServerError, "Store error", "Failed to delete recipe for user: "+username)
		return
	}

	// Best-effort cleanup of the hosted image; the recipe itself is already gone
	if imageURI != "" && h.images != nil {
		if err := h.images.DeleteFile(r.Context(), imageURI); err != nil {
			log.Printf("failed to delete image %s: %v", imageURI, err)
		}
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.MessageResponse{Message: "Recipe deleted successfully"})
}
