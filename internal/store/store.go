package store

import (
	"context"
	"errors"
	"sort"

	"RECIPES_BACK-END/internal/models"
)

// ErrNotFound is returned when a requested record does not exist. Callers use it
// to tell "no such recipe/user" apart from a store failure.
var ErrNotFound = errors.New("not found")

// CredentialStore owns password hashes keyed by username.
type CredentialStore interface {
	// UserExists reports whether a credential record exists for username.
	UserExists(ctx context.Context, username string) (bool, error)
	// SetPassword persists the hashed password for username.
	SetPassword(ctx context.Context, username, hashedPassword string) error
	// GetPassword returns the stored hash, or ErrNotFound if the user is unknown.
	GetPassword(ctx context.Context, username string) (string, error)
}

// RecipeStore owns per-user recipe collection documents.
type RecipeStore interface {
	// AddRecipe upserts recipe under recipe.ID in the user's document, creating
	// the document on first use. Duplicate ids are last-write-wins.
	AddRecipe(ctx context.Context, username string, recipe models.Recipe) error
	// ListRecipes returns the user's recipes, sorted by id. A missing document
	// is an empty collection, not an error.
	ListRecipes(ctx context.Context, username string) ([]models.Recipe, error)
	// DeleteRecipe removes the recipe with the given id and returns its imageUri
	// so the caller can clean up the hosted image. Returns ErrNotFound if no
	// such recipe exists.
	DeleteRecipe(ctx context.Context, username, id string) (string, error)
}

func sortRecipes(recipes []models.Recipe) {
	sort.Slice(recipes, func(i, j int) bool { return recipes[i].ID < recipes[j].ID })
}
