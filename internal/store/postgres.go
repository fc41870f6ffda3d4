package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"RECIPES_BACK-END/internal/models"
)

// Postgres implements CredentialStore and RecipeStore on a pgx pool.
// Each user's recipe collection is a single JSONB document keyed by username,
// so concurrent writes to the same document are last-write-wins per recipe id.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a new Postgres store instance
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Ping checks store connectivity.
func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// UserExists reports whether a credential record exists for username.
func (p *Postgres) UserExists(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := p.pool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM credentials WHERE username = $1)",
		username).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("store: check user: %w", err)
	}
	return exists, nil
}

// SetPassword persists the hashed password for username.
func (p *Postgres) SetPassword(ctx context.Context, username, hashedPassword string) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO credentials (username, password_hash)
		 VALUES ($1, $2)
		 ON CONFLICT (username) DO UPDATE SET password_hash = excluded.password_hash`,
		username, hashedPassword)
	if err != nil {
		return fmt.Errorf("store: set password: %w", err)
	}
	return nil
}

// GetPassword returns the stored hash, or ErrNotFound if the user is unknown.
func (p *Postgres) GetPassword(ctx context.Context, username string) (string, error) {
	var hash string
	err := p.pool.QueryRow(ctx,
		"SELECT password_hash FROM credentials WHERE username = $1",
		username).Scan(&hash)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("store: get password: %w", err)
	}
	return hash, nil
}

// AddRecipe upserts recipe under its id in the user's document. The document is
// created on first insert; the jsonb merge keeps all other entries untouched.
func (p *Postgres) AddRecipe(ctx context.Context, username string, recipe models.Recipe) error {
	if recipe.ID == "" {
		return fmt.Errorf("store: recipe id is required")
	}

	// The id lives in the document key, not inside the stored record.
	id := recipe.ID
	recipe.ID = ""
	payload, err := json.Marshal(recipe)
	if err != nil {
		return fmt.Errorf("store: encode recipe: %w", err)
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO recipe_docs (username, doc)
		 VALUES ($1, jsonb_build_object($2::text, $3::jsonb))
		 ON CONFLICT (username) DO UPDATE SET doc = recipe_docs.doc || excluded.doc`,
		username, id, string(payload))
	if err != nil {
		return fmt.Errorf("store: add recipe: %w", err)
	}
	return nil
}

// ListRecipes returns the user's recipes sorted by id. A missing document is an
// empty collection.
func (p *Postgres) ListRecipes(ctx context.Context, username string) ([]models.Recipe, error) {
	var raw []byte
	err := p.pool.QueryRow(ctx,
		"SELECT doc FROM recipe_docs WHERE username = $1",
		username).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return []models.Recipe{}, nil
		}
		return nil, fmt.Errorf("store: get recipes: %w", err)
	}

	var doc models.RecipeDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("store: decode recipe document: %w", err)
	}

	recipes := make([]models.Recipe, 0, len(doc))
	for id, rec := range doc {
		rec.ID = id
		recipes = append(recipes, rec)
	}
	sortRecipes(recipes)
	return recipes, nil
}

// DeleteRecipe removes the entry and returns the removed record's imageUri.
// The read and the update are separate statements; like AddRecipe this is
// last-write-wins under concurrent writers to the same id.
func (p *Postgres) DeleteRecipe(ctx context.Context, username, id string) (string, error) {
	var imageURI string
	err := p.pool.QueryRow(ctx,
		`SELECT COALESCE(doc -> $2 ->> 'imageUri', '')
		 FROM recipe_docs WHERE username = $1 AND doc ? $2`,
		username, id).Scan(&imageURI)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("store: get recipe: %w", err)
	}

	_, err = p.pool.Exec(ctx,
		"UPDATE recipe_docs SET doc = doc - $2 WHERE username = $1",
		username, id)
	if err != nil {
		return "", fmt.Errorf("store: delete recipe: %w", err)
	}
	return imageURI, nil
}
