package store

import (
	"context"
	"sync"

	"RECIPES_BACK-END/internal/models"
)

// Memory is an in-memory implementation of CredentialStore and RecipeStore,
// used by tests in place of Postgres.
type Memory struct {
	mu        sync.RWMutex
	passwords map[string]string
	docs      map[string]models.RecipeDocument
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		passwords: make(map[string]string),
		docs:      make(map[string]models.RecipeDocument),
	}
}

func (m *Memory) UserExists(_ context.Context, username string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.passwords[username]
	return ok, nil
}

func (m *Memory) SetPassword(_ context.Context, username, hashedPassword string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.passwords[username] = hashedPassword
	return nil
}

func (m *Memory) GetPassword(_ context.Context, username string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	hash, ok := m.passwords[username]
	if !ok {
		return "", ErrNotFound
	}
	return hash, nil
}

func (m *Memory) AddRecipe(_ context.Context, username string, recipe models.Recipe) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[username]
	if !ok {
		doc = models.RecipeDocument{}
		m.docs[username] = doc
	}
	id := recipe.ID
	recipe.ID = ""
	doc[id] = recipe
	return nil
}

func (m *Memory) ListRecipes(_ context.Context, username string) ([]models.Recipe, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc := m.docs[username]
	recipes := make([]models.Recipe, 0, len(doc))
	for id, rec := range doc {
		rec.ID = id
		recipes = append(recipes, rec)
	}
	sortRecipes(recipes)
	return recipes, nil
}

func (m *Memory) DeleteRecipe(_ context.Context, username, id string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	doc, ok := m.docs[username]
	if !ok {
		return "", ErrNotFound
	}
	rec, ok := doc[id]
	if !ok {
		return "", ErrNotFound
	}
	delete(doc, id)
	return rec.ImageURI, nil
}
