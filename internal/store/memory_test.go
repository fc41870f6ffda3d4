package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"RECIPES_BACK-END/internal/models"
)

func TestMemory_Credentials(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	exists, err := m.UserExists(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = m.GetPassword(ctx, "alice")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.SetPassword(ctx, "alice", "hashed"))

	exists, err = m.UserExists(ctx, "alice")
	require.NoError(t, err)
	assert.True(t, exists)

	hash, err := m.GetPassword(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "hashed", hash)
}

func TestMemory_ListRecipes_EmptyForUnknownUser(t *testing.T) {
	m := NewMemory()

	recipes, err := m.ListRecipes(context.Background(), "alice")
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestMemory_AddAndListRecipes(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.AddRecipe(ctx, "alice", models.Recipe{
		ID: "r1", Name: "Soup", Description: "hot", Category: "starter", ImageURI: "https://img/1",
	}))
	require.NoError(t, m.AddRecipe(ctx, "alice", models.Recipe{ID: "r2", Name: "Salad"}))

	recipes, err := m.ListRecipes(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, recipes, 2)
	assert.Equal(t, "r1", recipes[0].ID)
	assert.Equal(t, "Soup", recipes[0].Name)
	assert.Equal(t, "r2", recipes[1].ID)

	// Collections are per user
	recipes, err = m.ListRecipes(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestMemory_AddRecipe_OverwritesSameID(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.AddRecipe(ctx, "alice", models.Recipe{ID: "r1", Name: "Soup"}))
	require.NoError(t, m.AddRecipe(ctx, "alice", models.Recipe{ID: "r1", Name: "Stew", Category: "main"}))

	recipes, err := m.ListRecipes(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, recipes, 1)
	assert.Equal(t, "r1", recipes[0].ID)
	assert.Equal(t, "Stew", recipes[0].Name)
	assert.Equal(t, "main", recipes[0].Category)
}

func TestMemory_DeleteRecipe(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	require.NoError(t, m.AddRecipe(ctx, "alice", models.Recipe{
		ID: "r1", Name: "Soup", ImageURI: "https://img/1",
	}))

	imageURI, err := m.DeleteRecipe(ctx, "alice", "r1")
	require.NoError(t, err)
	assert.Equal(t, "https://img/1", imageURI)

	recipes, err := m.ListRecipes(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, recipes)
}

func TestMemory_DeleteRecipe_NotFound(t *testing.T) {
	m := NewMemory()
	ctx := context.Background()

	_, err := m.DeleteRecipe(ctx, "alice", "r1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, m.AddRecipe(ctx, "alice", models.Recipe{ID: "r1", Name: "Soup"}))
	_, err = m.DeleteRecipe(ctx, "alice", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
