package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aichef_backend/models"
)

func TestStampRecipe(t *testing.T) {
	recipe := models.Recipe{Title: "Tomato Basil Pasta"}
	stampRecipe(&recipe, "user-123")

	assert.NotEmpty(t, recipe.ID)
	assert.Equal(t, "user-123", recipe.CreatedBy)
	assert.False(t, recipe.CreatedAt.IsZero())
	assert.Equal(t, "Tomato Basil Pasta", recipe.Title)

	// Each generated recipe gets its own ID
	other := models.Recipe{}
	stampRecipe(&other, "user-123")
	assert.NotEqual(t, recipe.ID, other.ID)
}
