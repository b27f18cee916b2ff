package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleReply = `{
	"title": "Tomato Basil Pasta",
	"description": "A quick weeknight pasta.",
	"ingredients": [
		{"name": "pasta", "amount": "200 g"},
		{"name": "cherry tomatoes", "amount": "250 g"},
		{"name": "olive oil", "amount": "30 ml"},
		{"name": "salt", "amount": "to taste"}
	],
	"instructions": ["Boil the pasta.", "Toss with tomatoes and oil."],
	"servings": 2,
	"prepTimeMinutes": 10,
	"cookTimeMinutes": 15,
	"cuisine": "Italian",
	"tags": ["quick", "vegetarian"]
}`

func TestParseRecipeReply(t *testing.T) {
	t.Run("plain JSON", func(t *testing.T) {
		recipe, err := parseRecipeReply(sampleReply, []string{"pasta", "tomatoes"})
		require.NoError(t, err)

		assert.Equal(t, "Tomato Basil Pasta", recipe.Title)
		assert.Equal(t, 2, recipe.Servings)
		assert.Equal(t, "italian", recipe.Cuisine)
		require.Len(t, recipe.Ingredients, 4)
		assert.Equal(t, "200 g", recipe.Ingredients[0].Amount)
	})

	t.Run("fenced JSON", func(t *testing.T) {
		fenced := "```json\n" + sampleReply + "\n```"
		recipe, err := parseRecipeReply(fenced, nil)
		require.NoError(t, err)
		assert.Equal(t, "Tomato Basil Pasta", recipe.Title)
	})

	t.Run("pantry items are flagged as user provided", func(t *testing.T) {
		recipe, err := parseRecipeReply(sampleReply, []string{"pasta", "tomatoes"})
		require.NoError(t, err)

		assert.True(t, recipe.Ingredients[0].IsUserProvided)  // pasta
		assert.True(t, recipe.Ingredients[1].IsUserProvided)  // cherry tomatoes
		assert.False(t, recipe.Ingredients[2].IsUserProvided) // olive oil, model's addition
		assert.False(t, recipe.Ingredients[3].IsUserProvided) // salt
	})

	t.Run("garbage is an error", func(t *testing.T) {
		_, err := parseRecipeReply("I couldn't come up with a recipe, sorry!", nil)
		assert.Error(t, err)
	})
}

func TestStripFences(t *testing.T) {
	assert.Equal(t, `{"a":1}`, stripFences("```json\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences("```\n{\"a\":1}\n```"))
	assert.Equal(t, `{"a":1}`, stripFences(`{"a":1}`))
	assert.Equal(t, "", stripFences(""))
}

func TestInPantry(t *testing.T) {
	pantry := []string{"chicken", "Basmati Rice"}
	assert.True(t, inPantry("chicken breast", pantry))
	assert.True(t, inPantry("rice", pantry))
	assert.False(t, inPantry("soy sauce", pantry))
	assert.False(t, inPantry("", pantry))
	assert.False(t, inPantry("chicken", nil))
}
