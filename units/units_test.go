package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseQuantity(t *testing.T) {
	t.Run("integer with unit", func(t *testing.T) {
		q, ok := ParseQuantity("200 g")
		require.True(t, ok)
		assert.Equal(t, 200.0, q.Value)
		assert.Equal(t, "g", q.Tag)
	})

	t.Run("plural unit normalizes", func(t *testing.T) {
		q, ok := ParseQuantity("2 cups")
		require.True(t, ok)
		assert.Equal(t, 2.0, q.Value)
		assert.Equal(t, "cup", q.Tag)
	})

	t.Run("decimal", func(t *testing.T) {
		q, ok := ParseQuantity("1.5 l")
		require.True(t, ok)
		assert.Equal(t, 1.5, q.Value)
		assert.Equal(t, "l", q.Tag)
	})

	t.Run("fraction", func(t *testing.T) {
		q, ok := ParseQuantity("1/2 tsp")
		require.True(t, ok)
		assert.Equal(t, 0.5, q.Value)
		assert.Equal(t, "tsp", q.Tag)
	})

	t.Run("mixed number", func(t *testing.T) {
		q, ok := ParseQuantity("1 1/2 cups")
		require.True(t, ok)
		assert.Equal(t, 1.5, q.Value)
		assert.Equal(t, "cup", q.Tag)
	})

	t.Run("spelled-out unit", func(t *testing.T) {
		q, ok := ParseQuantity("3 tablespoons")
		require.True(t, ok)
		assert.Equal(t, "tbsp", q.Tag)
	})

	t.Run("bare number has empty tag", func(t *testing.T) {
		q, ok := ParseQuantity("3")
		require.True(t, ok)
		assert.Equal(t, 3.0, q.Value)
		assert.Equal(t, "", q.Tag)
	})

	t.Run("unknown unit keeps its label", func(t *testing.T) {
		q, ok := ParseQuantity("2 cloves")
		require.True(t, ok)
		assert.Equal(t, "", q.Tag)
		assert.Equal(t, "cloves", q.Label)
	})

	t.Run("descriptive text is not a quantity", func(t *testing.T) {
		_, ok := ParseQuantity("to taste")
		assert.False(t, ok)

		_, ok = ParseQuantity("a pinch")
		assert.False(t, ok)

		_, ok = ParseQuantity("")
		assert.False(t, ok)
	})
}

func TestParseSystem(t *testing.T) {
	assert.Equal(t, Imperial, ParseSystem("imperial"))
	assert.Equal(t, Imperial, ParseSystem("Imperial"))
	assert.Equal(t, Metric, ParseSystem("metric"))
	assert.Equal(t, Metric, ParseSystem(""))
	assert.Equal(t, Metric, ParseSystem("nonsense"))
}

func TestFormatQuantity(t *testing.T) {
	t.Run("grams round to whole numbers", func(t *testing.T) {
		assert.Equal(t, "400 g", FormatQuantity(400, "g", "g"))
		assert.Equal(t, "133 g", FormatQuantity(133.333, "g", "g"))
	})

	t.Run("kilograms keep one decimal", func(t *testing.T) {
		assert.Equal(t, "1.5 kg", FormatQuantity(1.5, "kg", "kg"))
		assert.Equal(t, "2 kg", FormatQuantity(2.0, "kg", "kg"))
	})

	t.Run("imperial amounts use kitchen fractions", func(t *testing.T) {
		assert.Equal(t, "1/2 cup", FormatQuantity(0.5, "cup", "cup"))
		assert.Equal(t, "1 1/2 cups", FormatQuantity(1.5, "cup", "cups"))
		assert.Equal(t, "2 1/4 lb", FormatQuantity(2.2046, "lb", "lb"))
	})

	t.Run("large imperial amounts round to integers", func(t *testing.T) {
		assert.Equal(t, "14 oz", FormatQuantity(14.109, "oz", "oz"))
	})

	t.Run("plural follows the displayed number", func(t *testing.T) {
		// 250 ml is 1.0567 cups; it displays as 1, so no plural
		assert.Equal(t, "1 cup", FormatQuantity(1.0567, "cup", "cup"))
		assert.Equal(t, "1 cup", FormatQuantity(0.95, "cup", "cup"))
		assert.Equal(t, "1 1/4 cups", FormatQuantity(1.2, "cup", "cup"))
	})

	t.Run("small amounts never vanish", func(t *testing.T) {
		assert.Equal(t, "1/4 tsp", FormatQuantity(0.04, "tsp", "tsp"))
	})

	t.Run("unknown units keep the original label", func(t *testing.T) {
		assert.Equal(t, "4 cloves", FormatQuantity(4, "", "cloves"))
		assert.Equal(t, "3", FormatQuantity(3, "", ""))
	})
}
