package display

import (
	"aichef_backend/models"
	"aichef_backend/units"
)

// DefaultServings is assumed when a recipe does not say how many servings
// it was written for.
const DefaultServings = 2

// View holds the display state for a single recipe: how many servings the
// user wants and in which measurement system, plus the ingredient list
// converted to match. Stored recipes are authored in metric.
//
// Every recompute derives from the recipe's original ingredients, never from
// the previously converted list, so repeated toggles cannot accumulate
// rounding error. Not safe for concurrent mutation; callers drive it from a
// single event loop.
type View struct {
	recipe    models.Recipe
	servings  int
	system    units.System
	converted []models.Ingredient
}

// NewView builds a view showing the recipe at its own serving count in the
// given system.
func NewView(recipe models.Recipe, system units.System) *View {
	v := &View{
		recipe:   recipe,
		servings: originalServings(recipe),
		system:   system,
	}
	v.recompute()
	return v
}

// SetServings changes the displayed serving count. Values below 1 are
// ignored and the prior state is kept.
func (v *View) SetServings(n int) {
	if n < 1 {
		return
	}
	v.servings = n
	v.recompute()
}

// SetSystem changes the displayed measurement system. Setting the current
// system is a no-op and does not recompute.
func (v *View) SetSystem(s units.System) {
	if s == v.system {
		return
	}
	v.system = s
	v.recompute()
}

func (v *View) recompute() {
	v.converted = units.Convert(v.recipe.Ingredients, originalServings(v.recipe), v.servings, units.Metric, v.system)
}

func (v *View) Recipe() models.Recipe { return v.recipe }

func (v *View) Servings() int { return v.servings }

func (v *View) System() units.System { return v.system }

// Ingredients returns the converted ingredient list. Same length and order
// as the recipe's own list; only amounts differ.
func (v *View) Ingredients() []models.Ingredient { return v.converted }

func originalServings(r models.Recipe) int {
	if r.Servings < 1 {
		return DefaultServings
	}
	return r.Servings
}
