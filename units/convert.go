package units

import (
	"math"
	"strconv"

	"aichef_backend/models"
)

// Convert rescales an ingredient list from originalServings to newServings
// and, when the target system differs from the recipe's, converts each
// amount's unit. It always returns a new slice with the same length and
// order as the input; only the Amount fields change. Amounts without a
// parseable number ("to taste") are carried over untouched.
func Convert(ingredients []models.Ingredient, originalServings, newServings int, from, to System) []models.Ingredient {
	factor := 1.0
	if originalServings >= 1 && newServings >= 1 {
		factor = float64(newServings) / float64(originalServings)
	}

	out := make([]models.Ingredient, len(ingredients))
	for i, ing := range ingredients {
		out[i] = ing

		q, ok := ParseQuantity(ing.Amount)
		if !ok {
			continue
		}

		value := q.Value * factor
		tag := q.Tag
		if from != to && tag != "" && unitTable[tag].system != to {
			value, tag = convertTo(value, tag, to)
		}

		out[i].Amount = FormatQuantity(value, tag, q.Label)
	}
	return out
}

// convertTo moves a quantity with a known unit tag into the target system.
// Mass stays tag-for-tag (g→oz, kg→lb and back); volume picks the target
// unit by magnitude so 5 ml shows as a teaspoon and 500 ml as cups.
func convertTo(value float64, tag string, to System) (float64, string) {
	def := unitTable[tag]
	base := value * def.toBase

	if def.kind == kindMass {
		if to == Imperial {
			if tag == "kg" {
				return base / unitTable["lb"].toBase, "lb"
			}
			return base / unitTable["oz"].toBase, "oz"
		}
		if tag == "lb" || base >= 1000 {
			return base / 1000, "kg"
		}
		return base, "g"
	}

	// volume
	if to == Imperial {
		if cups := base / unitTable["cup"].toBase; cups >= 0.25 {
			return cups, "cup"
		}
		if tbsp := base / unitTable["tbsp"].toBase; tbsp >= 1 {
			return tbsp, "tbsp"
		}
		return base / unitTable["tsp"].toBase, "tsp"
	}
	if base >= 1000 {
		return base / 1000, "l"
	}
	return base, "ml"
}

var unitLabels = map[string]struct{ singular, plural string }{
	"g":    {"g", "g"},
	"kg":   {"kg", "kg"},
	"ml":   {"ml", "ml"},
	"l":    {"l", "l"},
	"oz":   {"oz", "oz"},
	"lb":   {"lb", "lb"},
	"tsp":  {"tsp", "tsp"},
	"tbsp": {"tbsp", "tbsp"},
	"cup":  {"cup", "cups"},
}

// FormatQuantity renders a value back into recipe text at kitchen precision:
// whole grams and milliliters, one decimal for kg/l, and common fractions
// (quarters and thirds) for imperial units below ten. label is the original
// unit text, used verbatim when the tag is not a known unit.
func FormatQuantity(value float64, tag, label string) string {
	var number, unit string
	var rounded float64

	switch tag {
	case "g", "ml":
		if value >= 1 {
			rounded = math.Round(value)
		} else {
			rounded = math.Round(value*10) / 10
		}
		number = strconv.FormatFloat(rounded, 'f', -1, 64)
	case "kg", "l":
		rounded = math.Round(value*10) / 10
		number = strconv.FormatFloat(rounded, 'f', -1, 64)
	default:
		if value >= 10 {
			rounded = math.Round(value)
			number = strconv.FormatFloat(rounded, 'f', -1, 64)
		} else {
			number, rounded = formatFraction(value)
		}
	}

	// Pluralize on what the reader sees: 1.06 cups displays as "1 cup"
	if names, ok := unitLabels[tag]; ok {
		if rounded > 1 {
			unit = names.plural
		} else {
			unit = names.singular
		}
	} else {
		unit = label
	}

	if unit == "" {
		return number
	}
	return number + " " + unit
}

var kitchenFractions = []struct {
	value float64
	text  string
}{
	{0, ""},
	{1.0 / 4.0, "1/4"},
	{1.0 / 3.0, "1/3"},
	{1.0 / 2.0, "1/2"},
	{2.0 / 3.0, "2/3"},
	{3.0 / 4.0, "3/4"},
	{1, ""},
}

// formatFraction rounds to the nearest common kitchen fraction and renders
// it as "1/2", "1 1/2", "2" and so on. Positive values never round down to
// zero; anything measurable shows as at least a quarter. The second return
// is the rounded value the text stands for.
func formatFraction(v float64) (string, float64) {
	whole := math.Floor(v)
	frac := v - whole

	best := 0
	for i, c := range kitchenFractions {
		if math.Abs(frac-c.value) < math.Abs(frac-kitchenFractions[best].value) {
			best = i
		}
	}
	text := kitchenFractions[best].text
	rounded := whole + kitchenFractions[best].value
	if best == len(kitchenFractions)-1 {
		whole++
	}

	if whole == 0 && text == "" && v > 0 {
		text = "1/4"
		rounded = 1.0 / 4.0
	}

	switch {
	case whole == 0 && text == "":
		return "0", 0
	case whole == 0:
		return text, rounded
	case text == "":
		return strconv.FormatFloat(whole, 'f', -1, 64), rounded
	default:
		return strconv.FormatFloat(whole, 'f', -1, 64) + " " + text, rounded
	}
}
