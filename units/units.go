package units

import (
	"regexp"
	"strconv"
	"strings"
)

// System is the measurement convention used to display ingredient amounts.
type System string

const (
	Metric   System = "metric"
	Imperial System = "imperial"
)

// ParseSystem maps free text to a System, defaulting to metric for anything
// it does not recognize.
func ParseSystem(s string) System {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "imperial", "us", "customary":
		return Imperial
	default:
		return Metric
	}
}

type unitKind string

const (
	kindMass   unitKind = "mass"
	kindVolume unitKind = "volume"
)

type unitDef struct {
	kind   unitKind
	system System
	toBase float64 // factor to the base unit of its kind (g for mass, ml for volume)
}

// unitTable covers the unit tags the converter understands. Anything else
// (pcs, cloves, pinch, eggs...) is treated as a count and passes through.
var unitTable = map[string]unitDef{
	// mass, base = g
	"g":  {kind: kindMass, system: Metric, toBase: 1},
	"kg": {kind: kindMass, system: Metric, toBase: 1000},
	"oz": {kind: kindMass, system: Imperial, toBase: 28.349523125},
	"lb": {kind: kindMass, system: Imperial, toBase: 453.59237},

	// volume, base = ml
	"ml":   {kind: kindVolume, system: Metric, toBase: 1},
	"l":    {kind: kindVolume, system: Metric, toBase: 1000},
	"tsp":  {kind: kindVolume, system: Imperial, toBase: 4.92892159375},
	"tbsp": {kind: kindVolume, system: Imperial, toBase: 14.78676478125},
	"cup":  {kind: kindVolume, system: Imperial, toBase: 236.5882365},
}

// unitAliases normalizes the spellings that show up in free-form recipe text.
var unitAliases = map[string]string{
	"g": "g", "gram": "g", "grams": "g", "gr": "g",
	"kg": "kg", "kilogram": "kg", "kilograms": "kg",
	"oz": "oz", "ounce": "oz", "ounces": "oz",
	"lb": "lb", "lbs": "lb", "pound": "lb", "pounds": "lb",
	"ml": "ml", "milliliter": "ml", "milliliters": "ml", "millilitre": "ml", "millilitres": "ml",
	"l": "l", "liter": "l", "liters": "l", "litre": "l", "litres": "l",
	"tsp": "tsp", "teaspoon": "tsp", "teaspoons": "tsp",
	"tbsp": "tbsp", "tablespoon": "tbsp", "tablespoons": "tbsp",
	"cup": "cup", "cups": "cup",
}

// Quantity is a parsed ingredient amount: a numeric value plus a unit label.
// Tag is the normalized unit ("cup" for "cups"); Label keeps the text as the
// recipe wrote it so unknown units survive a round trip untouched.
type Quantity struct {
	Value float64
	Tag   string
	Label string
}

// amountPattern matches a leading number written as an integer, a decimal,
// a fraction ("1/2") or a mixed number ("1 1/2").
var amountPattern = regexp.MustCompile(`^\s*(\d+\s+\d+/\d+|\d+/\d+|\d+(?:\.\d+)?)\s*(.*)$`)

// ParseQuantity splits an amount string into a numeric value and unit label.
// The second return is false when the text carries no leading number
// ("to taste", "a pinch"); such amounts are displayed verbatim.
func ParseQuantity(s string) (Quantity, bool) {
	m := amountPattern.FindStringSubmatch(s)
	if m == nil {
		return Quantity{}, false
	}

	value, ok := parseNumber(m[1])
	if !ok {
		return Quantity{}, false
	}

	label := strings.TrimSpace(m[2])
	tag := unitAliases[strings.ToLower(label)]
	return Quantity{Value: value, Tag: tag, Label: label}, true
}

func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)

	// Mixed number: "1 1/2"
	if fields := strings.Fields(s); len(fields) == 2 {
		whole, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return 0, false
		}
		frac, ok := parseFraction(fields[1])
		if !ok {
			return 0, false
		}
		return whole + frac, true
	}

	if strings.Contains(s, "/") {
		return parseFraction(s)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func parseFraction(s string) (float64, bool) {
	parts := strings.SplitN(s, "/", 2)
	if len(parts) != 2 {
		return 0, false
	}
	num, err1 := strconv.ParseFloat(parts[0], 64)
	den, err2 := strconv.ParseFloat(parts[1], 64)
	if err1 != nil || err2 != nil || den == 0 {
		return 0, false
	}
	return num / den, true
}
