package preferences

import (
	"context"
	"log"

	"cloud.google.com/go/firestore"

	"aichef_backend/models"
	"aichef_backend/units"
)

const collection = "preferences"

// Default is what a user gets before they have saved anything: metric
// amounts at two servings.
func Default() models.UserPreferences {
	return models.UserPreferences{
		MeasurementUnit: string(units.Metric),
		DefaultServings: 2,
	}
}

// Load reads a user's display preferences. Any failure — missing document,
// decode error — falls back to the defaults instead of propagating; the app
// must always be able to render a recipe.
func Load(ctx context.Context, client *firestore.Client, userID string) models.UserPreferences {
	doc, err := client.Collection(collection).Doc(userID).Get(ctx)
	if err != nil {
		log.Printf("Falling back to default preferences for user %s: %v", userID, err)
		return Default()
	}

	var prefs models.UserPreferences
	if err := doc.DataTo(&prefs); err != nil {
		log.Printf("Failed to decode preferences for user %s: %v", userID, err)
		return Default()
	}

	// Normalize whatever was stored
	prefs.MeasurementUnit = string(units.ParseSystem(prefs.MeasurementUnit))
	if prefs.DefaultServings < 1 {
		prefs.DefaultServings = 2
	}
	return prefs
}

// Save writes a user's display preferences.
func Save(ctx context.Context, client *firestore.Client, userID string, prefs models.UserPreferences) error {
	prefs.MeasurementUnit = string(units.ParseSystem(prefs.MeasurementUnit))
	if prefs.DefaultServings < 1 {
		prefs.DefaultServings = 2
	}

	_, err := client.Collection(collection).Doc(userID).Set(ctx, prefs)
	return err
}
