package models

import "time"

// Ingredient is a single line of a recipe's ingredient list. Amount is kept
// as free text ("200 g", "2 cups", "to taste") because that is what the
// generator produces and what users type.
type Ingredient struct {
	Name           string `firestore:"name" json:"name"`
	Amount         string `firestore:"amount" json:"amount"`
	IsUserProvided bool   `firestore:"isUserProvided" json:"isUserProvided"`
}

type Recipe struct {
	ID              string       `firestore:"id" json:"id"`
	Title           string       `firestore:"Title" json:"title"`
	Description     string       `firestore:"Description" json:"description"`
	Ingredients     []Ingredient `firestore:"Ingredients" json:"ingredients"`
	Instructions    []string     `firestore:"Instructions" json:"instructions"`
	Servings        int          `firestore:"Servings" json:"servings"`
	PrepTimeMinutes int          `firestore:"prepTimeMinutes" json:"prepTimeMinutes"`
	CookTimeMinutes int          `firestore:"cookTimeMinutes" json:"cookTimeMinutes"`
	Cuisine         string       `firestore:"Cuisine" json:"cuisine"`
	Tags            []string     `firestore:"tags" json:"tags"`
	ImageURL        string       `firestore:"imageURL" json:"imageUrl"`
	CreatedBy       string       `firestore:"createdBy" json:"createdBy"`
	CreatedAt       time.Time    `firestore:"createdAt" json:"createdAt"`
}

// UserPreferences are the per-user display settings stored in the
// "preferences" collection, keyed by user ID.
type UserPreferences struct {
	MeasurementUnit   string `firestore:"measurementUnit" json:"measurementUnit"`
	DietaryPreference string `firestore:"dietaryPreference" json:"dietaryPreference"`
	DefaultServings   int    `firestore:"defaultServings" json:"defaultServings"`
}
