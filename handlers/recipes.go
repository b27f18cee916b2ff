package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"aichef_backend/display"
	"aichef_backend/models"
	"aichef_backend/preferences"
	"aichef_backend/units"
)

// RecipeView is the response for a recipe requested at a particular serving
// count and measurement system. The stored recipe is embedded untouched;
// DisplayIngredients carries the converted amounts.
type RecipeView struct {
	models.Recipe
	DisplayServings    int                 `json:"displayServings"`
	MeasurementUnit    string              `json:"measurementUnit"`
	DisplayIngredients []models.Ingredient `json:"displayIngredients"`
}

func GetRecipes(client *firestore.Client, w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	var recipes []models.Recipe
	iter := client.Collection("recipes").Documents(ctx)
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		var recipe models.Recipe
		doc.DataTo(&recipe)
		normalizeRecipe(&recipe)
		recipes = append(recipes, recipe)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(recipes); err != nil {
		http.Error(w, "Failed to encode recipes", http.StatusInternalServerError)
	}
}

func GetRecipe(client *firestore.Client, w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	// Get the "id" query parameter from the URL
	recipeID := r.URL.Query().Get("id")
	if recipeID == "" {
		http.Error(w, "Missing 'id' query parameter", http.StatusBadRequest)
		return
	}

	// Query Firestore where the "id" field matches the provided recipeID
	iter := client.Collection("recipes").Where("id", "==", recipeID).Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		http.Error(w, "No matching recipe found", http.StatusNotFound)
		return
	}
	if err != nil {
		http.Error(w, "Failed to retrieve recipe", http.StatusInternalServerError)
		log.Printf("Failed to retrieve recipe: %v", err)
		return
	}

	var recipe models.Recipe
	if err := doc.DataTo(&recipe); err != nil {
		http.Error(w, "Failed to decode recipe data", http.StatusInternalServerError)
		log.Printf("Failed to decode recipe data: %v", err)
		return
	}
	normalizeRecipe(&recipe)

	servingsParam := r.URL.Query().Get("servings")
	unitsParam := r.URL.Query().Get("units")
	userID := r.URL.Query().Get("user")

	w.Header().Set("Content-Type", "application/json")

	// Without display parameters this returns the stored recipe as-is
	if servingsParam == "" && unitsParam == "" && userID == "" {
		if err := json.NewEncoder(w).Encode(recipe); err != nil {
			http.Error(w, "Failed to encode recipe data", http.StatusInternalServerError)
		}
		return
	}

	// Pick the measurement system: an explicit "units" parameter wins,
	// otherwise the user's saved preference, otherwise metric
	system := units.Metric
	if unitsParam != "" {
		system = units.ParseSystem(unitsParam)
	} else if userID != "" {
		prefs := preferences.Load(ctx, client, userID)
		system = units.ParseSystem(prefs.MeasurementUnit)
	}

	view := display.NewView(recipe, system)
	if servingsParam != "" {
		// Invalid or sub-1 values leave the recipe's own serving count
		if n, err := strconv.Atoi(servingsParam); err == nil {
			view.SetServings(n)
		}
	}

	resp := RecipeView{
		Recipe:             recipe,
		DisplayServings:    view.Servings(),
		MeasurementUnit:    string(view.System()),
		DisplayIngredients: view.Ingredients(),
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		http.Error(w, "Failed to encode recipe view", http.StatusInternalServerError)
	}
}

func CreateRecipe(client *firestore.Client, w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	var recipe models.Recipe

	// Parse the JSON request body into the Recipe struct
	if err := json.NewDecoder(r.Body).Decode(&recipe); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		log.Printf("Failed to decode request body: %v", err)
		return
	}

	// If the ID is not provided, generate a new one
	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	if recipe.Servings < 1 {
		recipe.Servings = display.DefaultServings
	}
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = time.Now().UTC()
	}

	// Add the recipe to Firestore
	if _, err := client.Collection("recipes").Doc(recipe.ID).Set(ctx, recipe); err != nil {
		http.Error(w, "Failed to create recipe: "+err.Error(), http.StatusInternalServerError)
		log.Printf("Failed to create recipe: %v", err)
		return
	}

	// Return the created recipe as a response
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(recipe); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func DeleteRecipe(client *firestore.Client, w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	// Get the "id" query parameter from the URL
	recipeID := r.URL.Query().Get("id")
	if recipeID == "" {
		http.Error(w, "Missing 'id' query parameter", http.StatusBadRequest)
		return
	}

	// Delete the document from Firestore
	if _, err := client.Collection("recipes").Doc(recipeID).Delete(ctx); err != nil {
		http.Error(w, "Failed to delete recipe", http.StatusInternalServerError)
		log.Printf("Failed to delete recipe with id %s: %v", recipeID, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type UpdateFieldRequest struct {
	Field string      `json:"field"`
	Value interface{} `json:"value"`
}

func UpdateRecipeField(client *firestore.Client, w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	// Get the "id" query parameter from the URL
	recipeID := r.URL.Query().Get("id")
	if recipeID == "" {
		http.Error(w, "Missing 'id' query parameter", http.StatusBadRequest)
		return
	}

	// Parse the JSON body to get the field name and new value
	var updateRequest UpdateFieldRequest
	if err := json.NewDecoder(r.Body).Decode(&updateRequest); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		log.Printf("Failed to decode request body: %v", err)
		return
	}

	updateData := map[string]interface{}{
		updateRequest.Field: updateRequest.Value,
	}

	// Merge the single field into the document
	if _, err := client.Collection("recipes").Doc(recipeID).Set(ctx, updateData, firestore.MergeAll); err != nil {
		http.Error(w, "Failed to update recipe field", http.StatusInternalServerError)
		log.Printf("Failed to update recipe with id %s: %v", recipeID, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("Recipe field updated successfully"))
}

// normalizeRecipe ensures slices are not nil so clients always see arrays
func normalizeRecipe(recipe *models.Recipe) {
	if recipe.Ingredients == nil {
		recipe.Ingredients = []models.Ingredient{}
	}
	if recipe.Instructions == nil {
		recipe.Instructions = []string{}
	}
	if recipe.Tags == nil {
		recipe.Tags = []string{}
	}
}
