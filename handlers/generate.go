package handlers

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"

	"aichef_backend/generation"
	"aichef_backend/models"
)

// maxImageBytes caps uploads to the recognition endpoint.
const maxImageBytes = 10 << 20

// stampRecipe fills the identity fields of a freshly generated recipe
// before it is persisted.
func stampRecipe(recipe *models.Recipe, userID string) {
	recipe.ID = uuid.New().String()
	recipe.CreatedBy = userID
	recipe.CreatedAt = time.Now().UTC()
}

func GenerateRecipe(svc *generation.Service, client *firestore.Client, w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	var req generation.Request

	// Parse the JSON request body into the generation request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		log.Printf("Failed to decode request body: %v", err)
		return
	}

	recipe, err := svc.GenerateRecipe(ctx, req)
	if err != nil {
		http.Error(w, "Failed to generate recipe", http.StatusBadGateway)
		log.Printf("Failed to generate recipe: %v", err)
		return
	}

	stampRecipe(&recipe, req.UserID)

	// Store the generated recipe so the app can fetch it again later
	if _, err := client.Collection("recipes").Doc(recipe.ID).Set(ctx, recipe); err != nil {
		http.Error(w, "Failed to save generated recipe", http.StatusInternalServerError)
		log.Printf("Failed to save generated recipe: %v", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(recipe); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func RecognizeIngredients(svc *generation.Service, w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	// The request body is the raw image; Content-Type says which kind
	mimeType := r.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "image/jpeg"
	}

	image, err := io.ReadAll(io.LimitReader(r.Body, maxImageBytes))
	if err != nil {
		http.Error(w, "Failed to read image", http.StatusBadRequest)
		return
	}
	if len(image) == 0 {
		http.Error(w, "Missing image body", http.StatusBadRequest)
		return
	}

	names, err := svc.RecognizeIngredients(ctx, image, mimeType)
	if err != nil {
		http.Error(w, "Failed to recognize ingredients", http.StatusBadGateway)
		log.Printf("Failed to recognize ingredients: %v", err)
		return
	}
	if names == nil {
		names = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string][]string{"ingredients": names}); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}
