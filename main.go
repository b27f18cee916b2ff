package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"cloud.google.com/go/firestore"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"

	"aichef_backend/generation"
	"aichef_backend/handlers"
)

func main() {
	ctx := context.Background()

	// Load .env if present; real deployments set the variables directly
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	projectID := os.Getenv("FIRESTORE_PROJECT_ID")
	if projectID == "" {
		log.Fatal("FIRESTORE_PROJECT_ID must be set")
	}

	// Initialize Firestore client; GOOGLE_APPLICATION_CREDENTIALS points at
	// the service account key
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		log.Fatalf("Failed to create Firestore client: %v", err)
	}
	defer client.Close()

	// Initialize the Gemini-backed generation service; the client is plain
	// HTTP and needs no explicit close
	generator, err := generation.NewService(ctx, os.Getenv("GEMINI_API_KEY"), os.Getenv("GEMINI_MODEL"))
	if err != nil {
		log.Fatalf("Failed to create generation service: %v", err)
	}

	// Create a new router
	r := mux.NewRouter()

	// Recipe listing and retrieval; GET /recipe accepts optional "servings",
	// "units" and "user" parameters for display conversion
	r.HandleFunc("/recipes", func(w http.ResponseWriter, r *http.Request) {
		handlers.GetRecipes(client, w, r)
	}).Methods("GET")

	r.HandleFunc("/recipe", func(w http.ResponseWriter, r *http.Request) {
		handlers.GetRecipe(client, w, r)
	}).Methods("GET")

	r.HandleFunc("/recipe", func(w http.ResponseWriter, r *http.Request) {
		handlers.CreateRecipe(client, w, r)
	}).Methods("POST")

	r.HandleFunc("/delete/recipe", func(w http.ResponseWriter, r *http.Request) {
		handlers.DeleteRecipe(client, w, r)
	}).Methods("DELETE")

	r.HandleFunc("/update/recipe", func(w http.ResponseWriter, r *http.Request) {
		handlers.UpdateRecipeField(client, w, r)
	}).Methods("PUT")

	// AI endpoints
	r.HandleFunc("/generate", func(w http.ResponseWriter, r *http.Request) {
		handlers.GenerateRecipe(generator, client, w, r)
	}).Methods("POST")

	r.HandleFunc("/recognize", func(w http.ResponseWriter, r *http.Request) {
		handlers.RecognizeIngredients(generator, w, r)
	}).Methods("POST")

	// Per-user display preferences
	r.HandleFunc("/preferences", func(w http.ResponseWriter, r *http.Request) {
		handlers.GetPreferences(client, w, r)
	}).Methods("GET")

	r.HandleFunc("/preferences", func(w http.ResponseWriter, r *http.Request) {
		handlers.UpdatePreferences(client, w, r)
	}).Methods("PUT")

	r.HandleFunc("/image", func(w http.ResponseWriter, r *http.Request) {
		handlers.FetchImage(w, r)
	}).Methods("GET")

	// Enable CORS for all origins
	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start the server
	log.Printf("Server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
