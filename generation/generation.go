package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"aichef_backend/models"
)

const defaultModel = "gemini-2.0-flash"

// Service talks to the Gemini API for recipe generation and for recognizing
// ingredients in photos.
type Service struct {
	client *genai.Client
	model  string
}

func NewService(ctx context.Context, apiKey, model string) (*Service, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key is required")
	}
	if model == "" {
		model = defaultModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Service{client: client, model: model}, nil
}

// Request describes what the user wants generated. Ingredients are the
// items the user already has; the model may add more of its own. UserID
// identifies who asked, for attribution on the stored recipe.
type Request struct {
	UserID            string   `json:"userId"`
	Ingredients       []string `json:"ingredients"`
	Cuisine           string   `json:"cuisine"`
	DietaryPreference string   `json:"dietaryPreference"`
	Servings          int      `json:"servings"`
}

// GenerateRecipe asks the model for a recipe using the requested
// ingredients and parses its JSON reply. Ingredients matching the user's
// list are flagged IsUserProvided; everything the model added is not.
// Amounts are requested in metric, which is how recipes are stored.
func (s *Service) GenerateRecipe(ctx context.Context, req Request) (models.Recipe, error) {
	servings := req.Servings
	if servings < 1 {
		servings = 2
	}

	prompt := buildPrompt(req, servings)
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return models.Recipe{}, fmt.Errorf("recipe generation failed: %w", err)
	}

	recipe, err := parseRecipeReply(resp.Text(), req.Ingredients)
	if err != nil {
		return models.Recipe{}, err
	}
	if recipe.Servings < 1 {
		recipe.Servings = servings
	}
	return recipe, nil
}

// RecognizeIngredients sends a photo to the model and returns the
// ingredient names it sees in it.
func (s *Service) RecognizeIngredients(ctx context.Context, image []byte, mimeType string) ([]string, error) {
	parts := []*genai.Part{
		genai.NewPartFromBytes(image, mimeType),
		genai.NewPartFromText("List the food ingredients visible in this photo. " +
			"Reply with a JSON array of ingredient names only, e.g. [\"tomato\", \"basil\"]."),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	resp, err := s.client.Models.GenerateContent(ctx, s.model, contents, &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
	})
	if err != nil {
		return nil, fmt.Errorf("ingredient recognition failed: %w", err)
	}

	var names []string
	if err := json.Unmarshal([]byte(stripFences(resp.Text())), &names); err != nil {
		return nil, fmt.Errorf("failed to parse recognition reply: %w", err)
	}
	return names, nil
}

func buildPrompt(req Request, servings int) string {
	var b strings.Builder
	b.WriteString("Create a recipe as a JSON object with the fields: title, description, ")
	b.WriteString("ingredients (array of {name, amount}), instructions (array of strings), ")
	b.WriteString("servings, prepTimeMinutes, cookTimeMinutes, cuisine, tags. ")
	b.WriteString("Use metric units for every amount (g, kg, ml, l). ")
	fmt.Fprintf(&b, "The recipe should serve %d. ", servings)
	if len(req.Ingredients) > 0 {
		fmt.Fprintf(&b, "Use these ingredients: %s. ", strings.Join(req.Ingredients, ", "))
	}
	if req.Cuisine != "" {
		fmt.Fprintf(&b, "Cuisine: %s. ", req.Cuisine)
	}
	if req.DietaryPreference != "" {
		fmt.Fprintf(&b, "Dietary preference: %s. ", req.DietaryPreference)
	}
	return b.String()
}

// recipeReply mirrors the JSON shape the prompt asks the model for.
type recipeReply struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Ingredients []struct {
		Name   string `json:"name"`
		Amount string `json:"amount"`
	} `json:"ingredients"`
	Instructions    []string `json:"instructions"`
	Servings        int      `json:"servings"`
	PrepTimeMinutes int      `json:"prepTimeMinutes"`
	CookTimeMinutes int      `json:"cookTimeMinutes"`
	Cuisine         string   `json:"cuisine"`
	Tags            []string `json:"tags"`
}

func parseRecipeReply(raw string, pantry []string) (models.Recipe, error) {
	var reply recipeReply
	if err := json.Unmarshal([]byte(stripFences(raw)), &reply); err != nil {
		return models.Recipe{}, fmt.Errorf("failed to parse generated recipe: %w", err)
	}

	ingredients := make([]models.Ingredient, 0, len(reply.Ingredients))
	for _, ing := range reply.Ingredients {
		ingredients = append(ingredients, models.Ingredient{
			Name:           ing.Name,
			Amount:         ing.Amount,
			IsUserProvided: inPantry(ing.Name, pantry),
		})
	}

	return models.Recipe{
		Title:           reply.Title,
		Description:     reply.Description,
		Ingredients:     ingredients,
		Instructions:    reply.Instructions,
		Servings:        reply.Servings,
		PrepTimeMinutes: reply.PrepTimeMinutes,
		CookTimeMinutes: reply.CookTimeMinutes,
		Cuisine:         strings.ToLower(reply.Cuisine),
		Tags:            reply.Tags,
	}, nil
}

// inPantry matches loosely in both directions so "chicken breast" from the
// model counts as the user's "chicken".
func inPantry(name string, pantry []string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return false
	}
	for _, item := range pantry {
		item = strings.ToLower(strings.TrimSpace(item))
		if item == "" {
			continue
		}
		if strings.Contains(name, item) || strings.Contains(item, name) {
			return true
		}
	}
	return false
}

// stripFences removes a markdown code fence around a JSON reply. Models
// wrap JSON in ```json ... ``` even when asked not to.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
