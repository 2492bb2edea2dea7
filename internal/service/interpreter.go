package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/nutriquery/backend/internal/models"
	"github.com/nutriquery/backend/internal/types"
)

// Interpreter turns free-text meal requests into structured queries by
// calling an OpenAI-compatible chat-completions endpoint. It works
// against a hosted API (DeepSeek) as well as a local Ollama server
// exposing /v1/chat/completions.
type Interpreter struct {
	apiURL string
	model  string
	apiKey string
	client *http.Client
	logger *zap.Logger
}

// NewInterpreter creates a new Interpreter instance. apiKey may be empty
// for endpoints that accept unauthenticated requests.
func NewInterpreter(apiURL, model, apiKey string, timeout time.Duration, logger *zap.Logger) *Interpreter {
	return &Interpreter{
		apiURL: apiURL,
		model:  model,
		apiKey: apiKey,
		client: &http.Client{Timeout: timeout},
		logger: logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model          string            `json:"model"`
	Messages       []chatMessage     `json:"messages"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
	Temperature    float64           `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

const interpretSystemPrompt = `You are a meal planning assistant. Parse the user's natural language query and respond ONLY with a valid JSON object (no additional text) with the following structure:
{
    "dietary_restrictions": ["list of dietary restrictions like vegan, gluten-free, dairy-free, vegetarian"],
    "meal_types": ["list of meal types like breakfast, lunch, dinner, snack"],
    "meal_count": number of meals requested (integer or null),
    "owned_ingredients": ["list of ingredients the user already has"],
    "required_ingredients": ["list of ingredients that MUST be in the recipe, like 'ground beef', 'chicken breast', 'salmon'"],
    "cuisine_preferences": ["list of cuisine preferences like Italian, Mexican, Asian"],
    "protein_requirement": minimum protein in grams per serving (integer or null),
    "other_requirements": "any other requirements or preferences as a string"
}

Important:
- Use empty arrays [] for lists if nothing is mentioned
- Use null for meal_count and protein_requirement if not specified
- Normalize ingredient names to lowercase
- Normalize dietary restrictions to standard terms
- "owned_ingredients" = ingredients the user ALREADY HAS
- "required_ingredients" = ingredients that MUST BE IN the recipe
- Look for protein requirements like "30g protein", "high protein", "at least 25g protein per serving"`

// Interpret sends the raw query to the chat endpoint and validates the
// model's JSON answer field by field. Individually invalid fields fall
// back to their defaults; only a wholly unusable payload fails the call.
// Every failure wraps ErrInterpretation.
func (s *Interpreter) Interpret(ctx context.Context, query string) (types.ParsedQuery, error) {
	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: interpretSystemPrompt},
			{Role: "user", Content: query},
		},
		ResponseFormat: map[string]string{
			"type": "json_object",
		},
		Temperature: 0.1,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return types.ParsedQuery{}, fmt.Errorf("%w: failed to marshal request: %v", ErrInterpretation, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return types.ParsedQuery{}, fmt.Errorf("%w: failed to create request: %v", ErrInterpretation, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return types.ParsedQuery{}, fmt.Errorf("%w: chat request failed: %v", ErrInterpretation, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return types.ParsedQuery{}, fmt.Errorf("%w: failed to read response: %v", ErrInterpretation, err)
	}
	if resp.StatusCode != http.StatusOK {
		return types.ParsedQuery{}, fmt.Errorf("%w: chat endpoint returned status %d: %s", ErrInterpretation, resp.StatusCode, string(body))
	}

	var completion chatResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return types.ParsedQuery{}, fmt.Errorf("%w: failed to decode response: %v", ErrInterpretation, err)
	}
	if len(completion.Choices) == 0 {
		return types.ParsedQuery{}, fmt.Errorf("%w: no choices in response", ErrInterpretation)
	}

	content := completion.Choices[0].Message.Content
	parsed, err := parseQueryPayload(extractJSON(content))
	if err != nil {
		s.logger.Warn("unusable interpretation payload",
			zap.String("content", content),
			zap.Error(err))
		return types.ParsedQuery{}, fmt.Errorf("%w: %v", ErrInterpretation, err)
	}
	return parsed, nil
}

// extractJSON cuts the first "{" through the last "}" out of content,
// tolerating models that wrap the object in prose or code fences. When
// no braces are present the content is returned whole.
func extractJSON(content string) string {
	start := strings.Index(content, "{")
	end := strings.LastIndex(content, "}")
	if start >= 0 && end > start {
		return content[start : end+1]
	}
	return content
}

// parseQueryPayload decodes the model's answer. The model is untrusted,
// so every field is re-validated and coerced independently.
func parseQueryPayload(payload string) (types.ParsedQuery, error) {
	var raw struct {
		DietaryRestrictions json.RawMessage `json:"dietary_restrictions"`
		MealTypes           json.RawMessage `json:"meal_types"`
		MealCount           json.RawMessage `json:"meal_count"`
		OwnedIngredients    json.RawMessage `json:"owned_ingredients"`
		RequiredIngredients json.RawMessage `json:"required_ingredients"`
		CuisinePreferences  json.RawMessage `json:"cuisine_preferences"`
		ProteinRequirement  json.RawMessage `json:"protein_requirement"`
		OtherRequirements   json.RawMessage `json:"other_requirements"`
	}
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return types.ParsedQuery{}, fmt.Errorf("failed to parse payload: %v", err)
	}

	return types.ParsedQuery{
		DietaryRestrictions: normalizedList(raw.DietaryRestrictions),
		MealTypes:           normalizedList(raw.MealTypes),
		MealCount:           positiveCount(raw.MealCount),
		OwnedIngredients:    normalizedList(raw.OwnedIngredients),
		RequiredIngredients: normalizedList(raw.RequiredIngredients),
		CuisinePreferences:  normalizedList(raw.CuisinePreferences),
		ProteinRequirement:  positiveIntOrNil(raw.ProteinRequirement),
		OtherRequirements:   stringOrEmpty(raw.OtherRequirements),
	}, nil
}

// normalizedList coerces a raw JSON value into a normalized string list.
// Anything that is not a list degrades to an empty list; blank entries
// are dropped.
func normalizedList(raw json.RawMessage) []string {
	out := []string{}
	if len(raw) == 0 {
		return out
	}

	var items []string
	if err := json.Unmarshal(raw, &items); err != nil {
		// Mixed arrays keep their string members.
		var loose []any
		if err := json.Unmarshal(raw, &loose); err != nil {
			return out
		}
		for _, v := range loose {
			if s, ok := v.(string); ok {
				items = append(items, s)
			}
		}
	}

	for _, item := range items {
		if name := models.NormalizeName(item); name != "" {
			out = append(out, name)
		}
	}
	return out
}

// positiveCount reads an integer meal count, accepting numbers and
// numeric strings. Absent, invalid or non-positive values default to 1.
func positiveCount(raw json.RawMessage) int {
	if n, ok := looseInt(raw); ok && n >= 1 {
		return n
	}
	return 1
}

// positiveIntOrNil reads an optional positive integer such as a protein
// requirement; anything else becomes nil.
func positiveIntOrNil(raw json.RawMessage) *int {
	if n, ok := looseInt(raw); ok && n > 0 {
		return &n
	}
	return nil
}

func looseInt(raw json.RawMessage) (int, bool) {
	if len(raw) == 0 {
		return 0, false
	}
	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return int(num), true
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(str)); err == nil {
			return n, true
		}
	}
	return 0, false
}

func stringOrEmpty(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return ""
	}
	return strings.TrimSpace(str)
}
