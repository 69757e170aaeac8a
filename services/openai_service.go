package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// OpenAIService wraps the chat-completions API for the two generative
// recognition paths: free-text meal parsing and vision analysis with full
// per-item macros. Both prompt for strict JSON and tolerate chatter around
// it via extractJSON.
type OpenAIService struct {
	client      *openai.Client
	textModel   string
	visionModel string
}

func NewOpenAIService(apiKey, textModel, visionModel string) *OpenAIService {
	return &OpenAIService{
		client:      openai.NewClient(apiKey),
		textModel:   textModel,
		visionModel: visionModel,
	}
}

type parsedFoods struct {
	Foods []struct {
		Name       string  `json:"name"`
		Grams      float64 `json:"grams"`
		Calories   float64 `json:"calories"`
		ProteinG   float64 `json:"protein_g"`
		CarbsG     float64 `json:"carbs_g"`
		FatG       float64 `json:"fat_g"`
		Confidence float64 `json:"confidence"`
	} `json:"foods"`
}

const textMealPrompt = "You are a nutrition assistant. Extract foods and approximate grams " +
	"from this description and return ONLY valid JSON with the format:\n" +
	"{ \"foods\": [ { \"name\": \"...\", \"grams\": 120 }, ... ] }\n\n" +
	"Description: %s\n\nJSON:"

// ParseTextMeal asks the model for name+grams pairs. Macros are not
// requested here; the nutrition table resolves them later.
func (s *OpenAIService) ParseTextMeal(ctx context.Context, description string) ([]FoodCandidate, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.textModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a helpful and precise nutrition parsing assistant.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(textMealPrompt, description),
			},
		},
		MaxTokens:   160,
		Temperature: 0,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from model")
	}

	var parsed parsedFoods
	raw, ok := extractJSON(resp.Choices[0].Message.Content)
	if !ok || json.Unmarshal([]byte(raw), &parsed) != nil || len(parsed.Foods) == 0 {
		return nil, fmt.Errorf("model output contained no usable JSON")
	}

	foods := make([]FoodCandidate, 0, 5)
	for _, item := range parsed.Foods {
		if len(foods) == 5 {
			break
		}
		name := strings.ToLower(item.Name)
		if name == "" {
			name = "food"
		}
		grams := item.Grams
		if grams == 0 {
			grams = 150
		}
		foods = append(foods, FoodCandidate{
			Name:       name,
			Grams:      clamp(grams, 10, 1000),
			ModelLabel: strings.ReplaceAll(name, " ", "_"),
			Confidence: 0.8,
		})
	}
	return foods, nil
}

const visionMealPrompt = "You are a nutrition assistant. Analyze the provided image and return ONLY a single " +
	"valid JSON object with the key `foods` mapping to a list of items. For each food item " +
	"return: `name` (string), `grams` (number, approximate weight in grams), `calories` " +
	"(number, kcal for that item), `protein_g`, `carbs_g`, `fat_g` (numbers), and " +
	"`confidence` (0.0-1.0). If you are unsure about exact macros, make a best-effort " +
	"estimate based on typical portion sizes. Use grams as the canonical size unit."

// ParseImageMeal sends the image to the vision model and expects items with
// macros already computed, so the assembler can skip its own lookup.
func (s *OpenAIService) ParseImageMeal(ctx context.Context, imageRef string) ([]FoodCandidate, error) {
	data, err := readImage(imageRef)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.visionModel,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a helpful and precise nutrition parsing assistant.",
			},
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: visionMealPrompt},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL: "data:image/jpeg;base64," + base64.StdEncoding.EncodeToString(data),
						},
					},
				},
			},
		},
		MaxTokens:   700,
		Temperature: 0,
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no response from model")
	}

	var parsed parsedFoods
	raw, ok := extractJSON(resp.Choices[0].Message.Content)
	if !ok || json.Unmarshal([]byte(raw), &parsed) != nil || len(parsed.Foods) == 0 {
		return nil, fmt.Errorf("vision output contained no usable JSON")
	}

	foods := make([]FoodCandidate, 0, 10)
	for _, item := range parsed.Foods {
		if len(foods) == 10 {
			break
		}
		name := strings.ToLower(item.Name)
		if name == "" {
			name = "food"
		}
		grams := item.Grams
		if grams == 0 {
			grams = 150
		}
		confidence := item.Confidence
		if confidence == 0 {
			confidence = 0.75
		}
		foods = append(foods, FoodCandidate{
			Name:       name,
			Grams:      clamp(grams, 5, 2000),
			ModelLabel: strings.ReplaceAll(name, " ", "_"),
			Confidence: clamp(confidence, 0, 1),
			HasMacros:  true,
			Calories:   item.Calories,
			ProteinG:   item.ProteinG,
			CarbsG:     item.CarbsG,
			FatG:       item.FatG,
		})
	}
	return foods, nil
}

// extractJSON returns the first balanced {...} block in s. Models regularly
// wrap their JSON in prose or code fences; brace-depth scanning is enough to
// cut the object out without caring what surrounds it.
func extractJSON(s string) (string, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return "", false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1], true
			}
		}
	}
	return "", false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
