package services

import (
	"context"
	"strings"
	"testing"

	"neocal-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newOfflineRecognizer has no providers wired, so every mode exercises its
// deterministic fallback path.
func newOfflineRecognizer() *RecognizerService {
	return NewRecognizerService(logger.Nop(), nil, nil, "")
}

func TestRecognizeTextKeywordFallback(t *testing.T) {
	rec := newOfflineRecognizer()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single keyword", "a big bowl of rice", []string{"rice"}},
		{"egg maps to omelette", "two eggs for breakfast", []string{"omelette"}},
		{"multiple keywords", "burger and fries with salad", []string{"burger", "fries", "salad"}},
		{"no keyword hits generic", "something entirely unrecognizable", []string{"mixed meal"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			foods := rec.RecognizeText(context.Background(), tt.input)
			require.Len(t, foods, len(tt.want))
			for i, name := range tt.want {
				assert.Equal(t, name, foods[i].Name)
			}
		})
	}
}

func TestRecognizeTextRiceScenario(t *testing.T) {
	rec := newOfflineRecognizer()

	foods := rec.RecognizeText(context.Background(), "just some rice please")
	require.Len(t, foods, 1)
	assert.Equal(t, "rice", foods[0].Name)
	assert.Equal(t, 200.0, foods[0].Grams)
	assert.Equal(t, 0.7, foods[0].Confidence)
}

func TestRecognizeTextGenericConfidence(t *testing.T) {
	rec := newOfflineRecognizer()

	foods := rec.RecognizeText(context.Background(), "mystery stew")
	require.Len(t, foods, 1)
	assert.Equal(t, 300.0, foods[0].Grams)
	assert.Equal(t, 0.6, foods[0].Confidence)
}

func TestRecognizeTextCap(t *testing.T) {
	rec := newOfflineRecognizer()

	foods := rec.RecognizeText(context.Background(),
		"pizza burger fries salad rice chicken fish pasta")
	assert.Len(t, foods, 5)
}

func TestRecognizeTextNeverEmpty(t *testing.T) {
	rec := newOfflineRecognizer()

	for _, input := range []string{"", "   ", "zzz"} {
		foods := rec.RecognizeText(context.Background(), input)
		assert.NotEmpty(t, foods, "input %q", input)
	}
}

func TestRecognizeImageFilenameFallback(t *testing.T) {
	rec := newOfflineRecognizer()

	tests := []struct {
		ref   string
		name  string
		grams float64
	}{
		{"/tmp/my-pizza-shot.jpg", "pizza", 300},
		{"https://cdn.example.com/SALAD.png", "salad", 250},
		{"/uploads/burger_01.jpg", "burger", 280},
		{"/uploads/fish-and-chips.jpg", "fries", 200},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			foods := rec.RecognizeImage(context.Background(), tt.ref)
			require.Len(t, foods, 1)
			assert.Equal(t, tt.name, foods[0].Name)
			assert.Equal(t, tt.grams, foods[0].Grams)
		})
	}
}

func TestRecognizeImageRotatingDefault(t *testing.T) {
	rec := newOfflineRecognizer()

	// No filename hint at all: result must be one of the default meals.
	// Which one depends on the clock, by design.
	foods := rec.RecognizeImage(context.Background(), "/tmp/upload-1234.jpg")
	require.Len(t, foods, 1)

	names := make([]string, len(defaultMeals))
	for i, m := range defaultMeals {
		names[i] = m.Name
	}
	assert.Contains(t, names, foods[0].Name)
	assert.Greater(t, foods[0].Grams, 0.0)
}

func TestRecognizeBarcodeKnownProduct(t *testing.T) {
	rec := newOfflineRecognizer()

	c := rec.RecognizeBarcode("012345678901", 1)
	assert.Equal(t, "Coca Cola 330ml", c.Name)
	assert.True(t, c.HasMacros)
	assert.Equal(t, 140.0, c.Calories)
	assert.Equal(t, 330.0, c.Grams)
	assert.Equal(t, 0.95, c.Confidence)
	assert.Equal(t, "coca_cola_330ml", c.ModelLabel)
}

func TestRecognizeBarcodeServingsScaling(t *testing.T) {
	rec := newOfflineRecognizer()

	one := rec.RecognizeBarcode("012345678901", 1)
	for _, n := range []int{2, 3, 5} {
		c := rec.RecognizeBarcode("012345678901", n)
		assert.Equal(t, one.Calories*float64(n), c.Calories)
		assert.Equal(t, one.Grams*float64(n), c.Grams)
		assert.Equal(t, one.CarbsG*float64(n), c.CarbsG)
	}

	// servings below 1 is treated as 1
	c := rec.RecognizeBarcode("012345678901", 0)
	assert.Equal(t, one.Calories, c.Calories)
}

func TestRecognizeBarcodeUnknownProduct(t *testing.T) {
	rec := newOfflineRecognizer()

	c := rec.RecognizeBarcode("999999999999", 2)
	assert.True(t, strings.HasPrefix(c.Name, "Unknown product"))
	assert.Equal(t, 0.4, c.Confidence)
	assert.Equal(t, 400.0, c.Calories)
	assert.Equal(t, 200.0, c.Grams)
	assert.Equal(t, "unknown_product", c.ModelLabel)
}

func TestCandidatesFromLabels(t *testing.T) {
	results := []hfClassification{
		{Label: "Pizza", Score: 0.81},
		{Label: "salad", Score: 0.30},
		{Label: "soup", Score: 0.20}, // below threshold
		{Label: "rice", Score: 0.999},
	}
	foods := candidatesFromLabels(results)
	require.Len(t, foods, 3)
	assert.Equal(t, "pizza", foods[0].Name)
	assert.Equal(t, 250.0, foods[0].Grams)
	assert.Equal(t, 0.99, foods[2].Confidence) // capped
}

func TestCandidatesFromLabelsCap(t *testing.T) {
	var results []hfClassification
	for _, l := range imageLabels {
		results = append(results, hfClassification{Label: l, Score: 0.5})
	}
	assert.Len(t, candidatesFromLabels(results), 5)
}

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"bare object", `{"foods":[]}`, `{"foods":[]}`, true},
		{"surrounded by prose", "Sure! Here you go: {\"a\":1} hope that helps", `{"a":1}`, true},
		{"nested objects", `x {"a":{"b":2}} y`, `{"a":{"b":2}}`, true},
		{"brace inside string", `{"a":"}"}`, `{"a":"}"}`, true},
		{"unbalanced", `{"a":1`, "", false},
		{"no object", "nothing here", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := extractJSON(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
