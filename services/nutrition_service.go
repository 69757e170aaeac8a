package services

import "strings"

// NutritionEntry holds macros per 100g (or, after scaling, per portion).
type NutritionEntry struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// defaultNutrition is returned when a food matches nothing in the table.
// An unknown food is not an error; the estimate is just generic.
var defaultNutrition = NutritionEntry{Calories: 250, ProteinG: 10, CarbsG: 35, FatG: 8}

// Per-100g profiles, keyed by normalized name. Duplicate aliases
// (chicken/chicken_breast/...) are intentional: they make the exact-match
// path hit more often than the substring scan.
var nutritionTable = map[string]NutritionEntry{
	"chicken_grilled":  {165, 31, 0, 3.6},
	"chicken_breast":   {165, 31, 0, 3.6},
	"chicken":          {165, 31, 0, 3.6},
	"grilled_chicken":  {165, 31, 0, 3.6},
	"rice_white":       {130, 2.7, 28, 0.3},
	"rice":             {130, 2.7, 28, 0.3},
	"broccoli":         {34, 2.8, 7, 0.4},
	"carrot":           {41, 0.9, 10, 0.2},
	"apple":            {52, 0.3, 14, 0.2},
	"banana":           {89, 1.1, 23, 0.3},
	"orange":           {47, 0.9, 12, 0.3},
	"salmon":           {208, 20, 0, 13},
	"tuna":             {132, 29, 0, 1.3},
	"egg":              {155, 13, 1.1, 11},
	"almonds":          {579, 21, 22, 50},
	"peanut_butter":    {588, 25, 20, 50},
	"yogurt_plain":     {59, 10, 3.6, 0.4},
	"yogurt":           {59, 10, 3.6, 0.4},
	"milk":             {61, 3.2, 4.8, 3.3},
	"cheese_cheddar":   {402, 23, 3.3, 33},
	"cheese":           {402, 23, 3.3, 33},
	"bread":            {265, 9, 49, 3.3},
	"olive_oil":        {884, 0, 0, 100},
	"butter":           {717, 0.9, 0.1, 81},
	"sweet_potato":     {86, 1.6, 20, 0.1},
	"spinach":          {23, 2.9, 3.6, 0.4},
	"tomato":           {18, 0.9, 3.9, 0.2},
	"pasta":            {131, 5, 25, 1.1},
	"pizza":            {285, 12, 36, 10},
	"mixed_vegetables": {35, 2, 8, 0.3},
	"vegetables":       {35, 2, 8, 0.3},
	"burger":           {540, 25, 45, 28},
	"fries":            {365, 3.4, 48, 17},
	"dressing":         {440, 1, 2, 48},
	"meal":             {300, 15, 35, 10},
	"mixed_meal":       {300, 15, 35, 10},
}

// NutritionTable is the static food-name → per-100g macro mapping. It is
// immutable after construction and safe for unlimited concurrent reads.
type NutritionTable struct {
	entries map[string]NutritionEntry
}

func NewNutritionTable() *NutritionTable {
	return &NutritionTable{entries: nutritionTable}
}

func normalizeFoodKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}

// Lookup resolves a food name to its per-100g profile: exact key match
// first, then a bidirectional substring scan (a stored key containing the
// query, or contained in it, matches). When several keys substring-match,
// which one wins follows map iteration order and is therefore not
// deterministic; callers must not rely on a particular tie-break. A total
// miss returns the generic default entry, never an error.
func (t *NutritionTable) Lookup(foodName string) NutritionEntry {
	key := normalizeFoodKey(foodName)

	if entry, ok := t.entries[key]; ok {
		return entry
	}

	for stored, entry := range t.entries {
		if strings.Contains(key, stored) || strings.Contains(stored, key) {
			return entry
		}
	}

	return defaultNutrition
}

// Scale converts a per-100g entry to the given portion size. grams = 0
// yields an all-zero entry; negative grams is a caller contract violation
// rejected before this point.
func (t *NutritionTable) Scale(entry NutritionEntry, grams float64) NutritionEntry {
	f := grams / 100
	return NutritionEntry{
		Calories: entry.Calories * f,
		ProteinG: entry.ProteinG * f,
		CarbsG:   entry.CarbsG * f,
		FatG:     entry.FatG * f,
	}
}
