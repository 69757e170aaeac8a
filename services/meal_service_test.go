package services

import (
	"testing"

	"neocal-backend/models"
	"neocal-backend/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMealService(t *testing.T) *MealService {
	t.Helper()
	db := newTestDB(t)
	createTestUser(t, db, "u1", 2000)
	return NewMealService(db, NewNutritionTable(), nil, logger.Nop())
}

func TestAssembleMealFromLookup(t *testing.T) {
	svc := newTestMealService(t)

	candidates := []FoodCandidate{
		{Name: "rice", Grams: 200, ModelLabel: "rice", Confidence: 0.7},
	}
	meal, err := svc.AssembleMeal("u1", candidates, "text", "200g of rice")
	require.NoError(t, err)

	// rice is 130 kcal per 100g
	require.Len(t, meal.FoodItems, 1)
	assert.InDelta(t, 260, meal.FoodItems[0].Calories, 0.001)
	assert.InDelta(t, 260, meal.TotalCalories, 0.001)
	assert.Equal(t, "text", meal.Source)
	assert.Equal(t, 0.7, meal.ConfidenceScore)
	assert.Contains(t, meal.MealID, "meal_")
}

func TestAssembleMealMacrosPassThrough(t *testing.T) {
	svc := newTestMealService(t)

	// Barcode candidates already carry final macros; lookup must not run.
	candidates := []FoodCandidate{{
		Name:       "Coca Cola 330ml",
		Grams:      660,
		ModelLabel: "coca_cola_330ml",
		Confidence: 0.95,
		HasMacros:  true,
		Calories:   280,
		CarbsG:     78,
	}}
	meal, err := svc.AssembleMeal("u1", candidates, "barcode", "Barcode: 012345678901, x2")
	require.NoError(t, err)

	require.Len(t, meal.FoodItems, 1)
	assert.Equal(t, "Coca Cola 330ml", meal.FoodItems[0].Name)
	assert.Equal(t, 660.0, meal.FoodItems[0].Grams)
	assert.InDelta(t, 280, meal.TotalCalories, 0.001)
	assert.InDelta(t, 78, meal.TotalCarbsG, 0.001)
	assert.InDelta(t, 0, meal.TotalProteinG, 0.001)
}

func TestAssembleMealTotalsAndConfidence(t *testing.T) {
	svc := newTestMealService(t)

	candidates := []FoodCandidate{
		{Name: "rice", Grams: 100, Confidence: 0.9},
		{Name: "grilled chicken", Grams: 100, Confidence: 0.5},
		{Name: "broccoli", Grams: 100, Confidence: 0.7},
	}
	meal, err := svc.AssembleMeal("u1", candidates, "text", "lunch")
	require.NoError(t, err)

	var sum float64
	for _, item := range meal.FoodItems {
		sum += item.Calories
	}
	assert.InDelta(t, sum, meal.TotalCalories, 0.001)
	assert.InDelta(t, 0.7, meal.ConfidenceScore, 0.001)
	assert.GreaterOrEqual(t, meal.ConfidenceScore, 0.0)
	assert.LessOrEqual(t, meal.ConfidenceScore, 1.0)
}

func TestAssembleMealRoundTrip(t *testing.T) {
	svc := newTestMealService(t)

	meal, err := svc.AssembleMeal("u1", []FoodCandidate{
		{Name: "pizza", Grams: 300, Confidence: 0.8},
		{Name: "salad", Grams: 150, Confidence: 0.6},
	}, "image", "/tmp/lunch.jpg")
	require.NoError(t, err)

	fetched, err := svc.GetMeal("u1", meal.MealID)
	require.NoError(t, err)
	require.Len(t, fetched.FoodItems, 2)
	assert.Equal(t, meal.TotalCalories, fetched.TotalCalories)
	assert.Equal(t, "image", fetched.Source)
	assert.Equal(t, "/tmp/lunch.jpg", fetched.OriginalInput)
}

func TestAssembleMealRejectsEmpty(t *testing.T) {
	svc := newTestMealService(t)

	_, err := svc.AssembleMeal("u1", nil, "text", "")
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestAssembleMealRejectsNonPositiveGrams(t *testing.T) {
	svc := newTestMealService(t)

	_, err := svc.AssembleMeal("u1", []FoodCandidate{
		{Name: "rice", Grams: 0, Confidence: 0.7},
	}, "text", "")
	assert.ErrorIs(t, err, ErrNoCandidates)
}

func TestGetMealEnforcesOwnership(t *testing.T) {
	svc := newTestMealService(t)

	meal, err := svc.AssembleMeal("u1", []FoodCandidate{
		{Name: "rice", Grams: 100, Confidence: 0.7},
	}, "text", "")
	require.NoError(t, err)

	_, err = svc.GetMeal("someone-else", meal.MealID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetMealNotFound(t *testing.T) {
	svc := newTestMealService(t)

	_, err := svc.GetMeal("u1", "meal_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListMealsForDate(t *testing.T) {
	svc := newTestMealService(t)

	_, err := svc.AssembleMeal("u1", []FoodCandidate{
		{Name: "rice", Grams: 100, Confidence: 0.7},
	}, "text", "")
	require.NoError(t, err)

	today := nowDateString()
	meals, err := svc.ListMealsForDate("u1", today)
	require.NoError(t, err)
	assert.Len(t, meals, 1)

	// Empty day is an empty list, not an error.
	meals, err = svc.ListMealsForDate("u1", "2000-01-01")
	require.NoError(t, err)
	assert.Empty(t, meals)
}

func TestListMealsForDateInvalidDate(t *testing.T) {
	svc := newTestMealService(t)

	_, err := svc.ListMealsForDate("u1", "not-a-date")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, err = svc.ListMealsForDate("u1", "2026-13-45")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestDeleteMealCascades(t *testing.T) {
	db := newTestDB(t)
	createTestUser(t, db, "u1", 2000)
	svc := NewMealService(db, NewNutritionTable(), nil, logger.Nop())

	meal, err := svc.AssembleMeal("u1", []FoodCandidate{
		{Name: "rice", Grams: 100, Confidence: 0.7},
		{Name: "fish", Grams: 150, Confidence: 0.8},
	}, "text", "")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteMeal("u1", meal.MealID))

	_, err = svc.GetMeal("u1", meal.MealID)
	assert.ErrorIs(t, err, ErrNotFound)

	var count int64
	require.NoError(t, db.Model(&models.FoodItem{}).Where("meal_id = ?", meal.MealID).Count(&count).Error)
	assert.Zero(t, count)

	// Deleting again is a not-found, not a silent success.
	assert.ErrorIs(t, svc.DeleteMeal("u1", meal.MealID), ErrNotFound)
}
