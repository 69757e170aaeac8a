package services

import (
	"errors"
	"fmt"
	"time"

	"neocal-backend/models"
	"neocal-backend/pkg/logger"
	"neocal-backend/utils"

	"gorm.io/gorm"
)

// MealService assembles recognized candidates into persisted meals and
// serves meal queries. Recognition happens before this service is invoked,
// so no provider call ever runs inside a transaction.
type MealService struct {
	db  *gorm.DB
	nut *NutritionTable
	hub *RealtimeHub
	log *logger.Logger
}

func NewMealService(db *gorm.DB, nut *NutritionTable, hub *RealtimeHub, log *logger.Logger) *MealService {
	return &MealService{db: db, nut: nut, hub: hub, log: log}
}

// AssembleMeal resolves nutrition for each candidate, persists one FoodItem
// per candidate plus the owning Meal in a single transaction, and returns
// the stored meal. Candidates carrying known macros (vision/barcode paths)
// are taken as final; the rest go through lookup+scale.
//
// An empty candidate list is a contract violation upstream (the recognizer
// guarantees non-empty output) and is rejected so the confidence mean
// stays defined.
func (s *MealService) AssembleMeal(userID string, candidates []FoodCandidate, source, originalInput string) (*models.Meal, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}
	for _, c := range candidates {
		if c.Grams <= 0 {
			return nil, fmt.Errorf("%w: grams must be positive", ErrNoCandidates)
		}
	}

	meal := &models.Meal{
		MealID:        utils.GenerateID("meal"),
		UserID:        userID,
		Timestamp:     time.Now().UTC(),
		Source:        source,
		OriginalInput: originalInput,
	}

	var confidenceSum float64
	for _, c := range candidates {
		var nutrition NutritionEntry
		if c.HasMacros {
			nutrition = NutritionEntry{Calories: c.Calories, ProteinG: c.ProteinG, CarbsG: c.CarbsG, FatG: c.FatG}
		} else {
			nutrition = s.nut.Scale(s.nut.Lookup(c.Name), c.Grams)
		}

		modelLabel := c.ModelLabel
		if modelLabel == "" {
			modelLabel = c.Name
		}
		meal.FoodItems = append(meal.FoodItems, models.FoodItem{
			FoodItemID: utils.GenerateID("food"),
			MealID:     meal.MealID,
			Name:       c.Name,
			Grams:      c.Grams,
			Calories:   nutrition.Calories,
			ProteinG:   nutrition.ProteinG,
			CarbsG:     nutrition.CarbsG,
			FatG:       nutrition.FatG,
			ModelLabel: modelLabel,
			Confidence: c.Confidence,
		})

		meal.TotalCalories += nutrition.Calories
		meal.TotalProteinG += nutrition.ProteinG
		meal.TotalCarbsG += nutrition.CarbsG
		meal.TotalFatG += nutrition.FatG
		confidenceSum += c.Confidence
	}
	meal.ConfidenceScore = confidenceSum / float64(len(candidates))

	err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(meal).Error
	})
	if err != nil {
		return nil, fmt.Errorf("failed to persist meal: %w", err)
	}

	mealsLoggedTotal.WithLabelValues(source).Inc()
	s.log.Infow("meal logged",
		"meal_id", meal.MealID,
		"user_id", userID,
		"source", source,
		"items", len(meal.FoodItems),
		"calories", meal.TotalCalories,
	)
	if s.hub != nil {
		s.hub.Broadcast(userID, Event{Kind: "meal.logged", Data: meal})
	}
	return meal, nil
}

func (s *MealService) GetMeal(userID, mealID string) (*models.Meal, error) {
	var meal models.Meal
	err := s.db.
		Preload("FoodItems").
		Where("meal_id = ? AND user_id = ?", mealID, userID).
		First(&meal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &meal, nil
}

// ListMealsForDate returns the user's meals for one calendar day in
// timestamp order. ErrInvalidDate on a malformed date string; a day with no
// meals is an empty list, not an error.
func (s *MealService) ListMealsForDate(userID, dateStr string) ([]models.Meal, error) {
	start, end, err := DayBounds(dateStr)
	if err != nil {
		return nil, err
	}
	return s.listMealsBetween(userID, start, end)
}

func (s *MealService) ListMealsForRange(userID, startStr, endStr string) ([]models.Meal, error) {
	start, end, err := RangeBounds(startStr, endStr)
	if err != nil {
		return nil, err
	}
	return s.listMealsBetween(userID, start, end)
}

func (s *MealService) listMealsBetween(userID string, start, end time.Time) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Preload("FoodItems").
		Where("user_id = ? AND timestamp >= ? AND timestamp <= ?", userID, start, end).
		Order("timestamp").
		Find(&meals).Error
	return meals, err
}

// DeleteMeal removes a meal and, via cascade, its food items. Ownership is
// part of the lookup, not a separate check.
func (s *MealService) DeleteMeal(userID, mealID string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var meal models.Meal
		if err := tx.
			Where("meal_id = ? AND user_id = ?", mealID, userID).
			First(&meal).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := tx.Where("meal_id = ?", mealID).Delete(&models.FoodItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&meal).Error
	})
}
