package services

import (
	"errors"

	"neocal-backend/models"

	"gorm.io/gorm"
)

type Macros struct {
	ProteinG float64 `json:"protein_g"`
	CarbsG   float64 `json:"carbs_g"`
	FatG     float64 `json:"fat_g"`
}

// DailySummary is derived on demand, never persisted.
type DailySummary struct {
	Date              string  `json:"date"`
	TotalCalories     float64 `json:"total_calories"`
	TotalMacros       Macros  `json:"total_macros"`
	WaterML           int     `json:"water_ml"`
	ExerciseMinutes   int     `json:"exercise_minutes"`
	RemainingCalories float64 `json:"remaining_calories"`
}

type SummaryService struct {
	db *gorm.DB
}

func NewSummaryService(db *gorm.DB) *SummaryService {
	return &SummaryService{db: db}
}

// GetDailySummary sums the user's meals, water, and exercise for one
// calendar day against their calorie target. Remaining may go negative; a
// day with no records is a valid zero summary. Only a malformed date (or a
// missing user) is an error.
func (s *SummaryService) GetDailySummary(userID, dateStr string) (*DailySummary, error) {
	start, end, err := DayBounds(dateStr)
	if err != nil {
		return nil, err
	}

	var user models.User
	if err := s.db.First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var meals []models.Meal
	if err := s.db.
		Where("user_id = ? AND timestamp >= ? AND timestamp <= ?", userID, start, end).
		Find(&meals).Error; err != nil {
		return nil, err
	}

	summary := &DailySummary{Date: dateStr}
	for _, m := range meals {
		summary.TotalCalories += m.TotalCalories
		summary.TotalMacros.ProteinG += m.TotalProteinG
		summary.TotalMacros.CarbsG += m.TotalCarbsG
		summary.TotalMacros.FatG += m.TotalFatG
	}

	var waterLogs []models.WaterLog
	if err := s.db.
		Where("user_id = ? AND timestamp >= ? AND timestamp <= ?", userID, start, end).
		Find(&waterLogs).Error; err != nil {
		return nil, err
	}
	for _, w := range waterLogs {
		summary.WaterML += w.AmountML
	}

	var exerciseLogs []models.ExerciseLog
	if err := s.db.
		Where("user_id = ? AND timestamp >= ? AND timestamp <= ?", userID, start, end).
		Find(&exerciseLogs).Error; err != nil {
		return nil, err
	}
	for _, e := range exerciseLogs {
		summary.ExerciseMinutes += e.DurationMinutes
	}

	summary.RemainingCalories = float64(user.DailyCalorieTarget) - summary.TotalCalories
	return summary, nil
}
