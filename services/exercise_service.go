package services

import (
	"fmt"
	"time"

	"neocal-backend/models"
	"neocal-backend/utils"

	"gorm.io/gorm"
)

type ExerciseService struct {
	db *gorm.DB
}

func NewExerciseService(db *gorm.DB) *ExerciseService {
	return &ExerciseService{db: db}
}

func (s *ExerciseService) Create(userID, name string, durationMinutes, caloriesBurned int, ts *time.Time, dateStr string) (*models.ExerciseLog, error) {
	if durationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration_minutes", ErrInvalidAmount)
	}
	if caloriesBurned < 0 {
		return nil, fmt.Errorf("%w: calories_burned", ErrInvalidAmount)
	}
	resolved, err := resolveTimestamp(ts, dateStr)
	if err != nil {
		return nil, err
	}
	log := &models.ExerciseLog{
		ExerciseLogID:   utils.GenerateID("exercise"),
		UserID:          userID,
		Name:            name,
		DurationMinutes: durationMinutes,
		CaloriesBurned:  caloriesBurned,
		Timestamp:       resolved,
	}
	if err := s.db.Create(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}

func (s *ExerciseService) ListForDate(userID, dateStr string) ([]models.ExerciseLog, error) {
	start, end, err := DayBounds(dateStr)
	if err != nil {
		return nil, err
	}
	var logs []models.ExerciseLog
	err = s.db.
		Where("user_id = ? AND timestamp >= ? AND timestamp <= ?", userID, start, end).
		Order("timestamp").
		Find(&logs).Error
	return logs, err
}

func (s *ExerciseService) Delete(userID, exerciseLogID string) error {
	res := s.db.Where("exercise_log_id = ? AND user_id = ?", exerciseLogID, userID).Delete(&models.ExerciseLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
