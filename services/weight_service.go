package services

import (
	"fmt"
	"time"

	"neocal-backend/models"
	"neocal-backend/utils"

	"gorm.io/gorm"
)

type WeightService struct {
	db *gorm.DB
}

func NewWeightService(db *gorm.DB) *WeightService {
	return &WeightService{db: db}
}

func (s *WeightService) Create(userID string, weightKG float64, ts *time.Time, dateStr string) (*models.WeightLog, error) {
	if weightKG <= 0 {
		return nil, fmt.Errorf("%w: weight_kg", ErrInvalidAmount)
	}
	resolved, err := resolveTimestamp(ts, dateStr)
	if err != nil {
		return nil, err
	}
	log := &models.WeightLog{
		WeightLogID: utils.GenerateID("weight"),
		UserID:      userID,
		WeightKG:    weightKG,
		Timestamp:   resolved,
	}
	if err := s.db.Create(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}

// List returns weight logs in timestamp order, optionally bounded by start
// and/or end dates (inclusive).
func (s *WeightService) List(userID, startStr, endStr string) ([]models.WeightLog, error) {
	q := s.db.Where("user_id = ?", userID)
	if startStr != "" {
		start, _, err := DayBounds(startStr)
		if err != nil {
			return nil, err
		}
		q = q.Where("timestamp >= ?", start)
	}
	if endStr != "" {
		_, end, err := DayBounds(endStr)
		if err != nil {
			return nil, err
		}
		q = q.Where("timestamp <= ?", end)
	}
	var logs []models.WeightLog
	err := q.Order("timestamp").Find(&logs).Error
	return logs, err
}

func (s *WeightService) Delete(userID, weightLogID string) error {
	res := s.db.Where("weight_log_id = ? AND user_id = ?", weightLogID, userID).Delete(&models.WeightLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
