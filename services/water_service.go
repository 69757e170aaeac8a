package services

import (
	"fmt"
	"time"

	"neocal-backend/models"
	"neocal-backend/utils"

	"gorm.io/gorm"
)

type WaterService struct {
	db *gorm.DB
}

func NewWaterService(db *gorm.DB) *WaterService {
	return &WaterService{db: db}
}

// resolveTimestamp picks the explicit timestamp if given, else midnight of
// the given date, else now. Shared by the three log services.
func resolveTimestamp(ts *time.Time, dateStr string) (time.Time, error) {
	if ts != nil {
		return ts.UTC(), nil
	}
	if dateStr != "" {
		start, _, err := DayBounds(dateStr)
		if err != nil {
			return time.Time{}, err
		}
		return start, nil
	}
	return time.Now().UTC(), nil
}

func (s *WaterService) Create(userID string, amountML int, ts *time.Time, dateStr string) (*models.WaterLog, error) {
	if amountML <= 0 {
		return nil, fmt.Errorf("%w: amount_ml", ErrInvalidAmount)
	}
	resolved, err := resolveTimestamp(ts, dateStr)
	if err != nil {
		return nil, err
	}
	log := &models.WaterLog{
		WaterLogID: utils.GenerateID("water"),
		UserID:     userID,
		AmountML:   amountML,
		Timestamp:  resolved,
	}
	if err := s.db.Create(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}

func (s *WaterService) ListForDate(userID, dateStr string) ([]models.WaterLog, error) {
	start, end, err := DayBounds(dateStr)
	if err != nil {
		return nil, err
	}
	var logs []models.WaterLog
	err = s.db.
		Where("user_id = ? AND timestamp >= ? AND timestamp <= ?", userID, start, end).
		Order("timestamp").
		Find(&logs).Error
	return logs, err
}

func (s *WaterService) Delete(userID, waterLogID string) error {
	res := s.db.Where("water_log_id = ? AND user_id = ?", waterLogID, userID).Delete(&models.WaterLog{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
