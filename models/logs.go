package models

import "time"

type WaterLog struct {
	WaterLogID string    `gorm:"primaryKey;type:varchar(64)" json:"water_log_id"`
	UserID     string    `gorm:"index;not null" json:"-"`
	AmountML   int       `gorm:"not null" json:"amount"`
	Timestamp  time.Time `gorm:"index;not null" json:"timestamp"`
	CreatedAt  time.Time `json:"-"`
}

type ExerciseLog struct {
	ExerciseLogID   string    `gorm:"primaryKey;type:varchar(64)" json:"exercise_log_id"`
	UserID          string    `gorm:"index;not null" json:"-"`
	Name            string    `gorm:"not null" json:"name"`
	DurationMinutes int       `gorm:"not null" json:"duration"`
	CaloriesBurned  int       `gorm:"not null" json:"calories_burned"`
	Timestamp       time.Time `gorm:"index;not null" json:"timestamp"`
	CreatedAt       time.Time `json:"-"`
}

type WeightLog struct {
	WeightLogID string    `gorm:"primaryKey;type:varchar(64)" json:"weight_log_id"`
	UserID      string    `gorm:"index;not null" json:"-"`
	WeightKG    float64   `gorm:"not null" json:"weight"`
	Timestamp   time.Time `gorm:"index;not null" json:"timestamp"`
	CreatedAt   time.Time `json:"-"`
}
