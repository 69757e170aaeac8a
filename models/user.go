package models

import "time"

// Users are anonymous: created on first session (or on first touch of the
// shared demo identity), identified only by their token.
type User struct {
	UserID             string `gorm:"primaryKey;type:varchar(64)"`
	DailyCalorieTarget int    `gorm:"default:2000"`
	Timezone           string `gorm:"default:UTC"`
	CreatedAt          time.Time
}

type Session struct {
	SessionID string `gorm:"primaryKey;type:varchar(64)"`
	UserID    string `gorm:"index;not null"`
	Token     string `gorm:"uniqueIndex;not null"`
	CreatedAt time.Time
	ExpiresAt time.Time
}
