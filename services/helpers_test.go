package services

import (
	"testing"
	"time"

	"neocal-backend/config"
	"neocal-backend/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func nowDateString() string {
	return time.Now().UTC().Format("2006-01-02")
}

func createTestUser(t *testing.T, db *gorm.DB, userID string, target int) *models.User {
	t.Helper()
	user := &models.User{UserID: userID, DailyCalorieTarget: target, Timezone: "UTC"}
	require.NoError(t, db.Create(user).Error)
	return user
}
