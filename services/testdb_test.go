package services

import (
	"testing"

	"github.com/Suchith04/Calorie-Catcher/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.FoodItem{},
		&models.Activity{},
		&models.Penalty{},
	))
	return db
}

func createTestUser(t *testing.T, db *gorm.DB, target float64) *models.User {
	t.Helper()
	user := &models.User{
		Name:                  "Test User",
		Email:                 "test@example.com",
		Password:              "irrelevant",
		DailyCalorieTarget:    target,
		AdjustedCalorieTarget: target,
		LastSleepHours:        8,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}
