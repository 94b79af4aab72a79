package services

import (
	"testing"
	"time"

	"github.com/Suchith04/Calorie-Catcher/models"

	"github.com/stretchr/testify/require"
)

func TestDashboardStats(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 2000)
	user.CalorieDebt = 450
	user.CurrentStreak = 3
	user.TotalMeals = 12
	require.NoError(t, db.Save(user).Error)

	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	for _, m := range []models.Meal{
		{UserID: user.ID, ImageURL: "u", AteAt: now, Calories: 400, MealType: models.MealTypeBreakfast},
		{UserID: user.ID, ImageURL: "u", AteAt: now, Calories: 600, MealType: models.MealTypeLunch},
		{UserID: user.ID, ImageURL: "u", AteAt: yesterday, Calories: 1000, MealType: models.MealTypeDinner},
	} {
		require.NoError(t, db.Create(&m).Error)
	}
	require.NoError(t, db.Create(&models.Activity{
		UserID: user.ID, ActivityType: "running", Duration: 30, CaloriesBurned: 350, PerformedAt: now,
	}).Error)

	stats, err := NewStatsService(db).DashboardStats(user.ID)
	require.NoError(t, err)

	require.Equal(t, 1000.0, stats.Today.Calories)
	require.Equal(t, int64(2), stats.Today.MealCount)
	require.Equal(t, 2000.0, stats.Today.Target)
	require.Equal(t, 1000.0, stats.Today.Remaining)

	// two tracked days: 1000 today, 1000 yesterday
	require.Equal(t, 1000.0, stats.Week.AvgCalories)
	require.Equal(t, 2, stats.Week.DaysTracked)
	require.Equal(t, 350.0, stats.Week.TotalBurned)
	require.Equal(t, int64(30), stats.Week.TotalExerciseMinutes)
	require.Equal(t, int64(1), stats.Week.ActivitiesLogged)

	require.Equal(t, 3, stats.User.Streak)
	require.Equal(t, 12, stats.User.TotalMeals)
	require.Equal(t, 450.0, stats.User.Debt)
}

func TestMealDistribution(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 2000)

	now := time.Now()
	for _, m := range []models.Meal{
		{UserID: user.ID, ImageURL: "u", AteAt: now, Calories: 300, MealType: models.MealTypeBreakfast},
		{UserID: user.ID, ImageURL: "u", AteAt: now.AddDate(0, 0, -2), Calories: 500, MealType: models.MealTypeBreakfast},
		{UserID: user.ID, ImageURL: "u", AteAt: now, Calories: 800, MealType: models.MealTypeDinner},
		// outside the 30-day window
		{UserID: user.ID, ImageURL: "u", AteAt: now.AddDate(0, 0, -40), Calories: 999, MealType: models.MealTypeDinner},
	} {
		require.NoError(t, db.Create(&m).Error)
	}

	dist, err := NewStatsService(db).MealDistribution(user.ID, 30)
	require.NoError(t, err)
	require.Len(t, dist, 2)

	// sorted by meal type
	require.Equal(t, models.MealTypeBreakfast, dist[0].MealType)
	require.Equal(t, 2, dist[0].Count)
	require.Equal(t, 800.0, dist[0].TotalCalories)
	require.Equal(t, 400.0, dist[0].AvgCalories)

	require.Equal(t, models.MealTypeDinner, dist[1].MealType)
	require.Equal(t, 1, dist[1].Count)
	require.Equal(t, 800.0, dist[1].TotalCalories)
}

func TestCalorieTrendAscending(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 2000)

	now := time.Now()
	for _, m := range []models.Meal{
		{UserID: user.ID, ImageURL: "u", AteAt: now, Calories: 700},
		{UserID: user.ID, ImageURL: "u", AteAt: now, Calories: 300},
		{UserID: user.ID, ImageURL: "u", AteAt: now.AddDate(0, 0, -3), Calories: 1200},
	} {
		require.NoError(t, db.Create(&m).Error)
	}

	trend, err := NewStatsService(db).CalorieTrend(user.ID, 14)
	require.NoError(t, err)
	require.Len(t, trend, 2)
	require.Equal(t, now.AddDate(0, 0, -3).Format("2006-01-02"), trend[0].Date)
	require.Equal(t, 1200.0, trend[0].Calories)
	require.Equal(t, now.Format("2006-01-02"), trend[1].Date)
	require.Equal(t, 1000.0, trend[1].Calories)
}

func TestStatsDefaultsAndUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewStatsService(db)

	_, err := svc.DashboardStats(7)
	require.ErrorIs(t, err, ErrUserNotFound)

	user := createTestUser(t, db, 2000)
	trend, err := svc.CalorieTrend(user.ID, 0) // defaults to 14 days
	require.NoError(t, err)
	require.Empty(t, trend)
	dist, err := svc.MealDistribution(user.ID, -1) // defaults to 30 days
	require.NoError(t, err)
	require.Empty(t, dist)
}
