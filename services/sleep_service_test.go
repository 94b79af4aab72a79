package services

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUpdateSleepDeficitAdjustment(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 2000)
	svc := NewSleepService(db)

	result, err := svc.UpdateSleep(user.ID, 5)
	require.NoError(t, err)
	require.Equal(t, 3.0, result.SleepDeficit)
	require.Equal(t, 300.0, result.Adjustment)
	require.Equal(t, 2000.0, result.OriginalTarget)
	require.Equal(t, 1700.0, result.AdjustedTarget)

	stats, err := svc.SleepStats(user.ID)
	require.NoError(t, err)
	require.Equal(t, 5.0, stats.LastSleepHours)
	require.Equal(t, 1700.0, stats.CurrentTarget)
	require.True(t, stats.IsAdjusted)
}

func TestUpdateSleepFullNight(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 2000)
	svc := NewSleepService(db)

	for _, hours := range []float64{8, 9, 12} {
		result, err := svc.UpdateSleep(user.ID, hours)
		require.NoError(t, err)
		require.Equal(t, 0.0, result.SleepDeficit)
		require.Equal(t, 2000.0, result.AdjustedTarget)
	}
}

func TestUpdateSleepNoFloor(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 500)
	svc := NewSleepService(db)

	// severe deprivation against a low base target goes negative
	result, err := svc.UpdateSleep(user.ID, 0)
	require.NoError(t, err)
	require.Equal(t, -300.0, result.AdjustedTarget)
}

func TestSleepRecommendationBands(t *testing.T) {
	require.Contains(t, sleepRecommendation(8), "unchanged")
	require.Contains(t, sleepRecommendation(6.5), "Moderate")
	require.Contains(t, sleepRecommendation(4), "Significant")
	require.Contains(t, sleepRecommendation(3.9), "Severe")
}

func TestSleepQualityBands(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 2000)
	svc := NewSleepService(db)

	cases := []struct {
		hours   float64
		quality string
	}{
		{7.5, "Good"},
		{5, "Fair"},
		{4.9, "Poor"},
	}
	for _, tc := range cases {
		_, err := svc.UpdateSleep(user.ID, tc.hours)
		require.NoError(t, err)
		stats, err := svc.SleepStats(user.ID)
		require.NoError(t, err)
		require.Equal(t, tc.quality, stats.SleepQuality)
	}
}

func TestSleepUnknownUser(t *testing.T) {
	svc := NewSleepService(newTestDB(t))
	_, err := svc.UpdateSleep(42, 7)
	require.ErrorIs(t, err, ErrUserNotFound)
	_, err = svc.SleepStats(42)
	require.ErrorIs(t, err, ErrUserNotFound)
}
