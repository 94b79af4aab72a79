package services

import (
	"context"
	"testing"
	"time"

	"github.com/Suchith04/Calorie-Catcher/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubAnalyzer struct {
	analysis *MealAnalysis
	err      error
}

func (s stubAnalyzer) AnalyzeMealImage(_ context.Context, _ string) (*MealAnalysis, error) {
	return s.analysis, s.err
}

type stubUploader struct{}

func (stubUploader) UploadBase64Image(_ context.Context, _, _ string) (string, error) {
	return "https://cdn.example.com/meals/test.jpg", nil
}

func newTestMealService(db *gorm.DB, analysis *MealAnalysis) *MealService {
	return NewMealService(
		db,
		stubAnalyzer{analysis: analysis},
		stubUploader{},
		NewDebtService(db),
		NewPenaltyService(db),
		nil,
		nil,
	)
}

func analysisWithCalories(calories float64) *MealAnalysis {
	return &MealAnalysis{
		TotalCalories: calories,
		FoodItems: []AnalyzedFoodItem{
			{Name: "Pasta", Portion: "1 plate", Calories: calories},
		},
		Macronutrients: Macronutrients{Protein: 20, Carbs: 80, Fats: 15},
		HealthNotes:    "High in carbs.",
		Confidence:     "Medium",
		FullText:       "analysis text",
	}
}

func TestAddMealWithinTarget(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 2000)
	svc := newTestMealService(db, analysisWithCalories(700))

	result, err := svc.AddMealFromImage(context.Background(), user.ID, "aGVsbG8=", "")
	require.NoError(t, err)
	require.True(t, result.WithinTarget)
	require.Zero(t, result.DebtAdded)
	require.Nil(t, result.Penalty)
	require.Equal(t, 700.0, result.Balance.Consumed)
	require.Equal(t, 1300.0, result.Balance.Remaining)

	require.Equal(t, "https://cdn.example.com/meals/test.jpg", result.Meal.ImageURL)
	require.Len(t, result.Meal.Items, 1)
	require.Equal(t, 0.0, result.Meal.ContributedToDebt)
	require.True(t, result.Meal.WithinTarget)

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	require.Equal(t, 1, fresh.TotalMeals)
	require.Equal(t, 0.0, fresh.CalorieDebt)
}

func TestAddMealOverTargetCreatesDebtAndPenalty(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1500)
	// day already has 1200 committed calories
	require.NoError(t, db.Create(&models.Meal{
		UserID: user.ID, ImageURL: "u", AteAt: time.Now(), Calories: 1200,
	}).Error)

	svc := newTestMealService(db, analysisWithCalories(900))
	result, err := svc.AddMealFromImage(context.Background(), user.ID, "aGVsbG8=", models.MealTypeDinner)
	require.NoError(t, err)

	// (1200 + 900) - 1500 = 600 over
	require.False(t, result.WithinTarget)
	require.Equal(t, 600.0, result.DebtAdded)
	require.Equal(t, 600.0, result.TotalDebt)
	require.Equal(t, 600.0, result.Meal.ContributedToDebt)
	require.False(t, result.Meal.WithinTarget)

	require.NotNil(t, result.Penalty)
	require.Equal(t, models.PenaltyCharity, result.Penalty.PenaltyType)
	require.Equal(t, 30.0, result.Penalty.Amount) // ceil(600/100)*5

	var fresh models.User
	require.NoError(t, db.First(&fresh, user.ID).Error)
	require.Equal(t, 600.0, fresh.CalorieDebt)
}

func TestAddMealSmallOverageNoPenalty(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 1000)
	svc := newTestMealService(db, analysisWithCalories(1300))

	result, err := svc.AddMealFromImage(context.Background(), user.ID, "aGVsbG8=", models.MealTypeLunch)
	require.NoError(t, err)
	require.False(t, result.WithinTarget)
	require.Equal(t, 300.0, result.DebtAdded)
	require.Nil(t, result.Penalty) // under the 500 threshold
}

func TestAddMealValidation(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 2000)
	svc := newTestMealService(db, analysisWithCalories(500))

	_, err := svc.AddMealFromImage(context.Background(), user.ID, "", "")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddMealFromImage(context.Background(), user.ID, "aGVsbG8=", "brunch")
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddMealFromImage(context.Background(), 999, "aGVsbG8=", "")
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestAddMealAnalyzerFailurePropagates(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 2000)
	svc := NewMealService(
		db,
		stubAnalyzer{err: &AnalysisParseError{RawText: "gibberish"}},
		stubUploader{},
		NewDebtService(db),
		NewPenaltyService(db),
		nil,
		nil,
	)

	_, err := svc.AddMealFromImage(context.Background(), user.ID, "aGVsbG8=", "")
	var parseErr *AnalysisParseError
	require.ErrorAs(t, err, &parseErr)

	// nothing was persisted for the failed upload
	var count int64
	require.NoError(t, db.Model(&models.Meal{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestInferMealType(t *testing.T) {
	day := func(hour int) time.Time {
		return time.Date(2026, 9, 1, hour, 30, 0, 0, time.Local)
	}
	require.Equal(t, models.MealTypeBreakfast, inferMealType(day(7)))
	require.Equal(t, models.MealTypeLunch, inferMealType(day(12)))
	require.Equal(t, models.MealTypeDinner, inferMealType(day(19)))
	require.Equal(t, models.MealTypeSnack, inferMealType(day(23)))
	require.Equal(t, models.MealTypeSnack, inferMealType(day(2)))
}

func TestListMealsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	user := createTestUser(t, db, 2000)
	now := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, db.Create(&models.Meal{
			UserID: user.ID, ImageURL: "u", AteAt: now.Add(-time.Duration(i) * time.Hour), Calories: 100,
		}).Error)
	}

	svc := newTestMealService(db, nil)
	meals, err := svc.ListMeals(user.ID)
	require.NoError(t, err)
	require.Len(t, meals, 3)
	require.True(t, meals[0].AteAt.After(meals[1].AteAt))
	require.True(t, meals[1].AteAt.After(meals[2].AteAt))
}
