package services

import (
	"errors"
	"math"
	"sort"
	"time"

	"github.com/Suchith04/Calorie-Catcher/models"

	"gorm.io/gorm"
)

type StatsService struct{ db *gorm.DB }

func NewStatsService(db *gorm.DB) *StatsService { return &StatsService{db: db} }

// ---------- Dashboard ----------

type TodayStats struct {
	Calories  float64 `json:"calories"`
	MealCount int64   `json:"mealCount"`
	Target    float64 `json:"target"`
	Remaining float64 `json:"remaining"`
}

type WeekStats struct {
	AvgCalories          float64 `json:"avgCalories"`
	DaysTracked          int     `json:"daysTracked"`
	TotalBurned          float64 `json:"totalBurned"`
	TotalExerciseMinutes int64   `json:"totalExerciseMinutes"`
	ActivitiesLogged     int64   `json:"activitiesLogged"`
}

type UserStats struct {
	Streak     int     `json:"streak"`
	TotalMeals int     `json:"totalMeals"`
	Debt       float64 `json:"debt"`
}

type DashboardStats struct {
	Today TodayStats `json:"today"`
	Week  WeekStats  `json:"week"`
	User  UserStats  `json:"user"`
}

func (s *StatsService) DashboardStats(userID uint) (*DashboardStats, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	now := time.Now()

	// today's meals
	var today struct {
		Calories  float64
		MealCount int64
	}
	if err := s.db.Model(&models.Meal{}).
		Where("user_id = ? AND ate_at BETWEEN ? AND ?", userID, dayStart(now), dayEnd(now)).
		Select("COALESCE(SUM(calories), 0) AS calories, COUNT(*) AS meal_count").
		Scan(&today).Error; err != nil {
		return nil, err
	}

	// trailing 7 days of meals, averaged per tracked day
	weekStart := now.AddDate(0, 0, -7)
	var weekMeals []models.Meal
	if err := s.db.
		Where("user_id = ? AND ate_at >= ?", userID, weekStart).
		Find(&weekMeals).Error; err != nil {
		return nil, err
	}
	perDay := map[string]float64{}
	for _, m := range weekMeals {
		perDay[m.AteAt.Format("2006-01-02")] += m.Calories
	}
	var weekTotal float64
	for _, v := range perDay {
		weekTotal += v
	}
	avgCalories := 0.0
	if len(perDay) > 0 {
		avgCalories = math.Round(weekTotal / float64(len(perDay)))
	}

	// trailing 7 days of activities
	var week struct {
		TotalBurned  float64
		TotalMinutes int64
		Count        int64
	}
	if err := s.db.Model(&models.Activity{}).
		Where("user_id = ? AND performed_at >= ?", userID, weekStart).
		Select("COALESCE(SUM(calories_burned), 0) AS total_burned, COALESCE(SUM(duration), 0) AS total_minutes, COUNT(*) AS count").
		Scan(&week).Error; err != nil {
		return nil, err
	}

	return &DashboardStats{
		Today: TodayStats{
			Calories:  today.Calories,
			MealCount: today.MealCount,
			Target:    user.AdjustedCalorieTarget,
			Remaining: user.AdjustedCalorieTarget - today.Calories,
		},
		Week: WeekStats{
			AvgCalories:          avgCalories,
			DaysTracked:          len(perDay),
			TotalBurned:          week.TotalBurned,
			TotalExerciseMinutes: week.TotalMinutes,
			ActivitiesLogged:     week.Count,
		},
		User: UserStats{
			Streak:     user.CurrentStreak,
			TotalMeals: user.TotalMeals,
			Debt:       user.CalorieDebt,
		},
	}, nil
}

// ---------- Meal distribution ----------

type MealTypeStats struct {
	MealType      string  `json:"mealType"`
	Count         int     `json:"count"`
	AvgCalories   float64 `json:"avgCalories"`
	TotalCalories float64 `json:"totalCalories"`
}

// MealDistribution groups the trailing window's meals by type.
func (s *StatsService) MealDistribution(userID uint, days int) ([]MealTypeStats, error) {
	if days <= 0 {
		days = 30
	}
	startDate := time.Now().AddDate(0, 0, -days)

	var meals []models.Meal
	if err := s.db.
		Where("user_id = ? AND ate_at >= ?", userID, startDate).
		Find(&meals).Error; err != nil {
		return nil, err
	}

	byType := map[string]*MealTypeStats{}
	for _, m := range meals {
		st := byType[m.MealType]
		if st == nil {
			st = &MealTypeStats{MealType: m.MealType}
			byType[m.MealType] = st
		}
		st.Count++
		st.TotalCalories += m.Calories
	}

	out := make([]MealTypeStats, 0, len(byType))
	for _, st := range byType {
		st.AvgCalories = round2(st.TotalCalories / float64(st.Count))
		out = append(out, *st)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MealType < out[j].MealType })
	return out, nil
}

// ---------- Calorie trend ----------

type DailyCalories struct {
	Date     string  `json:"date"` // yyyy-mm-dd
	Calories float64 `json:"calories"`
}

// CalorieTrend sums calories per calendar day over the trailing window,
// ascending by date. Days with no meals are omitted.
func (s *StatsService) CalorieTrend(userID uint, days int) ([]DailyCalories, error) {
	if days <= 0 {
		days = 14
	}
	startDate := time.Now().AddDate(0, 0, -days)

	var meals []models.Meal
	if err := s.db.
		Where("user_id = ? AND ate_at >= ?", userID, startDate).
		Find(&meals).Error; err != nil {
		return nil, err
	}

	perDay := map[string]float64{}
	for _, m := range meals {
		perDay[m.AteAt.Format("2006-01-02")] += m.Calories
	}

	out := make([]DailyCalories, 0, len(perDay))
	for d, c := range perDay {
		out = append(out, DailyCalories{Date: d, Calories: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
