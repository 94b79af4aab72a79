package services

import (
	"errors"
	"math"
	"time"

	"github.com/Suchith04/Calorie-Catcher/models"

	"gorm.io/gorm"
)

type DebtService struct{ db *gorm.DB }

func NewDebtService(db *gorm.DB) *DebtService { return &DebtService{db: db} }

// DailyBalance compares the calories already committed for one calendar day
// against the user's adjusted target. It never sees in-flight meals: a
// caller deciding whether a new meal pushes the day over adds that meal's
// calories to Consumed itself.
type DailyBalance struct {
	Consumed     float64 `json:"consumed"`
	Target       float64 `json:"target"`
	Balance      float64 `json:"balance"`
	IsOverTarget bool    `json:"isOverTarget"`
}

func (s *DebtService) DailyBalance(userID uint, date time.Time) (*DailyBalance, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}

	var consumed float64
	if err := s.db.Model(&models.Meal{}).
		Where("user_id = ? AND ate_at BETWEEN ? AND ?", userID, dayStart(date), dayEnd(date)).
		Select("COALESCE(SUM(calories), 0)").
		Scan(&consumed).Error; err != nil {
		return nil, err
	}

	balance := consumed - user.AdjustedCalorieTarget
	return &DailyBalance{
		Consumed:     consumed,
		Target:       user.AdjustedCalorieTarget,
		Balance:      balance,
		IsOverTarget: balance > 0,
	}, nil
}

// IncreaseDebt adds an overage to the user's running calorie debt and
// returns the new total.
func (s *DebtService) IncreaseDebt(userID uint, amount float64) (float64, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return 0, err
	}
	user.CalorieDebt += amount
	if err := s.db.Save(user).Error; err != nil {
		return 0, err
	}
	return user.CalorieDebt, nil
}

// RepayDebt subtracts burned calories from the debt, clamped at zero.
// Over-repayment carries nothing forward.
func (s *DebtService) RepayDebt(userID uint, amount float64) (float64, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return 0, err
	}
	user.CalorieDebt = math.Max(0, user.CalorieDebt-amount)
	if err := s.db.Save(user).Error; err != nil {
		return 0, err
	}
	return user.CalorieDebt, nil
}

type ExerciseSuggestion struct {
	Name           string  `json:"name"`
	CaloriesPerMin float64 `json:"caloriesPerMin"`
	Duration       int     `json:"duration"` // minutes to clear the debt
}

// ClearanceExercises estimates how long common exercises would take to
// burn off the given debt.
func (s *DebtService) ClearanceExercises(calorieDebt float64) []ExerciseSuggestion {
	rates := []struct {
		name string
		rate float64
	}{
		{"Walking (moderate pace)", 4},
		{"Running (6 mph)", 10},
		{"Cycling (moderate)", 8},
		{"Swimming", 9},
		{"Yoga", 3},
	}
	out := make([]ExerciseSuggestion, 0, len(rates))
	for _, r := range rates {
		out = append(out, ExerciseSuggestion{
			Name:           r.name,
			CaloriesPerMin: r.rate,
			Duration:       int(math.Ceil(calorieDebt / r.rate)),
		})
	}
	return out
}

type DebtSummary struct {
	CurrentDebt        float64              `json:"currentDebt"`
	TodayBalance       *DailyBalance        `json:"todayBalance"`
	SuggestedExercises []ExerciseSuggestion `json:"suggestedExercises"`
	Status             string               `json:"status"` // clear|manageable|high
}

func (s *DebtService) Summary(userID uint) (*DebtSummary, error) {
	user, err := s.findUser(userID)
	if err != nil {
		return nil, err
	}
	balance, err := s.DailyBalance(userID, time.Now())
	if err != nil {
		return nil, err
	}

	status := "manageable"
	switch {
	case user.CalorieDebt == 0:
		status = "clear"
	case user.CalorieDebt > 1000:
		status = "high"
	}

	return &DebtSummary{
		CurrentDebt:        user.CalorieDebt,
		TodayBalance:       balance,
		SuggestedExercises: s.ClearanceExercises(user.CalorieDebt),
		Status:             status,
	}, nil
}

func (s *DebtService) findUser(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
