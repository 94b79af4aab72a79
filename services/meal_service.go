// services/meal_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Suchith04/Calorie-Catcher/models"

	"gorm.io/gorm"
)

// MealAnalyzer turns a photo into a nutrition record. Satisfied by
// *VisionService; tests substitute a stub.
type MealAnalyzer interface {
	AnalyzeMealImage(ctx context.Context, base64Image string) (*MealAnalysis, error)
}

// ImageUploader stores a photo durably and returns its public URL.
type ImageUploader interface {
	UploadBase64Image(ctx context.Context, base64Data, keyPrefix string) (string, error)
}

// PenaltyNotifier delivers an out-of-band notice for a freshly created
// penalty. Optional; a nil notifier skips notification.
type PenaltyNotifier interface {
	NotifyPenalty(email string, penalty *models.Penalty) error
}

type MealService struct {
	db        *gorm.DB
	analyzer  MealAnalyzer
	uploader  ImageUploader
	debtSvc   *DebtService
	penalties *PenaltyService
	hub       *RealtimeHub
	notifier  PenaltyNotifier
}

func NewMealService(
	db *gorm.DB,
	analyzer MealAnalyzer,
	uploader ImageUploader,
	debtSvc *DebtService,
	penalties *PenaltyService,
	hub *RealtimeHub,
	notifier PenaltyNotifier,
) *MealService {
	return &MealService{
		db:        db,
		analyzer:  analyzer,
		uploader:  uploader,
		debtSvc:   debtSvc,
		penalties: penalties,
		hub:       hub,
		notifier:  notifier,
	}
}

type BalanceAfter struct {
	Consumed   float64 `json:"consumed"`
	Target     float64 `json:"target"`
	Remaining  float64 `json:"remaining"`
	Percentage float64 `json:"percentage"`
}

type MealResult struct {
	Meal         *models.Meal    `json:"meal"`
	Analysis     *MealAnalysis   `json:"analysis"`
	Balance      BalanceAfter    `json:"balance"`
	WithinTarget bool            `json:"withinTarget"`
	DebtAdded    float64         `json:"debtAdded,omitempty"`
	TotalDebt    float64         `json:"totalDebt,omitempty"`
	Penalty      *models.Penalty `json:"penalty,omitempty"`
}

// AddMealFromImage runs the whole upload pipeline: store the photo,
// analyze it, check the day's balance, persist the meal with its debt
// contribution fixed at this moment, then update debt and consult the
// penalty engine when the day went over target.
func (s *MealService) AddMealFromImage(ctx context.Context, userID uint, base64Image, mealType string) (*MealResult, error) {
	if strings.TrimSpace(base64Image) == "" {
		return nil, fmt.Errorf("%w: image is required", ErrValidation)
	}
	if mealType != "" && !models.ValidMealType(mealType) {
		return nil, fmt.Errorf("%w: unknown meal type %q", ErrValidation, mealType)
	}

	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	imageURL, err := s.uploader.UploadBase64Image(ctx, base64Image, fmt.Sprintf("meals/%d", userID))
	if err != nil {
		return nil, err
	}

	analysis, err := s.analyzer.AnalyzeMealImage(ctx, base64Image)
	if err != nil {
		return nil, err
	}
	calories := analysis.TotalCalories

	now := time.Now()
	balance, err := s.debtSvc.DailyBalance(userID, now)
	if err != nil {
		return nil, err
	}

	// This meal's debt contribution is computed once, from the balance at
	// the moment of insertion.
	contributed := 0.0
	withinTarget := true
	if balance.Consumed+calories > user.AdjustedCalorieTarget {
		contributed = math.Max(0, (balance.Consumed+calories)-user.AdjustedCalorieTarget)
		withinTarget = false
	}

	if mealType == "" {
		mealType = inferMealType(now)
	}

	meal := models.Meal{
		UserID:            userID,
		ImageURL:          imageURL,
		AteAt:             now,
		Calories:          calories,
		MealType:          mealType,
		Protein:           analysis.Macronutrients.Protein,
		Carbs:             analysis.Macronutrients.Carbs,
		Fats:              analysis.Macronutrients.Fats,
		ContributedToDebt: contributed,
		WithinTarget:      withinTarget,
		AnalysisText:      analysis.FullText,
		Confidence:        analysis.Confidence,
		HealthNotes:       analysis.HealthNotes,
	}
	for _, it := range analysis.FoodItems {
		meal.Items = append(meal.Items, models.FoodItem{
			Name:     it.Name,
			Portion:  it.Portion,
			Calories: it.Calories,
		})
	}
	if err := s.db.Create(&meal).Error; err != nil {
		return nil, err
	}

	user.TotalMeals++
	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}

	result := &MealResult{
		Analysis:     analysis,
		WithinTarget: withinTarget,
	}

	if !withinTarget {
		totalDebt, err := s.debtSvc.IncreaseDebt(userID, contributed)
		if err != nil {
			return nil, err
		}
		result.DebtAdded = contributed
		result.TotalDebt = totalDebt

		penalty, err := s.penalties.CreatePenalty(userID, contributed)
		if err != nil {
			return nil, err
		}
		result.Penalty = penalty

		if s.hub != nil {
			s.hub.Broadcast(userID, "debt.updated", map[string]any{"totalDebt": totalDebt, "added": contributed})
			if penalty != nil {
				s.hub.Broadcast(userID, "penalty.created", penalty)
			}
		}
		if penalty != nil && s.notifier != nil {
			// best-effort: a failed notice never fails the upload
			_ = s.notifier.NotifyPenalty(user.Email, penalty)
		}
	}

	consumedAfter := balance.Consumed + calories
	result.Balance = BalanceAfter{
		Consumed:  consumedAfter,
		Target:    user.AdjustedCalorieTarget,
		Remaining: user.AdjustedCalorieTarget - consumedAfter,
	}
	if user.AdjustedCalorieTarget > 0 {
		result.Balance.Percentage = math.Round((consumedAfter / user.AdjustedCalorieTarget) * 100)
	}

	if s.hub != nil {
		s.hub.Broadcast(userID, "meal.logged", map[string]any{"mealId": meal.ID, "calories": calories})
	}

	// reload with items
	var populated models.Meal
	if err := s.db.Preload("Items").First(&populated, meal.ID).Error; err != nil {
		return nil, err
	}
	result.Meal = &populated
	return result, nil
}

func (s *MealService) ListMeals(userID uint) ([]models.Meal, error) {
	var meals []models.Meal
	err := s.db.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("ate_at DESC").
		Limit(50).
		Find(&meals).Error
	return meals, err
}

// inferMealType classifies by local hour when the client did not say.
func inferMealType(t time.Time) string {
	switch hour := t.Hour(); {
	case hour >= 5 && hour < 11:
		return models.MealTypeBreakfast
	case hour >= 11 && hour < 16:
		return models.MealTypeLunch
	case hour >= 16 && hour < 22:
		return models.MealTypeDinner
	default:
		return models.MealTypeSnack
	}
}
