package services

import (
	"fmt"

	"github.com/Suchith04/Calorie-Catcher/config"
	"github.com/Suchith04/Calorie-Catcher/models"
)

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	return map[string]interface{}{
		"id":                    user.ID,
		"name":                  user.Name,
		"email":                 user.Email,
		"daily_calorie_target":  user.DailyCalorieTarget,
		"adjusted_calorie_target": user.AdjustedCalorieTarget,
		"calorie_debt":          user.CalorieDebt,
		"last_sleep_hours":      user.LastSleepHours,
		"current_streak":        user.CurrentStreak,
		"longest_streak":        user.LongestStreak,
		"total_meals":           user.TotalMeals,
		"created_at":            user.CreatedAt,
	}, nil
}

// UpdateDailyTarget sets a new base target and resets the adjusted target
// to it; the next sleep update re-applies any deficit.
func UpdateDailyTarget(userID uint, dailyCalorieTarget float64) (*models.User, error) {
	if dailyCalorieTarget <= 0 {
		return nil, fmt.Errorf("%w: daily calorie target must be positive", ErrValidation)
	}

	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, ErrUserNotFound
	}

	user.DailyCalorieTarget = dailyCalorieTarget
	user.AdjustedCalorieTarget = dailyCalorieTarget
	if err := config.DB.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
