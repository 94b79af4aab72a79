package controllers

import (
	"net/http"

	"github.com/Suchith04/Calorie-Catcher/services"

	"github.com/gin-gonic/gin"
)

func GetProfile(c *gin.Context) {
	profile, err := services.GetUserProfile(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type UpdateProfileInput struct {
	DailyCalorieTarget float64 `json:"dailyCalorieTarget" binding:"required"`
}

func UpdateProfile(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := services.UpdateDailyTarget(currentUserID(c), input.DailyCalorieTarget)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile updated successfully",
		"user": gin.H{
			"dailyCalorieTarget":    user.DailyCalorieTarget,
			"adjustedCalorieTarget": user.AdjustedCalorieTarget,
		},
	})
}
