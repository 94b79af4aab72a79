package controllers

import (
	"net/http"

	"github.com/Suchith04/Calorie-Catcher/config"
	"github.com/Suchith04/Calorie-Catcher/services"

	"github.com/gin-gonic/gin"
)

type UpdateSleepInput struct {
	SleepHours *float64 `json:"sleepHours" binding:"required"`
}

func UpdateSleep(c *gin.Context) {
	var input UpdateSleepInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	hours := *input.SleepHours
	if hours < 0 || hours > 24 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sleep hours"})
		return
	}

	result, err := services.NewSleepService(config.DB).UpdateSleep(currentUserID(c), hours)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"sleepHours":     result.SleepHours,
		"sleepDeficit":   result.SleepDeficit,
		"originalTarget": result.OriginalTarget,
		"adjustedTarget": result.AdjustedTarget,
		"adjustment":     result.Adjustment,
		"recommendation": result.Recommendation,
		"message":        "Sleep updated successfully",
	})
}
