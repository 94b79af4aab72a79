package controllers

import (
	"fmt"
	"net/http"

	"github.com/Suchith04/Calorie-Catcher/config"
	"github.com/Suchith04/Calorie-Catcher/services"

	"github.com/gin-gonic/gin"
)

type LogActivityInput struct {
	ActivityType   string  `json:"activityType" binding:"required"`
	Duration       int     `json:"duration" binding:"required"`
	CaloriesBurned float64 `json:"caloriesBurned" binding:"required"`
	Notes          string  `json:"notes"`
}

func LogActivity(c *gin.Context) {
	var input LogActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc := services.NewActivityService(config.DB, services.NewDebtService(config.DB), Hub)
	activity, remainingDebt, err := svc.LogActivity(
		currentUserID(c), input.ActivityType, input.Duration, input.CaloriesBurned, input.Notes,
	)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":       "Activity logged successfully",
		"activity":      activity,
		"debtRepaid":    activity.DebtRepaid,
		"remainingDebt": remainingDebt,
		"summary":       fmt.Sprintf("Great job! You've repaid %.0f calories from your debt.", activity.DebtRepaid),
	})
}

func ListActivities(c *gin.Context) {
	svc := services.NewActivityService(config.DB, services.NewDebtService(config.DB), Hub)
	activities, err := svc.ListActivities(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, activities)
}
