package controllers

import (
	"net/http"
	"strconv"

	"github.com/Suchith04/Calorie-Catcher/config"
	"github.com/Suchith04/Calorie-Catcher/services"

	"github.com/gin-gonic/gin"
)

// Dashboard is the composite read-view the SPA loads on entry: stats,
// debt summary, sleep stats and pending penalties in one request.
func Dashboard(c *gin.Context) {
	userID := currentUserID(c)
	db := config.DB

	stats, err := services.NewStatsService(db).DashboardStats(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	debt, err := services.NewDebtService(db).Summary(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	sleep, err := services.NewSleepService(db).SleepStats(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	penalties, err := services.NewPenaltyService(db).PendingPenalties(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":     stats,
		"debt":      debt,
		"sleep":     sleep,
		"penalties": penalties,
	})
}

func CalorieTrend(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "14"))
	trend, err := services.NewStatsService(config.DB).CalorieTrend(currentUserID(c), days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, trend)
}

func MealDistribution(c *gin.Context) {
	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))
	distribution, err := services.NewStatsService(config.DB).MealDistribution(currentUserID(c), days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, distribution)
}
