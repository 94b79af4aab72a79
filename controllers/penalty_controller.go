package controllers

import (
	"net/http"
	"strconv"

	"github.com/Suchith04/Calorie-Catcher/config"
	"github.com/Suchith04/Calorie-Catcher/services"

	"github.com/gin-gonic/gin"
)

func penaltyID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid penalty id"})
		return 0, false
	}
	return uint(id), true
}

func CompletePenalty(c *gin.Context) {
	id, ok := penaltyID(c)
	if !ok {
		return
	}

	penalty, err := services.NewPenaltyService(config.DB).CompletePenalty(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Penalty marked as completed",
		"penalty": penalty,
	})
}

func ActivatePenalty(c *gin.Context) {
	id, ok := penaltyID(c)
	if !ok {
		return
	}

	penalty, err := services.NewPenaltyService(config.DB).ActivatePenalty(currentUserID(c), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Penalty activated",
		"penalty": penalty,
	})
}

func PendingPenalties(c *gin.Context) {
	penalties, err := services.NewPenaltyService(config.DB).PendingPenalties(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, penalties)
}

func ActivePenalties(c *gin.Context) {
	result, err := services.NewPenaltyService(config.DB).CheckPenalties(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
