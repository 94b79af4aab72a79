package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/Suchith04/Calorie-Catcher/services"

	"github.com/gin-gonic/gin"
)

// Hub is shared by every handler; main never touches it.
var Hub = services.NewRealtimeHub()

func currentUserID(c *gin.Context) uint {
	return c.GetUint("userID")
}

// respondError maps service errors onto HTTP statuses. Raw model output
// from a parse failure is logged for diagnosis, never echoed to the client.
func respondError(c *gin.Context, err error) {
	var parseErr *services.AnalysisParseError
	switch {
	case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrPenaltyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.As(err, &parseErr):
		log.Printf("analysis parse failure, raw model output: %s", parseErr.RawText)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not analyze the meal image"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
