package controllers

import (
	"net/http"

	"github.com/Suchith04/Calorie-Catcher/config"
	"github.com/Suchith04/Calorie-Catcher/services"
	"github.com/Suchith04/Calorie-Catcher/utils"

	"github.com/gin-gonic/gin"
)

func newMealService() *services.MealService {
	db := config.DB
	return services.NewMealService(
		db,
		services.NewVisionService(),
		utils.S3Uploader{},
		services.NewDebtService(db),
		services.NewPenaltyService(db),
		Hub,
		utils.SESNotifier{},
	)
}

type UploadMealInput struct {
	Image    string `json:"image" binding:"required"` // base64, data-URL prefix allowed
	MealType string `json:"meal_type"`
}

func UploadMeal(c *gin.Context) {
	var input UploadMealInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := newMealService().AddMealFromImage(c.Request.Context(), currentUserID(c), input.Image, input.MealType)
	if err != nil {
		respondError(c, err)
		return
	}

	message := "Meal added successfully"
	if !result.WithinTarget {
		message = "Meal added - calorie debt updated"
	}
	c.JSON(http.StatusCreated, gin.H{
		"message":      message,
		"meal":         result.Meal,
		"analysis":     result.Analysis,
		"balance":      result.Balance,
		"withinTarget": result.WithinTarget,
		"debtAdded":    result.DebtAdded,
		"totalDebt":    result.TotalDebt,
		"penalty":      result.Penalty,
	})
}

func ListMeals(c *gin.Context) {
	meals, err := newMealService().ListMeals(currentUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, meals)
}
