package routes

import (
	"github.com/Suchith04/Calorie-Catcher/controllers"
	"github.com/Suchith04/Calorie-Catcher/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Protected API routes
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/dashboard", controllers.Dashboard)

		api.GET("/meals", controllers.ListMeals)
		api.POST("/meals", controllers.UploadMeal)

		api.GET("/activities", controllers.ListActivities)
		api.POST("/activities", controllers.LogActivity)

		api.POST("/sleep", controllers.UpdateSleep)

		api.GET("/trends", controllers.CalorieTrend)
		api.GET("/meal-distribution", controllers.MealDistribution)

		api.GET("/penalties/pending", controllers.PendingPenalties)
		api.GET("/penalties/active", controllers.ActivePenalties)
		api.POST("/penalties/:id/complete", controllers.CompletePenalty)
		api.POST("/penalties/:id/activate", controllers.ActivatePenalty)

		api.GET("/profile", controllers.GetProfile)
		api.PATCH("/profile", controllers.UpdateProfile)

		api.GET("/ws", controllers.Realtime)
	}

	return r
}
