package routes

import (
	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/controllers"
	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/middlewares"
	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/services"

	"github.com/gin-gonic/gin"
)

// SetupRouter wires all HTTP and websocket endpoints.
func SetupRouter(
	rt *services.RealtimeHub,
	classifier *services.DietClassifier,
	sim *services.SimilarityService,
) *gin.Engine {
	r := gin.Default()

	r.GET("/health", controllers.Health)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	mealCtl := controllers.NewMealController(sim)
	trainCtl := controllers.NewTrainController(classifier)
	recCtl := controllers.NewRecommendationController(sim)
	rtCtl := controllers.NewRealtimeController(rt)

	// Protected API routes
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/meals", mealCtl.ListMeals)
		api.POST("/meals/ingest", mealCtl.IngestMeals)

		api.POST("/create-user-with-plan", controllers.CreateUserWithPlan)
		api.POST("/create-user-with-weekly-plan", controllers.CreateUserWithWeeklyPlan)
		api.GET("/users-with-plans", controllers.GetUsersWithPlans)

		api.POST("/diet/train", trainCtl.Train)
		api.POST("/diet/predict", trainCtl.Predict)

		api.GET("/recommendations/meal/:id/similar", recCtl.GetSimilarMeals)
		api.POST("/recommendations/:plan_id/feedback", recCtl.SubmitFeedback)
	}

	// Websocket alerts (token-authenticated like the REST API)
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/alerts", rtCtl.AlertsWS)
	}

	return r
}
