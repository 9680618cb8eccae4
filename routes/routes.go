package routes

import (
	"net/http"

	"github.com/Gaganabm30/fitconnect/controllers"
	"github.com/Gaganabm30/fitconnect/middlewares"
	"github.com/Gaganabm30/fitconnect/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.MetricsMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	hub := services.NewTeamHub()
	teamCtl := controllers.NewTeamController(hub)
	rtCtl := controllers.NewRealtimeController(hub)

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Everything below requires a bearer token
	protected := api.Group("")
	protected.Use(middlewares.AuthMiddleware())
	{
		users := protected.Group("/users")
		{
			users.GET("", controllers.ListUsers)
			users.GET("/profile", controllers.GetProfile)
			users.PUT("/profile", controllers.UpdateProfile)
		}

		workouts := protected.Group("/workouts")
		{
			workouts.GET("", controllers.GetWorkouts)
			workouts.POST("", controllers.LogWorkout)
			workouts.PUT("/:id", controllers.UpdateWorkout)
			workouts.DELETE("/:id", controllers.DeleteWorkout)
		}

		nutrition := protected.Group("/nutrition")
		{
			nutrition.GET("", controllers.GetMeals)
			nutrition.POST("", controllers.AddMeal)
			nutrition.POST("/estimate", controllers.EstimateCalories)
			nutrition.GET("/logs", controllers.GetFoodLogs)
			nutrition.DELETE("/:id", controllers.DeleteMeal)
		}

		goals := protected.Group("/goals")
		{
			goals.GET("", controllers.GetGoals)
			goals.POST("", controllers.CreateGoal)
			goals.PUT("/:id", controllers.UpdateGoal)
			goals.DELETE("/:id", controllers.DeleteGoal)
		}

		teams := protected.Group("/teams")
		{
			teams.POST("", teamCtl.CreateTeam)
			teams.POST("/join", teamCtl.JoinTeam)
			teams.POST("/leave", teamCtl.LeaveTeam)
			teams.GET("/myteam", teamCtl.GetMyTeam)
			teams.POST("/chat", teamCtl.SendMessage)
			teams.GET("/ws", rtCtl.TeamStreamWS)
		}

		protected.POST("/challenges", teamCtl.CreateChallenge)

		social := protected.Group("/social")
		{
			social.POST("/friends/:id", controllers.AddFriend)
			social.GET("/leaderboard", controllers.GetLeaderboard)
		}

		ai := protected.Group("/ai")
		{
			ai.POST("/profile", controllers.UpsertAIProfile)
			ai.GET("/profile", controllers.GetAIProfile)
			ai.GET("/recommendations", controllers.GetAIRecommendations)
		}

		burnout := protected.Group("/burnout")
		{
			burnout.GET("/status", controllers.GetBurnoutStatus)
			burnout.POST("/evaluate", controllers.EvaluateBurnout)
			burnout.GET("/recommendations", controllers.GetRecoveryRecommendations)
			burnout.POST("/feedback", controllers.BurnoutFeedback)
		}
	}

	return r
}
