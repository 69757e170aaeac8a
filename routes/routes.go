package routes

import (
	"neocal-backend/config"
	"neocal-backend/controllers"
	"neocal-backend/middlewares"
	"neocal-backend/services"
	"neocal-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// Deps carries everything the router needs, wired once in main.
type Deps struct {
	Cfg        *config.Config
	DB         *gorm.DB
	Auth       *services.AuthService
	Recognizer *services.RecognizerService
	Meals      *services.MealService
	Summary    *services.SummaryService
	Water      *services.WaterService
	Exercise   *services.ExerciseService
	Weight     *services.WeightService
	Hub        *services.RealtimeHub
	Images     *utils.ImageStore
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.Default()

	authCtl := controllers.NewAuthController(d.Auth)
	userCtl := controllers.NewUserController(d.Auth)
	mealCtl := controllers.NewMealController(d.Recognizer, d.Meals, d.Images)
	summaryCtl := controllers.NewSummaryController(d.Summary)
	waterCtl := controllers.NewWaterController(d.Water)
	exerciseCtl := controllers.NewExerciseController(d.Exercise)
	weightCtl := controllers.NewWeightController(d.Weight)
	realtimeCtl := controllers.NewRealtimeController(d.Hub)

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public
	r.POST("/auth/session", authCtl.CreateSession)

	// Everything else requires a resolved user (real token or demo identity)
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware(d.Auth, d.Cfg.Auth.Required))
	{
		api.GET("/user/profile", userCtl.GetProfile)
		api.PUT("/user/profile", userCtl.UpdateProfile)

		api.POST("/meals/from-text", mealCtl.LogFromText)
		api.POST("/meals/from-image", mealCtl.LogFromImage)
		api.POST("/meals/from-barcode", mealCtl.LogFromBarcode)
		api.POST("/meals", mealCtl.LogManual)
		api.GET("/meals", mealCtl.ListMeals)
		api.GET("/meals/:id", mealCtl.GetMeal)
		api.DELETE("/meals/:id", mealCtl.DeleteMeal)

		api.GET("/summary/day", summaryCtl.GetDaySummary)

		api.POST("/water", waterCtl.Create)
		api.GET("/water", waterCtl.List)
		api.DELETE("/water/:id", waterCtl.Delete)

		api.POST("/exercise", exerciseCtl.Create)
		api.GET("/exercise", exerciseCtl.List)
		api.DELETE("/exercise/:id", exerciseCtl.Delete)

		api.POST("/weight", weightCtl.Create)
		api.GET("/weight", weightCtl.List)
		api.DELETE("/weight/:id", weightCtl.Delete)

		api.GET("/ws", realtimeCtl.EventsWS)
	}

	return r
}
