package main

import (
	"neocal-backend/config"
	"neocal-backend/pkg/logger"
	"neocal-backend/routes"
	"neocal-backend/services"
	"neocal-backend/utils"
)

func main() {
	log := logger.New()
	defer log.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalw("failed to load config", "error", err)
	}

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalw("failed to init database", "error", err)
	}

	// Provider handles are constructed once here and injected; a missing
	// API key simply leaves that provider out of the recognition chain.
	var openaiSvc *services.OpenAIService
	if cfg.OpenAI.APIKey != "" {
		openaiSvc = services.NewOpenAIService(cfg.OpenAI.APIKey, cfg.OpenAI.TextModel, cfg.OpenAI.VisionModel)
	}
	var hfSvc *services.HuggingFaceService
	if cfg.HuggingFace.APIKey != "" {
		hfSvc = services.NewHuggingFaceService(cfg.HuggingFace.APIKey, cfg.HuggingFace.Model)
	}

	images, err := utils.NewImageStore(cfg.AWS.Region, cfg.AWS.S3Bucket)
	if err != nil {
		log.Fatalw("failed to init image store", "error", err)
	}

	hub := services.NewRealtimeHub()
	nut := services.NewNutritionTable()

	deps := routes.Deps{
		Cfg:        cfg,
		DB:         db,
		Auth:       services.NewAuthService(db, cfg.Auth.JWTSecret, cfg.Auth.SessionTTL, cfg.Auth.Required, cfg.Auth.DemoUserID, cfg.DefaultCalorieTarget),
		Recognizer: services.NewRecognizerService(log, openaiSvc, hfSvc, cfg.AWS.Region),
		Meals:      services.NewMealService(db, nut, hub, log),
		Summary:    services.NewSummaryService(db),
		Water:      services.NewWaterService(db),
		Exercise:   services.NewExerciseService(db),
		Weight:     services.NewWeightService(db),
		Hub:        hub,
		Images:     images,
	}

	r := routes.SetupRouter(deps)
	log.Infow("starting server", "port", cfg.Server.Port, "auth_required", cfg.Auth.Required)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalw("server exited", "error", err)
	}
}
