package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/AryanSingh257/ai-resume-analyzer/config"
	"github.com/AryanSingh257/ai-resume-analyzer/database"
	"github.com/AryanSingh257/ai-resume-analyzer/handlers"
	"github.com/AryanSingh257/ai-resume-analyzer/middleware"
	"github.com/AryanSingh257/ai-resume-analyzer/parsers"
	"github.com/AryanSingh257/ai-resume-analyzer/services"
	"github.com/AryanSingh257/ai-resume-analyzer/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		utils.LogWarn("no .env file found, using environment", nil)
	}

	cfg := config.GetAppConfig()

	settings, err := config.LoadSettings(cfg.SettingsPath)
	if err != nil {
		log.Fatalf("invalid settings: %v", err)
	}

	parser := parsers.NewResumeParser()
	if cfg.TaxonomyPath != "" {
		taxonomy, err := parsers.LoadTaxonomy(cfg.TaxonomyPath)
		if err != nil {
			log.Fatalf("invalid skill taxonomy: %v", err)
		}
		skills := parsers.NewSkillExtractorWithTaxonomies(taxonomy, parsers.DefaultSoftSkills())
		parser = parsers.NewResumeParserWithSkills(skills)
	}
	scorer := services.NewATSScorer()
	jwtService := services.NewJWTService(cfg.JWTSecret)

	analyzeHandler := handlers.NewAnalyzeHandler(parser, scorer, settings.ScoringWeights)
	exportHandler := handlers.NewExportHandler(parser, scorer)

	limiters := middleware.CreateRateLimiters()
	caches := middleware.CreateCaches()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.SanitizeInput())
	r.Use(middleware.MaxRequestSize(20 << 20))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		analyze := api.Group("/", limiters["analyze"].Limit())
		{
			upload := middleware.ValidateUploadExtension("resume", ".pdf", ".docx", ".txt")
			analyze.POST("/analyze", upload, analyzeHandler.Analyze)
			analyze.POST("/analyze/text", middleware.ValidateJSON(), analyzeHandler.AnalyzeText)
			analyze.POST("/compare", analyzeHandler.Compare)
			analyze.POST("/export/report", upload, exportHandler.Report)
		}

		matching := api.Group("/", limiters["general"].Limit(), caches["match"].Cache())
		{
			matching.POST("/match", middleware.ValidateJSON(), analyzeHandler.Match)
			matching.POST("/predict-role", middleware.ValidateJSON(), analyzeHandler.PredictRole)
		}
	}

	// S3 storage is optional; without credentials the upload-and-keep
	// endpoints are simply not registered.
	if s3Service, err := services.NewS3Service(); err != nil {
		utils.LogWarn("S3 unavailable, stored resume endpoints disabled", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		storageHandler := handlers.NewStorageHandler(s3Service, parser, scorer)
		storage := api.Group("/storage", limiters["general"].Limit())
		{
			storage.POST("/resumes", middleware.ValidateUploadExtension("resume", ".pdf", ".docx", ".txt"), storageHandler.Upload)
			storage.POST("/analyze", middleware.ValidateJSON(), storageHandler.AnalyzeStored)
			storage.DELETE("/resumes", storageHandler.Delete)
		}
	}

	// Auth and history need Postgres; without it the analyzer still
	// serves the stateless endpoints.
	db, err := database.Connect(cfg.Database)
	if err != nil {
		utils.LogWarn("database unavailable, auth and history disabled", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		if err := database.Migrate(db); err != nil {
			log.Fatalf("migration failed: %v", err)
		}

		authHandler := handlers.NewAuthHandler(db, jwtService)
		historyHandler := handlers.NewHistoryHandler(services.NewHistoryService(db, cfg.HistoryRetain), parser, scorer)

		auth := r.Group("/api/auth", limiters["auth"].Limit(), middleware.ValidateJSON())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		protected := r.Group("/api", middleware.RequireAuth(jwtService))
		{
			protected.GET("/profile", authHandler.Profile)
			protected.POST("/history", middleware.ValidateUploadExtension("resume", ".pdf", ".docx", ".txt"), historyHandler.Record)
			protected.GET("/history", historyHandler.List)
			protected.GET("/history/progress", historyHandler.Progress)
			protected.DELETE("/history", historyHandler.Clear)
		}
	}

	utils.LogInfo("starting server", map[string]interface{}{"port": cfg.Port})
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
