package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"rezoomai/resume-optimizer/internal/ats"
	"rezoomai/resume-optimizer/internal/config"
	"rezoomai/resume-optimizer/internal/handlers"
	"rezoomai/resume-optimizer/internal/repositories"
	"rezoomai/resume-optimizer/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initialize repositories
	activityRepo := repositories.NewActivityRepository(db)
	cacheRepo := repositories.NewResumeCacheRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(
		cfg.Storage.UploadPath,
		cfg.Storage.TempPath,
		cfg.Storage.MaxFileSize,
	)
	if err := storageService.EnsureDirs(); err != nil {
		log.Fatalf("❌ Failed to create storage directories: %v", err)
	}

	parserService := services.NewDocumentParserService()
	rendererService := services.NewPDFRendererService("./templates")
	mailerService := services.NewMailerService(cfg.SMTP)
	engine := ats.NewEngine(ats.DefaultVocabulary())
	log.Println("✅ Services initialized successfully")

	// Initialize AI generator
	aiGenerator, err := services.NewGeminiGenerator(
		cfg.AI.APIKey,
		cfg.AI.Model,
		cfg.AI.RetryMaxAttempts,
	)
	if err != nil {
		log.Fatalf("❌ Failed to initialize AI generator: %v", err)
	}
	if aiGenerator.Available() {
		log.Println("✅ Gemini AI initialized successfully")
	} else {
		log.Println("⚠️ Gemini API key not set, rule-based optimization only")
	}

	optimizerService := services.NewOptimizerService(engine, aiGenerator, cacheRepo)
	log.Println("✅ Optimizer service initialized")

	// Initialize cleanup worker
	cleanerService := services.NewCleanerService(
		cfg.Cleanup,
		cfg.Storage.TempPath,
		activityRepo,
		cacheRepo,
	)

	ctx := context.Background()
	cleanerService.Start(ctx)

	// Initialize handlers
	parseHandler := handlers.NewParseHandler(parserService, storageService, cfg.Storage.MaxFileSize)
	scoreHandler := handlers.NewScoreHandler(engine)
	transformHandler := handlers.NewTransformHandler(optimizerService, cacheRepo)
	exportHandler := handlers.NewExportHandler(rendererService, storageService)
	emailHandler := handlers.NewEmailHandler(mailerService, rendererService, storageService)
	activityHandler := handlers.NewActivityHandler(activityRepo, cleanerService)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Rezoom.ai API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "healthy",
			"time":    time.Now(),
			"version": "1.0.0",
		})
	})

	api.Get("/status", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "operational",
			"version": "1.0.0",
			"features": []string{
				"Resume parsing (PDF/DOCX)",
				"AI-powered optimization",
				"ATS scoring",
				"PDF generation",
				"Email delivery",
			},
			"ai_model":  cfg.AI.Model,
			"database":  "PostgreSQL",
			"timestamp": time.Now(),
		})
	})

	// Parsing
	parse := api.Group("/parse")
	parse.Post("/resume", parseHandler.HandleParseResume)
	parse.Post("/job-description", parseHandler.HandleParseJobDescription)

	// ATS scoring
	score := api.Group("/ats-score")
	score.Post("/calculate", scoreHandler.HandleCalculate)
	score.Get("/keywords/:type", scoreHandler.HandleKeywords)

	// Optimization
	transform := api.Group("/transform")
	transform.Post("/resume", transformHandler.HandleTransform)
	transform.Get("/cached/:email", transformHandler.HandleCached)
	transform.Get("/health", transformHandler.HandleHealth)

	// Export
	export := api.Group("/export")
	export.Post("/pdf", exportHandler.HandleExportPDF)
	export.Post("/docx", exportHandler.HandleExportDocx)
	export.Get("/download/:filename", exportHandler.HandleDownload)
	export.Get("/formats", exportHandler.HandleFormats)

	// Email delivery
	email := api.Group("/email")
	email.Post("/send", emailHandler.HandleSend)
	email.Post("/send-resume", emailHandler.HandleSendResume)
	email.Get("/config", emailHandler.HandleConfig)
	email.Post("/test", emailHandler.HandleTest)

	// Activity tracking
	activity := api.Group("/activity")
	activity.Post("/log", activityHandler.HandleLog)
	activity.Get("/stats", activityHandler.HandleStats)
	activity.Get("/user/:email", activityHandler.HandleUserActivities)
	activity.Get("/dashboard", activityHandler.HandleDashboard)
	activity.Delete("/cleanup", activityHandler.HandleCleanup)
	activity.Get("/export", activityHandler.HandleExport)
	activity.Get("/retention", activityHandler.HandleRetentionStats)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to Rezoom.ai API",
			"version": "1.0.0",
			"status":  "operational",
			"endpoints": []string{
				"POST /api/v1/parse/resume",
				"POST /api/v1/parse/job-description",
				"POST /api/v1/ats-score/calculate",
				"POST /api/v1/transform/resume",
				"POST /api/v1/export/pdf",
				"POST /api/v1/email/send-resume",
				"POST /api/v1/activity/log",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		cleanerService.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
