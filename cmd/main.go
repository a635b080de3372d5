package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"moodyflicks/internal/config"
	"moodyflicks/internal/database"
	"moodyflicks/internal/handler"
	"moodyflicks/internal/middleware"
	"moodyflicks/internal/repository"
	"moodyflicks/internal/service"
	"moodyflicks/internal/tmdb"
)

func main() {
	// Structured logging
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	db, err := database.NewPostgres(cfg.DB)
	if err != nil {
		slog.Error("failed to connect to PostgreSQL", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Connect to Redis (non-fatal if unavailable)
	rdb, err := database.NewRedis(cfg.Redis)
	if err != nil {
		slog.Warn("Redis unavailable, running without cache", "error", err)
	}

	// Initialize TMDB client
	tmdbClient := tmdb.NewClient(cfg.TMDB.APIKey, cfg.TMDB.BaseURL)

	// Initialize layers
	store := repository.NewStateRepository(db)
	catalogSvc := service.NewCatalogService(tmdbClient, rdb)
	progressSvc := service.NewProgressService(store)
	collectionSvc := service.NewCollectionService(store, progressSvc)
	exportSvc := service.NewExportService(collectionSvc, catalogSvc)
	dailySvc := service.NewDailyService(store, catalogSvc, progressSvc)
	quizSvc := service.NewQuizService(store, catalogSvc, progressSvc)
	triviaSvc := service.NewTriviaService(store, catalogSvc, progressSvc)

	movieH := handler.NewMovieHandler(catalogSvc)
	moodH := handler.NewMoodHandler(catalogSvc, triviaSvc)
	progressH := handler.NewProgressHandler(progressSvc)
	collectionH := handler.NewCollectionHandler(collectionSvc, exportSvc)
	dailyH := handler.NewDailyHandler(dailySvc)
	quizH := handler.NewQuizHandler(quizSvc)
	triviaH := handler.NewTriviaHandler(triviaSvc)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "MoodyFlicks",
		ServerHeader: "MoodyFlicks",
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			slog.Error("unhandled error", "error", err, "status", code)
			return c.Status(code).JSON(handler.ErrorResponse{Error: err.Error()})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Swagger docs
	swaggerYAML, err := os.ReadFile("docs/swagger.yaml")
	if err != nil {
		slog.Warn("swagger.yaml not found, swagger UI will be unavailable", "error", err)
	} else {
		handler.RegisterSwagger(app, swaggerYAML)
	}

	// Rate limiting on the TMDB-backed routes
	limiter := middleware.NewRateLimiter(rdb, cfg.RateLimit.MaxRequests, cfg.RateLimit.WindowSeconds)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/health", movieH.Health)

	movies := api.Group("/movies", limiter.Handler())
	movies.Get("/trending", movieH.Trending)
	movies.Get("/:id", movieH.Detail)
	movies.Get("/:id/credits", movieH.Credits)
	movies.Get("/:id/similar", movieH.Similar)
	movies.Get("/:id/mood-meter", movieH.MoodMeter)

	moods := api.Group("/moods")
	moods.Get("/", moodH.List)
	moods.Get("/random", moodH.Random)
	moods.Get("/:mood/movies", moodH.Movies, limiter.Handler())
	moods.Get("/:mood/trivia", moodH.Trivia)

	api.Get("/trivia", triviaH.Get)

	users := api.Group("/users/:userId")
	users.Get("/progress", progressH.Get)
	users.Post("/progress/watched", progressH.MarkWatched)
	users.Post("/progress/ratings", progressH.Rate)
	users.Post("/progress/saved", progressH.ToggleSaved)
	users.Post("/progress/share", progressH.Share)

	users.Get("/collections", collectionH.List)
	users.Post("/collections", collectionH.Create)
	users.Get("/collections/:id", collectionH.Get)
	users.Patch("/collections/:id", collectionH.Update)
	users.Delete("/collections/:id", collectionH.Delete)
	users.Post("/collections/:id/movies", collectionH.AddMovie)
	users.Delete("/collections/:id/movies/:movieId", collectionH.RemoveMovie)
	users.Get("/collections/:id/export", collectionH.Export)

	users.Get("/daily", dailyH.Get)
	users.Post("/daily/complete", dailyH.Complete)

	users.Post("/quizzes", quizH.Start)
	users.Get("/quizzes/:sessionId", quizH.Get)
	users.Post("/quizzes/:sessionId/answers", quizH.Answer)
	users.Get("/quiz-stats", quizH.Stats)

	users.Post("/trivia/likes", triviaH.Like)

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan
		slog.Info("shutting down moodyflicks...")
		_ = app.Shutdown()
	}()

	// Start server
	addr := ":" + cfg.Port
	slog.Info("starting moodyflicks", "addr", addr)
	if err := app.Listen(addr); err != nil {
		slog.Error("server error", "error", err)
		os.Exit(1)
	}
}
