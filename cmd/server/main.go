package main

import (
	"context"

	"productsiksha-backend/auth"
	"productsiksha-backend/config"
	"productsiksha-backend/handlers"
	"productsiksha-backend/repository"
	"productsiksha-backend/service"
	"productsiksha-backend/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/generative-ai-go/genai"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

func main() {
	log := logrus.New()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	// Initialize the data store (PostgreSQL or SQLite from DATABASE_URL)
	store, err := repository.NewStoreFromURL(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize store: %v", err)
	}
	defer store.Close()
	log.Infof("Store initialized (%s)", store.Backend())

	// Auto-create tables so a fresh database works on first boot
	if err := store.InitSchema(ctx); err != nil {
		log.Warnf("Database schema warning: %v", err)
	}

	// Initialize the attachment archive
	archive, err := storage.New(storage.Config{
		Type:         storage.Type(cfg.StorageType),
		LocalPath:    cfg.StorageLocalPath,
		S3Bucket:     cfg.S3Bucket,
		S3Region:     cfg.AWSRegion,
		AWSAccessKey: cfg.AWSAccessKey,
		AWSSecretKey: cfg.AWSSecretKey,
	})
	if err != nil {
		log.Fatalf("Failed to initialize attachment archive: %v", err)
	}

	// Initialize the Gemini client; without a key the feedback endpoint
	// answers in demo mode
	geminiClient, err := initGemini(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini: %v", err)
	}

	// Initialize auth primitives
	tokens := auth.NewTokenService(cfg.SecretKey, cfg.TokenTTL)

	// Initialize services
	authService := service.NewAuthService(
		service.WithAuthStore(store),
		service.WithTokenService(tokens),
	)
	questionService := service.NewQuestionService(
		service.WithQuestionStore(store),
	)
	feedbackService := service.NewFeedbackService(
		service.FeedbackWithGeminiClient(geminiClient),
		service.FeedbackWithModel(cfg.GeminiModel),
		service.FeedbackWithArchive(archive),
		service.FeedbackWithLogger(log),
	)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService, store)
	questionHandler := handlers.NewQuestionHandler(questionService)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackService)
	healthHandler := handlers.NewHealthHandler(store, cfg.GeminiConfigured())

	// Setup Gin router
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.AllowedOrigins()
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	r.Use(cors.New(corsConfig))

	r.GET("/health", healthHandler.Health)

	// API routes
	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.Health)
		api.GET("/auth/init", authHandler.InitTables)
		api.POST("/auth/init", authHandler.InitTables)

		api.POST("/login", authHandler.Login)
		api.POST("/signup", authHandler.Signup)
		api.POST("/change-password", authHandler.ChangePassword)

		api.GET("/categories", questionHandler.GetCategories)
		api.GET("/companies", questionHandler.GetCompanies)

		api.POST("/feedback", feedbackHandler.GetFeedback)

		// Question endpoints require a bearer token
		authed := api.Group("", auth.RequireAuth(tokens))
		{
			authed.GET("/questions/:category", questionHandler.GetQuestions)
			authed.POST("/questions/:id/toggle", questionHandler.ToggleCompletion)
		}
	}

	log.Infof("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func initGemini(ctx context.Context, cfg *config.Config, log *logrus.Logger) (*genai.Client, error) {
	if !cfg.GeminiConfigured() {
		log.Warn("GEMINI_API_KEY not set, feedback runs in demo mode")
		return nil, nil
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.GeminiAPIKey))
	if err != nil {
		return nil, err
	}

	log.Info("Gemini client initialized")
	return client, nil
}
