package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/lfnovo/ai-meeting-notes/pkg/validator"

	"github.com/lfnovo/ai-meeting-notes/internal/adapter/handler"
	"github.com/lfnovo/ai-meeting-notes/internal/adapter/repository"
	"github.com/lfnovo/ai-meeting-notes/internal/infrastructure/cache"
	"github.com/lfnovo/ai-meeting-notes/internal/infrastructure/database"
	"github.com/lfnovo/ai-meeting-notes/internal/infrastructure/storage"
	"github.com/lfnovo/ai-meeting-notes/internal/usecase/integrity"
	meetinguse "github.com/lfnovo/ai-meeting-notes/internal/usecase/meeting"
	"github.com/lfnovo/ai-meeting-notes/internal/usecase/processing"
	"github.com/lfnovo/ai-meeting-notes/internal/usecase/resolution"
	typesuse "github.com/lfnovo/ai-meeting-notes/internal/usecase/types"
	pkgai "github.com/lfnovo/ai-meeting-notes/pkg/ai"
	"github.com/lfnovo/ai-meeting-notes/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	if cfg.Database.AutoMigrate {
		log.Println("🔄 Applying migrations...")
		if err := database.Migrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	}

	// Initialize Redis
	log.Println("📦 Connecting to Redis...")
	redisStore, err := cache.NewRedisStore(cfg.GetRedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisStore.Close()

	// Initialize object storage
	log.Println("📦 Connecting to object storage...")
	minioClient, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(db)
	entityRepo := repository.NewEntityRepository(db)
	actionItemRepo := repository.NewActionItemRepository(db)
	entityTypeRepo := repository.NewEntityTypeRepository(db)
	meetingTypeRepo := repository.NewCachedMeetingTypeRepository(
		repository.NewMeetingTypeRepository(db), redisStore, logger)

	// Initialize AI clients
	log.Println("🤖 Initializing AI components...")
	openaiClient := pkgai.NewOpenAIClient(&cfg.OpenAI)
	assemblyClient := pkgai.NewAssemblyAIClient(&cfg.Assembly)

	// Initialize services
	processor := processing.NewService(openaiClient, &cfg.Processing, logger)
	resolver := resolution.NewService(entityRepo, logger)
	integrityService := integrity.NewService(meetingRepo, entityRepo, entityTypeRepo, &cfg.Processing, logger)
	meetingService := meetinguse.NewService(
		meetingRepo, actionItemRepo, meetingTypeRepo,
		processor, resolver, assemblyClient, minioClient, logger)
	typeService := typesuse.NewService(entityTypeRepo, meetingTypeRepo, entityRepo, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	meetingHandler := handler.NewMeetingHandler(meetingService, integrityService, processor, logger)
	entityHandler := handler.NewEntityHandler(entityRepo, meetingRepo, integrityService, logger)
	typesHandler := handler.NewTypesHandler(typeService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(meetingHandler, entityHandler, typesHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
