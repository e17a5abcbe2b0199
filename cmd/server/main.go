package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/pprof"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lostxrotimi/service-studio/internal/application"
	"github.com/lostxrotimi/service-studio/internal/caption"
	"github.com/lostxrotimi/service-studio/internal/common/auth"
	"github.com/lostxrotimi/service-studio/internal/common/database"
	"github.com/lostxrotimi/service-studio/internal/common/health"
	"github.com/lostxrotimi/service-studio/internal/common/kafka"
	"github.com/lostxrotimi/service-studio/internal/common/logger"
	"github.com/lostxrotimi/service-studio/internal/common/middleware"
	"github.com/lostxrotimi/service-studio/internal/config"
	contentEvents "github.com/lostxrotimi/service-studio/internal/events"
	"github.com/lostxrotimi/service-studio/internal/handler"
	"github.com/lostxrotimi/service-studio/internal/repository"
	"github.com/lostxrotimi/service-studio/internal/storage"
)

const serviceName = "service-studio"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, serviceName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting "+serviceName,
		zap.String("port", cfg.Port),
		zap.String("instance_id", cfg.InstanceID),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Connect to the remote record store
	db, err := database.Connect(cfg.DBConfig, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Outside development the schema is applied by an operator; until then
	// the content cache reports it missing and writes are blocked.
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(&repository.PhotoModel{}, &repository.BookingModel{}); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	}

	// Open the local settings store
	localDB, err := database.OpenSQLite(cfg.LocalStorePath, log)
	if err != nil {
		log.Fatal("failed to open local store", zap.Error(err))
	}
	if err := localDB.AutoMigrate(&repository.SettingModel{}); err != nil {
		log.Fatal("failed to migrate local store", zap.Error(err))
	}

	// Initialize object store
	objects, err := storage.NewMinioObjectStore(
		cfg.S3Config.Endpoint,
		cfg.S3Config.AccessKey,
		cfg.S3Config.SecretKey,
		cfg.S3Config.Bucket,
		cfg.S3Config.PublicURL,
		cfg.S3Config.UseSSL,
		log,
	)
	if err != nil {
		log.Fatal("failed to create object store client", zap.Error(err))
	}
	if err := objects.EnsureBucket(ctx); err != nil {
		log.Warn("object store bucket is not ready, uploads will fail", zap.Error(err))
	}

	// Initialize caption generator
	var captions application.CaptionGenerator = caption.Disabled{}
	if cfg.GeminiConfig.APIKey != "" {
		gemini, err := caption.NewGeminiGenerator(ctx, cfg.GeminiConfig.APIKey, cfg.GeminiConfig.Model, log)
		if err != nil {
			log.Warn("caption generator unavailable", zap.Error(err))
		} else {
			captions = gemini
		}
	} else {
		log.Info("no Gemini API key configured, caption generation disabled")
	}

	// Initialize Kafka producer
	var publisher application.EventPublisher = application.NopPublisher{}
	if len(cfg.KafkaConfig.Brokers) > 0 {
		kafkaProducer := kafka.NewProducer(cfg.KafkaConfig.Brokers, log)
		defer func() { _ = kafkaProducer.Close() }()
		publisher = contentEvents.NewKafkaPublisher(kafkaProducer, cfg.KafkaConfig.Topic, cfg.InstanceID, log)
	} else {
		log.Info("no Kafka brokers configured, content events disabled")
	}

	// Initialize repositories
	photoRepo := repository.NewGormPhotoRepository(db)
	bookingRepo := repository.NewGormBookingRepository(db)
	heroRepo := repository.NewGormHeroRepository(localDB)

	// Initialize application services
	content := application.NewContentRepository(photoRepo, bookingRepo, log)
	content.Load(ctx)
	if content.SchemaMissing() {
		log.Warn("record store schema missing", zap.String("setup", application.SetupInstruction))
	}

	heroService := application.NewHeroService(heroRepo, objects, log)
	photoService := application.NewPhotoService(content, heroService)
	bookingService := application.NewBookingService(bookingRepo, content, publisher, log)
	adminService := application.NewAdminService(photoRepo, content, objects, captions, publisher, log)

	// Start the content event consumer in a goroutine
	if len(cfg.KafkaConfig.Brokers) > 0 {
		groupID := cfg.KafkaConfig.GroupPrefix + cfg.InstanceID
		contentConsumer := contentEvents.NewContentEventConsumer(
			cfg.KafkaConfig.Brokers,
			groupID,
			cfg.KafkaConfig.Topic,
			cfg.InstanceID,
			content,
			log,
		)
		defer func() { _ = contentConsumer.Close() }()

		go func() {
			log.Info("starting content event consumer", zap.String("group_id", groupID))
			if err := contentConsumer.Start(ctx); err != nil && err != context.Canceled {
				log.Error("content event consumer error", zap.Error(err))
			}
		}()
	}

	// Initialize JWT manager
	jwtManager := auth.NewJWTManager(cfg.JWTConfig.Secret, cfg.JWTConfig.AccessTTL)

	// Initialize HTTP handlers
	photoHandler := handler.NewPhotoHandler(photoService, heroService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	authHandler := handler.NewAuthHandler(jwtManager, cfg.AdminPasswordHash, log)
	adminHandler := handler.NewAdminHandler(bookingService, adminService, content)
	adminPhotoHandler := handler.NewAdminPhotoHandler(adminService)
	heroHandler := handler.NewHeroHandler(heroService)

	// Setup Gin router
	if cfg.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.MaxMultipartMemory = 32 << 20

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(cfg.CORSOrigins))
	router.Use(middleware.SecurityHeadersMiddleware())

	if cfg.AppEnv == "development" {
		pprof.Register(router)
	}

	// Register health check routes
	healthHandler := health.NewHandler(db, serviceName)
	healthHandler.RegisterRoutes(router)

	// Register routes
	photoHandler.RegisterRoutes(&router.RouterGroup)
	bookingHandler.RegisterRoutes(&router.RouterGroup)
	authHandler.RegisterRoutes(&router.RouterGroup)

	// Register admin handler routes
	adminHandler.RegisterRoutes(&router.RouterGroup, jwtManager)
	adminPhotoHandler.RegisterRoutes(&router.RouterGroup, jwtManager)
	heroHandler.RegisterRoutes(&router.RouterGroup, jwtManager)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down " + serviceName + "...")

	// Cancel the consumer context
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info(serviceName + " stopped")
}
