package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/sthemsandsaves/booking-backend/internal/application"
	"github.com/sthemsandsaves/booking-backend/internal/auth"
	"github.com/sthemsandsaves/booking-backend/internal/config"
	"github.com/sthemsandsaves/booking-backend/internal/database"
	bookingDomain "github.com/sthemsandsaves/booking-backend/internal/domain/booking"
	bookingEvents "github.com/sthemsandsaves/booking-backend/internal/events"
	"github.com/sthemsandsaves/booking-backend/internal/handler"
	"github.com/sthemsandsaves/booking-backend/internal/health"
	"github.com/sthemsandsaves/booking-backend/internal/logger"
	"github.com/sthemsandsaves/booking-backend/internal/middleware"
	"github.com/sthemsandsaves/booking-backend/internal/notification"
	"github.com/sthemsandsaves/booking-backend/internal/repository"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewNamed(cfg.AppEnv, "booking-backend")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	log.Info("starting booking-backend",
		zap.String("port", cfg.Port),
	)

	// Connect to database
	db, err := database.Connect(cfg.DB.DSN(), log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Run database migrations
	if cfg.AppEnv == "development" {
		if err := db.AutoMigrate(
			&repository.BookingModel{},
			&repository.ServiceModel{},
			&repository.PackageModel{},
			&repository.RoomModel{},
		); err != nil {
			log.Fatal("failed to run auto-migration", zap.Error(err))
		}
		log.Info("database migration completed (dev auto-migrate)")
	} else {
		if err := database.RunMigrations(cfg.DB.URL(), "migrations", log); err != nil {
			log.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Initialize admin auth
	jwtManager := auth.NewJWTManager(
		cfg.Admin.JWTSecret,
		time.Duration(cfg.Admin.TokenTTLMin)*time.Minute,
	)
	authenticator := auth.NewAdminAuthenticator(cfg.Admin.Email, cfg.Admin.PasswordHash, jwtManager)

	// Initialize Kafka producer
	kafkaProducer := bookingEvents.NewProducer(cfg.Kafka.Brokers, log)
	defer func() { _ = kafkaProducer.Close() }()

	// Initialize repositories
	bookingRepo := repository.NewGormBookingRepository(db)
	serviceRepo := repository.NewGormServiceRepository(db)
	packageRepo := repository.NewGormPackageRepository(db)
	roomRepo := repository.NewGormRoomRepository(db)

	// Initialize pricing strategy
	pricingStrategy := bookingDomain.NewStandardPricingStrategy()

	// Initialize application services
	bookingService := application.NewBookingService(
		bookingRepo,
		serviceRepo,
		packageRepo,
		pricingStrategy,
		kafkaProducer,
		log,
	)
	catalogService := application.NewCatalogService(serviceRepo, packageRepo, roomRepo, log)

	// Initialize and start the notification consumer in a goroutine
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mailer, err := notification.NewMailer(cfg.SMTP, log)
	if err != nil {
		log.Fatal("failed to create mailer", zap.Error(err))
	}

	groupID := cfg.Kafka.GroupPrefix + "booking-notifications"
	notificationConsumer := bookingEvents.NewNotificationConsumer(
		cfg.Kafka.Brokers,
		groupID,
		mailer,
		log,
	)
	defer func() { _ = notificationConsumer.Close() }()

	go func() {
		log.Info("starting notification consumer")
		if err := notificationConsumer.Start(ctx); err != nil && err != context.Canceled {
			log.Error("notification consumer error", zap.Error(err))
		}
	}()

	// Initialize HTTP handlers
	bookingHandler := handler.NewBookingHandler(bookingService, catalogService)
	authHandler := handler.NewAuthHandler(authenticator)
	adminHandler := handler.NewAdminHandler(bookingService, catalogService)

	// Setup Gin router
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	// Apply global middleware
	router.Use(middleware.RecoveryMiddleware(log))
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.CORSMiddleware(nil))

	// Register health check routes
	healthHandler := health.NewHandler(db, "booking-backend")
	healthHandler.RegisterRoutes(router)

	// Register routes
	bookingHandler.RegisterRoutes(&router.RouterGroup)
	authHandler.RegisterRoutes(&router.RouterGroup)
	adminHandler.RegisterRoutes(&router.RouterGroup, jwtManager)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
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

	log.Info("shutting down booking-backend...")

	// Cancel the consumer context
	cancel()

	// Shutdown HTTP server with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server forced shutdown", zap.Error(err))
	}

	log.Info("booking-backend stopped")
}
