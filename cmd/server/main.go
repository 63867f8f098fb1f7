package main

import (
	"log"
	"net/http"
	"os"

	_ "parcelhub/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"parcelhub/internal/auth"
	"parcelhub/internal/cache"
	"parcelhub/internal/config"
	"parcelhub/internal/db"
	"parcelhub/internal/gateway"
	"parcelhub/internal/handler"
	"parcelhub/internal/model"
	"parcelhub/internal/repository"
	"parcelhub/internal/router"
	"parcelhub/internal/service"
)

// @title Parcel Delivery API
// @version 1.0
// @description Parcel delivery management backend with role-based authorization, rider workflows and payment recording.
// @host localhost:5000
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if os.Getenv("RESET_DB") == "true" {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.TrackingEvent{},
			&model.Payment{},
			&model.Parcel{},
			&model.Rider{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	parcelRepo := repository.NewParcelRepository(gormDB)
	riderRepo := repository.NewRiderRepository(gormDB)
	paymentRepo := repository.NewPaymentRepository(gormDB)
	trackingRepo := repository.NewTrackingRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	userService := service.NewUserService(userRepo, cacheClient)
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	parcelService := service.NewParcelService(parcelRepo, riderRepo, trackingRepo)
	riderService := service.NewRiderService(riderRepo, userRepo, parcelRepo, userService)
	intents := gateway.NewPaymentIntents(cfg.GatewayURL, cfg.GatewaySecret)
	paymentService := service.NewPaymentService(paymentRepo, parcelRepo, intents)
	trackingService := service.NewTrackingService(trackingRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	parcelHandler := handler.NewParcelHandler(parcelService)
	riderHandler := handler.NewRiderHandler(riderService)
	paymentHandler := handler.NewPaymentHandler(paymentService)
	trackingHandler := handler.NewTrackingHandler(trackingService)

	// Register routes
	router.Register(
		e,
		cfg,
		userService,
		authHandler,
		userHandler,
		parcelHandler,
		riderHandler,
		paymentHandler,
		trackingHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
