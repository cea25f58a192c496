package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	deliveryHTTP "github.com/dkozyrev/foodway/internal/delivery/http"
	"github.com/dkozyrev/foodway/internal/pkg/config"
	"github.com/dkozyrev/foodway/internal/pkg/database"
	"github.com/dkozyrev/foodway/internal/pkg/jwt"
	"github.com/dkozyrev/foodway/internal/pkg/logger"
	"github.com/dkozyrev/foodway/internal/repository/postgres"
	"github.com/dkozyrev/foodway/internal/usecase/address"
	"github.com/dkozyrev/foodway/internal/usecase/auth"
	"github.com/dkozyrev/foodway/internal/usecase/donation"
	"github.com/dkozyrev/foodway/internal/usecase/product"
	"github.com/dkozyrev/foodway/internal/usecase/request"
	"github.com/dkozyrev/foodway/internal/usecase/route"
	"github.com/dkozyrev/foodway/internal/usecase/truck"
)

func main() {
	// =========================================================================
	// Загрузка конфигурации
	// =========================================================================

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// =========================================================================
	// Инициализация logger
	// =========================================================================

	log := logger.New(cfg.Logger.Level, cfg.Logger.Format, cfg.Logger.Output)
	log.Info("Starting FOODWAY API server", map[string]interface{}{
		"version": "1.0.0",
		"env":     "development",
	})

	// =========================================================================
	// Подключение к PostgreSQL
	// =========================================================================

	ctx := context.Background()
	db, err := database.Connect(ctx, &cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", map[string]interface{}{
			"error": err.Error(),
		})
	}
	defer database.Close(db)

	log.Info("Connected to PostgreSQL", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Database,
	})

	// =========================================================================
	// Создание repositories
	// =========================================================================

	userRepo := postgres.NewUserRepository(db)
	routeRepo := postgres.NewRouteRepository(db)
	truckRepo := postgres.NewTruckRepository(db)
	addressRepo := postgres.NewAddressRepository(db)
	productRepo := postgres.NewProductRepository(db)
	donationRepo := postgres.NewDonationRepository(db)
	requestRepo := postgres.NewRequestRepository(db)

	log.Info("Repositories initialized")

	// =========================================================================
	// Создание JWT token service
	// =========================================================================

	tokenService := jwt.NewTokenService(
		cfg.JWT.SecretKey,
		cfg.JWT.AccessExpiry,
	)

	log.Info("JWT token service initialized")

	// =========================================================================
	// Создание use case services
	// =========================================================================

	authService := auth.NewService(userRepo, tokenService, log)
	routeService := route.NewService(routeRepo, truckRepo, userRepo, log)
	truckService := truck.NewService(truckRepo, log)
	addressService := address.NewService(addressRepo, log)
	productService := product.NewService(productRepo, log)
	donationService := donation.NewService(donationRepo, productRepo, log)
	requestService := request.NewService(requestRepo, productRepo, log)

	log.Info("Use case services initialized")

	// =========================================================================
	// Создание HTTP handlers
	// =========================================================================

	authHandler := deliveryHTTP.NewAuthHandler(authService, log)
	routeHandler := deliveryHTTP.NewRouteHandler(routeService, log)
	truckHandler := deliveryHTTP.NewTruckHandler(truckService, log)
	addressHandler := deliveryHTTP.NewAddressHandler(addressService, log)
	productHandler := deliveryHTTP.NewProductHandler(productService, log)
	donationHandler := deliveryHTTP.NewDonationHandler(donationService, log)
	requestHandler := deliveryHTTP.NewRequestHandler(requestService, log)
	uploadHandler := deliveryHTTP.NewUploadHandler(cfg.Upload.Dir, cfg.Upload.MaxSizeMB, log)

	log.Info("HTTP handlers initialized")

	// =========================================================================
	// Создание и настройка HTTP router
	// =========================================================================

	router := deliveryHTTP.NewRouter(
		routeHandler,
		truckHandler,
		addressHandler,
		authHandler,
		donationHandler,
		requestHandler,
		productHandler,
		uploadHandler,
		tokenService,
		cfg,
		log,
	)

	handler := router.Setup()

	log.Info("HTTP router configured")

	// =========================================================================
	// Создание HTTP сервера
	// =========================================================================

	srv := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// =========================================================================
	// Запуск сервера в goroutine
	// =========================================================================

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("API server listening", map[string]interface{}{
			"address": srv.Addr,
		})
		serverErrors <- srv.ListenAndServe()
	}()

	// =========================================================================
	// Graceful shutdown
	// =========================================================================

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		log.Fatal("Server error", map[string]interface{}{
			"error": err.Error(),
		})

	case sig := <-shutdown:
		log.Info("Shutdown signal received", map[string]interface{}{
			"signal": sig.String(),
		})

		// Даем серверу 30 секунд на graceful shutdown
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Graceful shutdown failed", map[string]interface{}{
				"error": err.Error(),
			})

			if err := srv.Close(); err != nil {
				log.Fatal("Failed to close server", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}

		log.Info("Server stopped gracefully")
	}
}
