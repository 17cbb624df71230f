package main

import (
	"bpa-panel-service/internal/app/config"
	"bpa-panel-service/internal/app/contracts"
	"bpa-panel-service/internal/app/delivery/http/controllers"
	"bpa-panel-service/internal/app/delivery/http/middlewares"
	"bpa-panel-service/internal/app/delivery/http/routers"
	"bpa-panel-service/internal/app/drivers/database"
	"bpa-panel-service/internal/app/drivers/logger"
	"bpa-panel-service/internal/app/drivers/messaging"
	"bpa-panel-service/internal/app/drivers/storage"
	"bpa-panel-service/internal/app/services/core/auth"
	"bpa-panel-service/internal/app/services/core/images"
	"bpa-panel-service/internal/app/services/core/locations"
	"bpa-panel-service/internal/app/services/core/menus"
	"bpa-panel-service/internal/app/services/core/preferences"
	"bpa-panel-service/internal/app/services/core/session"
	"bpa-panel-service/internal/app/services/shared/backend"
	sharedMessaging "bpa-panel-service/internal/app/services/shared/messaging"
	"bpa-panel-service/internal/app/services/shared/redis"
	sharedStorage "bpa-panel-service/internal/app/services/shared/storage"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Redis:          database.NewRedisClient(driverConfig),
		MongoDB:        database.NewMongoDB(driverConfig),
		Minio:          storage.NewMinio(driverConfig),
		RabbitMQ:       messaging.NewRabbitMQ(driverConfig),
		Logger:         logger.NewZapLogger(driverConfig, internalConfig),
		AccessLogger:   logger.NewLogrusLogger(internalConfig),
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	err = bootstrapingTheApp(bootstrap)
	if err != nil {
		log.Fatalf("Error bootstraping the app: %v", err)
	}

	server := &http.Server{
		Addr:              internalConfig.App.Port,
		Handler:           bootstrap.Router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		bootstrap.Logger.Info("Server is listening", zap.String("addr", server.Addr))
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	// Shutdown the server
	err = server.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		log.Printf("Error closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap *config.Bootstrap) error {
	cfg := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Key value store, in memory when Redis is not configured
	var store contracts.RedisRepository
	if bootstrap.Redis != nil {
		store = redis.NewRedisRepository(bootstrap.Redis)
	} else {
		log.Warn("Redis is not configured, recent locations and preferences are kept in memory")
		store = redis.NewMemoryRepository()
	}

	// Image cache
	var imageCache contracts.ImageCache
	if bootstrap.Minio != nil {
		imageCache = sharedStorage.NewMinioImageCache(bootstrap.Minio, bootstrap.DriverConfig.Minio.BucketName, cfg.Proxy.MaxImageSizeInMB<<20)
	}

	// Auth events
	var eventPublisher contracts.EventPublisher = sharedMessaging.NewNoopPublisher()
	if bootstrap.RabbitMQ != nil {
		publisher, err := sharedMessaging.NewRabbitMQPublisher(bootstrap.RabbitMQ, cfg.RabbitMQ.AuthEventsQueue)
		if err != nil {
			return err
		}
		eventPublisher = publisher
	}

	// Menu registry, with overrides from MongoDB when configured
	var menuRepository contracts.MenuRepository
	if bootstrap.MongoDB != nil {
		menuRepository = menus.NewMenuMongoRepository(bootstrap.MongoDB, bootstrap.DriverConfig.MongoDB.DbName)
	}
	loadCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	registry, err := menus.LoadRegistry(loadCtx, menuRepository, log)
	if err != nil {
		return err
	}

	// Backend API
	backendClient := backend.NewBackendClient(cfg, log)

	// Usecases
	sessionService := session.NewSessionService(backendClient, cfg, log)
	menuUsecase := menus.NewMenuUsecase(registry, cfg.Menu.PermissiveMode, log)
	authUsecase := auth.NewAuthUsecase(backendClient, eventPublisher, cfg, log)
	imageUsecase := images.NewImageUsecase(cfg, imageCache, log)
	recentLocationUsecase := locations.NewRecentLocationUsecase(store, cfg.Locations.Limit, log)
	preferenceUsecase := preferences.NewPreferenceUsecase(store, log)

	// Middlewares
	middlewares := middlewares.NewMiddlewares(log, sessionService, cfg)

	// Controllers
	panelController := controllers.NewPanelController(log, cfg)
	menuController := controllers.NewMenuController(log, menuUsecase)
	authController := controllers.NewAuthController(log, authUsecase, cfg)
	proxyController := controllers.NewProxyController(log, imageUsecase, cfg)
	recentLocationController := controllers.NewRecentLocationController(log, recentLocationUsecase, cfg)
	preferenceController := controllers.NewPreferenceController(log, preferenceUsecase, cfg)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.AccessLogger,
		cfg,
		middlewares,
		panelController,
		menuController,
		authController,
		proxyController,
		recentLocationController,
		preferenceController,
	)
	return nil
}
