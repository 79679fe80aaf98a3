package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"backoffice-service/internal/config"
	"backoffice-service/internal/events"
	"backoffice-service/internal/handlers"
	"backoffice-service/internal/middleware"
	"backoffice-service/internal/models"
	"backoffice-service/internal/repository"
	"backoffice-service/internal/services"
)

// Global logger
var log *logrus.Logger

// @title Dry Cleaning Back Office API
// @version 1.0.0
// @description Back-office service for a dry-cleaning chain: orders, clients, RFM segmentation, promotions and cash operations

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.bearer BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize structured logger
	log = logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}

	cfg := config.Load()

	if level, err := logrus.ParseLevel(cfg.App.LogLevel); err == nil {
		log.SetLevel(level)
	}

	// Initialize database
	db, err := config.InitDB(cfg)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to database")
	}

	if err := db.AutoMigrate(
		&models.Client{},
		&models.Order{},
		&models.OrderItem{},
		&models.Service{},
		&models.Promotion{},
		&models.Promocode{},
		&models.PromocodeUsage{},
		&models.CashOperation{},
		&models.City{},
		&models.Point{},
		&models.StaffUser{},
		&models.ReceiptSettings{},
	); err != nil {
		log.WithError(err).Fatal("Failed to run migrations")
	}
	log.Info("Database migrations completed")

	// Redis is optional; caching degrades gracefully without it
	var redisClient *redis.Client
	if cfg.App.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.WithError(err).Warn("Invalid REDIS_URL, caching disabled")
		} else {
			redisClient = redis.NewClient(opts)
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := redisClient.Ping(ctx).Err(); err != nil {
				log.WithError(err).Warn("Redis not reachable, caching disabled")
				redisClient = nil
			} else {
				log.Info("Connected to Redis")
			}
			cancel()
		}
	}

	// NATS events publisher (no-op when NATS_URL is not set)
	publisher := events.NewPublisher(cfg.App.NATSURL, log)
	defer publisher.Close()

	// Repositories
	clientRepo := repository.NewClientRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	promotionRepo := repository.NewPromotionRepository(db)
	promocodeRepo := repository.NewPromocodeRepository(db)
	cashRepo := repository.NewCashRepository(db)
	directoryRepo := repository.NewDirectoryRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	receiptSettingsRepo := repository.NewReceiptSettingsRepository(db)

	// Services
	authService := services.NewAuthService(staffRepo, cfg.App.JWTSecret, log)
	promocodeService := services.NewPromocodeService(promocodeRepo, log)
	pricingService := services.NewPricingService(serviceRepo, promotionRepo)
	orderService := services.NewOrderService(orderRepo, clientRepo, serviceRepo, promotionRepo, cashRepo, directoryRepo, promocodeService, publisher, log)
	segmentationService := services.NewSegmentationService(clientRepo, orderRepo, redisClient, log)
	exportService := services.NewExportService(segmentationService)
	reportService := services.NewReportService(orderRepo, clientRepo, cashRepo, segmentationService, redisClient, log)
	receiptService := services.NewReceiptService(orderRepo, receiptSettingsRepo)

	if err := authService.SeedAdmin(cfg.App.AdminEmail, cfg.App.AdminPassword); err != nil {
		log.WithError(err).Fatal("Failed to seed admin account")
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	clientHandler := handlers.NewClientHandler(clientRepo, publisher)
	orderHandler := handlers.NewOrderHandler(orderService, orderRepo)
	serviceHandler := handlers.NewServiceHandler(serviceRepo, pricingService)
	promotionHandler := handlers.NewPromotionHandler(promotionRepo)
	promocodeHandler := handlers.NewPromocodeHandler(promocodeRepo, promocodeService)
	cashHandler := handlers.NewCashHandler(cashRepo)
	directoryHandler := handlers.NewDirectoryHandler(directoryRepo)
	segmentHandler := handlers.NewSegmentHandler(segmentationService, exportService)
	receiptHandler := handlers.NewReceiptHandler(receiptService)
	dashboardHandler := handlers.NewDashboardHandler(reportService)

	// Initialize Gin router
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS())

	// Health check endpoints (no auth required)
	router.GET("/health", handlers.HealthCheck)
	router.GET("/ready", handlers.HealthCheck)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	api.POST("/auth/login", authHandler.Login)

	v1 := api.Group("")
	v1.Use(middleware.Auth(authService))
	{
		clients := v1.Group("/clients")
		{
			clients.POST("", clientHandler.CreateClient)
			clients.GET("", clientHandler.ListClients)
			clients.GET("/:id", clientHandler.GetClient)
			clients.PUT("/:id", clientHandler.UpdateClient)
			clients.DELETE("/:id", middleware.RequireRole(models.StaffRoleAdmin, models.StaffRoleManager), clientHandler.DeleteClient)
		}

		orders := v1.Group("/orders")
		{
			orders.POST("", orderHandler.CreateOrder)
			orders.GET("", orderHandler.ListOrders)
			orders.GET("/:id", orderHandler.GetOrder)
			orders.PATCH("/:id/status", orderHandler.UpdateOrderStatus)
			orders.GET("/:id/receipt", receiptHandler.GetOrderReceipt)
		}

		svcs := v1.Group("/services")
		{
			svcs.POST("", middleware.RequireRole(models.StaffRoleAdmin, models.StaffRoleManager), serviceHandler.CreateService)
			svcs.GET("", serviceHandler.ListServices)
			svcs.GET("/:id", serviceHandler.GetService)
			svcs.GET("/:id/price", serviceHandler.GetServicePrice)
			svcs.PUT("/:id", middleware.RequireRole(models.StaffRoleAdmin, models.StaffRoleManager), serviceHandler.UpdateService)
			svcs.DELETE("/:id", middleware.RequireRole(models.StaffRoleAdmin), serviceHandler.DeleteService)
		}

		promotions := v1.Group("/promotions")
		promotions.Use(middleware.RequireRole(models.StaffRoleAdmin, models.StaffRoleManager))
		{
			promotions.POST("", promotionHandler.CreatePromotion)
			promotions.GET("", promotionHandler.ListPromotions)
			promotions.GET("/:id", promotionHandler.GetPromotion)
			promotions.PUT("/:id", promotionHandler.UpdatePromotion)
			promotions.DELETE("/:id", promotionHandler.DeletePromotion)
		}

		promocodes := v1.Group("/promocodes")
		{
			promocodes.POST("", middleware.RequireRole(models.StaffRoleAdmin, models.StaffRoleManager), promocodeHandler.CreatePromocode)
			promocodes.GET("", promocodeHandler.ListPromocodes)
			promocodes.GET("/:id", promocodeHandler.GetPromocode)
			promocodes.PUT("/:id", middleware.RequireRole(models.StaffRoleAdmin, models.StaffRoleManager), promocodeHandler.UpdatePromocode)
			promocodes.DELETE("/:id", middleware.RequireRole(models.StaffRoleAdmin), promocodeHandler.DeletePromocode)
			promocodes.POST("/validate", promocodeHandler.ValidatePromocode)
			promocodes.GET("/:id/usage", promocodeHandler.ListPromocodeUsage)
		}

		cash := v1.Group("/cash")
		{
			cash.POST("/operations", cashHandler.CreateCashOperation)
			cash.GET("/operations", cashHandler.ListCashOperations)
			cash.GET("/balances", cashHandler.GetPointBalances)
		}

		cities := v1.Group("/cities")
		{
			cities.POST("", middleware.RequireRole(models.StaffRoleAdmin), directoryHandler.CreateCity)
			cities.GET("", directoryHandler.ListCities)
			cities.DELETE("/:id", middleware.RequireRole(models.StaffRoleAdmin), directoryHandler.DeleteCity)
		}

		points := v1.Group("/points")
		{
			points.POST("", middleware.RequireRole(models.StaffRoleAdmin), directoryHandler.CreatePoint)
			points.GET("", directoryHandler.ListPoints)
			points.GET("/:id", directoryHandler.GetPoint)
			points.PUT("/:id", middleware.RequireRole(models.StaffRoleAdmin), directoryHandler.UpdatePoint)
			points.DELETE("/:id", middleware.RequireRole(models.StaffRoleAdmin), directoryHandler.DeletePoint)
		}

		segments := v1.Group("/segments")
		{
			segments.GET("", segmentHandler.GetSegmentation)
			segments.POST("/refresh", segmentHandler.RefreshSegmentation)
			segments.GET("/export", segmentHandler.ExportSegmentationCSV)
		}

		receipts := v1.Group("/receipts")
		{
			receipts.GET("/settings", receiptHandler.GetReceiptSettings)
			receipts.PUT("/settings", middleware.RequireRole(models.StaffRoleAdmin, models.StaffRoleManager), receiptHandler.UpdateReceiptSettings)
		}

		v1.GET("/dashboard", dashboardHandler.GetDashboard)
	}

	log.WithField("address", cfg.GetServerAddress()).Info("Starting backoffice-service")
	if err := router.Run(cfg.GetServerAddress()); err != nil {
		log.WithError(err).Fatal("Failed to start server")
	}
}
