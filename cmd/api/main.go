package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/brightbuy/brightbuy-backend/config"
	"github.com/brightbuy/brightbuy-backend/internal/auth"
	authH "github.com/brightbuy/brightbuy-backend/internal/auth/handler"
	authRepoPkg "github.com/brightbuy/brightbuy-backend/internal/auth/repository"
	authUCPkg "github.com/brightbuy/brightbuy-backend/internal/auth/usecase"
	custH "github.com/brightbuy/brightbuy-backend/internal/customer/handler"
	custRepoPkg "github.com/brightbuy/brightbuy-backend/internal/customer/repository"
	custUCPkg "github.com/brightbuy/brightbuy-backend/internal/customer/usecase"
	invH "github.com/brightbuy/brightbuy-backend/internal/inventory/handler"
	invRepoPkg "github.com/brightbuy/brightbuy-backend/internal/inventory/repository"
	invUCPkg "github.com/brightbuy/brightbuy-backend/internal/inventory/usecase"
	prodH "github.com/brightbuy/brightbuy-backend/internal/product/handler"
	prodRepoPkg "github.com/brightbuy/brightbuy-backend/internal/product/repository"
	prodUCPkg "github.com/brightbuy/brightbuy-backend/internal/product/usecase"
	staffH "github.com/brightbuy/brightbuy-backend/internal/staff/handler"
	staffRepoPkg "github.com/brightbuy/brightbuy-backend/internal/staff/repository"
	staffUCPkg "github.com/brightbuy/brightbuy-backend/internal/staff/usecase"
	"github.com/brightbuy/brightbuy-backend/pkg/broker"
	mysqldb "github.com/brightbuy/brightbuy-backend/pkg/database/mysql"
	"github.com/brightbuy/brightbuy-backend/pkg/logger"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadEnv()

	appLogger, err := logger.New(cfg.Logger, cfg.Server.AppEnv)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	db, err := mysqldb.New(&cfg.MySQL)
	if err != nil {
		appLogger.Fatal("Could not connect to database", zap.Error(err))
	}
	defer db.Close()
	appLogger.Info("Connected to MySQL database", zap.String("db_name", cfg.MySQL.DBName))

	producer := broker.NewProducer(cfg.Kafka.Brokers, cfg.Kafka.Topic)
	if producer != nil {
		defer producer.Close()
		appLogger.Info("Kafka producer ready",
			zap.Strings("brokers", cfg.Kafka.Brokers),
			zap.String("topic", cfg.Kafka.Topic))
	} else {
		appLogger.Info("Kafka brokers not configured, stock events disabled")
	}

	// Repositories
	authRepo := authRepoPkg.NewMySQLRepository(db)
	invRepo := invRepoPkg.NewMySQLRepository(db)
	staffRepo := staffRepoPkg.NewMySQLRepository(db)
	custRepo := custRepoPkg.NewMySQLRepository(db)
	prodRepo := prodRepoPkg.NewMySQLRepository(db)

	// Auth helper
	tokenAuth := auth.New(cfg.JWT.SecretKey, cfg.JWT.TTLHours)

	// UseCases
	authUC := authUCPkg.NewAuthUseCase(authRepo, tokenAuth, appLogger)
	invUC := invUCPkg.NewInventoryUseCase(invRepo, producer, appLogger)
	staffUC := staffUCPkg.NewStaffUseCase(staffRepo, appLogger)
	custUC := custUCPkg.NewCustomerUseCase(custRepo, appLogger)
	prodUC := prodUCPkg.NewProductUseCase(prodRepo, appLogger)

	// Handlers
	authHandler := authH.NewAuthHandler(authUC, appLogger)
	invHandler := invH.NewInventoryHandler(invUC, appLogger)
	staffHandler := staffH.NewStaffHandler(staffUC, appLogger)
	custHandler := custH.NewCustomerHandler(custUC, appLogger)
	prodHandler := prodH.NewProductHandler(prodUC, appLogger)

	app := fiber.New(fiber.Config{
		AppName: "BrightBuy Backend",
	})

	app.Use(requestid.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.CORSOrigin,
		AllowHeaders:     "Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	apiGroup := app.Group("/api")

	apiGroup.Get("/health", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"status":      "ok",
			"environment": cfg.Server.AppEnv,
			"timestamp":   time.Now().UTC(),
		})
	})

	authHandler.MapRoutes(apiGroup.Group("/auth"))
	prodHandler.MapRoutes(apiGroup)

	staffGroup := apiGroup.Group("/staff", auth.RequireStaff(tokenAuth))
	invHandler.MapRoutes(staffGroup)
	staffHandler.MapRoutes(staffGroup)
	custHandler.MapRoutes(apiGroup.Group("/customers", auth.RequireStaff(tokenAuth)))

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("port", cfg.Server.Port))
		if err := app.Listen(cfg.Server.Port); err != nil {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		appLogger.Error("shutdown error", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
