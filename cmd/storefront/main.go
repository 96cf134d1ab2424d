package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/config"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/repository"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/service"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/session"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/storage"
	transport "github.com/saitejaboorla/Online-Grocery-Bolt/internal/transport/http"
	"github.com/saitejaboorla/Online-Grocery-Bolt/internal/transport/http/handler"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf(".env not found: %v\n", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.MustLoad()

	logger, err := config.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	pool, err := storage.Open(ctx, storage.Config{
		Driver:   cfg.Database.Driver,
		DSN:      cfg.Database.DSN,
		Username: cfg.Database.Username,
		Password: cfg.Database.Password,
		MinSize:  cfg.Database.MinPoolSize,
		MaxSize:  cfg.Database.MaxPoolSize,
	}, logger)
	if err != nil {
		logger.Fatal("failed to open database", zap.Error(err))
	}

	customerRepo := repository.NewCustomerRepository(pool, logger)
	loginRepo := repository.NewLoginRepository(pool, logger)
	productRepo := repository.NewProductRepository(pool, logger)
	orderRepo := repository.NewOrderRepository(pool, logger)
	orderItemRepo := repository.NewOrderItemRepository(pool, logger)

	sessions := session.NewManager(cfg.Session.Secret, cfg.Session.TTL)

	authService := service.NewAuthService(customerRepo, loginRepo, sessions, logger)
	catalogService := service.NewCatalogService(productRepo, logger)
	orderService := service.NewOrderService(orderRepo, orderItemRepo, productRepo, customerRepo, logger)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.HTTP.Timeout,
		WriteTimeout: cfg.HTTP.Timeout,
	})

	app.Use(limiter.New(limiter.Config{
		Max:        20,
		Expiration: 5 * time.Second,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Try again later.",
			})
		},
	}))

	handlers := &transport.Handlers{
		Auth:    handler.NewAuthHandler(authService, cfg.Session.TTL, logger),
		Product: handler.NewProductHandler(catalogService, logger),
		Order:   handler.NewOrderHandler(orderService, logger),
	}

	transport.RegisterRoutes(app, handlers, sessions)

	go func() {
		logger.Info("starting http server", zap.String("port", cfg.HTTP.Port))

		if err := app.Listen(cfg.HTTP.Port); err != nil {
			logger.Fatal("http server stopped", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		logger.Warn("http shutdown error", zap.Error(err))
	}

	pool.Shutdown()
	logger.Info("shutdown complete")
}
