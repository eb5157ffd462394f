package main

import (
	"net/http"

	adminapp "github.com/andrifals/gasstore/application/admin"
	orderapp "github.com/andrifals/gasstore/application/order"
	productapp "github.com/andrifals/gasstore/application/product"
	"github.com/andrifals/gasstore/cmd/config"
	redisclient "github.com/andrifals/gasstore/cmd/redis"
	_ "github.com/andrifals/gasstore/docs"
	"github.com/andrifals/gasstore/repository/backend"
	customerRepo "github.com/andrifals/gasstore/repository/customer"
	orderRepo "github.com/andrifals/gasstore/repository/order"
	productRepo "github.com/andrifals/gasstore/repository/product"
	redisRepo "github.com/andrifals/gasstore/repository/redis"
	"github.com/andrifals/gasstore/transport"
	"github.com/andrifals/gasstore/utils/logger"
	"go.uber.org/zap"
)

// @title GASSTORE API
// @version 1.0
// @description Gas storefront and admin dashboard API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Initialize Redis client. The service still works without it;
	// sessions and product caching just stop accelerating.
	if err := redisclient.New(cfg); err != nil {
		logger.Warn("redis unavailable, continuing without cache", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Hosted table API client; the only persistence boundary.
	backendClient := backend.NewClient(cfg)

	// Initialize repositories
	OrderRepo := orderRepo.NewOrderRepository(backendClient)
	CustomerRepo := customerRepo.NewCustomerRepository(backendClient)
	ProductRepo := productRepo.NewProductRepository(backendClient)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	OrderApp := orderapp.NewOrderApp(cfg, OrderRepo, CustomerRepo, ProductRepo, RedisRepo)
	ProductApp := productapp.NewProductApp(cfg, ProductRepo, RedisRepo)
	AdminApp := adminapp.NewAdminApp(cfg, RedisRepo)

	httpTransport := transport.NewTransport(OrderApp, ProductApp, AdminApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err := server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
