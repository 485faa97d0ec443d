// Package main initializes and starts the storefront API server, setting up
// configuration, logging, the database connection, repositories, services
// and handlers.
package main

import (
	"cmp"
	"context"
	"fmt"

	nethttp "net/http"

	"go.uber.org/zap"

	"github.com/avdeenkov/shopview/internal/config"
	"github.com/avdeenkov/shopview/internal/db"
	"github.com/avdeenkov/shopview/internal/logger"
	"github.com/avdeenkov/shopview/internal/repository"
	"github.com/avdeenkov/shopview/internal/server/handler/http"
	"github.com/avdeenkov/shopview/internal/service"
)

var (
	// version holds the build version set via ldflags.
	version string
	// buildDate holds the build timestamp set via ldflags.
	buildDate string
)

func main() {
	// Parse command-line and environment configuration.
	options := config.Parse()
	addr := options.Port
	dsn := options.DatabaseDSN

	// Print build metadata (or "N/A" if unset).
	fmt.Printf("Build version: %s\n", cmp.Or(version, "N/A"))
	fmt.Printf("Build date: %s\n", cmp.Or(buildDate, "N/A"))

	// Initialize structured logging.
	log := logger.New()
	defer func() { _ = log.Log.Sync() }()
	if err := log.Init(options.LogLevel); err != nil {
		log.Log.Fatal("failed to init logger", zap.Error(err))
	}
	zapLogger := log.Log

	// Initialize PostgreSQL connection and schema.
	postgresDB, err := db.InitPostgres(dsn)
	if err != nil {
		zapLogger.Fatal("cannot init database", zap.Error(err))
	}

	// Seed the catalog on first start.
	if err := db.SeedProducts(context.Background(), postgresDB); err != nil {
		zapLogger.Fatal("cannot seed products", zap.Error(err))
	}

	// Initialize repositories for users and products.
	authRepo := repository.NewPostgresAuthRepository(postgresDB)
	productRepo := repository.NewPostgresProductRepository(postgresDB)

	// Initialize business-logic services.
	authService := service.NewAuthService(authRepo)
	productService := service.NewProductService(productRepo)

	// Create HTTP handlers for auth and catalog endpoints.
	authHandler := &http.AuthHandler{AuthService: authService}
	productHandler := &http.ProductHandler{ProductService: productService}

	// Build the router with middleware and routes.
	router := http.NewRouter(authHandler, productHandler, zapLogger)

	server := &nethttp.Server{
		Addr:    addr,
		Handler: router,
	}

	zapLogger.Info("starting HTTP server", zap.String("addr", addr))
	if err := server.ListenAndServe(); err != nil {
		zapLogger.Fatal("failed to start HTTP server", zap.Error(err))
	}
}
