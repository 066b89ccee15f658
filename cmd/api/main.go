package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/ressit/ressit-pos-api/app"
	"github.com/ressit/ressit-pos-api/app/admins"
	"github.com/ressit/ressit-pos-api/app/categories"
	"github.com/ressit/ressit-pos-api/app/orders"
	"github.com/ressit/ressit-pos-api/app/products"
	"github.com/ressit/ressit-pos-api/app/reports"
	"github.com/ressit/ressit-pos-api/app/settings"
	"github.com/ressit/ressit-pos-api/config"
	"github.com/ressit/ressit-pos-api/logger"
	"github.com/ressit/ressit-pos-api/models"
	"github.com/ressit/ressit-pos-api/storage/memstore"
	"github.com/ressit/ressit-pos-api/storage/mongostore"
	"github.com/ressit/ressit-pos-api/storage/pgstore"
)

type store interface {
	models.Store
	Close(ctx context.Context) error
}

type pgCloser struct{ *pgstore.Store }

func (s pgCloser) Close(context.Context) error { return s.Store.Close() }

type memCloser struct{ *memstore.Store }

func (memCloser) Close(context.Context) error { return nil }

func openStore(ctx context.Context, cfg *config.Config, loc *time.Location, appLogger *zap.Logger) (store, error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		s, err := pgstore.Open(ctx, pgstore.Config{
			DSN:             cfg.Postgres.DSN,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		}, appLogger)
		if err != nil {
			return nil, err
		}
		return pgCloser{s}, nil
	case config.StoreMemory:
		appLogger.Warn("Using in-memory store, data is lost on exit")
		return memCloser{memstore.New()}, nil
	default:
		s, err := mongostore.Connect(ctx, mongostore.Config{
			URI:            cfg.Mongo.URI,
			Database:       cfg.Mongo.Database,
			ConnectTimeout: time.Duration(cfg.Mongo.ConnectTimeout) * time.Second,
			Location:       loc,
		}, appLogger)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
}

func main() {
	// 1. Load Configuration
	_ = godotenv.Load()
	cfg := config.LoadEnv()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	loc, _ := cfg.Location()

	// 2. Initialize Logger
	appLogger, err := logger.New(&logger.Config{
		IsDevelopment:     cfg.IsDevelopment(),
		Encoding:          cfg.Logger.Encoding,
		Level:             cfg.Logger.Level,
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	})
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer appLogger.Sync()

	// Clients send and expect plain JSON numbers for money.
	decimal.MarshalJSONWithoutQuotes = true

	// 3. Connect to the store
	ctx := context.Background()
	st, err := openStore(ctx, cfg, loc, appLogger)
	if err != nil {
		appLogger.Fatal("Could not open store", zap.String("driver", cfg.Store.Driver), zap.Error(err))
	}
	appLogger.Info("Store ready", zap.String("driver", cfg.Store.Driver))

	// 4. Initialize Repositories
	attempts := cfg.Store.IDAssignAttempts
	adminsRepo := models.NewAdminsRepository(st, attempts)
	categoriesRepo := models.NewCategoriesRepository(st, attempts)
	productsRepo := models.NewProductsRepository(st, attempts)
	ordersRepo := models.NewOrdersRepository(st, attempts, loc)
	settingsRepo := models.NewSettingsRepository(st, attempts)

	// 5. Initialize Handlers
	router := app.NewRouter(appLogger, st,
		admins.NewAdminHandler(adminsRepo, appLogger),
		categories.NewCategoryHandler(categoriesRepo, appLogger),
		products.NewProductHandler(productsRepo, appLogger),
		orders.NewOrderHandler(ordersRepo, appLogger),
		settings.NewSettingsHandler(settingsRepo, appLogger),
		reports.NewZReportHandler(ordersRepo, loc, appLogger),
	)

	// 6. Start HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: time.Duration(cfg.Server.ReadHeaderTimeout) * time.Second,
	}

	go func() {
		appLogger.Info("Starting HTTP server", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(ctx, time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server shutdown", zap.Error(err))
	}
	if err := st.Close(shutdownCtx); err != nil {
		appLogger.Error("Store close", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}
