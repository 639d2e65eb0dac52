package api

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	accountshandler "github.com/ordertrack/order-tracking-api/internal/domains/accounts/adapters/http/handler"
	accountshash "github.com/ordertrack/order-tracking-api/internal/domains/accounts/adapters/hash"
	accountsmemory "github.com/ordertrack/order-tracking-api/internal/domains/accounts/adapters/memory"
	accountspostgres "github.com/ordertrack/order-tracking-api/internal/domains/accounts/adapters/persistence/postgres"
	accountsapp "github.com/ordertrack/order-tracking-api/internal/domains/accounts/application"
	accountsports "github.com/ordertrack/order-tracking-api/internal/domains/accounts/ports"

	ordershandler "github.com/ordertrack/order-tracking-api/internal/domains/orders/adapters/http/handler"
	ordersmemory "github.com/ordertrack/order-tracking-api/internal/domains/orders/adapters/memory"
	ordersobs "github.com/ordertrack/order-tracking-api/internal/domains/orders/adapters/observability"
	orderspostgres "github.com/ordertrack/order-tracking-api/internal/domains/orders/adapters/persistence/postgres"
	ordersapp "github.com/ordertrack/order-tracking-api/internal/domains/orders/application"
	ordersports "github.com/ordertrack/order-tracking-api/internal/domains/orders/ports"

	productshandler "github.com/ordertrack/order-tracking-api/internal/domains/products/adapters/http/handler"
	productsmemory "github.com/ordertrack/order-tracking-api/internal/domains/products/adapters/memory"
	productspostgres "github.com/ordertrack/order-tracking-api/internal/domains/products/adapters/persistence/postgres"
	productsapp "github.com/ordertrack/order-tracking-api/internal/domains/products/application"
	productsports "github.com/ordertrack/order-tracking-api/internal/domains/products/ports"

	platformmigrations "github.com/ordertrack/order-tracking-api/internal/platform/migrations"
	platformobservability "github.com/ordertrack/order-tracking-api/internal/platform/observability"
	platformpostgres "github.com/ordertrack/order-tracking-api/internal/platform/postgres"
	platformseed "github.com/ordertrack/order-tracking-api/internal/platform/seed"
)

const serviceName = "order-tracking-api"

// Run boots the order tracking HTTP API with observability, repositories, and
// authentication wired.
func Run(ctx context.Context) error {
	instruments, shutdown, err := platformobservability.Init(ctx, serviceName)
	if err != nil {
		return fmt.Errorf("failed to initialize observability: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			instruments.Logger.Error("failed to shutdown observability", slog.String("error", err.Error()))
		}
	}()
	logger := instruments.Logger

	cfg, err := LoadConfig()
	if err != nil {
		return err
	}

	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanup()
	if db != nil {
		if err := platformmigrations.Run(db); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	orderRepo := buildOrderRepository(db)
	productRepo := buildProductRepository(db)
	accountRepo := buildAccountRepository(db)
	hasher := accountshash.NewBcrypt(cfg.BcryptCost)

	if cfg.SeedDemoData {
		platformseed.Run(ctx, platformseed.Stores{
			Orders:   orderRepo,
			Products: productRepo,
			Accounts: accountRepo,
			Hasher:   hasher,
		}, logger)
		logger.Info("demo data seeding completed")
	}

	orderService := ordersobs.New(
		ordersapp.NewService(orderRepo),
		ordersobs.WithLogger(logger),
		ordersobs.WithTracer(instruments.Tracer("internal.orders.application")),
		ordersobs.WithMeter(instruments.Meter("internal.orders.application")),
	)
	productService := productsapp.NewService(productRepo)
	accountService := accountsapp.NewService(accountRepo, hasher)

	router := NewRouter(Handlers{
		Orders:   ordershandler.NewOrderHandler(orderService),
		Products: productshandler.NewProductHandler(productService),
		Accounts: accountshandler.NewAccountHandler(accountService),
	}, BasicAuth(accountService), otelgin.Middleware(serviceName))

	addr := ":" + cfg.Port
	logger.Info("order tracking API listening", slog.String("addr", addr))
	if err := router.Run(addr); err != nil {
		logger.Error("order tracking API server exited", slog.String("addr", addr), slog.String("error", err.Error()))
		return err
	}
	return nil
}

func buildOrderRepository(db *gorm.DB) ordersports.Repository {
	if db == nil {
		return ordersmemory.NewRepository()
	}
	return orderspostgres.NewRepository(db)
}

func buildProductRepository(db *gorm.DB) productsports.Repository {
	if db == nil {
		return productsmemory.NewRepository()
	}
	return productspostgres.NewRepository(db)
}

func buildAccountRepository(db *gorm.DB) accountsports.Repository {
	if db == nil {
		return accountsmemory.NewRepository()
	}
	return accountspostgres.NewRepository(db)
}
