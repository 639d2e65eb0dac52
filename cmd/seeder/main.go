// Command seeder loads the demo dataset into PostgreSQL and exits. The API
// can also seed at startup via SEED_DEMO_DATA; this one-shot exists for
// provisioning a database ahead of deployment.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	accountshash "github.com/ordertrack/order-tracking-api/internal/domains/accounts/adapters/hash"
	accountspostgres "github.com/ordertrack/order-tracking-api/internal/domains/accounts/adapters/persistence/postgres"
	orderspostgres "github.com/ordertrack/order-tracking-api/internal/domains/orders/adapters/persistence/postgres"
	productspostgres "github.com/ordertrack/order-tracking-api/internal/domains/products/adapters/persistence/postgres"
	platformmigrations "github.com/ordertrack/order-tracking-api/internal/platform/migrations"
	platformpostgres "github.com/ordertrack/order-tracking-api/internal/platform/postgres"
	platformseed "github.com/ordertrack/order-tracking-api/internal/platform/seed"
)

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; cannot seed demo data")
	}
	if err := platformmigrations.Run(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	platformseed.Run(ctx, platformseed.Stores{
		Orders:   orderspostgres.NewRepository(db),
		Products: productspostgres.NewRepository(db),
		Accounts: accountspostgres.NewRepository(db),
		Hasher:   accountshash.NewBcrypt(bcryptCostFromEnv()),
	}, logger)
	log.Printf("demo data seeding completed")
}

func bcryptCostFromEnv() int {
	raw := strings.TrimSpace(os.Getenv("BCRYPT_COST"))
	if raw == "" {
		return 0
	}
	cost, err := strconv.Atoi(raw)
	if err != nil || cost <= 0 {
		return 0
	}
	return cost
}
