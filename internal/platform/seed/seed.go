// Package seed loads demo data so the API has something to serve right after
// startup. Each entity type is seeded only when its store is empty.
package seed

import (
	"context"
	"log/slog"
	"time"

	accountsdomain "github.com/ordertrack/order-tracking-api/internal/domains/accounts/domain"
	accountsports "github.com/ordertrack/order-tracking-api/internal/domains/accounts/ports"
	ordersdomain "github.com/ordertrack/order-tracking-api/internal/domains/orders/domain"
	ordersports "github.com/ordertrack/order-tracking-api/internal/domains/orders/ports"
	productsdomain "github.com/ordertrack/order-tracking-api/internal/domains/products/domain"
	productsports "github.com/ordertrack/order-tracking-api/internal/domains/products/ports"
)

// Stores groups the repositories the seeder writes to.
type Stores struct {
	Orders   ordersports.Repository
	Products productsports.Repository
	Accounts accountsports.Repository
	Hasher   accountsports.PasswordHasher
}

// Run seeds accounts, orders, and products. Failures are logged and skipped
// rather than aborting startup.
func Run(ctx context.Context, stores Stores, logger *slog.Logger) {
	seedAccounts(ctx, stores, logger)
	seedOrders(ctx, stores, logger)
	seedProducts(ctx, stores, logger)
}

func seedAccounts(ctx context.Context, stores Stores, logger *slog.Logger) {
	if stores.Accounts == nil || stores.Hasher == nil {
		return
	}
	count, err := stores.Accounts.Count(ctx)
	if err != nil || count > 0 {
		return
	}
	hash, err := stores.Hasher.Hash("admin123")
	if err != nil {
		logWarn(logger, "failed to hash seed admin password", err)
		return
	}
	if _, err := stores.Accounts.Save(ctx, &accountsdomain.Account{
		Username:     "admin",
		PasswordHash: hash,
		Role:         accountsdomain.RoleAdmin,
		Enabled:      true,
	}); err != nil {
		logWarn(logger, "failed to seed admin account", err)
	}
}

func seedOrders(ctx context.Context, stores Stores, logger *slog.Logger) {
	if stores.Orders == nil {
		return
	}
	existing, err := stores.Orders.List(ctx)
	if err != nil || len(existing) > 0 {
		return
	}
	now := time.Now()
	demo := []*ordersdomain.Order{
		{CustomerName: "Jane Doe", ProductName: "Wireless Mouse", Quantity: 2, Price: 24.99, Status: ordersdomain.StatusPending, OrderDate: now.Add(-24 * time.Hour), CreatedBy: "user"},
		{CustomerName: "John Smith", ProductName: "Mechanical Keyboard", Quantity: 1, Price: 89.99, Status: ordersdomain.StatusShipped, OrderDate: now.Add(-6 * time.Hour), CreatedBy: "admin"},
		{CustomerName: "Alice Johnson", ProductName: "USB-C Hub", Quantity: 3, Price: 39.5, Status: ordersdomain.StatusDelivered, OrderDate: now.Add(-48 * time.Hour), CreatedBy: "user"},
	}
	for _, order := range demo {
		if _, err := stores.Orders.Save(ctx, order); err != nil {
			logWarn(logger, "failed to seed order", err)
		}
	}
}

func seedProducts(ctx context.Context, stores Stores, logger *slog.Logger) {
	if stores.Products == nil {
		return
	}
	existing, err := stores.Products.List(ctx)
	if err != nil || len(existing) > 0 {
		return
	}
	now := time.Now()
	demo := []*productsdomain.Product{
		{Name: "Wireless Earbuds", Description: "Noise-cancelling earbuds with 24-hour battery life.", Price: 59.99, CreatedAt: now.Add(-48 * time.Hour), Featured: true, ImageURL: "https://images.unsplash.com/photo-1580894908361-967195033215?auto=format&fit=crop&w=640&q=80"},
		{Name: "Smart Fitness Watch", Description: "Track workouts, health metrics, and notifications on the go.", Price: 129.00, CreatedAt: now.Add(-24 * time.Hour), Featured: true, ImageURL: "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?auto=format&fit=crop&w=640&q=80"},
		{Name: "Portable Bluetooth Speaker", Description: "Water-resistant speaker with deep bass and 12-hour playback.", Price: 89.50, CreatedAt: now.Add(-8 * time.Hour), Featured: true, ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?auto=format&fit=crop&w=640&q=80"},
		{Name: "USB-C Laptop Hub", Description: "Expand to HDMI, Ethernet, USB-A, and SD card slots instantly.", Price: 39.75, CreatedAt: now.Add(-3 * time.Hour), Featured: true, ImageURL: "https://images.unsplash.com/photo-1517336714731-489689fd1ca8?auto=format&fit=crop&w=640&q=80"},
	}
	for _, product := range demo {
		if _, err := stores.Products.Save(ctx, product); err != nil {
			logWarn(logger, "failed to seed product", err)
		}
	}
}

func logWarn(logger *slog.Logger, msg string, err error) {
	if logger != nil {
		logger.Warn(msg, slog.String("error", err.Error()))
	}
}
