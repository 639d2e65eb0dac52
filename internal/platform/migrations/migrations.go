// Package migrations applies the relational schema for all bounded contexts
// in one place, replacing adapter-level automigrate in deployments that run
// migrations explicitly.
package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&orderRecord{},
		&productRecord{},
		&accountRecord{},
	)
}

// Order schema mirrors the orders Postgres adapter.
type orderRecord struct {
	ID           int64     `gorm:"primaryKey;column:id"`
	CustomerName string    `gorm:"column:customer_name"`
	ProductName  string    `gorm:"column:product_name"`
	Quantity     int       `gorm:"column:quantity"`
	Price        float64   `gorm:"column:price"`
	Status       string    `gorm:"column:status;type:varchar(32);index"`
	OrderDate    time.Time `gorm:"column:order_date"`
	CreatedBy    string    `gorm:"column:created_by;type:varchar(255);index"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (orderRecord) TableName() string { return "orders" }

// Product schema mirrors the products Postgres adapter.
type productRecord struct {
	ID          int64     `gorm:"primaryKey;column:id"`
	Name        string    `gorm:"column:name"`
	Description string    `gorm:"column:description"`
	Price       float64   `gorm:"column:price"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	Featured    bool      `gorm:"column:featured;default:true"`
	ImageURL    string    `gorm:"column:image_url"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (productRecord) TableName() string { return "products" }

// Account schema mirrors the accounts Postgres adapter.
type accountRecord struct {
	ID           int64     `gorm:"primaryKey;column:id"`
	Username     string    `gorm:"column:username;type:varchar(255);uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Role         string    `gorm:"column:role;type:varchar(16)"`
	Enabled      bool      `gorm:"column:enabled"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (accountRecord) TableName() string { return "user_accounts" }
