// Package postgres opens the GORM connection and owns the schema for the
// PostgreSQL storage driver. The repositories live in the orderrepo and
// shippingrepo subpackages and the event outbox in outbox.
package postgres

import (
	"fmt"

	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/adapters/out/postgres/outbox"
	"fulfillment/internal/adapters/out/postgres/shippingrepo"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DSN holds the connection settings for the database.
type DSN struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

func (d DSN) String() string {
	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, sslMode)
}

// Open connects to the database. GORM's own SQL logging stays silent; the
// repositories report failures as repository errors instead.
func Open(dsn DSN) (*gorm.DB, error) {
	db, err := gorm.Open(postgresdriver.Open(dsn.String()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	return db, nil
}

// Migrate creates or updates every table the storage driver uses.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.LineDTO{},
		&shippingrepo.ShippingDTO{},
		&outbox.EventDTO{},
	)
}
