package postgres

import (
	"laborders/internal/adapters/out/postgres/orderrepo"
	"laborders/internal/adapters/out/postgres/userrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates the database schema for all persisted aggregates.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.ServiceDTO{},
		&userrepo.UserDTO{},
	)
}
