package db

import (
	"gorm.io/gorm"

	types "github.com/yungbote/orderhub-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		&types.Customer{},
		&types.Order{},
		&types.OrderItem{},
		&types.SeedRun{},
	)
}
