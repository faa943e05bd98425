package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	SeedRunStatusRunning   = "running"
	SeedRunStatusSucceeded = "succeeded"
	SeedRunStatusFailed    = "failed"
)

// SeedRun records one invocation of the bulk seed generator: the requested
// volumes and what actually got committed. A failed run keeps whatever
// partial counts were reached before the error.
type SeedRun struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Status           string         `gorm:"not null;index;column:status" json:"status"`
	Params           datatypes.JSON `gorm:"column:params" json:"params"`
	CustomersCreated int            `gorm:"not null;default:0;column:customers_created" json:"customers_created"`
	OrdersCreated    int            `gorm:"not null;default:0;column:orders_created" json:"orders_created"`
	ItemsCreated     int            `gorm:"not null;default:0;column:items_created" json:"items_created"`
	Error            string         `gorm:"column:error" json:"error,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`
}

func (SeedRun) TableName() string { return "seed_runs" }
