package domain

import (
	"time"
)

// OrderStatus values are the stored wire tokens. Filters compare against
// them case-sensitively; anything else matches no rows.
type OrderStatus string

const (
	OrderStatusDraft     OrderStatus = "draft"
	OrderStatusPaid      OrderStatus = "paid"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusCancelled OrderStatus = "cancelled"
)

func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusDraft, OrderStatusPaid, OrderStatusShipped, OrderStatusCancelled:
		return OrderStatus(s), true
	}
	return "", false
}

type Order struct {
	ID         int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID int64       `gorm:"not null;index;column:customer_id" json:"customer_id"`
	Status     OrderStatus `gorm:"type:text;not null;default:'draft';index;column:status" json:"status"`
	IsArchived bool        `gorm:"not null;default:false;index;column:is_archived" json:"is_archived"`

	// Derived: sum of quantity * unit_price_cents over Items. Maintained by
	// the item write path and the seed reconciliation pass, never by the
	// aggregation read path.
	TotalCents int64 `gorm:"not null;default:0;column:total_cents" json:"total_cents"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"-"`
}

func (Order) TableName() string { return "orders" }
