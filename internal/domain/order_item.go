package domain

import (
	"time"
)

type OrderItem struct {
	ID             int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID        int64  `gorm:"not null;index;column:order_id" json:"order_id"`
	SKU            string `gorm:"not null;column:sku" json:"sku"`
	Quantity       int    `gorm:"not null;column:quantity" json:"quantity"`
	UnitPriceCents int64  `gorm:"not null;column:unit_price_cents" json:"unit_price_cents"`

	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (OrderItem) TableName() string { return "order_items" }

func (oi *OrderItem) LineTotalCents() int64 {
	return int64(oi.Quantity) * oi.UnitPriceCents
}
