package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	types "github.com/yungbote/orderhub-backend/internal/domain"
)

func SeedCustomer(tb testing.TB, ctx context.Context, tx *gorm.DB, name, email string) *types.Customer {
	tb.Helper()
	c := &types.Customer{
		Name:     name,
		Email:    email,
		IsActive: true,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed customer: %v", err)
	}
	return c
}

func SeedOrder(tb testing.TB, ctx context.Context, tx *gorm.DB, customerID int64, status types.OrderStatus, archived bool, totalCents int64) *types.Order {
	tb.Helper()
	o := &types.Order{
		CustomerID: customerID,
		Status:     status,
		IsArchived: archived,
		TotalCents: totalCents,
	}
	if err := tx.WithContext(ctx).Create(o).Error; err != nil {
		tb.Fatalf("seed order: %v", err)
	}
	return o
}

func SeedOrderItem(tb testing.TB, ctx context.Context, tx *gorm.DB, orderID int64, sku string, quantity int, unitPriceCents int64) *types.OrderItem {
	tb.Helper()
	it := &types.OrderItem{
		OrderID:        orderID,
		SKU:            sku,
		Quantity:       quantity,
		UnitPriceCents: unitPriceCents,
	}
	if err := tx.WithContext(ctx).Create(it).Error; err != nil {
		tb.Fatalf("seed order item: %v", err)
	}
	return it
}
