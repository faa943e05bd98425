package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/orderhub-backend/internal/data/repos/orders"
	types "github.com/yungbote/orderhub-backend/internal/domain"
	"github.com/yungbote/orderhub-backend/internal/platform/logger"
)

type ItemInput struct {
	SKU            string `json:"sku"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
}

// OrderLifecycleService owns the explicit state changes: order creation,
// item writes, cancel and archive. Cancel and archive touch status /
// is_archived plus the audit timestamp and leave total_cents alone.
type OrderLifecycleService interface {
	CreateOrder(ctx context.Context, customerID int64, status types.OrderStatus) (*types.Order, error)
	AddItems(ctx context.Context, orderID int64, items []ItemInput) (*types.Order, error)
	Cancel(ctx context.Context, id int64) (*types.Order, error)
	Archive(ctx context.Context, id int64) (*types.Order, error)
}

type orderLifecycleService struct {
	db           *gorm.DB
	log          *logger.Logger
	customerRepo orders.CustomerRepo
	orderRepo    orders.OrderRepo
	itemRepo     orders.OrderItemRepo
}

func NewOrderLifecycleService(db *gorm.DB, log *logger.Logger, customerRepo orders.CustomerRepo, orderRepo orders.OrderRepo, itemRepo orders.OrderItemRepo) OrderLifecycleService {
	return &orderLifecycleService{
		db:           db,
		log:          log.With("service", "OrderLifecycleService"),
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		itemRepo:     itemRepo,
	}
}

func (s *orderLifecycleService) CreateOrder(ctx context.Context, customerID int64, status types.OrderStatus) (*types.Order, error) {
	if status == "" {
		status = types.OrderStatusDraft
	}
	owners, err := s.customerRepo.GetByIDs(ctx, nil, []int64{customerID})
	if err != nil {
		return nil, fmt.Errorf("error fetching customer: %w", err)
	}
	if len(owners) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	created, err := s.orderRepo.Create(ctx, nil, []*types.Order{{
		CustomerID: customerID,
		Status:     status,
	}})
	if err != nil {
		return nil, fmt.Errorf("error creating order: %w", err)
	}
	return created[0], nil
}

// AddItems appends items to an order and rebuilds the order's total in the
// same transaction, so the stored total never drifts from the item rows.
func (s *orderLifecycleService) AddItems(ctx context.Context, orderID int64, items []ItemInput) (*types.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("no items given")
	}
	rows := make([]*types.OrderItem, 0, len(items))
	for _, in := range items {
		if in.Quantity <= 0 {
			return nil, fmt.Errorf("item quantity must be positive, got %d", in.Quantity)
		}
		if in.UnitPriceCents < 0 {
			return nil, fmt.Errorf("item unit price must be non-negative, got %d", in.UnitPriceCents)
		}
		rows = append(rows, &types.OrderItem{
			OrderID:        orderID,
			SKU:            in.SKU,
			Quantity:       in.Quantity,
			UnitPriceCents: in.UnitPriceCents,
		})
	}

	if _, err := s.orderRepo.GetByID(ctx, nil, orderID); err != nil {
		return nil, err
	}

	if err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.itemRepo.Create(ctx, tx, rows); err != nil {
			return err
		}
		return s.orderRepo.RecalcTotals(ctx, tx, []int64{orderID})
	}); err != nil {
		return nil, fmt.Errorf("error adding items to order %d: %w", orderID, err)
	}

	return s.orderRepo.GetByID(ctx, nil, orderID)
}

func (s *orderLifecycleService) Cancel(ctx context.Context, id int64) (*types.Order, error) {
	if _, err := s.orderRepo.GetByID(ctx, nil, id); err != nil {
		return nil, err
	}
	if err := s.orderRepo.UpdateStatus(ctx, nil, id, types.OrderStatusCancelled); err != nil {
		return nil, fmt.Errorf("error cancelling order %d: %w", id, err)
	}
	return s.orderRepo.GetByID(ctx, nil, id)
}

func (s *orderLifecycleService) Archive(ctx context.Context, id int64) (*types.Order, error) {
	if _, err := s.orderRepo.GetByID(ctx, nil, id); err != nil {
		return nil, err
	}
	if err := s.orderRepo.SetArchived(ctx, nil, id, true); err != nil {
		return nil, fmt.Errorf("error archiving order %d: %w", id, err)
	}
	return s.orderRepo.GetByID(ctx, nil, id)
}
