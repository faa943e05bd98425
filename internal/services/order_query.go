package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/orderhub-backend/internal/data/repos/orders"
	types "github.com/yungbote/orderhub-backend/internal/domain"
	"github.com/yungbote/orderhub-backend/internal/platform/logger"
)

// OrderQueryService is the read path over orders: filtered listings and
// direct identity lookups. It never mutates anything.
type OrderQueryService interface {
	ListOrders(ctx context.Context, filter orders.OrderFilter) ([]*types.Order, int64, error)
	GetOrder(ctx context.Context, id int64) (*types.Order, error)
}

type orderQueryService struct {
	db        *gorm.DB
	log       *logger.Logger
	orderRepo orders.OrderRepo
}

func NewOrderQueryService(db *gorm.DB, log *logger.Logger, orderRepo orders.OrderRepo) OrderQueryService {
	return &orderQueryService{
		db:        db,
		log:       log.With("service", "OrderQueryService"),
		orderRepo: orderRepo,
	}
}

// ListOrders returns every order matching the filter, newest first, plus
// the total match count. Paging over the sequence is the caller's concern.
// An unrecognized status token is passed through as-is and matches zero
// orders rather than failing the request.
func (s *orderQueryService) ListOrders(ctx context.Context, filter orders.OrderFilter) ([]*types.Order, int64, error) {
	results, total, err := s.orderRepo.List(ctx, nil, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing orders: %w", err)
	}
	return results, total, nil
}

func (s *orderQueryService) GetOrder(ctx context.Context, id int64) (*types.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	return order, nil
}
