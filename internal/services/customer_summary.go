package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/orderhub-backend/internal/data/repos/orders"
	"github.com/yungbote/orderhub-backend/internal/platform/logger"
)

const DefaultSummaryLimit = 50

// CustomerSummaryService ranks active customers by what they have actually
// paid: the sum and count of their paid, non-archived orders.
type CustomerSummaryService interface {
	TopCustomers(ctx context.Context, limit int) ([]*orders.CustomerSpendRow, error)
}

type customerSummaryService struct {
	db        *gorm.DB
	log       *logger.Logger
	orderRepo orders.OrderRepo
}

func NewCustomerSummaryService(db *gorm.DB, log *logger.Logger, orderRepo orders.OrderRepo) CustomerSummaryService {
	return &customerSummaryService{
		db:        db,
		log:       log.With("service", "CustomerSummaryService"),
		orderRepo: orderRepo,
	}
}

// TopCustomers returns up to limit rows ordered by spend descending, ties
// broken by ascending customer id. limit <= 0 is clamped to 1. The work is
// one grouped query over maintained order totals; item rows are never read.
func (s *customerSummaryService) TopCustomers(ctx context.Context, limit int) ([]*orders.CustomerSpendRow, error) {
	if limit <= 0 {
		limit = 1
	}
	rows, err := s.orderRepo.TopCustomersBySpend(ctx, nil, limit)
	if err != nil {
		return nil, fmt.Errorf("error aggregating customer spend: %w", err)
	}
	return rows, nil
}
