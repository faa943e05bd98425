package services

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/yungbote/orderhub-backend/internal/data/repos/orders"
	types "github.com/yungbote/orderhub-backend/internal/domain"
	"github.com/yungbote/orderhub-backend/internal/platform/logger"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, name, email string) (*types.Customer, error)
	ListCustomers(ctx context.Context) ([]*types.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*types.Customer, error)
	DeleteCustomer(ctx context.Context, id int64) error
}

type customerService struct {
	db           *gorm.DB
	log          *logger.Logger
	customerRepo orders.CustomerRepo
}

func NewCustomerService(db *gorm.DB, log *logger.Logger, customerRepo orders.CustomerRepo) CustomerService {
	return &customerService{
		db:           db,
		log:          log.With("service", "CustomerService"),
		customerRepo: customerRepo,
	}
}

func (s *customerService) CreateCustomer(ctx context.Context, name, email string) (*types.Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return nil, fmt.Errorf("customer name and email are required")
	}
	created, err := s.customerRepo.Create(ctx, nil, []*types.Customer{{
		Name:     name,
		Email:    email,
		IsActive: true,
	}})
	if err != nil {
		return nil, fmt.Errorf("error creating customer: %w", err)
	}
	return created[0], nil
}

func (s *customerService) ListCustomers(ctx context.Context) ([]*types.Customer, error) {
	return s.customerRepo.List(ctx, nil)
}

func (s *customerService) GetCustomer(ctx context.Context, id int64) (*types.Customer, error) {
	found, err := s.customerRepo.GetByIDs(ctx, nil, []int64{id})
	if err != nil {
		return nil, fmt.Errorf("error fetching customer: %w", err)
	}
	if len(found) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return found[0], nil
}

// DeleteCustomer removes the customer and, by ownership, its orders and
// their items.
func (s *customerService) DeleteCustomer(ctx context.Context, id int64) error {
	if _, err := s.GetCustomer(ctx, id); err != nil {
		return err
	}
	if err := s.customerRepo.Delete(ctx, nil, id); err != nil {
		return fmt.Errorf("error deleting customer %d: %w", id, err)
	}
	return nil
}
