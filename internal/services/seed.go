package services

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/orderhub-backend/internal/data/repos/orders"
	types "github.com/yungbote/orderhub-backend/internal/domain"
	"github.com/yungbote/orderhub-backend/internal/platform/logger"
)

const (
	DefaultSeedCustomers         = 100
	DefaultSeedOrdersPerCustomer = 5
	DefaultSeedItemsPerOrder     = 3

	seedSKUCount    = 200
	seedMaxQuantity = 5
)

var seedUnitPricesCents = []int64{199, 499, 999, 1499, 2499}

type SeedParams struct {
	Customers         int `json:"customers"`
	OrdersPerCustomer int `json:"orders_per_customer"`
	ItemsPerOrder     int `json:"items_per_order"`
}

func (p SeedParams) withDefaults() SeedParams {
	if p.Customers <= 0 {
		p.Customers = DefaultSeedCustomers
	}
	if p.OrdersPerCustomer <= 0 {
		p.OrdersPerCustomer = DefaultSeedOrdersPerCustomer
	}
	if p.ItemsPerOrder <= 0 {
		p.ItemsPerOrder = DefaultSeedItemsPerOrder
	}
	return p
}

type SeedResult struct {
	RunID            uuid.UUID `json:"run_id"`
	CustomersCreated int       `json:"customers"`
	OrdersCreated    int       `json:"orders"`
	ItemsCreated     int       `json:"items"`
}

// SeedService populates the store with randomized but internally consistent
// data: every generated order's total_cents equals the sum of its generated
// items, whatever the random draws were. Not for production deployments.
type SeedService interface {
	Seed(ctx context.Context, params SeedParams) (*SeedResult, error)
}

type seedService struct {
	db           *gorm.DB
	log          *logger.Logger
	customerRepo orders.CustomerRepo
	orderRepo    orders.OrderRepo
	itemRepo     orders.OrderItemRepo
	seedRunRepo  orders.SeedRunRepo
}

func NewSeedService(db *gorm.DB, log *logger.Logger, customerRepo orders.CustomerRepo, orderRepo orders.OrderRepo, itemRepo orders.OrderItemRepo, seedRunRepo orders.SeedRunRepo) SeedService {
	return &seedService{
		db:           db,
		log:          log.With("service", "SeedService"),
		customerRepo: customerRepo,
		orderRepo:    orderRepo,
		itemRepo:     itemRepo,
		seedRunRepo:  seedRunRepo,
	}
}

// Seed writes customers, orders and items as three grouped batch inserts
// inside one transaction, then reconciles each order's total from the
// in-memory generated items in a single batched pass. Batched inserts skip
// any per-record total maintenance, so the reconciliation step is what
// keeps stored totals correct.
//
// The SeedRun audit row is written outside that transaction: a failed run
// stays visible with its error even though the data it attempted was
// rolled back.
func (s *seedService) Seed(ctx context.Context, params SeedParams) (*SeedResult, error) {
	params = params.withDefaults()

	paramsJSON, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("error encoding seed params: %w", err)
	}
	run, err := s.seedRunRepo.Create(ctx, nil, &types.SeedRun{
		ID:     uuid.New(),
		Status: types.SeedRunStatusRunning,
		Params: paramsJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("error recording seed run: %w", err)
	}

	s.log.Info("Seed run started",
		"run_id", run.ID.String(),
		"customers", params.Customers,
		"orders_per_customer", params.OrdersPerCustomer,
		"items_per_order", params.ItemsPerOrder,
	)

	result := &SeedResult{RunID: run.ID}
	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Claim a fresh id range so generated emails never collide with
		// earlier runs.
		maxID, err := s.customerRepo.MaxID(ctx, tx)
		if err != nil {
			return err
		}
		startIdx := maxID + 1

		customers := make([]*types.Customer, 0, params.Customers)
		for i := 0; i < params.Customers; i++ {
			customers = append(customers, &types.Customer{
				Name:     randomCustomerName(),
				Email:    fmt.Sprintf("user%d@example.com", startIdx+int64(i)),
				IsActive: true,
			})
		}
		if _, err := s.customerRepo.Create(ctx, tx, customers); err != nil {
			return err
		}

		orderRows := make([]*types.Order, 0, params.Customers*params.OrdersPerCustomer)
		for _, c := range customers {
			for j := 0; j < params.OrdersPerCustomer; j++ {
				orderRows = append(orderRows, &types.Order{
					CustomerID: c.ID,
					Status:     randomOrderStatus(),
				})
			}
		}
		if _, err := s.orderRepo.Create(ctx, tx, orderRows); err != nil {
			return err
		}

		itemRows := make([]*types.OrderItem, 0, len(orderRows)*params.ItemsPerOrder)
		for _, o := range orderRows {
			for k := 0; k < params.ItemsPerOrder; k++ {
				itemRows = append(itemRows, &types.OrderItem{
					OrderID:        o.ID,
					SKU:            fmt.Sprintf("SKU-%d", rand.IntN(seedSKUCount)+1),
					Quantity:       rand.IntN(seedMaxQuantity) + 1,
					UnitPriceCents: seedUnitPricesCents[rand.IntN(len(seedUnitPricesCents))],
				})
			}
		}
		if _, err := s.itemRepo.Create(ctx, tx, itemRows); err != nil {
			return err
		}

		// Reconciliation pass: totals come from the items just generated,
		// no re-read of the store.
		totals := make(map[int64]int64, len(orderRows))
		for _, it := range itemRows {
			totals[it.OrderID] += it.LineTotalCents()
		}
		for _, o := range orderRows {
			o.TotalCents = totals[o.ID]
		}
		if err := s.orderRepo.ReplaceTotals(ctx, tx, orderRows); err != nil {
			return err
		}

		result.CustomersCreated = len(customers)
		result.OrdersCreated = len(orderRows)
		result.ItemsCreated = len(itemRows)
		return nil
	})

	updates := map[string]interface{}{
		"customers_created": result.CustomersCreated,
		"orders_created":    result.OrdersCreated,
		"items_created":     result.ItemsCreated,
	}
	if txErr != nil {
		updates["status"] = types.SeedRunStatusFailed
		updates["error"] = txErr.Error()
		if err := s.seedRunRepo.UpdateFields(ctx, nil, run.ID, updates); err != nil {
			s.log.Error("Failed to mark seed run failed", "run_id", run.ID.String(), "error", err)
		}
		return nil, fmt.Errorf("seed run %s failed: %w", run.ID, txErr)
	}

	updates["status"] = types.SeedRunStatusSucceeded
	if err := s.seedRunRepo.UpdateFields(ctx, nil, run.ID, updates); err != nil {
		s.log.Error("Failed to mark seed run succeeded", "run_id", run.ID.String(), "error", err)
	}

	s.log.Info("Seed run finished",
		"run_id", run.ID.String(),
		"customers", result.CustomersCreated,
		"orders", result.OrdersCreated,
		"items", result.ItemsCreated,
	)
	return result, nil
}

// Weights: paid 0.55, draft 0.35, shipped 0.10.
func randomOrderStatus() types.OrderStatus {
	switch v := rand.Float64(); {
	case v < 0.55:
		return types.OrderStatusPaid
	case v < 0.90:
		return types.OrderStatusDraft
	default:
		return types.OrderStatusShipped
	}
}

func randomCustomerName() string {
	letters := make([]byte, 5)
	for i := range letters {
		letters[i] = byte('A' + rand.IntN(26))
	}
	return "User " + string(letters)
}
