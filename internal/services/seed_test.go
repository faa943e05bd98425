package services

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/orderhub-backend/internal/data/repos/orders"
	"github.com/yungbote/orderhub-backend/internal/data/repos/testutil"
	types "github.com/yungbote/orderhub-backend/internal/domain"
	"github.com/yungbote/orderhub-backend/internal/platform/logger"
)

func newSeedService(t *testing.T) (SeedService, *testDeps) {
	t.Helper()
	deps := newTestDeps(t)
	svc := NewSeedService(deps.db, deps.log, deps.customerRepo, deps.orderRepo, deps.itemRepo, deps.seedRunRepo)
	return svc, deps
}

func TestSeedServiceInvariants(t *testing.T) {
	svc, deps := newSeedService(t)
	ctx := context.Background()

	prevMax, err := deps.customerRepo.MaxID(ctx, nil)
	if err != nil {
		t.Fatalf("MaxID: %v", err)
	}

	result, err := svc.Seed(ctx, SeedParams{Customers: 2, OrdersPerCustomer: 3, ItemsPerOrder: 2})
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if result.CustomersCreated != 2 || result.OrdersCreated != 6 || result.ItemsCreated != 12 {
		t.Fatalf("Seed: unexpected counts %+v", result)
	}

	var customers []*types.Customer
	if err := deps.db.Where("id > ?", prevMax).Order("id ASC").Find(&customers).Error; err != nil {
		t.Fatalf("load seeded customers: %v", err)
	}
	if len(customers) != 2 {
		t.Fatalf("expected 2 new customers, got %d", len(customers))
	}
	for i, c := range customers {
		wantEmail := fmt.Sprintf("user%d@example.com", prevMax+int64(i)+1)
		if c.Email != wantEmail {
			t.Fatalf("customer %d: email %q, want %q", c.ID, c.Email, wantEmail)
		}
		if !c.IsActive {
			t.Fatalf("customer %d: expected active", c.ID)
		}

		var orderRows []*types.Order
		if err := deps.db.Where("customer_id = ?", c.ID).Find(&orderRows).Error; err != nil {
			t.Fatalf("load orders: %v", err)
		}
		if len(orderRows) != 3 {
			t.Fatalf("customer %d: expected 3 orders, got %d", c.ID, len(orderRows))
		}
		for _, o := range orderRows {
			switch o.Status {
			case types.OrderStatusPaid, types.OrderStatusDraft, types.OrderStatusShipped:
			default:
				t.Fatalf("order %d: unexpected status %q", o.ID, o.Status)
			}
			if o.IsArchived {
				t.Fatalf("order %d: generated orders must not be archived", o.ID)
			}

			items, err := deps.itemRepo.ListByOrderIDs(ctx, nil, []int64{o.ID})
			if err != nil {
				t.Fatalf("load items: %v", err)
			}
			if len(items) != 2 {
				t.Fatalf("order %d: expected 2 items, got %d", o.ID, len(items))
			}
			var want int64
			for _, it := range items {
				if !strings.HasPrefix(it.SKU, "SKU-") {
					t.Fatalf("item %d: unexpected sku %q", it.ID, it.SKU)
				}
				if it.Quantity < 1 || it.Quantity > 5 {
					t.Fatalf("item %d: quantity %d out of range", it.ID, it.Quantity)
				}
				if it.UnitPriceCents < 199 {
					t.Fatalf("item %d: unit price %d out of range", it.ID, it.UnitPriceCents)
				}
				want += it.LineTotalCents()
			}
			// The stored total must equal the generated items exactly;
			// with at least one item it can never be zero.
			if o.TotalCents != want || o.TotalCents == 0 {
				t.Fatalf("order %d: total=%d, want %d", o.ID, o.TotalCents, want)
			}
		}
	}

	run, err := deps.seedRunRepo.GetByID(ctx, nil, result.RunID)
	if err != nil {
		t.Fatalf("load seed run: %v", err)
	}
	if run.Status != types.SeedRunStatusSucceeded {
		t.Fatalf("seed run: status %q, want succeeded", run.Status)
	}
	if run.CustomersCreated != 2 || run.OrdersCreated != 6 || run.ItemsCreated != 12 {
		t.Fatalf("seed run: unexpected counts %+v", run)
	}
}

func TestSeedServiceContinuesIDRange(t *testing.T) {
	svc, deps := newSeedService(t)
	ctx := context.Background()

	if _, err := svc.Seed(ctx, SeedParams{Customers: 1, OrdersPerCustomer: 1, ItemsPerOrder: 1}); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	firstMax, err := deps.customerRepo.MaxID(ctx, nil)
	if err != nil {
		t.Fatalf("MaxID: %v", err)
	}

	if _, err := svc.Seed(ctx, SeedParams{Customers: 1, OrdersPerCustomer: 1, ItemsPerOrder: 1}); err != nil {
		t.Fatalf("second Seed: %v", err)
	}

	var latest types.Customer
	if err := deps.db.Order("id DESC").First(&latest).Error; err != nil {
		t.Fatalf("load latest customer: %v", err)
	}
	if latest.ID <= firstMax {
		t.Fatalf("expected new customer past id %d, got %d", firstMax, latest.ID)
	}
	wantEmail := fmt.Sprintf("user%d@example.com", firstMax+1)
	if latest.Email != wantEmail {
		t.Fatalf("second run email: %q, want %q", latest.Email, wantEmail)
	}
}

func TestSeedParamsDefaults(t *testing.T) {
	p := SeedParams{}.withDefaults()
	if p.Customers != DefaultSeedCustomers || p.OrdersPerCustomer != DefaultSeedOrdersPerCustomer || p.ItemsPerOrder != DefaultSeedItemsPerOrder {
		t.Fatalf("withDefaults: got %+v", p)
	}

	p = SeedParams{Customers: -3, OrdersPerCustomer: 2, ItemsPerOrder: 0}.withDefaults()
	if p.Customers != DefaultSeedCustomers || p.OrdersPerCustomer != 2 || p.ItemsPerOrder != DefaultSeedItemsPerOrder {
		t.Fatalf("withDefaults: got %+v", p)
	}
}

func TestRandomOrderStatusStaysInDistribution(t *testing.T) {
	for i := 0; i < 1000; i++ {
		switch randomOrderStatus() {
		case types.OrderStatusPaid, types.OrderStatusDraft, types.OrderStatusShipped:
		default:
			t.Fatalf("randomOrderStatus: value outside the seed distribution")
		}
	}
}

// testDeps bundles the repos the service tests share.
type testDeps struct {
	db           *gorm.DB
	log          *logger.Logger
	customerRepo orders.CustomerRepo
	orderRepo    orders.OrderRepo
	itemRepo     orders.OrderItemRepo
	seedRunRepo  orders.SeedRunRepo
}

func newTestDeps(t *testing.T) *testDeps {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	return &testDeps{
		db:           db,
		log:          log,
		customerRepo: orders.NewCustomerRepo(db, log),
		orderRepo:    orders.NewOrderRepo(db, log),
		itemRepo:     orders.NewOrderItemRepo(db, log),
		seedRunRepo:  orders.NewSeedRunRepo(db, log),
	}
}
