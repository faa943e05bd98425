package services

import (
	"context"
	"testing"

	"github.com/yungbote/orderhub-backend/internal/data/repos/orders"
	"github.com/yungbote/orderhub-backend/internal/data/repos/testutil"
	types "github.com/yungbote/orderhub-backend/internal/domain"
)

func TestOrderQueryPermissiveStatusPolicy(t *testing.T) {
	deps := newTestDeps(t)
	svc := NewOrderQueryService(deps.db, deps.log, deps.orderRepo)
	ctx := context.Background()

	c := testutil.SeedCustomer(t, ctx, deps.db, "Peg", "peg@example.com")
	testutil.SeedOrder(t, ctx, deps.db, c.ID, types.OrderStatusPaid, false, 100)

	// Unknown tokens match nothing, they never error.
	for _, bogus := range []string{"bogus", "PAID", "Paid "} {
		results, total, err := svc.ListOrders(ctx, orders.OrderFilter{Status: bogus, EmailSubstring: "peg@"})
		if err != nil {
			t.Fatalf("ListOrders(%q): %v", bogus, err)
		}
		if total != 0 || len(results) != 0 {
			t.Fatalf("ListOrders(%q): expected zero matches, got %d", bogus, total)
		}
	}

	results, total, err := svc.ListOrders(ctx, orders.OrderFilter{Status: "paid", EmailSubstring: "PEG@"})
	if err != nil {
		t.Fatalf("ListOrders(paid): %v", err)
	}
	if total != 1 || len(results) != 1 {
		t.Fatalf("ListOrders(paid): expected 1 match, got %d", total)
	}
}
