package services

import (
	"context"
	"testing"

	"github.com/yungbote/orderhub-backend/internal/data/repos/testutil"
	types "github.com/yungbote/orderhub-backend/internal/domain"
)

func TestCustomerSummaryClampsLimit(t *testing.T) {
	deps := newTestDeps(t)
	svc := NewCustomerSummaryService(deps.db, deps.log, deps.orderRepo)
	ctx := context.Background()

	testutil.SeedCustomer(t, ctx, deps.db, "Kim", "kim@example.com")
	testutil.SeedCustomer(t, ctx, deps.db, "Lee", "lee@example.com")

	for _, limit := range []int{0, -5} {
		rows, err := svc.TopCustomers(ctx, limit)
		if err != nil {
			t.Fatalf("TopCustomers(%d): %v", limit, err)
		}
		if len(rows) > 1 {
			t.Fatalf("TopCustomers(%d): expected at most 1 row, got %d", limit, len(rows))
		}
	}
}

// The worked example: a paid order for 500, a draft for 300 and an
// archived paid order for 9999 must summarize as one order, 500 cents.
func TestCustomerSummaryCountsOnlyQualifyingOrders(t *testing.T) {
	deps := newTestDeps(t)
	svc := NewCustomerSummaryService(deps.db, deps.log, deps.orderRepo)
	ctx := context.Background()

	alice := testutil.SeedCustomer(t, ctx, deps.db, "Alice", "alice+summary@example.com")
	testutil.SeedOrder(t, ctx, deps.db, alice.ID, types.OrderStatusPaid, false, 500)
	testutil.SeedOrder(t, ctx, deps.db, alice.ID, types.OrderStatusDraft, false, 300)
	testutil.SeedOrder(t, ctx, deps.db, alice.ID, types.OrderStatusPaid, true, 9999)

	rows, err := svc.TopCustomers(ctx, 100000)
	if err != nil {
		t.Fatalf("TopCustomers: %v", err)
	}

	var found bool
	for _, row := range rows {
		if row.CustomerID == alice.ID {
			found = true
			if row.OrderCount != 1 || row.TotalCents != 500 {
				t.Fatalf("alice: order_count=%d total=%d, want 1/500", row.OrderCount, row.TotalCents)
			}
			if row.Email != "alice+summary@example.com" {
				t.Fatalf("alice: unexpected email %q", row.Email)
			}
		}
	}
	if !found {
		t.Fatalf("TopCustomers: alice missing from %d rows", len(rows))
	}

	// The whole sequence must be ordered by spend descending, ties by
	// ascending customer id.
	for i := 1; i < len(rows); i++ {
		prev, cur := rows[i-1], rows[i]
		if prev.TotalCents < cur.TotalCents {
			t.Fatalf("rows not descending by total: %d before %d", prev.TotalCents, cur.TotalCents)
		}
		if prev.TotalCents == cur.TotalCents && prev.CustomerID >= cur.CustomerID {
			t.Fatalf("tie not broken by ascending id: %d before %d", prev.CustomerID, cur.CustomerID)
		}
	}
}
