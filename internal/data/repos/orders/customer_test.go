package orders

import (
	"context"
	"testing"

	"github.com/yungbote/orderhub-backend/internal/data/repos/testutil"
	types "github.com/yungbote/orderhub-backend/internal/domain"
)

func TestCustomerRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewCustomerRepo(db, testutil.Logger(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, tx, []*types.Customer{
		{Name: "Alice", Email: "alice@example.com", IsActive: true},
		{Name: "Bob", Email: "bob@test.com", IsActive: true},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if len(created) != 2 || created[0].ID == 0 || created[1].ID == 0 {
		t.Fatalf("Create: ids not backfilled: %+v", created)
	}

	got, err := repo.GetByIDs(ctx, tx, []int64{created[0].ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(got) != 1 || got[0].Email != "alice@example.com" {
		t.Fatalf("GetByIDs: unexpected result: %+v", got)
	}

	maxID, err := repo.MaxID(ctx, tx)
	if err != nil {
		t.Fatalf("MaxID: %v", err)
	}
	if maxID < created[1].ID {
		t.Fatalf("MaxID: got %d, want at least %d", maxID, created[1].ID)
	}

	if err := repo.SetActive(ctx, tx, created[0].ID, false); err != nil {
		t.Fatalf("SetActive: %v", err)
	}
	got, err = repo.GetByIDs(ctx, tx, []int64{created[0].ID})
	if err != nil {
		t.Fatalf("GetByIDs after SetActive: %v", err)
	}
	if len(got) != 1 || got[0].IsActive {
		t.Fatalf("SetActive: customer still active: %+v", got)
	}
}

func TestCustomerRepoDeleteCascades(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	repo := NewCustomerRepo(db, testutil.Logger(t))
	ctx := context.Background()

	c := testutil.SeedCustomer(t, ctx, tx, "Heidi", "heidi@example.com")
	order := testutil.SeedOrder(t, ctx, tx, c.ID, types.OrderStatusPaid, false, 998)
	testutil.SeedOrderItem(t, ctx, tx, order.ID, "SKU-1", 2, 499)

	// A neighbour that must survive the delete.
	other := testutil.SeedCustomer(t, ctx, tx, "Ivan", "ivan@example.com")
	otherOrder := testutil.SeedOrder(t, ctx, tx, other.ID, types.OrderStatusPaid, false, 199)
	testutil.SeedOrderItem(t, ctx, tx, otherOrder.ID, "SKU-2", 1, 199)

	if err := repo.Delete(ctx, tx, c.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	var customerCount, orderCount, itemCount int64
	if err := tx.Model(&types.Customer{}).Where("id = ?", c.ID).Count(&customerCount).Error; err != nil {
		t.Fatalf("count customers: %v", err)
	}
	if err := tx.Model(&types.Order{}).Where("customer_id = ?", c.ID).Count(&orderCount).Error; err != nil {
		t.Fatalf("count orders: %v", err)
	}
	if err := tx.Model(&types.OrderItem{}).Where("order_id = ?", order.ID).Count(&itemCount).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if customerCount != 0 || orderCount != 0 || itemCount != 0 {
		t.Fatalf("Delete: leftovers customer=%d orders=%d items=%d", customerCount, orderCount, itemCount)
	}

	var otherItems int64
	if err := tx.Model(&types.OrderItem{}).Where("order_id = ?", otherOrder.ID).Count(&otherItems).Error; err != nil {
		t.Fatalf("count other items: %v", err)
	}
	if otherItems != 1 {
		t.Fatalf("Delete: neighbour's items were removed")
	}
}
