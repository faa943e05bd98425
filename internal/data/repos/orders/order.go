package orders

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/yungbote/orderhub-backend/internal/domain"
	"github.com/yungbote/orderhub-backend/internal/platform/logger"
)

const createBatchSize = 200

// OrderFilter carries the optional listing predicates. Status is the raw
// query token: an empty string means no status filter, an unrecognized
// token simply matches nothing.
type OrderFilter struct {
	Status          string
	EmailSubstring  string
	IncludeArchived bool
}

// CustomerSpendRow is one row of the top-customers aggregation.
type CustomerSpendRow struct {
	CustomerID int64  `json:"customer_id"`
	Email      string `json:"email"`
	OrderCount int64  `json:"order_count"`
	TotalCents int64  `json:"total_cents"`
}

type OrderRepo interface {
	Create(ctx context.Context, tx *gorm.DB, orders []*types.Order) ([]*types.Order, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Order, error)
	List(ctx context.Context, tx *gorm.DB, filter OrderFilter) ([]*types.Order, int64, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, id int64, status types.OrderStatus) error
	SetArchived(ctx context.Context, tx *gorm.DB, id int64, archived bool) error
	ReplaceTotals(ctx context.Context, tx *gorm.DB, orders []*types.Order) error
	RecalcTotals(ctx context.Context, tx *gorm.DB, orderIDs []int64) error
	TopCustomersBySpend(ctx context.Context, tx *gorm.DB, limit int) ([]*CustomerSpendRow, error)
}

type orderRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewOrderRepo(db *gorm.DB, baseLog *logger.Logger) OrderRepo {
	return &orderRepo{db: db, log: baseLog.With("repo", "OrderRepo")}
}

func (r *orderRepo) Create(ctx context.Context, tx *gorm.DB, orders []*types.Order) ([]*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(orders) == 0 {
		return []*types.Order{}, nil
	}
	if err := transaction.WithContext(ctx).CreateInBatches(&orders, createBatchSize).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

// GetByID is the direct identity lookup: archived orders are retrievable
// here even though every listing hides them.
func (r *orderRepo) GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Order, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var order types.Order
	if err := transaction.WithContext(ctx).First(&order, id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// List runs the combined listing predicate and returns matches newest-first
// (descending id) together with the total match count. Archived orders are
// excluded unless the filter explicitly includes them; the email predicate
// is a case-insensitive substring match against the owning customer's
// email, resolved through a join rather than a denormalized column.
func (r *orderRepo) List(ctx context.Context, tx *gorm.DB, filter OrderFilter) ([]*types.Order, int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	// Fresh chain per finisher; GORM statements are not safely reusable
	// across Count and Find.
	filtered := func() *gorm.DB {
		q := transaction.WithContext(ctx).Model(&types.Order{})
		if !filter.IncludeArchived {
			q = q.Where("orders.is_archived = ?", false)
		}
		if filter.Status != "" {
			q = q.Where("orders.status = ?", filter.Status)
		}
		if filter.EmailSubstring != "" {
			needle := "%" + strings.ToLower(filter.EmailSubstring) + "%"
			q = q.
				Joins("JOIN customers ON customers.id = orders.customer_id").
				Where("LOWER(customers.email) LIKE ?", needle)
		}
		return q
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var results []*types.Order
	if err := filtered().
		Select("orders.*").
		Order("orders.id DESC").
		Find(&results).Error; err != nil {
		return nil, 0, err
	}
	return results, total, nil
}

func (r *orderRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, id int64, status types.OrderStatus) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *orderRepo) SetArchived(ctx context.Context, tx *gorm.DB, id int64, archived bool) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Order{}).
		Where("id = ?", id).
		Update("is_archived", archived).Error
}

// ReplaceTotals persists pre-computed totals for orders that already exist,
// as one batched upsert on id instead of an UPDATE per order. Only
// total_cents (plus the audit timestamp) is assigned on conflict.
func (r *orderRepo) ReplaceTotals(ctx context.Context, tx *gorm.DB, orders []*types.Order) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(orders) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"total_cents",
			"updated_at",
		}),
	}).CreateInBatches(&orders, createBatchSize).Error
}

// RecalcTotals rebuilds total_cents from persisted items for the given
// orders in a single correlated UPDATE. Used after item writes, where the
// items are already in the store.
func (r *orderRepo) RecalcTotals(ctx context.Context, tx *gorm.DB, orderIDs []int64) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(orderIDs) == 0 {
		return nil
	}
	return transaction.WithContext(ctx).Exec(`
		UPDATE orders SET total_cents = (
			SELECT COALESCE(SUM(order_items.quantity * order_items.unit_price_cents), 0)
			FROM order_items
			WHERE order_items.order_id = orders.id
		), updated_at = ?
		WHERE orders.id IN ?`,
		time.Now(), orderIDs).Error
}

// TopCustomersBySpend ranks active customers by their paid, non-archived
// spend in one grouped query. Orders contribute their maintained
// total_cents; items are never touched here, so cost scales with the
// number of qualifying orders.
func (r *orderRepo) TopCustomersBySpend(ctx context.Context, tx *gorm.DB, limit int) ([]*CustomerSpendRow, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	rows := []*CustomerSpendRow{}
	if err := transaction.WithContext(ctx).
		Model(&types.Customer{}).
		Select(
			"customers.id AS customer_id, "+
				"customers.email AS email, "+
				"COUNT(orders.id) AS order_count, "+
				"COALESCE(SUM(orders.total_cents), 0) AS total_cents").
		Joins(
			"LEFT JOIN orders ON orders.customer_id = customers.id AND orders.status = ? AND orders.is_archived = ?",
			types.OrderStatusPaid, false).
		Where("customers.is_active = ?", true).
		Group("customers.id, customers.email").
		Order("total_cents DESC, customer_id ASC").
		Limit(limit).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
