package orders

import (
	"context"

	"gorm.io/gorm"

	types "github.com/yungbote/orderhub-backend/internal/domain"
	"github.com/yungbote/orderhub-backend/internal/platform/logger"
)

type CustomerRepo interface {
	Create(ctx context.Context, tx *gorm.DB, customers []*types.Customer) ([]*types.Customer, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []int64) ([]*types.Customer, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Customer, error)
	MaxID(ctx context.Context, tx *gorm.DB) (int64, error)
	SetActive(ctx context.Context, tx *gorm.DB, id int64, active bool) error
	Delete(ctx context.Context, tx *gorm.DB, id int64) error
}

type customerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger) CustomerRepo {
	return &customerRepo{db: db, log: baseLog.With("repo", "CustomerRepo")}
}

func (r *customerRepo) Create(ctx context.Context, tx *gorm.DB, customers []*types.Customer) ([]*types.Customer, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if len(customers) == 0 {
		return []*types.Customer{}, nil
	}
	if err := transaction.WithContext(ctx).CreateInBatches(&customers, createBatchSize).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []int64) ([]*types.Customer, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Customer
	if len(ids) == 0 {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *customerRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Customer, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []*types.Customer
	if err := transaction.WithContext(ctx).
		Order("id DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// MaxID returns the highest customer id currently persisted, 0 when the
// table is empty. The seed generator claims its id range from this.
func (r *customerRepo) MaxID(ctx context.Context, tx *gorm.DB) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var maxID int64
	if err := transaction.WithContext(ctx).
		Model(&types.Customer{}).
		Select("COALESCE(MAX(id), 0)").
		Scan(&maxID).Error; err != nil {
		return 0, err
	}
	return maxID, nil
}

func (r *customerRepo) SetActive(ctx context.Context, tx *gorm.DB, id int64, active bool) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.Customer{}).
		Where("id = ?", id).
		Update("is_active", active).Error
}

// Delete removes a customer and everything it owns. Children first so the
// result is the same whether or not the store enforces FK cascades.
func (r *customerRepo) Delete(ctx context.Context, tx *gorm.DB, id int64) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Transaction(func(ttx *gorm.DB) error {
		if err := ttx.
			Where("order_id IN (?)", ttx.Model(&types.Order{}).Select("id").Where("customer_id = ?", id)).
			Delete(&types.OrderItem{}).Error; err != nil {
			return err
		}
		if err := ttx.
			Where("customer_id = ?", id).
			Delete(&types.Order{}).Error; err != nil {
			return err
		}
		return ttx.Delete(&types.Customer{}, id).Error
	})
}
