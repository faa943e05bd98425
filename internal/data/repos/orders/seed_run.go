package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/yungbote/orderhub-backend/internal/domain"
	"github.com/yungbote/orderhub-backend/internal/platform/logger"
)

type SeedRunRepo interface {
	Create(ctx context.Context, tx *gorm.DB, run *types.SeedRun) (*types.SeedRun, error)
	GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.SeedRun, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error
}

type seedRunRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSeedRunRepo(db *gorm.DB, baseLog *logger.Logger) SeedRunRepo {
	return &seedRunRepo{db: db, log: baseLog.With("repo", "SeedRunRepo")}
}

func (r *seedRunRepo) Create(ctx context.Context, tx *gorm.DB, run *types.SeedRun) (*types.SeedRun, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(run).Error; err != nil {
		return nil, err
	}
	return run, nil
}

func (r *seedRunRepo) GetByID(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*types.SeedRun, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var run types.SeedRun
	if err := transaction.WithContext(ctx).
		Where("id = ?", id).
		First(&run).Error; err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *seedRunRepo) UpdateFields(ctx context.Context, tx *gorm.DB, id uuid.UUID, updates map[string]interface{}) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).
		Model(&types.SeedRun{}).
		Where("id = ?", id).
		Updates(updates).Error
}
