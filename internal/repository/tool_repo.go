package repository

import (
	"context"

	"github.com/bryamlazo166/cmms-app/internal/model"

	"gorm.io/gorm"
)

type ToolRepository interface {
	Create(ctx context.Context, t *model.Tool) error
	FindByID(ctx context.Context, id uint) (*model.Tool, error)
	List(ctx context.Context, all bool) ([]model.Tool, error)
	Save(ctx context.Context, t *model.Tool) error
	// NextID returns max(id)+1, used to pre-assign the HRR-xxx code.
	NextID(ctx context.Context) (uint, error)
}

type toolRepo struct{ db *gorm.DB }

func NewToolRepository(db *gorm.DB) ToolRepository { return &toolRepo{db: db} }

func (r *toolRepo) Create(ctx context.Context, t *model.Tool) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *toolRepo) FindByID(ctx context.Context, id uint) (*model.Tool, error) {
	var t model.Tool
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

func (r *toolRepo) List(ctx context.Context, all bool) ([]model.Tool, error) {
	var tools []model.Tool
	q := r.db.WithContext(ctx)
	if !all {
		q = q.Where("is_active = true")
	}
	err := q.Order("id ASC").Find(&tools).Error
	return tools, err
}

func (r *toolRepo) Save(ctx context.Context, t *model.Tool) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *toolRepo) NextID(ctx context.Context) (uint, error) {
	var next uint
	err := r.db.WithContext(ctx).Model(&model.Tool{}).
		Select("COALESCE(MAX(id), 0) + 1").Scan(&next).Error
	return next, err
}
