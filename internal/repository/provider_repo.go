package repository

import (
	"context"

	"github.com/bryamlazo166/cmms-app/internal/model"

	"gorm.io/gorm"
)

type ProviderRepository interface {
	Create(ctx context.Context, p *model.Provider) error
	FindByID(ctx context.Context, id uint) (*model.Provider, error)
	List(ctx context.Context) ([]model.Provider, error)
	ListActive(ctx context.Context) ([]model.Provider, error)
	Save(ctx context.Context, p *model.Provider) error
	SoftDelete(ctx context.Context, id uint) error
}

type providerRepo struct{ db *gorm.DB }

func NewProviderRepository(db *gorm.DB) ProviderRepository { return &providerRepo{db: db} }

func (r *providerRepo) Create(ctx context.Context, p *model.Provider) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *providerRepo) FindByID(ctx context.Context, id uint) (*model.Provider, error) {
	var p model.Provider
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *providerRepo) List(ctx context.Context) ([]model.Provider, error) {
	var providers []model.Provider
	err := r.db.WithContext(ctx).Order("name ASC").Find(&providers).Error
	return providers, err
}

func (r *providerRepo) ListActive(ctx context.Context) ([]model.Provider, error) {
	var providers []model.Provider
	err := r.db.WithContext(ctx).Where("is_active = true").Order("name ASC").Find(&providers).Error
	return providers, err
}

func (r *providerRepo) Save(ctx context.Context, p *model.Provider) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *providerRepo) SoftDelete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Model(&model.Provider{}).Where("id = ?", id).
		Update("is_active", false).Error
}
