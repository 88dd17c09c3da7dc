package repository

import (
	"context"

	"github.com/bryamlazo166/cmms-app/internal/model"

	"gorm.io/gorm"
)

type TechnicianRepository interface {
	Create(ctx context.Context, t *model.Technician) error
	FindByID(ctx context.Context, id uint) (*model.Technician, error)
	List(ctx context.Context, all bool) ([]model.Technician, error)
	CountActive(ctx context.Context) (int64, error)
	Save(ctx context.Context, t *model.Technician) error
}

type technicianRepo struct{ db *gorm.DB }

func NewTechnicianRepository(db *gorm.DB) TechnicianRepository { return &technicianRepo{db: db} }

func (r *technicianRepo) Create(ctx context.Context, t *model.Technician) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *technicianRepo) FindByID(ctx context.Context, id uint) (*model.Technician, error) {
	var t model.Technician
	err := r.db.WithContext(ctx).First(&t, id).Error
	return &t, err
}

func (r *technicianRepo) List(ctx context.Context, all bool) ([]model.Technician, error) {
	var techs []model.Technician
	q := r.db.WithContext(ctx)
	if !all {
		q = q.Where("is_active = true")
	}
	err := q.Order("name ASC").Find(&techs).Error
	return techs, err
}

func (r *technicianRepo) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Technician{}).Where("is_active = true").Count(&count).Error
	return count, err
}

func (r *technicianRepo) Save(ctx context.Context, t *model.Technician) error {
	return r.db.WithContext(ctx).Save(t).Error
}
