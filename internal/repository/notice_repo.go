package repository

import (
	"context"

	"github.com/bryamlazo166/cmms-app/internal/model"

	"gorm.io/gorm"
)

type NoticeRepository interface {
	Create(ctx context.Context, n *model.MaintenanceNotice) error
	FindByID(ctx context.Context, id uint) (*model.MaintenanceNotice, error)
	List(ctx context.Context) ([]model.MaintenanceNotice, error)
	Save(ctx context.Context, n *model.MaintenanceNotice) error
	Delete(ctx context.Context, id uint) error
	NextID(ctx context.Context) (uint, error)

	// FindActiveByEquipment returns the oldest notice on the equipment whose
	// status is in the given set, for duplicate detection.
	FindActiveByEquipment(ctx context.Context, equipmentID uint, statuses []string) (*model.MaintenanceNotice, error)

	CountPending(ctx context.Context) (int64, error)

	// Used inside work-order transactions.
	UpdateStatusTx(tx *gorm.DB, id uint, status, otNumber string) error

	DB() *gorm.DB
}

type noticeRepo struct{ db *gorm.DB }

func NewNoticeRepository(db *gorm.DB) NoticeRepository { return &noticeRepo{db: db} }

func (r *noticeRepo) Create(ctx context.Context, n *model.MaintenanceNotice) error {
	return r.db.WithContext(ctx).Create(n).Error
}

func (r *noticeRepo) FindByID(ctx context.Context, id uint) (*model.MaintenanceNotice, error) {
	var n model.MaintenanceNotice
	err := r.db.WithContext(ctx).First(&n, id).Error
	return &n, err
}

func (r *noticeRepo) List(ctx context.Context) ([]model.MaintenanceNotice, error) {
	var notices []model.MaintenanceNotice
	err := r.db.WithContext(ctx).Preload("WorkOrder").Order("id ASC").Find(&notices).Error
	return notices, err
}

func (r *noticeRepo) Save(ctx context.Context, n *model.MaintenanceNotice) error {
	return r.db.WithContext(ctx).Save(n).Error
}

func (r *noticeRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.MaintenanceNotice{}, id).Error
}

func (r *noticeRepo) NextID(ctx context.Context) (uint, error) {
	var next uint
	err := r.db.WithContext(ctx).Model(&model.MaintenanceNotice{}).
		Select("COALESCE(MAX(id), 0) + 1").Scan(&next).Error
	return next, err
}

func (r *noticeRepo) FindActiveByEquipment(ctx context.Context, equipmentID uint, statuses []string) (*model.MaintenanceNotice, error) {
	var n model.MaintenanceNotice
	err := r.db.WithContext(ctx).
		Where("equipment_id = ? AND status IN ?", equipmentID, statuses).
		Order("id ASC").First(&n).Error
	return &n, err
}

func (r *noticeRepo) CountPending(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.MaintenanceNotice{}).
		Where("status <> ?", model.NoticeCerrado).Count(&count).Error
	return count, err
}

func (r *noticeRepo) UpdateStatusTx(tx *gorm.DB, id uint, status, otNumber string) error {
	return tx.Model(&model.MaintenanceNotice{}).Where("id = ?", id).Updates(map[string]interface{}{
		"status":    status,
		"ot_number": otNumber,
	}).Error
}

func (r *noticeRepo) DB() *gorm.DB { return r.db }
