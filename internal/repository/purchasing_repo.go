package repository

import (
	"context"

	"github.com/bryamlazo166/cmms-app/internal/model"

	"gorm.io/gorm"
)

type PurchasingRepository interface {
	// Requests
	CreateRequest(ctx context.Context, pr *model.PurchaseRequest) error
	ListRequests(ctx context.Context, all bool) ([]model.PurchaseRequest, error)
	FindRequestsByIDs(ctx context.Context, ids []uint) ([]model.PurchaseRequest, error)
	NextRequestID(ctx context.Context) (uint, error)

	// Orders
	CreateOrderTx(tx *gorm.DB, po *model.PurchaseOrder) error
	ListOrders(ctx context.Context) ([]model.PurchaseOrder, error)
	FindOrderByID(ctx context.Context, id uint) (*model.PurchaseOrder, error)
	NextOrderID(ctx context.Context) (uint, error)

	// Used inside transactions
	AttachRequestsTx(tx *gorm.DB, requestIDs []uint, orderID uint, status string) error
	UpdateRequestsStatusByOrderTx(tx *gorm.DB, orderID uint, status string) error
	UpdateOrderStatusTx(tx *gorm.DB, id uint, status string) error

	DB() *gorm.DB
}

type purchasingRepo struct{ db *gorm.DB }

func NewPurchasingRepository(db *gorm.DB) PurchasingRepository { return &purchasingRepo{db: db} }

func (r *purchasingRepo) CreateRequest(ctx context.Context, pr *model.PurchaseRequest) error {
	return r.db.WithContext(ctx).Create(pr).Error
}

// ListRequests hides received requests unless all is set, so the picker shows
// only actionable rows.
func (r *purchasingRepo) ListRequests(ctx context.Context, all bool) ([]model.PurchaseRequest, error) {
	var requests []model.PurchaseRequest
	q := r.db.WithContext(ctx).
		Preload("WorkOrder").Preload("SparePart").Preload("WarehouseItem").Preload("PurchaseOrder")
	if !all {
		q = q.Where("status <> ?", model.ReqRecibido)
	}
	err := q.Order("id DESC").Find(&requests).Error
	return requests, err
}

func (r *purchasingRepo) FindRequestsByIDs(ctx context.Context, ids []uint) ([]model.PurchaseRequest, error) {
	var requests []model.PurchaseRequest
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&requests).Error
	return requests, err
}

func (r *purchasingRepo) NextRequestID(ctx context.Context) (uint, error) {
	var next uint
	err := r.db.WithContext(ctx).Model(&model.PurchaseRequest{}).
		Select("COALESCE(MAX(id), 0) + 1").Scan(&next).Error
	return next, err
}

func (r *purchasingRepo) CreateOrderTx(tx *gorm.DB, po *model.PurchaseOrder) error {
	return tx.Create(po).Error
}

func (r *purchasingRepo) ListOrders(ctx context.Context) ([]model.PurchaseOrder, error) {
	var orders []model.PurchaseOrder
	err := r.db.WithContext(ctx).Preload("Requests").Order("id DESC").Find(&orders).Error
	return orders, err
}

func (r *purchasingRepo) FindOrderByID(ctx context.Context, id uint) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	err := r.db.WithContext(ctx).Preload("Requests").First(&po, id).Error
	return &po, err
}

func (r *purchasingRepo) NextOrderID(ctx context.Context) (uint, error) {
	var next uint
	err := r.db.WithContext(ctx).Model(&model.PurchaseOrder{}).
		Select("COALESCE(MAX(id), 0) + 1").Scan(&next).Error
	return next, err
}

func (r *purchasingRepo) AttachRequestsTx(tx *gorm.DB, requestIDs []uint, orderID uint, status string) error {
	return tx.Model(&model.PurchaseRequest{}).Where("id IN ?", requestIDs).Updates(map[string]interface{}{
		"purchase_order_id": orderID,
		"status":            status,
	}).Error
}

func (r *purchasingRepo) UpdateRequestsStatusByOrderTx(tx *gorm.DB, orderID uint, status string) error {
	return tx.Model(&model.PurchaseRequest{}).Where("purchase_order_id = ?", orderID).
		Update("status", status).Error
}

func (r *purchasingRepo) UpdateOrderStatusTx(tx *gorm.DB, id uint, status string) error {
	return tx.Model(&model.PurchaseOrder{}).Where("id = ?", id).
		Update("status", status).Error
}

func (r *purchasingRepo) DB() *gorm.DB { return r.db }
