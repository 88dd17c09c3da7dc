package repository

import (
	"context"

	"github.com/bryamlazo166/cmms-app/internal/model"

	"gorm.io/gorm"
)

// WarehouseRepository covers inventory items and their kardex ledger.
type WarehouseRepository interface {
	// Items
	CreateItem(ctx context.Context, i *model.WarehouseItem) error
	FindItemByID(ctx context.Context, id uint) (*model.WarehouseItem, error)
	ListItems(ctx context.Context, all bool) ([]model.WarehouseItem, error)
	SaveItem(ctx context.Context, i *model.WarehouseItem) error
	NextID(ctx context.Context) (uint, error)

	// Used inside transactions — callers must pass the tx instance
	UpdateStockTx(tx *gorm.DB, id uint, delta int) error
	UpdateClassificationTx(tx *gorm.DB, id uint, abc, xyz string, safetyStock, rop int) error
	CreateMovementTx(tx *gorm.DB, m *model.WarehouseMovement) error

	// Ledger
	ListMovementsByItem(ctx context.Context, itemID uint) ([]model.WarehouseMovement, error)
	ListMovementsByTypesSince(ctx context.Context, types []string, sinceISO string) ([]model.WarehouseMovement, error)
	ListAllMovements(ctx context.Context) ([]model.WarehouseMovement, error)

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type warehouseRepo struct{ db *gorm.DB }

func NewWarehouseRepository(db *gorm.DB) WarehouseRepository { return &warehouseRepo{db: db} }

func (r *warehouseRepo) CreateItem(ctx context.Context, i *model.WarehouseItem) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *warehouseRepo) FindItemByID(ctx context.Context, id uint) (*model.WarehouseItem, error) {
	var i model.WarehouseItem
	err := r.db.WithContext(ctx).First(&i, id).Error
	return &i, err
}

func (r *warehouseRepo) ListItems(ctx context.Context, all bool) ([]model.WarehouseItem, error) {
	var items []model.WarehouseItem
	q := r.db.WithContext(ctx)
	if !all {
		q = q.Where("is_active = true")
	}
	err := q.Order("id ASC").Find(&items).Error
	return items, err
}

func (r *warehouseRepo) SaveItem(ctx context.Context, i *model.WarehouseItem) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *warehouseRepo) NextID(ctx context.Context) (uint, error) {
	var next uint
	err := r.db.WithContext(ctx).Model(&model.WarehouseItem{}).
		Select("COALESCE(MAX(id), 0) + 1").Scan(&next).Error
	return next, err
}

func (r *warehouseRepo) UpdateStockTx(tx *gorm.DB, id uint, delta int) error {
	return tx.Model(&model.WarehouseItem{}).Where("id = ?", id).
		Update("stock", gorm.Expr("stock + ?", delta)).Error
}

func (r *warehouseRepo) UpdateClassificationTx(tx *gorm.DB, id uint, abc, xyz string, safetyStock, rop int) error {
	return tx.Model(&model.WarehouseItem{}).Where("id = ?", id).Updates(map[string]interface{}{
		"abc_class":    abc,
		"xyz_class":    xyz,
		"safety_stock": safetyStock,
		"rop":          rop,
	}).Error
}

func (r *warehouseRepo) CreateMovementTx(tx *gorm.DB, m *model.WarehouseMovement) error {
	return tx.Create(m).Error
}

func (r *warehouseRepo) ListMovementsByItem(ctx context.Context, itemID uint) ([]model.WarehouseMovement, error) {
	var moves []model.WarehouseMovement
	err := r.db.WithContext(ctx).Where("item_id = ?", itemID).
		Order("id DESC").Find(&moves).Error
	return moves, err
}

// ListMovementsByTypesSince filters by movement type and ISO date lower bound.
// Dates are ISO-8601 strings, so lexicographic comparison is chronological.
func (r *warehouseRepo) ListMovementsByTypesSince(ctx context.Context, types []string, sinceISO string) ([]model.WarehouseMovement, error) {
	var moves []model.WarehouseMovement
	err := r.db.WithContext(ctx).Where("movement_type IN ? AND date >= ?", types, sinceISO).
		Find(&moves).Error
	return moves, err
}

func (r *warehouseRepo) ListAllMovements(ctx context.Context) ([]model.WarehouseMovement, error) {
	var moves []model.WarehouseMovement
	err := r.db.WithContext(ctx).Preload("Item").Order("id DESC").Find(&moves).Error
	return moves, err
}

func (r *warehouseRepo) DB() *gorm.DB { return r.db }
