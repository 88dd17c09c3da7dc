package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bryamlazo166/cmms-app/internal/dto"
	"github.com/bryamlazo166/cmms-app/internal/model"
	"github.com/bryamlazo166/cmms-app/internal/repository"

	"gorm.io/gorm"
)

type WarehouseService interface {
	CreateItem(ctx context.Context, req dto.CreateWarehouseItemRequest) (*model.WarehouseItem, error)
	ListItems(ctx context.Context, all bool) ([]model.WarehouseItem, error)
	UpdateItem(ctx context.Context, id uint, req dto.UpdateWarehouseItemRequest) (*model.WarehouseItem, error)
	ToggleItem(ctx context.Context, id uint) error
	RegisterMovement(ctx context.Context, req dto.RegisterMovementRequest) (*model.WarehouseMovement, error)
	ListMovements(ctx context.Context, itemID uint) ([]model.WarehouseMovement, error)
	ListAllMovements(ctx context.Context) ([]model.WarehouseMovement, error)
}

type warehouseService struct {
	repo repository.WarehouseRepository
}

func NewWarehouseService(repo repository.WarehouseRepository) WarehouseService {
	return &warehouseService{repo: repo}
}

// runTx executes fn inside a GORM transaction when db is available,
// or calls fn(nil) directly when db is nil (unit test mode).
func runTx(ctx context.Context, db *gorm.DB, fn func(tx *gorm.DB) error) error {
	if db == nil {
		return fn(nil)
	}
	return db.WithContext(ctx).Transaction(fn)
}

func (s *warehouseService) CreateItem(ctx context.Context, req dto.CreateWarehouseItemRequest) (*model.WarehouseItem, error) {
	nextID, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	item := &model.WarehouseItem{
		Code:             fmt.Sprintf("REP-%04d", nextID),
		Name:             req.Name,
		Category:         req.Category,
		Description:      req.Description,
		Stock:            req.Stock,
		MinStock:         req.MinStock,
		Location:         req.Location,
		UnitCost:         req.UnitCost,
		AverageCost:      req.AverageCost,
		Family:           req.Family,
		Brand:            req.Brand,
		ManufacturerCode: req.ManufacturerCode,
		Criticality:      req.Criticality,
		ABCClass:         "C",
		XYZClass:         "Z",
		MinOrderQty:      1,
		IsActive:         true,
	}
	item.Unit = "pza"
	if req.Unit != nil && *req.Unit != "" {
		item.Unit = *req.Unit
	}
	if req.LeadTime != nil {
		item.LeadTime = *req.LeadTime
	}
	if req.MaxStock != nil {
		item.MaxStock = *req.MaxStock
	}
	if req.MinOrderQty != nil {
		item.MinOrderQty = *req.MinOrderQty
	}

	if err := s.repo.CreateItem(ctx, item); err != nil {
		return nil, err
	}

	// Opening stock enters the ledger so it reconciles from day one.
	if item.Stock > 0 {
		err := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
			return s.repo.CreateMovementTx(tx, &model.WarehouseMovement{
				ItemID:       item.ID,
				Quantity:     item.Stock,
				MovementType: model.MovementIn,
				Date:         time.Now().Format(time.RFC3339),
				Reason:       "Stock inicial",
			})
		})
		if err != nil {
			return nil, err
		}
	}
	return item, nil
}

func (s *warehouseService) ListItems(ctx context.Context, all bool) ([]model.WarehouseItem, error) {
	return s.repo.ListItems(ctx, all)
}

func (s *warehouseService) UpdateItem(ctx context.Context, id uint, req dto.UpdateWarehouseItemRequest) (*model.WarehouseItem, error) {
	item, err := s.repo.FindItemByID(ctx, id)
	if err != nil {
		return nil, notFound("Articulo", id)
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Category != nil {
		item.Category = req.Category
	}
	if req.Description != nil {
		item.Description = req.Description
	}
	if req.MinStock != nil {
		item.MinStock = *req.MinStock
	}
	if req.Unit != nil && *req.Unit != "" {
		item.Unit = *req.Unit
	}
	if req.Location != nil {
		item.Location = req.Location
	}
	if req.UnitCost != nil {
		item.UnitCost = req.UnitCost
	}
	if req.AverageCost != nil {
		item.AverageCost = req.AverageCost
	}
	if req.Family != nil {
		item.Family = req.Family
	}
	if req.Brand != nil {
		item.Brand = req.Brand
	}
	if req.ManufacturerCode != nil {
		item.ManufacturerCode = req.ManufacturerCode
	}
	if req.Criticality != nil {
		item.Criticality = req.Criticality
	}
	if req.LeadTime != nil {
		item.LeadTime = *req.LeadTime
	}
	if req.MaxStock != nil {
		item.MaxStock = *req.MaxStock
	}
	if req.MinOrderQty != nil {
		item.MinOrderQty = *req.MinOrderQty
	}
	if req.IsActive != nil {
		item.IsActive = *req.IsActive
	}

	if err := s.repo.SaveItem(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

// ToggleItem flips the is_active flag (alta/baja).
func (s *warehouseService) ToggleItem(ctx context.Context, id uint) error {
	item, err := s.repo.FindItemByID(ctx, id)
	if err != nil {
		return notFound("Articulo", id)
	}
	item.IsActive = !item.IsActive
	return s.repo.SaveItem(ctx, item)
}

// RegisterMovement applies a manual kardex entry. Semantics per type:
// IN adds qty (> 0), OUT deducts qty (> 0) guarded by available stock, ADJUST
// applies a signed delta guarded so stock never goes negative. The stock
// update and the ledger row commit in one transaction.
func (s *warehouseService) RegisterMovement(ctx context.Context, req dto.RegisterMovementRequest) (*model.WarehouseMovement, error) {
	item, err := s.repo.FindItemByID(ctx, req.ItemID)
	if err != nil {
		return nil, notFound("Articulo", req.ItemID)
	}

	var delta int
	switch req.MovementType {
	case model.MovementIn:
		if req.Quantity <= 0 {
			return nil, invalid("la cantidad debe ser mayor a cero")
		}
		delta = req.Quantity
	case model.MovementOut:
		if req.Quantity <= 0 {
			return nil, invalid("la cantidad debe ser mayor a cero")
		}
		if item.Stock < req.Quantity {
			return nil, &ConsistencyError{
				Msg:       fmt.Sprintf("Stock insuficiente para %s", item.Name),
				Available: item.Stock,
			}
		}
		delta = -req.Quantity
	case model.MovementAdjust:
		if req.Quantity == 0 {
			return nil, invalid("el ajuste no puede ser cero")
		}
		if item.Stock+req.Quantity < 0 {
			return nil, &ConsistencyError{
				Msg:       fmt.Sprintf("El ajuste dejaria stock negativo en %s", item.Name),
				Available: item.Stock,
			}
		}
		delta = req.Quantity
	default:
		return nil, invalid("tipo de movimiento invalido: %s", req.MovementType)
	}

	reason := req.Reason
	if reason == "" {
		reason = "Movimiento manual"
	}

	move := &model.WarehouseMovement{
		ItemID:       item.ID,
		Quantity:     delta,
		MovementType: req.MovementType,
		Date:         time.Now().Format(time.RFC3339),
		Reason:       reason,
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateStockTx(tx, item.ID, delta); err != nil {
			return err
		}
		return s.repo.CreateMovementTx(tx, move)
	})
	if txErr != nil {
		return nil, txErr
	}
	return move, nil
}

func (s *warehouseService) ListMovements(ctx context.Context, itemID uint) ([]model.WarehouseMovement, error) {
	return s.repo.ListMovementsByItem(ctx, itemID)
}

// ListAllMovements feeds the kardex export, item preloaded, newest first.
func (s *warehouseService) ListAllMovements(ctx context.Context) ([]model.WarehouseMovement, error) {
	return s.repo.ListAllMovements(ctx)
}
