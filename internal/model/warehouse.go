package model

import (
	"github.com/shopspring/decimal"
)

// Movement types for the kardex ledger.
const (
	MovementIn     = "IN"
	MovementOut    = "OUT"
	MovementAdjust = "ADJUST"
	MovementReturn = "RETURN"
)

// WarehouseItem is an inventory record for spare parts and consumables.
// The four classification fields (ABCClass, XYZClass, SafetyStock, ROP) are
// derived by the classification engine from 12 months of movement history.
type WarehouseItem struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Code        string  `gorm:"size:20;uniqueIndex" json:"code"` // REP-0001
	Name        string  `gorm:"size:100;not null" json:"name"`
	Category    *string `gorm:"size:50" json:"category"` // Repuesto, Consumible, Lubricante
	Description *string `gorm:"type:text" json:"description"`
	Stock       int     `gorm:"not null;default:0" json:"stock"`
	MinStock    int     `gorm:"not null;default:0" json:"min_stock"`
	Unit        string  `gorm:"size:20;not null;default:'pza'" json:"unit"` // pza, kg, lt, m
	Location    *string `gorm:"size:100" json:"location"`

	UnitCost         *decimal.Decimal `gorm:"type:decimal(12,2)" json:"unit_cost"`
	AverageCost      *decimal.Decimal `gorm:"type:decimal(12,2)" json:"average_cost"`
	Family           *string          `gorm:"size:100" json:"family"`
	Brand            *string          `gorm:"size:100" json:"brand"`
	ManufacturerCode *string          `gorm:"size:100" json:"manufacturer_code"`
	Criticality      *string          `gorm:"size:20;default:'Media'" json:"criticality"`

	// Inventory management parameters
	LeadTime    int    `gorm:"not null;default:0" json:"lead_time"` // days to replenish
	ABCClass    string `gorm:"size:5;not null;default:'C'" json:"abc_class"`
	XYZClass    string `gorm:"size:5;not null;default:'Z'" json:"xyz_class"`
	SafetyStock int    `gorm:"not null;default:0" json:"safety_stock"`
	ROP         int    `gorm:"not null;default:0" json:"rop"` // reorder point
	MaxStock    int    `gorm:"not null;default:0" json:"max_stock"`
	MinOrderQty int    `gorm:"not null;default:1" json:"min_order_qty"`

	IsActive bool `gorm:"not null;default:true" json:"is_active"`

	Movements []WarehouseMovement `gorm:"foreignKey:ItemID" json:"-"`
}

func (WarehouseItem) TableName() string { return "warehouse_items" }

// EffectiveCost returns the cost used for usage-value calculations:
// average cost when set, else unit cost, else zero.
func (i *WarehouseItem) EffectiveCost() decimal.Decimal {
	if i.AverageCost != nil {
		return *i.AverageCost
	}
	if i.UnitCost != nil {
		return *i.UnitCost
	}
	return decimal.Zero
}

// WarehouseMovement is an immutable kardex entry. Rows are never mutated or
// deleted after creation — corrections are new ADJUST rows, so the sum of
// quantities for an item always reconciles with its current stock.
type WarehouseMovement struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	ItemID       uint    `gorm:"not null;index" json:"item_id"`
	Quantity     int     `gorm:"not null" json:"quantity"`                // signed: + IN, − OUT
	MovementType string  `gorm:"size:20;not null" json:"movement_type"`  // IN, OUT, ADJUST, RETURN
	Date         string  `gorm:"size:30;not null;index" json:"date"`     // ISO timestamp
	ReferenceID  *uint   `json:"reference_id"`                           // work order id, if any
	Reason       string  `gorm:"size:200" json:"reason"`

	Item *WarehouseItem `gorm:"foreignKey:ItemID" json:"-"`
}

func (WarehouseMovement) TableName() string { return "warehouse_movements" }
