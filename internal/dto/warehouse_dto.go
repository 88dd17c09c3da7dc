package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateWarehouseItemRequest struct {
	Name             string           `json:"name" validate:"required,min=1,max=100"`
	Category         *string          `json:"category"`
	Description      *string          `json:"description"`
	Stock            int              `json:"stock" validate:"min=0"`
	MinStock         int              `json:"min_stock" validate:"min=0"`
	Unit             *string          `json:"unit"`
	Location         *string          `json:"location"`
	UnitCost         *decimal.Decimal `json:"unit_cost"`
	AverageCost      *decimal.Decimal `json:"average_cost"`
	Family           *string          `json:"family"`
	Brand            *string          `json:"brand"`
	ManufacturerCode *string          `json:"manufacturer_code"`
	Criticality      *string          `json:"criticality"`
	LeadTime         *int             `json:"lead_time" validate:"omitempty,min=0"`
	MaxStock         *int             `json:"max_stock" validate:"omitempty,min=0"`
	MinOrderQty      *int             `json:"min_order_qty" validate:"omitempty,min=1"`
}

type UpdateWarehouseItemRequest struct {
	Name             *string          `json:"name" validate:"omitempty,min=1,max=100"`
	Category         *string          `json:"category"`
	Description      *string          `json:"description"`
	MinStock         *int             `json:"min_stock" validate:"omitempty,min=0"`
	Unit             *string          `json:"unit"`
	Location         *string          `json:"location"`
	UnitCost         *decimal.Decimal `json:"unit_cost"`
	AverageCost      *decimal.Decimal `json:"average_cost"`
	Family           *string          `json:"family"`
	Brand            *string          `json:"brand"`
	ManufacturerCode *string          `json:"manufacturer_code"`
	Criticality      *string          `json:"criticality"`
	LeadTime         *int             `json:"lead_time" validate:"omitempty,min=0"`
	MaxStock         *int             `json:"max_stock" validate:"omitempty,min=0"`
	MinOrderQty      *int             `json:"min_order_qty" validate:"omitempty,min=1"`
	IsActive         *bool            `json:"is_active"`
}

// RegisterMovementRequest is the manual kardex entry form. Quantity semantics
// depend on the type: IN/OUT take a positive magnitude, ADJUST a signed delta.
type RegisterMovementRequest struct {
	ItemID       uint   `json:"item_id" validate:"required"`
	MovementType string `json:"movement_type" validate:"required,oneof=IN OUT ADJUST"`
	Quantity     int    `json:"quantity" validate:"required"`
	Reason       string `json:"reason"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// ClassificationResult reports one run of the ABC/XYZ + reorder engine.
type ClassificationResult struct {
	Message      string `json:"message"`
	ItemsUpdated int    `json:"items_updated"`
	ClassA       int    `json:"class_a"`
	ClassB       int    `json:"class_b"`
	ClassC       int    `json:"class_c"`
}
