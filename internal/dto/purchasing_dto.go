package dto

import "github.com/bryamlazo166/cmms-app/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreatePurchaseRequestRequest struct {
	WorkOrderID     uint    `json:"work_order_id" validate:"required"`
	ItemType        string  `json:"item_type" validate:"required,oneof=MATERIAL SERVICIO"`
	SparePartID     *uint   `json:"spare_part_id"`
	WarehouseItemID *uint   `json:"warehouse_item_id"`
	Description     *string `json:"description"`
	Quantity        float64 `json:"quantity" validate:"required,gt=0"`
}

type CreatePurchaseOrderRequest struct {
	ProviderName string `json:"provider_name" validate:"required,min=1,max=100"`
	RequestIDs   []uint `json:"request_ids" validate:"required,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// PurchaseRequestItem enriches a request with the originating OT code and the
// resolved item name.
type PurchaseRequestItem struct {
	model.PurchaseRequest
	OTCode   string `json:"ot_code"`
	ItemName string `json:"item_name"`
	POCode   string `json:"po_code,omitempty"`
}

// PickerItem is a warehouse row reduced to what the request form needs.
type PickerItem struct {
	ID    uint    `json:"id"`
	Name  string  `json:"name"`
	Code  string  `json:"code"`
	Stock int     `json:"stock"`
	Brand *string `json:"brand"`
}
