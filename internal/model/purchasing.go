package model

import "time"

// Purchase request statuses.
const (
	ReqPendiente = "PENDIENTE"
	ReqAprobado  = "APROBADO"
	ReqEnOrden   = "EN_ORDEN"
	ReqRecibido  = "RECIBIDO"
	ReqCancelado = "CANCELADO"
)

// Purchase order statuses.
const (
	POEmitida = "EMITIDA"
	POCerrada = "CERRADA"
)

// Purchase request item types.
const (
	ReqMaterial = "MATERIAL"
	ReqServicio = "SERVICIO"
)

// PurchaseRequest is a material/service need raised from a work order.
type PurchaseRequest struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	ReqCode string `gorm:"size:20;uniqueIndex;not null" json:"req_code"` // REQ-2026-0001

	WorkOrderID uint   `gorm:"not null;index" json:"work_order_id"`
	ItemType    string `gorm:"size:20;not null" json:"item_type"` // MATERIAL | SERVICIO

	SparePartID     *uint `json:"spare_part_id"`
	WarehouseItemID *uint `json:"warehouse_item_id"`

	Description *string `gorm:"type:text" json:"description"`
	Quantity    float64 `gorm:"not null" json:"quantity"`

	Status    string    `gorm:"size:20;not null;default:'PENDIENTE'" json:"status"`
	CreatedAt time.Time `json:"created_at"`

	PurchaseOrderID *uint `json:"purchase_order_id"`

	WorkOrder     *WorkOrder     `gorm:"foreignKey:WorkOrderID" json:"-"`
	SparePart     *SparePart     `gorm:"foreignKey:SparePartID" json:"-"`
	WarehouseItem *WarehouseItem `gorm:"foreignKey:WarehouseItemID" json:"-"`
	PurchaseOrder *PurchaseOrder `gorm:"foreignKey:PurchaseOrderID" json:"-"`
}

func (PurchaseRequest) TableName() string { return "purchase_requests" }

// PurchaseOrder groups approved requests for a single supplier.
type PurchaseOrder struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	POCode       string     `gorm:"size:20;uniqueIndex;not null" json:"po_code"` // OC-2026-001
	ProviderName string     `gorm:"size:100;not null" json:"provider_name"`
	Status       string     `gorm:"size:20;not null;default:'EMITIDA'" json:"status"`
	IssueDate    *time.Time `json:"issue_date"`
	DeliveryDate *time.Time `json:"delivery_date"`

	Requests []PurchaseRequest `gorm:"foreignKey:PurchaseOrderID" json:"requests"`
}

func (PurchaseOrder) TableName() string { return "purchase_orders" }
