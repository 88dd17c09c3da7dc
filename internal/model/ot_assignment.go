package model

// Material item types.
const (
	ItemTypeTool      = "tool"
	ItemTypeWarehouse = "warehouse"
)

// OTPersonnel assigns a technician (with planned/actual hours) to a work order.
type OTPersonnel struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	WorkOrderID   uint     `gorm:"not null;index" json:"work_order_id"`
	TechnicianID  *uint    `json:"technician_id"`
	Specialty     *string  `gorm:"size:50" json:"specialty"`
	HoursAssigned float64  `gorm:"not null;default:0" json:"hours_assigned"`
	HoursWorked   *float64 `json:"hours_worked"`

	Technician *Technician `gorm:"foreignKey:TechnicianID" json:"-"`
}

func (OTPersonnel) TableName() string { return "ot_personnel" }

// OTMaterial assigns a warehouse item or a tool to a work order. Assigning a
// warehouse item deducts stock and appends an OUT movement; removing the
// assignment restores stock with a RETURN movement. Tools never touch stock.
type OTMaterial struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	WorkOrderID uint   `gorm:"not null;index" json:"work_order_id"`
	ItemType    string `gorm:"size:20;not null" json:"item_type"` // tool | warehouse
	ItemID      uint   `gorm:"not null" json:"item_id"`
	Quantity    int    `gorm:"not null;default:1" json:"quantity"`
}

func (OTMaterial) TableName() string { return "ot_materials" }
