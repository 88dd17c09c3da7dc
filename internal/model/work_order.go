package model

import "time"

// Work order statuses.
const (
	OTAbierta    = "Abierta"
	OTProgramada = "Programada"
	OTEnProgreso = "En Progreso"
	OTCerrada    = "Cerrada"
)

// Maintenance types. Correctivo work orders count as failures in the
// reliability KPIs.
const (
	MaintenancePreventivo = "Preventivo"
	MaintenanceCorrectivo = "Correctivo"
)

// WorkOrder (OT) is a maintenance/remediation event, optionally spawned from a
// notice. Dates are ISO date strings as captured from the planning forms.
type WorkOrder struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:20;uniqueIndex" json:"code"` // OT-0001

	NoticeID   *uint `gorm:"index" json:"notice_id"`
	ProviderID *uint `json:"provider_id"`

	// Hierarchy FKs — standalone OTs may link at any level
	AreaID      *uint `json:"area_id"`
	LineID      *uint `json:"line_id"`
	EquipmentID *uint `gorm:"index" json:"equipment_id"`
	SystemID    *uint `json:"system_id"`
	ComponentID *uint `json:"component_id"`

	Description     *string `gorm:"type:text" json:"description"`
	FailureMode     *string `gorm:"size:200" json:"failure_mode"`
	MaintenanceType *string `gorm:"size:50" json:"maintenance_type"`

	// Planning
	Status            string   `gorm:"size:50;not null;default:'Abierta';index" json:"status"`
	TechnicianID      *string  `gorm:"size:100" json:"technician_id"` // tech name or id
	ScheduledDate     *string  `gorm:"size:20" json:"scheduled_date"`
	EstimatedDuration *float64 `json:"estimated_duration"` // hours
	TechCount         int      `gorm:"not null;default:1" json:"tech_count"`

	// Execution
	RealStartDate     *string  `gorm:"size:20" json:"real_start_date"`
	RealEndDate       *string  `gorm:"size:20" json:"real_end_date"`
	ExecutionComments *string  `gorm:"type:text" json:"execution_comments"`
	RealDuration      *float64 `json:"real_duration"` // hours

	CreatedAt time.Time `json:"created_at"`

	Notice   *MaintenanceNotice `gorm:"foreignKey:NoticeID" json:"-"`
	Provider *Provider          `gorm:"foreignKey:ProviderID" json:"-"`
}

func (WorkOrder) TableName() string { return "work_orders" }
