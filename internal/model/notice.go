package model

// Notice statuses.
const (
	NoticePendiente     = "Pendiente"
	NoticeEnProgreso    = "En Progreso"
	NoticeEnTratamiento = "En Tratamiento"
	NoticeCerrado       = "Cerrado"
	NoticeAnulado       = "Anulado"
	NoticeDuplicado     = "Duplicado"
)

// MaintenanceNotice is a failure report (aviso). A notice may spawn exactly one
// work order; closing that work order transitions the notice to Cerrado and
// stamps its OT number.
type MaintenanceNotice struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Code string `gorm:"size:20;uniqueIndex" json:"code"` // AV-0001

	// Reporter info
	ReporterName *string `gorm:"size:100" json:"reporter_name"`
	ReporterType *string `gorm:"size:50" json:"reporter_type"`

	// Provider info
	ProviderID *uint   `json:"provider_id"`
	Specialty  *string `gorm:"size:100" json:"specialty"`
	Shift      *string `gorm:"size:20" json:"shift"`

	// Hierarchy links — may be partially null
	AreaID      *uint `gorm:"index" json:"area_id"`
	LineID      *uint `json:"line_id"`
	EquipmentID *uint `gorm:"index" json:"equipment_id"`
	SystemID    *uint `json:"system_id"`
	ComponentID *uint `json:"component_id"`

	// Details
	Description        *string `gorm:"type:text" json:"description"`
	Criticality        *string `gorm:"size:20" json:"criticality"`
	Priority           *string `gorm:"size:20" json:"priority"`
	RequestDate        *string `gorm:"size:20" json:"request_date"`   // F.Solicitud
	TreatmentDate      *string `gorm:"size:20" json:"treatment_date"` // F.Tratada
	PlanningDate       *string `gorm:"size:20" json:"planning_date"`  // F.Programado
	MaintenanceType    *string `gorm:"size:50" json:"maintenance_type"`
	OTNumber           *string `gorm:"size:20" json:"ot_number"`
	Status             string  `gorm:"size:50;not null;default:'Pendiente'" json:"status"`
	CancellationReason *string `gorm:"type:text" json:"cancellation_reason"`

	Provider  *Provider  `gorm:"foreignKey:ProviderID" json:"-"`
	WorkOrder *WorkOrder `gorm:"foreignKey:NoticeID" json:"-"`
}

func (MaintenanceNotice) TableName() string { return "maintenance_notices" }
