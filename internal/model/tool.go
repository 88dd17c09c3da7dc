package model

// Tool statuses.
const (
	ToolDisponible    = "Disponible"
	ToolEnUso         = "En Uso"
	ToolMantenimiento = "Mantenimiento"
)

// Tool is a catalog entry for the tools available to maintenance crews.
// Tools are assigned to work orders but never consume warehouse stock.
type Tool struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Code        string  `gorm:"size:20;uniqueIndex" json:"code"` // HRR-001
	Name        string  `gorm:"size:100;not null" json:"name"`
	Category    *string `gorm:"size:50" json:"category"` // Manual, Eléctrica, Medición
	Description *string `gorm:"type:text" json:"description"`
	Status      string  `gorm:"size:30;not null;default:'Disponible'" json:"status"`
	Location    *string `gorm:"size:100" json:"location"`
	IsActive    bool    `gorm:"not null;default:true" json:"is_active"`
}

func (Tool) TableName() string { return "tools" }
