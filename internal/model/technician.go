package model

type Technician struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Specialty   *string `gorm:"size:100" json:"specialty"` // MECANICO, ELECTRICO, …
	ContactInfo *string `gorm:"size:100" json:"contact_info"`
	IsActive    bool    `gorm:"not null;default:true" json:"is_active"` // baja/alta toggle
}

func (Technician) TableName() string { return "technicians" }
