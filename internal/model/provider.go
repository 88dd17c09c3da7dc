package model

// Provider is an external maintenance contractor.
type Provider struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Specialty   *string `gorm:"size:100" json:"specialty"`
	ContactInfo *string `gorm:"size:100" json:"contact_info"`
	IsActive    bool    `gorm:"not null;default:true" json:"is_active"` // soft delete
}

func (Provider) TableName() string { return "providers" }
