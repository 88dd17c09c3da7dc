package model

// Asset taxonomy: Area → Line → Equipment → System → Component → SparePart.
// Strict parent-child chain; every child carries a foreign key to its parent.

type Area struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`

	Lines []Line `gorm:"foreignKey:AreaID" json:"-"`
}

func (Area) TableName() string { return "areas" }

type Line struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	AreaID      uint    `gorm:"not null;index" json:"area_id"`

	Area       *Area       `gorm:"foreignKey:AreaID" json:"-"`
	Equipments []Equipment `gorm:"foreignKey:LineID" json:"-"`
}

func (Line) TableName() string { return "lines" }

type Equipment struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Tag         string  `gorm:"size:50;not null" json:"tag"`
	Description *string `gorm:"type:text" json:"description"`
	Criticality *string `gorm:"size:20" json:"criticality"` // Baja, Media, Alta
	LineID      uint    `gorm:"not null;index" json:"line_id"`

	Line    *Line    `gorm:"foreignKey:LineID" json:"-"`
	Systems []System `gorm:"foreignKey:EquipmentID" json:"-"`
}

func (Equipment) TableName() string { return "equipments" }

type System struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	EquipmentID uint   `gorm:"not null;index" json:"equipment_id"`

	Equipment  *Equipment  `gorm:"foreignKey:EquipmentID" json:"-"`
	Components []Component `gorm:"foreignKey:SystemID" json:"-"`
}

func (System) TableName() string { return "systems" }

// Component criticality is "learned": closing a work order with an explicit
// priority overwrites it (see service.PropagateCriticality).
type Component struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"size:100;not null" json:"name"`
	Description *string `gorm:"type:text" json:"description"`
	SystemID    uint    `gorm:"not null;index" json:"system_id"`
	Criticality *string `gorm:"size:50;default:'Media'" json:"criticality"`

	System     *System     `gorm:"foreignKey:SystemID" json:"-"`
	SpareParts []SparePart `gorm:"foreignKey:ComponentID" json:"-"`
}

func (Component) TableName() string { return "components" }

type SparePart struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Code        string `gorm:"size:50" json:"code"`
	Brand       string `gorm:"size:50" json:"brand"`
	Quantity    int    `gorm:"default:0" json:"quantity"`
	ComponentID uint   `gorm:"not null;index" json:"component_id"`

	Component *Component `gorm:"foreignKey:ComponentID" json:"-"`
}

func (SparePart) TableName() string { return "spare_parts" }
