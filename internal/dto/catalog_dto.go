package dto

// Providers, technicians and tools share the same small CRUD shape.

type CreateProviderRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Specialty   *string `json:"specialty"`
	ContactInfo *string `json:"contact_info"`
}

type UpdateProviderRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Specialty   *string `json:"specialty"`
	ContactInfo *string `json:"contact_info"`
}

type CreateTechnicianRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Specialty   *string `json:"specialty"`
	ContactInfo *string `json:"contact_info"`
}

type UpdateTechnicianRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Specialty   *string `json:"specialty"`
	ContactInfo *string `json:"contact_info"`
	IsActive    *bool   `json:"is_active"`
}

type CreateToolRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=Disponible 'En Uso' Mantenimiento"`
	Location    *string `json:"location"`
}

type UpdateToolRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Status      *string `json:"status" validate:"omitempty,oneof=Disponible 'En Uso' Mantenimiento"`
	Location    *string `json:"location"`
	IsActive    *bool   `json:"is_active"`
}
