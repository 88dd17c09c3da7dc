package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateAreaRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description"`
}

type UpdateAreaRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
}

type CreateLineRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description"`
	AreaID      uint    `json:"area_id" validate:"required"`
}

type UpdateLineRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	AreaID      *uint   `json:"area_id"`
}

type CreateEquipmentRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Tag         string  `json:"tag" validate:"required,min=1,max=50"`
	Description *string `json:"description"`
	Criticality *string `json:"criticality"`
	LineID      uint    `json:"line_id" validate:"required"`
}

type UpdateEquipmentRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Tag         *string `json:"tag" validate:"omitempty,min=1,max=50"`
	Description *string `json:"description"`
	Criticality *string `json:"criticality"`
	LineID      *uint   `json:"line_id"`
}

type CreateSystemRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	EquipmentID uint   `json:"equipment_id" validate:"required"`
}

type UpdateSystemRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	EquipmentID *uint   `json:"equipment_id"`
}

type CreateComponentRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=100"`
	Description *string `json:"description"`
	Criticality *string `json:"criticality"`
	SystemID    uint    `json:"system_id" validate:"required"`
}

type UpdateComponentRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Description *string `json:"description"`
	Criticality *string `json:"criticality"`
	SystemID    *uint   `json:"system_id"`
}

type CreateSparePartRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=100"`
	Code        string `json:"code"`
	Brand       string `json:"brand"`
	Quantity    int    `json:"quantity" validate:"min=0"`
	ComponentID uint   `json:"component_id" validate:"required"`
}

type UpdateSparePartRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	Code        *string `json:"code"`
	Brand       *string `json:"brand"`
	Quantity    *int    `json:"quantity" validate:"omitempty,min=0"`
	ComponentID *uint   `json:"component_id"`
}

// BulkPasteRequest carries TSV rows (Excel copy-paste) for ONE entity level.
// Parent columns (AreaName, LineName, …) scope the lookup of the parent node.
type BulkPasteRequest struct {
	EntityType string `json:"entity_type" validate:"required,oneof=Areas Lines Equipments Systems Components SpareParts"`
	RawData    string `json:"raw_data" validate:"required"`
}

// BulkPasteHierarchyRequest carries TSV rows where each row is a full chain
// Area → Line → Equipment → System → Component → SparePart. Missing nodes are
// created on the fly.
type BulkPasteHierarchyRequest struct {
	RawData string `json:"raw_data" validate:"required"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type BulkResult struct {
	Message string `json:"message"`
	Created int    `json:"created"`
	Skipped int    `json:"skipped"`
}

// ExcelImportResult summarizes a workbook import, per sheet.
type ExcelImportResult struct {
	Message string         `json:"message"`
	Sheets  map[string]int `json:"sheets"` // sheet name → rows created
}

// TaxonomyFlatRow is one row of the flattened master export: the full chain
// down to the deepest node that exists.
type TaxonomyFlatRow struct {
	Area            string
	AreaDescription string
	Line            string
	Equipment       string
	Tag             string
	System          string
	Component       string
	SparePart       string
	SpareCode       string
	SpareBrand      string
	SpareQty        *int
}
