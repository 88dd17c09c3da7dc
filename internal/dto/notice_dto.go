package dto

import "github.com/bryamlazo166/cmms-app/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

// CreateNoticeRequest mirrors the notice form. Only allow-listed fields reach
// the model; empty strings normalize to null.
type CreateNoticeRequest struct {
	ReporterName    *string `json:"reporter_name"`
	ReporterType    *string `json:"reporter_type"`
	ProviderID      *uint   `json:"provider_id"`
	Specialty       *string `json:"specialty"`
	Shift           *string `json:"shift"`
	AreaID          *uint   `json:"area_id"`
	LineID          *uint   `json:"line_id"`
	EquipmentID     *uint   `json:"equipment_id"`
	SystemID        *uint   `json:"system_id"`
	ComponentID     *uint   `json:"component_id"`
	Description     *string `json:"description"`
	Criticality     *string `json:"criticality"`
	Priority        *string `json:"priority"`
	RequestDate     *string `json:"request_date"`
	TreatmentDate   *string `json:"treatment_date"`
	PlanningDate    *string `json:"planning_date"`
	MaintenanceType *string `json:"maintenance_type"`
	Status          *string `json:"status"`
}

type UpdateNoticeRequest struct {
	ReporterName       *string `json:"reporter_name"`
	ReporterType       *string `json:"reporter_type"`
	ProviderID         *uint   `json:"provider_id"`
	Specialty          *string `json:"specialty"`
	Shift              *string `json:"shift"`
	AreaID             *uint   `json:"area_id"`
	LineID             *uint   `json:"line_id"`
	EquipmentID        *uint   `json:"equipment_id"`
	SystemID           *uint   `json:"system_id"`
	ComponentID        *uint   `json:"component_id"`
	Description        *string `json:"description"`
	Criticality        *string `json:"criticality"`
	Priority           *string `json:"priority"`
	RequestDate        *string `json:"request_date"`
	TreatmentDate      *string `json:"treatment_date"`
	PlanningDate       *string `json:"planning_date"`
	MaintenanceType    *string `json:"maintenance_type"`
	Status             *string `json:"status"`
	CancellationReason *string `json:"cancellation_reason"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// NoticeResponse wraps the notice with the duplicate-detection verdict.
type NoticeResponse struct {
	model.MaintenanceNotice
	IsDuplicate     bool   `json:"is_duplicate,omitempty"`
	DuplicateReason string `json:"duplicate_reason,omitempty"`
}

// NoticeListItem enriches a notice with the resolved equipment, its historical
// failure count and the failure mode of the linked work order.
type NoticeListItem struct {
	model.MaintenanceNotice
	ResolvedEquipmentID *uint  `json:"resolved_equipment_id"`
	FailureCount        int64  `json:"failure_count"`
	FailureMode         string `json:"failure_mode"`
}
