package dto

import "github.com/bryamlazo166/cmms-app/internal/model"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateWorkOrderRequest struct {
	NoticeID          *uint    `json:"notice_id"`
	ProviderID        *uint    `json:"provider_id"`
	AreaID            *uint    `json:"area_id"`
	LineID            *uint    `json:"line_id"`
	EquipmentID       *uint    `json:"equipment_id"`
	SystemID          *uint    `json:"system_id"`
	ComponentID       *uint    `json:"component_id"`
	Description       *string  `json:"description"`
	FailureMode       *string  `json:"failure_mode"`
	MaintenanceType   *string  `json:"maintenance_type"`
	Status            *string  `json:"status"`
	TechnicianID      *string  `json:"technician_id"`
	ScheduledDate     *string  `json:"scheduled_date"`
	EstimatedDuration *float64 `json:"estimated_duration"`
	TechCount         *int     `json:"tech_count" validate:"omitempty,min=1"`
}

// UpdateWorkOrderRequest is the allow-listed planning/execution update form.
// Priority rides along for criticality propagation but is not a column.
type UpdateWorkOrderRequest struct {
	ProviderID        *uint    `json:"provider_id"`
	Description       *string  `json:"description"`
	FailureMode       *string  `json:"failure_mode"`
	MaintenanceType   *string  `json:"maintenance_type"`
	Status            *string  `json:"status"`
	TechnicianID      *string  `json:"technician_id"`
	ScheduledDate     *string  `json:"scheduled_date"`
	EstimatedDuration *float64 `json:"estimated_duration"`
	TechCount         *int     `json:"tech_count" validate:"omitempty,min=1"`
	RealStartDate     *string  `json:"real_start_date"`
	RealEndDate       *string  `json:"real_end_date"`
	ExecutionComments *string  `json:"execution_comments"`
	RealDuration      *float64 `json:"real_duration"`
	Priority          *string  `json:"priority"`
	Criticality       *string  `json:"criticality"`
}

type PersonnelInput struct {
	TechnicianID  *uint    `json:"technician_id"`
	Specialty     *string  `json:"specialty"`
	HoursAssigned *float64 `json:"hours_assigned" validate:"omitempty,min=0"`
	HoursWorked   *float64 `json:"hours_worked" validate:"omitempty,min=0"`
}

// SavePersonnelRequest accepts either a single assignment or a replace-all
// array, matching the two shapes the planning form sends.
type SavePersonnelRequest struct {
	Personnel []PersonnelInput `json:"personnel"`
	PersonnelInput
}

type AddMaterialRequest struct {
	ItemType string `json:"item_type" validate:"required,oneof=tool warehouse"`
	ItemID   uint   `json:"item_id" validate:"required"`
	Quantity *int   `json:"quantity" validate:"omitempty,min=1"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

// WorkOrderListItem enriches a work order with hierarchy names and the
// effective criticality (component, else equipment, else linked notice).
type WorkOrderListItem struct {
	model.WorkOrder
	AreaName      string `json:"area_name"`
	LineName      string `json:"line_name"`
	EquipmentName string `json:"equipment_name"`
	EquipmentTag  string `json:"equipment_tag"`
	SystemName    string `json:"system_name"`
	ComponentName string `json:"component_name"`
	Criticality   string `json:"criticality"`
	NoticeCode    string `json:"notice_code"`
	ProviderName  string `json:"provider_name"`
}

type PersonnelResponse struct {
	ID             uint     `json:"id"`
	TechnicianID   *uint    `json:"technician_id"`
	TechnicianName string   `json:"technician_name"`
	Specialty      *string  `json:"specialty"`
	HoursAssigned  float64  `json:"hours_assigned"`
	HoursWorked    *float64 `json:"hours_worked"`
}

type MaterialResponse struct {
	ID       uint   `json:"id"`
	ItemType string `json:"item_type"`
	ItemID   uint   `json:"item_id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
	Stock    *int   `json:"stock,omitempty"` // warehouse items only
}

type SuggestedMaterial struct {
	ItemID   uint   `json:"item_id"`
	ItemType string `json:"item_type"`
	Quantity int    `json:"quantity"`
	Name     string `json:"name"`
	Code     string `json:"code"`
}

// SuggestionResponse is the predictive helper: what the last similar closed
// work order used, split into tools and spare parts.
type SuggestionResponse struct {
	Found    bool                `json:"found"`
	Message  string              `json:"message,omitempty"`
	Tools    []SuggestedMaterial `json:"tools,omitempty"`
	Parts    []SuggestedMaterial `json:"parts,omitempty"`
	SourceOT string              `json:"source_ot,omitempty"`
}

type FeedbackItem struct {
	Date            string  `json:"date"`
	MaintenanceType *string `json:"maintenance_type"`
	Comments        string  `json:"comments"`
	TechName        string  `json:"tech_name"`
	OTCode          string  `json:"ot_code"`
}
