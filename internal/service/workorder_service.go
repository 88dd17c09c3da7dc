package service

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/bryamlazo166/cmms-app/internal/dto"
	"github.com/bryamlazo166/cmms-app/internal/model"
	"github.com/bryamlazo166/cmms-app/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type WorkOrderService interface {
	Create(ctx context.Context, req dto.CreateWorkOrderRequest) (*model.WorkOrder, error)
	List(ctx context.Context) ([]dto.WorkOrderListItem, error)
	GetListItem(ctx context.Context, id uint) (*dto.WorkOrderListItem, error)
	Get(ctx context.Context, id uint) (*model.WorkOrder, error)
	Update(ctx context.Context, id uint, req dto.UpdateWorkOrderRequest) (*model.WorkOrder, error)
	Delete(ctx context.Context, id uint) error

	// Personnel sub-resource
	ListPersonnel(ctx context.Context, workOrderID uint) ([]dto.PersonnelResponse, error)
	SavePersonnel(ctx context.Context, workOrderID uint, req dto.SavePersonnelRequest) ([]model.OTPersonnel, error)
	UpdatePersonnel(ctx context.Context, id uint, req dto.PersonnelInput) (*model.OTPersonnel, error)
	DeletePersonnel(ctx context.Context, id uint) error

	// Materials sub-resource
	ListMaterials(ctx context.Context, workOrderID uint) ([]dto.MaterialResponse, error)
	AddMaterial(ctx context.Context, workOrderID uint, req dto.AddMaterialRequest) (*model.OTMaterial, error)
	RemoveMaterial(ctx context.Context, workOrderID, materialID uint) error

	// Predictive helpers
	Suggestions(ctx context.Context, maintenanceType string, componentID, systemID, equipmentID *uint) (*dto.SuggestionResponse, error)
	Feedback(ctx context.Context, equipmentID uint) ([]dto.FeedbackItem, error)
}

type workOrderService struct {
	repo      repository.WorkOrderRepository
	notices   repository.NoticeRepository
	warehouse repository.WarehouseRepository
	tools     repository.ToolRepository
	techs     repository.TechnicianRepository
	providers repository.ProviderRepository
	taxonomy  repository.TaxonomyRepository
}

func NewWorkOrderService(
	repo repository.WorkOrderRepository,
	notices repository.NoticeRepository,
	warehouse repository.WarehouseRepository,
	tools repository.ToolRepository,
	techs repository.TechnicianRepository,
	providers repository.ProviderRepository,
	taxonomy repository.TaxonomyRepository,
) WorkOrderService {
	return &workOrderService{
		repo:      repo,
		notices:   notices,
		warehouse: warehouse,
		tools:     tools,
		techs:     techs,
		providers: providers,
		taxonomy:  taxonomy,
	}
}

// Create opens a work order. When it is spawned from a notice, the notice
// moves to En Tratamiento and gets the OT number stamped in the same
// transaction, so the two records never disagree.
func (s *workOrderService) Create(ctx context.Context, req dto.CreateWorkOrderRequest) (*model.WorkOrder, error) {
	if req.NoticeID != nil {
		if _, err := s.notices.FindByID(ctx, *req.NoticeID); err != nil {
			return nil, notFound("Aviso", *req.NoticeID)
		}
	}

	nextID, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	wo := &model.WorkOrder{
		Code:              fmt.Sprintf("OT-%04d", nextID),
		NoticeID:          req.NoticeID,
		ProviderID:        req.ProviderID,
		AreaID:            req.AreaID,
		LineID:            req.LineID,
		EquipmentID:       req.EquipmentID,
		SystemID:          req.SystemID,
		ComponentID:       req.ComponentID,
		Description:       normStr(req.Description),
		FailureMode:       normStr(req.FailureMode),
		MaintenanceType:   normStr(req.MaintenanceType),
		Status:            model.OTAbierta,
		TechnicianID:      normStr(req.TechnicianID),
		ScheduledDate:     normStr(req.ScheduledDate),
		EstimatedDuration: req.EstimatedDuration,
		TechCount:         1,
	}
	if st := normStr(req.Status); st != nil {
		wo.Status = *st
	}
	if req.TechCount != nil {
		wo.TechCount = *req.TechCount
	}

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateTx(tx, wo); err != nil {
			return err
		}
		if wo.NoticeID != nil {
			return s.notices.UpdateStatusTx(tx, *wo.NoticeID, model.NoticeEnTratamiento, wo.Code)
		}
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	return wo, nil
}

// List enriches each work order with hierarchy names and the effective
// criticality (component, else equipment, else the linked notice). Lookup
// tables are loaded once instead of per row.
func (s *workOrderService) List(ctx context.Context) ([]dto.WorkOrderListItem, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	areas, err := s.taxonomy.ListAreas(ctx)
	if err != nil {
		return nil, err
	}
	lines, err := s.taxonomy.ListLines(ctx)
	if err != nil {
		return nil, err
	}
	equips, err := s.taxonomy.ListEquipments(ctx)
	if err != nil {
		return nil, err
	}
	systems, err := s.taxonomy.ListSystems(ctx)
	if err != nil {
		return nil, err
	}
	comps, err := s.taxonomy.ListComponents(ctx)
	if err != nil {
		return nil, err
	}
	provs, err := s.providers.List(ctx)
	if err != nil {
		return nil, err
	}

	areaNames := make(map[uint]string, len(areas))
	for _, a := range areas {
		areaNames[a.ID] = a.Name
	}
	lineNames := make(map[uint]string, len(lines))
	for _, l := range lines {
		lineNames[l.ID] = l.Name
	}
	equipByID := make(map[uint]model.Equipment, len(equips))
	for _, e := range equips {
		equipByID[e.ID] = e
	}
	systemNames := make(map[uint]string, len(systems))
	for _, sys := range systems {
		systemNames[sys.ID] = sys.Name
	}
	compByID := make(map[uint]model.Component, len(comps))
	for _, c := range comps {
		compByID[c.ID] = c
	}
	providerNames := make(map[uint]string, len(provs))
	for _, p := range provs {
		providerNames[p.ID] = p.Name
	}

	name := func(names map[uint]string, id *uint) string {
		if id != nil {
			if n, ok := names[*id]; ok {
				return n
			}
		}
		return "-"
	}

	items := make([]dto.WorkOrderListItem, 0, len(orders))
	for _, wo := range orders {
		item := dto.WorkOrderListItem{
			WorkOrder:     wo,
			AreaName:      name(areaNames, wo.AreaID),
			LineName:      name(lineNames, wo.LineID),
			SystemName:    name(systemNames, wo.SystemID),
			EquipmentName: "-",
			EquipmentTag:  "-",
			ComponentName: "-",
			Criticality:   "-",
			NoticeCode:    "-",
			ProviderName:  name(providerNames, wo.ProviderID),
		}
		if wo.Notice != nil {
			item.NoticeCode = wo.Notice.Code
		}

		var equipCrit, compCrit *string
		if wo.EquipmentID != nil {
			if e, ok := equipByID[*wo.EquipmentID]; ok {
				item.EquipmentName = e.Name
				item.EquipmentTag = e.Tag
				equipCrit = e.Criticality
			}
		}
		if wo.ComponentID != nil {
			if c, ok := compByID[*wo.ComponentID]; ok {
				item.ComponentName = c.Name
				compCrit = c.Criticality
			}
		}

		switch {
		case compCrit != nil && *compCrit != "":
			item.Criticality = *compCrit
		case equipCrit != nil && *equipCrit != "":
			item.Criticality = *equipCrit
		case wo.Notice != nil && wo.Notice.Criticality != nil && *wo.Notice.Criticality != "":
			item.Criticality = *wo.Notice.Criticality
		}

		items = append(items, item)
	}
	return items, nil
}

// GetListItem returns one work order with the same enrichment as List. Used
// by the printable sheet, where volume does not matter.
func (s *workOrderService) GetListItem(ctx context.Context, id uint) (*dto.WorkOrderListItem, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, notFound("Orden de trabajo", id)
}

func (s *workOrderService) Get(ctx context.Context, id uint) (*model.WorkOrder, error) {
	wo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("Orden de trabajo", id)
	}
	return wo, nil
}

// Update applies planning/execution changes. Closing an order with a linked
// notice syncs the notice to Cerrado in the same transaction. Component
// criticality learning only happens through propagateCriticality, never as a
// side effect of unrelated field updates.
func (s *workOrderService) Update(ctx context.Context, id uint, req dto.UpdateWorkOrderRequest) (*model.WorkOrder, error) {
	wo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("Orden de trabajo", id)
	}

	if req.ProviderID != nil {
		wo.ProviderID = req.ProviderID
	}
	if req.Description != nil {
		wo.Description = normStr(req.Description)
	}
	if req.FailureMode != nil {
		wo.FailureMode = normStr(req.FailureMode)
	}
	if req.MaintenanceType != nil {
		wo.MaintenanceType = normStr(req.MaintenanceType)
	}
	if req.Status != nil && *req.Status != "" {
		wo.Status = *req.Status
	}
	if req.TechnicianID != nil {
		wo.TechnicianID = normStr(req.TechnicianID)
	}
	if req.ScheduledDate != nil {
		wo.ScheduledDate = normStr(req.ScheduledDate)
	}
	if req.EstimatedDuration != nil {
		wo.EstimatedDuration = req.EstimatedDuration
	}
	if req.TechCount != nil {
		wo.TechCount = *req.TechCount
	}
	if req.RealStartDate != nil {
		wo.RealStartDate = normStr(req.RealStartDate)
	}
	if req.RealEndDate != nil {
		wo.RealEndDate = normStr(req.RealEndDate)
	}
	if req.ExecutionComments != nil {
		wo.ExecutionComments = normStr(req.ExecutionComments)
	}
	if req.RealDuration != nil {
		wo.RealDuration = req.RealDuration
	}

	closing := req.Status != nil && *req.Status == model.OTCerrada

	txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.SaveTx(tx, wo); err != nil {
			return err
		}
		if closing && wo.NoticeID != nil {
			if err := s.notices.UpdateStatusTx(tx, *wo.NoticeID, model.NoticeCerrado, wo.Code); err != nil {
				return err
			}
		}
		return s.propagateCriticality(tx, wo, req)
	})
	if txErr != nil {
		return nil, txErr
	}
	return wo, nil
}

// propagateCriticality is the learning step: an explicit priority (or
// criticality) on the update overwrites the component's stored criticality so
// future notices on the same component inherit it.
func (s *workOrderService) propagateCriticality(tx *gorm.DB, wo *model.WorkOrder, req dto.UpdateWorkOrderRequest) error {
	value := normStr(req.Priority)
	if value == nil {
		value = normStr(req.Criticality)
	}
	if value == nil || wo.ComponentID == nil {
		return nil
	}
	log.Info().Uint("component_id", *wo.ComponentID).Str("criticality", *value).
		Msg("criticidad propagada al componente")
	return s.taxonomy.UpdateComponentCriticalityTx(tx, *wo.ComponentID, *value)
}

func (s *workOrderService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFound("Orden de trabajo", id)
	}
	return s.repo.Delete(ctx, id)
}

// ── Personnel ────────────────────────────────────────────────────────────────

func (s *workOrderService) ListPersonnel(ctx context.Context, workOrderID uint) ([]dto.PersonnelResponse, error) {
	personnel, err := s.repo.ListPersonnel(ctx, workOrderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PersonnelResponse, 0, len(personnel))
	for _, p := range personnel {
		resp := dto.PersonnelResponse{
			ID:            p.ID,
			TechnicianID:  p.TechnicianID,
			Specialty:     p.Specialty,
			HoursAssigned: p.HoursAssigned,
			HoursWorked:   p.HoursWorked,
		}
		if p.Technician != nil {
			resp.TechnicianName = p.Technician.Name
		}
		out = append(out, resp)
	}
	return out, nil
}

// SavePersonnel accepts either shape the planning form sends: an array
// replaces the whole crew, a single object appends one member. Hours default
// to a full shift.
func (s *workOrderService) SavePersonnel(ctx context.Context, workOrderID uint, req dto.SavePersonnelRequest) ([]model.OTPersonnel, error) {
	if _, err := s.repo.FindByID(ctx, workOrderID); err != nil {
		return nil, notFound("Orden de trabajo", workOrderID)
	}

	inputs := req.Personnel
	replaceAll := inputs != nil
	if !replaceAll {
		inputs = []dto.PersonnelInput{req.PersonnelInput}
	}

	if replaceAll {
		if err := s.repo.DeletePersonnelByWorkOrder(ctx, workOrderID); err != nil {
			return nil, err
		}
	}

	saved := make([]model.OTPersonnel, 0, len(inputs))
	for _, in := range inputs {
		hours := 8.0
		if in.HoursAssigned != nil {
			hours = *in.HoursAssigned
		}
		p := model.OTPersonnel{
			WorkOrderID:   workOrderID,
			TechnicianID:  in.TechnicianID,
			Specialty:     normStr(in.Specialty),
			HoursAssigned: hours,
			HoursWorked:   in.HoursWorked,
		}
		if err := s.repo.CreatePersonnel(ctx, &p); err != nil {
			return nil, err
		}
		saved = append(saved, p)
	}
	return saved, nil
}

func (s *workOrderService) UpdatePersonnel(ctx context.Context, id uint, req dto.PersonnelInput) (*model.OTPersonnel, error) {
	p, err := s.repo.FindPersonnelByID(ctx, id)
	if err != nil {
		return nil, notFound("Personal asignado", id)
	}
	if req.TechnicianID != nil {
		p.TechnicianID = req.TechnicianID
	}
	if req.Specialty != nil {
		p.Specialty = normStr(req.Specialty)
	}
	if req.HoursAssigned != nil {
		p.HoursAssigned = *req.HoursAssigned
	}
	if req.HoursWorked != nil {
		p.HoursWorked = req.HoursWorked
	}
	if err := s.repo.SavePersonnel(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *workOrderService) DeletePersonnel(ctx context.Context, id uint) error {
	if _, err := s.repo.FindPersonnelByID(ctx, id); err != nil {
		return notFound("Personal asignado", id)
	}
	return s.repo.DeletePersonnel(ctx, id)
}

// ── Materials ────────────────────────────────────────────────────────────────

func (s *workOrderService) ListMaterials(ctx context.Context, workOrderID uint) ([]dto.MaterialResponse, error) {
	materials, err := s.repo.ListMaterials(ctx, workOrderID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.MaterialResponse, 0, len(materials))
	for _, m := range materials {
		resp := dto.MaterialResponse{
			ID:       m.ID,
			ItemType: m.ItemType,
			ItemID:   m.ItemID,
			Quantity: m.Quantity,
			Name:     "Desconocido",
		}
		switch m.ItemType {
		case model.ItemTypeTool:
			if t, err := s.tools.FindByID(ctx, m.ItemID); err == nil {
				resp.Name = t.Name
				resp.Code = t.Code
			}
		default:
			if item, err := s.warehouse.FindItemByID(ctx, m.ItemID); err == nil {
				resp.Name = item.Name
				resp.Code = item.Code
				stock := item.Stock
				resp.Stock = &stock
			}
		}
		out = append(out, resp)
	}
	return out, nil
}

// AddMaterial assigns an item to the order. A warehouse item deducts exactly
// the requested quantity and leaves exactly one OUT row in the kardex; a tool
// is validated against the tool catalog and never touches stock.
func (s *workOrderService) AddMaterial(ctx context.Context, workOrderID uint, req dto.AddMaterialRequest) (*model.OTMaterial, error) {
	wo, err := s.repo.FindByID(ctx, workOrderID)
	if err != nil {
		return nil, notFound("Orden de trabajo", workOrderID)
	}

	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}
	if qty <= 0 {
		return nil, invalid("la cantidad debe ser mayor a cero")
	}

	material := &model.OTMaterial{
		WorkOrderID: workOrderID,
		ItemType:    req.ItemType,
		ItemID:      req.ItemID,
		Quantity:    qty,
	}

	switch req.ItemType {
	case model.ItemTypeTool:
		if _, err := s.tools.FindByID(ctx, req.ItemID); err != nil {
			return nil, notFound("Herramienta", req.ItemID)
		}
		txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
			return s.repo.CreateMaterialTx(tx, material)
		})
		if txErr != nil {
			return nil, txErr
		}

	case model.ItemTypeWarehouse:
		item, err := s.warehouse.FindItemByID(ctx, req.ItemID)
		if err != nil {
			return nil, notFound("Articulo", req.ItemID)
		}
		if item.Stock < qty {
			return nil, &ConsistencyError{
				Msg:       fmt.Sprintf("Stock insuficiente. Disponible: %d", item.Stock),
				Available: item.Stock,
			}
		}
		otRef := workOrderID
		txErr := runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
			if err := s.warehouse.UpdateStockTx(tx, item.ID, -qty); err != nil {
				return err
			}
			if err := s.warehouse.CreateMovementTx(tx, &model.WarehouseMovement{
				ItemID:       item.ID,
				Quantity:     -qty,
				MovementType: model.MovementOut,
				Date:         time.Now().Format(time.RFC3339),
				ReferenceID:  &otRef,
				Reason:       fmt.Sprintf("Uso en %s", wo.Code),
			}); err != nil {
				return err
			}
			return s.repo.CreateMaterialTx(tx, material)
		})
		if txErr != nil {
			return nil, txErr
		}

	default:
		return nil, invalid("tipo de item invalido: %s", req.ItemType)
	}

	return material, nil
}

// RemoveMaterial undoes an assignment. A warehouse item returns its full
// quantity to stock with one RETURN row of equal magnitude.
func (s *workOrderService) RemoveMaterial(ctx context.Context, workOrderID, materialID uint) error {
	wo, err := s.repo.FindByID(ctx, workOrderID)
	if err != nil {
		return notFound("Orden de trabajo", workOrderID)
	}
	material, err := s.repo.FindMaterialByID(ctx, materialID)
	if err != nil {
		return notFound("Material", materialID)
	}
	if material.WorkOrderID != workOrderID {
		return invalid("el material no pertenece a la orden %s", wo.Code)
	}

	return runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if material.ItemType == model.ItemTypeWarehouse {
			if err := s.warehouse.UpdateStockTx(tx, material.ItemID, material.Quantity); err != nil {
				return err
			}
			otRef := workOrderID
			if err := s.warehouse.CreateMovementTx(tx, &model.WarehouseMovement{
				ItemID:       material.ItemID,
				Quantity:     material.Quantity,
				MovementType: model.MovementReturn,
				Date:         time.Now().Format(time.RFC3339),
				ReferenceID:  &otRef,
				Reason:       fmt.Sprintf("Devolución de %s", wo.Code),
			}); err != nil {
				return err
			}
		}
		return s.repo.DeleteMaterialTx(tx, material.ID)
	})
}

// ── Predictive helpers ───────────────────────────────────────────────────────

// Suggestions finds the most recent closed order for the most specific asset
// given (component wins over system wins over equipment) and returns the
// materials it consumed, split into tools and parts.
func (s *workOrderService) Suggestions(ctx context.Context, maintenanceType string, componentID, systemID, equipmentID *uint) (*dto.SuggestionResponse, error) {
	var (
		last *model.WorkOrder
		err  error
	)
	switch {
	case componentID != nil:
		last, err = s.repo.FindLastClosedByComponent(ctx, *componentID, maintenanceType)
	case systemID != nil:
		last, err = s.repo.FindLastClosedBySystem(ctx, *systemID, maintenanceType)
	case equipmentID != nil:
		last, err = s.repo.FindLastClosedByEquipment(ctx, *equipmentID, maintenanceType)
	default:
		return &dto.SuggestionResponse{Found: false, Message: "No asset specified"}, nil
	}
	if err != nil {
		return &dto.SuggestionResponse{Found: false, Message: "No history found"}, nil
	}

	materials, err := s.repo.ListMaterials(ctx, last.ID)
	if err != nil {
		return nil, err
	}

	resp := &dto.SuggestionResponse{Found: true, SourceOT: last.Code}
	for _, m := range materials {
		suggested := dto.SuggestedMaterial{
			ItemID:   m.ItemID,
			ItemType: m.ItemType,
			Quantity: m.Quantity,
			Name:     "Desconocido",
		}
		if m.ItemType == model.ItemTypeTool {
			if t, err := s.tools.FindByID(ctx, m.ItemID); err == nil {
				suggested.Name = t.Name
				suggested.Code = t.Code
			}
			resp.Tools = append(resp.Tools, suggested)
		} else {
			if item, err := s.warehouse.FindItemByID(ctx, m.ItemID); err == nil {
				suggested.Name = item.Name
				suggested.Code = item.Code
			}
			resp.Parts = append(resp.Parts, suggested)
		}
	}
	return resp, nil
}

// Feedback returns the last closed orders on the equipment that carry
// execution comments, so planners see what the crews actually found.
func (s *workOrderService) Feedback(ctx context.Context, equipmentID uint) ([]dto.FeedbackItem, error) {
	orders, err := s.repo.ListClosedWithCommentsByEquipment(ctx, equipmentID, 5)
	if err != nil {
		return nil, err
	}

	items := make([]dto.FeedbackItem, 0, len(orders))
	for _, wo := range orders {
		item := dto.FeedbackItem{
			MaintenanceType: wo.MaintenanceType,
			TechName:        "Desconocido",
			OTCode:          wo.Code,
			Date:            "N/A",
		}
		if wo.RealEndDate != nil && *wo.RealEndDate != "" {
			item.Date = *wo.RealEndDate
		} else if wo.RealStartDate != nil && *wo.RealStartDate != "" {
			item.Date = *wo.RealStartDate
		}
		if wo.ExecutionComments != nil {
			item.Comments = *wo.ExecutionComments
		}
		if wo.TechnicianID != nil {
			if techID, err := strconv.Atoi(*wo.TechnicianID); err == nil {
				if t, err := s.techs.FindByID(ctx, uint(techID)); err == nil {
					item.TechName = t.Name
				}
			} else if *wo.TechnicianID != "" {
				item.TechName = *wo.TechnicianID
			}
		}
		items = append(items, item)
	}
	return items, nil
}
