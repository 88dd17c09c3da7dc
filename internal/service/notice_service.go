package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/bryamlazo166/cmms-app/internal/dto"
	"github.com/bryamlazo166/cmms-app/internal/model"
	"github.com/bryamlazo166/cmms-app/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Statuses that make an existing notice or work order block a new notice on
// the same equipment.
var (
	activeNoticeStatuses = []string{model.NoticePendiente, model.NoticeEnProgreso, model.NoticeEnTratamiento}
	activeOTStatuses     = []string{model.OTAbierta, model.OTProgramada, model.OTEnProgreso}
)

type NoticeService interface {
	Create(ctx context.Context, req dto.CreateNoticeRequest) (*dto.NoticeResponse, error)
	List(ctx context.Context) ([]dto.NoticeListItem, error)
	Get(ctx context.Context, id uint) (*model.MaintenanceNotice, error)
	Update(ctx context.Context, id uint, req dto.UpdateNoticeRequest) (*model.MaintenanceNotice, error)
	Delete(ctx context.Context, id uint) error
}

type noticeService struct {
	repo     repository.NoticeRepository
	woRepo   repository.WorkOrderRepository
	taxonomy repository.TaxonomyRepository
}

func NewNoticeService(
	repo repository.NoticeRepository,
	woRepo repository.WorkOrderRepository,
	taxonomy repository.TaxonomyRepository,
) NoticeService {
	return &noticeService{repo: repo, woRepo: woRepo, taxonomy: taxonomy}
}

// normStr turns empty strings from the form into nulls.
func normStr(p *string) *string {
	if p != nil && *p == "" {
		return nil
	}
	return p
}

// Create registers a failure report. Duplicate detection never blocks the
// report: a suspected duplicate is still persisted, flagged with status
// Duplicado and a prefixed description, so the planner decides.
func (s *noticeService) Create(ctx context.Context, req dto.CreateNoticeRequest) (*dto.NoticeResponse, error) {
	nextID, err := s.repo.NextID(ctx)
	if err != nil {
		return nil, err
	}

	notice := &model.MaintenanceNotice{
		Code:            fmt.Sprintf("AV-%04d", nextID),
		ReporterName:    normStr(req.ReporterName),
		ReporterType:    normStr(req.ReporterType),
		ProviderID:      req.ProviderID,
		Specialty:       normStr(req.Specialty),
		Shift:           normStr(req.Shift),
		AreaID:          req.AreaID,
		LineID:          req.LineID,
		EquipmentID:     req.EquipmentID,
		SystemID:        req.SystemID,
		ComponentID:     req.ComponentID,
		Description:     normStr(req.Description),
		Criticality:     normStr(req.Criticality),
		Priority:        normStr(req.Priority),
		RequestDate:     normStr(req.RequestDate),
		TreatmentDate:   normStr(req.TreatmentDate),
		PlanningDate:    normStr(req.PlanningDate),
		MaintenanceType: normStr(req.MaintenanceType),
		Status:          model.NoticePendiente,
	}
	if st := normStr(req.Status); st != nil {
		notice.Status = *st
	}

	// Duplicate detection: an active notice on the same equipment wins over
	// an active work order; either one flags the new report. Only "no row"
	// means no duplicate; any other lookup error fails the whole create so a
	// flaky store cannot silently let duplicates through.
	var duplicateReason string
	if req.EquipmentID != nil {
		prev, err := s.repo.FindActiveByEquipment(ctx, *req.EquipmentID, activeNoticeStatuses)
		switch {
		case err == nil:
			duplicateReason = fmt.Sprintf("Aviso previo activo (%s)", prev.Code)
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		default:
			ot, otErr := s.woRepo.FindActiveByEquipment(ctx, *req.EquipmentID, activeOTStatuses)
			switch {
			case otErr == nil:
				duplicateReason = fmt.Sprintf("OT activa asociada (%s)", ot.Code)
			case !errors.Is(otErr, gorm.ErrRecordNotFound):
				return nil, otErr
			}
		}
	}
	if duplicateReason != "" {
		notice.Status = model.NoticeDuplicado
		desc := ""
		if notice.Description != nil {
			desc = *notice.Description
		}
		flagged := fmt.Sprintf("[POSIBLE DUPLICADO: %s] %s", duplicateReason, desc)
		notice.Description = &flagged
		log.Warn().Str("code", notice.Code).Str("reason", duplicateReason).
			Msg("aviso marcado como posible duplicado")
	}

	if err := s.repo.Create(ctx, notice); err != nil {
		return nil, err
	}

	resp := &dto.NoticeResponse{MaintenanceNotice: *notice}
	if duplicateReason != "" {
		resp.IsDuplicate = true
		resp.DuplicateReason = duplicateReason
	}
	return resp, nil
}

// List enriches every notice with the equipment resolved through the
// hierarchy, its corrective-failure history and the linked OT's failure mode.
func (s *noticeService) List(ctx context.Context) ([]dto.NoticeListItem, error) {
	notices, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]dto.NoticeListItem, 0, len(notices))
	for _, n := range notices {
		item := dto.NoticeListItem{MaintenanceNotice: n, FailureMode: "-"}

		equipID := s.resolveEquipment(ctx, &n)
		item.ResolvedEquipmentID = equipID
		if equipID != nil {
			count, err := s.woRepo.CountClosedCorrectiveByEquipment(ctx, *equipID)
			if err == nil {
				item.FailureCount = count
			}
		}
		if n.WorkOrder != nil && n.WorkOrder.FailureMode != nil && *n.WorkOrder.FailureMode != "" {
			item.FailureMode = *n.WorkOrder.FailureMode
		}
		items = append(items, item)
	}
	return items, nil
}

// resolveEquipment walks up from whatever level the notice points at:
// equipment directly, a system, or a component via its system.
func (s *noticeService) resolveEquipment(ctx context.Context, n *model.MaintenanceNotice) *uint {
	if n.EquipmentID != nil {
		return n.EquipmentID
	}
	if n.SystemID != nil {
		if sys, err := s.taxonomy.FindSystemByID(ctx, *n.SystemID); err == nil {
			return &sys.EquipmentID
		}
		return nil
	}
	if n.ComponentID != nil {
		if comp, err := s.taxonomy.FindComponentByID(ctx, *n.ComponentID); err == nil {
			if sys, err := s.taxonomy.FindSystemByID(ctx, comp.SystemID); err == nil {
				return &sys.EquipmentID
			}
		}
	}
	return nil
}

func (s *noticeService) Get(ctx context.Context, id uint) (*model.MaintenanceNotice, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("Aviso", id)
	}
	return n, nil
}

func (s *noticeService) Update(ctx context.Context, id uint, req dto.UpdateNoticeRequest) (*model.MaintenanceNotice, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("Aviso", id)
	}

	if req.ReporterName != nil {
		n.ReporterName = normStr(req.ReporterName)
	}
	if req.ReporterType != nil {
		n.ReporterType = normStr(req.ReporterType)
	}
	if req.ProviderID != nil {
		n.ProviderID = req.ProviderID
	}
	if req.Specialty != nil {
		n.Specialty = normStr(req.Specialty)
	}
	if req.Shift != nil {
		n.Shift = normStr(req.Shift)
	}
	if req.AreaID != nil {
		n.AreaID = req.AreaID
	}
	if req.LineID != nil {
		n.LineID = req.LineID
	}
	if req.EquipmentID != nil {
		n.EquipmentID = req.EquipmentID
	}
	if req.SystemID != nil {
		n.SystemID = req.SystemID
	}
	if req.ComponentID != nil {
		n.ComponentID = req.ComponentID
	}
	if req.Description != nil {
		n.Description = normStr(req.Description)
	}
	if req.Criticality != nil {
		n.Criticality = normStr(req.Criticality)
	}
	if req.Priority != nil {
		n.Priority = normStr(req.Priority)
	}
	if req.RequestDate != nil {
		n.RequestDate = normStr(req.RequestDate)
	}
	if req.TreatmentDate != nil {
		n.TreatmentDate = normStr(req.TreatmentDate)
	}
	if req.PlanningDate != nil {
		n.PlanningDate = normStr(req.PlanningDate)
	}
	if req.MaintenanceType != nil {
		n.MaintenanceType = normStr(req.MaintenanceType)
	}
	if req.Status != nil && *req.Status != "" {
		n.Status = *req.Status
	}
	if req.CancellationReason != nil {
		n.CancellationReason = normStr(req.CancellationReason)
	}

	if err := s.repo.Save(ctx, n); err != nil {
		return nil, err
	}
	return n, nil
}

func (s *noticeService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return notFound("Aviso", id)
	}
	return s.repo.Delete(ctx, id)
}
