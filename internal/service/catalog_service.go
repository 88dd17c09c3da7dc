package service

import (
	"context"
	"fmt"

	"github.com/bryamlazo166/cmms-app/internal/dto"
	"github.com/bryamlazo166/cmms-app/internal/model"
	"github.com/bryamlazo166/cmms-app/internal/repository"
)

// CatalogService covers the three small operational catalogs: providers,
// technicians and tools.
type CatalogService interface {
	CreateProvider(ctx context.Context, req dto.CreateProviderRequest) (*model.Provider, error)
	ListProviders(ctx context.Context) ([]model.Provider, error)
	UpdateProvider(ctx context.Context, id uint, req dto.UpdateProviderRequest) (*model.Provider, error)
	DeactivateProvider(ctx context.Context, id uint) error

	CreateTechnician(ctx context.Context, req dto.CreateTechnicianRequest) (*model.Technician, error)
	ListTechnicians(ctx context.Context, all bool) ([]model.Technician, error)
	UpdateTechnician(ctx context.Context, id uint, req dto.UpdateTechnicianRequest) (*model.Technician, error)
	ToggleTechnician(ctx context.Context, id uint) error

	CreateTool(ctx context.Context, req dto.CreateToolRequest) (*model.Tool, error)
	ListTools(ctx context.Context, all bool) ([]model.Tool, error)
	GetTool(ctx context.Context, id uint) (*model.Tool, error)
	UpdateTool(ctx context.Context, id uint, req dto.UpdateToolRequest) (*model.Tool, error)
	ToggleTool(ctx context.Context, id uint) error
}

type catalogService struct {
	providers repository.ProviderRepository
	techs     repository.TechnicianRepository
	tools     repository.ToolRepository
}

func NewCatalogService(
	providers repository.ProviderRepository,
	techs repository.TechnicianRepository,
	tools repository.ToolRepository,
) CatalogService {
	return &catalogService{providers: providers, techs: techs, tools: tools}
}

// ── Providers ────────────────────────────────────────────────────────────────

func (s *catalogService) CreateProvider(ctx context.Context, req dto.CreateProviderRequest) (*model.Provider, error) {
	p := &model.Provider{
		Name:        req.Name,
		Specialty:   req.Specialty,
		ContactInfo: req.ContactInfo,
		IsActive:    true,
	}
	if err := s.providers.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *catalogService) ListProviders(ctx context.Context) ([]model.Provider, error) {
	return s.providers.ListActive(ctx)
}

func (s *catalogService) UpdateProvider(ctx context.Context, id uint, req dto.UpdateProviderRequest) (*model.Provider, error) {
	p, err := s.providers.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("Proveedor", id)
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Specialty != nil {
		p.Specialty = req.Specialty
	}
	if req.ContactInfo != nil {
		p.ContactInfo = req.ContactInfo
	}
	if err := s.providers.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *catalogService) DeactivateProvider(ctx context.Context, id uint) error {
	if _, err := s.providers.FindByID(ctx, id); err != nil {
		return notFound("Proveedor", id)
	}
	return s.providers.SoftDelete(ctx, id)
}

// ── Technicians ──────────────────────────────────────────────────────────────

func (s *catalogService) CreateTechnician(ctx context.Context, req dto.CreateTechnicianRequest) (*model.Technician, error) {
	t := &model.Technician{
		Name:        req.Name,
		Specialty:   req.Specialty,
		ContactInfo: req.ContactInfo,
		IsActive:    true,
	}
	if err := s.techs.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *catalogService) ListTechnicians(ctx context.Context, all bool) ([]model.Technician, error) {
	return s.techs.List(ctx, all)
}

func (s *catalogService) UpdateTechnician(ctx context.Context, id uint, req dto.UpdateTechnicianRequest) (*model.Technician, error) {
	t, err := s.techs.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("Tecnico", id)
	}
	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Specialty != nil {
		t.Specialty = req.Specialty
	}
	if req.ContactInfo != nil {
		t.ContactInfo = req.ContactInfo
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
	if err := s.techs.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// ToggleTechnician flips the alta/baja flag instead of deleting, so history
// on past work orders stays intact.
func (s *catalogService) ToggleTechnician(ctx context.Context, id uint) error {
	t, err := s.techs.FindByID(ctx, id)
	if err != nil {
		return notFound("Tecnico", id)
	}
	t.IsActive = !t.IsActive
	return s.techs.Save(ctx, t)
}

// ── Tools ────────────────────────────────────────────────────────────────────

func (s *catalogService) CreateTool(ctx context.Context, req dto.CreateToolRequest) (*model.Tool, error) {
	nextID, err := s.tools.NextID(ctx)
	if err != nil {
		return nil, err
	}
	t := &model.Tool{
		Code:        fmt.Sprintf("HRR-%03d", nextID),
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Status:      model.ToolDisponible,
		Location:    req.Location,
		IsActive:    true,
	}
	if req.Status != nil && *req.Status != "" {
		t.Status = *req.Status
	}
	if err := s.tools.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *catalogService) ListTools(ctx context.Context, all bool) ([]model.Tool, error) {
	return s.tools.List(ctx, all)
}

func (s *catalogService) GetTool(ctx context.Context, id uint) (*model.Tool, error) {
	t, err := s.tools.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("Herramienta", id)
	}
	return t, nil
}

func (s *catalogService) UpdateTool(ctx context.Context, id uint, req dto.UpdateToolRequest) (*model.Tool, error) {
	t, err := s.tools.FindByID(ctx, id)
	if err != nil {
		return nil, notFound("Herramienta", id)
	}
	if req.Name != nil {
		t.Name = *req.Name
	}
	if req.Category != nil {
		t.Category = req.Category
	}
	if req.Description != nil {
		t.Description = req.Description
	}
	if req.Status != nil && *req.Status != "" {
		t.Status = *req.Status
	}
	if req.Location != nil {
		t.Location = req.Location
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
	if err := s.tools.Save(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *catalogService) ToggleTool(ctx context.Context, id uint) error {
	t, err := s.tools.FindByID(ctx, id)
	if err != nil {
		return notFound("Herramienta", id)
	}
	t.IsActive = !t.IsActive
	return s.tools.Save(ctx, t)
}
