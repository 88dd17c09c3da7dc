package service

// In-memory repository stubs shared by the service tests. All of them return
// a nil *gorm.DB so runTx executes the callbacks directly.

import (
	"context"
	"sort"

	"github.com/bryamlazo166/cmms-app/internal/model"
	"github.com/bryamlazo166/cmms-app/internal/repository"

	"gorm.io/gorm"
)

// The stubs honor the gorm lookup contract so services can distinguish
// "no row" from a real store failure.
var errNotFound = gorm.ErrRecordNotFound

// ── NoticeRepository ─────────────────────────────────────────────────────────

type stubNoticeRepo struct {
	notices map[uint]*model.MaintenanceNotice

	// findActiveErr, when set, is returned by FindActiveByEquipment to
	// simulate a failing store.
	findActiveErr error
}

var _ repository.NoticeRepository = (*stubNoticeRepo)(nil)

func newStubNoticeRepo() *stubNoticeRepo {
	return &stubNoticeRepo{notices: make(map[uint]*model.MaintenanceNotice)}
}

func (r *stubNoticeRepo) Create(_ context.Context, n *model.MaintenanceNotice) error {
	if n.ID == 0 {
		n.ID = uint(len(r.notices) + 1)
	}
	r.notices[n.ID] = n
	return nil
}

func (r *stubNoticeRepo) FindByID(_ context.Context, id uint) (*model.MaintenanceNotice, error) {
	n, ok := r.notices[id]
	if !ok {
		return nil, errNotFound
	}
	return n, nil
}

func (r *stubNoticeRepo) List(_ context.Context) ([]model.MaintenanceNotice, error) {
	ids := make([]uint, 0, len(r.notices))
	for id := range r.notices {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	out := make([]model.MaintenanceNotice, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.notices[id])
	}
	return out, nil
}

func (r *stubNoticeRepo) Save(_ context.Context, n *model.MaintenanceNotice) error {
	r.notices[n.ID] = n
	return nil
}

func (r *stubNoticeRepo) Delete(_ context.Context, id uint) error {
	delete(r.notices, id)
	return nil
}

func (r *stubNoticeRepo) NextID(_ context.Context) (uint, error) {
	return uint(len(r.notices) + 1), nil
}

func (r *stubNoticeRepo) FindActiveByEquipment(_ context.Context, equipmentID uint, statuses []string) (*model.MaintenanceNotice, error) {
	if r.findActiveErr != nil {
		return nil, r.findActiveErr
	}
	active := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		active[s] = true
	}
	var oldest *model.MaintenanceNotice
	for _, n := range r.notices {
		if n.EquipmentID == nil || *n.EquipmentID != equipmentID || !active[n.Status] {
			continue
		}
		if oldest == nil || n.ID < oldest.ID {
			oldest = n
		}
	}
	if oldest == nil {
		return nil, errNotFound
	}
	return oldest, nil
}

func (r *stubNoticeRepo) CountPending(_ context.Context) (int64, error) {
	var count int64
	for _, n := range r.notices {
		if n.Status == model.NoticePendiente {
			count++
		}
	}
	return count, nil
}

func (r *stubNoticeRepo) UpdateStatusTx(_ *gorm.DB, id uint, status, otNumber string) error {
	n, ok := r.notices[id]
	if !ok {
		return errNotFound
	}
	n.Status = status
	n.OTNumber = &otNumber
	return nil
}

func (r *stubNoticeRepo) DB() *gorm.DB { return nil }

// ── WorkOrderRepository ──────────────────────────────────────────────────────

type stubWorkOrderRepo struct {
	orders    map[uint]*model.WorkOrder
	personnel map[uint]*model.OTPersonnel
	materials map[uint]*model.OTMaterial

	closedRows []repository.ClosedOTRow
	costRows   []repository.MaterialCostRow
}

var _ repository.WorkOrderRepository = (*stubWorkOrderRepo)(nil)

func newStubWorkOrderRepo() *stubWorkOrderRepo {
	return &stubWorkOrderRepo{
		orders:    make(map[uint]*model.WorkOrder),
		personnel: make(map[uint]*model.OTPersonnel),
		materials: make(map[uint]*model.OTMaterial),
	}
}

func (r *stubWorkOrderRepo) CreateTx(_ *gorm.DB, wo *model.WorkOrder) error {
	if wo.ID == 0 {
		wo.ID = uint(len(r.orders) + 1)
	}
	r.orders[wo.ID] = wo
	return nil
}

func (r *stubWorkOrderRepo) FindByID(_ context.Context, id uint) (*model.WorkOrder, error) {
	wo, ok := r.orders[id]
	if !ok {
		return nil, errNotFound
	}
	return wo, nil
}

func (r *stubWorkOrderRepo) List(_ context.Context) ([]model.WorkOrder, error) {
	ids := make([]uint, 0, len(r.orders))
	for id := range r.orders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	out := make([]model.WorkOrder, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.orders[id])
	}
	return out, nil
}

func (r *stubWorkOrderRepo) Save(_ context.Context, wo *model.WorkOrder) error {
	r.orders[wo.ID] = wo
	return nil
}

func (r *stubWorkOrderRepo) SaveTx(_ *gorm.DB, wo *model.WorkOrder) error {
	r.orders[wo.ID] = wo
	return nil
}

func (r *stubWorkOrderRepo) Delete(_ context.Context, id uint) error {
	delete(r.orders, id)
	return nil
}

func (r *stubWorkOrderRepo) NextID(_ context.Context) (uint, error) {
	return uint(len(r.orders) + 1), nil
}

func (r *stubWorkOrderRepo) FindActiveByEquipment(_ context.Context, equipmentID uint, statuses []string) (*model.WorkOrder, error) {
	active := make(map[string]bool, len(statuses))
	for _, s := range statuses {
		active[s] = true
	}
	for _, wo := range r.orders {
		if wo.EquipmentID != nil && *wo.EquipmentID == equipmentID && active[wo.Status] {
			return wo, nil
		}
	}
	return nil, errNotFound
}

func (r *stubWorkOrderRepo) CountClosedCorrectiveByEquipment(_ context.Context, equipmentID uint) (int64, error) {
	var count int64
	for _, wo := range r.orders {
		if wo.EquipmentID != nil && *wo.EquipmentID == equipmentID &&
			wo.Status == model.OTCerrada &&
			wo.MaintenanceType != nil && *wo.MaintenanceType == model.MaintenanceCorrectivo {
			count++
		}
	}
	return count, nil
}

func (r *stubWorkOrderRepo) ListClosedResolved(_ context.Context) ([]repository.ClosedOTRow, error) {
	return r.closedRows, nil
}

func (r *stubWorkOrderRepo) MaterialCostByWorkOrder(_ context.Context, _ []uint) ([]repository.MaterialCostRow, error) {
	return r.costRows, nil
}

func (r *stubWorkOrderRepo) ListPersonnel(_ context.Context, workOrderID uint) ([]model.OTPersonnel, error) {
	var out []model.OTPersonnel
	for _, p := range r.personnel {
		if p.WorkOrderID == workOrderID {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubWorkOrderRepo) CreatePersonnel(_ context.Context, p *model.OTPersonnel) error {
	if p.ID == 0 {
		p.ID = uint(len(r.personnel) + 1)
	}
	r.personnel[p.ID] = p
	return nil
}

func (r *stubWorkOrderRepo) FindPersonnelByID(_ context.Context, id uint) (*model.OTPersonnel, error) {
	p, ok := r.personnel[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubWorkOrderRepo) SavePersonnel(_ context.Context, p *model.OTPersonnel) error {
	r.personnel[p.ID] = p
	return nil
}

func (r *stubWorkOrderRepo) DeletePersonnel(_ context.Context, id uint) error {
	delete(r.personnel, id)
	return nil
}

func (r *stubWorkOrderRepo) DeletePersonnelByWorkOrder(_ context.Context, workOrderID uint) error {
	for id, p := range r.personnel {
		if p.WorkOrderID == workOrderID {
			delete(r.personnel, id)
		}
	}
	return nil
}

func (r *stubWorkOrderRepo) ListMaterials(_ context.Context, workOrderID uint) ([]model.OTMaterial, error) {
	ids := make([]uint, 0, len(r.materials))
	for id, m := range r.materials {
		if m.WorkOrderID == workOrderID {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(a, b int) bool { return ids[a] < ids[b] })
	out := make([]model.OTMaterial, 0, len(ids))
	for _, id := range ids {
		out = append(out, *r.materials[id])
	}
	return out, nil
}

func (r *stubWorkOrderRepo) FindMaterialByID(_ context.Context, id uint) (*model.OTMaterial, error) {
	m, ok := r.materials[id]
	if !ok {
		return nil, errNotFound
	}
	return m, nil
}

func (r *stubWorkOrderRepo) CreateMaterialTx(_ *gorm.DB, m *model.OTMaterial) error {
	if m.ID == 0 {
		m.ID = uint(len(r.materials) + 1)
	}
	r.materials[m.ID] = m
	return nil
}

func (r *stubWorkOrderRepo) DeleteMaterialTx(_ *gorm.DB, id uint) error {
	delete(r.materials, id)
	return nil
}

func (r *stubWorkOrderRepo) findLastClosed(match func(*model.WorkOrder) bool, maintenanceType string) (*model.WorkOrder, error) {
	var last *model.WorkOrder
	for _, wo := range r.orders {
		if wo.Status != model.OTCerrada || !match(wo) {
			continue
		}
		if maintenanceType != "" {
			if wo.MaintenanceType == nil || *wo.MaintenanceType != maintenanceType {
				continue
			}
		}
		if last == nil || wo.ID > last.ID {
			last = wo
		}
	}
	if last == nil {
		return nil, errNotFound
	}
	return last, nil
}

func (r *stubWorkOrderRepo) FindLastClosedByComponent(_ context.Context, componentID uint, maintenanceType string) (*model.WorkOrder, error) {
	return r.findLastClosed(func(wo *model.WorkOrder) bool {
		return wo.ComponentID != nil && *wo.ComponentID == componentID
	}, maintenanceType)
}

func (r *stubWorkOrderRepo) FindLastClosedBySystem(_ context.Context, systemID uint, maintenanceType string) (*model.WorkOrder, error) {
	return r.findLastClosed(func(wo *model.WorkOrder) bool {
		return wo.SystemID != nil && *wo.SystemID == systemID
	}, maintenanceType)
}

func (r *stubWorkOrderRepo) FindLastClosedByEquipment(_ context.Context, equipmentID uint, maintenanceType string) (*model.WorkOrder, error) {
	return r.findLastClosed(func(wo *model.WorkOrder) bool {
		return wo.EquipmentID != nil && *wo.EquipmentID == equipmentID
	}, maintenanceType)
}

func (r *stubWorkOrderRepo) ListClosedWithCommentsByEquipment(_ context.Context, equipmentID uint, limit int) ([]model.WorkOrder, error) {
	var out []model.WorkOrder
	for _, wo := range r.orders {
		if wo.EquipmentID != nil && *wo.EquipmentID == equipmentID &&
			wo.Status == model.OTCerrada &&
			wo.ExecutionComments != nil && *wo.ExecutionComments != "" {
			out = append(out, *wo)
		}
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *stubWorkOrderRepo) CountByStatus(_ context.Context) (map[string]int64, error) {
	out := make(map[string]int64)
	for _, wo := range r.orders {
		out[wo.Status]++
	}
	return out, nil
}

func (r *stubWorkOrderRepo) CountByType(_ context.Context) (map[string]int64, error) {
	out := make(map[string]int64)
	for _, wo := range r.orders {
		key := ""
		if wo.MaintenanceType != nil {
			key = *wo.MaintenanceType
		}
		out[key]++
	}
	return out, nil
}

func (r *stubWorkOrderRepo) TopFailureModes(_ context.Context, _ int) ([]repository.FailureModeRow, error) {
	return nil, nil
}

func (r *stubWorkOrderRepo) ListRecent(_ context.Context, limit int) ([]model.WorkOrder, error) {
	all, _ := r.List(context.Background())
	if len(all) > limit {
		all = all[len(all)-limit:]
	}
	return all, nil
}

func (r *stubWorkOrderRepo) DB() *gorm.DB { return nil }

// ── TaxonomyRepository ───────────────────────────────────────────────────────

type stubTaxonomyRepo struct {
	areas      map[uint]*model.Area
	lines      map[uint]*model.Line
	equipments map[uint]*model.Equipment
	systems    map[uint]*model.System
	components map[uint]*model.Component
	spares     map[uint]*model.SparePart
}

var _ repository.TaxonomyRepository = (*stubTaxonomyRepo)(nil)

func newStubTaxonomyRepo() *stubTaxonomyRepo {
	return &stubTaxonomyRepo{
		areas:      make(map[uint]*model.Area),
		lines:      make(map[uint]*model.Line),
		equipments: make(map[uint]*model.Equipment),
		systems:    make(map[uint]*model.System),
		components: make(map[uint]*model.Component),
		spares:     make(map[uint]*model.SparePart),
	}
}

func (r *stubTaxonomyRepo) CreateArea(_ context.Context, a *model.Area) error {
	if a.ID == 0 {
		a.ID = uint(len(r.areas) + 1)
	}
	r.areas[a.ID] = a
	return nil
}

func (r *stubTaxonomyRepo) ListAreas(_ context.Context) ([]model.Area, error) {
	out := make([]model.Area, 0, len(r.areas))
	for _, a := range r.areas {
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubTaxonomyRepo) FindAreaByID(_ context.Context, id uint) (*model.Area, error) {
	a, ok := r.areas[id]
	if !ok {
		return nil, errNotFound
	}
	return a, nil
}

func (r *stubTaxonomyRepo) FindAreaByName(_ context.Context, name string) (*model.Area, error) {
	for _, a := range r.areas {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, errNotFound
}

func (r *stubTaxonomyRepo) SaveArea(_ context.Context, a *model.Area) error {
	r.areas[a.ID] = a
	return nil
}

func (r *stubTaxonomyRepo) DeleteArea(_ context.Context, id uint) error {
	delete(r.areas, id)
	return nil
}

func (r *stubTaxonomyRepo) CreateLine(_ context.Context, l *model.Line) error {
	if l.ID == 0 {
		l.ID = uint(len(r.lines) + 1)
	}
	r.lines[l.ID] = l
	return nil
}

func (r *stubTaxonomyRepo) ListLines(_ context.Context) ([]model.Line, error) {
	out := make([]model.Line, 0, len(r.lines))
	for _, l := range r.lines {
		out = append(out, *l)
	}
	return out, nil
}

func (r *stubTaxonomyRepo) ListLinesByArea(_ context.Context, areaID uint) ([]model.Line, error) {
	var out []model.Line
	for _, l := range r.lines {
		if l.AreaID == areaID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r *stubTaxonomyRepo) FindLineByID(_ context.Context, id uint) (*model.Line, error) {
	l, ok := r.lines[id]
	if !ok {
		return nil, errNotFound
	}
	return l, nil
}

func (r *stubTaxonomyRepo) FindLineByName(_ context.Context, name string, areaID uint) (*model.Line, error) {
	for _, l := range r.lines {
		if l.Name == name && l.AreaID == areaID {
			return l, nil
		}
	}
	return nil, errNotFound
}

func (r *stubTaxonomyRepo) SaveLine(_ context.Context, l *model.Line) error {
	r.lines[l.ID] = l
	return nil
}

func (r *stubTaxonomyRepo) DeleteLine(_ context.Context, id uint) error {
	delete(r.lines, id)
	return nil
}

func (r *stubTaxonomyRepo) CreateEquipment(_ context.Context, e *model.Equipment) error {
	if e.ID == 0 {
		e.ID = uint(len(r.equipments) + 1)
	}
	r.equipments[e.ID] = e
	return nil
}

func (r *stubTaxonomyRepo) ListEquipments(_ context.Context) ([]model.Equipment, error) {
	out := make([]model.Equipment, 0, len(r.equipments))
	for _, e := range r.equipments {
		out = append(out, *e)
	}
	return out, nil
}

func (r *stubTaxonomyRepo) ListEquipmentsByLine(_ context.Context, lineID uint) ([]model.Equipment, error) {
	var out []model.Equipment
	for _, e := range r.equipments {
		if e.LineID == lineID {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (r *stubTaxonomyRepo) FindEquipmentByID(_ context.Context, id uint) (*model.Equipment, error) {
	e, ok := r.equipments[id]
	if !ok {
		return nil, errNotFound
	}
	return e, nil
}

func (r *stubTaxonomyRepo) FindEquipmentByName(_ context.Context, name string, lineID uint) (*model.Equipment, error) {
	for _, e := range r.equipments {
		if e.Name == name && e.LineID == lineID {
			return e, nil
		}
	}
	return nil, errNotFound
}

func (r *stubTaxonomyRepo) SaveEquipment(_ context.Context, e *model.Equipment) error {
	r.equipments[e.ID] = e
	return nil
}

func (r *stubTaxonomyRepo) DeleteEquipment(_ context.Context, id uint) error {
	delete(r.equipments, id)
	return nil
}

func (r *stubTaxonomyRepo) CreateSystem(_ context.Context, s *model.System) error {
	if s.ID == 0 {
		s.ID = uint(len(r.systems) + 1)
	}
	r.systems[s.ID] = s
	return nil
}

func (r *stubTaxonomyRepo) ListSystems(_ context.Context) ([]model.System, error) {
	out := make([]model.System, 0, len(r.systems))
	for _, s := range r.systems {
		out = append(out, *s)
	}
	return out, nil
}

func (r *stubTaxonomyRepo) FindSystemByID(_ context.Context, id uint) (*model.System, error) {
	s, ok := r.systems[id]
	if !ok {
		return nil, errNotFound
	}
	return s, nil
}

func (r *stubTaxonomyRepo) FindSystemByName(_ context.Context, name string, equipmentID uint) (*model.System, error) {
	for _, s := range r.systems {
		if s.Name == name && s.EquipmentID == equipmentID {
			return s, nil
		}
	}
	return nil, errNotFound
}

func (r *stubTaxonomyRepo) SaveSystem(_ context.Context, s *model.System) error {
	r.systems[s.ID] = s
	return nil
}

func (r *stubTaxonomyRepo) DeleteSystem(_ context.Context, id uint) error {
	delete(r.systems, id)
	return nil
}

func (r *stubTaxonomyRepo) CreateComponent(_ context.Context, c *model.Component) error {
	if c.ID == 0 {
		c.ID = uint(len(r.components) + 1)
	}
	r.components[c.ID] = c
	return nil
}

func (r *stubTaxonomyRepo) ListComponents(_ context.Context) ([]model.Component, error) {
	out := make([]model.Component, 0, len(r.components))
	for _, c := range r.components {
		out = append(out, *c)
	}
	return out, nil
}

func (r *stubTaxonomyRepo) FindComponentByID(_ context.Context, id uint) (*model.Component, error) {
	c, ok := r.components[id]
	if !ok {
		return nil, errNotFound
	}
	return c, nil
}

func (r *stubTaxonomyRepo) FindComponentByName(_ context.Context, name string, systemID uint) (*model.Component, error) {
	for _, c := range r.components {
		if c.Name == name && c.SystemID == systemID {
			return c, nil
		}
	}
	return nil, errNotFound
}

func (r *stubTaxonomyRepo) SaveComponent(_ context.Context, c *model.Component) error {
	r.components[c.ID] = c
	return nil
}

func (r *stubTaxonomyRepo) DeleteComponent(_ context.Context, id uint) error {
	delete(r.components, id)
	return nil
}

func (r *stubTaxonomyRepo) UpdateComponentCriticalityTx(_ *gorm.DB, id uint, criticality string) error {
	c, ok := r.components[id]
	if !ok {
		return errNotFound
	}
	c.Criticality = &criticality
	return nil
}

func (r *stubTaxonomyRepo) CreateSparePart(_ context.Context, sp *model.SparePart) error {
	if sp.ID == 0 {
		sp.ID = uint(len(r.spares) + 1)
	}
	r.spares[sp.ID] = sp
	return nil
}

func (r *stubTaxonomyRepo) ListSpareParts(_ context.Context) ([]model.SparePart, error) {
	out := make([]model.SparePart, 0, len(r.spares))
	for _, sp := range r.spares {
		out = append(out, *sp)
	}
	return out, nil
}

func (r *stubTaxonomyRepo) FindSparePartByID(_ context.Context, id uint) (*model.SparePart, error) {
	sp, ok := r.spares[id]
	if !ok {
		return nil, errNotFound
	}
	return sp, nil
}

func (r *stubTaxonomyRepo) SaveSparePart(_ context.Context, sp *model.SparePart) error {
	r.spares[sp.ID] = sp
	return nil
}

func (r *stubTaxonomyRepo) DeleteSparePart(_ context.Context, id uint) error {
	delete(r.spares, id)
	return nil
}

func (r *stubTaxonomyRepo) DB() *gorm.DB { return nil }

// ── ToolRepository ───────────────────────────────────────────────────────────

type stubToolRepo struct {
	tools map[uint]*model.Tool
}

var _ repository.ToolRepository = (*stubToolRepo)(nil)

func newStubToolRepo() *stubToolRepo {
	return &stubToolRepo{tools: make(map[uint]*model.Tool)}
}

func (r *stubToolRepo) Create(_ context.Context, t *model.Tool) error {
	if t.ID == 0 {
		t.ID = uint(len(r.tools) + 1)
	}
	r.tools[t.ID] = t
	return nil
}

func (r *stubToolRepo) FindByID(_ context.Context, id uint) (*model.Tool, error) {
	t, ok := r.tools[id]
	if !ok {
		return nil, errNotFound
	}
	return t, nil
}

func (r *stubToolRepo) List(_ context.Context, all bool) ([]model.Tool, error) {
	var out []model.Tool
	for _, t := range r.tools {
		if !all && !t.IsActive {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubToolRepo) Save(_ context.Context, t *model.Tool) error {
	r.tools[t.ID] = t
	return nil
}

func (r *stubToolRepo) NextID(_ context.Context) (uint, error) {
	return uint(len(r.tools) + 1), nil
}

// ── TechnicianRepository ─────────────────────────────────────────────────────

type stubTechnicianRepo struct {
	techs map[uint]*model.Technician
}

var _ repository.TechnicianRepository = (*stubTechnicianRepo)(nil)

func newStubTechnicianRepo() *stubTechnicianRepo {
	return &stubTechnicianRepo{techs: make(map[uint]*model.Technician)}
}

func (r *stubTechnicianRepo) Create(_ context.Context, t *model.Technician) error {
	if t.ID == 0 {
		t.ID = uint(len(r.techs) + 1)
	}
	r.techs[t.ID] = t
	return nil
}

func (r *stubTechnicianRepo) FindByID(_ context.Context, id uint) (*model.Technician, error) {
	t, ok := r.techs[id]
	if !ok {
		return nil, errNotFound
	}
	return t, nil
}

func (r *stubTechnicianRepo) List(_ context.Context, all bool) ([]model.Technician, error) {
	var out []model.Technician
	for _, t := range r.techs {
		if !all && !t.IsActive {
			continue
		}
		out = append(out, *t)
	}
	return out, nil
}

func (r *stubTechnicianRepo) CountActive(_ context.Context) (int64, error) {
	var count int64
	for _, t := range r.techs {
		if t.IsActive {
			count++
		}
	}
	return count, nil
}

func (r *stubTechnicianRepo) Save(_ context.Context, t *model.Technician) error {
	r.techs[t.ID] = t
	return nil
}

// ── ProviderRepository ───────────────────────────────────────────────────────

type stubProviderRepo struct {
	providers map[uint]*model.Provider
}

var _ repository.ProviderRepository = (*stubProviderRepo)(nil)

func newStubProviderRepo() *stubProviderRepo {
	return &stubProviderRepo{providers: make(map[uint]*model.Provider)}
}

func (r *stubProviderRepo) Create(_ context.Context, p *model.Provider) error {
	if p.ID == 0 {
		p.ID = uint(len(r.providers) + 1)
	}
	r.providers[p.ID] = p
	return nil
}

func (r *stubProviderRepo) FindByID(_ context.Context, id uint) (*model.Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, errNotFound
	}
	return p, nil
}

func (r *stubProviderRepo) List(_ context.Context) ([]model.Provider, error) {
	out := make([]model.Provider, 0, len(r.providers))
	for _, p := range r.providers {
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubProviderRepo) ListActive(_ context.Context) ([]model.Provider, error) {
	var out []model.Provider
	for _, p := range r.providers {
		if p.IsActive {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProviderRepo) Save(_ context.Context, p *model.Provider) error {
	r.providers[p.ID] = p
	return nil
}

func (r *stubProviderRepo) SoftDelete(_ context.Context, id uint) error {
	p, ok := r.providers[id]
	if !ok {
		return errNotFound
	}
	p.IsActive = false
	return nil
}

// ── PurchasingRepository ─────────────────────────────────────────────────────

type stubPurchasingRepo struct {
	requests map[uint]*model.PurchaseRequest
	orders   map[uint]*model.PurchaseOrder
}

var _ repository.PurchasingRepository = (*stubPurchasingRepo)(nil)

func newStubPurchasingRepo() *stubPurchasingRepo {
	return &stubPurchasingRepo{
		requests: make(map[uint]*model.PurchaseRequest),
		orders:   make(map[uint]*model.PurchaseOrder),
	}
}

func (r *stubPurchasingRepo) CreateRequest(_ context.Context, pr *model.PurchaseRequest) error {
	if pr.ID == 0 {
		pr.ID = uint(len(r.requests) + 1)
	}
	r.requests[pr.ID] = pr
	return nil
}

func (r *stubPurchasingRepo) ListRequests(_ context.Context, all bool) ([]model.PurchaseRequest, error) {
	var out []model.PurchaseRequest
	for _, pr := range r.requests {
		if !all && pr.Status != model.ReqPendiente {
			continue
		}
		out = append(out, *pr)
	}
	return out, nil
}

func (r *stubPurchasingRepo) FindRequestsByIDs(_ context.Context, ids []uint) ([]model.PurchaseRequest, error) {
	var out []model.PurchaseRequest
	for _, id := range ids {
		if pr, ok := r.requests[id]; ok {
			out = append(out, *pr)
		}
	}
	return out, nil
}

func (r *stubPurchasingRepo) NextRequestID(_ context.Context) (uint, error) {
	return uint(len(r.requests) + 1), nil
}

func (r *stubPurchasingRepo) CreateOrderTx(_ *gorm.DB, po *model.PurchaseOrder) error {
	if po.ID == 0 {
		po.ID = uint(len(r.orders) + 1)
	}
	r.orders[po.ID] = po
	return nil
}

func (r *stubPurchasingRepo) ListOrders(_ context.Context) ([]model.PurchaseOrder, error) {
	out := make([]model.PurchaseOrder, 0, len(r.orders))
	for _, po := range r.orders {
		out = append(out, *po)
	}
	return out, nil
}

func (r *stubPurchasingRepo) FindOrderByID(_ context.Context, id uint) (*model.PurchaseOrder, error) {
	po, ok := r.orders[id]
	if !ok {
		return nil, errNotFound
	}
	return po, nil
}

func (r *stubPurchasingRepo) NextOrderID(_ context.Context) (uint, error) {
	return uint(len(r.orders) + 1), nil
}

func (r *stubPurchasingRepo) AttachRequestsTx(_ *gorm.DB, requestIDs []uint, orderID uint, status string) error {
	for _, id := range requestIDs {
		pr, ok := r.requests[id]
		if !ok {
			return errNotFound
		}
		oid := orderID
		pr.PurchaseOrderID = &oid
		pr.Status = status
	}
	return nil
}

func (r *stubPurchasingRepo) UpdateRequestsStatusByOrderTx(_ *gorm.DB, orderID uint, status string) error {
	for _, pr := range r.requests {
		if pr.PurchaseOrderID != nil && *pr.PurchaseOrderID == orderID {
			pr.Status = status
		}
	}
	return nil
}

func (r *stubPurchasingRepo) UpdateOrderStatusTx(_ *gorm.DB, id uint, status string) error {
	po, ok := r.orders[id]
	if !ok {
		return errNotFound
	}
	po.Status = status
	return nil
}

func (r *stubPurchasingRepo) DB() *gorm.DB { return nil }

// uintPtr and strPtr keep the table-driven tests readable.
func uintPtr(v uint) *uint      { return &v }
func strPtr(s string) *string   { return &s }
func f64Ptr(v float64) *float64 { return &v }
