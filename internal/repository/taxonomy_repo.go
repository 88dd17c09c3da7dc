package repository

import (
	"context"

	"github.com/bryamlazo166/cmms-app/internal/model"

	"gorm.io/gorm"
)

// TaxonomyRepository is the data access contract for the asset hierarchy
// (Area → Line → Equipment → System → Component → SparePart). Services depend
// on this interface, not on the concrete GORM implementation, enabling clean
// unit testing via stubs.
type TaxonomyRepository interface {
	// Areas
	CreateArea(ctx context.Context, a *model.Area) error
	ListAreas(ctx context.Context) ([]model.Area, error)
	FindAreaByID(ctx context.Context, id uint) (*model.Area, error)
	FindAreaByName(ctx context.Context, name string) (*model.Area, error)
	SaveArea(ctx context.Context, a *model.Area) error
	DeleteArea(ctx context.Context, id uint) error

	// Lines
	CreateLine(ctx context.Context, l *model.Line) error
	ListLines(ctx context.Context) ([]model.Line, error)
	ListLinesByArea(ctx context.Context, areaID uint) ([]model.Line, error)
	FindLineByID(ctx context.Context, id uint) (*model.Line, error)
	FindLineByName(ctx context.Context, name string, areaID uint) (*model.Line, error)
	SaveLine(ctx context.Context, l *model.Line) error
	DeleteLine(ctx context.Context, id uint) error

	// Equipments
	CreateEquipment(ctx context.Context, e *model.Equipment) error
	ListEquipments(ctx context.Context) ([]model.Equipment, error)
	ListEquipmentsByLine(ctx context.Context, lineID uint) ([]model.Equipment, error)
	FindEquipmentByID(ctx context.Context, id uint) (*model.Equipment, error)
	FindEquipmentByName(ctx context.Context, name string, lineID uint) (*model.Equipment, error)
	SaveEquipment(ctx context.Context, e *model.Equipment) error
	DeleteEquipment(ctx context.Context, id uint) error

	// Systems
	CreateSystem(ctx context.Context, s *model.System) error
	ListSystems(ctx context.Context) ([]model.System, error)
	FindSystemByID(ctx context.Context, id uint) (*model.System, error)
	FindSystemByName(ctx context.Context, name string, equipmentID uint) (*model.System, error)
	SaveSystem(ctx context.Context, s *model.System) error
	DeleteSystem(ctx context.Context, id uint) error

	// Components
	CreateComponent(ctx context.Context, c *model.Component) error
	ListComponents(ctx context.Context) ([]model.Component, error)
	FindComponentByID(ctx context.Context, id uint) (*model.Component, error)
	FindComponentByName(ctx context.Context, name string, systemID uint) (*model.Component, error)
	SaveComponent(ctx context.Context, c *model.Component) error
	DeleteComponent(ctx context.Context, id uint) error

	// UpdateComponentCriticalityTx is used inside work-order transactions.
	UpdateComponentCriticalityTx(tx *gorm.DB, id uint, criticality string) error

	// Spare parts
	CreateSparePart(ctx context.Context, sp *model.SparePart) error
	ListSpareParts(ctx context.Context) ([]model.SparePart, error)
	FindSparePartByID(ctx context.Context, id uint) (*model.SparePart, error)
	SaveSparePart(ctx context.Context, sp *model.SparePart) error
	DeleteSparePart(ctx context.Context, id uint) error

	// DB exposes the underlying *gorm.DB so services can open transactions.
	DB() *gorm.DB
}

type taxonomyRepo struct{ db *gorm.DB }

func NewTaxonomyRepository(db *gorm.DB) TaxonomyRepository { return &taxonomyRepo{db: db} }

// ── Areas ────────────────────────────────────────────────────────────────────

func (r *taxonomyRepo) CreateArea(ctx context.Context, a *model.Area) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *taxonomyRepo) ListAreas(ctx context.Context) ([]model.Area, error) {
	var areas []model.Area
	err := r.db.WithContext(ctx).Order("id ASC").Find(&areas).Error
	return areas, err
}

func (r *taxonomyRepo) FindAreaByID(ctx context.Context, id uint) (*model.Area, error) {
	var a model.Area
	err := r.db.WithContext(ctx).First(&a, id).Error
	return &a, err
}

func (r *taxonomyRepo) FindAreaByName(ctx context.Context, name string) (*model.Area, error) {
	var a model.Area
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&a).Error
	return &a, err
}

func (r *taxonomyRepo) SaveArea(ctx context.Context, a *model.Area) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *taxonomyRepo) DeleteArea(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Area{}, id).Error
}

// ── Lines ────────────────────────────────────────────────────────────────────

func (r *taxonomyRepo) CreateLine(ctx context.Context, l *model.Line) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *taxonomyRepo) ListLines(ctx context.Context) ([]model.Line, error) {
	var lines []model.Line
	err := r.db.WithContext(ctx).Order("id ASC").Find(&lines).Error
	return lines, err
}

func (r *taxonomyRepo) ListLinesByArea(ctx context.Context, areaID uint) ([]model.Line, error) {
	var lines []model.Line
	err := r.db.WithContext(ctx).Where("area_id = ?", areaID).Order("id ASC").Find(&lines).Error
	return lines, err
}

func (r *taxonomyRepo) FindLineByID(ctx context.Context, id uint) (*model.Line, error) {
	var l model.Line
	err := r.db.WithContext(ctx).First(&l, id).Error
	return &l, err
}

func (r *taxonomyRepo) FindLineByName(ctx context.Context, name string, areaID uint) (*model.Line, error) {
	var l model.Line
	err := r.db.WithContext(ctx).Where("name = ? AND area_id = ?", name, areaID).First(&l).Error
	return &l, err
}

func (r *taxonomyRepo) SaveLine(ctx context.Context, l *model.Line) error {
	return r.db.WithContext(ctx).Save(l).Error
}

func (r *taxonomyRepo) DeleteLine(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Line{}, id).Error
}

// ── Equipments ───────────────────────────────────────────────────────────────

func (r *taxonomyRepo) CreateEquipment(ctx context.Context, e *model.Equipment) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *taxonomyRepo) ListEquipments(ctx context.Context) ([]model.Equipment, error) {
	var equips []model.Equipment
	err := r.db.WithContext(ctx).Order("id ASC").Find(&equips).Error
	return equips, err
}

func (r *taxonomyRepo) ListEquipmentsByLine(ctx context.Context, lineID uint) ([]model.Equipment, error) {
	var equips []model.Equipment
	err := r.db.WithContext(ctx).Where("line_id = ?", lineID).Order("id ASC").Find(&equips).Error
	return equips, err
}

func (r *taxonomyRepo) FindEquipmentByID(ctx context.Context, id uint) (*model.Equipment, error) {
	var e model.Equipment
	err := r.db.WithContext(ctx).First(&e, id).Error
	return &e, err
}

func (r *taxonomyRepo) FindEquipmentByName(ctx context.Context, name string, lineID uint) (*model.Equipment, error) {
	var e model.Equipment
	err := r.db.WithContext(ctx).Where("name = ? AND line_id = ?", name, lineID).First(&e).Error
	return &e, err
}

func (r *taxonomyRepo) SaveEquipment(ctx context.Context, e *model.Equipment) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *taxonomyRepo) DeleteEquipment(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Equipment{}, id).Error
}

// ── Systems ──────────────────────────────────────────────────────────────────

func (r *taxonomyRepo) CreateSystem(ctx context.Context, s *model.System) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *taxonomyRepo) ListSystems(ctx context.Context) ([]model.System, error) {
	var systems []model.System
	err := r.db.WithContext(ctx).Order("id ASC").Find(&systems).Error
	return systems, err
}

func (r *taxonomyRepo) FindSystemByID(ctx context.Context, id uint) (*model.System, error) {
	var s model.System
	err := r.db.WithContext(ctx).First(&s, id).Error
	return &s, err
}

func (r *taxonomyRepo) FindSystemByName(ctx context.Context, name string, equipmentID uint) (*model.System, error) {
	var s model.System
	err := r.db.WithContext(ctx).Where("name = ? AND equipment_id = ?", name, equipmentID).First(&s).Error
	return &s, err
}

func (r *taxonomyRepo) SaveSystem(ctx context.Context, s *model.System) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *taxonomyRepo) DeleteSystem(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.System{}, id).Error
}

// ── Components ───────────────────────────────────────────────────────────────

func (r *taxonomyRepo) CreateComponent(ctx context.Context, c *model.Component) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *taxonomyRepo) ListComponents(ctx context.Context) ([]model.Component, error) {
	var comps []model.Component
	err := r.db.WithContext(ctx).Order("id ASC").Find(&comps).Error
	return comps, err
}

func (r *taxonomyRepo) FindComponentByID(ctx context.Context, id uint) (*model.Component, error) {
	var c model.Component
	err := r.db.WithContext(ctx).First(&c, id).Error
	return &c, err
}

func (r *taxonomyRepo) FindComponentByName(ctx context.Context, name string, systemID uint) (*model.Component, error) {
	var c model.Component
	err := r.db.WithContext(ctx).Where("name = ? AND system_id = ?", name, systemID).First(&c).Error
	return &c, err
}

func (r *taxonomyRepo) SaveComponent(ctx context.Context, c *model.Component) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *taxonomyRepo) DeleteComponent(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Component{}, id).Error
}

func (r *taxonomyRepo) UpdateComponentCriticalityTx(tx *gorm.DB, id uint, criticality string) error {
	return tx.Model(&model.Component{}).Where("id = ?", id).
		Update("criticality", criticality).Error
}

// ── Spare parts ──────────────────────────────────────────────────────────────

func (r *taxonomyRepo) CreateSparePart(ctx context.Context, sp *model.SparePart) error {
	return r.db.WithContext(ctx).Create(sp).Error
}

func (r *taxonomyRepo) ListSpareParts(ctx context.Context) ([]model.SparePart, error) {
	var parts []model.SparePart
	err := r.db.WithContext(ctx).Order("id ASC").Find(&parts).Error
	return parts, err
}

func (r *taxonomyRepo) FindSparePartByID(ctx context.Context, id uint) (*model.SparePart, error) {
	var sp model.SparePart
	err := r.db.WithContext(ctx).First(&sp, id).Error
	return &sp, err
}

func (r *taxonomyRepo) SaveSparePart(ctx context.Context, sp *model.SparePart) error {
	return r.db.WithContext(ctx).Save(sp).Error
}

func (r *taxonomyRepo) DeleteSparePart(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.SparePart{}, id).Error
}

func (r *taxonomyRepo) DB() *gorm.DB { return r.db }
