package repository

import (
	"context"

	"github.com/bryamlazo166/cmms-app/internal/model"

	"gorm.io/gorm"
)

// ClosedOTRow is a closed work order with its equipment resolved through the
// hierarchy in a single join (direct, via system, or via component → system).
type ClosedOTRow struct {
	ID                  uint     `gorm:"column:id"`
	MaintenanceType     *string  `gorm:"column:maintenance_type"`
	RealDuration        *float64 `gorm:"column:real_duration"`
	RealEndDate         *string  `gorm:"column:real_end_date"`
	ResolvedEquipmentID *uint    `gorm:"column:resolved_equipment_id"`
}

// MaterialCostRow aggregates warehouse material cost per work order.
type MaterialCostRow struct {
	WorkOrderID uint    `gorm:"column:work_order_id"`
	Cost        float64 `gorm:"column:cost"`
}

type WorkOrderRepository interface {
	CreateTx(tx *gorm.DB, wo *model.WorkOrder) error
	FindByID(ctx context.Context, id uint) (*model.WorkOrder, error)
	List(ctx context.Context) ([]model.WorkOrder, error)
	Save(ctx context.Context, wo *model.WorkOrder) error
	SaveTx(tx *gorm.DB, wo *model.WorkOrder) error
	Delete(ctx context.Context, id uint) error
	NextID(ctx context.Context) (uint, error)

	FindActiveByEquipment(ctx context.Context, equipmentID uint, statuses []string) (*model.WorkOrder, error)
	CountClosedCorrectiveByEquipment(ctx context.Context, equipmentID uint) (int64, error)

	// KPI queries
	ListClosedResolved(ctx context.Context) ([]ClosedOTRow, error)
	MaterialCostByWorkOrder(ctx context.Context, workOrderIDs []uint) ([]MaterialCostRow, error)

	// Personnel sub-resource
	ListPersonnel(ctx context.Context, workOrderID uint) ([]model.OTPersonnel, error)
	CreatePersonnel(ctx context.Context, p *model.OTPersonnel) error
	FindPersonnelByID(ctx context.Context, id uint) (*model.OTPersonnel, error)
	SavePersonnel(ctx context.Context, p *model.OTPersonnel) error
	DeletePersonnel(ctx context.Context, id uint) error
	DeletePersonnelByWorkOrder(ctx context.Context, workOrderID uint) error

	// Materials sub-resource
	ListMaterials(ctx context.Context, workOrderID uint) ([]model.OTMaterial, error)
	FindMaterialByID(ctx context.Context, id uint) (*model.OTMaterial, error)
	CreateMaterialTx(tx *gorm.DB, m *model.OTMaterial) error
	DeleteMaterialTx(tx *gorm.DB, id uint) error

	// Suggestions / feedback
	FindLastClosedByComponent(ctx context.Context, componentID uint, maintenanceType string) (*model.WorkOrder, error)
	FindLastClosedBySystem(ctx context.Context, systemID uint, maintenanceType string) (*model.WorkOrder, error)
	FindLastClosedByEquipment(ctx context.Context, equipmentID uint, maintenanceType string) (*model.WorkOrder, error)
	ListClosedWithCommentsByEquipment(ctx context.Context, equipmentID uint, limit int) ([]model.WorkOrder, error)

	// Dashboard
	CountByStatus(ctx context.Context) (map[string]int64, error)
	CountByType(ctx context.Context) (map[string]int64, error)
	TopFailureModes(ctx context.Context, limit int) ([]FailureModeRow, error)
	ListRecent(ctx context.Context, limit int) ([]model.WorkOrder, error)

	DB() *gorm.DB
}

type FailureModeRow struct {
	Mode  string `gorm:"column:failure_mode"`
	Count int64  `gorm:"column:count"`
}

type workOrderRepo struct{ db *gorm.DB }

func NewWorkOrderRepository(db *gorm.DB) WorkOrderRepository { return &workOrderRepo{db: db} }

func (r *workOrderRepo) CreateTx(tx *gorm.DB, wo *model.WorkOrder) error {
	return tx.Create(wo).Error
}

func (r *workOrderRepo) FindByID(ctx context.Context, id uint) (*model.WorkOrder, error) {
	var wo model.WorkOrder
	err := r.db.WithContext(ctx).Preload("Notice").First(&wo, id).Error
	return &wo, err
}

func (r *workOrderRepo) List(ctx context.Context) ([]model.WorkOrder, error) {
	var orders []model.WorkOrder
	err := r.db.WithContext(ctx).Preload("Notice").Order("id ASC").Find(&orders).Error
	return orders, err
}

func (r *workOrderRepo) Save(ctx context.Context, wo *model.WorkOrder) error {
	return r.db.WithContext(ctx).Save(wo).Error
}

func (r *workOrderRepo) SaveTx(tx *gorm.DB, wo *model.WorkOrder) error {
	return tx.Save(wo).Error
}

func (r *workOrderRepo) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.WorkOrder{}, id).Error
}

func (r *workOrderRepo) NextID(ctx context.Context) (uint, error) {
	var next uint
	err := r.db.WithContext(ctx).Model(&model.WorkOrder{}).
		Select("COALESCE(MAX(id), 0) + 1").Scan(&next).Error
	return next, err
}

func (r *workOrderRepo) FindActiveByEquipment(ctx context.Context, equipmentID uint, statuses []string) (*model.WorkOrder, error) {
	var wo model.WorkOrder
	err := r.db.WithContext(ctx).
		Where("equipment_id = ? AND status IN ?", equipmentID, statuses).
		Order("id ASC").First(&wo).Error
	return &wo, err
}

func (r *workOrderRepo) CountClosedCorrectiveByEquipment(ctx context.Context, equipmentID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.WorkOrder{}).
		Where("equipment_id = ? AND maintenance_type = ? AND status = ?",
			equipmentID, model.MaintenanceCorrectivo, model.OTCerrada).
		Count(&count).Error
	return count, err
}

// ListClosedResolved pulls every closed work order with the equipment resolved
// through the hierarchy in one query instead of per-row lookups.
func (r *workOrderRepo) ListClosedResolved(ctx context.Context) ([]ClosedOTRow, error) {
	var rows []ClosedOTRow
	err := r.db.WithContext(ctx).
		Table("work_orders AS wo").
		Select(`wo.id, wo.maintenance_type, wo.real_duration, wo.real_end_date,
			COALESCE(wo.equipment_id, s1.equipment_id, s2.equipment_id) AS resolved_equipment_id`).
		Joins("LEFT JOIN systems s1 ON s1.id = wo.system_id").
		Joins("LEFT JOIN components c ON c.id = wo.component_id").
		Joins("LEFT JOIN systems s2 ON s2.id = c.system_id").
		Where("wo.status = ?", model.OTCerrada).
		Scan(&rows).Error
	return rows, err
}

// MaterialCostByWorkOrder sums unit_cost × quantity over warehouse-type
// materials. Tool assignments carry no cost and are excluded by the join.
func (r *workOrderRepo) MaterialCostByWorkOrder(ctx context.Context, workOrderIDs []uint) ([]MaterialCostRow, error) {
	if len(workOrderIDs) == 0 {
		return nil, nil
	}
	var rows []MaterialCostRow
	err := r.db.WithContext(ctx).
		Table("ot_materials AS m").
		Select("m.work_order_id, SUM(COALESCE(w.unit_cost, 0) * m.quantity) AS cost").
		Joins("JOIN warehouse_items w ON w.id = m.item_id").
		Where("m.item_type = ? AND m.work_order_id IN ?", model.ItemTypeWarehouse, workOrderIDs).
		Group("m.work_order_id").
		Scan(&rows).Error
	return rows, err
}

// ── Personnel ────────────────────────────────────────────────────────────────

func (r *workOrderRepo) ListPersonnel(ctx context.Context, workOrderID uint) ([]model.OTPersonnel, error) {
	var personnel []model.OTPersonnel
	err := r.db.WithContext(ctx).Preload("Technician").
		Where("work_order_id = ?", workOrderID).Order("id ASC").Find(&personnel).Error
	return personnel, err
}

func (r *workOrderRepo) CreatePersonnel(ctx context.Context, p *model.OTPersonnel) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *workOrderRepo) FindPersonnelByID(ctx context.Context, id uint) (*model.OTPersonnel, error) {
	var p model.OTPersonnel
	err := r.db.WithContext(ctx).First(&p, id).Error
	return &p, err
}

func (r *workOrderRepo) SavePersonnel(ctx context.Context, p *model.OTPersonnel) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *workOrderRepo) DeletePersonnel(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.OTPersonnel{}, id).Error
}

func (r *workOrderRepo) DeletePersonnelByWorkOrder(ctx context.Context, workOrderID uint) error {
	return r.db.WithContext(ctx).Where("work_order_id = ?", workOrderID).
		Delete(&model.OTPersonnel{}).Error
}

// ── Materials ────────────────────────────────────────────────────────────────

func (r *workOrderRepo) ListMaterials(ctx context.Context, workOrderID uint) ([]model.OTMaterial, error) {
	var materials []model.OTMaterial
	err := r.db.WithContext(ctx).Where("work_order_id = ?", workOrderID).
		Order("id ASC").Find(&materials).Error
	return materials, err
}

func (r *workOrderRepo) FindMaterialByID(ctx context.Context, id uint) (*model.OTMaterial, error) {
	var m model.OTMaterial
	err := r.db.WithContext(ctx).First(&m, id).Error
	return &m, err
}

func (r *workOrderRepo) CreateMaterialTx(tx *gorm.DB, m *model.OTMaterial) error {
	return tx.Create(m).Error
}

func (r *workOrderRepo) DeleteMaterialTx(tx *gorm.DB, id uint) error {
	return tx.Delete(&model.OTMaterial{}, id).Error
}

// ── Suggestions / feedback ───────────────────────────────────────────────────

func (r *workOrderRepo) findLastClosed(ctx context.Context, column string, id uint, maintenanceType string) (*model.WorkOrder, error) {
	var wo model.WorkOrder
	q := r.db.WithContext(ctx).
		Where(column+" = ? AND status = ?", id, model.OTCerrada)
	if maintenanceType != "" {
		q = q.Where("maintenance_type = ?", maintenanceType)
	}
	err := q.Order("id DESC").First(&wo).Error
	return &wo, err
}

func (r *workOrderRepo) FindLastClosedByComponent(ctx context.Context, componentID uint, maintenanceType string) (*model.WorkOrder, error) {
	return r.findLastClosed(ctx, "component_id", componentID, maintenanceType)
}

func (r *workOrderRepo) FindLastClosedBySystem(ctx context.Context, systemID uint, maintenanceType string) (*model.WorkOrder, error) {
	return r.findLastClosed(ctx, "system_id", systemID, maintenanceType)
}

func (r *workOrderRepo) FindLastClosedByEquipment(ctx context.Context, equipmentID uint, maintenanceType string) (*model.WorkOrder, error) {
	return r.findLastClosed(ctx, "equipment_id", equipmentID, maintenanceType)
}

func (r *workOrderRepo) ListClosedWithCommentsByEquipment(ctx context.Context, equipmentID uint, limit int) ([]model.WorkOrder, error) {
	var orders []model.WorkOrder
	err := r.db.WithContext(ctx).
		Where("equipment_id = ? AND status = ? AND execution_comments IS NOT NULL AND execution_comments <> ''",
			equipmentID, model.OTCerrada).
		Order("real_end_date DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

// ── Dashboard ────────────────────────────────────────────────────────────────

type statusCountRow struct {
	Key   *string `gorm:"column:key"`
	Count int64   `gorm:"column:count"`
}

func (r *workOrderRepo) countGrouped(ctx context.Context, column string) (map[string]int64, error) {
	var rows []statusCountRow
	err := r.db.WithContext(ctx).Model(&model.WorkOrder{}).
		Select(column + " AS key, COUNT(id) AS count").
		Group(column).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		key := ""
		if row.Key != nil {
			key = *row.Key
		}
		counts[key] = row.Count
	}
	return counts, nil
}

func (r *workOrderRepo) CountByStatus(ctx context.Context) (map[string]int64, error) {
	return r.countGrouped(ctx, "status")
}

func (r *workOrderRepo) CountByType(ctx context.Context) (map[string]int64, error) {
	return r.countGrouped(ctx, "maintenance_type")
}

func (r *workOrderRepo) TopFailureModes(ctx context.Context, limit int) ([]FailureModeRow, error) {
	var rows []FailureModeRow
	err := r.db.WithContext(ctx).Model(&model.WorkOrder{}).
		Select("failure_mode, COUNT(id) AS count").
		Where("failure_mode IS NOT NULL AND failure_mode <> ''").
		Group("failure_mode").
		Order("count DESC").
		Limit(limit).Scan(&rows).Error
	return rows, err
}

func (r *workOrderRepo) ListRecent(ctx context.Context, limit int) ([]model.WorkOrder, error) {
	var orders []model.WorkOrder
	err := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

func (r *workOrderRepo) DB() *gorm.DB { return r.db }
