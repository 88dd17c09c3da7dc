package infra

import (
	"fmt"

	"github.com/bryamlazo166/cmms-app/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx, runs AutoMigrate to
// create / update all tables, then applies idempotent SQL patches that GORM
// cannot express (partial/composite indexes).
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, err
	}
	return db, nil
}

// RunMigrations applies the schema. Also used by integration tests against
// throwaway containers.
func RunMigrations(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Area{},
		&model.Line{},
		&model.Equipment{},
		&model.System{},
		&model.Component{},
		&model.SparePart{},
		&model.Provider{},
		&model.Technician{},
		&model.Tool{},
		&model.WarehouseItem{},
		&model.WarehouseMovement{},
		&model.MaintenanceNotice{},
		&model.WorkOrder{},
		&model.OTPersonnel{},
		&model.OTMaterial{},
		&model.PurchaseRequest{},
		&model.PurchaseOrder{},
	); err != nil {
		return fmt.Errorf("AutoMigrate: %w", err)
	}
	return applySchemaPatches(db)
}

// applySchemaPatches runs idempotent DDL that AutoMigrate cannot fully handle
// on its own. Each statement is guarded, so re-running is a no-op.
func applySchemaPatches(db *gorm.DB) error {
	patches := []string{
		// Composite index for the classification engine's 12-month OUT/ADJUST scan.
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_warehouse_movements_type_date') THEN
		    CREATE INDEX idx_warehouse_movements_type_date
		        ON warehouse_movements (movement_type, date);
		  END IF;
		END $$`,
		// Partial index for the duplicate-notice check (active statuses only).
		`DO $$ BEGIN
		  IF NOT EXISTS (SELECT 1 FROM pg_indexes WHERE indexname = 'idx_notices_equipment_active') THEN
		    CREATE INDEX idx_notices_equipment_active
		        ON maintenance_notices (equipment_id)
		        WHERE status IN ('Pendiente', 'En Progreso', 'En Tratamiento');
		  END IF;
		END $$`,
	}

	for _, sql := range patches {
		if err := db.Exec(sql).Error; err != nil {
			return fmt.Errorf("patch %q: %w", sql[:min(len(sql), 60)], err)
		}
	}
	return nil
}
