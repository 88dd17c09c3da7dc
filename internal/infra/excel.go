package infra

// excel.go — workbook generation and parsing with excelize. Covers the four
// exports (inventario maestro, kardex, OTs, base de datos completa), the bulk
// load template and the workbook import parser.

import (
	"fmt"
	"io"

	"github.com/bryamlazo166/cmms-app/internal/dto"
	"github.com/bryamlazo166/cmms-app/internal/model"

	"github.com/xuri/excelize/v2"
)

// templateSheets defines the bulk load template: sheet → header row. Children
// reference parents by name, scoped by the rest of the chain.
var templateSheets = []struct {
	Name    string
	Columns []string
}{
	{"Areas", []string{"Name", "Description"}},
	{"Lines", []string{"Name", "Description", "AreaName"}},
	{"Equipments", []string{"Name", "Tag", "Description", "LineName", "AreaName"}},
	{"Systems", []string{"Name", "EquipmentName", "LineName", "AreaName"}},
	{"Components", []string{"Name", "Description", "SystemName", "EquipmentName", "LineName", "AreaName"}},
	{"SpareParts", []string{"Name", "Code", "Brand", "Quantity", "ComponentName", "SystemName", "EquipmentName", "LineName", "AreaName"}},
}

func orDash(p *string) string {
	if p == nil || *p == "" {
		return "-"
	}
	return *p
}

func orEmpty(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// newSheet creates a workbook with a single named sheet and writes the header
// row.
func newSheet(name string, headers []string) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", name); err != nil {
		return nil, err
	}
	if err := writeRow(f, name, 1, toAny(headers)); err != nil {
		return nil, err
	}
	return f, nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	return f.SetSheetRow(sheet, cell, &values)
}

func toAny(ss []string) []interface{} {
	out := make([]interface{}, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// BuildWarehouseWorkbook renders the full stock master, one row per item.
func BuildWarehouseWorkbook(items []model.WarehouseItem) (*excelize.File, error) {
	headers := []string{
		"ID", "Código", "Nombre", "Descripción", "Familia", "Marca", "Categoría",
		"Stock Actual", "Unidad", "Ubicación", "Criticidad", "Costo Promedio",
		"Costo Unitario", "ABC", "XYZ", "Lead Time (Días)", "Stock Seguridad",
		"Punto Reorden (ROP)", "Stock Máximo", "Lote Mínimo", "Activo",
	}
	f, err := newSheet("Inventario", headers)
	if err != nil {
		return nil, err
	}

	for i, item := range items {
		active := "No"
		if item.IsActive {
			active = "Sí"
		}
		var avgCost, unitCost interface{}
		if item.AverageCost != nil {
			avgCost, _ = item.AverageCost.Float64()
		}
		if item.UnitCost != nil {
			unitCost, _ = item.UnitCost.Float64()
		}
		row := []interface{}{
			item.ID, item.Code, item.Name, orEmpty(item.Description),
			orEmpty(item.Family), orEmpty(item.Brand), orEmpty(item.Category),
			item.Stock, item.Unit, orEmpty(item.Location), orEmpty(item.Criticality),
			avgCost, unitCost, item.ABCClass, item.XYZClass, item.LeadTime,
			item.SafetyStock, item.ROP, item.MaxStock, item.MinOrderQty, active,
		}
		if err := writeRow(f, "Inventario", i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// BuildKardexWorkbook renders the movement ledger, newest first as provided.
func BuildKardexWorkbook(movements []model.WarehouseMovement) (*excelize.File, error) {
	f, err := newSheet("Kardex", []string{"Fecha", "Tipo", "Item", "Cantidad", "Razón", "Referencia"})
	if err != nil {
		return nil, err
	}

	for i, m := range movements {
		itemLabel := "Unknown - Unknown"
		if m.Item != nil {
			itemLabel = fmt.Sprintf("%s - %s", m.Item.Code, m.Item.Name)
		}
		var ref interface{}
		if m.ReferenceID != nil {
			ref = *m.ReferenceID
		}
		row := []interface{}{m.Date, m.MovementType, itemLabel, m.Quantity, m.Reason, ref}
		if err := writeRow(f, "Kardex", i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// BuildWorkOrdersWorkbook renders the complete OT report with the hierarchy
// names already resolved by the service.
func BuildWorkOrdersWorkbook(orders []dto.WorkOrderListItem) (*excelize.File, error) {
	headers := []string{
		"Código", "Aviso Relacionado", "Área", "Línea", "Equipo", "TAG Equipo",
		"Sistema", "Componente", "Criticidad", "Descripción OT", "Modo de Falla",
		"Tipo Mtto", "Estado", "Técnico Principal", "Cant. Técnicos", "Proveedor",
		"Fecha Programada", "Duración Est. (Hr)", "Fecha Inicio Real",
		"Fecha Fin Real", "Duración Real (Hr)", "Comentarios Ejecución",
	}
	f, err := newSheet("OrdenesTrabajo", headers)
	if err != nil {
		return nil, err
	}

	for i, wo := range orders {
		var estDur, realDur interface{}
		if wo.EstimatedDuration != nil {
			estDur = *wo.EstimatedDuration
		}
		if wo.RealDuration != nil {
			realDur = *wo.RealDuration
		}
		row := []interface{}{
			wo.Code, wo.NoticeCode, wo.AreaName, wo.LineName, wo.EquipmentName,
			wo.EquipmentTag, wo.SystemName, wo.ComponentName, wo.Criticality,
			orEmpty(wo.Description), orEmpty(wo.FailureMode),
			orEmpty(wo.MaintenanceType), wo.Status, orDash(wo.TechnicianID),
			wo.TechCount, wo.ProviderName, orEmpty(wo.ScheduledDate), estDur,
			orEmpty(wo.RealStartDate), orEmpty(wo.RealEndDate), realDur,
			orEmpty(wo.ExecutionComments),
		}
		if err := writeRow(f, "OrdenesTrabajo", i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// BuildTaxonomyWorkbook renders the flattened hierarchy export.
func BuildTaxonomyWorkbook(rows []dto.TaxonomyFlatRow) (*excelize.File, error) {
	headers := []string{
		"Area", "Description (Area)", "Line", "Equipment", "Tag", "System",
		"Component", "SparePart", "SpareCode", "SpareBrand", "SpareQty",
	}
	f, err := newSheet("BaseDatos_Completa", headers)
	if err != nil {
		return nil, err
	}

	for i, r := range rows {
		var qty interface{}
		if r.SpareQty != nil {
			qty = *r.SpareQty
		}
		row := []interface{}{
			r.Area, r.AreaDescription, r.Line, r.Equipment, r.Tag, r.System,
			r.Component, r.SparePart, r.SpareCode, r.SpareBrand, qty,
		}
		if err := writeRow(f, "BaseDatos_Completa", i+2, row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// BuildTemplateWorkbook creates the empty bulk-load template: six sheets with
// header rows only.
func BuildTemplateWorkbook() (*excelize.File, error) {
	f := excelize.NewFile()
	for i, sheet := range templateSheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet.Name); err != nil {
				return nil, err
			}
		} else {
			if _, err := f.NewSheet(sheet.Name); err != nil {
				return nil, err
			}
		}
		if err := writeRow(f, sheet.Name, 1, toAny(sheet.Columns)); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// ParseWorkbook reads an uploaded workbook into header-keyed rows per sheet.
// The first row of each sheet is the header; short rows are padded with empty
// strings.
func ParseWorkbook(r io.Reader) (map[string][]map[string]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("excel: open workbook: %w", err)
	}
	defer f.Close()

	sheets := make(map[string][]map[string]string)
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("excel: read sheet %s: %w", name, err)
		}
		if len(rows) < 2 {
			continue
		}
		headers := rows[0]
		parsed := make([]map[string]string, 0, len(rows)-1)
		for _, row := range rows[1:] {
			entry := make(map[string]string, len(headers))
			for i, h := range headers {
				if i < len(row) {
					entry[h] = row[i]
				} else {
					entry[h] = ""
				}
			}
			parsed = append(parsed, entry)
		}
		sheets[name] = parsed
	}
	return sheets, nil
}
