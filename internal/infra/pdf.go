package infra

// pdf.go — printable work order sheets using go-pdf/fpdf. A4 portrait with:
//   - Code and status header
//   - Asset location block (area / line / equipment / system / component)
//   - Planning and execution data
//   - Assigned personnel table
//   - Consumed materials table
//
// The output file is saved to storagePath/{code}.pdf.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bryamlazo166/cmms-app/internal/dto"

	"github.com/go-pdf/fpdf"
)

// GenerateWorkOrderPDF renders a work order sheet for printing and hands back
// the absolute path of the generated file.
func GenerateWorkOrderPDF(wo dto.WorkOrderListItem, personnel []dto.PersonnelResponse, materials []dto.MaterialResponse, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}
	filePath := filepath.Join(storagePath, wo.Code+".pdf")

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 15, 15)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 30

	str := func(p *string) string {
		if p == nil || *p == "" {
			return "-"
		}
		return *p
	}

	// ── Header ───────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(contentW, 9, "Orden de Trabajo "+wo.Code, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(contentW, 6, fmt.Sprintf("Estado: %s   |   Tipo: %s   |   Criticidad: %s",
		wo.Status, str(wo.MaintenanceType), wo.Criticality), "", 1, "C", false, 0, "")
	pdf.Ln(3)
	pdf.Line(15, pdf.GetY(), pageW-15, pdf.GetY())
	pdf.Ln(3)

	labelCell := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(45, 6, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.CellFormat(contentW-45, 6, value, "", 1, "L", false, 0, "")
	}

	// ── Asset location ───────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Ubicación del Activo", "", 1, "L", false, 0, "")
	labelCell("Área:", wo.AreaName)
	labelCell("Línea:", wo.LineName)
	labelCell("Equipo:", fmt.Sprintf("%s (%s)", wo.EquipmentName, wo.EquipmentTag))
	labelCell("Sistema:", wo.SystemName)
	labelCell("Componente:", wo.ComponentName)
	pdf.Ln(3)

	// ── Planning / execution ─────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Planificación y Ejecución", "", 1, "L", false, 0, "")
	labelCell("Aviso relacionado:", wo.NoticeCode)
	labelCell("Proveedor:", wo.ProviderName)
	labelCell("Técnico principal:", str(wo.TechnicianID))
	labelCell("Fecha programada:", str(wo.ScheduledDate))
	labelCell("Inicio real:", str(wo.RealStartDate))
	labelCell("Fin real:", str(wo.RealEndDate))
	if wo.RealDuration != nil {
		labelCell("Duración real (h):", fmt.Sprintf("%.1f", *wo.RealDuration))
	}
	labelCell("Modo de falla:", str(wo.FailureMode))
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW, 6, "Descripción:", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 9)
	pdf.MultiCell(contentW, 5, str(wo.Description), "", "L", false)
	pdf.Ln(3)

	// ── Personnel ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Personal Asignado", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW*0.45, 6, "Técnico", "B", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.25, 6, "Especialidad", "B", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.15, 6, "Hrs Asig.", "B", 0, "R", false, 0, "")
	pdf.CellFormat(contentW*0.15, 6, "Hrs Real", "B", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	for _, p := range personnel {
		worked := "-"
		if p.HoursWorked != nil {
			worked = fmt.Sprintf("%.1f", *p.HoursWorked)
		}
		pdf.CellFormat(contentW*0.45, 5, p.TechnicianName, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.25, 5, str(p.Specialty), "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.15, 5, fmt.Sprintf("%.1f", p.HoursAssigned), "", 0, "R", false, 0, "")
		pdf.CellFormat(contentW*0.15, 5, worked, "", 1, "R", false, 0, "")
	}
	if len(personnel) == 0 {
		pdf.CellFormat(contentW, 5, "Sin personal asignado", "", 1, "L", false, 0, "")
	}
	pdf.Ln(3)

	// ── Materials ────────────────────────────────────────────────────────────
	pdf.SetFont("Helvetica", "B", 11)
	pdf.CellFormat(contentW, 7, "Materiales y Herramientas", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW*0.2, 6, "Código", "B", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.45, 6, "Nombre", "B", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.2, 6, "Tipo", "B", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.15, 6, "Cantidad", "B", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	for _, m := range materials {
		pdf.CellFormat(contentW*0.2, 5, m.Code, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.45, 5, m.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.2, 5, m.ItemType, "", 0, "L", false, 0, "")
		pdf.CellFormat(contentW*0.15, 5, fmt.Sprintf("%d", m.Quantity), "", 1, "R", false, 0, "")
	}
	if len(materials) == 0 {
		pdf.CellFormat(contentW, 5, "Sin materiales registrados", "", 1, "L", false, 0, "")
	}

	// ── Execution comments ───────────────────────────────────────────────────
	if wo.ExecutionComments != nil && *wo.ExecutionComments != "" {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 9)
		pdf.CellFormat(contentW, 6, "Comentarios de ejecución:", "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.MultiCell(contentW, 5, *wo.ExecutionComments, "", "L", false)
	}

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}
	return filePath, nil
}
