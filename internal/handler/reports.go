package handler

import (
	"net/http"

	"github.com/bryamlazo166/cmms-app/internal/apierror"
	"github.com/bryamlazo166/cmms-app/internal/dto"
	"github.com/bryamlazo166/cmms-app/internal/infra"
	"github.com/bryamlazo166/cmms-app/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportsHandler covers the KPI report, the Excel exports/imports and the
// printable work order sheet.
type ReportsHandler struct {
	kpi       service.KPIService
	warehouse service.WarehouseService
	workOrder service.WorkOrderService
	taxonomy  service.TaxonomyService
	pdfPath   string
}

func NewReportsHandler(
	kpi service.KPIService,
	warehouse service.WarehouseService,
	workOrder service.WorkOrderService,
	taxonomy service.TaxonomyService,
	pdfPath string,
) *ReportsHandler {
	return &ReportsHandler{
		kpi:       kpi,
		warehouse: warehouse,
		workOrder: workOrder,
		taxonomy:  taxonomy,
		pdfPath:   pdfPath,
	}
}

func (h *ReportsHandler) KPIs(c *gin.Context) {
	var filter dto.KPIFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	resp, err := h.kpi.Report(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// sendWorkbook streams a workbook as an xlsx attachment.
func sendWorkbook(c *gin.Context, f *excelize.File, fileName string) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *ReportsHandler) ExportWarehouse(c *gin.Context) {
	items, err := h.warehouse.ListItems(c.Request.Context(), true)
	if err != nil {
		respondError(c, err)
		return
	}
	f, err := infra.BuildWarehouseWorkbook(items)
	if err != nil {
		respondError(c, err)
		return
	}
	sendWorkbook(c, f, "Inventario_Maestro_CMMS.xlsx")
}

func (h *ReportsHandler) ExportKardex(c *gin.Context) {
	movements, err := h.warehouse.ListAllMovements(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	f, err := infra.BuildKardexWorkbook(movements)
	if err != nil {
		respondError(c, err)
		return
	}
	sendWorkbook(c, f, "Kardex_CMMS.xlsx")
}

func (h *ReportsHandler) ExportWorkOrders(c *gin.Context) {
	orders, err := h.workOrder.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	f, err := infra.BuildWorkOrdersWorkbook(orders)
	if err != nil {
		respondError(c, err)
		return
	}
	sendWorkbook(c, f, "Reporte_OTs_Completo.xlsx")
}

func (h *ReportsHandler) ExportTaxonomy(c *gin.Context) {
	rows, err := h.taxonomy.FlattenedExport(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	f, err := infra.BuildTaxonomyWorkbook(rows)
	if err != nil {
		respondError(c, err)
		return
	}
	sendWorkbook(c, f, "CMMS_BaseDatos_Completa.xlsx")
}

func (h *ReportsHandler) DownloadTemplate(c *gin.Context) {
	f, err := infra.BuildTemplateWorkbook()
	if err != nil {
		respondError(c, err)
		return
	}
	sendWorkbook(c, f, "plantilla_carga_masiva_cmms.xlsx")
}

func (h *ReportsHandler) UploadExcel(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Archivo no recibido"))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("No se pudo abrir el archivo"))
		return
	}
	defer file.Close()

	sheets, err := infra.ParseWorkbook(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("Archivo Excel invalido"))
		return
	}
	result, err := h.taxonomy.ImportWorkbook(c.Request.Context(), sheets)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *ReportsHandler) WorkOrderPDF(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	ctx := c.Request.Context()

	wo, err := h.workOrder.GetListItem(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	personnel, err := h.workOrder.ListPersonnel(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}
	materials, err := h.workOrder.ListMaterials(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	path, err := infra.GenerateWorkOrderPDF(*wo, personnel, materials, h.pdfPath)
	if err != nil {
		respondError(c, err)
		return
	}
	c.FileAttachment(path, wo.Code+".pdf")
}
