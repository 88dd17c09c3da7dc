package handler

import (
	"net/http"
	"strconv"

	"github.com/bryamlazo166/cmms-app/internal/apierror"
	"github.com/bryamlazo166/cmms-app/internal/dto"
	"github.com/bryamlazo166/cmms-app/internal/service"

	"github.com/gin-gonic/gin"
)

// WorkOrdersHandler exposes the OT lifecycle plus its personnel and material
// sub-resources, the predictive suggestions and the feedback history.
type WorkOrdersHandler struct{ svc service.WorkOrderService }

func NewWorkOrdersHandler(svc service.WorkOrderService) *WorkOrdersHandler {
	return &WorkOrdersHandler{svc: svc}
}

func (h *WorkOrdersHandler) Create(c *gin.Context) {
	var req dto.CreateWorkOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	wo, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, wo)
}

func (h *WorkOrdersHandler) List(c *gin.Context) {
	orders, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *WorkOrdersHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	wo, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wo)
}

func (h *WorkOrdersHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateWorkOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	wo, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, wo)
}

func (h *WorkOrdersHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Personnel ────────────────────────────────────────────────────────────────

func (h *WorkOrdersHandler) ListPersonnel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	personnel, err := h.svc.ListPersonnel(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, personnel)
}

func (h *WorkOrdersHandler) SavePersonnel(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.SavePersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return
	}
	assigned, err := h.svc.SavePersonnel(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, assigned)
}

func (h *WorkOrdersHandler) UpdatePersonnel(c *gin.Context) {
	personnelID, ok := parseID(c, "personnel_id")
	if !ok {
		return
	}
	var req dto.PersonnelInput
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.UpdatePersonnel(c.Request.Context(), personnelID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *WorkOrdersHandler) DeletePersonnel(c *gin.Context) {
	personnelID, ok := parseID(c, "personnel_id")
	if !ok {
		return
	}
	if err := h.svc.DeletePersonnel(c.Request.Context(), personnelID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Materials ────────────────────────────────────────────────────────────────

func (h *WorkOrdersHandler) ListMaterials(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	materials, err := h.svc.ListMaterials(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, materials)
}

func (h *WorkOrdersHandler) AddMaterial(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.AddMaterialRequest
	if !bindAndValidate(c, &req) {
		return
	}
	m, err := h.svc.AddMaterial(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *WorkOrdersHandler) RemoveMaterial(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	materialID, ok := parseID(c, "material_id")
	if !ok {
		return
	}
	if err := h.svc.RemoveMaterial(c.Request.Context(), id, materialID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Predictive suggestions / feedback ────────────────────────────────────────

func (h *WorkOrdersHandler) Suggestions(c *gin.Context) {
	maintenanceType := c.Query("maintenance_type")
	componentID := queryUint(c, "component_id")
	systemID := queryUint(c, "system_id")
	equipmentID := queryUint(c, "equipment_id")

	resp, err := h.svc.Suggestions(c.Request.Context(), maintenanceType, componentID, systemID, equipmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *WorkOrdersHandler) Feedback(c *gin.Context) {
	equipmentID := queryUint(c, "equipment_id")
	if equipmentID == nil {
		c.JSON(http.StatusBadRequest, apierror.New("equipment_id es obligatorio"))
		return
	}
	items, err := h.svc.Feedback(c.Request.Context(), *equipmentID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

// queryUint reads an optional numeric query parameter.
func queryUint(c *gin.Context, name string) *uint {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return nil
	}
	u := uint(v)
	return &u
}
