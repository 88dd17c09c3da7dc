package handler

import (
	"net/http"

	"github.com/bryamlazo166/cmms-app/internal/dto"
	"github.com/bryamlazo166/cmms-app/internal/service"

	"github.com/gin-gonic/gin"
)

// TaxonomyHandler exposes the six-level asset hierarchy plus the bulk-load
// endpoints.
type TaxonomyHandler struct{ svc service.TaxonomyService }

func NewTaxonomyHandler(svc service.TaxonomyService) *TaxonomyHandler {
	return &TaxonomyHandler{svc: svc}
}

// ── Areas ────────────────────────────────────────────────────────────────────

func (h *TaxonomyHandler) CreateArea(c *gin.Context) {
	var req dto.CreateAreaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	area, err := h.svc.CreateArea(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, area)
}

func (h *TaxonomyHandler) ListAreas(c *gin.Context) {
	areas, err := h.svc.ListAreas(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, areas)
}

func (h *TaxonomyHandler) UpdateArea(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateAreaRequest
	if !bindAndValidate(c, &req) {
		return
	}
	area, err := h.svc.UpdateArea(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, area)
}

func (h *TaxonomyHandler) DeleteArea(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteArea(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Lines ────────────────────────────────────────────────────────────────────

func (h *TaxonomyHandler) CreateLine(c *gin.Context) {
	var req dto.CreateLineRequest
	if !bindAndValidate(c, &req) {
		return
	}
	line, err := h.svc.CreateLine(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, line)
}

func (h *TaxonomyHandler) ListLines(c *gin.Context) {
	lines, err := h.svc.ListLines(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lines)
}

func (h *TaxonomyHandler) UpdateLine(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateLineRequest
	if !bindAndValidate(c, &req) {
		return
	}
	line, err := h.svc.UpdateLine(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, line)
}

func (h *TaxonomyHandler) DeleteLine(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteLine(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Equipments ───────────────────────────────────────────────────────────────

func (h *TaxonomyHandler) CreateEquipment(c *gin.Context) {
	var req dto.CreateEquipmentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	eq, err := h.svc.CreateEquipment(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, eq)
}

func (h *TaxonomyHandler) ListEquipments(c *gin.Context) {
	eqs, err := h.svc.ListEquipments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, eqs)
}

func (h *TaxonomyHandler) UpdateEquipment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateEquipmentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	eq, err := h.svc.UpdateEquipment(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, eq)
}

func (h *TaxonomyHandler) DeleteEquipment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteEquipment(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Systems ──────────────────────────────────────────────────────────────────

func (h *TaxonomyHandler) CreateSystem(c *gin.Context) {
	var req dto.CreateSystemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sys, err := h.svc.CreateSystem(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sys)
}

func (h *TaxonomyHandler) ListSystems(c *gin.Context) {
	systems, err := h.svc.ListSystems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, systems)
}

func (h *TaxonomyHandler) UpdateSystem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateSystemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sys, err := h.svc.UpdateSystem(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sys)
}

func (h *TaxonomyHandler) DeleteSystem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteSystem(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Components ───────────────────────────────────────────────────────────────

func (h *TaxonomyHandler) CreateComponent(c *gin.Context) {
	var req dto.CreateComponentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	comp, err := h.svc.CreateComponent(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, comp)
}

func (h *TaxonomyHandler) ListComponents(c *gin.Context) {
	comps, err := h.svc.ListComponents(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comps)
}

func (h *TaxonomyHandler) UpdateComponent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateComponentRequest
	if !bindAndValidate(c, &req) {
		return
	}
	comp, err := h.svc.UpdateComponent(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, comp)
}

func (h *TaxonomyHandler) DeleteComponent(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteComponent(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Spare parts ──────────────────────────────────────────────────────────────

func (h *TaxonomyHandler) CreateSparePart(c *gin.Context) {
	var req dto.CreateSparePartRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sp, err := h.svc.CreateSparePart(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, sp)
}

func (h *TaxonomyHandler) ListSpareParts(c *gin.Context) {
	parts, err := h.svc.ListSpareParts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, parts)
}

func (h *TaxonomyHandler) UpdateSparePart(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateSparePartRequest
	if !bindAndValidate(c, &req) {
		return
	}
	sp, err := h.svc.UpdateSparePart(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sp)
}

func (h *TaxonomyHandler) DeleteSparePart(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeleteSparePart(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Bulk load ────────────────────────────────────────────────────────────────

func (h *TaxonomyHandler) BulkPaste(c *gin.Context) {
	var req dto.BulkPasteRequest
	if !bindAndValidate(c, &req) {
		return
	}
	result, err := h.svc.BulkPaste(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *TaxonomyHandler) BulkPasteHierarchy(c *gin.Context) {
	var req dto.BulkPasteHierarchyRequest
	if !bindAndValidate(c, &req) {
		return
	}
	result, err := h.svc.BulkPasteHierarchy(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
