package handler

import (
	"net/http"

	"github.com/bryamlazo166/cmms-app/internal/dto"
	"github.com/bryamlazo166/cmms-app/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler covers providers, technicians and tools.
type CatalogHandler struct{ svc service.CatalogService }

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

// ── Providers ────────────────────────────────────────────────────────────────

func (h *CatalogHandler) CreateProvider(c *gin.Context) {
	var req dto.CreateProviderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.CreateProvider(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (h *CatalogHandler) ListProviders(c *gin.Context) {
	providers, err := h.svc.ListProviders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, providers)
}

func (h *CatalogHandler) UpdateProvider(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateProviderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	p, err := h.svc.UpdateProvider(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *CatalogHandler) DeactivateProvider(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.DeactivateProvider(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Technicians ──────────────────────────────────────────────────────────────

func (h *CatalogHandler) CreateTechnician(c *gin.Context) {
	var req dto.CreateTechnicianRequest
	if !bindAndValidate(c, &req) {
		return
	}
	t, err := h.svc.CreateTechnician(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *CatalogHandler) ListTechnicians(c *gin.Context) {
	all := c.Query("all") == "true"
	techs, err := h.svc.ListTechnicians(c.Request.Context(), all)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, techs)
}

func (h *CatalogHandler) UpdateTechnician(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateTechnicianRequest
	if !bindAndValidate(c, &req) {
		return
	}
	t, err := h.svc.UpdateTechnician(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *CatalogHandler) ToggleTechnician(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.ToggleTechnician(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ── Tools ────────────────────────────────────────────────────────────────────

func (h *CatalogHandler) CreateTool(c *gin.Context) {
	var req dto.CreateToolRequest
	if !bindAndValidate(c, &req) {
		return
	}
	t, err := h.svc.CreateTool(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *CatalogHandler) ListTools(c *gin.Context) {
	all := c.Query("all") == "true"
	tools, err := h.svc.ListTools(c.Request.Context(), all)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, tools)
}

func (h *CatalogHandler) GetTool(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	t, err := h.svc.GetTool(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *CatalogHandler) UpdateTool(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateToolRequest
	if !bindAndValidate(c, &req) {
		return
	}
	t, err := h.svc.UpdateTool(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *CatalogHandler) ToggleTool(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.ToggleTool(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
