package handler

import (
	"net/http"

	"github.com/bryamlazo166/cmms-app/internal/dto"
	"github.com/bryamlazo166/cmms-app/internal/service"

	"github.com/gin-gonic/gin"
)

// WarehouseHandler exposes the stock catalog, the kardex and the ABC/XYZ
// recalculation.
type WarehouseHandler struct {
	svc            service.WarehouseService
	classification service.ClassificationService
}

func NewWarehouseHandler(svc service.WarehouseService, classification service.ClassificationService) *WarehouseHandler {
	return &WarehouseHandler{svc: svc, classification: classification}
}

func (h *WarehouseHandler) CreateItem(c *gin.Context) {
	var req dto.CreateWarehouseItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	item, err := h.svc.CreateItem(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *WarehouseHandler) ListItems(c *gin.Context) {
	all := c.Query("all") == "true"
	items, err := h.svc.ListItems(c.Request.Context(), all)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *WarehouseHandler) UpdateItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateWarehouseItemRequest
	if !bindAndValidate(c, &req) {
		return
	}
	item, err := h.svc.UpdateItem(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *WarehouseHandler) ToggleItem(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.svc.ToggleItem(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *WarehouseHandler) RegisterMovement(c *gin.Context) {
	var req dto.RegisterMovementRequest
	if !bindAndValidate(c, &req) {
		return
	}
	mv, err := h.svc.RegisterMovement(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, mv)
}

func (h *WarehouseHandler) ListMovements(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	movements, err := h.svc.ListMovements(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, movements)
}

func (h *WarehouseHandler) RecalculateClassification(c *gin.Context) {
	result, err := h.classification.Recalculate(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
