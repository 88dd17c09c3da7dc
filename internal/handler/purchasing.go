package handler

import (
	"net/http"

	"github.com/bryamlazo166/cmms-app/internal/dto"
	"github.com/bryamlazo166/cmms-app/internal/service"

	"github.com/gin-gonic/gin"
)

// PurchasingHandler exposes purchase requests, supplier orders and the
// warehouse item picker for the request form.
type PurchasingHandler struct{ svc service.PurchasingService }

func NewPurchasingHandler(svc service.PurchasingService) *PurchasingHandler {
	return &PurchasingHandler{svc: svc}
}

func (h *PurchasingHandler) CreateRequest(c *gin.Context) {
	var req dto.CreatePurchaseRequestRequest
	if !bindAndValidate(c, &req) {
		return
	}
	pr, err := h.svc.CreateRequest(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, pr)
}

func (h *PurchasingHandler) ListRequests(c *gin.Context) {
	all := c.Query("all") == "true"
	requests, err := h.svc.ListRequests(c.Request.Context(), all)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, requests)
}

func (h *PurchasingHandler) CreateOrder(c *gin.Context) {
	var req dto.CreatePurchaseOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	po, err := h.svc.CreateOrder(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, po)
}

func (h *PurchasingHandler) ListOrders(c *gin.Context) {
	orders, err := h.svc.ListOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *PurchasingHandler) CloseOrder(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	po, err := h.svc.CloseOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, po)
}

func (h *PurchasingHandler) ListPickerItems(c *gin.Context) {
	items, err := h.svc.ListPickerItems(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, items)
}
