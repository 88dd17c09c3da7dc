package handler

import (
	"net/http"

	"github.com/bryamlazo166/cmms-app/internal/dto"
	"github.com/bryamlazo166/cmms-app/internal/service"

	"github.com/gin-gonic/gin"
)

type NoticesHandler struct{ svc service.NoticeService }

func NewNoticesHandler(svc service.NoticeService) *NoticesHandler {
	return &NoticesHandler{svc: svc}
}

func (h *NoticesHandler) Create(c *gin.Context) {
	var req dto.CreateNoticeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	resp, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *NoticesHandler) List(c *gin.Context) {
	notices, err := h.svc.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notices)
}

func (h *NoticesHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	notice, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notice)
}

func (h *NoticesHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req dto.UpdateNoticeRequest
	if !bindAndValidate(c, &req) {
		return
	}
	notice, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notice)
}

func (h *NoticesHandler) Delete(c *gin.Context) {
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
