package service

import (
	"context"
	"fmt"
	"time"

	"github.com/bryamlazo166/cmms-app/internal/dto"
	"github.com/bryamlazo166/cmms-app/internal/model"
	"github.com/bryamlazo166/cmms-app/internal/repository"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type PurchasingService interface {
	CreateRequest(ctx context.Context, req dto.CreatePurchaseRequestRequest) (*model.PurchaseRequest, error)
	ListRequests(ctx context.Context, all bool) ([]dto.PurchaseRequestItem, error)
	CreateOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest) (*model.PurchaseOrder, error)
	ListOrders(ctx context.Context) ([]model.PurchaseOrder, error)
	CloseOrder(ctx context.Context, id uint) (*model.PurchaseOrder, error)
	ListPickerItems(ctx context.Context) ([]dto.PickerItem, error)
}

type purchasingService struct {
	repo      repository.PurchasingRepository
	woRepo    repository.WorkOrderRepository
	warehouse repository.WarehouseRepository
}

func NewPurchasingService(
	repo repository.PurchasingRepository,
	woRepo repository.WorkOrderRepository,
	warehouse repository.WarehouseRepository,
) PurchasingService {
	return &purchasingService{repo: repo, woRepo: woRepo, warehouse: warehouse}
}

// CreateRequest raises a purchase need from a work order. Services need a
// free-text description; materials must point at a catalog item.
func (s *purchasingService) CreateRequest(ctx context.Context, req dto.CreatePurchaseRequestRequest) (*model.PurchaseRequest, error) {
	if _, err := s.woRepo.FindByID(ctx, req.WorkOrderID); err != nil {
		return nil, notFound("OT", req.WorkOrderID)
	}

	switch req.ItemType {
	case model.ReqServicio:
		if req.Description == nil || *req.Description == "" {
			return nil, invalid("Descripción obligatoria para Servicios")
		}
	case model.ReqMaterial:
		if req.SparePartID == nil && req.WarehouseItemID == nil {
			return nil, invalid("Debe seleccionar un item del almacén.")
		}
	}

	nextID, err := s.repo.NextRequestID(ctx)
	if err != nil {
		return nil, err
	}

	pr := &model.PurchaseRequest{
		ReqCode:         fmt.Sprintf("REQ-%d-%04d", time.Now().Year(), nextID),
		WorkOrderID:     req.WorkOrderID,
		ItemType:        req.ItemType,
		SparePartID:     req.SparePartID,
		WarehouseItemID: req.WarehouseItemID,
		Description:     normStr(req.Description),
		Quantity:        req.Quantity,
		Status:          model.ReqPendiente,
	}
	if err := s.repo.CreateRequest(ctx, pr); err != nil {
		return nil, err
	}
	return pr, nil
}

// ListRequests resolves the originating OT, the item name and the grouping
// order for every row.
func (s *purchasingService) ListRequests(ctx context.Context, all bool) ([]dto.PurchaseRequestItem, error) {
	requests, err := s.repo.ListRequests(ctx, all)
	if err != nil {
		return nil, err
	}

	items := make([]dto.PurchaseRequestItem, 0, len(requests))
	for _, pr := range requests {
		item := dto.PurchaseRequestItem{PurchaseRequest: pr, OTCode: "-", ItemName: "Desconocido"}
		if pr.WorkOrder != nil {
			item.OTCode = pr.WorkOrder.Code
		}
		switch {
		case pr.ItemType == model.ReqMaterial && pr.WarehouseItem != nil:
			item.ItemName = pr.WarehouseItem.Name
		case pr.ItemType == model.ReqMaterial && pr.SparePart != nil:
			item.ItemName = pr.SparePart.Name
		case pr.Description != nil && *pr.Description != "":
			item.ItemName = *pr.Description
		}
		if pr.PurchaseOrder != nil {
			item.POCode = pr.PurchaseOrder.POCode
		}
		items = append(items, item)
	}
	return items, nil
}

// CreateOrder groups pending requests under a new supplier order. The order
// insert and the request transitions to EN_ORDEN commit together.
func (s *purchasingService) CreateOrder(ctx context.Context, req dto.CreatePurchaseOrderRequest) (*model.PurchaseOrder, error) {
	found, err := s.repo.FindRequestsByIDs(ctx, req.RequestIDs)
	if err != nil {
		return nil, err
	}
	if len(found) != len(req.RequestIDs) {
		return nil, invalid("Una o más solicitudes no existen")
	}
	for _, pr := range found {
		if pr.PurchaseOrderID != nil {
			return nil, invalid("La solicitud %s ya pertenece a una orden", pr.ReqCode)
		}
	}

	nextID, err := s.repo.NextOrderID(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	po := &model.PurchaseOrder{
		POCode:       fmt.Sprintf("OC-%d-%03d", now.Year(), nextID),
		ProviderName: req.ProviderName,
		Status:       model.POEmitida,
		IssueDate:    &now,
	}

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.CreateOrderTx(tx, po); err != nil {
			return err
		}
		return s.repo.AttachRequestsTx(tx, req.RequestIDs, po.ID, model.ReqEnOrden)
	})
	if err != nil {
		return nil, err
	}

	log.Info().Str("po_code", po.POCode).Int("requests", len(req.RequestIDs)).
		Msg("orden de compra emitida")
	return po, nil
}

func (s *purchasingService) ListOrders(ctx context.Context) ([]model.PurchaseOrder, error) {
	return s.repo.ListOrders(ctx)
}

// CloseOrder marks the order as received: the order goes to CERRADA and every
// attached request to RECIBIDO in the same transaction.
func (s *purchasingService) CloseOrder(ctx context.Context, id uint) (*model.PurchaseOrder, error) {
	po, err := s.repo.FindOrderByID(ctx, id)
	if err != nil {
		return nil, notFound("Orden de compra", id)
	}
	if po.Status == model.POCerrada {
		return nil, invalid("La orden %s ya está cerrada", po.POCode)
	}

	err = runTx(ctx, s.repo.DB(), func(tx *gorm.DB) error {
		if err := s.repo.UpdateOrderStatusTx(tx, id, model.POCerrada); err != nil {
			return err
		}
		return s.repo.UpdateRequestsStatusByOrderTx(tx, id, model.ReqRecibido)
	})
	if err != nil {
		return nil, err
	}

	po.Status = model.POCerrada
	for i := range po.Requests {
		po.Requests[i].Status = model.ReqRecibido
	}
	log.Info().Str("po_code", po.POCode).Msg("orden de compra cerrada")
	return po, nil
}

// ListPickerItems feeds the material selector on the request form with active
// warehouse items only.
func (s *purchasingService) ListPickerItems(ctx context.Context) ([]dto.PickerItem, error) {
	items, err := s.warehouse.ListItems(ctx, false)
	if err != nil {
		return nil, err
	}
	out := make([]dto.PickerItem, 0, len(items))
	for _, it := range items {
		out = append(out, dto.PickerItem{
			ID:    it.ID,
			Name:  it.Name,
			Code:  it.Code,
			Stock: it.Stock,
			Brand: it.Brand,
		})
	}
	return out, nil
}
