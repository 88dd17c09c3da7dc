package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/bryamlazo166/cmms-app/internal/dto"
	"github.com/bryamlazo166/cmms-app/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type purchasingFixture struct {
	repo      *stubPurchasingRepo
	orders    *stubWorkOrderRepo
	warehouse *stubWarehouseRepo
	svc       PurchasingService
}

func newPurchasingFixture() *purchasingFixture {
	f := &purchasingFixture{
		repo:      newStubPurchasingRepo(),
		orders:    newStubWorkOrderRepo(),
		warehouse: newStubWarehouseRepo(),
	}
	f.orders.orders[1] = &model.WorkOrder{ID: 1, Code: "OT-0001", Status: model.OTAbierta}
	f.svc = NewPurchasingService(f.repo, f.orders, f.warehouse)
	return f
}

func TestCreatePurchaseRequest_Material(t *testing.T) {
	f := newPurchasingFixture()

	pr, err := f.svc.CreateRequest(context.Background(), dto.CreatePurchaseRequestRequest{
		WorkOrderID:     1,
		ItemType:        model.ReqMaterial,
		WarehouseItemID: uintPtr(3),
		Quantity:        2,
	})
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("REQ-%d-0001", time.Now().Year()), pr.ReqCode)
	assert.Equal(t, model.ReqPendiente, pr.Status)
}

func TestCreatePurchaseRequest_ServiceNeedsDescription(t *testing.T) {
	f := newPurchasingFixture()

	_, err := f.svc.CreateRequest(context.Background(), dto.CreatePurchaseRequestRequest{
		WorkOrderID: 1,
		ItemType:    model.ReqServicio,
		Quantity:    1,
	})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Empty(t, f.repo.requests)
}

func TestCreatePurchaseRequest_MaterialNeedsItem(t *testing.T) {
	f := newPurchasingFixture()

	_, err := f.svc.CreateRequest(context.Background(), dto.CreatePurchaseRequestRequest{
		WorkOrderID: 1,
		ItemType:    model.ReqMaterial,
		Quantity:    1,
	})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestCreatePurchaseRequest_UnknownOT(t *testing.T) {
	f := newPurchasingFixture()

	_, err := f.svc.CreateRequest(context.Background(), dto.CreatePurchaseRequestRequest{
		WorkOrderID: 99,
		ItemType:    model.ReqServicio,
		Description: strPtr("Calibración externa"),
		Quantity:    1,
	})

	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
}

func TestCreatePurchaseOrder_AttachesRequests(t *testing.T) {
	f := newPurchasingFixture()
	f.repo.requests[1] = &model.PurchaseRequest{ID: 1, ReqCode: "REQ-2026-0001", Status: model.ReqPendiente}
	f.repo.requests[2] = &model.PurchaseRequest{ID: 2, ReqCode: "REQ-2026-0002", Status: model.ReqPendiente}

	po, err := f.svc.CreateOrder(context.Background(), dto.CreatePurchaseOrderRequest{
		ProviderName: "Rodamientos del Norte",
		RequestIDs:   []uint{1, 2},
	})
	require.NoError(t, err)

	assert.Equal(t, fmt.Sprintf("OC-%d-001", time.Now().Year()), po.POCode)
	assert.Equal(t, model.POEmitida, po.Status)
	require.NotNil(t, po.IssueDate)

	for _, id := range []uint{1, 2} {
		pr := f.repo.requests[id]
		assert.Equal(t, model.ReqEnOrden, pr.Status)
		require.NotNil(t, pr.PurchaseOrderID)
		assert.Equal(t, po.ID, *pr.PurchaseOrderID)
	}
}

func TestCreatePurchaseOrder_MissingRequest(t *testing.T) {
	f := newPurchasingFixture()
	f.repo.requests[1] = &model.PurchaseRequest{ID: 1, ReqCode: "REQ-2026-0001", Status: model.ReqPendiente}

	_, err := f.svc.CreateOrder(context.Background(), dto.CreatePurchaseOrderRequest{
		ProviderName: "Proveedor X",
		RequestIDs:   []uint{1, 7},
	})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Empty(t, f.repo.orders)
}

func TestCreatePurchaseOrder_AlreadyAttached(t *testing.T) {
	f := newPurchasingFixture()
	f.repo.requests[1] = &model.PurchaseRequest{
		ID: 1, ReqCode: "REQ-2026-0001", Status: model.ReqEnOrden, PurchaseOrderID: uintPtr(5),
	}

	_, err := f.svc.CreateOrder(context.Background(), dto.CreatePurchaseOrderRequest{
		ProviderName: "Proveedor X",
		RequestIDs:   []uint{1},
	})

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Contains(t, ve.Msg, "REQ-2026-0001")
}

func TestClosePurchaseOrder_CascadesToRequests(t *testing.T) {
	f := newPurchasingFixture()
	f.repo.orders[1] = &model.PurchaseOrder{ID: 1, POCode: "OC-2026-001", Status: model.POEmitida}
	f.repo.requests[1] = &model.PurchaseRequest{ID: 1, Status: model.ReqEnOrden, PurchaseOrderID: uintPtr(1)}
	f.repo.requests[2] = &model.PurchaseRequest{ID: 2, Status: model.ReqEnOrden, PurchaseOrderID: uintPtr(1)}
	f.repo.requests[3] = &model.PurchaseRequest{ID: 3, Status: model.ReqPendiente} // unattached

	po, err := f.svc.CloseOrder(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, model.POCerrada, po.Status)
	assert.Equal(t, model.ReqRecibido, f.repo.requests[1].Status)
	assert.Equal(t, model.ReqRecibido, f.repo.requests[2].Status)
	assert.Equal(t, model.ReqPendiente, f.repo.requests[3].Status)
}

func TestClosePurchaseOrder_AlreadyClosed(t *testing.T) {
	f := newPurchasingFixture()
	f.repo.orders[1] = &model.PurchaseOrder{ID: 1, POCode: "OC-2026-001", Status: model.POCerrada}

	_, err := f.svc.CloseOrder(context.Background(), 1)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestListPickerItems_ActiveOnly(t *testing.T) {
	f := newPurchasingFixture()
	f.warehouse.items[1] = &model.WarehouseItem{ID: 1, Code: "REP-0001", Name: "Correa", Stock: 4, IsActive: true}
	f.warehouse.items[2] = &model.WarehouseItem{ID: 2, Code: "REP-0002", Name: "Filtro", IsActive: false}

	items, err := f.svc.ListPickerItems(context.Background())
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "REP-0001", items[0].Code)
	assert.Equal(t, 4, items[0].Stock)
}
