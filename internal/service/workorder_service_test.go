package service

import (
	"context"
	"testing"

	"github.com/bryamlazo166/cmms-app/internal/dto"
	"github.com/bryamlazo166/cmms-app/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type woFixture struct {
	orders    *stubWorkOrderRepo
	notices   *stubNoticeRepo
	warehouse *stubWarehouseRepo
	tools     *stubToolRepo
	techs     *stubTechnicianRepo
	providers *stubProviderRepo
	taxonomy  *stubTaxonomyRepo
	svc       WorkOrderService
}

func newWOFixture() *woFixture {
	f := &woFixture{
		orders:    newStubWorkOrderRepo(),
		notices:   newStubNoticeRepo(),
		warehouse: newStubWarehouseRepo(),
		tools:     newStubToolRepo(),
		techs:     newStubTechnicianRepo(),
		providers: newStubProviderRepo(),
		taxonomy:  newStubTaxonomyRepo(),
	}
	f.svc = NewWorkOrderService(f.orders, f.notices, f.warehouse, f.tools, f.techs, f.providers, f.taxonomy)
	return f
}

func TestWorkOrderCreate_FromNoticeSyncsStatus(t *testing.T) {
	f := newWOFixture()
	f.notices.notices[1] = &model.MaintenanceNotice{ID: 1, Code: "AV-0001", Status: model.NoticePendiente}

	wo, err := f.svc.Create(context.Background(), dto.CreateWorkOrderRequest{NoticeID: uintPtr(1)})
	require.NoError(t, err)

	assert.Equal(t, "OT-0001", wo.Code)
	assert.Equal(t, model.OTAbierta, wo.Status)
	assert.Equal(t, 1, wo.TechCount)

	n := f.notices.notices[1]
	assert.Equal(t, model.NoticeEnTratamiento, n.Status)
	require.NotNil(t, n.OTNumber)
	assert.Equal(t, "OT-0001", *n.OTNumber)
}

func TestWorkOrderCreate_UnknownNotice(t *testing.T) {
	f := newWOFixture()

	_, err := f.svc.Create(context.Background(), dto.CreateWorkOrderRequest{NoticeID: uintPtr(9)})

	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Empty(t, f.orders.orders)
}

func TestWorkOrderUpdate_CloseSyncsNotice(t *testing.T) {
	f := newWOFixture()
	f.notices.notices[1] = &model.MaintenanceNotice{ID: 1, Code: "AV-0001", Status: model.NoticeEnTratamiento}
	f.orders.orders[1] = &model.WorkOrder{ID: 1, Code: "OT-0001", NoticeID: uintPtr(1), Status: model.OTEnProgreso}

	wo, err := f.svc.Update(context.Background(), 1, dto.UpdateWorkOrderRequest{
		Status:       strPtr(model.OTCerrada),
		RealEndDate:  strPtr("2026-08-30"),
		RealDuration: f64Ptr(4.5),
	})
	require.NoError(t, err)

	assert.Equal(t, model.OTCerrada, wo.Status)
	assert.Equal(t, model.NoticeCerrado, f.notices.notices[1].Status)
	require.NotNil(t, f.notices.notices[1].OTNumber)
	assert.Equal(t, "OT-0001", *f.notices.notices[1].OTNumber)
}

func TestWorkOrderUpdate_NonCloseLeavesNoticeAlone(t *testing.T) {
	f := newWOFixture()
	f.notices.notices[1] = &model.MaintenanceNotice{ID: 1, Status: model.NoticeEnTratamiento}
	f.orders.orders[1] = &model.WorkOrder{ID: 1, Code: "OT-0001", NoticeID: uintPtr(1), Status: model.OTAbierta}

	_, err := f.svc.Update(context.Background(), 1, dto.UpdateWorkOrderRequest{
		Status: strPtr(model.OTProgramada),
	})
	require.NoError(t, err)

	assert.Equal(t, model.NoticeEnTratamiento, f.notices.notices[1].Status)
}

func TestWorkOrderUpdate_PropagatesCriticality(t *testing.T) {
	f := newWOFixture()
	media := "Media"
	f.taxonomy.components[5] = &model.Component{ID: 5, Name: "Bomba", SystemID: 1, Criticality: &media}
	f.orders.orders[1] = &model.WorkOrder{ID: 1, Code: "OT-0001", ComponentID: uintPtr(5), Status: model.OTAbierta}

	_, err := f.svc.Update(context.Background(), 1, dto.UpdateWorkOrderRequest{Priority: strPtr("Alta")})
	require.NoError(t, err)

	require.NotNil(t, f.taxonomy.components[5].Criticality)
	assert.Equal(t, "Alta", *f.taxonomy.components[5].Criticality)
}

func TestWorkOrderUpdate_NoCriticalityWithoutComponent(t *testing.T) {
	f := newWOFixture()
	f.orders.orders[1] = &model.WorkOrder{ID: 1, Code: "OT-0001", Status: model.OTAbierta}

	_, err := f.svc.Update(context.Background(), 1, dto.UpdateWorkOrderRequest{Priority: strPtr("Alta")})
	require.NoError(t, err)
}

// ── Materials ────────────────────────────────────────────────────────────────

func TestAddMaterial_WarehouseDeductsStockOnce(t *testing.T) {
	f := newWOFixture()
	f.orders.orders[1] = &model.WorkOrder{ID: 1, Code: "OT-0001", Status: model.OTAbierta}
	f.warehouse.items[3] = &model.WarehouseItem{ID: 3, Code: "REP-0003", Name: "Correa", Stock: 10, IsActive: true}

	m, err := f.svc.AddMaterial(context.Background(), 1, dto.AddMaterialRequest{
		ItemType: model.ItemTypeWarehouse, ItemID: 3, Quantity: intPtr(4),
	})
	require.NoError(t, err)

	assert.Equal(t, 4, m.Quantity)
	assert.Equal(t, 6, f.warehouse.items[3].Stock)

	require.Len(t, f.warehouse.movements, 1)
	move := f.warehouse.movements[0]
	assert.Equal(t, model.MovementOut, move.MovementType)
	assert.Equal(t, -4, move.Quantity)
	require.NotNil(t, move.ReferenceID)
	assert.Equal(t, uint(1), *move.ReferenceID)
	assert.Equal(t, "Uso en OT-0001", move.Reason)
}

func TestAddMaterial_InsufficientStock(t *testing.T) {
	f := newWOFixture()
	f.orders.orders[1] = &model.WorkOrder{ID: 1, Code: "OT-0001", Status: model.OTAbierta}
	f.warehouse.items[3] = &model.WarehouseItem{ID: 3, Name: "Correa", Stock: 2, IsActive: true}

	_, err := f.svc.AddMaterial(context.Background(), 1, dto.AddMaterialRequest{
		ItemType: model.ItemTypeWarehouse, ItemID: 3, Quantity: intPtr(5),
	})

	var ce *ConsistencyError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 2, ce.Available)
	assert.Equal(t, 2, f.warehouse.items[3].Stock)
	assert.Empty(t, f.warehouse.movements)
	assert.Empty(t, f.orders.materials)
}

func TestAddMaterial_ToolNeverTouchesStock(t *testing.T) {
	f := newWOFixture()
	f.orders.orders[1] = &model.WorkOrder{ID: 1, Code: "OT-0001", Status: model.OTAbierta}
	f.tools.tools[2] = &model.Tool{ID: 2, Code: "HRR-002", Name: "Torquimetro", IsActive: true}

	m, err := f.svc.AddMaterial(context.Background(), 1, dto.AddMaterialRequest{
		ItemType: model.ItemTypeTool, ItemID: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, m.Quantity) // defaults to one
	assert.Empty(t, f.warehouse.movements)
}

func TestAddMaterial_UnknownTool(t *testing.T) {
	f := newWOFixture()
	f.orders.orders[1] = &model.WorkOrder{ID: 1, Code: "OT-0001", Status: model.OTAbierta}

	_, err := f.svc.AddMaterial(context.Background(), 1, dto.AddMaterialRequest{
		ItemType: model.ItemTypeTool, ItemID: 99,
	})

	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
}

func TestRemoveMaterial_RestoresStockWithReturn(t *testing.T) {
	f := newWOFixture()
	f.orders.orders[1] = &model.WorkOrder{ID: 1, Code: "OT-0001", Status: model.OTAbierta}
	f.warehouse.items[3] = &model.WarehouseItem{ID: 3, Name: "Correa", Stock: 6, IsActive: true}
	f.orders.materials[10] = &model.OTMaterial{
		ID: 10, WorkOrderID: 1, ItemType: model.ItemTypeWarehouse, ItemID: 3, Quantity: 4,
	}

	err := f.svc.RemoveMaterial(context.Background(), 1, 10)
	require.NoError(t, err)

	assert.Equal(t, 10, f.warehouse.items[3].Stock)
	require.Len(t, f.warehouse.movements, 1)
	move := f.warehouse.movements[0]
	assert.Equal(t, model.MovementReturn, move.MovementType)
	assert.Equal(t, 4, move.Quantity)
	assert.Equal(t, "Devolución de OT-0001", move.Reason)
	assert.Empty(t, f.orders.materials)
}

func TestRemoveMaterial_WrongOrder(t *testing.T) {
	f := newWOFixture()
	f.orders.orders[1] = &model.WorkOrder{ID: 1, Code: "OT-0001", Status: model.OTAbierta}
	f.orders.orders[2] = &model.WorkOrder{ID: 2, Code: "OT-0002", Status: model.OTAbierta}
	f.orders.materials[10] = &model.OTMaterial{
		ID: 10, WorkOrderID: 2, ItemType: model.ItemTypeTool, ItemID: 1, Quantity: 1,
	}

	err := f.svc.RemoveMaterial(context.Background(), 1, 10)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Len(t, f.orders.materials, 1)
}

// ── Personnel ────────────────────────────────────────────────────────────────

func TestSavePersonnel_ArrayReplacesCrew(t *testing.T) {
	f := newWOFixture()
	f.orders.orders[1] = &model.WorkOrder{ID: 1, Code: "OT-0001", Status: model.OTAbierta}
	f.orders.personnel[1] = &model.OTPersonnel{ID: 1, WorkOrderID: 1, TechnicianID: uintPtr(5)}

	saved, err := f.svc.SavePersonnel(context.Background(), 1, dto.SavePersonnelRequest{
		Personnel: []dto.PersonnelInput{
			{TechnicianID: uintPtr(2), HoursAssigned: f64Ptr(6)},
			{TechnicianID: uintPtr(3)},
		},
	})
	require.NoError(t, err)

	require.Len(t, saved, 2)
	assert.Equal(t, 6.0, saved[0].HoursAssigned)
	assert.Equal(t, 8.0, saved[1].HoursAssigned) // full-shift default

	// Old crew member is gone.
	for _, p := range f.orders.personnel {
		assert.NotEqual(t, uint(5), *p.TechnicianID)
	}
}

func TestSavePersonnel_SingleObjectAppends(t *testing.T) {
	f := newWOFixture()
	f.orders.orders[1] = &model.WorkOrder{ID: 1, Code: "OT-0001", Status: model.OTAbierta}
	f.orders.personnel[1] = &model.OTPersonnel{ID: 1, WorkOrderID: 1, TechnicianID: uintPtr(5)}

	saved, err := f.svc.SavePersonnel(context.Background(), 1, dto.SavePersonnelRequest{
		PersonnelInput: dto.PersonnelInput{TechnicianID: uintPtr(9)},
	})
	require.NoError(t, err)

	require.Len(t, saved, 1)
	assert.Len(t, f.orders.personnel, 2)
}

// ── Predictive helpers ───────────────────────────────────────────────────────

func TestSuggestions_ComponentWinsOverEquipment(t *testing.T) {
	f := newWOFixture()
	f.warehouse.items[3] = &model.WarehouseItem{ID: 3, Code: "REP-0003", Name: "Correa", Stock: 5, IsActive: true}
	f.tools.tools[2] = &model.Tool{ID: 2, Code: "HRR-002", Name: "Llave", IsActive: true}

	f.orders.orders[1] = &model.WorkOrder{ID: 1, Code: "OT-0001", ComponentID: uintPtr(5), Status: model.OTCerrada}
	f.orders.orders[2] = &model.WorkOrder{ID: 2, Code: "OT-0002", EquipmentID: uintPtr(9), Status: model.OTCerrada}
	f.orders.materials[1] = &model.OTMaterial{ID: 1, WorkOrderID: 1, ItemType: model.ItemTypeWarehouse, ItemID: 3, Quantity: 2}
	f.orders.materials[2] = &model.OTMaterial{ID: 2, WorkOrderID: 1, ItemType: model.ItemTypeTool, ItemID: 2, Quantity: 1}

	resp, err := f.svc.Suggestions(context.Background(), "", uintPtr(5), nil, uintPtr(9))
	require.NoError(t, err)

	assert.True(t, resp.Found)
	assert.Equal(t, "OT-0001", resp.SourceOT)
	require.Len(t, resp.Parts, 1)
	assert.Equal(t, "Correa", resp.Parts[0].Name)
	require.Len(t, resp.Tools, 1)
	assert.Equal(t, "Llave", resp.Tools[0].Name)
}

func TestSuggestions_NoAsset(t *testing.T) {
	f := newWOFixture()

	resp, err := f.svc.Suggestions(context.Background(), "", nil, nil, nil)
	require.NoError(t, err)
	assert.False(t, resp.Found)
}

func TestFeedback_ResolvesTechnicianName(t *testing.T) {
	f := newWOFixture()
	f.techs.techs[4] = &model.Technician{ID: 4, Name: "Lucia Paredes", IsActive: true}
	prev := "Preventivo"
	f.orders.orders[1] = &model.WorkOrder{
		ID: 1, Code: "OT-0001", EquipmentID: uintPtr(9), Status: model.OTCerrada,
		MaintenanceType:   &prev,
		TechnicianID:      strPtr("4"),
		RealEndDate:       strPtr("2026-08-01"),
		ExecutionComments: strPtr("Se cambió el filtro"),
	}

	items, err := f.svc.Feedback(context.Background(), 9)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "Lucia Paredes", items[0].TechName)
	assert.Equal(t, "2026-08-01", items[0].Date)
	assert.Equal(t, "Se cambió el filtro", items[0].Comments)
	assert.Equal(t, "OT-0001", items[0].OTCode)
}

func intPtr(v int) *int { return &v }
