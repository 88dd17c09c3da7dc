package service

import (
	"context"
	"errors"
	"testing"

	"github.com/bryamlazo166/cmms-app/internal/dto"
	"github.com/bryamlazo166/cmms-app/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNoticeFixture() (*stubNoticeRepo, *stubWorkOrderRepo, *stubTaxonomyRepo, NoticeService) {
	notices := newStubNoticeRepo()
	orders := newStubWorkOrderRepo()
	taxonomy := newStubTaxonomyRepo()
	return notices, orders, taxonomy, NewNoticeService(notices, orders, taxonomy)
}

func TestNoticeCreate_AssignsCode(t *testing.T) {
	_, _, _, svc := newNoticeFixture()

	resp, err := svc.Create(context.Background(), dto.CreateNoticeRequest{
		EquipmentID: uintPtr(1),
		Description: strPtr("Fuga de aceite"),
	})
	require.NoError(t, err)

	assert.Equal(t, "AV-0001", resp.Code)
	assert.Equal(t, model.NoticePendiente, resp.Status)
	assert.False(t, resp.IsDuplicate)
}

func TestNoticeCreate_EmptyStringsBecomeNull(t *testing.T) {
	_, _, _, svc := newNoticeFixture()

	resp, err := svc.Create(context.Background(), dto.CreateNoticeRequest{
		ReporterName: strPtr(""),
		Description:  strPtr(""),
	})
	require.NoError(t, err)

	assert.Nil(t, resp.ReporterName)
	assert.Nil(t, resp.Description)
}

func TestNoticeCreate_DuplicateByActiveNotice(t *testing.T) {
	notices, _, _, svc := newNoticeFixture()
	notices.notices[1] = &model.MaintenanceNotice{
		ID: 1, Code: "AV-0001", EquipmentID: uintPtr(7), Status: model.NoticePendiente,
	}

	resp, err := svc.Create(context.Background(), dto.CreateNoticeRequest{
		EquipmentID: uintPtr(7),
		Description: strPtr("ruido anormal"),
	})
	require.NoError(t, err)

	// The report is still persisted: flagged, never blocked.
	assert.True(t, resp.IsDuplicate)
	assert.Equal(t, model.NoticeDuplicado, resp.Status)
	assert.Contains(t, resp.DuplicateReason, "AV-0001")
	require.NotNil(t, resp.Description)
	assert.Contains(t, *resp.Description, "[POSIBLE DUPLICADO:")
	assert.Contains(t, *resp.Description, "ruido anormal")
	assert.Len(t, notices.notices, 2)
}

func TestNoticeCreate_LookupFailureAbortsCreate(t *testing.T) {
	notices, _, _, svc := newNoticeFixture()
	// A store failure is not the same as "no duplicate": the create must
	// fail instead of quietly skipping the check.
	boom := errors.New("conexion perdida")
	notices.findActiveErr = boom

	_, err := svc.Create(context.Background(), dto.CreateNoticeRequest{
		EquipmentID: uintPtr(7),
		Description: strPtr("ruido anormal"),
	})

	require.ErrorIs(t, err, boom)
	assert.Empty(t, notices.notices)
}

func TestNoticeCreate_DuplicateByActiveOT(t *testing.T) {
	_, orders, _, svc := newNoticeFixture()
	orders.orders[1] = &model.WorkOrder{
		ID: 1, Code: "OT-0003", EquipmentID: uintPtr(7), Status: model.OTEnProgreso,
	}

	resp, err := svc.Create(context.Background(), dto.CreateNoticeRequest{EquipmentID: uintPtr(7)})
	require.NoError(t, err)

	assert.True(t, resp.IsDuplicate)
	assert.Contains(t, resp.DuplicateReason, "OT-0003")
}

func TestNoticeCreate_ActiveNoticeWinsOverOT(t *testing.T) {
	notices, orders, _, svc := newNoticeFixture()
	notices.notices[1] = &model.MaintenanceNotice{
		ID: 1, Code: "AV-0001", EquipmentID: uintPtr(7), Status: model.NoticeEnProgreso,
	}
	orders.orders[1] = &model.WorkOrder{
		ID: 1, Code: "OT-0003", EquipmentID: uintPtr(7), Status: model.OTAbierta,
	}

	resp, err := svc.Create(context.Background(), dto.CreateNoticeRequest{EquipmentID: uintPtr(7)})
	require.NoError(t, err)

	assert.Contains(t, resp.DuplicateReason, "AV-0001")
	assert.NotContains(t, resp.DuplicateReason, "OT-0003")
}

func TestNoticeCreate_ClosedRecordsAreNotDuplicates(t *testing.T) {
	notices, orders, _, svc := newNoticeFixture()
	notices.notices[1] = &model.MaintenanceNotice{
		ID: 1, Code: "AV-0001", EquipmentID: uintPtr(7), Status: model.NoticeCerrado,
	}
	orders.orders[1] = &model.WorkOrder{
		ID: 1, Code: "OT-0003", EquipmentID: uintPtr(7), Status: model.OTCerrada,
	}

	resp, err := svc.Create(context.Background(), dto.CreateNoticeRequest{EquipmentID: uintPtr(7)})
	require.NoError(t, err)

	assert.False(t, resp.IsDuplicate)
	assert.Equal(t, model.NoticePendiente, resp.Status)
}

func TestNoticeList_ResolvesEquipmentThroughHierarchy(t *testing.T) {
	notices, orders, taxonomy, svc := newNoticeFixture()

	taxonomy.systems[3] = &model.System{ID: 3, Name: "Hidraulico", EquipmentID: 9}
	taxonomy.components[5] = &model.Component{ID: 5, Name: "Bomba", SystemID: 3}

	notices.notices[1] = &model.MaintenanceNotice{ID: 1, ComponentID: uintPtr(5), Status: model.NoticePendiente}

	// Two closed corrective orders on equipment 9 feed the failure count.
	corr := model.MaintenanceCorrectivo
	orders.orders[1] = &model.WorkOrder{ID: 1, EquipmentID: uintPtr(9), Status: model.OTCerrada, MaintenanceType: &corr}
	orders.orders[2] = &model.WorkOrder{ID: 2, EquipmentID: uintPtr(9), Status: model.OTCerrada, MaintenanceType: &corr}

	items, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NotNil(t, items[0].ResolvedEquipmentID)
	assert.Equal(t, uint(9), *items[0].ResolvedEquipmentID)
	assert.Equal(t, int64(2), items[0].FailureCount)
	assert.Equal(t, "-", items[0].FailureMode)
}

func TestNoticeUpdate_NotFound(t *testing.T) {
	_, _, _, svc := newNoticeFixture()

	_, err := svc.Update(context.Background(), 42, dto.UpdateNoticeRequest{})

	var nfe *NotFoundError
	require.ErrorAs(t, err, &nfe)
	assert.Equal(t, "Aviso", nfe.Entity)
}
