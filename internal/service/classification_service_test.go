package service

import (
	"context"
	"testing"
	"time"

	"github.com/bryamlazo166/cmms-app/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Recalculation runs synchronously when requested; nothing is queued or
// deferred, and the derived fields are visible as soon as the call returns.
func TestRecalculate_OnDemandPersistsClassification(t *testing.T) {
	repo := newStubWarehouseRepo()
	costHigh, costLow := decimal.NewFromInt(10), decimal.NewFromInt(1)
	repo.items[1] = &model.WarehouseItem{
		ID: 1, Code: "REP-0001", Name: "Rodamiento",
		UnitCost: &costHigh, LeadTime: 10, IsActive: true,
	}
	repo.items[2] = &model.WarehouseItem{
		ID: 2, Code: "REP-0002", Name: "Filtro",
		UnitCost: &costLow, IsActive: true,
	}
	// Usage value 80 vs 20: item 1 closes the 0.80 cumulative cut, item 2
	// carries the tail.
	recent := time.Now().AddDate(0, -2, 0).Format(time.RFC3339)
	repo.movements = append(repo.movements,
		model.WarehouseMovement{ID: 1, ItemID: 1, Quantity: -8, MovementType: model.MovementOut, Date: recent},
		model.WarehouseMovement{ID: 2, ItemID: 2, Quantity: -20, MovementType: model.MovementOut, Date: recent},
	)

	svc := NewClassificationService(repo)
	res, err := svc.Recalculate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, res.ItemsUpdated)
	assert.Equal(t, 1, res.ClassA)

	assert.Equal(t, "A", repo.items[1].ABCClass)
	assert.Equal(t, "C", repo.items[2].ABCClass)
	assert.Greater(t, repo.items[1].ROP, 0)
}

func TestRecalculate_SkipsUnparseableDates(t *testing.T) {
	repo := newStubWarehouseRepo()
	cost := decimal.NewFromInt(5)
	repo.items[1] = &model.WarehouseItem{
		ID: 1, Code: "REP-0001", Name: "Correa",
		UnitCost: &cost, IsActive: true,
	}
	repo.movements = append(repo.movements, model.WarehouseMovement{
		ID: 1, ItemID: 1, Quantity: -4, MovementType: model.MovementOut, Date: "no-es-fecha",
	})

	svc := NewClassificationService(repo)
	res, err := svc.Recalculate(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, res.ItemsUpdated)
	// Broken kardex row is ignored, not fatal; no usage means class A on an
	// all-zero snapshot and no movement history means Z.
	assert.Equal(t, "A", repo.items[1].ABCClass)
	assert.Equal(t, "Z", repo.items[1].XYZClass)
}
