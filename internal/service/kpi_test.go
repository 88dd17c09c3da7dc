package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestComputeKPI_CorrectiveFailures(t *testing.T) {
	ots := []KPIOTInput{
		{MaintenanceType: "Correctivo", RealDuration: 10, Cost: 150.555},
		{MaintenanceType: "Correctivo", RealDuration: 20, Cost: 49.444},
		{MaintenanceType: "Preventivo", RealDuration: 8, Cost: 30},
	}

	res := computeKPI(ots, defaultWindowHours)

	assert.Equal(t, 3, res.OTCount)
	assert.Equal(t, 2, res.Failures)
	// t_down = 30, t_up = 690: preventive hours never count as downtime
	assert.InDelta(t, 345.0, res.MTBF, 1e-9)
	assert.InDelta(t, 15.0, res.MTTR, 1e-9)
	assert.InDelta(t, 95.83, res.Availability, 1e-9)
	assert.InDelta(t, 230.0, res.Cost, 1e-9)
}

func TestComputeKPI_NoFailures(t *testing.T) {
	ots := []KPIOTInput{{MaintenanceType: "Preventivo", RealDuration: 5, Cost: 10}}

	res := computeKPI(ots, defaultWindowHours)

	assert.Equal(t, 0, res.Failures)
	assert.InDelta(t, defaultWindowHours, res.MTBF, 1e-9)
	assert.InDelta(t, 0.0, res.MTTR, 1e-9)
	assert.InDelta(t, 100.0, res.Availability, 1e-9)
}

func TestComputeKPI_DowntimeExceedsWindow(t *testing.T) {
	ots := []KPIOTInput{{MaintenanceType: "Correctivo", RealDuration: 1000}}

	res := computeKPI(ots, defaultWindowHours)

	// t_up clamps at zero instead of going negative
	assert.InDelta(t, 0.0, res.MTBF, 1e-9)
	assert.InDelta(t, 1000.0, res.MTTR, 1e-9)
	assert.InDelta(t, 0.0, res.Availability, 1e-9)
}

func TestWindowHours(t *testing.T) {
	assert.InDelta(t, 240.0, windowHours("2026-03-01", "2026-03-11"), 1e-9)
	assert.InDelta(t, defaultWindowHours, windowHours("", ""), 1e-9)
	assert.InDelta(t, defaultWindowHours, windowHours("not-a-date", "2026-03-11"), 1e-9)
	// inverted range falls back too
	assert.InDelta(t, defaultWindowHours, windowHours("2026-03-11", "2026-03-01"), 1e-9)
}

func TestInWindow(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	date := func(s string) *string { return &s }

	t.Run("missing end date always counts", func(t *testing.T) {
		assert.True(t, inWindow(nil, &start, &end))
		assert.True(t, inWindow(date(""), &start, &end))
	})

	t.Run("unparseable end date always counts", func(t *testing.T) {
		assert.True(t, inWindow(date("garbage"), &start, &end))
	})

	t.Run("each bound applies independently", func(t *testing.T) {
		assert.True(t, inWindow(date("2026-01-15"), &start, nil))
		assert.False(t, inWindow(date("2025-12-15"), &start, nil))
		assert.True(t, inWindow(date("2025-12-15"), nil, &end))
		assert.False(t, inWindow(date("2026-02-15"), nil, &end))
	})

	t.Run("inside both bounds", func(t *testing.T) {
		assert.True(t, inWindow(date("2026-01-15"), &start, &end))
		assert.False(t, inWindow(date("2026-02-15"), &start, &end))
	})
}
