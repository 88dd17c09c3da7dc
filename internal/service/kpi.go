package service

import (
	"math"
	"time"
)

// Reliability KPI core. Pure functions so MTBF/MTTR/availability math is
// testable without a database.

// defaultWindowHours is used when the analysis window cannot be derived from
// the filter dates (30 days).
const defaultWindowHours = 720.0

// KPIOTInput is one closed work order attributed to a group.
type KPIOTInput struct {
	MaintenanceType string
	RealDuration    float64 // hours; missing durations come in as 0
	Cost            float64
}

// KPIResult is the aggregate for one group (area, line or equipment).
type KPIResult struct {
	Cost         float64
	Failures     int
	MTBF         float64
	MTTR         float64
	Availability float64
	OTCount      int
}

// windowHours derives the total analysis time from the filter dates. Both
// dates must parse; anything else falls back to 720 h.
func windowHours(startDate, endDate string) float64 {
	start, err1 := parseISODate(startDate)
	end, err2 := parseISODate(endDate)
	if err1 != nil || err2 != nil {
		return defaultWindowHours
	}
	hours := end.Sub(start).Hours()
	if hours <= 0 {
		return defaultWindowHours
	}
	return hours
}

// parseISODate accepts both plain dates and full ISO timestamps.
func parseISODate(s string) (time.Time, error) {
	if len(s) >= 10 {
		if t, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return t, nil
		}
	}
	return time.Parse(time.RFC3339, s)
}

// inWindow reports whether a work order belongs to the analysis window. Each
// bound applies independently, and only rows with a real end date that parses
// and falls outside are excluded; rows without one always count.
func inWindow(realEndDate *string, start, end *time.Time) bool {
	if realEndDate == nil || *realEndDate == "" {
		return true
	}
	t, err := parseISODate(*realEndDate)
	if err != nil {
		return true
	}
	if start != nil && t.Before(*start) {
		return false
	}
	if end != nil && t.After(*end) {
		return false
	}
	return true
}

// computeKPI aggregates one group. Corrective orders count as failures and
// their durations as downtime. All divisions are guarded with the documented
// fallbacks (MTBF = t_up when no failures, availability = 100 when idle).
func computeKPI(ots []KPIOTInput, totalHours float64) KPIResult {
	var res KPIResult
	res.OTCount = len(ots)

	tDown := 0.0
	for _, ot := range ots {
		res.Cost += ot.Cost
		if ot.MaintenanceType == "Correctivo" {
			res.Failures++
			tDown += ot.RealDuration
		}
	}

	tUp := totalHours - tDown
	if tUp < 0 {
		tUp = 0
	}

	mtbf := tUp
	if res.Failures > 0 {
		mtbf = tUp / float64(res.Failures)
	}
	mttr := 0.0
	if res.Failures > 0 {
		mttr = tDown / float64(res.Failures)
	}
	availability := 100.0
	if mtbf+mttr > 0 {
		availability = 100.0 * mtbf / (mtbf + mttr)
	}

	res.Cost = round2(res.Cost)
	res.MTBF = round1(mtbf)
	res.MTTR = round1(mttr)
	res.Availability = round2(availability)
	return res
}

func round1(v float64) float64 { return math.Round(v*10) / 10 }
func round2(v float64) float64 { return math.Round(v*100) / 100 }
