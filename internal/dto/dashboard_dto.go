package dto

// DashboardStats is the cached landing-page summary: headline counters, chart
// series and the latest activity.
type DashboardStats struct {
	KPI    DashboardKPI    `json:"kpi"`
	Charts DashboardCharts `json:"charts"`
	Recent []RecentOT      `json:"recent"`
}

type DashboardKPI struct {
	OpenOTs        int64 `json:"open_ots"`
	PendingNotices int64 `json:"pending_notices"`
	ClosedOTs      int64 `json:"closed_ots"`
	ActiveTechs    int64 `json:"active_techs"`
}

type DashboardCharts struct {
	Status   map[string]int64   `json:"status"`
	Types    map[string]int64   `json:"types"`
	Failures []FailureModeCount `json:"failures"`
}

type FailureModeCount struct {
	Mode  string `json:"mode"`
	Count int64  `json:"count"`
}

type RecentOT struct {
	Code        string  `json:"code"`
	Date        string  `json:"date"`
	Description *string `json:"description"`
	Status      string  `json:"status"`
}
