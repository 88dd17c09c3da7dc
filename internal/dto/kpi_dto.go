package dto

// KPIFilter selects the grouping level and the analysis window.
// line_id wins over area_id; with neither, groups are areas.
type KPIFilter struct {
	AreaID    *uint  `form:"area_id"`
	LineID    *uint  `form:"line_id"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

type KPIGroup struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Cost         float64 `json:"cost"`
	Failures     int     `json:"failures"`
	MTBF         float64 `json:"mtbf"`
	MTTR         float64 `json:"mttr"`
	Availability float64 `json:"availability"`
	OTCount      int     `json:"ot_count"`
}

type KPIResponse struct {
	Level  string     `json:"level"` // area | line | equipment
	Groups []KPIGroup `json:"groups"`
}
