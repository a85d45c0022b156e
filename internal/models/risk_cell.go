package models

// RiskCell is one (window, cell) entry of the persisted risk index
type RiskCell struct {
	Window TimeWindow `json:"window" db:"window"`
	LatBin float64    `json:"lat" db:"lat_bin"` // lower-left corner of the cell
	LonBin float64    `json:"lon" db:"lon_bin"`
	Risk   float64    `json:"risk" db:"risk"` // min-max normalized within the window, 0-1
	SevSum int        `json:"sev_sum" db:"sev_sum"`
	Count  int        `json:"n" db:"n"` // incidents aggregated into this cell
}

// RiskCellFilter restricts cell listing queries
type RiskCellFilter struct {
	Window  string  `form:"window"`
	MinLat  float64 `form:"min_lat"`
	MaxLat  float64 `form:"max_lat"`
	MinLon  float64 `form:"min_lon"`
	MaxLon  float64 `form:"max_lon"`
	MinRisk float64 `form:"min_risk"`
	Limit   int     `form:"limit"`
}
