package models

// WindowRiskStats summarizes the risk distribution of one time window
type WindowRiskStats struct {
	Window        string  `json:"window"`
	Cells         int     `json:"cells"`
	SeverityTotal int     `json:"severity_total"`
	MinRisk       float64 `json:"min_risk"`
	MeanRisk      float64 `json:"mean_risk"`
	MaxRisk       float64 `json:"max_risk"`
	P50Risk       float64 `json:"p50_risk"`
	P90Risk       float64 `json:"p90_risk"`

	// How evenly severity mass spreads across cells, 0-1
	SeverityEntropy float64 `json:"severity_entropy"`
	// Agreement between the normalized risk surface and the integer severity sums
	RiskSeverityCorr float64 `json:"risk_severity_corr"`

	// Coverage bounding box over cell origins
	MinLat float64 `json:"min_lat"`
	MinLon float64 `json:"min_lon"`
	MaxLat float64 `json:"max_lat"`
	MaxLon float64 `json:"max_lon"`
}
