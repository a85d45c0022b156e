package models

// HeatmapPoint represents a single risk cell center in the heatmap
type HeatmapPoint struct {
	Lat       float64 `json:"lat"`       // Cell center latitude
	Lng       float64 `json:"lng"`       // Cell center longitude
	Intensity float64 `json:"intensity"` // Normalized risk 0-1
	Value     int     `json:"value"`     // Raw severity sum
}

// HeatmapResponse represents the risk heatmap API response
type HeatmapResponse struct {
	Points   []HeatmapPoint `json:"points"`
	Count    int            `json:"count"`
	MaxValue int            `json:"max_value"`
	Window   string         `json:"window"`
}
