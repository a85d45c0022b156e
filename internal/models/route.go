package models

// Coordinate is a WGS84 position
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DirectionsRoute is one alternative returned by the external directions service
type DirectionsRoute struct {
	Geometry       []Coordinate
	DistanceMeters float64
}

// Candidate origin tags
const (
	OriginDirect = "original"
	OriginDetour = "detour"
)

// CandidateRoute is one scored route alternative considered by the selector
type CandidateRoute struct {
	Origin     string
	Score      float64
	DistanceKm float64
	AvgRisk    float64
	Geometry   []Coordinate
}

// ScoredRoute is the final selection returned to the caller
type ScoredRoute struct {
	Geometry      []Coordinate `json:"geometry"`
	DistanceKm    float64      `json:"distance_km"`
	AvgRisk       float64      `json:"avg_risk"`
	SeverityScore int          `json:"safety_score"` // integer severity sum within the buffer
	CrimesPerKm   float64      `json:"crimes_per_km"`
	DetourUsed    bool         `json:"detour_used"`
}

// RouteRequest is the caller-facing request for POST /route/addresses.
// The tuning knobs are pointers so an absent field is distinguishable from
// an explicit zero: alpha 0 (ignore risk) and risk_threshold 0 (always try
// a detour) are both legal requests.
type RouteRequest struct {
	StartAddress  string   `json:"start_address" binding:"required"`
	EndAddress    string   `json:"end_address" binding:"required"`
	TimeWindow    string   `json:"time_window" binding:"omitempty,oneof=day evening night"`
	Alpha         *float64 `json:"alpha" binding:"omitempty,gte=0,lte=5"`
	RiskThreshold *float64 `json:"risk_threshold" binding:"omitempty,gte=0,lte=1"`
	DetourOffsetM *float64 `json:"detour_offset_m" binding:"omitempty,gte=50,lte=600"`
	BufferM       *float64 `json:"buffer_m" binding:"omitempty,gte=40,lte=400"`
}

// ApplyDefaults fills absent request fields with the service defaults.
// Fields the caller set, zero included, are left alone.
func (r *RouteRequest) ApplyDefaults() {
	if r.TimeWindow == "" {
		r.TimeWindow = string(WindowDay)
	}
	if r.Alpha == nil {
		v := 1.0
		r.Alpha = &v
	}
	if r.RiskThreshold == nil {
		v := 0.35
		r.RiskThreshold = &v
	}
	if r.DetourOffsetM == nil {
		v := 220.0
		r.DetourOffsetM = &v
	}
	if r.BufferM == nil {
		v := 120.0
		r.BufferM = &v
	}
}
