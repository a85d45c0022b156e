package models

import "time"

// IncidentRecord is a single crime report consumed by the risk builder.
// Ephemeral: only the aggregated grid survives into the runtime index.
type IncidentRecord struct {
	Category string
	Time     time.Time
	Lat      float64
	Lon      float64
}
