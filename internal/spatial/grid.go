package spatial

import (
	"fmt"
	"math"
)

// DefaultCellSizeDeg is the grid cell edge in degrees (~175 m at Vancouver latitude).
// Builder and scorer must agree on this value or index lookups silently miss.
const DefaultCellSizeDeg = 0.0016

// ReferenceLatitude is used when approximating cell size in meters
const ReferenceLatitude = 49.28

// BinFor floors a coordinate to the lower-left corner of its containing cell.
// The flooring must be identical on the build and query paths; any drift in
// rounding semantics breaks lookups without an error.
func BinFor(lat, lon, cellDeg float64) (latBin, lonBin float64) {
	latBin = math.Floor(lat/cellDeg) * cellDeg
	lonBin = math.Floor(lon/cellDeg) * cellDeg
	return
}

// CellKey encodes a bin origin as a stable fixed-precision string so that
// equal bins always produce identical keys regardless of float accumulation.
func CellKey(latBin, lonBin float64) string {
	return fmt.Sprintf("%.6f_%.6f", latBin, lonBin)
}

// CellKeyFor is a convenience combining BinFor and CellKey
func CellKeyFor(lat, lon, cellDeg float64) string {
	latBin, lonBin := BinFor(lat, lon, cellDeg)
	return CellKey(latBin, lonBin)
}

// ApproxCellSizeMeters returns the conservative (smaller) edge length of a
// cell in meters at the given latitude
func ApproxCellSizeMeters(cellDeg, latDeg float64) float64 {
	mPerDegLat := 111320.0
	mPerDegLon := 111320.0 * math.Cos(latDeg*math.Pi/180)
	return math.Min(mPerDegLat, mPerDegLon) * cellDeg
}
