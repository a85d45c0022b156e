package risk

import (
	"github.com/safewalk/safewalk-backend-go/internal/models"
	"github.com/safewalk/safewalk-backend-go/internal/spatial"
)

// Entry is the per-cell payload of the index
type Entry struct {
	Risk     float64 // min-max normalized within the window, 0-1
	Severity int     // integer severity sum, unnormalized
}

// Index is the in-memory spatial risk lookup. It is immutable after
// construction; concurrent reads need no locking.
type Index struct {
	cellDeg float64
	cells   map[models.TimeWindow]map[string]Entry
}

// NewIndex builds an index handle from persisted risk cells.
// Duplicate (window, cell) rows are aggregated.
func NewIndex(cellDeg float64, cells []models.RiskCell) *Index {
	idx := &Index{
		cellDeg: cellDeg,
		cells:   make(map[models.TimeWindow]map[string]Entry),
	}
	for _, w := range models.Windows() {
		idx.cells[w] = make(map[string]Entry)
	}

	for _, c := range cells {
		byKey, ok := idx.cells[c.Window]
		if !ok {
			continue // unknown window label in the store
		}
		key := spatial.CellKey(c.LatBin, c.LonBin)
		e := byKey[key]
		if c.Risk > e.Risk {
			e.Risk = c.Risk
		}
		e.Severity += c.SevSum
		byKey[key] = e
	}

	return idx
}

// Empty returns an index with no cells; every lookup reports no data
func Empty(cellDeg float64) *Index {
	return NewIndex(cellDeg, nil)
}

// CellSizeDeg returns the grid cell edge the index was built with
func (idx *Index) CellSizeDeg() float64 {
	return idx.cellDeg
}

// Lookup returns the entry covering the coordinate, or ok=false when the
// cell is absent. Callers choose the zero default explicitly.
func (idx *Index) Lookup(w models.TimeWindow, lat, lon float64) (Entry, bool) {
	byKey, ok := idx.cells[w]
	if !ok {
		return Entry{}, false
	}
	e, ok := byKey[spatial.CellKeyFor(lat, lon, idx.cellDeg)]
	return e, ok
}

// LookupBin returns the entry for an exact bin origin, or ok=false
func (idx *Index) LookupBin(w models.TimeWindow, latBin, lonBin float64) (Entry, bool) {
	byKey, ok := idx.cells[w]
	if !ok {
		return Entry{}, false
	}
	e, ok := byKey[spatial.CellKey(latBin, lonBin)]
	return e, ok
}

// Risk returns the normalized risk at a coordinate, 0.0 for uncovered cells.
// Uncovered area is assumed safe; this is the documented default, not an error.
func (idx *Index) Risk(w models.TimeWindow, lat, lon float64) float64 {
	e, ok := idx.Lookup(w, lat, lon)
	if !ok {
		return 0.0
	}
	return e.Risk
}

// Severity returns the severity sum at a coordinate, 0 for uncovered cells
func (idx *Index) Severity(w models.TimeWindow, lat, lon float64) int {
	e, ok := idx.Lookup(w, lat, lon)
	if !ok {
		return 0
	}
	return e.Severity
}

// WindowCellCount returns the number of cells indexed for a window
func (idx *Index) WindowCellCount(w models.TimeWindow) int {
	return len(idx.cells[w])
}
