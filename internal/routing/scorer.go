package routing

import (
	"math"

	"github.com/safewalk/safewalk-backend-go/internal/models"
	"github.com/safewalk/safewalk-backend-go/internal/risk"
	"github.com/safewalk/safewalk-backend-go/internal/spatial"
)

// Sampling caps keep scoring cheap on long geometries
const (
	maxRiskSamples     = 60
	maxSeveritySamples = 300
)

// Scorer evaluates route geometries against a risk index
type Scorer struct {
	idx *risk.Index
}

// NewScorer creates a scorer over the given index handle
func NewScorer(idx *risk.Index) *Scorer {
	return &Scorer{idx: idx}
}

// Index returns the underlying index handle
func (s *Scorer) Index() *risk.Index {
	return s.idx
}

// AverageRisk subsamples the route at a bounded stride and returns the mean
// normalized risk of the samples. Empty routes score 0.0.
func (s *Scorer) AverageRisk(geom []models.Coordinate, window models.TimeWindow) float64 {
	n := len(geom)
	if n == 0 {
		return 0.0
	}

	stride := n / maxRiskSamples
	if stride < 1 {
		stride = 1
	}

	total := 0.0
	count := 0
	for i := 0; i < n; i += stride {
		total += s.idx.Risk(window, geom[i].Lat, geom[i].Lon)
		count++
	}

	return total / float64(count)
}

// WorstVertex scans every vertex (no subsampling; the detour proposer needs
// the true worst point) and returns the first vertex achieving the maximum
// risk. Returns ok=false for an empty route.
func (s *Scorer) WorstVertex(geom []models.Coordinate, window models.TimeWindow) (index int, riskVal float64, coord models.Coordinate, ok bool) {
	if len(geom) == 0 {
		return 0, 0, models.Coordinate{}, false
	}

	index, riskVal, coord = 0, -1.0, geom[0]
	for i, c := range geom {
		r := s.idx.Risk(window, c.Lat, c.Lon)
		if r > riskVal {
			index, riskVal, coord = i, r, c
		}
	}

	return index, riskVal, coord, true
}

// SeverityForRoute sums integer severities of all index cells within a bin
// radius of the sampled route, counting each cell at most once across the
// whole route. Returns the total and a per-km rate.
func (s *Scorer) SeverityForRoute(geom []models.Coordinate, distKm float64, window models.TimeWindow, bufferM float64) (int, float64) {
	n := len(geom)
	if n == 0 || s.idx.WindowCellCount(window) == 0 {
		return 0, 0.0
	}

	stride := n / maxSeveritySamples
	if stride < 1 {
		stride = 1
	}

	cellDeg := s.idx.CellSizeDeg()
	cellM := spatial.ApproxCellSizeMeters(cellDeg, spatial.ReferenceLatitude)
	// Radius in bins; a zero buffer counts only the cells directly under the samples
	radius := int(math.Ceil(bufferM / math.Max(1.0, cellM)))

	seen := make(map[string]struct{})
	total := 0

	for i := 0; i < n; i += stride {
		latBin, lonBin := spatial.BinFor(geom[i].Lat, geom[i].Lon, cellDeg)
		for di := -radius; di <= radius; di++ {
			for dj := -radius; dj <= radius; dj++ {
				nbLat := latBin + float64(di)*cellDeg
				nbLon := lonBin + float64(dj)*cellDeg
				key := spatial.CellKey(nbLat, nbLon)
				if _, dup := seen[key]; dup {
					continue
				}
				if e, ok := s.idx.LookupBin(window, nbLat, nbLon); ok {
					total += e.Severity
					seen[key] = struct{}{}
				}
			}
		}
	}

	perKm := float64(total) / math.Max(distKm, 1e-6)
	return total, perKm
}
