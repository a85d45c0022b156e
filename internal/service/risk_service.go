package service

import (
	"errors"
	"log"

	"github.com/safewalk/safewalk-backend-go/internal/models"
	"github.com/safewalk/safewalk-backend-go/internal/repository"
	"github.com/safewalk/safewalk-backend-go/internal/risk"
	"github.com/safewalk/safewalk-backend-go/internal/spatial"
	"github.com/safewalk/safewalk-backend-go/internal/stats"
)

// RiskService exposes the risk index for lookups, visualization, and reload
type RiskService struct {
	repo    *repository.RiskRepository
	index   *risk.Holder
	cellDeg float64
}

// NewRiskService creates a new risk service
func NewRiskService(repo *repository.RiskRepository, index *risk.Holder, cellDeg float64) *RiskService {
	return &RiskService{repo: repo, index: index, cellDeg: cellDeg}
}

// PointRisk looks up the cell covering a coordinate. found=false means the
// area is uncovered, which callers treat as zero risk, not as an error.
func (s *RiskService) PointRisk(window models.TimeWindow, lat, lon float64) (riskVal float64, severity int, found bool) {
	e, ok := s.index.Current().Lookup(window, lat, lon)
	return e.Risk, e.Severity, ok
}

// ListCells retrieves persisted risk cells with filtering
func (s *RiskService) ListCells(filter models.RiskCellFilter) ([]models.RiskCell, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.List(filter)
}

// Heatmap returns cell centers with normalized intensity for map rendering
func (s *RiskService) Heatmap(window models.TimeWindow) (*models.HeatmapResponse, error) {
	cells, err := s.ListCells(models.RiskCellFilter{Window: string(window)})
	if err != nil {
		return nil, err
	}

	half := s.cellDeg / 2
	points := make([]models.HeatmapPoint, 0, len(cells))
	maxValue := 0
	for _, c := range cells {
		points = append(points, models.HeatmapPoint{
			Lat:       c.LatBin + half,
			Lng:       c.LonBin + half,
			Intensity: c.Risk,
			Value:     c.SevSum,
		})
		if c.SevSum > maxValue {
			maxValue = c.SevSum
		}
	}

	return &models.HeatmapResponse{
		Points:   points,
		Count:    len(points),
		MaxValue: maxValue,
		Window:   string(window),
	}, nil
}

// Stats summarizes the risk distribution per window
func (s *RiskService) Stats() ([]models.WindowRiskStats, error) {
	var cells []models.RiskCell
	if s.repo != nil {
		var err error
		cells, err = s.repo.LoadAll()
		if err != nil {
			return nil, err
		}
	}

	byWindow := make(map[models.TimeWindow][]models.RiskCell)
	for _, c := range cells {
		byWindow[c.Window] = append(byWindow[c.Window], c)
	}

	summary := make([]models.WindowRiskStats, 0, len(models.Windows()))
	for _, w := range models.Windows() {
		wc := byWindow[w]
		ws := models.WindowRiskStats{Window: string(w), Cells: len(wc)}
		if len(wc) > 0 {
			risks := make([]float64, len(wc))
			sevs := make([]float64, len(wc))
			origins := make([]spatial.Point, len(wc))
			for i, c := range wc {
				risks[i] = c.Risk
				sevs[i] = float64(c.SevSum)
				origins[i] = spatial.Point{Lat: c.LatBin, Lon: c.LonBin}
				ws.SeverityTotal += c.SevSum
			}

			ws.MinRisk = stats.Min(risks)
			ws.MeanRisk = stats.Mean(risks)
			ws.MaxRisk = stats.Max(risks)
			ws.P50Risk = stats.Percentile(risks, 50)
			ws.P90Risk = stats.Percentile(risks, 90)
			ws.SeverityEntropy = stats.NormalizedEntropy(sevs)
			ws.RiskSeverityCorr = stats.PearsonCorrelation(risks, sevs)
			ws.MinLat, ws.MinLon, ws.MaxLat, ws.MaxLon = spatial.BoundingBox(origins)
		}
		summary = append(summary, ws)
	}

	return summary, nil
}

// Reload rebuilds the in-memory index from the persisted cells and swaps it
// in atomically. In-flight requests keep their old handle.
func (s *RiskService) Reload() (int, error) {
	if s.repo == nil {
		return 0, errors.New("risk store is unavailable")
	}
	cells, err := s.repo.LoadAll()
	if err != nil {
		return 0, err
	}

	s.index.Swap(risk.NewIndex(s.cellDeg, cells))
	log.Printf("Risk index reloaded: %d cells", len(cells))
	return len(cells), nil
}
