package risk

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/safewalk/safewalk-backend-go/internal/models"
	"github.com/safewalk/safewalk-backend-go/internal/spatial"
)

// BuilderConfig controls the offline index build
type BuilderConfig struct {
	CellSizeDeg float64
	DecayDays   float64 // e-folding time of the recency decay
	UTMZone     int     // zone of the raw planar coordinates
}

// DefaultBuilderConfig matches the deployed Vancouver dataset
func DefaultBuilderConfig() BuilderConfig {
	return BuilderConfig{
		CellSizeDeg: spatial.DefaultCellSizeDeg,
		DecayDays:   90.0,
		UTMZone:     10,
	}
}

// ParseIncidentsCSV reads raw incident rows (TYPE, YEAR, MONTH, DAY, HOUR,
// MINUTE, ..., X, Y with projected coordinates). Malformed rows are skipped,
// never fatal; the skipped count is returned for logging.
func ParseIncidentsCSV(r io.Reader, utmZone int) ([]models.IncidentRecord, int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, 0, nil
	}
	if err != nil {
		return nil, 0, fmt.Errorf("failed to read csv header: %w", err)
	}

	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToUpper(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"TYPE", "YEAR", "MONTH", "DAY", "HOUR", "X", "Y"} {
		if _, ok := col[required]; !ok {
			return nil, 0, fmt.Errorf("csv missing required column %s", required)
		}
	}

	var records []models.IncidentRecord
	skipped := 0

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}

		rec, ok := parseRow(row, col, utmZone)
		if !ok {
			skipped++
			continue
		}
		records = append(records, rec)
	}

	return records, skipped, nil
}

func parseRow(row []string, col map[string]int, utmZone int) (models.IncidentRecord, bool) {
	field := func(name string) string {
		i := col[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	year, err1 := strconv.Atoi(field("YEAR"))
	month, err2 := strconv.Atoi(field("MONTH"))
	day, err3 := strconv.Atoi(field("DAY"))
	hour, err4 := strconv.Atoi(field("HOUR"))
	if err1 != nil || err2 != nil || err3 != nil || err4 != nil {
		return models.IncidentRecord{}, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 || hour < 0 || hour > 23 {
		return models.IncidentRecord{}, false
	}

	x, errX := strconv.ParseFloat(field("X"), 64)
	y, errY := strconv.ParseFloat(field("Y"), 64)
	if errX != nil || errY != nil {
		return models.IncidentRecord{}, false
	}
	// Privacy-redacted rows carry zeroed coordinates
	if x == 0 && y == 0 {
		return models.IncidentRecord{}, false
	}

	lat, lon, err := spatial.UTMToLatLon(x, y, utmZone)
	if err != nil {
		return models.IncidentRecord{}, false
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return models.IncidentRecord{}, false
	}

	return models.IncidentRecord{
		Category: field("TYPE"),
		Time:     time.Date(year, time.Month(month), day, hour, 0, 0, 0, time.UTC),
		Lat:      lat,
		Lon:      lon,
	}, true
}

type cellAgg struct {
	latBin, lonBin float64
	weight         float64
	sevSum         int
	count          int
}

// BuildIndex aggregates incident records into per-(window, cell) risk values.
// Decay is anchored to the newest record in the batch, not wall-clock time,
// so reruns over identical input reproduce identical output. An empty input
// yields an empty result, not an error.
func BuildIndex(records []models.IncidentRecord, cfg BuilderConfig) []models.RiskCell {
	if len(records) == 0 {
		return nil
	}
	if cfg.CellSizeDeg <= 0 {
		cfg.CellSizeDeg = spatial.DefaultCellSizeDeg
	}
	if cfg.DecayDays <= 0 {
		cfg.DecayDays = 90.0
	}

	newest := records[0].Time
	for _, rec := range records[1:] {
		if rec.Time.After(newest) {
			newest = rec.Time
		}
	}

	agg := make(map[models.TimeWindow]map[string]*cellAgg)
	for _, w := range models.Windows() {
		agg[w] = make(map[string]*cellAgg)
	}

	for _, rec := range records {
		window := models.WindowForHour(rec.Time.Hour())

		days := newest.Sub(rec.Time).Hours() / 24
		if days < 0 {
			days = 0
		}
		weight := WeightFor(rec.Category) * math.Exp(-days/cfg.DecayDays)

		latBin, lonBin := spatial.BinFor(rec.Lat, rec.Lon, cfg.CellSizeDeg)
		key := spatial.CellKey(latBin, lonBin)

		c := agg[window][key]
		if c == nil {
			c = &cellAgg{latBin: latBin, lonBin: lonBin}
			agg[window][key] = c
		}
		c.weight += weight
		c.sevSum += PointsFor(rec.Category)
		c.count++
	}

	var cells []models.RiskCell
	for _, window := range models.Windows() {
		byKey := agg[window]
		if len(byKey) == 0 {
			continue
		}

		minW, maxW := math.Inf(1), math.Inf(-1)
		for _, c := range byKey {
			if c.weight < minW {
				minW = c.weight
			}
			if c.weight > maxW {
				maxW = c.weight
			}
		}

		keys := make([]string, 0, len(byKey))
		for k := range byKey {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, k := range keys {
			c := byKey[k]
			// Degenerate window (single cell or all-equal weights): every
			// cell is the hottest, normalize to 1.0 instead of dividing by zero
			risk := 1.0
			if maxW > minW {
				risk = (c.weight - minW) / (maxW - minW)
			}
			cells = append(cells, models.RiskCell{
				Window: window,
				LatBin: c.latBin,
				LonBin: c.lonBin,
				Risk:   risk,
				SevSum: c.sevSum,
				Count:  c.count,
			})
		}
	}

	log.Printf("Built risk index: %d cells from %d incidents (newest %s)",
		len(cells), len(records), newest.Format("2006-01-02"))

	return cells
}
