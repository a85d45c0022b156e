package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/safewalk/safewalk-backend-go/internal/database"
	"github.com/safewalk/safewalk-backend-go/internal/models"
	"github.com/safewalk/safewalk-backend-go/internal/repository"
	"github.com/safewalk/safewalk-backend-go/internal/risk"
	"github.com/safewalk/safewalk-backend-go/internal/spatial"
)

func main() {
	input := flag.String("input", "./data/crimedata.csv", "raw incident CSV (projected X/Y coordinates)")
	dbPath := flag.String("db", "./data/risk/risk.db", "output risk index database")
	cellSize := flag.Float64("cell", spatial.DefaultCellSizeDeg, "grid cell size in degrees")
	decayDays := flag.Float64("decay", 90, "recency decay e-folding time in days")
	utmZone := flag.Int("zone", 10, "UTM zone of the raw coordinates")
	flag.Parse()

	f, err := os.Open(*input)
	if err != nil {
		log.Fatal("Failed to open input:", err)
	}
	defer f.Close()

	records, skipped, err := risk.ParseIncidentsCSV(f, *utmZone)
	if err != nil {
		log.Fatal("Failed to parse incidents:", err)
	}
	log.Printf("Parsed %d incidents (%d malformed rows skipped)", len(records), skipped)

	cells := risk.BuildIndex(records, risk.BuilderConfig{
		CellSizeDeg: *cellSize,
		DecayDays:   *decayDays,
		UTMZone:     *utmZone,
	})

	if err := os.MkdirAll(filepath.Dir(*dbPath), 0o755); err != nil {
		log.Fatal("Failed to create output directory:", err)
	}
	if err := database.Init(database.Config{Path: *dbPath}); err != nil {
		log.Fatal("Failed to open output database:", err)
	}
	defer database.Close()

	repo := repository.NewRiskRepository(database.GetDB())
	if err := repo.EnsureSchema(); err != nil {
		log.Fatal("Failed to create schema:", err)
	}
	if err := repo.ReplaceAll(cells); err != nil {
		log.Fatal("Failed to persist risk cells:", err)
	}

	perWindow := make(map[models.TimeWindow]int)
	for _, c := range cells {
		perWindow[c.Window]++
	}
	for _, w := range models.Windows() {
		log.Printf("  %-8s %d cells", w, perWindow[w])
	}
	log.Printf("Wrote %d risk cells to %s", len(cells), *dbPath)
}
