package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/safewalk/safewalk-backend-go/internal/database"
	"github.com/safewalk/safewalk-backend-go/internal/models"
)

// RiskRepository handles persistence of the built risk index
type RiskRepository struct {
	db *sql.DB
}

// NewRiskRepository creates a new risk repository
func NewRiskRepository(db *sql.DB) *RiskRepository {
	return &RiskRepository{db: db}
}

// EnsureSchema creates the risk_cells table if it does not exist
func (r *RiskRepository) EnsureSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS risk_cells (
			window TEXT NOT NULL,
			lat_bin REAL NOT NULL,
			lon_bin REAL NOT NULL,
			risk REAL NOT NULL,
			sev_sum INTEGER NOT NULL,
			n INTEGER NOT NULL,
			PRIMARY KEY (window, lat_bin, lon_bin)
		)
	`
	if _, err := r.db.Exec(query); err != nil {
		return fmt.Errorf("failed to create risk_cells table: %w", err)
	}
	return nil
}

// ReplaceAll swaps the persisted index for a new builder run atomically
func (r *RiskRepository) ReplaceAll(cells []models.RiskCell) error {
	return database.Transaction(func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM risk_cells"); err != nil {
			return fmt.Errorf("failed to clear risk_cells: %w", err)
		}

		stmt, err := tx.Prepare(`INSERT INTO risk_cells (window, lat_bin, lon_bin, risk, sev_sum, n)
			VALUES (?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, c := range cells {
			if _, err := stmt.Exec(string(c.Window), c.LatBin, c.LonBin, c.Risk, c.SevSum, c.Count); err != nil {
				return fmt.Errorf("failed to insert risk cell: %w", err)
			}
		}

		return nil
	})
}

// LoadAll reads every persisted risk cell
func (r *RiskRepository) LoadAll() ([]models.RiskCell, error) {
	rows, err := r.db.Query(`SELECT window, lat_bin, lon_bin, risk, sev_sum, n FROM risk_cells`)
	if err != nil {
		return nil, fmt.Errorf("failed to query risk cells: %w", err)
	}
	defer rows.Close()

	return scanCells(rows)
}

// List retrieves risk cells with filtering for the API surface
func (r *RiskRepository) List(filter models.RiskCellFilter) ([]models.RiskCell, error) {
	query := `SELECT window, lat_bin, lon_bin, risk, sev_sum, n FROM risk_cells`

	var conditions []string
	var args []interface{}

	if filter.Window != "" {
		conditions = append(conditions, "window = ?")
		args = append(args, filter.Window)
	}
	if filter.MinLat != 0 {
		conditions = append(conditions, "lat_bin >= ?")
		args = append(args, filter.MinLat)
	}
	if filter.MaxLat != 0 {
		conditions = append(conditions, "lat_bin <= ?")
		args = append(args, filter.MaxLat)
	}
	if filter.MinLon != 0 {
		conditions = append(conditions, "lon_bin >= ?")
		args = append(args, filter.MinLon)
	}
	if filter.MaxLon != 0 {
		conditions = append(conditions, "lon_bin <= ?")
		args = append(args, filter.MaxLon)
	}
	if filter.MinRisk > 0 {
		conditions = append(conditions, "risk >= ?")
		args = append(args, filter.MinRisk)
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	// Hottest cells first
	query += " ORDER BY risk DESC, sev_sum DESC"

	limit := filter.Limit
	if limit <= 0 || limit > 10000 {
		limit = 10000
	}
	query += fmt.Sprintf(" LIMIT %d", limit)

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query risk cells: %w", err)
	}
	defer rows.Close()

	return scanCells(rows)
}

func scanCells(rows *sql.Rows) ([]models.RiskCell, error) {
	var cells []models.RiskCell
	for rows.Next() {
		var c models.RiskCell
		var window string
		if err := rows.Scan(&window, &c.LatBin, &c.LonBin, &c.Risk, &c.SevSum, &c.Count); err != nil {
			return nil, fmt.Errorf("failed to scan risk cell: %w", err)
		}
		c.Window = models.TimeWindow(window)
		cells = append(cells, c)
	}
	return cells, rows.Err()
}
