package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/safewalk/safewalk-backend-go/internal/database"
	"github.com/safewalk/safewalk-backend-go/internal/models"
)

// The database package holds a process-wide connection, so all repository
// subtests share one store and run in order.
func TestRiskRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "risk.db")
	require.NoError(t, database.Init(database.Config{Path: path}))

	repo := NewRiskRepository(database.GetDB())
	require.NoError(t, repo.EnsureSchema())

	seed := []models.RiskCell{
		{Window: models.WindowDay, LatBin: 49.2800, LonBin: -123.1200, Risk: 1.0, SevSum: 9, Count: 4},
		{Window: models.WindowDay, LatBin: 49.2816, LonBin: -123.1200, Risk: 0.4, SevSum: 2, Count: 1},
		{Window: models.WindowNight, LatBin: 49.2800, LonBin: -123.1200, Risk: 0.7, SevSum: 5, Count: 2},
	}

	t.Run("replace and load round-trip", func(t *testing.T) {
		require.NoError(t, repo.ReplaceAll(seed))

		cells, err := repo.LoadAll()
		require.NoError(t, err)
		assert.ElementsMatch(t, seed, cells)
	})

	t.Run("replace drops previous contents", func(t *testing.T) {
		require.NoError(t, repo.ReplaceAll(seed[:1]))

		cells, err := repo.LoadAll()
		require.NoError(t, err)
		assert.Equal(t, seed[:1], cells)

		require.NoError(t, repo.ReplaceAll(seed))
	})

	t.Run("list filters by window", func(t *testing.T) {
		cells, err := repo.List(models.RiskCellFilter{Window: string(models.WindowNight)})
		require.NoError(t, err)

		require.Len(t, cells, 1)
		assert.Equal(t, models.WindowNight, cells[0].Window)
	})

	t.Run("list filters by minimum risk", func(t *testing.T) {
		cells, err := repo.List(models.RiskCellFilter{MinRisk: 0.5})
		require.NoError(t, err)

		require.Len(t, cells, 2)
		for _, c := range cells {
			assert.GreaterOrEqual(t, c.Risk, 0.5)
		}
	})

	t.Run("list orders hottest first and honors the limit", func(t *testing.T) {
		cells, err := repo.List(models.RiskCellFilter{Limit: 2})
		require.NoError(t, err)

		require.Len(t, cells, 2)
		assert.Equal(t, 1.0, cells[0].Risk)
		assert.Equal(t, 0.7, cells[1].Risk)
	})

	t.Run("list bounding box", func(t *testing.T) {
		cells, err := repo.List(models.RiskCellFilter{
			MinLat: 49.2810, MaxLat: 49.2900,
			MinLon: -123.1300, MaxLon: -123.1100,
		})
		require.NoError(t, err)

		require.Len(t, cells, 1)
		assert.Equal(t, 49.2816, cells[0].LatBin)
	})
}
