package cmd

import (
	"testing"

	"github.com/dinesight/dinesight/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Flags use hyphenated names while Config unmarshals underscore keys; the
// explicit per-flag bindings in init() bridge the two. These tests fail if a
// binding is dropped or bound to the wrong key.
func TestSeedFlagsReachConfig(t *testing.T) {
	flags := seedCmd.Flags()
	require.NoError(t, flags.Set("seed", "7"))
	require.NoError(t, flags.Set("restaurants", "9"))
	require.NoError(t, flags.Set("include-media", "true"))
	require.NoError(t, flags.Set("storage-backend", "postgres"))
	require.NoError(t, flags.Set("output-destination", "console"))
	require.NoError(t, flags.Set("parquet-export", "true"))
	require.NoError(t, flags.Set("export-target", "s3"))

	cfg, err := models.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Seed)
	assert.Equal(t, 9, cfg.RestaurantCount)
	assert.True(t, cfg.IncludeMedia)
	assert.Equal(t, "postgres", cfg.StorageBackend)
	assert.Equal(t, "console", cfg.OutputDestination)
	assert.True(t, cfg.ParquetExport)
	assert.Equal(t, "s3", cfg.ExportTarget)
}

func TestMarketfitFlagsReachConfig(t *testing.T) {
	flags := marketfitCmd.Flags()
	require.NoError(t, flags.Set("monthly-revenue", "125000"))
	require.NoError(t, flags.Set("pricing-tier", "scale"))

	cfg, err := models.LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 125000.0, cfg.MonthlyRevenue)
	assert.Equal(t, "scale", cfg.PricingTier)
}
