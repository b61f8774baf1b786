package teamgraph

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scholargraph/teamgraph/pkg/config"
	"github.com/scholargraph/teamgraph/pkg/formation"
)

func testConfig() *config.Config {
	return &config.Config{
		Formation: config.FormationConfig{
			MaxDistance:       3,
			InitialDistance:   2,
			MaxIncrease:       5,
			CohesionWeight:    0.7,
			DistanceWeight:    0.3,
			TimeThreshold:     5,
			NullYearsOption:   1,
			SortOrder:         "citation_first",
			UseOrgConnections: true,
		},
		Database: config.DatabaseConfig{MaxConcurrentQueries: 10},
	}
}

func TestOptionsFromConfigDefaults(t *testing.T) {
	c := &Client{config: testConfig()}

	opts := c.options(FormRequest{})
	assert.Equal(t, 5, opts.TimeThreshold)
	assert.Equal(t, formation.NullYearsTooOld, opts.NullYears)
	assert.Equal(t, formation.SortCitationFirst, opts.SortOrder)
	assert.False(t, opts.DisableOrgConnections)
	assert.Equal(t, 10, opts.MaxConcurrentScores)
}

func TestOptionsRequestOverrides(t *testing.T) {
	cfg := testConfig()
	cfg.Formation.UseOrgConnections = false
	c := &Client{config: cfg}

	opts := c.options(FormRequest{
		TimeThreshold:   10,
		NullYearsOption: 3,
		SortOrder:       "recency_first",
		ExcludedIDs:     []string{"A1"},
		RandSeed:        42,
	})
	assert.Equal(t, 10, opts.TimeThreshold)
	assert.Equal(t, formation.NullYearsRandom, opts.NullYears)
	assert.Equal(t, formation.SortRecencyFirst, opts.SortOrder)
	assert.True(t, opts.DisableOrgConnections)
	assert.Equal(t, []string{"A1"}, opts.ExcludedIDs)
	assert.Equal(t, int64(42), opts.RandSeed)
}

func TestNewLogger(t *testing.T) {
	logger := NewLogger(config.LogConfig{Level: "debug", Format: "json"})
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(nil, slog.LevelDebug))

	logger = NewLogger(config.LogConfig{Level: "warn"})
	assert.False(t, logger.Enabled(nil, slog.LevelInfo))
}

func TestNewRequiresConfig(t *testing.T) {
	_, err := New(context.Background(), nil)
	assert.Error(t, err)
}
