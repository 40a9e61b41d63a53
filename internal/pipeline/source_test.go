package pipeline_test

import (
	"context"
	"testing"
	"time"

	"github.com/couchcryptid/farm-data-engine/internal/domain"
	"github.com/couchcryptid/farm-data-engine/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetSource_Generate(t *testing.T) {
	src := pipeline.NewDatasetSource(domain.NewBuilder(domain.NewRandom(7), domain.UUIDIDs{}), "North Field")
	date := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	ds, err := src.Generate(context.Background(), date, 10)
	require.NoError(t, err)
	require.Len(t, ds, 10)

	seen := make(map[string]bool)
	for _, r := range ds {
		assert.Equal(t, date, r.Date)
		assert.Equal(t, "North Field", r.FarmName)
		assert.NoError(t, domain.ValidateRecord(r))
		assert.False(t, seen[r.ID], "duplicate id %s", r.ID)
		seen[r.ID] = true
	}
}

func TestDatasetSource_CanceledContext(t *testing.T) {
	src := pipeline.NewDatasetSource(domain.NewBuilder(domain.NewRandom(7), nil), "")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := src.Generate(ctx, time.Now(), 5)
	require.ErrorIs(t, err, context.Canceled)
}
