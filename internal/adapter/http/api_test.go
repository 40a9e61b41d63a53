package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	httpadapter "github.com/couchcryptid/farm-data-engine/internal/adapter/http"
	"github.com/couchcryptid/farm-data-engine/internal/domain"
	"github.com/couchcryptid/farm-data-engine/internal/export"
	"github.com/couchcryptid/farm-data-engine/internal/observability"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAPIServer(t *testing.T) (*httpadapter.Server, *observability.Metrics) {
	t.Helper()
	metrics := observability.NewMetricsForTesting()
	api := httpadapter.NewAPI(httpadapter.APIConfig{FarmName: "Test Farm", MaxDays: 365, CacheSize: 8}, metrics, discardLogger())
	return httpadapter.NewServer(":0", &mockReadiness{}, api, discardLogger()), metrics
}

func decodeDataset(t *testing.T, body []byte) domain.FarmDataset {
	t.Helper()
	var ds domain.FarmDataset
	require.NoError(t, json.Unmarshal(body, &ds))
	return ds
}

func TestDatasets_DefaultsToThirtyJSONRecords(t *testing.T) {
	srv, metrics := newAPIServer(t)
	rec := get(srv, "/api/v1/datasets")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Empty(t, rec.Header().Get("Content-Disposition"))

	ds := decodeDataset(t, rec.Body.Bytes())
	require.Len(t, ds, domain.DefaultDays)
	assert.Equal(t, "Test Farm", ds[0].FarmName)
	assert.Equal(t, "DATA_001", ds[0].ID)
	assert.NoError(t, domain.ValidateDataset(ds))
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.Exports.WithLabelValues("json")), 0)
}

func TestDatasets_SeededRequestsAreCached(t *testing.T) {
	srv, metrics := newAPIServer(t)

	first := get(srv, "/api/v1/datasets?days=5&seed=42&start=2025-03-01")
	second := get(srv, "/api/v1/datasets?days=5&seed=42&start=2025-03-01")
	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)

	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.DatasetCache.WithLabelValues("miss")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(metrics.DatasetCache.WithLabelValues("hit")), 0)

	ds := decodeDataset(t, first.Body.Bytes())
	require.Len(t, ds, 5)
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), ds[0].Date)
	assert.Equal(t, time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC), ds[4].Date)
}

func TestDatasets_CSVDownload(t *testing.T) {
	srv, _ := newAPIServer(t)
	rec := get(srv, "/api/v1/datasets?days=3&seed=1&format=csv&download=true")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="farm-data-export.csv"`, rec.Header().Get("Content-Disposition"))

	table, err := export.DecodeCSV(bytes.NewReader(rec.Body.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, export.Columns, table.Header)
	assert.Len(t, table.Rows, 3)
}

func TestDatasets_XLSXCustomFilename(t *testing.T) {
	srv, _ := newAPIServer(t)
	rec := get(srv, "/api/v1/datasets?days=2&format=xlsx&download=1&filename=report.xlsx")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="report.xlsx"`, rec.Header().Get("Content-Disposition"))

	ds, format, err := export.Decode(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Equal(t, export.FormatXLSX, format)
	assert.Len(t, ds, 2)
}

func TestDatasets_ZeroDaysIsEmpty(t *testing.T) {
	srv, _ := newAPIServer(t)
	rec := get(srv, "/api/v1/datasets?days=0")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestDatasets_InvalidParameters(t *testing.T) {
	srv, _ := newAPIServer(t)

	for _, target := range []string{
		"/api/v1/datasets?days=-1",
		"/api/v1/datasets?days=366",
		"/api/v1/datasets?days=ten",
		"/api/v1/datasets?seed=-5",
		"/api/v1/datasets?start=03/01/2025",
		"/api/v1/datasets?format=pdf",
		"/api/v1/datasets?download=maybe",
		"/api/v1/datasets/day?season=monsoon",
		"/api/v1/datasets/day?crop=nuts",
		"/api/v1/statistics?from=2025-02-01&to=2025-01-01",
	} {
		t.Run(target, func(t *testing.T) {
			rec := get(srv, target)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.NotEmpty(t, body["error"])
		})
	}
}

func TestDay_FixedSeasonAndCrop(t *testing.T) {
	srv, _ := newAPIServer(t)
	rec := get(srv, "/api/v1/datasets/day?season=summer&crop=fruits&farm=Orchard&date=2025-07-04&seed=3")

	require.Equal(t, http.StatusOK, rec.Code)
	ds := decodeDataset(t, rec.Body.Bytes())
	require.Len(t, ds, 1)
	assert.Equal(t, domain.Summer, ds[0].Season)
	assert.Equal(t, domain.Fruits, ds[0].CropType)
	assert.Equal(t, "Orchard", ds[0].FarmName)
	assert.Equal(t, time.Date(2025, 7, 4, 0, 0, 0, 0, time.UTC), ds[0].Date)
	assert.GreaterOrEqual(t, ds[0].SunshineHours, 10.0)
}

func TestStatistics_WholeSpan(t *testing.T) {
	srv, _ := newAPIServer(t)
	rec := get(srv, "/api/v1/statistics?days=10&seed=9&start=2025-01-01")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats domain.PeriodStatistics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 10, stats.RecordCount)
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), stats.StartDate)
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), stats.EndDate)

	// The same seed served as a dataset reduces to the same totals.
	ds := decodeDataset(t, get(srv, "/api/v1/datasets?days=10&seed=9&start=2025-01-01").Body.Bytes())
	var revenue float64
	for _, r := range ds {
		revenue += r.Revenue
	}
	assert.InDelta(t, revenue, stats.TotalRevenue, 1e-6)
}

func TestStatistics_SubRange(t *testing.T) {
	srv, _ := newAPIServer(t)
	rec := get(srv, "/api/v1/statistics?days=10&seed=9&start=2025-01-01&from=2025-01-03&to=2025-01-05")
	require.Equal(t, http.StatusOK, rec.Code)

	var stats domain.PeriodStatistics
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 3, stats.RecordCount)
}
