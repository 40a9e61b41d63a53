package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/farm-data-engine/internal/cache"
	"github.com/couchcryptid/farm-data-engine/internal/domain"
	"github.com/couchcryptid/farm-data-engine/internal/export"
	"github.com/couchcryptid/farm-data-engine/internal/observability"
)

// APIConfig bounds and defaults the dataset API.
type APIConfig struct {
	FarmName  string
	MaxDays   int
	CacheSize int
}

// API serves generated datasets and their statistics.
type API struct {
	cfg     APIConfig
	cache   *cache.LRU[datasetKey, domain.FarmDataset]
	metrics *observability.Metrics
	logger  *slog.Logger
}

// datasetKey identifies a reproducible dataset. today pins undated requests
// to the day they were generated.
type datasetKey struct {
	days     int
	seed     uint64
	farmName string
	start    time.Time
	today    time.Time
}

// NewAPI creates the dataset API handlers.
func NewAPI(cfg APIConfig, metrics *observability.Metrics, logger *slog.Logger) *API {
	if cfg.FarmName == "" {
		cfg.FarmName = domain.DefaultFarmName
	}
	return &API{
		cfg:     cfg,
		cache:   cache.NewLRU[datasetKey, domain.FarmDataset](cfg.CacheSize),
		metrics: metrics,
		logger:  logger,
	}
}

// Register mounts the /api/v1 routes on mux.
func (a *API) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/datasets", a.handleDataset)
	mux.HandleFunc("GET /api/v1/datasets/day", a.handleDay)
	mux.HandleFunc("GET /api/v1/statistics", a.handleStatistics)
}

type datasetRequest struct {
	days     int
	seed     uint64
	seeded   bool
	farmName string
	start    time.Time
}

func (a *API) parseDatasetRequest(q *queryParams) datasetRequest {
	req := datasetRequest{
		days:     q.intRange("days", domain.DefaultDays, 0, a.cfg.MaxDays),
		farmName: q.str("farm", a.cfg.FarmName),
		start:    q.date("start"),
	}
	req.seed, req.seeded = q.seed("seed")
	return req
}

func (a *API) handleDataset(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r.URL.Query())
	req := a.parseDatasetRequest(q)
	format := q.format("format")
	download := q.boolean("download")
	filename := q.str("filename", "")
	if q.err != nil {
		writeError(w, http.StatusBadRequest, q.err)
		return
	}

	dataset, err := a.dataset(req)
	if err != nil {
		a.writeFailure(w, err)
		return
	}
	a.respond(r.Context(), w, format, download, filename, dataset)
}

func (a *API) handleDay(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r.URL.Query())
	opts := domain.DayOptions{
		Season:   q.season("season"),
		CropType: q.crop("crop"),
		FarmName: q.str("farm", a.cfg.FarmName),
		Date:     q.date("date"),
	}
	seed, seeded := q.seed("seed")
	format := q.format("format")
	download := q.boolean("download")
	filename := q.str("filename", "")
	if q.err != nil {
		writeError(w, http.StatusBadRequest, q.err)
		return
	}

	dataset, err := domain.NewBuilder(newRandom(seed, seeded), nil).CreateSingleDayDataset(opts)
	if err != nil {
		a.writeFailure(w, err)
		return
	}
	a.metrics.RecordsGenerated.Add(float64(len(dataset)))
	a.respond(r.Context(), w, format, download, filename, dataset)
}

func (a *API) handleStatistics(w http.ResponseWriter, r *http.Request) {
	q := newQueryParams(r.URL.Query())
	req := a.parseDatasetRequest(q)
	from := q.date("from")
	to := q.date("to")
	if q.err != nil {
		writeError(w, http.StatusBadRequest, q.err)
		return
	}

	dataset, err := a.dataset(req)
	if err != nil {
		a.writeFailure(w, err)
		return
	}

	first, last, _ := domain.DateSpan(dataset)
	if from.IsZero() {
		from = first
	}
	if to.IsZero() {
		to = last
	}
	stats, err := domain.ComputePeriodStatistics(dataset, from, to)
	if err != nil {
		a.writeFailure(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// dataset builds the requested dataset, serving seeded requests from the
// cache.
func (a *API) dataset(req datasetRequest) (domain.FarmDataset, error) {
	var key datasetKey
	if req.seeded {
		key = datasetKey{days: req.days, seed: req.seed, farmName: req.farmName, start: req.start}
		if req.start.IsZero() {
			key.today = domain.Today()
		}
		if ds, ok := a.cache.Get(key); ok {
			a.metrics.DatasetCache.WithLabelValues("hit").Inc()
			return ds, nil
		}
		a.metrics.DatasetCache.WithLabelValues("miss").Inc()
	}

	b := domain.NewBuilder(newRandom(req.seed, req.seeded), nil)
	ds, err := b.CreateDataset(req.days, domain.DatasetOptions{FarmName: req.farmName, StartDate: req.start})
	if err != nil {
		return nil, err
	}
	a.metrics.RecordsGenerated.Add(float64(len(ds)))

	if req.seeded {
		a.cache.Put(key, ds)
	}
	return ds, nil
}

func (a *API) respond(ctx context.Context, w http.ResponseWriter, f export.Format, download bool, filename string, dataset domain.FarmDataset) {
	sink := &responseSink{w: w, attachment: download}
	if err := export.Export(ctx, sink, f, filename, dataset); err != nil {
		if sink.written {
			a.logger.Error("export response write failed", "format", f, "error", err)
			return
		}
		a.writeFailure(w, err)
		return
	}
	a.metrics.Exports.WithLabelValues(string(f)).Inc()
}

func (a *API) writeFailure(w http.ResponseWriter, err error) {
	if errors.Is(err, domain.ErrInvalidArgument) {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	a.logger.Error("dataset request failed", "error", err)
	writeError(w, http.StatusInternalServerError, errors.New("internal error"))
}

func newRandom(seed uint64, seeded bool) domain.Random {
	if seeded {
		return domain.NewRandom(seed)
	}
	return domain.NewTimeSeededRandom()
}

// responseSink delivers an export as the HTTP response body, optionally as a
// file download.
type responseSink struct {
	w          http.ResponseWriter
	attachment bool
	written    bool
}

func (s *responseSink) Deliver(ctx context.Context, filename, contentType string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	h := s.w.Header()
	h.Set("Content-Type", contentType)
	if s.attachment {
		h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	}
	s.w.WriteHeader(http.StatusOK)
	s.written = true
	_, err := s.w.Write(data)
	return err
}
