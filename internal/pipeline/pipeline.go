package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/farm-data-engine/internal/domain"
	"github.com/couchcryptid/farm-data-engine/internal/observability"
	"github.com/jonboulle/clockwork"
	"github.com/robfig/cron/v3"
)

const (
	initialBackoff  = 200 * time.Millisecond
	maxBackoff      = 5 * time.Second
	maxLoadAttempts = 5
)

// RecordSource produces the records for one scheduled run.
type RecordSource interface {
	Generate(ctx context.Context, date time.Time, n int) (domain.FarmDataset, error)
}

// BatchLoader writes records to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, records []domain.FarmRecord) error
}

// Pipeline generates a batch of records on every schedule tick and loads it.
type Pipeline struct {
	source    RecordSource
	loader    BatchLoader
	schedule  cron.Schedule
	clock     clockwork.Clock
	logger    *slog.Logger
	metrics   *observability.Metrics
	ready     atomic.Bool
	batchSize int
}

// Options configures a Pipeline. A nil Clock uses the real clock.
type Options struct {
	Schedule  cron.Schedule
	Clock     clockwork.Clock
	BatchSize int
	Logger    *slog.Logger
	Metrics   *observability.Metrics
}

// New creates a Pipeline with the given stages and observability.
func New(src RecordSource, l BatchLoader, opts Options) *Pipeline {
	clk := opts.Clock
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	return &Pipeline{
		source:    src,
		loader:    l,
		schedule:  opts.Schedule,
		clock:     clk,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
		batchSize: opts.BatchSize,
	}
}

// CheckReadiness returns nil once the pipeline has published at least one
// batch, or an error describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("pipeline has not published any records yet")
	}
	return nil
}

// Run waits for each scheduled tick and publishes a batch until the context
// is cancelled.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "batch_size", p.batchSize)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	for {
		now := p.clock.Now()
		next := p.schedule.Next(now)

		select {
		case <-ctx.Done():
			p.logger.Info("pipeline stopping", "reason", ctx.Err())
			return nil
		case <-p.clock.After(next.Sub(now)):
		}

		if !p.processBatch(ctx, next) {
			p.logger.Info("pipeline stopping", "reason", ctx.Err())
			return nil
		}
	}
}

// processBatch runs one generate-load cycle for the tick. Returns false if
// the pipeline should stop.
func (p *Pipeline) processBatch(ctx context.Context, tick time.Time) bool {
	start := p.clock.Now()

	records, err := p.source.Generate(ctx, domain.CalendarDate(tick), p.batchSize)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		p.logger.Error("generate batch failed", "error", err)
		return true
	}
	if len(records) == 0 {
		return ctx.Err() == nil
	}

	p.metrics.RecordsGenerated.Add(float64(len(records)))
	p.metrics.BatchSize.Observe(float64(len(records)))

	backoff := initialBackoff
	for attempt := 1; ; attempt++ {
		err := p.loader.LoadBatch(ctx, records)
		if err == nil {
			break
		}
		if ctx.Err() != nil {
			return false
		}
		p.metrics.PublishErrors.Inc()
		if attempt == maxLoadAttempts {
			p.logger.Error("load batch failed, dropping batch",
				"error", err, "batch_size", len(records), "attempts", attempt)
			return true
		}
		p.logger.Warn("load batch failed, retrying",
			"error", err, "batch_size", len(records), "attempt", attempt, "backoff", backoff)
		if !p.sleep(ctx, backoff) {
			return false
		}
		backoff = nextBackoff(backoff, maxBackoff)
	}

	p.metrics.RecordsPublished.Add(float64(len(records)))
	p.metrics.BatchProcessingDuration.Observe(p.clock.Since(start).Seconds())
	p.ready.Store(true)
	p.logger.Info("batch published", "records", len(records), "date", tick.Format(time.DateOnly))
	return true
}

func (p *Pipeline) sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-p.clock.After(d):
		return true
	}
}

func nextBackoff(current, maxBackoff time.Duration) time.Duration {
	next := current * 2
	if next > maxBackoff {
		return maxBackoff
	}
	return next
}
