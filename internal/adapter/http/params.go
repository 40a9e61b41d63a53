package http

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/couchcryptid/farm-data-engine/internal/domain"
	"github.com/couchcryptid/farm-data-engine/internal/export"
)

// queryParams reads typed values from a request query, keeping the first
// parse error.
type queryParams struct {
	values url.Values
	err    error
}

func newQueryParams(v url.Values) *queryParams {
	return &queryParams{values: v}
}

func (q *queryParams) fail(name, raw string, reason string) {
	if q.err == nil {
		q.err = fmt.Errorf("%w: %s=%q: %s", domain.ErrInvalidArgument, name, raw, reason)
	}
}

func (q *queryParams) str(name, fallback string) string {
	if v := q.values.Get(name); v != "" {
		return v
	}
	return fallback
}

func (q *queryParams) intRange(name string, fallback, lo, hi int) int {
	raw := q.values.Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		q.fail(name, raw, "not an integer")
		return fallback
	}
	if n < lo || n > hi {
		q.fail(name, raw, fmt.Sprintf("must be between %d and %d", lo, hi))
		return fallback
	}
	return n
}

// seed returns the seed and whether one was given.
func (q *queryParams) seed(name string) (uint64, bool) {
	raw := q.values.Get(name)
	if raw == "" {
		return 0, false
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		q.fail(name, raw, "not an unsigned integer")
		return 0, false
	}
	return n, true
}

func (q *queryParams) date(name string) time.Time {
	raw := q.values.Get(name)
	if raw == "" {
		return time.Time{}
	}
	t, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		q.fail(name, raw, "want YYYY-MM-DD")
		return time.Time{}
	}
	return t
}

func (q *queryParams) boolean(name string) bool {
	raw := q.values.Get(name)
	if raw == "" {
		return false
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		q.fail(name, raw, "not a boolean")
		return false
	}
	return b
}

func (q *queryParams) season(name string) domain.Season {
	raw := q.values.Get(name)
	if raw == "" {
		return 0
	}
	s, err := domain.ParseSeason(raw)
	if err != nil && q.err == nil {
		q.err = err
	}
	return s
}

func (q *queryParams) crop(name string) domain.CropType {
	raw := q.values.Get(name)
	if raw == "" {
		return 0
	}
	c, err := domain.ParseCropType(raw)
	if err != nil && q.err == nil {
		q.err = err
	}
	return c
}

func (q *queryParams) format(name string) export.Format {
	raw := q.values.Get(name)
	if raw == "" {
		return export.FormatJSON
	}
	f, err := export.ParseFormat(raw)
	if err != nil && q.err == nil {
		q.err = err
	}
	return f
}
