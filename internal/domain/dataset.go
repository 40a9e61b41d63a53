package domain

import (
	"fmt"
	"time"
)

const (
	// DefaultDays is the dataset length used when a caller gives none.
	DefaultDays = 30
	// DefaultFarmName labels records when no farm name is given.
	DefaultFarmName = "Demo Agricultural Farm"
	// DefaultIDPrefix prefixes sequence IDs from NewBuilder.
	DefaultIDPrefix = "DATA"
)

// DatasetOptions configures a multi-day dataset.
type DatasetOptions struct {
	FarmName string
	// StartDate dates record i as StartDate + i days. When zero every record
	// carries today's date.
	StartDate time.Time
}

// DayOptions configures a single-day dataset. Zero Season or CropType are
// drawn at random; a zero Date means today.
type DayOptions struct {
	Season   Season
	CropType CropType
	FarmName string
	Date     time.Time
}

// Builder assembles datasets from composed records.
type Builder struct {
	rng Random
	ids IDGenerator
}

// NewBuilder creates a Builder. A nil ids uses a fresh DATA_nnn sequence.
func NewBuilder(rng Random, ids IDGenerator) *Builder {
	if ids == nil {
		ids = NewSequenceIDs(DefaultIDPrefix)
	}
	return &Builder{rng: rng, ids: ids}
}

// CreateDataset produces exactly days records, each with an independently
// drawn season and crop type.
func (b *Builder) CreateDataset(days int, opts DatasetOptions) (FarmDataset, error) {
	if days < 0 {
		return nil, fmt.Errorf("%w: days must be non-negative, got %d", ErrInvalidArgument, days)
	}

	dataset := make(FarmDataset, 0, days)
	for i := 0; i < days; i++ {
		day := DayOptions{
			Season:   Seasons[b.rng.IntN(len(Seasons))],
			CropType: CropTypes[b.rng.IntN(len(CropTypes))],
			FarmName: opts.FarmName,
		}
		if !opts.StartDate.IsZero() {
			day.Date = opts.StartDate.AddDate(0, 0, i)
		}

		daily, err := b.CreateSingleDayDataset(day)
		if err != nil {
			return nil, fmt.Errorf("day %d: %w", i, err)
		}
		dataset = append(dataset, daily...)
	}
	return dataset, nil
}

// CreateSingleDayDataset produces a one-record dataset.
func (b *Builder) CreateSingleDayDataset(opts DayOptions) (FarmDataset, error) {
	season := opts.Season
	if season == 0 {
		season = Seasons[b.rng.IntN(len(Seasons))]
	}
	crop := opts.CropType
	if crop == 0 {
		crop = CropTypes[b.rng.IntN(len(CropTypes))]
	}
	farmName := opts.FarmName
	if farmName == "" {
		farmName = DefaultFarmName
	}

	record, err := BuildCompleteRecord(b.rng, b.ids.NextID(), farmName, season, crop)
	if err != nil {
		return nil, err
	}
	if !opts.Date.IsZero() {
		record.Date = opts.Date
	}
	return FarmDataset{record}, nil
}
