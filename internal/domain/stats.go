package domain

import (
	"fmt"
	"time"
)

// PeriodStatistics aggregates the records dated within [StartDate, EndDate].
type PeriodStatistics struct {
	StartDate          time.Time `json:"startDate"`
	EndDate            time.Time `json:"endDate"`
	RecordCount        int       `json:"recordCount"`
	AverageTemperature float64   `json:"averageTemperature"`
	TotalRainfall      float64   `json:"totalRainfall"`
	TotalProduction    float64   `json:"totalProduction"`
	TotalRevenue       float64   `json:"totalRevenue"`
}

// ComputePeriodStatistics reduces the records whose date falls in the
// inclusive range. AverageTemperature is 0 when nothing matches.
func ComputePeriodStatistics(dataset FarmDataset, start, end time.Time) (PeriodStatistics, error) {
	if end.Before(start) {
		return PeriodStatistics{}, fmt.Errorf("%w: end %s before start %s",
			ErrInvalidArgument, end.Format(time.DateOnly), start.Format(time.DateOnly))
	}

	stats := PeriodStatistics{StartDate: start, EndDate: end}
	var tempSum float64
	for i := range dataset {
		r := &dataset[i]
		if r.Date.Before(start) || r.Date.After(end) {
			continue
		}
		stats.RecordCount++
		tempSum += r.Temperature
		stats.TotalRainfall += r.Rainfall
		stats.TotalProduction += r.HarvestQuantity
		stats.TotalRevenue += r.Revenue
	}
	if stats.RecordCount > 0 {
		stats.AverageTemperature = tempSum / float64(stats.RecordCount)
	}
	return stats, nil
}

// DateSpan returns the earliest and latest record dates. ok is false for an
// empty dataset.
func DateSpan(dataset FarmDataset) (first, last time.Time, ok bool) {
	for i, r := range dataset {
		if i == 0 || r.Date.Before(first) {
			first = r.Date
		}
		if i == 0 || r.Date.After(last) {
			last = r.Date
		}
	}
	return first, last, len(dataset) > 0
}
