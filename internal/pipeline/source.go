package pipeline

import (
	"context"
	"time"

	"github.com/couchcryptid/farm-data-engine/internal/domain"
)

// DatasetSource generates single-day records through a domain.Builder.
type DatasetSource struct {
	builder  *domain.Builder
	farmName string
}

// NewDatasetSource creates a RecordSource for the named farm.
func NewDatasetSource(builder *domain.Builder, farmName string) *DatasetSource {
	return &DatasetSource{builder: builder, farmName: farmName}
}

// Generate builds n records dated date, each with a random season and crop.
func (s *DatasetSource) Generate(ctx context.Context, date time.Time, n int) (domain.FarmDataset, error) {
	dataset := make(domain.FarmDataset, 0, n)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		day, err := s.builder.CreateSingleDayDataset(domain.DayOptions{FarmName: s.farmName, Date: date})
		if err != nil {
			return nil, err
		}
		dataset = append(dataset, day...)
	}
	return dataset, nil
}
