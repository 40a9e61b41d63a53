// Package export serializes farm datasets and delivers the bytes to a sink.
//
// Encoding is pure: EncodeJSON, EncodeCSV and EncodeXLSX return bytes and
// never touch I/O. Delivery (files, writers, HTTP attachments) sits behind
// the narrow Sink interface.
package export

import (
	"context"
	"fmt"
	"strings"

	"github.com/couchcryptid/farm-data-engine/internal/domain"
)

// Format names a serialization format.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
)

// defaultBaseName is the filename stem used when the caller gives none.
const defaultBaseName = "farm-data-export"

// ParseFormat converts a case-insensitive format name.
func ParseFormat(v string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(v))); f {
	case FormatJSON, FormatCSV, FormatXLSX:
		return f, nil
	default:
		return "", fmt.Errorf("%w: unknown export format %q", domain.ErrInvalidArgument, v)
	}
}

// DefaultFilename returns farm-data-export.<ext> for the format.
func (f Format) DefaultFilename() string {
	return defaultBaseName + "." + string(f)
}

// ContentType returns the MIME type for the format.
func (f Format) ContentType() string {
	switch f {
	case FormatCSV:
		return "text/csv; charset=utf-8"
	case FormatXLSX:
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	default:
		return "application/json"
	}
}

// Encode serializes a dataset in the given format.
func Encode(f Format, dataset domain.FarmDataset) ([]byte, error) {
	switch f {
	case FormatJSON:
		return EncodeJSON(dataset)
	case FormatCSV:
		return EncodeCSV(dataset)
	case FormatXLSX:
		return EncodeXLSX(dataset)
	default:
		return nil, fmt.Errorf("%w: unknown export format %q", domain.ErrInvalidArgument, string(f))
	}
}

// Export encodes the dataset and delivers it to sink under filename. An empty
// filename uses the format's default.
func Export(ctx context.Context, sink Sink, f Format, filename string, dataset domain.FarmDataset) error {
	data, err := Encode(f, dataset)
	if err != nil {
		return fmt.Errorf("encode %s: %w", f, err)
	}
	if filename == "" {
		filename = f.DefaultFilename()
	}
	if err := sink.Deliver(ctx, filename, f.ContentType(), data); err != nil {
		return fmt.Errorf("deliver %s: %w", filename, err)
	}
	return nil
}
