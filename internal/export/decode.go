package export

import (
	"bytes"
	"fmt"

	"github.com/couchcryptid/farm-data-engine/internal/domain"
)

// Decode parses a dataset in any supported format, detected from content.
// CSV and XLSX cells are re-typed through RecordsFromCSV.
func Decode(data []byte) (domain.FarmDataset, Format, error) {
	switch {
	case sniffJSON(data):
		ds, err := DecodeJSON(bytes.NewReader(data))
		return ds, FormatJSON, err
	case sniffXLSX(data):
		t, err := DecodeXLSX(bytes.NewReader(data))
		if err != nil {
			return nil, FormatXLSX, err
		}
		ds, err := RecordsFromCSV(t)
		return ds, FormatXLSX, err
	default:
		t, err := DecodeCSV(bytes.NewReader(data))
		if err != nil {
			return nil, FormatCSV, fmt.Errorf("decode: %w", err)
		}
		ds, err := RecordsFromCSV(t)
		return ds, FormatCSV, err
	}
}
