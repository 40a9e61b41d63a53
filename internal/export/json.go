package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/couchcryptid/farm-data-engine/internal/domain"
)

// EncodeJSON renders the dataset as an indented JSON array. An empty dataset
// renders as [].
func EncodeJSON(dataset domain.FarmDataset) ([]byte, error) {
	if dataset == nil {
		dataset = domain.FarmDataset{}
	}
	data, err := json.MarshalIndent(dataset, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal dataset: %w", err)
	}
	return append(data, '\n'), nil
}

// DecodeJSON parses a JSON array produced by EncodeJSON.
func DecodeJSON(r io.Reader) (domain.FarmDataset, error) {
	var dataset domain.FarmDataset
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&dataset); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return dataset, nil
}

// sniffJSON reports whether data looks like a JSON array.
func sniffJSON(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '['
}
