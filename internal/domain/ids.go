package domain

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator assigns record identifiers.
type IDGenerator interface {
	NextID() string
}

// SequenceIDs yields "<prefix>_001", "<prefix>_002", ... and is safe for
// concurrent use. IDs are unique per generator and reproducible across runs.
type SequenceIDs struct {
	prefix string
	n      atomic.Uint64
}

// NewSequenceIDs creates a sequence starting at 1.
func NewSequenceIDs(prefix string) *SequenceIDs {
	return &SequenceIDs{prefix: prefix}
}

func (s *SequenceIDs) NextID() string {
	return fmt.Sprintf("%s_%03d", s.prefix, s.n.Add(1))
}

// UUIDIDs yields random version 4 UUIDs. Used where records from separate
// runs share a keyspace, e.g. published Kafka messages.
type UUIDIDs struct{}

func (UUIDIDs) NextID() string {
	return uuid.NewString()
}
