package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// ErrNoDestination reports a sink with nowhere to deliver to.
var ErrNoDestination = errors.New("no export destination")

// Sink delivers encoded export bytes. Implementations own the side effect
// (file write, stream, HTTP download) and report its failure.
type Sink interface {
	Deliver(ctx context.Context, filename, contentType string, data []byte) error
}

// FileSink writes exports into a directory, creating it when needed.
type FileSink struct {
	Dir string
}

func (s FileSink) Deliver(ctx context.Context, filename, _ string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.Dir == "" {
		return ErrNoDestination
	}
	name := filepath.Base(filename)
	if name == "." || name == string(filepath.Separator) {
		return fmt.Errorf("invalid filename %q", filename)
	}
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.Dir, name), data, 0o600)
}

// WriterSink streams exports to an io.Writer such as stdout. The filename is
// ignored.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Deliver(ctx context.Context, _, _ string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s.W == nil {
		return ErrNoDestination
	}
	_, err := s.W.Write(data)
	return err
}
