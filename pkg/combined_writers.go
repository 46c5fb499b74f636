package pkg

import (
	"fmt"
	"io"

	"go.uber.org/multierr"
)

// CombinedWriter tees each write to all its writers, e.g. a log file and STDOUT.
// Unlike io.MultiWriter it keeps writing after one writer fails.
type CombinedWriter struct {
	writers []io.Writer
}

// NewCombinedWriter skips nil writers.
func NewCombinedWriter(writers ...io.Writer) *CombinedWriter {
	cw := &CombinedWriter{}
	for _, w := range writers {
		if w != nil {
			cw.writers = append(cw.writers, w)
		}
	}
	return cw
}

func (cw *CombinedWriter) Len() int {
	return len(cw.writers)
}

// Write returns len(p) if at least one writer took all of p.
// The failures of the other writers are combined into err.
func (cw *CombinedWriter) Write(p []byte) (int, error) {
	var (
		err error
		ok  bool
	)
	for i, w := range cw.writers {
		written, werr := w.Write(p)
		switch {
		case werr != nil:
			err = multierr.Append(err, fmt.Errorf("writer %d: %w", i, werr))
		case written < len(p):
			err = multierr.Append(err, fmt.Errorf("writer %d: %w", i, io.ErrShortWrite))
		default:
			ok = true
		}
	}
	if !ok {
		return 0, err
	}
	return len(p), err
}
