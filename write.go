package parzip

import (
	"fmt"
	"io"
	"math"

	"github.com/parzip/parzip/internal/zipwire"
)

// WriteTo serializes the archive to w, running an implicit compression pass
// first if entries are still queued. It implements [io.WriterTo].
//
// Serialization consumes the archive's records: once writing has started,
// a second call without new entries produces a valid empty archive.
func (a *Archive) WriteTo(w io.Writer) (int64, error) {
	return a.WriteToWithWorkers(w, 0)
}

// WriteToWithWorkers is [Archive.WriteTo] with an explicit worker count for
// the implicit compression pass.
func (a *Archive) WriteToWithWorkers(w io.Writer, workers int) (int64, error) {
	a.jobMu.Lock()
	pending := len(a.jobs) > 0
	a.jobMu.Unlock()
	if pending {
		if err := a.CompressWithWorkers(workers); err != nil {
			return 0, err
		}
	}

	a.recMu.Lock()
	defer a.recMu.Unlock()
	if err := validateLayout(a.records); err != nil {
		return 0, err
	}
	records := a.records
	a.records = nil

	cw := &countWriter{w: w}
	offsets := make([]uint32, len(records))
	for i := range records {
		offsets[i] = uint32(cw.n)
		if err := records[i].WriteLocal(cw); err != nil {
			return cw.n, fmt.Errorf("write local entry %q: %w", records[i].Name, err)
		}
	}
	dirStart := cw.n
	for i := range records {
		if err := records[i].WriteCentral(cw, offsets[i]); err != nil {
			return cw.n, fmt.Errorf("write central entry %q: %w", records[i].Name, err)
		}
	}
	if err := zipwire.WriteEOCD(cw, len(records), uint32(cw.n-dirStart), uint32(dirStart)); err != nil {
		return cw.n, fmt.Errorf("write end of central directory: %w", err)
	}
	a.log().Debug("archive written", "entries", len(records), "bytes", cw.n)
	return cw.n, nil
}

// validateLayout runs every capacity check up front so a failing archive is
// rejected before the first byte reaches the sink.
func validateLayout(records []zipwire.Record) error {
	if len(records) > math.MaxUint16 {
		return fmt.Errorf("%w: %d", zipwire.ErrTooManyEntries, len(records))
	}
	var offset, dirSize int64
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return err
		}
		offset += records[i].LocalSize()
		dirSize += records[i].CentralSize()
	}
	if offset > math.MaxUint32 {
		return fmt.Errorf("%w: central directory would start at %d", zipwire.ErrSizeOverflow, offset)
	}
	if offset+dirSize > math.MaxUint32 {
		return fmt.Errorf("%w: archive spans %d bytes", zipwire.ErrSizeOverflow, offset+dirSize)
	}
	return nil
}

// countWriter tracks bytes written; header offsets derive from this count
// rather than from seeking the sink.
type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
