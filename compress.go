package parzip

import (
	"context"
	"fmt"
	"io"
	"runtime"

	"github.com/klauspost/compress/flate"
	"github.com/parzip/parzip/internal/zipwire"
	"golang.org/x/sync/errgroup"
)

// Compress runs a compression pass with one worker per available CPU.
// See [Archive.CompressWithWorkers].
func (a *Archive) Compress() error {
	return a.CompressWithWorkers(0)
}

// CompressWithWorkers drains every entry queued since the previous pass and
// resolves them on the given number of workers. The batch is taken
// atomically: entries registered while the pass runs wait for the next one.
// Each queued entry is resolved exactly once. If workers is zero or
// negative, one worker per available CPU is used.
//
// On success the finished records are appended to the archive. On failure
// the first error is returned and no records from the pass are kept; reader
// origins consumed by the failed pass cannot be replayed.
//
// Calling Compress with an empty queue is a no-op, so repeated calls are
// harmless.
func (a *Archive) CompressWithWorkers(workers int) error {
	a.jobMu.Lock()
	batch := a.jobs
	a.jobs = nil
	a.jobMu.Unlock()
	if len(batch) == 0 {
		return nil
	}

	workers = workerCount(workers, len(batch))
	a.log().Debug("compression pass", "jobs", len(batch), "workers", workers)

	jobCh := make(chan *job)
	results := make(chan zipwire.Record, len(batch))

	eg, ctx := errgroup.WithContext(context.Background())
	eg.Go(func() error {
		defer close(jobCh)
		for i := range batch {
			select {
			case jobCh <- &batch[i]:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})
	for range workers {
		eg.Go(func() error {
			enc := newEncoderCache()
			for j := range jobCh {
				rec, err := j.resolve(enc)
				if err != nil {
					return fmt.Errorf("compress %q: %w", j.name, err)
				}
				results <- rec
			}
			return nil
		})
	}
	err := eg.Wait()
	close(results)
	if err != nil {
		return err
	}

	recs := make([]zipwire.Record, 0, len(batch))
	for rec := range results {
		recs = append(recs, rec)
	}
	a.recMu.Lock()
	defer a.recMu.Unlock()
	a.records = append(a.records, recs...)
	return nil
}

func workerCount(workers, jobs int) int {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > jobs {
		workers = jobs
	}
	if workers < 1 {
		workers = 1
	}
	return workers
}

// encoderCache reuses one flate writer per level within a worker. The
// writers are expensive to allocate and Reset cleanly between entries.
type encoderCache struct {
	writers map[CompressionLevel]*flate.Writer
}

func newEncoderCache() *encoderCache {
	return &encoderCache{writers: make(map[CompressionLevel]*flate.Writer)}
}

func (e *encoderCache) get(level CompressionLevel, dst io.Writer) (*flate.Writer, error) {
	if fw, ok := e.writers[level]; ok {
		fw.Reset(dst)
		return fw, nil
	}
	fw, err := flate.NewWriter(dst, level.Int())
	if err != nil {
		return nil, fmt.Errorf("create deflate writer: %w", err)
	}
	e.writers[level] = fw
	return fw, nil
}
