package parzip

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"sync"

	"github.com/parzip/parzip/internal/platform"
	"github.com/parzip/parzip/internal/zipwire"
)

// Archive accumulates entries and produces a ZIP file from them. Entries
// backed by files, byte slices, or readers are queued as jobs and compressed
// in parallel by [Archive.Compress]; directory entries are resolved
// immediately. The zero value is ready to use.
//
// All methods are safe for concurrent use.
type Archive struct {
	logger *slog.Logger

	jobMu sync.Mutex
	jobs  []job

	recMu   sync.Mutex
	records []zipwire.Record
}

// New returns an empty archive.
func New(opts ...Option) *Archive {
	a := &Archive{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Archive) log() *slog.Logger {
	if a.logger != nil {
		return a.logger
	}
	return slog.New(slog.DiscardHandler)
}

// AddFile queues the file at path for compression under the given archive
// name. The file is opened and read during the next compression pass, and
// its permissions and timestamps are recorded alongside the content.
func (a *Archive) AddFile(path, name string, opts ...EntryOption) error {
	j, err := a.newJob(originFile, name, opts)
	if err != nil {
		return err
	}
	j.path = path
	a.enqueue(j)
	return nil
}

// AddFileFromBytes queues an in-memory entry under the given archive name.
// The slice is not copied; the caller must not modify it until the next
// compression pass completes.
func (a *Archive) AddFileFromBytes(data []byte, name string, opts ...EntryOption) error {
	j, err := a.newJob(originBytes, name, opts)
	if err != nil {
		return err
	}
	j.data = data
	a.enqueue(j)
	return nil
}

// AddFileFromReader queues an entry whose content is drained from r during
// the next compression pass. The reader is read exactly once.
func (a *Archive) AddFileFromReader(r io.Reader, name string, opts ...EntryOption) error {
	if r == nil {
		return ErrNilReader
	}
	j, err := a.newJob(originReader, name, opts)
	if err != nil {
		return err
	}
	j.reader = r
	a.enqueue(j)
	return nil
}

// AddDirectory records a directory entry under the given archive name. A
// trailing slash is appended to the stored name if missing. Directory
// entries carry no content and bypass the compression queue; the entry is
// resolved before AddDirectory returns.
func (a *Archive) AddDirectory(name string, opts ...EntryOption) error {
	cfg := entryConfig{attrs: platform.DefaultDirAttrs, attrsSet: true}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := a.validateEntry(name, cfg); err != nil {
		return err
	}
	a.appendRecord(zipwire.DirectoryRecord(name, cfg.attrs, cfg.extra, cfg.comment))
	return nil
}

// AddDirectoryFromPath records a directory entry under the given archive
// name, deriving attributes and timestamp fields from the directory at path.
// Explicit options override the derived metadata.
func (a *Archive) AddDirectoryFromPath(path, name string, opts ...EntryOption) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("add directory %q: %s is not a directory", name, path)
	}
	meta := platform.FileMetadata(info)
	cfg := entryConfig{
		attrs:    meta.Mode,
		attrsSet: true,
		extra:    platform.MetadataFields(meta),
		extraSet: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := a.validateEntry(name, cfg); err != nil {
		return err
	}
	a.appendRecord(zipwire.DirectoryRecord(name, cfg.attrs, cfg.extra, cfg.comment))
	return nil
}

func (a *Archive) newJob(kind originKind, name string, opts []EntryOption) (job, error) {
	cfg := entryConfig{level: CompressionLevelBalanced(), method: Deflate}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := a.validateEntry(name, cfg); err != nil {
		return job{}, err
	}
	return job{
		kind:     kind,
		name:     name,
		level:    cfg.level,
		method:   cfg.method,
		attrs:    cfg.attrs,
		attrsSet: cfg.attrsSet,
		extra:    cfg.extra,
		extraSet: cfg.extraSet,
		comment:  cfg.comment,
	}, nil
}

// validateEntry rejects malformed entries at registration so a later
// compression pass cannot fail on input the caller could have fixed.
func (a *Archive) validateEntry(name string, cfg entryConfig) error {
	if name == "" {
		return ErrEmptyName
	}
	if len(name) > math.MaxUint16 {
		return fmt.Errorf("%w: %d bytes", ErrNameTooLong, len(name))
	}
	if len(cfg.comment) > math.MaxUint16 {
		return fmt.Errorf("%w: %d bytes", ErrCommentTooLong, len(cfg.comment))
	}
	if zipwire.FieldsLen(cfg.extra, false) > math.MaxUint16 || zipwire.FieldsLen(cfg.extra, true) > math.MaxUint16 {
		return fmt.Errorf("%w: extra fields for %q", ErrExtraTooLong, name)
	}
	if !cfg.method.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidType, uint16(cfg.method))
	}
	return nil
}

func (a *Archive) enqueue(j job) {
	a.jobMu.Lock()
	defer a.jobMu.Unlock()
	a.jobs = append(a.jobs, j)
}

func (a *Archive) appendRecord(rec zipwire.Record) {
	a.recMu.Lock()
	defer a.recMu.Unlock()
	a.records = append(a.records, rec)
}
