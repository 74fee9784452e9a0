package parzip

import (
	"bytes"
	"fmt"
	"hash/crc32"
	"io"
	"math"
	"os"

	"github.com/parzip/parzip/internal/platform"
	"github.com/parzip/parzip/internal/zipwire"
)

type originKind uint8

const (
	originFile originKind = iota
	originBytes
	originReader
)

// job is a queued entry awaiting a compression pass. Exactly one of path,
// data, or reader is populated, selected by kind.
type job struct {
	kind   originKind
	name   string
	path   string
	data   []byte
	reader io.Reader

	level    CompressionLevel
	method   CompressionType
	attrs    uint16
	attrsSet bool
	extra    []ExtraField
	extraSet bool
	comment  string
}

// resolve drains the job's content source and produces a finished record.
func (j *job) resolve(enc *encoderCache) (zipwire.Record, error) {
	switch j.kind {
	case originFile:
		return j.resolveFile(enc)
	case originBytes:
		return j.build(enc, bytes.NewReader(j.data), int64(len(j.data)), platform.DefaultFileAttrs, nil)
	default:
		return j.build(enc, j.reader, 0, platform.DefaultFileAttrs, nil)
	}
}

func (j *job) resolveFile(enc *encoderCache) (zipwire.Record, error) {
	f, err := os.Open(j.path)
	if err != nil {
		return zipwire.Record{}, fmt.Errorf("open source file: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return zipwire.Record{}, fmt.Errorf("stat source file: %w", err)
	}
	meta := platform.FileMetadata(info)
	return j.build(enc, f, info.Size(), meta.Mode, platform.MetadataFields(meta))
}

func (j *job) build(enc *encoderCache, src io.Reader, sizeHint int64, attrs uint16, extra []ExtraField) (zipwire.Record, error) {
	if j.attrsSet {
		attrs = j.attrs
	}
	if j.extraSet {
		extra = j.extra
	}

	var buf bytes.Buffer
	if sizeHint > 0 && sizeHint <= math.MaxUint32 {
		buf.Grow(int(sizeHint))
	}
	crc := crc32.NewIEEE()
	tee := io.TeeReader(src, crc)

	var n int64
	var err error
	switch j.method {
	case Deflate:
		fw, ferr := enc.get(j.level, &buf)
		if ferr != nil {
			return zipwire.Record{}, ferr
		}
		n, err = io.Copy(fw, tee)
		if err == nil {
			err = fw.Close()
		}
	default:
		n, err = io.Copy(&buf, tee)
	}
	if err != nil {
		return zipwire.Record{}, fmt.Errorf("read entry content: %w", err)
	}
	if n > math.MaxUint32 {
		return zipwire.Record{}, fmt.Errorf("%w: %d uncompressed bytes", zipwire.ErrSizeOverflow, n)
	}
	payload := compact(buf.Bytes())
	if uint64(len(payload)) > math.MaxUint32 {
		return zipwire.Record{}, fmt.Errorf("%w: %d compressed bytes", zipwire.ErrSizeOverflow, len(payload))
	}

	return zipwire.Record{
		Method:           j.method,
		CRC32:            crc.Sum32(),
		UncompressedSize: uint32(n),
		Payload:          payload,
		Name:             j.name,
		ExternalAttrs:    uint32(attrs) << 16,
		Extra:            extra,
		Comment:          j.comment,
	}, nil
}

// compact trims growth slack from a payload that may sit in memory for a
// long time before serialization.
func compact(b []byte) []byte {
	if cap(b)-len(b) <= 512 || cap(b) <= len(b)+len(b)/8 {
		return b
	}
	return bytes.Clone(b)
}
