// Package zipwire defines the on-wire ZIP structures shared between the
// parzip package and its internal packages: compression method values,
// extra-field variants, finished file records, and the little-endian layouts
// of local file headers, central directory entries, and the end-of-central-
// directory record.
package zipwire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
)

const (
	localHeaderSignature   = 0x04034b50
	centralHeaderSignature = 0x02014b50
	eocdSignature          = 0x06054b50
)

const (
	// localHeaderLen, centralHeaderLen and eocdLen are the fixed spans of
	// each structure before its variable-length tail.
	localHeaderLen   = 30
	centralHeaderLen = 46
	eocdLen          = 22

	// versionNeeded is ZIP spec 2.0, the floor for deflate and directories.
	versionNeeded = 20

	// flagUTF8 is general-purpose bit 11: names and comments are UTF-8.
	flagUTF8 = 1 << 11
)

// Sentinel errors for archive capacity limits.
var (
	// ErrTooManyEntries is returned when the entry count exceeds the 16-bit
	// counts of the end-of-central-directory record.
	ErrTooManyEntries = errors.New("parzip: too many entries")

	// ErrNameTooLong is returned when an entry name exceeds its 16-bit
	// length field.
	ErrNameTooLong = errors.New("parzip: entry name too long")

	// ErrCommentTooLong is returned when an entry comment exceeds its 16-bit
	// length field.
	ErrCommentTooLong = errors.New("parzip: entry comment too long")

	// ErrExtraTooLong is returned when an entry's encoded extra fields
	// exceed their 16-bit length field.
	ErrExtraTooLong = errors.New("parzip: extra fields too long")

	// ErrSizeOverflow is returned when an entry size or header offset
	// exceeds its 32-bit field.
	ErrSizeOverflow = errors.New("parzip: size overflow")
)

// CompressionType identifies the compression method of an entry. The values
// are the on-wire method ids.
type CompressionType uint16

const (
	Stored  CompressionType = 0
	Deflate CompressionType = 8
)

func (c CompressionType) String() string {
	switch c {
	case Stored:
		return "stored"
	case Deflate:
		return "deflate"
	default:
		return "unknown"
	}
}

// Valid reports whether c is a method this package can produce.
func (c CompressionType) Valid() bool {
	return c == Stored || c == Deflate
}

// Record is one finished archive entry: header metadata plus the compressed
// payload. Directory records carry an empty payload, zero sizes and zero CRC.
type Record struct {
	Method           CompressionType
	CRC32            uint32
	UncompressedSize uint32
	Payload          []byte
	Name             string
	ExternalAttrs    uint32 // 16-bit platform attributes packed into the high half
	Extra            []Field
	Comment          string
}

// DirectoryRecord builds the record for a directory entry. Directories are
// always stored without payload; the name gains a trailing separator unless
// one is already present.
func DirectoryRecord(name string, attrs uint16, extra []Field, comment string) Record {
	if !strings.HasSuffix(name, "/") && !strings.HasSuffix(name, `\`) {
		name += "/"
	}
	return Record{
		Method:        Stored,
		Name:          name,
		ExternalAttrs: uint32(attrs) << 16,
		Extra:         extra,
		Comment:       comment,
	}
}

// Validate checks the record's variable-length parts against the 16/32-bit
// ZIP field widths. Header writes assume a validated record.
func (r *Record) Validate() error {
	if len(r.Name) > math.MaxUint16 {
		return fmt.Errorf("%w: %d bytes", ErrNameTooLong, len(r.Name))
	}
	if len(r.Comment) > math.MaxUint16 {
		return fmt.Errorf("%w: %q: %d bytes", ErrCommentTooLong, r.Name, len(r.Comment))
	}
	if FieldsLen(r.Extra, false) > math.MaxUint16 || FieldsLen(r.Extra, true) > math.MaxUint16 {
		return fmt.Errorf("%w: %q", ErrExtraTooLong, r.Name)
	}
	if uint64(len(r.Payload)) > math.MaxUint32 {
		return fmt.Errorf("%w: %q: %d payload bytes", ErrSizeOverflow, r.Name, len(r.Payload))
	}
	return nil
}

// LocalSize is the byte span of the record's local file header, name, local
// extra fields and payload.
func (r *Record) LocalSize() int64 {
	return localHeaderLen + int64(len(r.Name)) + int64(FieldsLen(r.Extra, false)) + int64(len(r.Payload))
}

// CentralSize is the byte span of the record's central directory entry.
func (r *Record) CentralSize() int64 {
	return centralHeaderLen + int64(len(r.Name)) + int64(FieldsLen(r.Extra, true)) + int64(len(r.Comment))
}

// WriteLocal writes the local file header followed by the raw payload. The
// two legacy DOS time/date words stay zero; modification times travel in
// extra fields instead.
func (r *Record) WriteLocal(w io.Writer) error {
	header := struct {
		Signature        uint32
		Version          uint16
		Flags            uint16
		Method           uint16
		ModifiedTime     uint16
		ModifiedDate     uint16
		CRC32            uint32
		CompressedSize   uint32
		UncompressedSize uint32
		NameLength       uint16
		ExtraLength      uint16
	}{
		Signature:        localHeaderSignature,
		Version:          versionNeeded,
		Flags:            flagUTF8,
		Method:           uint16(r.Method),
		CRC32:            r.CRC32,
		CompressedSize:   uint32(len(r.Payload)),
		UncompressedSize: r.UncompressedSize,
		NameLength:       uint16(len(r.Name)),
		ExtraLength:      uint16(FieldsLen(r.Extra, false)),
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	if _, err := io.WriteString(w, r.Name); err != nil {
		return err
	}
	if err := writeFields(w, r.Extra, false); err != nil {
		return err
	}
	_, err := w.Write(r.Payload)
	return err
}

// WriteCentral writes the central directory entry pointing back at the local
// header written at offset.
func (r *Record) WriteCentral(w io.Writer, offset uint32) error {
	header := struct {
		Signature        uint32
		MadeByVersion    uint16
		Version          uint16
		Flags            uint16
		Method           uint16
		ModifiedTime     uint16
		ModifiedDate     uint16
		CRC32            uint32
		CompressedSize   uint32
		UncompressedSize uint32
		NameLength       uint16
		ExtraLength      uint16
		CommentLength    uint16
		DiskNumber       uint16
		InternalAttrs    uint16
		ExternalAttrs    uint32
		LocalOffset      uint32
	}{
		Signature:        centralHeaderSignature,
		MadeByVersion:    madeByVersion,
		Version:          versionNeeded,
		Flags:            flagUTF8,
		Method:           uint16(r.Method),
		CRC32:            r.CRC32,
		CompressedSize:   uint32(len(r.Payload)),
		UncompressedSize: r.UncompressedSize,
		NameLength:       uint16(len(r.Name)),
		ExtraLength:      uint16(FieldsLen(r.Extra, true)),
		CommentLength:    uint16(len(r.Comment)),
		ExternalAttrs:    r.ExternalAttrs,
		LocalOffset:      offset,
	}
	if err := binary.Write(w, binary.LittleEndian, &header); err != nil {
		return err
	}
	if _, err := io.WriteString(w, r.Name); err != nil {
		return err
	}
	if err := writeFields(w, r.Extra, true); err != nil {
		return err
	}
	_, err := io.WriteString(w, r.Comment)
	return err
}

// WriteEOCD writes the end-of-central-directory record. count is the real
// number of entries written; size and offset describe the central directory
// span.
func WriteEOCD(w io.Writer, count int, size, offset uint32) error {
	if count > math.MaxUint16 {
		return fmt.Errorf("%w: %d", ErrTooManyEntries, count)
	}
	footer := struct {
		Signature       uint32
		DiskNumber      uint16
		DirectoryDisk   uint16
		DiskEntries     uint16
		TotalEntries    uint16
		DirectorySize   uint32
		DirectoryOffset uint32
		CommentLength   uint16
	}{
		Signature:       eocdSignature,
		DiskEntries:     uint16(count),
		TotalEntries:    uint16(count),
		DirectorySize:   size,
		DirectoryOffset: offset,
	}
	return binary.Write(w, binary.LittleEndian, &footer)
}
