package parzip

import (
	"errors"

	"github.com/parzip/parzip/internal/zipwire"
)

// Sentinel errors for registration input validation.
var (
	// ErrInvalidLevel is returned when a compression level is outside 0-9.
	ErrInvalidLevel = errors.New("parzip: compression level out of range")

	// ErrInvalidType is returned when a compression type is neither Stored
	// nor Deflate.
	ErrInvalidType = errors.New("parzip: unsupported compression type")

	// ErrEmptyName is returned when an entry is registered with an empty
	// archive name.
	ErrEmptyName = errors.New("parzip: empty entry name")

	// ErrNilReader is returned when a reader entry is registered with a nil
	// reader.
	ErrNilReader = errors.New("parzip: nil reader")
)

// Capacity sentinels re-exported from internal/zipwire.
var (
	// ErrTooManyEntries is returned when the entry count exceeds the 16-bit
	// counts of the end-of-central-directory record.
	ErrTooManyEntries = zipwire.ErrTooManyEntries

	// ErrNameTooLong is returned when an entry name exceeds its 16-bit
	// length field.
	ErrNameTooLong = zipwire.ErrNameTooLong

	// ErrCommentTooLong is returned when an entry comment exceeds its
	// 16-bit length field.
	ErrCommentTooLong = zipwire.ErrCommentTooLong

	// ErrExtraTooLong is returned when an entry's encoded extra fields
	// exceed their 16-bit length field.
	ErrExtraTooLong = zipwire.ErrExtraTooLong

	// ErrSizeOverflow is returned when an entry size or header offset
	// exceeds its 32-bit field.
	ErrSizeOverflow = zipwire.ErrSizeOverflow
)
