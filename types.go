package parzip

import "github.com/parzip/parzip/internal/zipwire"

// Re-export wire-level types from internal/zipwire for the public API.
type (
	// CompressionType identifies the ZIP compression method of an entry.
	CompressionType = zipwire.CompressionType

	// ExtraField is an optional metadata block attached to an entry,
	// serialized into the local header and the central directory.
	ExtraField = zipwire.Field

	// NTFSTimestamps is the 0x000A extra field: modification, access and
	// creation times at 100ns resolution.
	NTFSTimestamps = zipwire.NTFSTimestamps

	// ExtendedTimestamp is the 0x5455 extra field: unix timestamps at
	// second resolution. Zero time values are omitted; only the
	// modification time reaches the central directory.
	ExtendedTimestamp = zipwire.ExtendedTimestamp

	// UnixOwner is the 0x7875 extra field: numeric uid and gid.
	UnixOwner = zipwire.UnixOwner
)

// Re-export compression method constants.
const (
	// Stored writes entry bytes without compression.
	Stored = zipwire.Stored

	// Deflate compresses entry bytes with raw DEFLATE streams.
	Deflate = zipwire.Deflate
)
