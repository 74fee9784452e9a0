package parzip

import "log/slog"

// Option configures an Archive.
type Option func(*Archive)

// WithLogger installs a logger for debug output during compression passes
// and serialization. Archives log nothing by default.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Archive) {
		a.logger = logger
	}
}

// EntryOption configures a single entry at registration time.
type EntryOption func(*entryConfig)

type entryConfig struct {
	level    CompressionLevel
	method   CompressionType
	attrs    uint16
	attrsSet bool
	extra    []ExtraField
	extraSet bool
	comment  string
}

// WithCompressionLevel overrides the balanced default level for this entry.
// The level only matters for Deflate entries.
func WithCompressionLevel(level CompressionLevel) EntryOption {
	return func(c *entryConfig) {
		c.level = level
	}
}

// WithCompressionType selects Stored or Deflate for this entry. Regular
// entries default to Deflate; directory entries are always Stored.
func WithCompressionType(method CompressionType) EntryOption {
	return func(c *entryConfig) {
		c.method = method
	}
}

// WithAttributes sets the entry's 16-bit external attributes (unix mode bits
// or windows file attributes), replacing any value derived from filesystem
// metadata or the platform default.
func WithAttributes(attrs uint16) EntryOption {
	return func(c *entryConfig) {
		c.attrs = attrs
		c.attrsSet = true
	}
}

// WithExtraFields attaches extra fields to the entry, replacing any fields
// derived from filesystem metadata.
func WithExtraFields(fields ...ExtraField) EntryOption {
	return func(c *entryConfig) {
		c.extra = fields
		c.extraSet = true
	}
}

// WithComment attaches a per-entry comment, stored in the central directory.
func WithComment(comment string) EntryOption {
	return func(c *entryConfig) {
		c.comment = comment
	}
}
