//go:build unix

package platform

// Default external attributes for entries with no explicit or derived mode.
const (
	DefaultFileAttrs uint16 = 0o100644
	DefaultDirAttrs  uint16 = 0o40755
)
