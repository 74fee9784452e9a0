//go:build windows

package platform

// Default external attributes for entries with no explicit or derived
// attributes: FILE_ATTRIBUTE_NORMAL and FILE_ATTRIBUTE_DIRECTORY.
const (
	DefaultFileAttrs uint16 = 128
	DefaultDirAttrs  uint16 = 16
)
