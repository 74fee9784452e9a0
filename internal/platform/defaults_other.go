//go:build !unix && !windows

package platform

// Default external attributes on hosts with no native notion of them.
const (
	DefaultFileAttrs uint16 = 0
	DefaultDirAttrs  uint16 = 0
)
