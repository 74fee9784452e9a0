// Package platform extracts the host-specific file metadata attached to
// archive entries: permission/attribute bits, ownership, and timestamps
// beyond the portable modification time.
package platform

import (
	"io/fs"
	"time"
)

// Metadata is the file metadata an entry can carry. Zero time values mean
// the host did not report that timestamp. ChangeTime is the inode status
// change on unix and the creation time on windows.
type Metadata struct {
	Mode       uint16
	UID        uint32
	GID        uint32
	HasOwner   bool
	ModTime    time.Time
	AccessTime time.Time
	ChangeTime time.Time
}

// fallbackMetadata derives metadata from portable fs.FileInfo alone.
func fallbackMetadata(info fs.FileInfo) Metadata {
	return Metadata{
		Mode:    modeBits(info.Mode()),
		ModTime: info.ModTime(),
	}
}

// modeBits converts a portable file mode into unix st_mode bits.
func modeBits(mode fs.FileMode) uint16 {
	bits := uint16(mode.Perm())
	if mode.IsDir() {
		bits |= 0o40000
	} else {
		bits |= 0o100000
	}
	return bits
}
