//go:build darwin

package platform

import (
	"io/fs"
	"syscall"
	"time"
)

// FileMetadata extracts mode, ownership and timestamps from info.
func FileMetadata(info fs.FileInfo) Metadata {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return fallbackMetadata(info)
	}
	return Metadata{
		Mode:       uint16(stat.Mode),
		UID:        stat.Uid,
		GID:        stat.Gid,
		HasOwner:   true,
		ModTime:    time.Unix(stat.Mtimespec.Unix()),
		AccessTime: time.Unix(stat.Atimespec.Unix()),
		ChangeTime: time.Unix(stat.Ctimespec.Unix()),
	}
}
