//go:build windows

package platform

import (
	"io/fs"
	"syscall"
	"time"
)

// FileMetadata extracts attribute bits and NTFS timestamps from info.
func FileMetadata(info fs.FileInfo) Metadata {
	attrs, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return fallbackMetadata(info)
	}
	return Metadata{
		Mode:       uint16(attrs.FileAttributes),
		ModTime:    time.Unix(0, attrs.LastWriteTime.Nanoseconds()),
		AccessTime: time.Unix(0, attrs.LastAccessTime.Nanoseconds()),
		ChangeTime: time.Unix(0, attrs.CreationTime.Nanoseconds()),
	}
}
