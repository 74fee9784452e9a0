//go:build !linux && !darwin && !windows

package platform

import "io/fs"

// FileMetadata derives what portable file info offers: permission bits and
// the modification time.
func FileMetadata(info fs.FileInfo) Metadata {
	return fallbackMetadata(info)
}
