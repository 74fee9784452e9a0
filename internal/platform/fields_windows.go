//go:build windows

package platform

import "github.com/parzip/parzip/internal/zipwire"

// MetadataFields converts m into the NTFS timestamp field carried on
// windows hosts.
func MetadataFields(m Metadata) []zipwire.Field {
	return []zipwire.Field{zipwire.NTFSTimestamps{
		Modified: m.ModTime,
		Accessed: m.AccessTime,
		Created:  m.ChangeTime,
	}}
}
