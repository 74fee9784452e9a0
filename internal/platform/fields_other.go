//go:build !windows

package platform

import "github.com/parzip/parzip/internal/zipwire"

// MetadataFields converts m into the extra fields carried on unix-like
// hosts: an extended timestamp, plus ownership when known.
func MetadataFields(m Metadata) []zipwire.Field {
	fields := []zipwire.Field{zipwire.ExtendedTimestamp{
		Modified: m.ModTime,
		Accessed: m.AccessTime,
		Created:  m.ChangeTime,
	}}
	if m.HasOwner {
		fields = append(fields, zipwire.UnixOwner{UID: m.UID, GID: m.GID})
	}
	return fields
}
