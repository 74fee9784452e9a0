package zipwire

import (
	"encoding/binary"
	"io"
	"time"
)

// Extra-field header ids, per the ZIP application notes.
const (
	ntfsFieldID         = 0x000a
	extendedTimeFieldID = 0x5455
	unixOwnerFieldID    = 0x7875
)

// fieldHeaderLen is the id + data-length prefix every field carries.
const fieldHeaderLen = 4

// Field is one extra-field block attached to an archive entry. Some fields
// encode differently depending on placement: the central directory copy of a
// field may be shorter than the local header copy.
type Field interface {
	// id returns the two-byte header id.
	id() uint16
	// size returns the data length for the given placement, excluding the
	// four header bytes.
	size(central bool) uint16
	// appendData appends the data payload for the given placement.
	appendData(b []byte, central bool) []byte
}

// FieldsLen returns the total encoded length of fields for the given
// placement, including per-field headers.
func FieldsLen(fields []Field, central bool) int {
	n := 0
	for _, f := range fields {
		n += fieldHeaderLen + int(f.size(central))
	}
	return n
}

// AppendFields appends the encoded extra-field block for the given placement.
func AppendFields(b []byte, fields []Field, central bool) []byte {
	for _, f := range fields {
		b = binary.LittleEndian.AppendUint16(b, f.id())
		b = binary.LittleEndian.AppendUint16(b, f.size(central))
		b = f.appendData(b, central)
	}
	return b
}

func writeFields(w io.Writer, fields []Field, central bool) error {
	if len(fields) == 0 {
		return nil
	}
	_, err := w.Write(AppendFields(make([]byte, 0, FieldsLen(fields, central)), fields, central))
	return err
}

// NTFSTimestamps is the 0x000A field: modification, access and creation
// times at NTFS resolution (100ns ticks since 1601-01-01). The encoded form
// is a fixed 32 bytes in both placements: a reserved zero word followed by
// one attribute tag holding the three times. Zero time values encode as 0.
type NTFSTimestamps struct {
	Modified time.Time
	Accessed time.Time
	Created  time.Time
}

func (NTFSTimestamps) id() uint16         { return ntfsFieldID }
func (NTFSTimestamps) size(_ bool) uint16 { return 32 }

func (f NTFSTimestamps) appendData(b []byte, _ bool) []byte {
	b = binary.LittleEndian.AppendUint32(b, 0) // reserved
	b = binary.LittleEndian.AppendUint16(b, 1) // attribute tag 1: times
	b = binary.LittleEndian.AppendUint16(b, 24)
	b = binary.LittleEndian.AppendUint64(b, filetime(f.Modified))
	b = binary.LittleEndian.AppendUint64(b, filetime(f.Accessed))
	b = binary.LittleEndian.AppendUint64(b, filetime(f.Created))
	return b
}

// filetimeEpochDelta is the seconds between the NTFS epoch (1601-01-01) and
// the Unix epoch.
const filetimeEpochDelta = 11644473600

func filetime(t time.Time) uint64 {
	if t.IsZero() {
		return 0
	}
	return uint64(t.Unix()+filetimeEpochDelta)*1e7 + uint64(t.Nanosecond()/100)
}

// Presence bits of the extended timestamp flags byte.
const (
	modTimePresent    = 1 << 0
	accessTimePresent = 1 << 1
	createTimePresent = 1 << 2
)

// ExtendedTimestamp is the 0x5455 field: unix timestamps at second
// resolution, each optional (zero time values are omitted). The central
// directory copy keeps the flags byte describing the local copy but carries
// only the modification time; access and creation times are local-only, so
// the two placements encode to different lengths.
type ExtendedTimestamp struct {
	Modified time.Time
	Accessed time.Time
	Created  time.Time
}

func (ExtendedTimestamp) id() uint16 { return extendedTimeFieldID }

func (f ExtendedTimestamp) flags() byte {
	var fl byte
	if !f.Modified.IsZero() {
		fl |= modTimePresent
	}
	if !f.Accessed.IsZero() {
		fl |= accessTimePresent
	}
	if !f.Created.IsZero() {
		fl |= createTimePresent
	}
	return fl
}

func (f ExtendedTimestamp) size(central bool) uint16 {
	n := uint16(1)
	if !f.Modified.IsZero() {
		n += 4
	}
	if central {
		return n
	}
	if !f.Accessed.IsZero() {
		n += 4
	}
	if !f.Created.IsZero() {
		n += 4
	}
	return n
}

func (f ExtendedTimestamp) appendData(b []byte, central bool) []byte {
	b = append(b, f.flags())
	if !f.Modified.IsZero() {
		b = binary.LittleEndian.AppendUint32(b, uint32(f.Modified.Unix()))
	}
	if central {
		return b
	}
	if !f.Accessed.IsZero() {
		b = binary.LittleEndian.AppendUint32(b, uint32(f.Accessed.Unix()))
	}
	if !f.Created.IsZero() {
		b = binary.LittleEndian.AppendUint32(b, uint32(f.Created.Unix()))
	}
	return b
}

// UnixOwner is the 0x7875 field: the numeric owner of an entry. The layout
// is version 1 with 32-bit uid and gid, a fixed 11 bytes in both placements.
type UnixOwner struct {
	UID uint32
	GID uint32
}

func (UnixOwner) id() uint16         { return unixOwnerFieldID }
func (UnixOwner) size(_ bool) uint16 { return 11 }

func (f UnixOwner) appendData(b []byte, _ bool) []byte {
	b = append(b, 1) // field version
	b = append(b, 4) // uid width in bytes
	b = binary.LittleEndian.AppendUint32(b, f.UID)
	b = append(b, 4) // gid width in bytes
	b = binary.LittleEndian.AppendUint32(b, f.GID)
	return b
}
