package zipwire

import (
	"bytes"
	"encoding/binary"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_WriteLocal(t *testing.T) {
	t.Parallel()

	rec := Record{
		Method:           Deflate,
		CRC32:            0xcafebabe,
		UncompressedSize: 13,
		Payload:          []byte("abc"),
		Name:             "hello.txt",
	}

	var buf bytes.Buffer
	require.NoError(t, rec.WriteLocal(&buf))

	want := []byte{
		0x50, 0x4b, 0x03, 0x04, // signature
		0x14, 0x00, // version needed: 20
		0x00, 0x08, // general purpose bit 11
		0x08, 0x00, // deflate
		0x00, 0x00, 0x00, 0x00, // DOS time and date stay zero
		0xbe, 0xba, 0xfe, 0xca, // crc
		0x03, 0x00, 0x00, 0x00, // compressed size
		0x0d, 0x00, 0x00, 0x00, // uncompressed size
		0x09, 0x00, // name length
		0x00, 0x00, // extra length
	}
	want = append(want, "hello.txt"...)
	want = append(want, "abc"...)

	assert.Equal(t, want, buf.Bytes())
	assert.Equal(t, rec.LocalSize(), int64(buf.Len()))
}

func TestRecord_WriteCentral(t *testing.T) {
	t.Parallel()

	rec := Record{
		Method:           Stored,
		CRC32:            0x01020304,
		UncompressedSize: 5,
		Payload:          []byte("hello"),
		Name:             "a/b.txt",
		ExternalAttrs:    uint32(0o100644) << 16,
		Extra:            []Field{ExtendedTimestamp{Modified: time.Unix(1700000000, 0)}},
		Comment:          "made by tests",
	}

	var buf bytes.Buffer
	require.NoError(t, rec.WriteCentral(&buf, 0x11223344))
	b := buf.Bytes()

	require.Equal(t, rec.CentralSize(), int64(len(b)))
	assert.Equal(t, []byte{0x50, 0x4b, 0x01, 0x02}, b[:4])
	assert.Equal(t, uint16(madeByVersion), binary.LittleEndian.Uint16(b[4:6]))
	assert.Equal(t, byte(62), b[4], "low byte is the zip appnote version")
	assert.Equal(t, uint16(20), binary.LittleEndian.Uint16(b[6:8]))
	assert.Equal(t, uint16(1<<11), binary.LittleEndian.Uint16(b[8:10]))
	assert.Equal(t, uint16(Stored), binary.LittleEndian.Uint16(b[10:12]))
	assert.Equal(t, uint32(0), binary.LittleEndian.Uint32(b[12:16]), "DOS time and date stay zero")
	assert.Equal(t, uint32(0x01020304), binary.LittleEndian.Uint32(b[16:20]))
	assert.Equal(t, uint32(5), binary.LittleEndian.Uint32(b[20:24]), "compressed size")
	assert.Equal(t, uint32(5), binary.LittleEndian.Uint32(b[24:28]), "uncompressed size")
	assert.Equal(t, uint16(7), binary.LittleEndian.Uint16(b[28:30]), "name length")
	assert.Equal(t, uint16(9), binary.LittleEndian.Uint16(b[30:32]), "central extra length")
	assert.Equal(t, uint16(13), binary.LittleEndian.Uint16(b[32:34]), "comment length")
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(b[34:36]), "disk number")
	assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(b[36:38]), "internal attributes")
	assert.Equal(t, uint32(0o100644)<<16, binary.LittleEndian.Uint32(b[38:42]))
	assert.Equal(t, uint32(0x11223344), binary.LittleEndian.Uint32(b[42:46]))

	assert.Equal(t, "a/b.txt", string(b[46:53]))
	assert.Equal(t, "made by tests", string(b[len(b)-13:]))
}

func TestRecord_ExtraLengthsDifferByPlacement(t *testing.T) {
	t.Parallel()

	rec := Record{
		Name: "f",
		Extra: []Field{ExtendedTimestamp{
			Modified: time.Unix(1, 0),
			Accessed: time.Unix(2, 0),
			Created:  time.Unix(3, 0),
		}},
	}

	var local, central bytes.Buffer
	require.NoError(t, rec.WriteLocal(&local))
	require.NoError(t, rec.WriteCentral(&central, 0))

	assert.Equal(t, uint16(4+13), binary.LittleEndian.Uint16(local.Bytes()[28:30]))
	assert.Equal(t, uint16(4+5), binary.LittleEndian.Uint16(central.Bytes()[30:32]))
}

func TestWriteEOCD(t *testing.T) {
	t.Parallel()

	t.Run("empty archive", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, WriteEOCD(&buf, 0, 0, 0))
		assert.Equal(t, []byte{
			0x50, 0x4b, 0x05, 0x06,
			0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00,
			0x00, 0x00, 0x00, 0x00,
			0x00, 0x00,
		}, buf.Bytes())
	})

	t.Run("counts and span", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		require.NoError(t, WriteEOCD(&buf, 3, 0x010203, 0x0a0b0c0d))
		b := buf.Bytes()
		require.Len(t, b, eocdLen)
		assert.Equal(t, uint16(3), binary.LittleEndian.Uint16(b[8:10]))
		assert.Equal(t, uint16(3), binary.LittleEndian.Uint16(b[10:12]))
		assert.Equal(t, uint32(0x010203), binary.LittleEndian.Uint32(b[12:16]))
		assert.Equal(t, uint32(0x0a0b0c0d), binary.LittleEndian.Uint32(b[16:20]))
		assert.Equal(t, uint16(0), binary.LittleEndian.Uint16(b[20:22]), "no archive comment")
	})

	t.Run("entry count overflow", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		err := WriteEOCD(&buf, 1<<16, 0, 0)
		require.ErrorIs(t, err, ErrTooManyEntries)
		assert.Zero(t, buf.Len(), "nothing written on capacity error")
	})
}

func TestDirectoryRecord(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		wantName string
	}{
		{name: "bare name", input: "docs", wantName: "docs/"},
		{name: "already terminated", input: "docs/", wantName: "docs/"},
		{name: "backslash terminated", input: `docs\`, wantName: `docs\`},
		{name: "nested", input: "a/b/c", wantName: "a/b/c/"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := DirectoryRecord(tt.input, 0o40755, nil, "")
			assert.Equal(t, tt.wantName, rec.Name)
			assert.Equal(t, Stored, rec.Method)
			assert.Empty(t, rec.Payload)
			assert.Zero(t, rec.CRC32)
			assert.Zero(t, rec.UncompressedSize)
			assert.Equal(t, uint32(0o40755)<<16, rec.ExternalAttrs)
		})
	}
}

func TestRecord_Validate(t *testing.T) {
	t.Parallel()

	manyOwners := make([]Field, 5000) // 15 encoded bytes each
	for i := range manyOwners {
		manyOwners[i] = UnixOwner{}
	}

	tests := []struct {
		name    string
		rec     Record
		wantErr error
	}{
		{name: "ok", rec: Record{Name: "a", Comment: "c"}},
		{name: "name too long", rec: Record{Name: strings.Repeat("n", 1<<16)}, wantErr: ErrNameTooLong},
		{name: "comment too long", rec: Record{Name: "a", Comment: strings.Repeat("c", 1<<16)}, wantErr: ErrCommentTooLong},
		{name: "extra too long", rec: Record{Name: "a", Extra: manyOwners}, wantErr: ErrExtraTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.rec.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestCompressionType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "stored", Stored.String())
	assert.Equal(t, "deflate", Deflate.String())
	assert.Equal(t, "unknown", CompressionType(3).String())

	assert.True(t, Stored.Valid())
	assert.True(t, Deflate.Valid())
	assert.False(t, CompressionType(12).Valid())
}
