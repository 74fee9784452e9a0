package platform

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileMetadata_RegularFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "f.txt")
	require.NoError(t, os.WriteFile(path, []byte("content"), 0o644))

	info, err := os.Stat(path)
	require.NoError(t, err)

	m := FileMetadata(info)
	assert.NotZero(t, m.Mode)
	assert.False(t, m.ModTime.IsZero())
	assert.WithinDuration(t, info.ModTime(), m.ModTime, time.Second)
}

func TestFileMetadata_Directory(t *testing.T) {
	t.Parallel()

	info, err := os.Stat(t.TempDir())
	require.NoError(t, err)

	m := FileMetadata(info)
	fields := MetadataFields(m)
	assert.NotEmpty(t, fields)
}

func TestModeBits(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint16(0o100644), modeBits(fs.FileMode(0o644)))
	assert.Equal(t, uint16(0o40755), modeBits(fs.ModeDir|0o755))
}
