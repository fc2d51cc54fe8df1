package mmap

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFile(t *testing.T) {
	minSizeBytes := 123456
	path := filepath.Join(t.TempDir(), "test_blockdevice")

	mmapFile, err := NewFile(path, minSizeBytes)
	require.NoError(t, err)

	defer func() { require.NoError(t, mmapFile.BlockDevice.Close()) }()

	sectorSizeBytes := mmapFile.SectorSizeBytes
	sectorCount := mmapFile.SectorCount
	blockDevice := mmapFile.BlockDevice
	// The sector size should be a power of two, and the number of
	// sectors should be sufficient to hold the required space.
	require.Equal(t, 0, sectorSizeBytes&(sectorSizeBytes-1))
	require.Equal(t, int64((minSizeBytes+sectorSizeBytes-1)/sectorSizeBytes), sectorCount)

	fileInfo, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, int64(sectorSizeBytes)*sectorCount, fileInfo.Size())
	require.Equal(t, fileInfo.Size(), blockDevice.Size())

	n, err := blockDevice.WriteAt([]byte("Hello"), 12345)
	require.Equal(t, 5, n)
	require.NoError(t, err)

	var b [16]byte
	n, err = blockDevice.ReadAt(b[:], 12340)
	require.Equal(t, 16, n)
	require.NoError(t, err)
	require.Equal(t, []byte("\x00\x00\x00\x00\x00Hello\x00\x00\x00\x00\x00\x00"), b[:])

	require.NoError(t, blockDevice.Sync())
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trace")
	require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0600))

	bd, err := Open(path)
	require.NoError(t, err)

	defer func() { require.NoError(t, bd.Close()) }()

	var b [4]byte
	n, err := bd.ReadAt(b[:], 8)
	require.Equal(t, 2, n)
	require.Equal(t, io.EOF, err)
	require.Equal(t, []byte("89"), b[:n])
	//
	_, err = bd.ReadAt(b[:], -1)
	require.Error(t, err)
	_, err = bd.ReadAt(b[:], 11)
	require.Equal(t, io.EOF, err)
}

func TestOpenEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty")
	require.NoError(t, os.WriteFile(path, nil, 0600))
	//
	_, err := Open(path)
	require.Error(t, err)
	//
	_, err = Open(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
