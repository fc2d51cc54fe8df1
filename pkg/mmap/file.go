package mmap

import (
	pkgErrors "github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// File represents a memory-mapped file.
type File struct {
	BlockDevice     *BlockDevice
	SectorSizeBytes int
	SectorCount     int64
}

// NewFile creates (or truncates) a file holding at least minimumSizeBytes
// bytes, and maps it into memory.
func NewFile(path string, minimumSizeBytes int) (*File, error) {
	fd, err := unix.Open(path, unix.O_CREAT|unix.O_RDWR|unix.O_TRUNC, 0666)
	if err != nil {
		return nil, pkgErrors.Wrapf(err, "failed to open file %#v", path)
	}

	// Use the block size returned by fstat() to determine the
	// sector size and the number of sectors needed to store the
	// desired amount of space.
	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		return nil, closeOnError(fd, pkgErrors.Wrapf(err, "failed to obtain size of file %#v", path))
	}

	sectorSizeBytes := int(stat.Blksize)
	sectorCount := int64((uint64(max(minimumSizeBytes, 1)) + uint64(stat.Blksize) - 1) / uint64(stat.Blksize))
	sizeBytes := int64(sectorSizeBytes) * sectorCount

	if err := unix.Ftruncate(fd, sizeBytes); err != nil {
		return nil, closeOnError(fd, pkgErrors.Wrapf(err, "failed to truncate file %#v to %d bytes", path, sizeBytes))
	}

	bd, err := NewBlockDevice(fd, int(sizeBytes))
	if err != nil {
		return nil, closeOnError(fd, err)
	}

	return &File{
		BlockDevice:     bd,
		SectorSizeBytes: sectorSizeBytes,
		SectorCount:     sectorCount,
	}, nil
}

// Open maps an existing file into memory for reading.
func Open(path string) (*BlockDevice, error) {
	fd, err := unix.Open(path, unix.O_RDONLY, 0)
	if err != nil {
		return nil, pkgErrors.Wrapf(err, "failed to open file %#v", path)
	}

	var stat unix.Stat_t
	if err := unix.Fstat(fd, &stat); err != nil {
		return nil, closeOnError(fd, pkgErrors.Wrapf(err, "failed to obtain size of file %#v", path))
	} else if stat.Size == 0 {
		return nil, closeOnError(fd, pkgErrors.Errorf("cannot map empty file %#v", path))
	}

	return NewBlockDeviceOrClose(fd, int(stat.Size))
}

// NewBlockDeviceOrClose maps a file descriptor, closing it if this fails.
func NewBlockDeviceOrClose(fd, sizeBytes int) (*BlockDevice, error) {
	bd, err := NewBlockDevice(fd, sizeBytes)
	if err != nil {
		return nil, closeOnError(fd, err)
	}

	return bd, nil
}

func closeOnError(fd int, err error) error {
	// error from close is secondary
	_ = unix.Close(fd)

	return err
}
