// Package mmapfile provides read-only memory-mapped file access with
// fixed-width unsigned integer reads at arbitrary byte offsets.
//
// A File is immutable after Open: the mapped bytes are never written
// through, so any number of goroutines may read from the same File
// concurrently. The typed read methods perform no range checks; callers
// are expected to derive offsets from validated layout metadata.
package mmapfile

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"golang.org/x/sys/unix"
)

// File is a read-only memory-mapped file.
type File struct {
	// Data is the mapped byte range. It is valid until Close.
	Data []byte
	// Size is the total number of mapped bytes.
	Size uint64

	f      *os.File
	path   string
	closed bool
}

// Open memory-maps the file at path in read-only shared mode.
//
// The whole file is mapped and advised for random access; page faults on
// first touch are the only I/O the returned File ever performs.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &OpenError{Path: path, Err: err}
	}
	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, &OpenError{Path: path, Err: err}
	}
	size := stat.Size()
	if size == 0 {
		f.Close()
		return nil, &OpenError{Path: path, Err: fmt.Errorf("file is empty")}
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, &OpenError{Path: path, Err: fmt.Errorf("mmap: %w", err)}
	}
	// fadvise random access pattern for the whole file
	if err := unix.Fadvise(int(f.Fd()), 0, 0, unix.FADV_RANDOM); err != nil {
		slog.Warn("fadvise(RANDOM) failed", "file", path, "error", err)
	}
	slog.Debug("mapped file", "file", path, "size", humanize.Bytes(uint64(size)))
	return &File{
		Data: data,
		Size: uint64(size),
		f:    f,
		path: path,
	}, nil
}

// Path returns the path the file was opened with.
func (f *File) Path() string {
	return f.path
}

// Fd returns the underlying file descriptor, or -1 after Close.
func (f *File) Fd() int {
	if f.f == nil {
		return -1
	}
	return int(f.f.Fd())
}

// Close unmaps and closes the file. Closing an already-closed File is a
// no-op; closing a File that was never mapped is an error.
func (f *File) Close() error {
	if f.closed {
		return nil
	}
	if f.Data == nil || f.f == nil {
		return &CloseError{Path: f.path, Err: fmt.Errorf("not mapped")}
	}
	f.closed = true
	data := f.Data
	f.Data = nil
	if err := unix.Munmap(data); err != nil {
		f.f.Close()
		f.f = nil
		return &CloseError{Path: f.path, Err: fmt.Errorf("munmap: %w", err)}
	}
	file := f.f
	f.f = nil
	if err := file.Close(); err != nil {
		return &CloseError{Path: f.path, Err: err}
	}
	return nil
}
