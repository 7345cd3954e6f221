package edl

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// MmapFile is an io.ReaderAt backed directly by a read-only memory mapping
// of a local file, avoiding a full buffered read before decoding starts.
type MmapFile struct {
	data []byte
	f    *os.File
}

// OpenMmap opens path and maps it read-only. Callers must call Close when
// done to unmap and release the file descriptor.
func OpenMmap(path string) (*MmapFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if !info.Mode().IsRegular() {
		f.Close()
		return nil, fmt.Errorf("edl: %s is not a regular file", path)
	}
	if info.Size() == 0 {
		f.Close()
		return nil, fmt.Errorf("edl: %s is empty", path)
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(info.Size()), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("edl: mmap %s: %w", path, err)
	}

	return &MmapFile{data: data, f: f}, nil
}

func (m *MmapFile) Size() int64 { return int64(len(m.data)) }

func (m *MmapFile) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 || off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

// Close unmaps the file and closes the underlying descriptor.
func (m *MmapFile) Close() error {
	err := unix.Munmap(m.data)
	if cerr := m.f.Close(); err == nil {
		err = cerr
	}
	return err
}
