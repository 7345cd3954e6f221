package edl

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/macfork/edl/internal/sectionreader"
)

// Decompress is the facade entry point: given a seekable source and its
// total size, it parses the 12-byte header at the start of src and dispatches
// to the EDL-0 or EDL-1 decoder.
func Decompress(src io.ReaderAt, size int64) ([]byte, error) {
	return decompressAt(src, 0, size)
}

// DecompressFile opens path, transparently unwrapping a .edl.xz transport
// layer if present, memory-mapping the file when possible to avoid a full
// buffered read before decoding starts, and decodes it.
func DecompressFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("edl: opening %s: %w", path, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("edl: stat %s: %w", path, err)
	}

	var src io.ReaderAt
	var size int64

	if mm, err := OpenMmap(path); err == nil {
		defer mm.Close()
		src, size = mm, mm.Size()
	} else {
		buf := make([]byte, info.Size())
		if _, err := io.ReadFull(io.NewSectionReader(f, 0, info.Size()), buf); err != nil && err != io.EOF {
			return nil, fmt.Errorf("edl: reading %s: %w", path, err)
		}
		src, size = bytes.NewReader(buf), int64(len(buf))
	}

	unwrapped, unwrappedSize, err := unwrapTransport(src, size)
	if err != nil {
		return nil, err
	}

	return decompressAt(unwrapped, 0, unwrappedSize)
}

func decompressAt(src io.ReaderAt, streamOffset, size int64) ([]byte, error) {
	hr := io.NewSectionReader(src, streamOffset, size-streamOffset)
	header, err := parseHeader(hr)
	if err != nil {
		return nil, err
	}

	payload := sectionreader.Section(src, streamOffset, size-streamOffset)

	switch header.CompressionType {
	case 0:
		return decodeEdl0(payload, 0, size-streamOffset, header)
	case 1:
		return decodeEdl1(payload, 0, header)
	default:
		return nil, fmt.Errorf("edl: compression type %d: %w", header.CompressionType, ErrUnsupportedCompression)
	}
}
