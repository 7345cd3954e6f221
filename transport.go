package edl

import (
	"bytes"
	"fmt"
	"io"

	"github.com/therootcompany/xz"
)

// xzMagic is the 6-byte signature xz streams begin with.
var xzMagic = [6]byte{0xFD, '7', 'z', 'X', 'Z', 0x00}

// unwrapTransport peeks the first 6 bytes of src; if they match the xz
// magic number, the EDL container is assumed to have been shipped as
// "container.edl.xz" over a transport with no framing of its own, and the
// whole stream is drained through an xz reader into memory before decoding
// continues. Any other byte sequence passes src through unchanged, so this
// is a no-op for plain .edl containers.
func unwrapTransport(src io.ReaderAt, size int64) (io.ReaderAt, int64, error) {
	var peek [6]byte
	n, _ := src.ReadAt(peek[:], 0)
	if n < len(peek) || peek != xzMagic {
		return src, size, nil
	}

	zr, err := xz.NewReader(io.NewSectionReader(src, 0, size), xz.DefaultDictMax)
	if err != nil {
		return nil, 0, fmt.Errorf("edl: opening xz transport: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, zr); err != nil {
		return nil, 0, fmt.Errorf("edl: draining xz transport: %w", err)
	}

	plain := buf.Bytes()
	return bytes.NewReader(plain), int64(len(plain)), nil
}
