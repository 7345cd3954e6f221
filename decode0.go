package edl

import "io"

// decodeEdl0 implements the trivial EDL-0 path: strip the header, copy up to
// min(remaining, decompressed_size) bytes verbatim.
func decodeEdl0(src io.ReaderAt, streamOffset int64, underlyingSize int64, header Header) ([]byte, error) {
	remaining := underlyingSize - streamOffset - headerLen
	if remaining < 0 {
		remaining = 0
	}

	length := int64(header.DecompressedSize)
	if remaining < length {
		length = remaining
	}

	out := make([]byte, length)
	if length == 0 {
		return out, nil
	}

	n, err := src.ReadAt(out, streamOffset+headerLen)
	if err != nil && err != io.EOF {
		return nil, err
	}
	return out[:n], nil
}
