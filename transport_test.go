package edl

import (
	"bytes"
	"io"
	"testing"
)

func TestUnwrapTransportNoOpOnPlainEdl(t *testing.T) {
	raw := []byte{
		'E', 'D', 'L', 0x00,
		0x04, 0x00, 0x00, 0x00,
		0x04, 0x00, 0x00, 0x00,
		0xDE, 0xAD, 0xBE, 0xEF,
	}
	src := bytes.NewReader(raw)

	out, size, err := unwrapTransport(src, int64(len(raw)))
	if err != nil {
		t.Fatalf("unwrapTransport: %v", err)
	}
	if out != io.ReaderAt(src) {
		t.Fatalf("expected the same reader back for a non-xz source")
	}
	if size != int64(len(raw)) {
		t.Fatalf("size = %d, want %d", size, len(raw))
	}
}

func TestUnwrapTransportNoOpOnShortInput(t *testing.T) {
	raw := []byte{'E', 'D'}
	src := bytes.NewReader(raw)

	out, size, err := unwrapTransport(src, int64(len(raw)))
	if err != nil {
		t.Fatalf("unwrapTransport: %v", err)
	}
	if size != int64(len(raw)) {
		t.Fatalf("size = %d, want %d", size, len(raw))
	}
	_ = out
}
