package edl

import (
	"bytes"
	"errors"
	"testing"
)

func TestParseHeaderEdl0LittleEndian(t *testing.T) {
	raw := []byte{
		'E', 'D', 'L', 0x00,
		0x04, 0x00, 0x00, 0x00,
		0x04, 0x00, 0x00, 0x00,
	}
	h, err := parseHeader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("parseHeader: %v", err)
	}
	if h.CompressionType != 0 || h.Endian != LittleEndian {
		t.Fatalf("got %+v", h)
	}
	if h.CompressedSize != 4 || h.DecompressedSize != 4 {
		t.Fatalf("got %+v", h)
	}
}

func TestParseHeaderBigEndian(t *testing.T) {
	raw := []byte{
		'E', 'D', 'L', 0x80,
		0x00, 0x00, 0x00, 0x04,
		0x00, 0x00, 0x00, 0x04,
	}
	h, err := parseHeader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("parseHeader: %v", err)
	}
	if h.Endian != BigEndian {
		t.Fatalf("expected big endian, got %+v", h)
	}
	if h.CompressedSize != 4 || h.DecompressedSize != 4 {
		t.Fatalf("got %+v", h)
	}
}

func TestParseHeaderInvalidMagic(t *testing.T) {
	raw := []byte{
		'E', 'D', 'K', 0x00,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}
	_, err := parseHeader(bytes.NewReader(raw))
	if !errors.Is(err, ErrInvalidMagic) {
		t.Fatalf("expected ErrInvalidMagic, got %v", err)
	}
}

func TestParseHeaderUnsupportedCompression(t *testing.T) {
	raw := []byte{
		'E', 'D', 'L', 0x02,
		0, 0, 0, 0,
		0, 0, 0, 0,
	}
	_, err := parseHeader(bytes.NewReader(raw))
	if !errors.Is(err, ErrUnsupportedCompression) {
		t.Fatalf("expected ErrUnsupportedCompression, got %v", err)
	}
}

func TestByteSwap(t *testing.T) {
	if got := ByteSwap(0x01020304); got != 0x04030201 {
		t.Fatalf("ByteSwap(0x01020304) = %#x, want 0x04030201", got)
	}
	if got := ByteSwap(0); got != 0 {
		t.Fatalf("ByteSwap(0) = %#x, want 0", got)
	}
}
