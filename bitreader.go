package edl

import "io"

// bitReader wraps a seekable byte source and serves bits LSB-first out of a
// 64-bit accumulator, refilling four bytes at a time with endian correction.
// This unifies what the legacy decoder threaded as separate mutable
// parameters (data, pos, count) into a single stateful component; refill is
// now a method rather than a free function taking a box of out-parameters.
type bitReader struct {
	src    io.ReaderAt
	endian Endian

	acc  uint64
	bits uint

	pos          int64 // byte offset into the compressed stream, from streamOffset
	streamOffset int64 // absolute offset of the container start in src
}

func newBitReader(src io.ReaderAt, streamOffset int64, endian Endian) *bitReader {
	return &bitReader{
		src:          src,
		endian:       endian,
		pos:          headerLen,
		streamOffset: streamOffset,
	}
}

// refill tops up the accumulator, mirroring the legacy refill(current_bits)
// contract: if there is already more than 32 bits of headroom, it is a
// no-op. Otherwise it reads up to 4 bytes from the source at the current
// position, byte-swapping them if the container declares big-endian, and
// folds them into the high end of the accumulator. When the source is
// exhausted, fewer than 4 bytes (possibly zero) are folded in; bits still
// advances by whatever was actually read, so a decoder loop that keeps
// refilling past end-of-stream will see bits stop growing and can detect
// exhaustion by bits no longer increasing.
func (b *bitReader) refill() {
	if b.bits > 32 {
		return
	}

	var buf [4]byte
	n, _ := b.src.ReadAt(buf[:], b.streamOffset+b.pos)
	if n <= 0 {
		return
	}

	var word uint32
	for i := 0; i < n; i++ {
		word |= uint32(buf[i]) << (8 * uint(i))
	}
	if b.endian == BigEndian {
		word = ByteSwap(word)
	}

	b.acc |= uint64(word) << b.bits
	b.bits += uint(n) * 8
	b.pos += int64(n)
}

// readBits consumes n bits (n <= 32) LSB-first, refilling first if needed.
func (b *bitReader) readBits(n uint) uint32 {
	if b.bits < n {
		b.refill()
	}
	mask := uint64(1)<<n - 1
	v := uint32(b.acc & mask)
	b.acc >>= n
	if b.bits >= n {
		b.bits -= n
	} else {
		b.bits = 0
	}
	return v
}

// peekBits looks at n bits without consuming them, refilling first if
// needed. Used by the emit loop to probe the primary Huffman table before
// knowing how many bits the matched code actually occupies.
func (b *bitReader) peekBits(n uint) uint32 {
	if b.bits < n {
		b.refill()
	}
	mask := uint64(1)<<n - 1
	return uint32(b.acc & mask)
}

// peekBitsAt looks skip bits into the accumulator and returns the following
// n bits, without consuming anything. Used to resolve the overflow region of
// a dual-level Huffman table: the first k bits select a primary slot, and if
// that slot is an overflow header the next few bits (beyond the first k)
// select a secondary slot.
func (b *bitReader) peekBitsAt(skip, n uint) uint32 {
	if b.bits < skip+n {
		b.refill()
	}
	mask := uint64(1)<<n - 1
	return uint32((b.acc >> skip) & mask)
}

// dropBits discards n already-peeked bits.
func (b *bitReader) dropBits(n uint) {
	b.acc >>= n
	if b.bits >= n {
		b.bits -= n
	} else {
		b.bits = 0
	}
}

func (b *bitReader) readBit() uint32 {
	return b.readBits(1)
}

// exhausted reports whether the accumulator holds no valid bits. It does not
// probe the source, so it is also true before the first refill.
func (b *bitReader) exhausted() bool {
	return b.bits == 0
}
