// Package edl decodes the EDL container format: a byte-stream format
// carrying either raw (EDL-0) or Huffman/LZ77-coded (EDL-1) payloads.
//
// The core decoder is synchronous and single-threaded: Decompress and
// DecompressFile each run the whole decode in one pass and return the
// complete artifact. Callers wanting cancellation or result caching should
// wrap the call; see the internal/resultcache package for an opt-in
// memoization layer.
package edl
