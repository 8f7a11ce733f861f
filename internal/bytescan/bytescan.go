// Package bytescan provides a SWAR (SIMD-within-a-register) byte scan for
// the coordinator's input-regime classification (engine.Coordinator):
// finding the first byte at or above 0x80 in a chunk without a per-byte
// branch on every iteration. FirstEscOrHighByte, which also stops at ESC
// (0x1B), is a plain byte-at-a-time loop.
//
// Unlike github.com/coregx/coregex/simd, this never drops into assembly:
// the eight-bytes-at-a-time trick works entirely in portable Go, so there
// is no architecture-specific fallback to maintain. cpu.X86.HasAVX2 is
// still consulted, matching how the teacher package gates its own
// accelerated path, but only to choose the word-scan stride; correctness
// never depends on it.
package bytescan

import "golang.org/x/sys/cpu"

// hasAVX2 selects FirstHighByte's stride: 16 bytes (two uint64 words) per
// iteration when the CPU reports AVX2, 8 otherwise. The SWAR test itself
// always works on uint64 words and never uses vector instructions.
var hasAVX2 = cpu.X86.HasAVX2

const (
	highBitMask uint64 = 0x8080808080808080
	escByte            = 0x1B
)

// FirstHighByte returns the index of the first byte >= 0x80 in buf, or -1
// if there is none. On AVX2-capable hardware it checks two words per
// iteration before falling back to the byte-level scan inside the
// matching word; elsewhere it checks one word at a time. Both strides are
// pure Go — only the stride, not the mechanism, depends on hasAVX2.
func FirstHighByte(buf []byte) int {
	stride := 8
	if hasAVX2 {
		stride = 16
	}
	i := 0
	for ; i+stride <= len(buf); i += stride {
		if !anyHighByte(buf[i:i+stride]) {
			continue
		}
		for j := 0; j < stride; j++ {
			if buf[i+j] >= 0x80 {
				return i + j
			}
		}
	}
	for ; i < len(buf); i++ {
		if buf[i] >= 0x80 {
			return i
		}
	}
	return -1
}

func anyHighByte(word []byte) bool {
	for len(word) >= 8 {
		if le64(word[:8])&highBitMask != 0 {
			return true
		}
		word = word[8:]
	}
	for _, b := range word {
		if b >= 0x80 {
			return true
		}
	}
	return false
}

// FirstEscOrHighByte returns the index of the first byte that is either
// ESC (0x1B) or >= 0x80, or -1 if there is none. engine.Coordinator does
// not call it: its regime classification uses FirstHighByte and then
// looks for ESC and "~{" itself.
func FirstEscOrHighByte(buf []byte) int {
	for i, b := range buf {
		if b >= 0x80 || b == escByte {
			return i
		}
	}
	return -1
}

func le64(b []byte) uint64 {
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}
