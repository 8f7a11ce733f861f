package prober

import "testing"

func utf32beBytes(n int) []byte {
	var out []byte
	for i := 0; i < n; i++ {
		out = append(out, 0x00, 0x00, 0x00, byte('A'+i%26))
	}
	return out
}

func utf32leBytes(n int) []byte {
	var out []byte
	for i := 0; i < n; i++ {
		out = append(out, byte('A'+i%26), 0x00, 0x00, 0x00)
	}
	return out
}

func TestUTF1632DetectsUTF32BE(t *testing.T) {
	p := NewUTF1632()
	p.Feed(utf32beBytes(utf1632MinCharsForDetection + 5))
	if got := p.CharsetName(); got != "UTF-32BE" {
		t.Fatalf("CharsetName() = %q, want UTF-32BE", got)
	}
}

func TestUTF1632DetectsUTF32LE(t *testing.T) {
	p := NewUTF1632()
	p.Feed(utf32leBytes(utf1632MinCharsForDetection + 5))
	if got := p.CharsetName(); got != "UTF-32LE" {
		t.Fatalf("CharsetName() = %q, want UTF-32LE", got)
	}
}

func TestUTF1632ResetClearsState(t *testing.T) {
	p := NewUTF1632()
	p.Feed(utf32beBytes(utf1632MinCharsForDetection + 5))
	p.Reset()
	if p.State() != Detecting {
		t.Fatalf("State() after Reset = %v, want Detecting", p.State())
	}
	if p.CharsetName() != "" {
		t.Fatalf("CharsetName() after Reset = %q, want empty", p.CharsetName())
	}
}

func TestUTF1632Validators(t *testing.T) {
	if !utf32Valid([4]byte{0x00, 0x01, 0x00, 0x00}) {
		t.Error("utf32Valid() = false for a valid low code point, want true")
	}
	if utf32Valid([4]byte{0x00, 0x11, 0x00, 0x00}) {
		t.Error("utf32Valid() = true for a code point above U+10FFFF, want false")
	}
	if utf32Valid([4]byte{0x00, 0x00, 0xD8, 0x00}) {
		t.Error("utf32Valid() = true for a surrogate code point, want false")
	}
}

func TestUTF1632UTF16ValidatorAlwaysTrue(t *testing.T) {
	// utf16Valid is an intentionally faithful port of an upstream branch
	// that's unreachable in practice; it always returns true regardless
	// of input, and this quirk is preserved rather than silently fixed.
	if !utf16Valid(0xFF, 0xFF) {
		t.Error("utf16Valid() = false, want true (unreachable-branch quirk preserved)")
	}
}
