package bytescan

import (
	"bytes"
	"testing"
)

func TestFirstHighByteNoneFound(t *testing.T) {
	if got := FirstHighByte([]byte("plain ascii text, nothing above 0x7F here")); got != -1 {
		t.Errorf("FirstHighByte() = %d, want -1", got)
	}
}

func TestFirstHighByteAtStart(t *testing.T) {
	buf := append([]byte{0x80}, []byte("rest of the buffer")...)
	if got := FirstHighByte(buf); got != 0 {
		t.Errorf("FirstHighByte() = %d, want 0", got)
	}
}

func TestFirstHighByteWithinFirstWord(t *testing.T) {
	buf := []byte("ab\x90cdefg")
	if got := FirstHighByte(buf); got != 2 {
		t.Errorf("FirstHighByte() = %d, want 2", got)
	}
}

func TestFirstHighByteAcrossWordBoundary(t *testing.T) {
	buf := append(bytes.Repeat([]byte("a"), 17), 0xFF)
	if got := FirstHighByte(buf); got != 17 {
		t.Errorf("FirstHighByte() = %d, want 17", got)
	}
}

func TestFirstHighByteInTrailingPartialWord(t *testing.T) {
	buf := append(bytes.Repeat([]byte("a"), 20), 0xC2)
	if got := FirstHighByte(buf); got != 20 {
		t.Errorf("FirstHighByte() = %d, want 20", got)
	}
}

func TestFirstEscOrHighByte(t *testing.T) {
	tests := []struct {
		name string
		buf  []byte
		want int
	}{
		{"none", []byte("plain text"), -1},
		{"esc first", []byte("ab\x1Bcd"), 2},
		{"high byte first", []byte("ab\x80cd"), 2},
		{"empty", nil, -1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstEscOrHighByte(tt.buf); got != tt.want {
				t.Errorf("FirstEscOrHighByte(%q) = %d, want %d", tt.buf, got, tt.want)
			}
		})
	}
}
