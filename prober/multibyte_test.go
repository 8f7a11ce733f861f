package prober

import (
	"bytes"
	"testing"
)

func TestMultiByteRejectsInvalidSJISLeadByte(t *testing.T) {
	p := NewSJISProber()
	// 0xFD is outside every SJIS lead/trail byte class.
	if st := p.Feed([]byte{0xFD}); st != NotMe {
		t.Fatalf("Feed() = %v, want NotMe", st)
	}
}

func TestMultiByteFeedAcrossChunkBoundary(t *testing.T) {
	p := NewSJISProber()
	p.Feed([]byte{0x82}) // SJIS lead byte, trail byte arrives in the next chunk
	st := p.Feed([]byte{0xA0})
	if st != Detecting {
		t.Fatalf("Feed() split across chunks = %v, want Detecting", st)
	}
}

func TestMultiByteResetClearsDistributionAndJPContext(t *testing.T) {
	p := NewSJISProber()
	p.Feed(bytes.Repeat([]byte{0x82, 0xA0}, 50))
	p.Reset()
	if p.State() != Detecting {
		t.Fatalf("State() after Reset = %v, want Detecting", p.State())
	}
	if got := p.Confidence(); got != 0.01 {
		t.Errorf("Confidence() after Reset = %v, want 0.01 with no data", got)
	}
}

func TestMultiByteCharsetNameAndLanguage(t *testing.T) {
	p := NewEUCJPProber()
	if p.CharsetName() != "EUC-JP" {
		t.Errorf("CharsetName() = %q, want EUC-JP", p.CharsetName())
	}
	if p.Language() != "Japanese" {
		t.Errorf("Language() = %q, want Japanese", p.Language())
	}
	if p.LanguageClass() != Japanese {
		t.Errorf("LanguageClass() = %v, want Japanese", p.LanguageClass())
	}
}

func TestMultiByteConfidenceTerminalStates(t *testing.T) {
	p := NewSJISProber()
	p.state = NotMe
	if got := p.Confidence(); got != 0.01 {
		t.Errorf("Confidence() at NotMe = %v, want 0.01", got)
	}
	p.state = FoundIt
	if got := p.Confidence(); got != 0.99 {
		t.Errorf("Confidence() at FoundIt = %v, want 0.99", got)
	}
}
