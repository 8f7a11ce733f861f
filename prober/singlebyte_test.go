package prober

import (
	"bytes"
	"testing"

	"github.com/coregx/chardet/internal/models"
)

func TestSingleByteResetClearsState(t *testing.T) {
	p := NewSingleByte(models.Windows1251, false, NonCJK)
	p.Feed(bytes.Repeat([]byte{0xE0, 0xE1}, 100))
	p.Reset()
	if p.State() != Detecting {
		t.Fatalf("State() after Reset = %v, want Detecting", p.State())
	}
	if p.Confidence() != 0.01 {
		t.Fatalf("Confidence() after Reset = %v, want 0.01", p.Confidence())
	}
}

func TestSingleByteConfidenceTerminalStates(t *testing.T) {
	p := NewSingleByte(models.Windows1251, false, NonCJK)
	p.state = FoundIt
	if got := p.Confidence(); got != 0.99 {
		t.Errorf("Confidence() at FoundIt = %v, want 0.99", got)
	}
	p.state = NotMe
	if got := p.Confidence(); got != 0.01 {
		t.Errorf("Confidence() at NotMe = %v, want 0.01", got)
	}
}

func TestSingleByteCharsetNameAndLanguage(t *testing.T) {
	p := NewSingleByte(models.Windows1251, false, NonCJK)
	if p.CharsetName() != "windows-1251" {
		t.Errorf("CharsetName() = %q, want windows-1251", p.CharsetName())
	}
	if p.Language() != "Russian" {
		t.Errorf("Language() = %q, want Russian", p.Language())
	}
	if p.LanguageClass() != NonCJK {
		t.Errorf("LanguageClass() = %v, want NonCJK", p.LanguageClass())
	}
}

func TestSingleByteFeedAfterTerminalIsNoop(t *testing.T) {
	p := NewSingleByte(models.Windows1251, false, NonCJK)
	p.state = NotMe
	if got := p.Feed([]byte("hello")); got != NotMe {
		t.Errorf("Feed() after NotMe = %v, want NotMe", got)
	}
}

func TestSingleByteKeepASCIILettersSkipsFilter(t *testing.T) {
	p := NewSingleByte(models.Windows1250, false, NonCJK)
	if !p.model.KeepASCIILetters {
		t.Fatal("Windows1250 model must set KeepASCIILetters for this test to be meaningful")
	}
	st := p.Feed([]byte("hello world this is english text"))
	if st != Detecting {
		t.Fatalf("Feed() = %v, want Detecting on short plain input", st)
	}
}
