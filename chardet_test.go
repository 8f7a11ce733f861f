package chardet

import "testing"

func TestDetectPlainASCII(t *testing.T) {
	r := Detect([]byte("the quick brown fox jumps over the lazy dog"))
	if r.Encoding != "ascii" {
		t.Errorf("Detect() Encoding = %q, want ascii", r.Encoding)
	}
	if r.Confidence != 1.0 {
		t.Errorf("Detect() Confidence = %v, want 1.0", r.Confidence)
	}
}

func TestDetectUTF8SigBOM(t *testing.T) {
	r := Detect(append([]byte{0xEF, 0xBB, 0xBF}, "hello"...))
	if r.Encoding != "UTF-8-SIG" {
		t.Errorf("Detect() Encoding = %q, want UTF-8-SIG", r.Encoding)
	}
}

func TestDetectorFeedCloseRoundTrip(t *testing.T) {
	det := New()
	det.Feed([]byte("first chunk "))
	det.Feed([]byte("second chunk, still plain ascii"))
	r := det.Close()
	if r.Encoding != "ascii" {
		t.Errorf("Close() Encoding = %q, want ascii", r.Encoding)
	}
}

func TestDetectorResetAllowsReuse(t *testing.T) {
	det := New()
	det.Feed([]byte{0xEF, 0xBB, 0xBF})
	if !det.Done() {
		t.Fatal("Done() = false, want true after a BOM")
	}
	det.Reset()
	if det.Done() {
		t.Fatal("Done() = true after Reset, want false")
	}
	det.Feed([]byte("plain ascii again"))
	if r := det.Close(); r.Encoding != "ascii" {
		t.Errorf("Close() after Reset = %q, want ascii", r.Encoding)
	}
}

func TestNewWithConfigRejectsInvalidConfig(t *testing.T) {
	config := DefaultConfig()
	config.MaxInputBytes = 0
	if _, err := NewWithConfig(config); err == nil {
		t.Fatal("NewWithConfig() error = nil, want a ConfigError for MaxInputBytes = 0")
	}
}

func TestLanguageFilterConstantsAreDistinctBits(t *testing.T) {
	all := ChineseSimplified | ChineseTraditional | Japanese | Korean | NonCJK
	if all != AllLanguages {
		t.Errorf("OR of every named filter = %v, want AllLanguages (%v)", all, AllLanguages)
	}
}
