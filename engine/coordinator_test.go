package engine

import "testing"

func TestSniffBOMUTF8Sig(t *testing.T) {
	r, ok := sniffBOM([]byte{0xEF, 0xBB, 0xBF, 'h', 'i'})
	if !ok {
		t.Fatal("sniffBOM() = false, want true")
	}
	if r.Encoding != "UTF-8-SIG" || r.Confidence != 1.0 {
		t.Errorf("sniffBOM() = %+v, want UTF-8-SIG at confidence 1.0", r)
	}
}

func TestSniffBOMUTF32BeforeUTF16(t *testing.T) {
	// 0xFF 0xFE 0x00 0x00 must be read as UTF-32LE, not UTF-16LE followed
	// by two NUL characters.
	r, ok := sniffBOM([]byte{0xFF, 0xFE, 0x00, 0x00})
	if !ok {
		t.Fatal("sniffBOM() = false, want true")
	}
	if r.Encoding != "UTF-32" {
		t.Errorf("sniffBOM() = %+v, want UTF-32", r)
	}
}

func TestSniffBOMUTF16LE(t *testing.T) {
	r, ok := sniffBOM([]byte{0xFF, 0xFE, 'h', 0x00})
	if !ok {
		t.Fatal("sniffBOM() = false, want true")
	}
	if r.Encoding != "UTF-16" {
		t.Errorf("sniffBOM() = %+v, want UTF-16", r)
	}
}

func TestSniffBOMNoMatch(t *testing.T) {
	if _, ok := sniffBOM([]byte("plain ascii")); ok {
		t.Fatal("sniffBOM() = true, want false for plain ASCII")
	}
}

func TestCoordinatorPureASCIICloses(t *testing.T) {
	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	c.Feed([]byte("hello world, plain ascii text"))
	r := c.Close()
	if r.Encoding != "ascii" || r.Confidence != 1.0 {
		t.Errorf("Close() = %+v, want ascii at confidence 1.0", r)
	}
}

func TestCoordinatorNoInputClosesEmpty(t *testing.T) {
	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	r := c.Close()
	if r.Encoding != "" {
		t.Errorf("Close() with no input = %+v, want empty Encoding", r)
	}
}

func TestCoordinatorBOMShortCircuitsDetection(t *testing.T) {
	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	c.Feed([]byte{0xEF, 0xBB, 0xBF})
	if !c.Done() {
		t.Fatal("Done() = false, want true right after a BOM")
	}
	r := c.Close()
	if r.Encoding != "UTF-8-SIG" {
		t.Errorf("Close() = %+v, want UTF-8-SIG", r)
	}
}

func TestCoordinatorClassifyRegimeEscASCIIIsAbsorbing(t *testing.T) {
	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	c.classifyRegime([]byte{0x1B})
	if c.inputState != EscASCII {
		t.Fatalf("inputState after ESC byte = %v, want EscASCII", c.inputState)
	}
	c.classifyRegime([]byte{0x80})
	if c.inputState != EscASCII {
		t.Fatalf("inputState after a high byte = %v, want EscASCII to stick once set", c.inputState)
	}
	c.classifyRegime([]byte("plain ascii"))
	if c.inputState != EscASCII {
		t.Fatalf("inputState changed to %v after plain ASCII, want EscASCII to stick", c.inputState)
	}
}

func TestCoordinatorClassifyRegimeHighByteIsAbsorbing(t *testing.T) {
	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	c.classifyRegime([]byte{0x80})
	if c.inputState != HighByte {
		t.Fatalf("inputState after a high byte = %v, want HighByte", c.inputState)
	}
	c.classifyRegime([]byte{0x1B})
	if c.inputState != HighByte {
		t.Fatalf("inputState after ESC byte = %v, want HighByte to stick once set", c.inputState)
	}
	c.classifyRegime([]byte("plain ascii"))
	if c.inputState != HighByte {
		t.Fatalf("inputState regressed to %v after plain ASCII, want HighByte to stick", c.inputState)
	}
}

func TestCoordinatorResetRestoresInitialState(t *testing.T) {
	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	c.Feed([]byte{0xEF, 0xBB, 0xBF})
	c.Reset()
	if c.Done() {
		t.Fatal("Done() = true after Reset, want false")
	}
	if c.inputState != PureASCII {
		t.Errorf("inputState after Reset = %v, want PureASCII", c.inputState)
	}
}

func TestFinalizeSuppressesBelowMinimumThreshold(t *testing.T) {
	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	r := c.finalize(Result{Encoding: "windows-1251", Confidence: 0.1})
	if r.Encoding != "" {
		t.Errorf("finalize() = %+v, want suppressed result below the minimum threshold", r)
	}
}

func TestFinalizeAppliesISOToWindowsSubstitution(t *testing.T) {
	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	c.hasWinByte = true
	r := c.finalize(Result{Encoding: "ISO-8859-1", Confidence: 0.8})
	if r.Encoding != "Windows-1252" {
		t.Errorf("finalize() Encoding = %q, want Windows-1252", r.Encoding)
	}
	if want := 0.8 * 0.9; r.Confidence != want {
		t.Errorf("finalize() Confidence = %v, want %v", r.Confidence, want)
	}
}

func TestFinalizeSkipsISOSubstitutionWithoutWinBytes(t *testing.T) {
	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	r := c.finalize(Result{Encoding: "ISO-8859-1", Confidence: 0.8})
	if r.Encoding != "ISO-8859-1" {
		t.Errorf("finalize() Encoding = %q, want unchanged ISO-8859-1", r.Encoding)
	}
}

func TestFinalizeNormalizesUTF16And32Labels(t *testing.T) {
	c, err := New(DefaultConfig())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := c.finalize(Result{Encoding: "UTF-16BE", Confidence: 0.9}).Encoding; got != "UTF-16" {
		t.Errorf("finalize() Encoding = %q, want UTF-16", got)
	}
	if got := c.finalize(Result{Encoding: "UTF-32LE", Confidence: 0.9}).Encoding; got != "UTF-32" {
		t.Errorf("finalize() Encoding = %q, want UTF-32", got)
	}
}
