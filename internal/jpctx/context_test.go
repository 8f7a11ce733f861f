package jpctx

import "testing"

func TestSJISHiraganaOrder(t *testing.T) {
	cases := []struct {
		first, second byte
		wantOK        bool
	}{
		{0x82, 0x9F, true},
		{0x82, 0xF1, true},
		{0x82, 0x9E, false},
		{0x81, 0x9F, false},
	}
	for _, c := range cases {
		_, ok := sjisHiraganaOrder(c.first, c.second)
		if ok != c.wantOK {
			t.Errorf("sjisHiraganaOrder(%#x,%#x) ok = %v, want %v", c.first, c.second, ok, c.wantOK)
		}
	}
}

func TestEUCJPHiraganaOrder(t *testing.T) {
	cases := []struct {
		first, second byte
		wantOK        bool
	}{
		{0xA4, 0xA1, true},
		{0xA4, 0xF3, true},
		{0xA4, 0xA0, false},
		{0xA3, 0xA1, false},
	}
	for _, c := range cases {
		_, ok := eucjpHiraganaOrder(c.first, c.second)
		if ok != c.wantOK {
			t.Errorf("eucjpHiraganaOrder(%#x,%#x) ok = %v, want %v", c.first, c.second, ok, c.wantOK)
		}
	}
}

func TestAnalyzerRepeatedKanaIsNegative(t *testing.T) {
	a := New()
	for i := 0; i < 200; i++ {
		a.FeedSJIS(0x82, 0xA0)
		a.FeedSJIS(0x82, 0xA0)
	}
	if !a.GotEnoughData() {
		t.Fatalf("expected enough data after 200 repeated pairs")
	}
	if cf := a.Confidence(); cf > 0.5 {
		t.Errorf("repeated kana should score low confidence, got %v", cf)
	}
}

func TestAnalyzerResetClearsState(t *testing.T) {
	a := New()
	a.FeedSJIS(0x82, 0xA0)
	a.FeedSJIS(0x82, 0xA1)
	a.Reset()
	if a.lastOrder != -1 || a.totalPairs != 0 {
		t.Fatalf("Reset did not clear state: %+v", a)
	}
}

func TestAnalyzerBreaksRunOnNonHiragana(t *testing.T) {
	a := New()
	a.FeedSJIS(0x82, 0xA0)
	a.FeedSJIS(0x83, 0x40) // katakana block, not hiragana: breaks the run
	if a.lastOrder != -1 {
		t.Fatalf("non-Hiragana byte should reset lastOrder, got %d", a.lastOrder)
	}
}
