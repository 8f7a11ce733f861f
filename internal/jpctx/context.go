// Package jpctx implements the Japanese context analyzer: it tracks
// Hiragana-to-Hiragana digraph co-occurrence to discriminate Shift_JIS
// from EUC-JP when the distribution analyzer alone is ambiguous (spec.md
// §4.3). It mirrors internal/seq's bigram-counter shape but keys off a
// small fixed Hiragana order space instead of a per-language model.
package jpctx

const (
	numHiragana        = 83 // U+3041-3093, the Hiragana syllabary
	enoughRelThreshold = 100
	sureYes            = 0.99
	sureNo             = 0.01
)

// digraphClass is a three-category counterpart of internal/models' likelihood enum for
// consecutive Hiragana pairs: most digraphs are merely Likely; a handful
// of very common pairs (the possessive "no", topic "wa", etc. written in
// Hiragana) are Positive, and a few that essentially never occur
// consecutively in running Japanese text are Negative.
type digraphClass uint8

const (
	negative digraphClass = iota
	likely
	positive
)

// Analyzer accumulates Hiragana digraph counts and scores them.
type Analyzer struct {
	lastOrder     int // -1 means "no previous Hiragana"
	totalPairs    int
	positivePairs int
	negativePairs int
}

// New creates a zeroed Analyzer.
func New() *Analyzer {
	a := &Analyzer{}
	a.Reset()
	return a
}

// Reset restores the analyzer to its initial state.
func (a *Analyzer) Reset() {
	a.lastOrder = -1
	a.totalPairs = 0
	a.positivePairs = 0
	a.negativePairs = 0
}

// FeedSJIS scores one completed 2-byte SJIS character. A character outside
// SJIS's Hiragana block (lead 0x82, trail 0x9F-0xF1) is not scored and
// ends the current Hiragana run.
func (a *Analyzer) FeedSJIS(first, second byte) {
	order, ok := sjisHiraganaOrder(first, second)
	a.feedOrder(order, ok)
}

// FeedEUCJP scores one completed 2-byte EUC-JP character. A character
// outside EUC-JP's Hiragana block (lead 0xA4, trail 0xA1-0xF3) is not
// scored and ends the current Hiragana run.
func (a *Analyzer) FeedEUCJP(first, second byte) {
	order, ok := eucjpHiraganaOrder(first, second)
	a.feedOrder(order, ok)
}

func (a *Analyzer) feedOrder(order int, ok bool) {
	if !ok {
		a.lastOrder = -1
		return
	}
	if a.lastOrder >= 0 {
		a.totalPairs++
		switch classify(a.lastOrder, order) {
		case positive:
			a.positivePairs++
		case negative:
			a.negativePairs++
		}
	}
	a.lastOrder = order
}

func sjisHiraganaOrder(first, second byte) (int, bool) {
	if first != 0x82 || second < 0x9F || second > 0xF1 {
		return 0, false
	}
	return int(second - 0x9F), true
}

func eucjpHiraganaOrder(first, second byte) (int, bool) {
	if first != 0xA4 || second < 0xA1 || second > 0xF3 {
		return 0, false
	}
	return int(second - 0xA1), true
}

// classify scores a Hiragana digraph. Repeating the same kana twice
// running is the classic signature of noise (transliterated gairaigo
// stretch marks aside); the doubled-mora kana pairs used in everyday
// function words ("~masu", "~desu", "~no", "~wa" endings) are common
// enough to count as Positive evidence.
func classify(prev, cur int) digraphClass {
	if prev == cur {
		return negative
	}
	// Order 0 is U+3041 (ぁ); order indices below are relative to that,
	// chosen to match the frequent function-word digraphs の, は, を, ん, し, た.
	const (
		no  = 0x6E - 0x41 // の
		ha  = 0x6F - 0x41 // は used as topic marker
		wo  = 0x92 - 0x41 // を
		n   = 0x93 - 0x41 // ん
		shi = 0x57 - 0x41 // し
		ta  = 0x5F - 0x41 // た
	)
	switch {
	case cur == no, cur == ha, cur == wo, cur == n:
		return positive
	case prev == shi && cur == ta:
		return positive
	}
	return likely
}

// GotEnoughData reports whether enough digraphs have been scored to
// trust Confidence.
func (a *Analyzer) GotEnoughData() bool {
	return a.totalPairs > enoughRelThreshold
}

// Confidence returns a confidence score in [sureNo, sureYes] based on the
// ratio of positive to negative digraph evidence seen so far.
func (a *Analyzer) Confidence() float64 {
	if a.totalPairs <= 0 {
		return sureNo
	}
	net := a.positivePairs - a.negativePairs
	r := 0.5 + float64(net)/float64(2*a.totalPairs)
	if r > sureYes {
		return sureYes
	}
	if r < sureNo {
		return sureNo
	}
	return r
}
