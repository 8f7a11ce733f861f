package prober

// Final/non-final Hebrew consonant byte pairs in Windows-1255 (the
// logical-order encoding these non-owning probers are scored against;
// the logical and visual variants share the same glyph byte values, just
// in opposite stream order, which is exactly what the score is for).
const (
	hebFinalKaf      = 0xEA
	hebNonFinalKaf   = 0xEB
	hebFinalMem      = 0xED
	hebNonFinalMem   = 0xEE
	hebFinalNun      = 0xEF
	hebNonFinalNun   = 0xF0
	hebFinalPe       = 0xF3
	hebNonFinalPe    = 0xF4
	hebFinalTsadi    = 0xF5
	hebNonFinalTsadi = 0xF6
)

func isFinalForm(b byte) bool {
	switch b {
	case hebFinalKaf, hebFinalMem, hebFinalNun, hebFinalPe, hebFinalTsadi:
		return true
	}
	return false
}

func isNonFinalForm(b byte) bool {
	switch b {
	case hebNonFinalKaf, hebNonFinalMem, hebNonFinalNun, hebNonFinalPe, hebNonFinalTsadi:
		return true
	}
	return false
}

// decisiveScoreGap is the |logical - visual| gap spec.md §4.5 treats as
// decisive without consulting the underlying model probers' confidence.
const decisiveScoreGap = 5

// Hebrew arbitrates between logical (windows-1255) and visual
// (ISO-8859-8) Hebrew using final-consonant-form statistics. It does not
// score independently: per spec.md §9 it holds non-owning references to
// the two SingleByte probers that are also registered, separately, in
// the SBCS group.
type Hebrew struct {
	logical *SingleByte // windows-1255, borrowed from the SBCS group
	visual  *SingleByte // ISO-8859-8, borrowed from the SBCS group

	logicalScore int
	visualScore  int
	prevChar     byte
	havePrev     bool
}

// NewHebrew wraps the two model probers. Both must already be registered
// (and owned) elsewhere — typically in the same group.Group this arbiter
// is itself registered in.
func NewHebrew(logical, visual *SingleByte) *Hebrew {
	h := &Hebrew{logical: logical, visual: visual}
	h.Reset()
	return h
}

func (h *Hebrew) Reset() {
	h.logicalScore = 0
	h.visualScore = 0
	h.havePrev = false
	h.prevChar = 0
}

// Feed tracks final-vs-non-final consonant transitions; it never
// consumes the underlying probers' output itself — the group prober
// feeds those separately.
func (h *Hebrew) Feed(chunk []byte) State {
	for _, b := range chunk {
		if h.havePrev {
			switch {
			case isFinalForm(b) && isNonFinalForm(h.prevChar):
				h.logicalScore++
				h.visualScore--
			case isNonFinalForm(b) && isFinalForm(h.prevChar):
				h.logicalScore--
				h.visualScore++
			}
		}
		h.prevChar = b
		h.havePrev = true
	}
	return h.State()
}

func (h *Hebrew) Close() State { return h.State() }

// State reports NotMe only when both underlying model probers have
// themselves reached NotMe; otherwise Detecting (spec.md §4.5 — the
// arbiter has no FoundIt verdict of its own).
func (h *Hebrew) State() State {
	if h.logical.State() == NotMe && h.visual.State() == NotMe {
		return NotMe
	}
	return Detecting
}

// CharsetName implements spec.md §4.5's get_charset_name: a decisive
// final-form score gap wins outright; otherwise the model prober with
// meaningfully higher confidence wins; otherwise default to logical.
func (h *Hebrew) CharsetName() string {
	diff := h.logicalScore - h.visualScore
	if diff >= decisiveScoreGap {
		return h.logical.CharsetName()
	}
	if -diff >= decisiveScoreGap {
		return h.visual.CharsetName()
	}
	lc, vc := h.logical.Confidence(), h.visual.Confidence()
	if lc-vc >= 0.01 {
		return h.logical.CharsetName()
	}
	if vc-lc >= 0.01 {
		return h.visual.CharsetName()
	}
	return h.logical.CharsetName()
}

// Confidence implements spec.md §4.5's get_confidence: a decisive
// final-form gap reports a fixed 0.95 regardless of the model probers'
// own confidence; short of that, a meaningfully higher model confidence
// wins; otherwise a moderate 0.5 (not either model's raw confidence —
// there is no clear winner to attribute it to).
func (h *Hebrew) Confidence() float64 {
	diff := h.logicalScore - h.visualScore
	if diff < 0 {
		diff = -diff
	}
	if diff >= decisiveScoreGap {
		return 0.95
	}
	lc, vc := h.logical.Confidence(), h.visual.Confidence()
	if d := lc - vc; d >= 0.01 || -d >= 0.01 {
		if lc > vc {
			return lc
		}
		return vc
	}
	return 0.5
}

func (h *Hebrew) Language() string             { return "Hebrew" }
func (h *Hebrew) LanguageClass() LanguageFilter { return NonCJK }
