// Package seq implements the single-byte bigram sequence analyzer shared
// by every SBCS prober (see prober.SingleByte): it accumulates likelihood
// counts for consecutive character-order pairs against a 4-category
// language model and turns the tally into a confidence score.
package seq

import "github.com/coregx/chardet/internal/models"

const (
	sampleSize             = 64
	enoughRelThreshold     = 1024
	positiveShortcutThresh = 0.95
	negativeShortcutThresh = 0.05
)

// Analyzer accumulates bigram likelihood counts for one SBCSModel.
type Analyzer struct {
	model     *models.SBCSModel
	reversed  bool
	lastOrder uint8
	seqCounts [models.NumLikelihoods]int
	totalSeqs int
	totalChar int
	freqChar  int
}

// New creates an Analyzer bound to model. If reversed is true, bigram
// lookups swap the (last, current) order indices before indexing the
// language model — used to share one model between a charset and its
// mirror-ordered counterpart.
func New(model *models.SBCSModel, reversed bool) *Analyzer {
	a := &Analyzer{model: model, reversed: reversed}
	a.Reset()
	return a
}

// Reset restores the analyzer to its initial state. lastOrder starts at
// UndefinedCategory (255), matching spec.md's sentinel for "no previous
// character yet".
func (a *Analyzer) Reset() {
	a.lastOrder = models.UndefinedCategory
	a.seqCounts = [models.NumLikelihoods]int{}
	a.totalSeqs = 0
	a.totalChar = 0
	a.freqChar = 0
}

// Feed scores one already-filtered byte.
func (a *Analyzer) Feed(c byte) {
	order := a.model.CharToOrderMap[c]
	a.totalChar++
	if order < models.ControlCategory {
		a.freqChar++
	}

	numOrders := uint8(a.model.NumOrders())
	if order < numOrders && a.lastOrder < numOrders {
		a.totalSeqs++
		first, second := a.lastOrder, order
		if a.reversed {
			first, second = second, first
		}
		a.seqCounts[a.model.LanguageModel[first][second]]++
	}
	a.lastOrder = order
}

// EnoughSeqs reports whether totalSeqs has passed the threshold at which
// a shortcut verdict (FOUND_IT/NOT_ME) may be drawn.
func (a *Analyzer) EnoughSeqs() bool {
	return a.totalSeqs > enoughRelThreshold
}

// Confidence returns the bigram-likelihood confidence in [0.01, 0.99].
func (a *Analyzer) Confidence() float64 {
	if a.totalSeqs <= 0 {
		return 0.01
	}
	r := float64(a.seqCounts[models.Positive]) / float64(a.totalSeqs) / a.model.TypicalPositiveRatio
	r = r * (float64(a.totalSeqs) / sampleSize)
	if r >= 0.99 {
		return 0.99
	}
	if r < 0.01 {
		return 0.01
	}
	return r
}

// ShouldPromote reports a shortcut verdict once enough sequences have
// accumulated: (foundIt, notMe). At most one is true.
func (a *Analyzer) ShouldPromote() (foundIt, notMe bool) {
	if !a.EnoughSeqs() {
		return false, false
	}
	cf := a.Confidence()
	return cf > positiveShortcutThresh, cf < negativeShortcutThresh
}

// Stats exposes the raw bookkeeping counters, kept for parity with
// upstream (which tracks total_char/freq_char even though get_confidence
// doesn't consume them) and useful for tests/observability.
func (a *Analyzer) Stats() (totalChar, freqChar, totalSeqs int) {
	return a.totalChar, a.freqChar, a.totalSeqs
}
