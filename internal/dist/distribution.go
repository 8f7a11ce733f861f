// Package dist implements the 2-byte-character frequency-rank distribution
// analyzer shared by every multi-byte prober (see prober.MultiByte).
package dist

import "github.com/coregx/chardet/internal/models"

const (
	// enoughDataThreshold matches spec.md §4.2's got_enough_data() cutoff.
	enoughDataThreshold = 1024
	// sureYes and sureNo are the saturating confidence bounds.
	sureYes = 0.99
	sureNo  = 0.01
	// minimumDataThreshold guards against drawing conclusions from a
	// handful of accidental high-frequency-rank bytes.
	minimumDataThreshold = 3
	// freqRankCutoff is the frequency-order cutoff below which a character
	// counts toward freqChars, fixed by spec.md §4.2 (not per-model).
	freqRankCutoff = 512
)

// Analyzer accumulates a 2-byte-character frequency-rank histogram for one
// Model and turns it into a confidence score.
type Analyzer struct {
	model      *models.DistributionModel
	totalChars int
	freqChars  int
}

// New creates an Analyzer bound to model.
func New(model *models.DistributionModel) *Analyzer {
	a := &Analyzer{model: model}
	a.Reset()
	return a
}

// Reset zeroes both counters.
func (a *Analyzer) Reset() {
	a.totalChars = 0
	a.freqChars = 0
}

// Feed scores one character. It is a no-op unless charLen == 2: only
// 2-byte characters carry a meaningful frequency-order lookup.
func (a *Analyzer) Feed(char [2]byte, charLen int) {
	if charLen != 2 {
		return
	}
	order := a.model.CharToFreqOrder[char[0]]
	if order < 0 || int(order) >= a.model.TableSize {
		return
	}
	a.totalChars++
	if int(order) < freqRankCutoff {
		a.freqChars++
	}
}

// GotEnoughData reports whether enough characters have been scored to
// trust the confidence estimate.
func (a *Analyzer) GotEnoughData() bool {
	return a.totalChars > enoughDataThreshold
}

// Confidence returns the current confidence in [sureNo, sureYes].
func (a *Analyzer) Confidence() float64 {
	if a.totalChars <= 0 || a.freqChars <= minimumDataThreshold {
		return sureNo
	}
	if a.totalChars == a.freqChars {
		return sureYes
	}
	r := float64(a.freqChars) / (float64(a.totalChars-a.freqChars) * a.model.TypicalDistributionRatio)
	if r < sureYes {
		return r
	}
	return sureYes
}

// TotalChars and FreqChars expose the raw counters for tests and for
// components (like the SJIS context analyzer) that need to gate on
// whether any 2-byte characters have been seen at all.
func (a *Analyzer) TotalChars() int { return a.totalChars }
func (a *Analyzer) FreqChars() int  { return a.freqChars }
