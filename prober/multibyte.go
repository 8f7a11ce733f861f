package prober

import (
	"github.com/coregx/chardet/internal/dist"
	"github.com/coregx/chardet/internal/jpctx"
	"github.com/coregx/chardet/internal/models"
	"github.com/coregx/chardet/internal/sm"
)

// shortcutThreshold is spec.md §4.3's SHORTCUT_THRESHOLD: once enough
// data has been seen, a distribution confidence above this promotes
// DETECTING straight to FoundIt without waiting for Close.
const shortcutThreshold = 0.95

// jpContextMode selects which completed-pair feed a MultiByte prober
// drives into its optional Japanese context analyzer.
type jpContextMode uint8

const (
	jpContextNone jpContextMode = iota
	jpContextSJIS
	jpContextEUCJP
)

// MultiByte wraps one coding state machine and one distribution analyzer
// (spec.md §4.3), optionally also driving a Japanese Hiragana context
// analyzer for SJIS/EUC-JP.
type MultiByte struct {
	machine  *sm.Machine
	analyzer *dist.Analyzer
	jpCtx    *jpctx.Analyzer
	jpMode   jpContextMode

	charsetName string
	language    string
	langClass   LanguageFilter

	state    State
	lastByte byte
}

// NewMultiByte constructs a MultiByte prober for one coding/distribution
// model pair.
func NewMultiByte(codingModel *sm.Model, distModel *models.DistributionModel, charsetName, language string, langClass LanguageFilter) *MultiByte {
	p := &MultiByte{
		machine:     sm.New(codingModel),
		analyzer:    dist.New(distModel),
		charsetName: charsetName,
		language:    language,
		langClass:   langClass,
	}
	p.Reset()
	return p
}

// NewSJISProber builds the Shift_JIS MultiByte prober, wired to also
// drive the Japanese context analyzer (spec.md §4.3's "for SJIS... drives
// the context analyzer with each completed pair").
func NewSJISProber() *MultiByte {
	p := NewMultiByte(models.SJIS, models.SJISDistribution, "Shift_JIS", "Japanese", Japanese)
	p.jpCtx = jpctx.New()
	p.jpMode = jpContextSJIS
	return p
}

// NewEUCJPProber builds the EUC-JP MultiByte prober, also context-aware.
func NewEUCJPProber() *MultiByte {
	p := NewMultiByte(models.EUCJP, models.EUCJPDistribution, "EUC-JP", "Japanese", Japanese)
	p.jpCtx = jpctx.New()
	p.jpMode = jpContextEUCJP
	return p
}

func (p *MultiByte) Reset() {
	p.machine.Reset()
	p.analyzer.Reset()
	if p.jpCtx != nil {
		p.jpCtx.Reset()
	}
	p.state = Detecting
	p.lastByte = 0
}

// Feed steps the DFA byte by byte, feeding the distribution analyzer
// (and, if present, the context analyzer) each time a character
// completes, per spec.md §4.3.
func (p *MultiByte) Feed(chunk []byte) State {
	if p.state != Detecting {
		return p.state
	}
	for i, b := range chunk {
		next := p.machine.NextState(b)

		switch next {
		case sm.StateError:
			p.state = NotMe
			p.lastByte = b
			return p.state
		case sm.StateItsMe:
			p.state = FoundIt
			p.lastByte = b
			return p.state
		case sm.StateStart:
			var first byte
			if i == 0 {
				first = p.lastByte
			} else {
				first = chunk[i-1]
			}
			p.feedPair(first, b, p.machine.CurrentCharLen())
		}
		p.lastByte = b
	}

	if p.state == Detecting && p.analyzer.GotEnoughData() && p.distributionConfidence() > shortcutThreshold {
		p.state = FoundIt
	}
	return p.state
}

func (p *MultiByte) feedPair(first, second byte, charLen int) {
	p.analyzer.Feed([2]byte{first, second}, charLen)
	if p.jpCtx != nil && charLen == 2 {
		switch p.jpMode {
		case jpContextSJIS:
			p.jpCtx.FeedSJIS(first, second)
		case jpContextEUCJP:
			p.jpCtx.FeedEUCJP(first, second)
		}
	}
}

func (p *MultiByte) distributionConfidence() float64 {
	return p.analyzer.Confidence()
}

func (p *MultiByte) Close() State {
	return p.state
}

func (p *MultiByte) State() State { return p.state }

// Confidence delegates to the distribution analyzer; for the
// context-aware Japanese probers it returns the max of the context and
// distribution confidences (spec.md §4.3).
func (p *MultiByte) Confidence() float64 {
	if p.state == NotMe {
		return 0.01
	}
	if p.state == FoundIt {
		return 0.99
	}
	cf := p.distributionConfidence()
	if p.jpCtx != nil && p.jpCtx.GotEnoughData() {
		if jc := p.jpCtx.Confidence(); jc > cf {
			return jc
		}
	}
	return cf
}

func (p *MultiByte) CharsetName() string          { return p.charsetName }
func (p *MultiByte) Language() string             { return p.language }
func (p *MultiByte) LanguageClass() LanguageFilter { return p.langClass }
