package prober

import (
	"github.com/coregx/chardet/internal/models"
	"github.com/coregx/chardet/internal/seq"
	"github.com/coregx/chardet/internal/textfilter"
)

// SingleByte is the per-(encoding,language) bigram prober (spec.md §4.4).
type SingleByte struct {
	model    *models.SBCSModel
	analyzer *seq.Analyzer
	state    State
	lang     string
	class    LanguageFilter
}

// NewSingleByte builds a SingleByte prober over model. reversed swaps the
// bigram lookup's (first, second) order, used to share one language
// model between a charset and its mirror-ordered counterpart.
func NewSingleByte(model *models.SBCSModel, reversed bool, class LanguageFilter) *SingleByte {
	p := &SingleByte{
		model:    model,
		analyzer: seq.New(model, reversed),
		lang:     model.Language,
		class:    class,
	}
	p.Reset()
	return p
}

func (p *SingleByte) Reset() {
	p.analyzer.Reset()
	p.state = Detecting
}

// Feed applies the international-word filter (spec.md §4.4) before
// scoring, unless the model explicitly wants ASCII letters kept, then
// additionally applies the looser English-letters filter; an empty
// result from either filter is a no-op rather than a state change.
func (p *SingleByte) Feed(chunk []byte) State {
	if p.state != Detecting {
		return p.state
	}
	filtered := chunk
	if !p.model.KeepASCIILetters {
		filtered = textfilter.InternationalWords(chunk)
	}
	if len(filtered) == 0 {
		return p.state
	}
	filtered = textfilter.WithEnglishLetters(filtered)
	if len(filtered) == 0 {
		return p.state
	}

	for _, c := range filtered {
		p.analyzer.Feed(c)
	}

	if foundIt, notMe := p.analyzer.ShouldPromote(); foundIt {
		p.state = FoundIt
	} else if notMe {
		p.state = NotMe
	}
	return p.state
}

func (p *SingleByte) Close() State { return p.state }
func (p *SingleByte) State() State { return p.state }

func (p *SingleByte) Confidence() float64 {
	switch p.state {
	case NotMe:
		return 0.01
	case FoundIt:
		return 0.99
	}
	return p.analyzer.Confidence()
}

func (p *SingleByte) CharsetName() string           { return p.model.CharsetName }
func (p *SingleByte) Language() string              { return p.lang }
func (p *SingleByte) LanguageClass() LanguageFilter { return p.class }

// Stats exposes the underlying analyzer's raw bookkeeping counters
// (total/frequent character counts, total bigram sequences scored),
// kept even though Confidence doesn't need them, for parity with
// upstream's instance state and for tests/observability.
func (p *SingleByte) Stats() (totalChar, freqChar, totalSeqs int) {
	return p.analyzer.Stats()
}
