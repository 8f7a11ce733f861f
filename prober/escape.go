package prober

import (
	"bytes"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/chardet/internal/models"
)

// Escape is the DFA over ISO-2022/HZ escape sequences (spec.md §4,
// component 8). Rather than a hand-rolled transition table it reuses the
// teacher module's own multi-literal matcher: the designator table is
// small and fixed, so one Aho-Corasick automaton built once at
// construction time finds whichever designator appears first in O(n).
type Escape struct {
	automaton *ahocorasick.Automaton
	state     State
	charset   string
	buf       []byte
}

// NewEscape builds the escape prober's Aho-Corasick automaton from
// models.EscapeSequences. A build failure (which would only happen if
// the fixed literal table were malformed) degrades to an always-NotMe
// prober rather than panicking — there is no legal way for this prober
// to participate if its automaton never built.
func NewEscape() *Escape {
	builder := ahocorasick.NewBuilder()
	for _, seq := range models.EscapeSequences {
		builder.AddPattern(seq.Literal)
	}
	auto, err := builder.Build()
	p := &Escape{automaton: auto}
	if err != nil {
		p.automaton = nil
	}
	p.Reset()
	return p
}

func (p *Escape) Reset() {
	p.state = Detecting
	p.charset = ""
	p.buf = p.buf[:0]
}

// Feed buffers the stream (escape designators are at most 4 bytes, so
// the buffer only needs to retain the last few bytes across chunk
// boundaries) and searches for the first designator match.
func (p *Escape) Feed(chunk []byte) State {
	if p.state != Detecting {
		return p.state
	}
	if p.automaton == nil {
		p.state = NotMe
		return p.state
	}
	p.buf = append(p.buf, chunk...)

	if m := p.automaton.Find(p.buf, 0); m != nil {
		matched := p.buf[m.Start:m.End]
		for _, seq := range models.EscapeSequences {
			if bytes.Equal(seq.Literal, matched) {
				p.charset = seq.CharsetName
				p.state = FoundIt
				return p.state
			}
		}
	}

	// Keep only a short tail: no designator in the table is longer than
	// 4 bytes, so anything earlier can never start a still-pending match.
	const maxDesignatorLen = 4
	if len(p.buf) > maxDesignatorLen {
		p.buf = p.buf[len(p.buf)-maxDesignatorLen:]
	}
	return p.state
}

func (p *Escape) Close() State { return p.state }
func (p *Escape) State() State { return p.state }

func (p *Escape) Confidence() float64 {
	if p.state == FoundIt {
		return 0.99
	}
	return 0.01
}

func (p *Escape) CharsetName() string          { return p.charset }
func (p *Escape) Language() string             { return "" }
func (p *Escape) LanguageClass() LanguageFilter { return AllLanguages }
