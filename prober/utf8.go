package prober

import (
	"math"

	"github.com/coregx/chardet/internal/dist"
	"github.com/coregx/chardet/internal/models"
	"github.com/coregx/chardet/internal/sm"
)

// UTF8 validates UTF-8 byte sequences. It never reaches FoundIt via the
// DFA alone — a well-formed UTF-8 document is also well-formed in
// several single-byte encodings — so confidence instead grows with the
// number of multi-byte (non-ASCII) characters seen, exactly like
// upstream's num_mb_char bookkeeping. Completed 2-byte characters are
// also fed to a distribution analyzer over models.UTF8Distribution, but
// Confidence does not read that analyzer.
type UTF8 struct {
	machine  *sm.Machine
	analyzer *dist.Analyzer

	numMBChars int
	state      State
	lastByte   byte
}

// utf8ShortcutChars is the character-count threshold (loosely mirroring
// upstream's SHORTCUT_THRESHOLD usage for UTF-8) above which a UTF-8
// prober that has seen no invalid byte promotes straight to FoundIt.
const utf8ShortcutChars = 6

func NewUTF8() *UTF8 {
	p := &UTF8{
		machine:  sm.New(models.UTF8),
		analyzer: dist.New(models.UTF8Distribution),
	}
	p.Reset()
	return p
}

func (p *UTF8) Reset() {
	p.machine.Reset()
	p.analyzer.Reset()
	p.numMBChars = 0
	p.state = Detecting
	p.lastByte = 0
}

func (p *UTF8) Feed(chunk []byte) State {
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
			// UTF8's model never emits this sentinel state, but handle
			// it the same as every other DFA-backed prober for safety.
			p.state = FoundIt
			p.lastByte = b
			return p.state
		case sm.StateStart:
			charLen := p.machine.CurrentCharLen()
			if charLen > 1 {
				p.numMBChars++
			}
			if charLen == 2 {
				var first byte
				if i == 0 {
					first = p.lastByte
				} else {
					first = chunk[i-1]
				}
				p.analyzer.Feed([2]byte{first, b}, 2)
			}
		}
		p.lastByte = b
	}
	if p.state == Detecting && p.numMBChars > utf8ShortcutChars {
		p.state = FoundIt
	}
	return p.state
}

func (p *UTF8) Close() State { return p.state }
func (p *UTF8) State() State { return p.state }

func (p *UTF8) Confidence() float64 {
	switch p.state {
	case NotMe:
		return 0.01
	case FoundIt:
		return 0.99
	}
	// Mirrors upstream's get_confidence exactly: unlike = 0.99 * 0.5**n,
	// so confidence grows geometrically with the number of multi-byte
	// characters seen (n=1 -> 0.505, n=3 -> 0.876, ...).
	unlike := 0.99 * math.Pow(0.5, float64(p.numMBChars))
	return 1 - unlike
}

func (p *UTF8) CharsetName() string          { return "UTF-8" }
func (p *UTF8) Language() string             { return "" }
func (p *UTF8) LanguageClass() LanguageFilter { return AllLanguages }
