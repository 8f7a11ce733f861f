// Package engine implements the universal coordinator (spec.md §4.7):
// BOM sniffing, input-regime classification, dispatch to the escape
// prober or the UTF-16/32 + group probers, and final-verdict
// reconciliation (ISO→Windows substitution, label normalization, the
// minimum-confidence floor).
package engine

import (
	"bytes"

	"github.com/coregx/chardet/group"
	"github.com/coregx/chardet/internal/bytescan"
	"github.com/coregx/chardet/prober"
)

// InputState mirrors spec.md §3's InputState: {PURE_ASCII, ESC_ASCII,
// HIGH_BYTE}. Upgrades are monotonic: PURE_ASCII may become ESC_ASCII or
// HIGH_BYTE; HIGH_BYTE is absorbing relative to ESC_ASCII.
type InputState uint8

const (
	PureASCII InputState = iota
	EscASCII
	HighByte
)

// minimumThreshold is spec.md §4.7's MINIMUM_THRESHOLD: a result below
// this confidence is suppressed (reported as no verdict).
const minimumThreshold = 0.2

// isoToWindows is the exact substitution table from spec.md §4.7,
// applied only when has_win_bytes is set.
var isoToWindows = map[string]string{
	"iso-8859-1":  "Windows-1252",
	"iso-8859-2":  "Windows-1250",
	"iso-8859-5":  "Windows-1251",
	"iso-8859-6":  "Windows-1256",
	"iso-8859-7":  "Windows-1253",
	"iso-8859-8":  "Windows-1255",
	"iso-8859-9":  "Windows-1254",
	"iso-8859-13": "Windows-1257",
}

// Result is the coordinator's output (spec.md §3).
type Result struct {
	Encoding   string
	Confidence float64
	Language   string
}

// Coordinator owns the full feed/close lifecycle.
type Coordinator struct {
	config Config

	inputState InputState
	hasWinByte bool
	bomDone    bool
	fedAny     bool

	escape  *prober.Escape
	utf1632 *prober.UTF1632
	mbcs    *group.Group
	sbcs    *group.Group
	latin1  *prober.SingleByte

	done   bool
	result Result
}

// New constructs a Coordinator with the given configuration. An invalid
// config is reported via ConfigError rather than panicking; callers that
// don't validate their own config should check the returned error.
func New(config Config) (*Coordinator, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	c := &Coordinator{config: config}
	c.buildProbers()
	c.Reset()
	return c, nil
}

func (c *Coordinator) buildProbers() {
	c.escape = prober.NewEscape()
	c.utf1632 = prober.NewUTF1632()
	c.mbcs = group.NewMBCSGroup(c.config.LanguageFilter)
	c.sbcs = group.NewSBCSGroup()
	c.latin1 = prober.NewLatin1()
}

// Reset restores the coordinator to its initial state, including every
// sub-prober it owns.
func (c *Coordinator) Reset() {
	c.inputState = PureASCII
	c.hasWinByte = false
	c.bomDone = false
	c.fedAny = false
	c.done = false
	c.result = Result{}
	c.escape.Reset()
	c.utf1632.Reset()
	c.mbcs.Reset()
	c.sbcs.Reset()
	c.latin1.Reset()
}

// Feed pushes one chunk. It is a no-op once the coordinator is Done.
func (c *Coordinator) Feed(chunk []byte) {
	if c.done || len(chunk) == 0 {
		return
	}
	c.fedAny = true

	if !c.bomDone {
		c.bomDone = true
		if bom, ok := sniffBOM(chunk); ok {
			c.result = bom
			c.done = true
			return
		}
	}

	c.classifyRegime(chunk)

	switch c.inputState {
	case EscASCII:
		if c.escape.Feed(chunk) == prober.FoundIt {
			c.result = Result{Encoding: c.escape.CharsetName(), Confidence: c.escape.Confidence()}
			c.done = true
		}
	case HighByte:
		trackWinBytes(chunk, &c.hasWinByte)
		if c.utf1632.Feed(chunk) == prober.FoundIt {
			c.result = Result{Encoding: c.utf1632.CharsetName(), Confidence: c.utf1632.Confidence()}
			c.done = true
			return
		}
		c.mbcs.Feed(chunk)
		c.sbcs.Feed(chunk)
		c.latin1.Feed(chunk)
	}
}

func sniffBOM(chunk []byte) (Result, bool) {
	switch {
	case bytes.HasPrefix(chunk, []byte{0xEF, 0xBB, 0xBF}):
		return Result{Encoding: "UTF-8-SIG", Confidence: 1.0}, true
	case bytes.HasPrefix(chunk, []byte{0xFF, 0xFE, 0x00, 0x00}):
		return Result{Encoding: "UTF-32", Confidence: 1.0}, true
	case bytes.HasPrefix(chunk, []byte{0x00, 0x00, 0xFE, 0xFF}):
		return Result{Encoding: "UTF-32", Confidence: 1.0}, true
	case bytes.HasPrefix(chunk, []byte{0xFF, 0xFE}):
		return Result{Encoding: "UTF-16", Confidence: 1.0}, true
	case bytes.HasPrefix(chunk, []byte{0xFE, 0xFF}):
		return Result{Encoding: "UTF-16", Confidence: 1.0}, true
	}
	return Result{}, false
}

// classifyRegime scans chunk for the bytes that upgrade PURE_ASCII,
// applying the monotonic upgrade rules from spec.md §4.7: reclassification
// only happens while still PURE_ASCII, exactly like upstream gating its
// whole re-check block on `self._input_state == InputState.PURE_ASCII`.
// Once either ESC_ASCII or HIGH_BYTE is reached, the regime is fixed for
// the life of the detector. The high-byte check runs as one SWAR pass
// over the whole chunk rather than a byte-at-a-time loop.
func (c *Coordinator) classifyRegime(chunk []byte) {
	if c.inputState != PureASCII {
		return
	}
	if bytescan.FirstHighByte(chunk) >= 0 {
		c.inputState = HighByte
		return
	}
	for i, b := range chunk {
		if b == 0x1B {
			c.inputState = EscASCII
			continue
		}
		if b == '~' && i+1 < len(chunk) && chunk[i+1] == '{' {
			c.inputState = EscASCII
		}
	}
}

func trackWinBytes(chunk []byte, hasWinByte *bool) {
	if *hasWinByte {
		return
	}
	for _, b := range chunk {
		if b >= 0x80 && b <= 0x9F {
			*hasWinByte = true
			return
		}
	}
}

// Close finalizes detection and returns the verdict.
func (c *Coordinator) Close() Result {
	if c.done {
		return c.finalize(c.result)
	}
	if !c.fedAny {
		return Result{}
	}
	if c.inputState == PureASCII {
		return Result{Encoding: "ascii", Confidence: 1.0, Language: ""}
	}

	type candidate struct {
		encoding   string
		confidence float64
		language   string
	}
	var best candidate

	consider := func(encoding string, confidence float64, language string) {
		if confidence > best.confidence {
			best = candidate{encoding, confidence, language}
		}
	}

	if st := c.utf1632.Close(); st == prober.FoundIt {
		consider(c.utf1632.CharsetName(), c.utf1632.Confidence(), "")
	}
	c.mbcs.Close()
	consider(c.mbcs.CharsetName(), c.mbcs.Confidence(), c.mbcs.Language())
	c.sbcs.Close()
	consider(c.sbcs.CharsetName(), c.sbcs.Confidence(), c.sbcs.Language())
	c.latin1.Close()
	consider(c.latin1.CharsetName(), c.latin1.Confidence(), c.latin1.Language())

	return c.finalize(Result{Encoding: best.encoding, Confidence: best.confidence, Language: best.language})
}

// finalize applies the ISO→Windows substitution, UTF-16*/UTF-32* label
// normalization, and the minimum-confidence floor (spec.md §4.7).
func (c *Coordinator) finalize(r Result) Result {
	if r.Encoding == "" {
		return Result{}
	}
	if win, ok := isoToWindows[normalizeISOKey(r.Encoding)]; ok && c.hasWinByte {
		r.Encoding = win
		r.Confidence *= 0.9
	}
	switch {
	case hasPrefixFold(r.Encoding, "UTF-16"):
		r.Encoding = "UTF-16"
	case hasPrefixFold(r.Encoding, "UTF-32"):
		r.Encoding = "UTF-32"
	}
	if r.Confidence <= minimumThreshold {
		return Result{}
	}
	return r
}

func normalizeISOKey(encoding string) string {
	out := make([]byte, len(encoding))
	for i := 0; i < len(encoding); i++ {
		b := encoding[i]
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		out[i] = b
	}
	return string(out)
}

func hasPrefixFold(s, prefix string) bool {
	if len(s) < len(prefix) {
		return false
	}
	return normalizeISOKey(s[:len(prefix)]) == normalizeISOKey(prefix)
}

// Done reports whether Feed calls are now no-ops.
func (c *Coordinator) Done() bool { return c.done }
