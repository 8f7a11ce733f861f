// Package textfilter implements the shared byte-stream filters every
// single-byte prober runs before scoring (spec.md §4.9): isolating
// international-looking runs, stripping XML markup, and loosening the
// international filter to tolerate ASCII-letter runs mixed in with
// high-byte text.
package textfilter

func isASCIILetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isHighByte(b byte) bool {
	return b >= 0x80
}

// InternationalWords emits only runs of bytes that are ASCII letters or
// high bytes, where the run contains at least one high byte; everything
// else acts as a separator and each separator run collapses to a single
// space. Idempotent: running it twice yields the same output as once.
func InternationalWords(buf []byte) []byte {
	out := make([]byte, 0, len(buf))
	i := 0
	pendingSpace := false
	for i < len(buf) {
		start := i
		sawHighByte := false
		for i < len(buf) && (isASCIILetter(buf[i]) || isHighByte(buf[i])) {
			if isHighByte(buf[i]) {
				sawHighByte = true
			}
			i++
		}
		if i > start {
			if sawHighByte {
				if pendingSpace && len(out) > 0 {
					out = append(out, ' ')
				}
				out = append(out, buf[start:i]...)
				pendingSpace = false
			} else if len(out) > 0 {
				// A pure-ASCII-letter run with no high byte doesn't
				// qualify either; it acts as a marker like any other
				// non-matching byte.
				pendingSpace = true
			}
			continue
		}
		// i == start: buf[i] is a separator byte, consume the whole run.
		for i < len(buf) && !isASCIILetter(buf[i]) && !isHighByte(buf[i]) {
			i++
		}
		if len(out) > 0 {
			pendingSpace = true
		}
	}
	return out
}

// WithEnglishLetters is the looser variant used for models tuned on
// non-Latin scripts: it keeps every run of ASCII letters and high bytes,
// including runs with no high byte at all, and puts a single space
// between consecutive kept runs in place of the bytes that separated
// them. Unlike InternationalWords it does not discard pure-ASCII runs,
// since those runs are often transliterated proper nouns or loanwords
// that still carry sequence signal for the language model.
func WithEnglishLetters(buf []byte) []byte {
	out := make([]byte, 0, len(buf))
	i := 0
	for i < len(buf) {
		start := i
		for i < len(buf) && (isASCIILetter(buf[i]) || isHighByte(buf[i])) {
			i++
		}
		if i > start {
			if len(out) > 0 {
				out = append(out, ' ')
			}
			out = append(out, buf[start:i]...)
			continue
		}
		i++
	}
	return out
}

// RemoveXMLTags drops every byte between an unescaped '<' and the next
// '>', keeping both delimiters themselves out of the output. A '<' with
// no matching '>' before the end of buf consumes the remainder.
func RemoveXMLTags(buf []byte) []byte {
	out := make([]byte, 0, len(buf))
	i := 0
	for i < len(buf) {
		if buf[i] == '<' {
			j := i + 1
			for j < len(buf) && buf[j] != '>' {
				j++
			}
			if j < len(buf) {
				i = j + 1
			} else {
				i = len(buf)
			}
			continue
		}
		out = append(out, buf[i])
		i++
	}
	return out
}
