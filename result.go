package chardet

// Result is the outcome of a detection run.
//
// Encoding is empty when no prober reached a confidence above the
// minimum threshold — callers should treat that the same as "unknown"
// rather than assuming a default.
type Result struct {
	// Encoding is the IANA or canonical charset name chardet settled on,
	// e.g. "UTF-8", "Shift_JIS", "Windows-1252". Empty if undetected.
	Encoding string

	// Confidence is in [0, 1]. Below 0.2 the coordinator suppresses the
	// result entirely (Encoding is left empty) rather than report noise.
	Confidence float64

	// Language is the best-guess natural language associated with
	// Encoding, when the winning prober carries one (e.g. "Russian",
	// "Japanese"); empty for encodings that aren't language-specific
	// (UTF-8, UTF-16, UTF-32, ASCII).
	Language string
}
