package models

// DistributionModel is the static per-encoding table consulted by
// internal/dist's analyzer: the frequency rank of the first byte of a
// 2-byte character, plus the empirical ratio used to turn a raw
// high-frequency/low-frequency split into a confidence score.
type DistributionModel struct {
	// CharToFreqOrder maps the first byte of a 2-byte character to its
	// frequency rank. A negative entry means "no rank" (order < 0).
	CharToFreqOrder [256]int16
	TableSize       int
	// TypicalDistributionRatio is the empirical ratio of high-frequency to
	// low-frequency characters in natural text of the target language.
	TypicalDistributionRatio float64
	CharsetName              string
	Language                 string
}

// rankTable builds a CharToFreqOrder array from a list of (byte, rank)
// pairs, defaulting every other entry to -1 ("unranked").
func rankTable(ranked map[byte]int16) [256]int16 {
	var out [256]int16
	for i := range out {
		out[i] = -1
	}
	for b, r := range ranked {
		out[b] = r
	}
	return out
}
