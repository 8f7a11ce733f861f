package models

// Likelihood categories for single-byte bigram language models, matching
// spec.md §3's 4-category SequenceLikelihood enum.
const (
	Negative uint8 = iota
	Unlikely
	Likely
	Positive
	NumLikelihoods
)

// Character categories used by SBCSModel.CharToOrderMap. Anything less
// than Control is a letter order index into LanguageModel.
const (
	ControlCategory   uint8 = 251
	DigitCategory     uint8 = 252
	SymbolCategory    uint8 = 253
	LineBreakCategory uint8 = 254
	UndefinedCategory uint8 = 255
)

// SBCSModel is the static per-(encoding,language) single-byte model: a
// byte-to-letter-order map and a bigram likelihood matrix over those
// orders.
type SBCSModel struct {
	CharsetName          string
	Language             string
	CharToOrderMap       [256]uint8
	LanguageModel        [][]uint8 // [order][order] -> Negative/Unlikely/Likely/Positive
	TypicalPositiveRatio float64
	KeepASCIILetters     bool
	Alphabet             string
}

// NumOrders returns the size of the order space (len(LanguageModel)).
func (m *SBCSModel) NumOrders() int {
	return len(m.LanguageModel)
}

// buildOrderMap assigns consecutive order indices to the bytes in
// alphabetOrder (in the given frequency-rank order, most common first),
// marks digits, symbols and line breaks with their categories, and leaves
// every other byte UndefinedCategory. It adds no separate order range for
// ASCII letters; a model that scores them lists them in alphabetOrder, as
// the Hungarian models do.
func buildOrderMap(alphabetOrder []byte, digits, symbols, lineBreaks []byte) [256]uint8 {
	var m [256]uint8
	for i := range m {
		m[i] = UndefinedCategory
	}
	for i, b := range alphabetOrder {
		m[b] = uint8(i)
	}
	for _, b := range digits {
		m[b] = DigitCategory
	}
	for _, b := range symbols {
		m[b] = SymbolCategory
	}
	for _, b := range lineBreaks {
		m[b] = LineBreakCategory
	}
	return m
}

// syntheticOverrides builds a plausible digraph likelihood matrix from
// order alone, for the single-byte models whose exact upstream bigram
// tables weren't available: the most frequent quarter of letter orders
// (by construction, rank 0 is the single most common letter) co-occurring
// with each other is scored Positive, and the least-frequent quarter
// co-occurring with itself is scored Unlikely, leaving everything else at
// the uniformLanguageModel default of Likely.
func syntheticOverrides(n int) map[[2]uint8]uint8 {
	overrides := make(map[[2]uint8]uint8)
	quarter := n / 4
	if quarter == 0 {
		return overrides
	}
	for first := 0; first < quarter; first++ {
		for second := 0; second < quarter; second++ {
			overrides[[2]uint8{uint8(first), uint8(second)}] = Positive
		}
	}
	for first := n - quarter; first < n; first++ {
		for second := n - quarter; second < n; second++ {
			overrides[[2]uint8{uint8(first), uint8(second)}] = Unlikely
		}
	}
	return overrides
}

// uniformLanguageModel builds an n x n matrix defaulting every bigram to
// Likely, then applies the given overrides (category for (first,second)
// order pairs). This keeps each hand-authored model's exception list
// short: only the orders that matter for the encoding's signature need
// stating explicitly.
func uniformLanguageModel(n int, overrides map[[2]uint8]uint8) [][]uint8 {
	lm := make([][]uint8, n)
	for i := range lm {
		row := make([]uint8, n)
		for j := range row {
			row[j] = Likely
		}
		lm[i] = row
	}
	for k, v := range overrides {
		lm[k[0]][k[1]] = v
	}
	return lm
}
