package models

// Latin1 is the bigram language model behind prober.Latin1: unlike the
// other single-byte models it isn't paired with one specific legacy
// codepage, it just scores how plausible the high-byte run looks as
// Windows-1252/Latin-1 accented Western-European text (spec.md §2
// component 9). The alphabet is the Latin-1 Supplement letter block
// 0xC0-0xFF taken in natural byte order; digits/symbols/line breaks are
// the same ASCII ranges every single-byte model shares.
var Latin1 = &SBCSModel{
	CharsetName:          "Windows-1252",
	Language:             "",
	CharToOrderMap:       buildOrderMap(contiguousBytes(0xC0, 64), asciiDigits, asciiSymbols, asciiLineBreaks),
	LanguageModel:        uniformLanguageModel(64, syntheticOverrides(64)),
	TypicalPositiveRatio: 0.93,
	Alphabet:             string(contiguousBytes(0xC0, 64)),
}
