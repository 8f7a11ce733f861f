package models

// Single-byte language models for the SBCS group (spec.md §4.6): Russian
// (six legacy Cyrillic encodings sharing one letter-frequency permutation),
// Greek, Thai, Hebrew, and Hungarian. Each model pins a CharsetName/byte
// layout to a shared order permutation built once and reused across the
// encodings that differ only in which byte range they assign to the
// alphabet.

// contiguousBytes returns n consecutive byte values starting at base.
func contiguousBytes(base byte, n int) []byte {
	s := make([]byte, n)
	for i := range s {
		s[i] = base + byte(i)
	}
	return s
}

func concatBytes(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// asciiDigits, asciiSymbols and asciiLineBreaks are shared across every
// single-byte model below: all of them keep the ASCII range untouched.
var (
	asciiDigits     = contiguousBytes('0', 10)
	asciiSymbols    = []byte{' ', '.', ',', '!', '?', ';', ':', '-', '"', '\''}
	asciiLineBreaks = []byte{'\r', '\n'}
)

// permute reorders src so that element freqIdx[i] of src lands at rank i:
// the output is what buildOrderMap needs as its alphabetOrder parameter
// when the underlying bytes are laid out alphabetically but their
// real-world letter frequency is not.
func permute(src []byte, freqIdx []int) []byte {
	out := make([]byte, len(src))
	for rank, idx := range freqIdx {
		out[rank] = src[idx]
	}
	return out
}

// cyrillicFreqIdx ranks the 32-letter Russian alphabet (а=0 .. я=31, codex
// order) by approximate real-world letter frequency, most common first.
var cyrillicFreqIdx = []int{
	14, 5, 0, 8, 13, 18, 17, 16, 2, 11, 10, 12, 4, 15, 19, 31,
	27, 7, 28, 1, 3, 23, 9, 21, 6, 30, 24, 22, 25, 29, 20, 26,
}

// buildCyrillicModel shares the frequency permutation across every legacy
// Cyrillic encoding; only the underlying byte ranges for upper/lowercase
// change per encoding.
func buildCyrillicModel(name string, upperBase, lowerLow1 byte, lowerSplit int, lowerLow2 byte) *SBCSModel {
	upper := contiguousBytes(upperBase, 32)
	var lower []byte
	if lowerSplit == 32 {
		lower = contiguousBytes(lowerLow1, 32)
	} else {
		lower = concatBytes(contiguousBytes(lowerLow1, lowerSplit), contiguousBytes(lowerLow2, 32-lowerSplit))
	}
	alphabetOrder := concatBytes(permute(lower, cyrillicFreqIdx), permute(upper, cyrillicFreqIdx))
	return &SBCSModel{
		CharsetName:          name,
		Language:             "Russian",
		CharToOrderMap:       buildOrderMap(alphabetOrder, asciiDigits, asciiSymbols, asciiLineBreaks),
		LanguageModel:        uniformLanguageModel(64, syntheticOverrides(64)),
		TypicalPositiveRatio: 0.976,
		Alphabet:             string(concatBytes(upper, lower)),
	}
}

var Windows1251 = buildCyrillicModel("windows-1251", 0xC0, 0xE0, 32, 0)
var KOI8R = buildCyrillicModel("KOI8-R", 0xE0, 0xC0, 32, 0)
var ISO88595 = buildCyrillicModel("ISO-8859-5", 0xB0, 0xD0, 32, 0)
var MacCyrillic = buildCyrillicModel("MacCyrillic", 0x80, 0xE0, 32, 0)
var IBM866 = buildCyrillicModel("IBM866", 0x80, 0xA0, 16, 0xE0)
var IBM855 = buildCyrillicModel("IBM855", 0xB8, 0xD8, 32, 0)

// ISO88595Bulgarian shares ISO-8859-5's exact byte layout (Bulgarian is
// written with the same Cyrillic block) but is registered as a distinct
// SBCS group member tagged with its own language, the way upstream
// registers ISO-8859-5 twice for its two candidate languages.
var ISO88595Bulgarian = func() *SBCSModel {
	m := *ISO88595
	m.Language = "Bulgarian"
	return &m
}()

// greekFreqIdx ranks the 24-letter Greek alphabet (α=0 .. ω=23) by
// approximate real-world letter frequency, most common first.
var greekFreqIdx = []int{
	0, 14, 4, 8, 18, 12, 16, 17, 19, 6, 15, 9,
	11, 10, 23, 2, 3, 7, 21, 20, 1, 13, 5, 22,
}

func buildGreekModel(name string, upperBase, lowerBase byte) *SBCSModel {
	upper := contiguousBytes(upperBase, 24)
	lower := contiguousBytes(lowerBase, 24)
	alphabetOrder := concatBytes(permute(lower, greekFreqIdx), permute(upper, greekFreqIdx))
	return &SBCSModel{
		CharsetName:          name,
		Language:             "Greek",
		CharToOrderMap:       buildOrderMap(alphabetOrder, asciiDigits, asciiSymbols, asciiLineBreaks),
		LanguageModel:        uniformLanguageModel(48, syntheticOverrides(48)),
		TypicalPositiveRatio: 0.962,
		Alphabet:             string(concatBytes(upper, lower)),
	}
}

var ISO88597 = buildGreekModel("ISO-8859-7", 0xC1, 0xE1)
var Windows1253 = buildGreekModel("windows-1253", 0xC1, 0xE1)

// TIS620 is the single-case Thai alphabet. Thai letter-frequency data
// wasn't available in the source corpus this was built from, so the order
// map uses the encoding's natural byte order as a stand-in permutation.
var TIS620 = &SBCSModel{
	CharsetName:          "TIS-620",
	Language:             "Thai",
	CharToOrderMap:       buildOrderMap(contiguousBytes(0xA1, 44), asciiDigits, asciiSymbols, asciiLineBreaks),
	LanguageModel:        uniformLanguageModel(44, syntheticOverrides(44)),
	TypicalPositiveRatio: 0.93,
	Alphabet:             string(contiguousBytes(0xA1, 44)),
}

func buildHebrewModel(name string) *SBCSModel {
	alphabet := contiguousBytes(0xE0, 27)
	return &SBCSModel{
		CharsetName:          name,
		Language:             "Hebrew",
		CharToOrderMap:       buildOrderMap(alphabet, asciiDigits, asciiSymbols, asciiLineBreaks),
		LanguageModel:        uniformLanguageModel(27, syntheticOverrides(27)),
		TypicalPositiveRatio: 0.984,
		Alphabet:             string(alphabet),
	}
}

var Windows1255 = buildHebrewModel("windows-1255")
var ISO88598 = buildHebrewModel("ISO-8859-8")

// hungarianLowerFreq is the base-Latin English-ish letter frequency order
// (e,a,r,i,o,t,n,s,l,c,u,d,p,m,h,g,b,f,j,z,v,y,w,k,q,x), used as the
// fallback order for the plain a-z range that Hungarian text shares with
// every other Latin alphabet.
var hungarianLowerFreq = []byte("eariotnslcudpmhgbfjzvywkqx")

func buildHungarianModel(name string, extraBase byte, extraCount int) *SBCSModel {
	extra := contiguousBytes(extraBase, extraCount)
	alphabetOrder := concatBytes(hungarianLowerFreq, extra)
	return &SBCSModel{
		CharsetName:          name,
		Language:             "Hungarian",
		CharToOrderMap:       buildOrderMap(alphabetOrder, asciiDigits, asciiSymbols, asciiLineBreaks),
		LanguageModel:        uniformLanguageModel(len(alphabetOrder), syntheticOverrides(len(alphabetOrder))),
		TypicalPositiveRatio: 0.947,
		KeepASCIILetters:     true,
		Alphabet:             string(alphabetOrder),
	}
}

var Windows1250 = buildHungarianModel("windows-1250", 0xE0, 16)
var ISO88592 = buildHungarianModel("ISO-8859-2", 0xE0, 16)
