package models

// Coding state machines and frequency-distribution tables for the classic
// double-byte CJK encodings (spec.md §4.6's MBCS group). Each coding model
// is built once via BuildDoubleByteModel; each distribution model ranks a
// handful of the most common lead bytes for that encoding/language and
// defaults everything else to "unranked" (order -1, dist.Analyzer ignores
// those characters entirely, same as upstream's unranked slots).

// SJIS is Shift_JIS's coding state machine: 1-byte ASCII/halfwidth-kana,
// 2-byte lead 0x81-0x9F/0xE0-0xFC with trail 0x40-0x7E/0x80-0xFC.
var SJIS = BuildDoubleByteModel(
	[]ByteRange{{0x81, 0x9F}, {0xE0, 0xFC}},
	[]ByteRange{{0x40, 0x7E}, {0x80, 0xFC}},
	[]ByteRange{{0xA1, 0xDF}}, // halfwidth katakana
)

// EUCJP is EUC-JP's coding state machine: lead 0x8E (halfwidth-kana shift)
// or 0xA1-0xFE, trail 0xA1-0xFE.
var EUCJP = BuildDoubleByteModel(
	[]ByteRange{{0x8E, 0x8E}, {0xA1, 0xFE}},
	[]ByteRange{{0xA1, 0xFE}},
	nil,
)

// EUCKR is EUC-KR's coding state machine: lead/trail both 0xA1-0xFE.
var EUCKR = BuildDoubleByteModel(
	[]ByteRange{{0xA1, 0xFE}},
	[]ByteRange{{0xA1, 0xFE}},
	nil,
)

// CP949 (UHC) extends EUC-KR's lead range down to 0x81 and widens the
// trail range to include the lowercase-Latin-overlapping extension block.
var CP949 = BuildDoubleByteModel(
	[]ByteRange{{0x81, 0xFE}},
	[]ByteRange{{0x41, 0x5A}, {0x61, 0x7A}, {0x81, 0xFE}},
	nil,
)

// GB2312 is simplified Chinese's EUC-CN coding state machine: lead/trail
// both 0xA1-0xFE.
var GB2312 = BuildDoubleByteModel(
	[]ByteRange{{0xA1, 0xFE}},
	[]ByteRange{{0xA1, 0xFE}},
	nil,
)

// Big5 is traditional Chinese's coding state machine: lead 0x81-0xFE,
// trail split across a symbol block and a hanzi block.
var Big5 = BuildDoubleByteModel(
	[]ByteRange{{0x81, 0xFE}},
	[]ByteRange{{0x40, 0x7E}, {0xA1, 0xFE}},
	nil,
)

// EUCTW is CNS 11643's EUC-TW coding state machine: lead 0x8E (plane
// shift) or 0xA1-0xFE, trail 0xA1-0xFE.
var EUCTW = BuildDoubleByteModel(
	[]ByteRange{{0x8E, 0x8E}, {0xA1, 0xFE}},
	[]ByteRange{{0xA1, 0xFE}},
	nil,
)

// Johab is the Korean Johab coding state machine: a wide lead range and a
// trail range split around the vowel-fill gap at 0x80.
var Johab = BuildDoubleByteModel(
	[]ByteRange{{0x84, 0xD3}, {0xD8, 0xDE}, {0xE0, 0xF9}},
	[]ByteRange{{0x41, 0x7E}, {0x81, 0xFE}},
	nil,
)

// sjisFreqOrder ranks SJIS lead bytes: 0x82 (hiragana) and 0x83 (katakana)
// rank best, then the common-kanji leads 0x88-0x93, the symbol lead 0x81,
// and the kanji leads 0x95-0x97; every other lead byte is unranked.
func sjisFreqOrder() [256]int16 {
	ranked := map[byte]int16{
		0x82: 0, 0x83: 5, 0x88: 10, 0x89: 15, 0x8A: 20, 0x8B: 25,
		0x8C: 30, 0x8D: 35, 0x8E: 40, 0x8F: 45, 0x90: 50, 0x91: 55,
		0x92: 60, 0x93: 65, 0x81: 70, 0x95: 80, 0x96: 90, 0x97: 100,
	}
	return rankTable(ranked)
}

var SJISDistribution = &DistributionModel{
	CharToFreqOrder:          sjisFreqOrder(),
	TableSize:                256,
	TypicalDistributionRatio: 2.8,
	CharsetName:              "Shift_JIS",
	Language:                 "Japanese",
}

func eucjpFreqOrder() [256]int16 {
	ranked := map[byte]int16{
		0xA4: 0, 0xA5: 5, 0xB0: 10, 0xB1: 15, 0xB2: 20, 0xB3: 25,
		0xB4: 30, 0xB5: 35, 0xB6: 40, 0xB7: 45, 0xB8: 50, 0xB9: 55,
		0x8E: 70,
	}
	return rankTable(ranked)
}

var EUCJPDistribution = &DistributionModel{
	CharToFreqOrder:          eucjpFreqOrder(),
	TableSize:                256,
	TypicalDistributionRatio: 2.8,
	CharsetName:              "EUC-JP",
	Language:                 "Japanese",
}

func euckrFreqOrder() [256]int16 {
	ranked := map[byte]int16{
		0xB0: 0, 0xB1: 5, 0xC7: 10, 0xC0: 15, 0xBF: 20, 0xC1: 25,
		0xB4: 30, 0xBC: 35, 0xB8: 40, 0xC2: 45,
	}
	return rankTable(ranked)
}

var EUCKRDistribution = &DistributionModel{
	CharToFreqOrder:          euckrFreqOrder(),
	TableSize:                256,
	TypicalDistributionRatio: 2.3,
	CharsetName:              "EUC-KR",
	Language:                 "Korean",
}

var CP949Distribution = &DistributionModel{
	CharToFreqOrder:          euckrFreqOrder(),
	TableSize:                256,
	TypicalDistributionRatio: 2.3,
	CharsetName:              "CP949",
	Language:                 "Korean",
}

func gb2312FreqOrder() [256]int16 {
	ranked := map[byte]int16{
		0xB5: 0, 0xB5 + 1: 5, 0xC1: 10, 0xB9: 15, 0xCA: 20, 0xCE: 25,
		0xD2: 30, 0xD0: 35, 0xB2: 40, 0xB4: 45,
	}
	return rankTable(ranked)
}

var GB2312Distribution = &DistributionModel{
	CharToFreqOrder:          gb2312FreqOrder(),
	TableSize:                256,
	TypicalDistributionRatio: 0.9,
	CharsetName:              "GB2312",
	Language:                 "Chinese",
}

func big5FreqOrder() [256]int16 {
	ranked := map[byte]int16{
		0xA4: 0, 0xA5: 5, 0xA6: 10, 0xA7: 15, 0xB0: 20, 0xB1: 25,
		0xC4: 30, 0xC5: 35, 0xBA: 40, 0xAD: 45,
	}
	return rankTable(ranked)
}

var Big5Distribution = &DistributionModel{
	CharToFreqOrder:          big5FreqOrder(),
	TableSize:                256,
	TypicalDistributionRatio: 0.75,
	CharsetName:              "Big5",
	Language:                 "Chinese",
}

func euctwFreqOrder() [256]int16 {
	ranked := map[byte]int16{
		0xA4: 0, 0xA5: 5, 0xA6: 10, 0xA7: 15, 0xA8: 20, 0xC5: 30,
	}
	return rankTable(ranked)
}

var EUCTWDistribution = &DistributionModel{
	CharToFreqOrder:          euctwFreqOrder(),
	TableSize:                256,
	TypicalDistributionRatio: 1.5,
	CharsetName:              "EUC-TW",
	Language:                 "Chinese",
}

func johabFreqOrder() [256]int16 {
	ranked := map[byte]int16{
		0x84: 0, 0x8C: 5, 0x94: 10, 0x9C: 15, 0xB0: 20, 0xC8: 30,
	}
	return rankTable(ranked)
}

var JohabDistribution = &DistributionModel{
	CharToFreqOrder:          johabFreqOrder(),
	TableSize:                256,
	TypicalDistributionRatio: 1.9,
	CharsetName:              "Johab",
	Language:                 "Korean",
}
