package models

import "github.com/coregx/chardet/internal/sm"

// UTF-8 byte classes. Continuation bytes are split into three sub-ranges
// (0x80-0x8F, 0x90-0x9F, 0xA0-0xBF) because certain lead bytes (0xE0, 0xED,
// 0xF0, 0xF4) only accept a restricted sub-range for their first
// continuation byte — that's how the DFA rejects overlong encodings and
// UTF-16 surrogate halves without ever decoding a code point.
const (
	u8ASCII uint8 = iota
	u8Cont1       // 0x80-0x8F
	u8Cont2       // 0x90-0x9F
	u8Cont3       // 0xA0-0xBF
	u8Lead2       // 0xC2-0xDF
	u8Lead3E0     // 0xE0
	u8Lead3ED     // 0xED
	u8Lead3Other  // 0xE1-0xEC, 0xEE-0xEF
	u8Lead4F0     // 0xF0
	u8Lead4F4     // 0xF4
	u8Lead4Other  // 0xF1-0xF3
	u8Invalid     // 0xC0-0xC1, 0xF5-0xFF
	utf8ClassFactor
)

// Running states beyond START/ERROR/ITS_ME, numbered from sm.StateItsMe+1
// so they never collide with the two absorbing sentinels.
const (
	u8AfterLead2 = sm.State(iota + int(sm.StateItsMe) + 1)
	u8AfterE0
	u8AfterED
	u8AfterLead3Other
	u8FinalCont
	u8AfterF0
	u8AfterF4
	u8AfterLead4Other
	u8Need2More
	u8Need1More
	utf8NumRows
)

// UTF8 is the coding state machine model for UTF-8 validation. It never
// reaches StateItsMe: a well-formed UTF-8 document is also well-formed in
// several other encodings, so prober.UTF8 tells UTF-8 apart from its
// competitors by counting multi-byte characters, not by a unique byte
// sequence.
var UTF8 = buildUTF8Model()

func buildUTF8Model() *sm.Model {
	var classTable [256]uint8
	for i := 0; i < 256; i++ {
		b := byte(i)
		switch {
		case b < 0x80:
			classTable[i] = u8ASCII
		case b >= 0x80 && b <= 0x8F:
			classTable[i] = u8Cont1
		case b >= 0x90 && b <= 0x9F:
			classTable[i] = u8Cont2
		case b >= 0xA0 && b <= 0xBF:
			classTable[i] = u8Cont3
		case b == 0xC0 || b == 0xC1:
			classTable[i] = u8Invalid
		case b >= 0xC2 && b <= 0xDF:
			classTable[i] = u8Lead2
		case b == 0xE0:
			classTable[i] = u8Lead3E0
		case b == 0xED:
			classTable[i] = u8Lead3ED
		case b >= 0xE1 && b <= 0xEF:
			classTable[i] = u8Lead3Other
		case b == 0xF0:
			classTable[i] = u8Lead4F0
		case b == 0xF4:
			classTable[i] = u8Lead4F4
		case b >= 0xF1 && b <= 0xF3:
			classTable[i] = u8Lead4Other
		default: // 0xF5-0xFF
			classTable[i] = u8Invalid
		}
	}

	charLen := make([]uint8, utf8ClassFactor)
	charLen[u8ASCII] = 1
	charLen[u8Lead2] = 2
	charLen[u8Lead3E0] = 3
	charLen[u8Lead3ED] = 3
	charLen[u8Lead3Other] = 3
	charLen[u8Lead4F0] = 4
	charLen[u8Lead4F4] = 4
	charLen[u8Lead4Other] = 4

	stateTable := make([]sm.State, int(utf8NumRows)*int(utf8ClassFactor))
	row := func(s sm.State) []sm.State {
		lo := int(s) * int(utf8ClassFactor)
		return stateTable[lo : lo+int(utf8ClassFactor)]
	}
	fill := func(r []sm.State, to sm.State) {
		for i := range r {
			r[i] = to
		}
	}

	start := row(sm.StateStart)
	fill(start, sm.StateError)
	start[u8ASCII] = sm.StateStart
	start[u8Lead2] = u8AfterLead2
	start[u8Lead3E0] = u8AfterE0
	start[u8Lead3ED] = u8AfterED
	start[u8Lead3Other] = u8AfterLead3Other
	start[u8Lead4F0] = u8AfterF0
	start[u8Lead4F4] = u8AfterF4
	start[u8Lead4Other] = u8AfterLead4Other

	afterLead2 := row(u8AfterLead2)
	fill(afterLead2, sm.StateError)
	afterLead2[u8Cont1] = sm.StateStart
	afterLead2[u8Cont2] = sm.StateStart
	afterLead2[u8Cont3] = sm.StateStart

	afterE0 := row(u8AfterE0)
	fill(afterE0, sm.StateError)
	afterE0[u8Cont3] = u8FinalCont // 0xA0-0xBF only: excludes overlong C0.. forms

	afterED := row(u8AfterED)
	fill(afterED, sm.StateError)
	afterED[u8Cont1] = u8FinalCont // 0x80-0x8F
	afterED[u8Cont2] = u8FinalCont // 0x90-0x9F; excludes 0xA0-0xBF (surrogates)

	afterLead3Other := row(u8AfterLead3Other)
	fill(afterLead3Other, sm.StateError)
	afterLead3Other[u8Cont1] = u8FinalCont
	afterLead3Other[u8Cont2] = u8FinalCont
	afterLead3Other[u8Cont3] = u8FinalCont

	finalCont := row(u8FinalCont)
	fill(finalCont, sm.StateError)
	finalCont[u8Cont1] = sm.StateStart
	finalCont[u8Cont2] = sm.StateStart
	finalCont[u8Cont3] = sm.StateStart

	afterF0 := row(u8AfterF0)
	fill(afterF0, sm.StateError)
	afterF0[u8Cont2] = u8Need2More // 0x90-0x9F
	afterF0[u8Cont3] = u8Need2More // 0xA0-0xBF; excludes 0x80-0x8F (overlong)

	afterF4 := row(u8AfterF4)
	fill(afterF4, sm.StateError)
	afterF4[u8Cont1] = u8Need2More // 0x80-0x8F only: caps at U+10FFFF

	afterLead4Other := row(u8AfterLead4Other)
	fill(afterLead4Other, sm.StateError)
	afterLead4Other[u8Cont1] = u8Need2More
	afterLead4Other[u8Cont2] = u8Need2More
	afterLead4Other[u8Cont3] = u8Need2More

	need2More := row(u8Need2More)
	fill(need2More, sm.StateError)
	need2More[u8Cont1] = u8Need1More
	need2More[u8Cont2] = u8Need1More
	need2More[u8Cont3] = u8Need1More

	need1More := row(u8Need1More)
	fill(need1More, sm.StateError)
	need1More[u8Cont1] = sm.StateStart
	need1More[u8Cont2] = sm.StateStart
	need1More[u8Cont3] = sm.StateStart

	return &sm.Model{
		ClassTable:   classTable,
		ClassFactor:  int(utf8ClassFactor),
		StateTable:   stateTable,
		CharLenTable: charLen,
	}
}

// UTF8Distribution scores UTF-8's own 2-byte-adjacent region (the Latin-1
// supplement accessed via a 2-byte UTF-8 sequence, e.g. é = 0xC3 0xA9) the
// same way the multi-byte CJK models score their frequency tables: common
// accented Latin letters rank high, rare ones rank low.
var UTF8Distribution = &DistributionModel{
	CharToFreqOrder:          utf8FreqOrder(),
	TableSize:                256,
	TypicalDistributionRatio: 1.6,
	CharsetName:              "UTF-8",
	Language:                 "",
}

// utf8FreqOrder ranks 2-byte UTF-8 lead bytes (0xC2-0xDF) by how common
// the Latin-1 Supplement block they introduce is in running text; the
// common Western-European accented letters (é, à, ü, ñ, ö, ç, …) live
// behind lead byte 0xC3, so it gets the best (lowest) rank.
func utf8FreqOrder() [256]int16 {
	ranked := map[byte]int16{
		0xC3: 0,  // U+00C0-00FF: Latin-1 Supplement (à-ÿ)
		0xC2: 10, // U+0080-00BF: Latin-1 controls/symbols (×, °, ©, …)
		0xC5: 20, // U+0140-017F: Latin Extended-A tail (ł, ń, ś, ź, …)
		0xC4: 30, // U+0100-013F: Latin Extended-A head (ā, ć, ę, …)
		0xCE: 80, // U+0380-03BF: Greek
		0xD0: 90, // U+0400-043F: Cyrillic
		0xD1: 95, // U+0440-047F: Cyrillic tail
	}
	return rankTable(ranked)
}
