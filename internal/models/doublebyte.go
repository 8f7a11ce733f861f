// Package models holds the static, read-only per-encoding model data the
// detection engine validates and scores against: coding state machine
// tables (internal/sm.Model), 2-byte frequency-distribution tables, and
// single-byte bigram language models.
//
// These are exactly the kind of "static frequency tables and state
// transition tables... supplied by build-time generation" spec.md's scope
// section treats as opaque data. In place of a code generator reading a
// canonical upstream table file, the tables below are built once at
// package init from range descriptions, following the same alphabet-
// reduction idea as github.com/coregx/coregex/nfa's ByteClasses: a small,
// explicit byte-class table is cheaper to build and audit than 256
// hand-typed transition rows per encoding, and every double-byte CJK
// encoding in this package differs from its neighbors only in which byte
// ranges serve as lead/trail bytes.
package models

import "github.com/coregx/chardet/internal/sm"

// ByteRange is an inclusive [Low, High] range of byte values.
type ByteRange struct {
	Low, High byte
}

func (r ByteRange) contains(b byte) bool {
	return b >= r.Low && b <= r.High
}

func inRanges(b byte, ranges []ByteRange) bool {
	for _, r := range ranges {
		if r.contains(b) {
			return true
		}
	}
	return false
}

// Byte classes shared by every model built with BuildDoubleByteModel.
const (
	classASCII       uint8 = iota // single byte, char_len = 1
	classLead                     // valid only as the first byte of a 2-byte char
	classTrail                    // valid only as the second byte of a 2-byte char
	classBoth                     // valid as either the first or second byte
	classSingleExtra              // an encoding-specific extra single-byte char (e.g. SJIS halfwidth kana)
	classError                    // illegal in this encoding
	classSingleOrTrail            // a complete 1-byte char at a boundary, or the second byte of a 2-byte char
	doubleByteClassFactor
)

const (
	dbStateStart     = sm.StateStart
	dbStateNeedTrail = sm.StateItsMe + 1 // first model-private running state
)

// BuildDoubleByteModel constructs a coding state machine Model for a
// "classic" double-byte encoding: ASCII passes through as 1-byte
// characters, leadRanges are valid first bytes of a 2-byte character,
// trailRanges are valid second bytes, and singleExtra (optional) marks an
// additional single-byte range treated as a complete 1-byte character
// (used by Shift_JIS for halfwidth katakana).
//
// Bytes that fall in both leadRanges and trailRanges (common for EUC-style
// encodings, where the same 0xA1-0xFE range serves both roles) get their
// own class; the DFA still validates strictly because the state (START vs
// NEED_TRAIL), not just the class, drives the transition. Likewise, an
// ASCII or singleExtra byte that is also a valid trail byte gets its own
// class, accepted as a 1-byte char at START and as a trail at NEED_TRAIL.
func BuildDoubleByteModel(leadRanges, trailRanges, singleExtra []ByteRange) *sm.Model {
	var classTable [256]uint8
	var charLen [doubleByteClassFactor]uint8
	charLen[classASCII] = 1
	charLen[classLead] = 2
	charLen[classBoth] = 2
	charLen[classSingleExtra] = 1
	charLen[classSingleOrTrail] = 1

	for i := 0; i < 256; i++ {
		b := byte(i)
		switch {
		case b < 0x80 && !inRanges(b, leadRanges) && !inRanges(b, trailRanges):
			classTable[i] = classASCII
		case (b < 0x80 || inRanges(b, singleExtra)) && !inRanges(b, leadRanges) && inRanges(b, trailRanges):
			classTable[i] = classSingleOrTrail
		case inRanges(b, singleExtra):
			classTable[i] = classSingleExtra
		case inRanges(b, leadRanges) && inRanges(b, trailRanges):
			classTable[i] = classBoth
		case inRanges(b, leadRanges):
			classTable[i] = classLead
		case inRanges(b, trailRanges):
			classTable[i] = classTrail
		default:
			classTable[i] = classError
		}
	}

	// The table is row-indexed directly by state ID (see sm.Machine.NextState),
	// so it must be sized to cover dbStateNeedTrail even though the
	// StateError/StateItsMe rows in between are never read: NextState returns
	// early for those absorbing states before it indexes into the table.
	numRows := int(dbStateNeedTrail) + 1
	stateTable := make([]sm.State, numRows*int(doubleByteClassFactor))
	row := func(state sm.State) []sm.State {
		return stateTable[int(state)*int(doubleByteClassFactor) : int(state)*int(doubleByteClassFactor)+int(doubleByteClassFactor)]
	}

	start := row(dbStateStart)
	start[classASCII] = sm.StateStart
	start[classLead] = dbStateNeedTrail
	start[classBoth] = dbStateNeedTrail
	start[classSingleExtra] = sm.StateStart
	start[classSingleOrTrail] = sm.StateStart
	start[classTrail] = sm.StateError
	start[classError] = sm.StateError

	needTrail := row(dbStateNeedTrail)
	needTrail[classASCII] = sm.StateError
	needTrail[classLead] = sm.StateError
	needTrail[classBoth] = sm.StateStart
	needTrail[classTrail] = sm.StateStart
	needTrail[classSingleExtra] = sm.StateError
	needTrail[classSingleOrTrail] = sm.StateStart
	needTrail[classError] = sm.StateError

	return &sm.Model{
		ClassTable:   classTable,
		ClassFactor:  int(doubleByteClassFactor),
		StateTable:   stateTable,
		CharLenTable: charLen[:],
	}
}
