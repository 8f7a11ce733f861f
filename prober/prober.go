// Package prober implements the per-encoding probers described in
// spec.md §4: each one validates byte sequences against a coding model
// and/or scores them statistically, exposing a uniform State/Confidence/
// CharsetName/Language contract that group.Group and engine.Coordinator
// drive without caring which concrete prober they're holding.
//
// Concrete probers are separate struct types behind the Prober interface,
// not a discriminated union: group.Group holds its members as Prober
// interface values, so every call it makes on a member is dynamically
// dispatched. The Hebrew arbiter holds its two model probers as concrete
// *SingleByte values.
package prober

// State mirrors spec.md §3's ProbingState: {DETECTING, FOUND_IT, NOT_ME}.
// Transitions are monotonic within a feed episode; only Reset restores
// Detecting.
type State uint8

const (
	Detecting State = iota
	FoundIt
	NotMe
)

func (s State) String() string {
	switch s {
	case Detecting:
		return "DETECTING"
	case FoundIt:
		return "FOUND_IT"
	case NotMe:
		return "NOT_ME"
	default:
		return "UNKNOWN"
	}
}

// LanguageFilter is the bitmask from spec.md §6 used to exclude whole
// language classes of sub-prober from a group.
type LanguageFilter uint8

const (
	ChineseSimplified  LanguageFilter = 1 << 0
	ChineseTraditional LanguageFilter = 1 << 1
	Japanese           LanguageFilter = 1 << 2
	Korean             LanguageFilter = 1 << 3
	NonCJK             LanguageFilter = 1 << 4
	AllLanguages       LanguageFilter = 1<<5 - 1
)

// Prober is the common operation set every concrete prober implements.
type Prober interface {
	Reset()
	Feed(chunk []byte) State
	Close() State
	State() State
	Confidence() float64
	CharsetName() string
	Language() string
	LanguageClass() LanguageFilter
}
