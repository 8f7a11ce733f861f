// Package sm implements the generic coding state machine shared by every
// multi-byte charset prober (see prober.MultiByte and prober.UTF8).
//
// A Machine is a pure DFA over a compact byte-class transition table: no
// floating point, no allocation on the hot path. It mirrors the alphabet
// reduction idea behind github.com/coregx/coregex/nfa's ByteClasses — a
// byte's equivalence class, not its raw value, drives the transition — but
// here the "alphabet" is supplied by a static per-encoding Model rather than
// derived from a compiled pattern.
package sm

// State is the DFA's current status. StateStart means a complete, valid
// code point just ended and a new one may begin. StateError and
// StateItsMe are absorbing: once reached they never change until Reset.
type State uint8

const (
	// StateStart indicates a legal byte sequence boundary.
	StateStart State = iota
	// StateError indicates an illegal byte sequence for this encoding.
	StateError
	// StateItsMe indicates a byte sequence unique to this encoding; no
	// other charset can produce it.
	StateItsMe
	// stateFirstRunning is the first value used for model-internal
	// "in the middle of a multi-byte sequence" states.
	stateFirstRunning
)

// Model is the static, read-only per-encoding transition table.
//
// ClassTable maps a byte (0-255) to its equivalence class. ClassFactor is
// the row width of StateTable: the next state for (state, class) lives at
// StateTable[int(state)*ClassFactor+int(class)]. CharLenTable maps a class
// to the number of bytes in a code point whose first byte has that class;
// it is only consulted when the machine is at StateStart.
//
// A Model is immutable and safe to share by reference across Machine
// instances and goroutines, same as the teacher's static frequency tables.
type Model struct {
	ClassTable   [256]uint8
	ClassFactor  int
	StateTable   []State
	CharLenTable []uint8
}

// Machine is one running instance of a Model's DFA.
type Machine struct {
	model       *Model
	state       State
	bytePos     int
	curCharLen  int
}

// New creates a Machine bound to model, starting at StateStart.
func New(model *Model) *Machine {
	m := &Machine{model: model}
	m.Reset()
	return m
}

// Reset restores the machine to StateStart with a zeroed byte position.
func (m *Machine) Reset() {
	m.state = StateStart
	m.bytePos = 0
	m.curCharLen = 0
}

// State returns the machine's current state.
func (m *Machine) State() State {
	return m.state
}

// CurrentCharLen returns the byte length of the code point currently being
// validated, as determined when the machine was last at StateStart.
func (m *Machine) CurrentCharLen() int {
	return m.curCharLen
}

// BytePos returns the number of bytes consumed since the last StateStart.
func (m *Machine) BytePos() int {
	return m.bytePos
}

// NextState feeds one byte and returns the resulting state. StateError and
// StateItsMe are absorbing: once reached, NextState is a no-op that keeps
// returning the same terminal state until Reset is called.
func (m *Machine) NextState(b byte) State {
	if m.state == StateError || m.state == StateItsMe {
		return m.state
	}

	class := m.model.ClassTable[b]

	if m.state == StateStart {
		m.bytePos = 0
		m.curCharLen = int(m.model.CharLenTable[class])
	}

	idx := int(m.state)*m.model.ClassFactor + int(class)
	m.state = m.model.StateTable[idx]
	m.bytePos++

	return m.state
}
