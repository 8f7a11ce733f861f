package models

// EscapeSequence pairs one ISO-2022/HZ designator literal with the
// charset name it identifies. prober.Escape builds an Aho-Corasick
// automaton from these literals (see spec.md §4's escape prober) and
// reports FOUND_IT with the matched entry's CharsetName as soon as any
// literal appears in the stream.
type EscapeSequence struct {
	CharsetName string
	Literal     []byte
}

// EscapeSequences is the fixed designator table for every 7-bit escape
// encoding scenario.md exercises (ISO-2022-JP/KR/CN and their common
// variants, plus HZ-GB-2312's "~{" shift-in).
var EscapeSequences = []EscapeSequence{
	{"ISO-2022-JP", []byte{0x1B, 0x24, 0x40}},         // ESC $ @
	{"ISO-2022-JP", []byte{0x1B, 0x24, 0x42}},         // ESC $ B
	{"ISO-2022-JP", []byte{0x1B, 0x28, 0x4A}},         // ESC ( J
	{"ISO-2022-JP", []byte{0x1B, 0x28, 0x49}},         // ESC ( I
	{"ISO-2022-JP-2", []byte{0x1B, 0x24, 0x28, 0x44}}, // ESC $ ( D
	{"ISO-2022-JP-2", []byte{0x1B, 0x2E, 0x41}},       // ESC . A
	{"ISO-2022-JP-2", []byte{0x1B, 0x2E, 0x46}},       // ESC . F
	{"ISO-2022-KR", []byte{0x1B, 0x24, 0x29, 0x43}},   // ESC $ ) C
	{"ISO-2022-CN", []byte{0x1B, 0x24, 0x29, 0x41}},   // ESC $ ) A
	{"ISO-2022-CN", []byte{0x1B, 0x24, 0x29, 0x47}},   // ESC $ ) G
	{"ISO-2022-CN", []byte{0x1B, 0x24, 0x2A, 0x48}},   // ESC $ * H
	{"HZ-GB-2312", []byte{0x7E, 0x7B}},                // ~{
}
