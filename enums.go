package chardet

import "github.com/coregx/chardet/prober"

// LanguageFilter restricts which multi-byte CJK probers a Detector races,
// as a bitmask over language families. Combine with bitwise OR.
type LanguageFilter = prober.LanguageFilter

// Language filter bits. AllLanguages (the default) races every family.
const (
	ChineseSimplified  = prober.ChineseSimplified
	ChineseTraditional = prober.ChineseTraditional
	Japanese           = prober.Japanese
	Korean             = prober.Korean
	NonCJK             = prober.NonCJK
	AllLanguages       = prober.AllLanguages
)
