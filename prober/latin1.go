package prober

import "github.com/coregx/chardet/internal/models"

// NewLatin1 builds the Windows-1252/Latin-1 bigram prober (spec.md §4,
// component 9). It's a SingleByte prober like any other; the only thing
// distinguishing it is which model it's bound to and that it runs
// outside the SBCS group, directly from the coordinator's HIGH_BYTE
// dispatch (spec.md §4.7).
func NewLatin1() *SingleByte {
	return NewSingleByte(models.Latin1, false, NonCJK)
}
