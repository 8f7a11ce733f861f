package group

import (
	"github.com/coregx/chardet/internal/models"
	"github.com/coregx/chardet/prober"
)

// NewSBCSGroup assembles the single-byte group prober (spec.md §4.6):
// the six Russian Cyrillic encodings, the two Greek encodings, the
// Bulgarian ISO-8859-5 variant, Thai, the Hungarian pair, and the
// Hebrew-arbitrated windows-1255/ISO-8859-8 pair. Unlike the MBCS group
// this one takes no language filter: it is built with AllLanguages, so
// every member (each of class NonCJK) is always registered.
func NewSBCSGroup() *Group {
	logical := prober.NewSingleByte(models.Windows1255, false, prober.NonCJK)
	visual := prober.NewSingleByte(models.ISO88598, true, prober.NonCJK)
	hebrew := prober.NewHebrew(logical, visual)

	members := []prober.Prober{
		prober.NewSingleByte(models.Windows1251, false, prober.NonCJK),
		prober.NewSingleByte(models.KOI8R, false, prober.NonCJK),
		prober.NewSingleByte(models.ISO88595, false, prober.NonCJK),
		prober.NewSingleByte(models.MacCyrillic, false, prober.NonCJK),
		prober.NewSingleByte(models.IBM855, false, prober.NonCJK),
		prober.NewSingleByte(models.IBM866, false, prober.NonCJK),
		prober.NewSingleByte(models.ISO88597, false, prober.NonCJK),
		prober.NewSingleByte(models.Windows1253, false, prober.NonCJK),
		prober.NewSingleByte(models.ISO88595Bulgarian, false, prober.NonCJK),
		prober.NewSingleByte(models.TIS620, false, prober.NonCJK),
		prober.NewSingleByte(models.Windows1250, false, prober.NonCJK),
		prober.NewSingleByte(models.ISO88592, false, prober.NonCJK),
		logical,
		visual,
		hebrew,
	}
	return New(prober.AllLanguages, members...)
}
