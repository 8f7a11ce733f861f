package group

import (
	"github.com/coregx/chardet/internal/models"
	"github.com/coregx/chardet/prober"
)

// NewMBCSGroup assembles the multi-byte CJK group prober (spec.md §4.6):
// UTF-8, SJIS, EUC-JP, GB2312, EUC-KR, CP949, Big5, EUC-TW, JOHAB,
// filtered by langFilter.
func NewMBCSGroup(langFilter prober.LanguageFilter) *Group {
	members := []prober.Prober{
		prober.NewUTF8(),
		prober.NewSJISProber(),
		prober.NewEUCJPProber(),
		prober.NewMultiByte(models.GB2312, models.GB2312Distribution, "GB2312", "Chinese", prober.ChineseSimplified),
		prober.NewMultiByte(models.EUCKR, models.EUCKRDistribution, "EUC-KR", "Korean", prober.Korean),
		prober.NewMultiByte(models.CP949, models.CP949Distribution, "CP949", "Korean", prober.Korean),
		prober.NewMultiByte(models.Big5, models.Big5Distribution, "Big5", "Chinese", prober.ChineseTraditional),
		prober.NewMultiByte(models.EUCTW, models.EUCTWDistribution, "EUC-TW", "Chinese", prober.ChineseTraditional),
		prober.NewMultiByte(models.Johab, models.JohabDistribution, "JOHAB", "Korean", prober.Korean),
	}
	return New(langFilter, members...)
}
