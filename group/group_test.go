package group

import (
	"testing"

	"github.com/coregx/chardet/prober"
)

// fakeProber is a minimal scripted prober.Prober for exercising Group's
// racing/deactivation logic without depending on real charset models.
type fakeProber struct {
	name    string
	lang    string
	class   prober.LanguageFilter
	state   prober.State
	conf    float64
	resetCt int
}

func (f *fakeProber) Reset()                               { f.resetCt++; f.state = prober.Detecting }
func (f *fakeProber) Feed(chunk []byte) prober.State        { return f.state }
func (f *fakeProber) Close() prober.State                  { return f.state }
func (f *fakeProber) State() prober.State                  { return f.state }
func (f *fakeProber) Confidence() float64                  { return f.conf }
func (f *fakeProber) CharsetName() string                  { return f.name }
func (f *fakeProber) Language() string                     { return f.lang }
func (f *fakeProber) LanguageClass() prober.LanguageFilter { return f.class }

func TestGroupFiltersByLanguageClass(t *testing.T) {
	a := &fakeProber{name: "a", class: prober.Japanese, state: prober.Detecting}
	b := &fakeProber{name: "b", class: prober.Korean, state: prober.Detecting}
	g := New(prober.Japanese, a, b)
	if len(g.members) != 1 || g.members[0] != a {
		t.Fatalf("New() kept %d members, want exactly the Japanese one", len(g.members))
	}
}

func TestGroupNoMembersIsImmediatelyNotMe(t *testing.T) {
	g := New(prober.Japanese)
	if g.State() != prober.NotMe {
		t.Fatalf("State() with no members = %v, want NotMe", g.State())
	}
}

func TestGroupDeactivatesNotMeMembers(t *testing.T) {
	a := &fakeProber{name: "a", class: prober.AllLanguages, state: prober.NotMe}
	b := &fakeProber{name: "b", class: prober.AllLanguages, state: prober.Detecting, conf: 0.5}
	g := New(prober.AllLanguages, a, b)
	if st := g.Feed([]byte("x")); st != prober.Detecting {
		t.Fatalf("Feed() = %v, want Detecting (b is still live)", st)
	}
	if g.count != 1 {
		t.Errorf("count = %d, want 1 after deactivating a", g.count)
	}
}

func TestGroupAllNotMeBecomesNotMe(t *testing.T) {
	a := &fakeProber{name: "a", class: prober.AllLanguages, state: prober.NotMe}
	g := New(prober.AllLanguages, a)
	if st := g.Feed([]byte("x")); st != prober.NotMe {
		t.Fatalf("Feed() = %v, want NotMe", st)
	}
}

func TestGroupFoundItWinsImmediately(t *testing.T) {
	a := &fakeProber{name: "a", class: prober.AllLanguages, state: prober.FoundIt, conf: 0.99}
	b := &fakeProber{name: "b", class: prober.AllLanguages, state: prober.Detecting, conf: 0.5}
	g := New(prober.AllLanguages, a, b)
	if st := g.Feed([]byte("x")); st != prober.FoundIt {
		t.Fatalf("Feed() = %v, want FoundIt", st)
	}
	if g.CharsetName() != "a" {
		t.Errorf("CharsetName() = %q, want a", g.CharsetName())
	}
}

func TestGroupBestGuessPicksHighestConfidence(t *testing.T) {
	a := &fakeProber{name: "a", lang: "A", class: prober.AllLanguages, state: prober.Detecting, conf: 0.3}
	b := &fakeProber{name: "b", lang: "B", class: prober.AllLanguages, state: prober.Detecting, conf: 0.7}
	g := New(prober.AllLanguages, a, b)
	g.Feed([]byte("x"))
	if got := g.CharsetName(); got != "b" {
		t.Errorf("CharsetName() = %q, want b (higher confidence)", got)
	}
	if got := g.Language(); got != "B" {
		t.Errorf("Language() = %q, want B", got)
	}
	if got := g.Confidence(); got != 0.7 {
		t.Errorf("Confidence() = %v, want 0.7", got)
	}
}

func TestGroupBestGuessTiebreakIsFirstRegistered(t *testing.T) {
	a := &fakeProber{name: "a", class: prober.AllLanguages, state: prober.Detecting, conf: 0.5}
	b := &fakeProber{name: "b", class: prober.AllLanguages, state: prober.Detecting, conf: 0.5}
	g := New(prober.AllLanguages, a, b)
	g.Feed([]byte("x"))
	if got := g.CharsetName(); got != "a" {
		t.Errorf("CharsetName() = %q, want a on a tie (first registered wins)", got)
	}
}

func TestGroupResetReEnablesAllMembers(t *testing.T) {
	a := &fakeProber{name: "a", class: prober.AllLanguages, state: prober.NotMe}
	g := New(prober.AllLanguages, a)
	g.Feed([]byte("x"))
	if g.State() != prober.NotMe {
		t.Fatalf("precondition: State() = %v, want NotMe", g.State())
	}
	g.Reset()
	if g.State() != prober.Detecting {
		t.Fatalf("State() after Reset = %v, want Detecting", g.State())
	}
	if a.resetCt != 2 {
		t.Errorf("member Reset() called %d times, want 2 (construction + explicit Reset)", a.resetCt)
	}
}
