// Package group implements the group prober (spec.md §4.6): it races a
// fixed set of sub-probers, deactivating ones that report NOT_ME and
// electing a winner either by early FOUND_IT or by highest confidence at
// Close.
package group

import "github.com/coregx/chardet/prober"

// Group holds a fixed set of sub-probers and tracks how many remain
// active.
type Group struct {
	members []prober.Prober
	active  []bool
	count   int

	state      prober.State
	best       prober.Prober
	bestMemoed bool
	langFilter prober.LanguageFilter
}

// New builds a Group over members, excluding any whose language class
// doesn't intersect langFilter.
func New(langFilter prober.LanguageFilter, members ...prober.Prober) *Group {
	g := &Group{langFilter: langFilter}
	for _, m := range members {
		if m.LanguageClass()&langFilter != 0 {
			g.members = append(g.members, m)
		}
	}
	g.Reset()
	return g
}

func (g *Group) Reset() {
	for _, m := range g.members {
		m.Reset()
	}
	g.active = make([]bool, len(g.members))
	for i := range g.active {
		g.active[i] = true
	}
	g.count = len(g.members)
	g.state = prober.Detecting
	g.best = nil
	g.bestMemoed = false
	if g.count == 0 {
		g.state = prober.NotMe
	}
}

// Feed drives every active member with chunk. A FOUND_IT member wins
// immediately; a NOT_ME member is deactivated, and the group itself goes
// NOT_ME once every member has been deactivated.
func (g *Group) Feed(chunk []byte) prober.State {
	if g.state != prober.Detecting {
		return g.state
	}
	for i, m := range g.members {
		if !g.active[i] {
			continue
		}
		st := m.Feed(chunk)
		if st == prober.FoundIt {
			g.best = m
			g.bestMemoed = true
			g.state = prober.FoundIt
			return g.state
		}
		if st == prober.NotMe {
			g.active[i] = false
			g.count--
			if g.count == 0 {
				g.state = prober.NotMe
				return g.state
			}
		}
	}
	return g.state
}

func (g *Group) Close() prober.State {
	if g.state == prober.Detecting {
		for i, m := range g.members {
			if g.active[i] {
				m.Close()
			}
		}
	}
	return g.state
}

func (g *Group) State() prober.State { return g.state }

// bestGuess returns the best sub-prober (the max-confidence active member,
// ties won by first-registered order). It is computed on the first call
// and memoized; later calls return the same prober until Reset.
func (g *Group) bestGuess() prober.Prober {
	if g.bestMemoed {
		return g.best
	}
	g.bestMemoed = true
	var winner prober.Prober
	bestConf := 0.0
	for i, m := range g.members {
		if !g.active[i] {
			continue
		}
		if cf := m.Confidence(); cf > bestConf {
			bestConf = cf
			winner = m
		}
	}
	g.best = winner
	return g.best
}

func (g *Group) Confidence() float64 {
	if b := g.bestGuess(); b != nil {
		return b.Confidence()
	}
	return 0.0
}

func (g *Group) CharsetName() string {
	if b := g.bestGuess(); b != nil {
		return b.CharsetName()
	}
	return ""
}

func (g *Group) Language() string {
	if b := g.bestGuess(); b != nil {
		return b.Language()
	}
	return ""
}

func (g *Group) LanguageClass() prober.LanguageFilter { return prober.AllLanguages }
