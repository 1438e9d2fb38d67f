package prefilter

import (
	"github.com/coregx/ahocorasick"
	"github.com/coregx/pergrex/literal"
)

// ahoCorasickPrefilter wraps an ahocorasick.Automaton as a Prefilter, used
// once a literal sequence has more alternatives than makes sense for a
// sequential byte-by-byte scan (see selectPrefilter).
type ahoCorasickPrefilter struct {
	automaton *ahocorasick.Automaton
	complete  bool
}

// newAhoCorasickPrefilter builds a multi-pattern prefilter over seq's
// literals. Returns nil if the automaton cannot be built (e.g. an empty
// pattern set).
func newAhoCorasickPrefilter(seq *literal.Seq) Prefilter {
	builder := ahocorasick.NewBuilder()
	complete := true
	for i := 0; i < seq.Len(); i++ {
		lit := seq.Get(i)
		builder.AddPattern(lit.Bytes)
		complete = complete && lit.Complete
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &ahoCorasickPrefilter{automaton: auto, complete: complete}
}

// Find implements Prefilter.Find using the Aho-Corasick automaton.
func (p *ahoCorasickPrefilter) Find(haystack []byte, start int) int {
	if start < 0 || start > len(haystack) {
		return -1
	}
	m := p.automaton.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// FindMatch implements MatchFinder, returning the exact matched span since
// the alternatives matched by the automaton can vary in length.
func (p *ahoCorasickPrefilter) FindMatch(haystack []byte, start int) (int, int) {
	if start < 0 || start > len(haystack) {
		return -1, -1
	}
	m := p.automaton.Find(haystack, start)
	if m == nil {
		return -1, -1
	}
	return m.Start, m.End
}

// IsComplete implements Prefilter.IsComplete.
func (p *ahoCorasickPrefilter) IsComplete() bool {
	return p.complete
}

// LiteralLen implements Prefilter.LiteralLen. Since alternatives can have
// different lengths, this returns 0 even when complete; callers should use
// FindMatch's returned span instead.
func (p *ahoCorasickPrefilter) LiteralLen() int {
	return 0
}

// HeapBytes implements Prefilter.HeapBytes. The automaton's own memory
// footprint isn't exposed by the library, so this reports 0.
func (p *ahoCorasickPrefilter) HeapBytes() int {
	return 0
}
