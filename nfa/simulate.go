package nfa

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/coregx/pergrex/internal/sparse"
	"github.com/coregx/pergrex/syntax"
)

// Match is a single match of the pattern within one line of text. Start and
// End are byte offsets into that line; Line is the zero-based line number
// within the text FindMatches was called on.
type Match struct {
	Start int
	End   int
	Line  int
}

// frontier is one generation of live states during simulation, held in a
// sparse set: O(1) dedup while epsilon-closure inserts into it, and
// SparseSet.Values for the single ordered pass that advances every state.
type frontier struct {
	set *sparse.SparseSet
}

func newFrontier(capacity int) frontier {
	return frontier{set: sparse.NewSparseSet(uint32(capacity))}
}

func (f frontier) reset() {
	f.set.Clear()
}

// addClosure inserts id and every state reachable from it via epsilon
// transitions, so the caller never has to special-case epsilon edges when
// deciding what matches the next input rune.
func (n *NFA) addClosure(f frontier, id StateID) {
	if f.set.Contains(uint32(id)) {
		return
	}
	f.set.Insert(uint32(id))
	s := n.State(id)
	if s == nil {
		return
	}
	for _, t := range s.Transitions {
		if t.On == syntax.Epsilon {
			n.addClosure(f, t.Target)
		}
	}
}

// matchesRune reports whether transition t fires on input rune c.
func matchesRune(t Transition, c rune) bool {
	switch t.On {
	case syntax.Epsilon:
		return false
	case syntax.AnyDigit:
		return unicode.IsDigit(c)
	case syntax.AnyAlphanumeric:
		return unicode.IsLetter(c) || unicode.IsDigit(c)
	case syntax.AnyOtherChar:
		return false // handled separately as the class fallback
	default:
		return t.On == c
	}
}

// step advances the simulation by one rune: for every live state in cur, any
// transition matching c (or acting as its class's catch-all) inserts its
// target's epsilon-closure into next. Reaching a final state records
// matchEnd, overwritten on every subsequent final state so the longest match
// wins.
func (n *NFA) step(cur frontier, next frontier, c rune, matchEnd *int, pos int) {
	for _, id := range cur.set.Values() {
		s := n.State(StateID(id))
		if s == nil {
			continue
		}
		if s.IsFinal() {
			*matchEnd = pos
		}

		matched := false
		var fallback Transition
		haveFallback := false
		for _, t := range s.Transitions {
			if t.On == syntax.AnyOtherChar {
				fallback = t
				haveFallback = true
				continue
			}
			if matchesRune(t, c) {
				matched = true
				n.addClosure(next, t.Target)
			}
		}
		if !matched && haveFallback {
			n.addClosure(next, fallback.Target)
		}
	}
}

// findFrom runs the simulator starting at byte offset start within text,
// returning the end offset of the longest match beginning there, or -1 if
// no match starts at start.
func (n *NFA) findFrom(text string, start int) int {
	cur := newFrontier(len(n.states))
	next := newFrontier(len(n.states))
	n.addClosure(cur, n.start)

	matchEnd := -1
	pos := start
	for pos < len(text) {
		c, size := utf8.DecodeRuneInString(text[pos:])
		next.reset()
		n.step(cur, next, c, &matchEnd, pos)
		cur, next = next, cur
		pos += size
		if cur.set.IsEmpty() {
			break
		}
	}

	// One last epsilon-closure check: a final state reached only via
	// trailing epsilon edges (e.g. after consuming the whole input under a
	// Kleene star) still counts, at the end-of-input position.
	for _, id := range cur.set.Values() {
		if s := n.State(StateID(id)); s != nil && s.IsFinal() {
			matchEnd = len(text)
		}
	}

	return matchEnd
}

// FindMatches scans text line by line (split on '\n') and, for every byte
// position within a line, attempts a match starting there. Matches are
// non-overlapping only in the sense that each start position is tried
// independently; the caller sees every match the pattern has at every
// position, exactly as the underlying automaton would via repeated anchored
// tries - this engine has no single-pass "leftmost, then skip past it"
// optimization.
func (n *NFA) FindMatches(text string) []Match {
	if text == "" {
		return nil
	}

	var matches []Match
	for lineNum, line := range strings.Split(text, "\n") {
		matches = append(matches, n.FindMatchesInLine(line, lineNum)...)
	}
	return matches
}

// FindMatchesInLine is FindMatches' per-line inner loop, exported so a
// caller that has already split text into lines itself (for example to
// interleave per-line prefilter checks) can attempt matches against one
// line at a time while still tagging results with the caller's own line
// number instead of always reporting Line 0.
func (n *NFA) FindMatchesInLine(line string, lineNum int) []Match {
	var matches []Match
	for pos := 0; pos < len(line); {
		_, size := utf8.DecodeRuneInString(line[pos:])
		if end := n.findFrom(line, pos); end >= 0 {
			matches = append(matches, Match{Start: pos, End: end, Line: lineNum})
		}
		pos += size
	}
	return matches
}

// IsMatch reports whether the pattern matches anywhere in text.
func (n *NFA) IsMatch(text string) bool {
	for pos := 0; pos <= len(text); {
		if n.findFrom(text, pos) >= 0 {
			return true
		}
		if pos == len(text) {
			break
		}
		_, size := utf8.DecodeRuneInString(text[pos:])
		pos += size
	}
	return false
}
