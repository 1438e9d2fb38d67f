// Package literal provides types and operations for representing and
// manipulating literal byte sequences extracted from compiled patterns, for
// use as prefilter candidates ahead of the NFA simulator.
package literal

import "github.com/coregx/pergrex/syntax"

// Config bounds literal extraction so pathological patterns (wide
// alternations, large character classes) cannot blow up the cost of
// building a prefilter.
type Config struct {
	// MaxLiterals caps the number of alternative literals a Seq may hold.
	// Extraction that would exceed this gives up and returns an empty,
	// inexact Seq rather than truncating silently.
	MaxLiterals int

	// MaxClassSize caps how large a character class can be before it is
	// treated as unextractable (too many single-byte alternatives to be a
	// useful prefilter).
	MaxClassSize int
}

// DefaultConfig returns extraction limits suitable for typical patterns.
func DefaultConfig() Config {
	return Config{MaxLiterals: 64, MaxClassSize: 16}
}

// frag is the extraction stack's working value: a set of alternative byte
// sequences, whether they exactly represent every possible match of the
// sub-pattern they came from (complete), or none at all if the sub-pattern
// guarantees no particular bytes (e.g. \d, \w, or a gave-up cross product).
type frag struct {
	alts     [][]byte
	complete bool
	none     bool
}

func noLiteral() frag { return frag{none: true} }

// Extract walks postfix (the same postfix token stream the nfa package
// compiles) and accumulates a Seq of literal byte sequences the pattern is
// known to require, for use building a prefilter. It never produces a false
// requirement: when a sub-pattern's contribution can't be pinned down to a
// finite literal set (a class sentinel, a Kleene star, an oversized
// alternation), that sub-pattern contributes nothing, and anything
// concatenated across it is treated as an independent, unanchored
// requirement rather than a provable prefix.
//
// The returned Seq is empty when no literal requirement could be extracted
// at all; callers should treat an empty Seq exactly like "no prefilter
// available" and fall back to scanning every position with the simulator.
func Extract(postfix string, cfg Config) *Seq {
	var stack []frag
	pop := func() (frag, bool) {
		if len(stack) == 0 {
			return frag{}, false
		}
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return f, true
	}

	runes := []rune(postfix)
	inClass := false
	negateClass := false
	var classMembers []rune

	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == syntax.Negate && inClass:
			negateClass = true

		case c == syntax.Negate:
			// no-op outside a class, mirrors nfa.Compile

		case c == syntax.CharSetEnd:
			stack = append(stack, classFragment(classMembers, negateClass, cfg))
			classMembers = nil
			negateClass = false
			inClass = false

		case inClass:
			classMembers = append(classMembers, c)

		case c == syntax.CharSetStart:
			inClass = true

		case c == syntax.Slash:
			if i+1 < len(runes) {
				i++ // \d and \w both guarantee no fixed literal
			}
			stack = append(stack, noLiteral())

		case c == syntax.Kleene:
			if _, ok := pop(); !ok {
				stack = append(stack, noLiteral())
				continue
			}
			// A starred fragment may occur zero times, so nothing under it
			// is a safe requirement for the pattern as a whole.
			stack = append(stack, noLiteral())

		case c == syntax.Concat:
			b, ok1 := pop()
			a, ok2 := pop()
			if !ok1 || !ok2 {
				stack = append(stack, noLiteral())
				continue
			}
			stack = append(stack, concatFrag(a, b, cfg))

		case c == syntax.Union:
			b, ok1 := pop()
			a, ok2 := pop()
			if !ok1 || !ok2 {
				stack = append(stack, noLiteral())
				continue
			}
			stack = append(stack, unionFrag(a, b, cfg))

		default:
			stack = append(stack, frag{alts: [][]byte{[]byte(string(c))}, complete: true})
		}
	}

	top, ok := pop()
	if !ok || top.none || len(top.alts) == 0 {
		return NewSeq()
	}

	lits := make([]Literal, len(top.alts))
	for i, b := range top.alts {
		lits[i] = NewLiteral(b, top.complete)
	}
	return NewSeq(lits...)
}

func classFragment(members []rune, negated bool, cfg Config) frag {
	if negated || len(members) == 0 || len(members) > cfg.MaxClassSize {
		return noLiteral()
	}
	alts := make([][]byte, len(members))
	for i, m := range members {
		alts[i] = []byte(string(m))
	}
	return frag{alts: alts, complete: true}
}

func concatFrag(a, b frag, cfg Config) frag {
	switch {
	case a.none && b.none:
		return noLiteral()
	case a.none:
		return frag{alts: b.alts, complete: false}
	case b.none:
		return frag{alts: a.alts, complete: false}
	}

	if len(a.alts)*len(b.alts) > cfg.MaxLiterals {
		return noLiteral()
	}

	alts := make([][]byte, 0, len(a.alts)*len(b.alts))
	for _, x := range a.alts {
		for _, y := range b.alts {
			combined := make([]byte, 0, len(x)+len(y))
			combined = append(combined, x...)
			combined = append(combined, y...)
			alts = append(alts, combined)
		}
	}
	return frag{alts: alts, complete: a.complete && b.complete}
}

func unionFrag(a, b frag, cfg Config) frag {
	if a.none || b.none {
		return noLiteral()
	}
	if len(a.alts)+len(b.alts) > cfg.MaxLiterals {
		return noLiteral()
	}
	alts := make([][]byte, 0, len(a.alts)+len(b.alts))
	alts = append(alts, a.alts...)
	alts = append(alts, b.alts...)
	return frag{alts: alts, complete: a.complete && b.complete}
}
