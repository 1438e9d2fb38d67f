package nfa

import (
	"unicode"

	"github.com/coregx/pergrex/syntax"
)

// Builder assembles an NFA by Thompson construction: each fragment method
// appends new states to a single shared arena (rather than allocating and
// later splicing together independent state graphs) and returns a fragment
// describing its entry point and exit points. Composing fragments only adds
// epsilon transitions between existing states; nothing is copied.
type Builder struct {
	states   []State
	failOnce StateID
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{failOnce: InvalidState}
}

// fragment is an in-progress piece of the automaton: a single entry state
// and the set of states that currently accept (become non-final once the
// fragment is embedded in a larger one).
type fragment struct {
	start  StateID
	finals []StateID
}

func (b *Builder) addState(kind StateKind) StateID {
	id := StateID(len(b.states))
	b.states = append(b.states, State{ID: id, Kind: kind})
	return id
}

func (b *Builder) addTransition(from StateID, on rune, to StateID) {
	b.states[from].Transitions = append(b.states[from].Transitions, Transition{On: on, Target: to})
}

// failState returns a single shared dead-end state, lazily created, used by
// negated character classes to sink excluded runes.
func (b *Builder) failState() StateID {
	if b.failOnce == InvalidState {
		b.failOnce = b.addState(StateFailed)
	}
	return b.failOnce
}

// demote flips a state that is no longer an accepting state of the overall
// fragment back to StateNormal; it keeps whatever transitions it already has
// (e.g. the epsilon loop-back edge a Kleene star adds).
func (b *Builder) demote(id StateID) {
	b.states[id].Kind = StateNormal
}

// Literal builds a single-rune match: start -[c]-> final, and, when
// ignoreCase is set, also start -[swapped case of c]-> final.
func (b *Builder) Literal(c rune, ignoreCase bool) fragment {
	start := b.addState(StateInitial)
	final := b.addState(StateFinal)
	if ignoreCase {
		b.addTransition(start, unicode.ToUpper(c), final)
		b.addTransition(start, unicode.ToLower(c), final)
	} else {
		b.addTransition(start, c, final)
	}
	return fragment{start: start, finals: []StateID{final}}
}

// Class builds a single-rune match against a set of alternatives: start
// transitions to final on any member of chars (both cases, if ignoreCase).
// This models a positive character class, e.g. [abc].
func (b *Builder) Class(chars []rune, ignoreCase bool) fragment {
	start := b.addState(StateInitial)
	final := b.addState(StateFinal)
	for _, c := range chars {
		if ignoreCase {
			b.addTransition(start, unicode.ToUpper(c), final)
			b.addTransition(start, unicode.ToLower(c), final)
		} else {
			b.addTransition(start, c, final)
		}
	}
	return fragment{start: start, finals: []StateID{final}}
}

// NegatedClass builds a single-rune match against everything except chars:
// start sinks each excluded rune to the shared fail state (so it cannot also
// satisfy the catch-all below) and falls through to final on AnyOtherChar.
func (b *Builder) NegatedClass(chars []rune, ignoreCase bool, anyOtherChar rune) fragment {
	start := b.addState(StateInitial)
	final := b.addState(StateFinal)
	fail := b.failState()
	for _, c := range chars {
		if ignoreCase {
			b.addTransition(start, unicode.ToUpper(c), fail)
			b.addTransition(start, unicode.ToLower(c), fail)
		} else {
			b.addTransition(start, c, fail)
		}
	}
	b.addTransition(start, anyOtherChar, final)
	return fragment{start: start, finals: []StateID{final}}
}

// Any builds a single-rune match driven entirely by a class sentinel
// (syntax.AnyDigit or syntax.AnyAlphanumeric), which the simulator
// interprets against the live input rune rather than comparing equality.
func (b *Builder) Any(sentinel rune) fragment {
	start := b.addState(StateInitial)
	final := b.addState(StateFinal)
	b.addTransition(start, sentinel, final)
	return fragment{start: start, finals: []StateID{final}}
}

// Concat sequences a before c: every accepting state of a gets an epsilon
// edge to c's start and is demoted, since it no longer ends the fragment.
func (b *Builder) Concat(a, c fragment) fragment {
	for _, f := range a.finals {
		b.addTransition(f, syntax.Epsilon, c.start)
		b.demote(f)
	}
	return fragment{start: a.start, finals: c.finals}
}

// Union builds alternation: a fresh start epsilon-branches into both
// operands, and a fresh final collects an epsilon edge from each operand's
// old accepting states, which are demoted.
func (b *Builder) Union(a, c fragment) fragment {
	start := b.addState(StateNormal)
	final := b.addState(StateFinal)
	b.addTransition(start, syntax.Epsilon, a.start)
	b.addTransition(start, syntax.Epsilon, c.start)
	for _, f := range a.finals {
		b.addTransition(f, syntax.Epsilon, final)
		b.demote(f)
	}
	for _, f := range c.finals {
		b.addTransition(f, syntax.Epsilon, final)
		b.demote(f)
	}
	return fragment{start: start, finals: []StateID{final}}
}

// Kleene builds zero-or-more repetition: a fresh start can skip straight to
// a fresh final (zero occurrences) or enter a; a's old accepting states loop
// back to a's start (another occurrence) or forward to the fresh final (stop
// here), and are demoted.
func (b *Builder) Kleene(a fragment) fragment {
	start := b.addState(StateNormal)
	final := b.addState(StateFinal)
	b.addTransition(start, syntax.Epsilon, a.start)
	b.addTransition(start, syntax.Epsilon, final)
	for _, f := range a.finals {
		b.addTransition(f, syntax.Epsilon, a.start)
		b.addTransition(f, syntax.Epsilon, final)
		b.demote(f)
	}
	return fragment{start: start, finals: []StateID{final}}
}

// Finish seals the arena into an immutable NFA rooted at the given
// fragment's start state.
func (b *Builder) Finish(start fragment) *NFA {
	return &NFA{states: b.states, start: start.start}
}
