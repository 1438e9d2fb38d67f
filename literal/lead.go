package literal

import "github.com/coregx/pergrex/syntax"

// leadKind classifies whether every string a sub-pattern can produce is
// guaranteed to start with a particular escape class (`\d` or `\w`).
type leadKind uint8

const (
	leadUnknown leadKind = iota // not provably led by the target escape; treat as "no" everywhere
	leadTarget                  // guaranteed to start with the escape letter being tested for
	leadOther
)

// leadsWithEscape reports whether every possible match of postfix is
// guaranteed to begin with the given escape letter ('d' or 'w'). It is
// deliberately conservative: a Kleene-starred sub-pattern, a class, or
// anything this pass can't pin down collapses to "not guaranteed", never to
// a match. A false positive here would let a lead-based prefilter skip past
// a valid match that doesn't start with the target escape, so every case
// that isn't certain must resolve to false.
//
// This exists for patterns where Extract can find no literal requirement at
// all but the pattern still always starts with the escape (e.g. `\d\d`,
// which has no literal bytes but every match starts with `\d`), letting the
// caller fall back to an escape-lead prefilter instead of an unfiltered scan.
func leadsWithEscape(postfix string, escapeLetter rune) bool {
	var stack []leadKind
	pop := func() (leadKind, bool) {
		if len(stack) == 0 {
			return leadUnknown, false
		}
		k := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		return k, true
	}

	runes := []rune(postfix)
	inClass := false
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == syntax.Negate:
			// no-op, mirrors Extract

		case c == syntax.CharSetEnd:
			// Character classes never guarantee an escape lead here: even an
			// all-digit class like [0-5] is not distinguished from [a-z] by
			// this pass, and treating it as "other" is always safe.
			stack = append(stack, leadOther)
			inClass = false

		case inClass:
			// class contents consumed silently

		case c == syntax.CharSetStart:
			inClass = true

		case c == syntax.Slash:
			if i+1 < len(runes) {
				if runes[i+1] == escapeLetter {
					stack = append(stack, leadTarget)
				} else {
					stack = append(stack, leadOther)
				}
				i++
			} else {
				stack = append(stack, leadUnknown)
			}

		case c == syntax.Kleene:
			// A starred sub-pattern may occur zero times, so whatever
			// follows it determines the real lead; in isolation this frag
			// can't promise the target escape.
			pop()
			stack = append(stack, leadUnknown)

		case c == syntax.Concat:
			b, ok1 := pop()
			a, ok2 := pop()
			_ = b
			if !ok1 || !ok2 {
				stack = append(stack, leadUnknown)
				continue
			}
			// The first operand alone determines whether every match of
			// the concatenation starts with the target escape.
			stack = append(stack, a)

		case c == syntax.Union:
			b, ok1 := pop()
			a, ok2 := pop()
			if !ok1 || !ok2 {
				stack = append(stack, leadUnknown)
				continue
			}
			if a == leadTarget && b == leadTarget {
				stack = append(stack, leadTarget)
			} else {
				stack = append(stack, leadOther)
			}

		default:
			stack = append(stack, leadOther)
		}
	}

	top, ok := pop()
	return ok && top == leadTarget
}

// LeadsWithDigit reports whether every possible match of postfix is
// guaranteed to begin with a digit (surface syntax `\d`). Used as a
// fallback when Extract finds no literal requirement, so the caller can
// still build a DigitPrefilter.
func LeadsWithDigit(postfix string) bool {
	return leadsWithEscape(postfix, 'd')
}

// LeadsWithWord reports whether every possible match of postfix is
// guaranteed to begin with a word character (surface syntax `\w`). Used as a
// fallback when Extract finds no literal requirement, so the caller can
// still build a WordPrefilter.
func LeadsWithWord(postfix string) bool {
	return leadsWithEscape(postfix, 'w')
}
