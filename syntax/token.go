// Package syntax turns a pergrex pattern string into a postfix token stream
// that the nfa package can interpret directly.
//
// The pipeline is a classic two-pass compiler front end: InsertConcat makes
// implicit concatenation explicit, then ToPostfix runs shunting-yard to
// reorder infix operators into postfix. The token vocabulary and precedence
// below mirror the Rust tool this engine was ported from, so patterns carry
// over unchanged.
package syntax

// Sentinel runes used internally as regex operators and character classes.
// These are chosen to be unlikely to appear in real patterns, and must never
// be used as literal characters in surface syntax.
const (
	Epsilon         rune = 'ε'
	Concat          rune = '?'
	Union           rune = '+'
	Kleene          rune = '*'
	AnyDigit        rune = '#'
	AnyAlphanumeric rune = '='
	AnyOtherChar    rune = '&'
	Slash           rune = '\\'
	CharSetStart    rune = '['
	CharSetEnd      rune = ']'
	GroupStart      rune = '('
	GroupEnd        rune = ')'
	Negate          rune = '^'
)

// reservedChars holds every rune with special meaning in surface syntax.
var reservedChars = map[rune]bool{
	Epsilon:         true,
	Concat:          true,
	Union:           true,
	Kleene:          true,
	AnyDigit:        true,
	AnyAlphanumeric: true,
	AnyOtherChar:    true,
	Slash:           true,
	GroupStart:      true,
	GroupEnd:        true,
	CharSetEnd:      true,
	CharSetStart:    true,
}

// IsReserved reports whether r has special meaning in pergrex's surface
// syntax and therefore cannot appear as a literal outside a character class.
func IsReserved(r rune) bool {
	return reservedChars[r]
}

// cannotConcatPrevChar holds runes after which an implicit concatenation
// operator must never be inserted (e.g. right after an opening paren).
var cannotConcatPrevChar = map[rune]bool{
	GroupStart:   true,
	Union:        true,
	CharSetStart: true,
	Slash:        true,
}

// cannotConcatCurrentChar holds runes before which an implicit concatenation
// operator must never be inserted (e.g. right before a closing paren).
var cannotConcatCurrentChar = map[rune]bool{
	Concat:     true,
	Union:      true,
	Kleene:     true,
	GroupEnd:   true,
	CharSetEnd: true,
}

// precedence gives shunting-yard priority for the operators that appear in
// the concat-expanded token stream. Parentheses sort lowest so they always
// yield to any real operator sitting above them on the stack.
var precedence = map[rune]int{
	GroupStart: 0,
	GroupEnd:   0,
	Kleene:     4,
	Union:      2,
	Concat:     3,
}
