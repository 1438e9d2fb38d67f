package nfa

import (
	"github.com/coregx/pergrex/syntax"
)

// Options configures compilation.
type Options struct {
	// IgnoreCase makes every literal and character-class member match both
	// the upper and lower mapping of its first Unicode scalar.
	IgnoreCase bool
}

// Compile turns pattern's postfix token stream (produced by
// syntax.ToPostfix) into an NFA by interpreting it as a stack machine: atoms
// push a fragment, and Concat/Union/Kleene pop one or two fragments off the
// stack and push the fragment that results from combining them.
//
// Compile expects pattern already in postfix form; callers normally go
// through the root package's Compile, which runs syntax.ToPostfix first.
func Compile(postfix string, opts Options) (*NFA, error) {
	b := NewBuilder()
	var stack []fragment

	pop := func() (fragment, bool) {
		if len(stack) == 0 {
			return fragment{}, false
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
			// A bare '^' outside a character class has no meaning in this
			// engine (no anchors); it is consumed without producing a
			// fragment, matching the original tool's parser exactly.

		case c == syntax.CharSetEnd:
			var frag fragment
			if negateClass {
				frag = b.NegatedClass(classMembers, opts.IgnoreCase, syntax.AnyOtherChar)
			} else {
				frag = b.Class(classMembers, opts.IgnoreCase)
			}
			stack = append(stack, frag)
			classMembers = nil
			negateClass = false
			inClass = false

		case inClass:
			classMembers = append(classMembers, c)

		case c == syntax.CharSetStart:
			inClass = true

		case c == syntax.Slash:
			if i+1 >= len(runes) {
				return nil, &CompileError{Pattern: postfix, Err: ErrInvalidPattern}
			}
			i++
			switch runes[i] {
			case 'd':
				digit := b.Any(syntax.AnyDigit)
				stack = append(stack, b.Concat(digit, b.Kleene(b.Any(syntax.AnyDigit))))
			case 'w':
				stack = append(stack, b.Any(syntax.AnyAlphanumeric))
			default:
				return nil, &CompileError{Pattern: postfix, Err: ErrInvalidPattern}
			}

		case c == syntax.Kleene:
			a, ok := pop()
			if !ok {
				return nil, &CompileError{Pattern: postfix, Err: ErrInvalidPattern}
			}
			stack = append(stack, b.Kleene(a))

		case c == syntax.Concat:
			rhs, ok1 := pop()
			lhs, ok2 := pop()
			if !ok1 || !ok2 {
				return nil, &CompileError{Pattern: postfix, Err: ErrInvalidPattern}
			}
			stack = append(stack, b.Concat(lhs, rhs))

		case c == syntax.Union:
			rhs, ok1 := pop()
			lhs, ok2 := pop()
			if !ok1 || !ok2 {
				return nil, &CompileError{Pattern: postfix, Err: ErrInvalidPattern}
			}
			stack = append(stack, b.Union(lhs, rhs))

		default:
			stack = append(stack, b.Literal(c, opts.IgnoreCase))
		}
	}

	top, ok := pop()
	if !ok || len(stack) != 0 {
		return nil, &CompileError{Pattern: postfix, Err: ErrInvalidPattern}
	}
	return b.Finish(top), nil
}
