package literal

// Literal is a concrete byte sequence that Extract has proven must appear in
// any match of the pattern fragment it came from. Complete reports whether
// that byte sequence is the entire match on its own (true) or only a
// required substring that still needs the NFA simulator to confirm the rest
// of the pattern (false) — see prefilter.Prefilter.IsComplete, which reads
// this flag straight through from whichever Literal backed it.
type Literal struct {
	Bytes    []byte
	Complete bool
}

// NewLiteral constructs a Literal.
func NewLiteral(b []byte, complete bool) Literal {
	return Literal{Bytes: b, Complete: complete}
}

// Seq is the set of alternative literals Extract found for one pattern: more
// than one entry means the pattern is a union of distinct required strings
// (e.g. "foo+bar" yields two alternatives, one per side of the `+`), any one
// of which proves a candidate position. A nil or empty Seq means extraction
// couldn't pin down any required bytes, so no literal-based prefilter can be
// built for that pattern (buildPrefilter then falls back to
// literal.LeadsWithDigit or literal.LeadsWithWord, or to no prefilter at all).
type Seq struct {
	literals []Literal
}

// NewSeq constructs a Seq from its alternative literals.
func NewSeq(lits ...Literal) *Seq {
	return &Seq{literals: lits}
}

// Len returns the number of alternative literals.
func (s *Seq) Len() int {
	if s == nil {
		return 0
	}
	return len(s.literals)
}

// Get returns the literal at index i. Panics if i is out of bounds.
func (s *Seq) Get(i int) Literal {
	return s.literals[i]
}

// IsEmpty reports whether the sequence has no literals, meaning Extract
// found nothing in this fragment that every match is required to contain.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.literals) == 0
}
