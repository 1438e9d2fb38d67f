// Package pergrex provides a regular-expression engine built from a
// hand-rolled Thompson-construction NFA, plus a glob matcher (package glob)
// that shares the same wildcard primitives for selecting files to scan.
//
// Basic usage:
//
//	re, err := pergrex.Compile(`\d\dabc`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	matches := re.FindMatches("01abc\nxyz\n")
//
// Syntax is deliberately small: literal characters, `[abc]` character
// classes (no ranges), `\d` and `\w` escapes, `(`/`)` grouping, `*` for
// Kleene star, and `+` for alternation (not `|` — see DESIGN.md for why).
// There are no anchors, backreferences, or `{n,m}` quantifiers.
package pergrex

import (
	"github.com/coregx/pergrex/literal"
	"github.com/coregx/pergrex/nfa"
	"github.com/coregx/pergrex/prefilter"
	"github.com/coregx/pergrex/syntax"
)

// Config controls pattern compilation.
type Config struct {
	// IgnoreCase makes literal and class matches case-insensitive, honoring
	// only the first-scalar case mapping of each rune (documented
	// limitation: multi-scalar mappings like 'ß'->"SS" are not handled).
	IgnoreCase bool

	// EnablePrefilter turns on literal-based candidate prescanning ahead of
	// the NFA simulator. Disabling it never changes which matches are
	// found, only how fast they're found (see the "Prefilter transparency"
	// property in SPEC_FULL.md).
	EnablePrefilter bool

	// MaxLiterals bounds how many alternative literals extraction may
	// produce before giving up (see literal.Config.MaxLiterals).
	MaxLiterals int
}

// DefaultConfig returns a Config suitable for typical patterns: case
// sensitive, prefilter enabled, literal extraction capped at 64
// alternatives.
func DefaultConfig() Config {
	return Config{
		IgnoreCase:      false,
		EnablePrefilter: true,
		MaxLiterals:     literal.DefaultConfig().MaxLiterals,
	}
}

// Validate reports whether cfg's fields hold sane values.
func (cfg Config) Validate() error {
	if cfg.EnablePrefilter && cfg.MaxLiterals <= 0 {
		return &ConfigError{Field: "MaxLiterals", Reason: "must be positive when EnablePrefilter is true"}
	}
	return nil
}

// ConfigError reports an invalid Config field.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return "pergrex: invalid Config." + e.Field + ": " + e.Reason
}

// Match is a single match within one line of scanned text: a half-open byte
// range [Start, End) and the zero-based line number it occurred on.
type Match = nfa.Match

// Regex is a compiled pattern, immutable after Compile returns and safe to
// use concurrently from multiple goroutines (each FindMatches call touches
// only its own local scratch state).
type Regex struct {
	pattern   string
	cfg       Config
	automaton *nfa.NFA
	pf        prefilter.Prefilter
}

// Compile compiles pattern with DefaultConfig.
func Compile(pattern string) (*Regex, error) {
	return CompileWithConfig(pattern, DefaultConfig())
}

// MustCompile is like Compile but panics if pattern is invalid. Intended for
// patterns known to be valid at compile time (e.g. package-level vars).
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("pergrex: Compile(" + pattern + "): " + err.Error())
	}
	return re
}

// CompileWithConfig compiles pattern with a caller-supplied Config.
func CompileWithConfig(pattern string, cfg Config) (*Regex, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	postfix, err := syntax.ToPostfix(pattern)
	if err != nil {
		return nil, err
	}

	automaton, err := nfa.Compile(postfix, nfa.Options{IgnoreCase: cfg.IgnoreCase})
	if err != nil {
		return nil, err
	}

	// Extracted literals are case-sensitive byte strings, so a prefilter is
	// only built when IgnoreCase is off.
	var pf prefilter.Prefilter
	if cfg.EnablePrefilter && !cfg.IgnoreCase {
		pf = buildPrefilter(postfix, cfg)
	}

	return &Regex{pattern: pattern, cfg: cfg, automaton: automaton, pf: pf}, nil
}

// buildPrefilter extracts literal requirements from postfix and selects the
// best available candidate-position scanner, falling back to a digit-lead or
// word-lead scanner when no literal bytes could be extracted but the pattern
// still provably starts with a digit (e.g. "\d\d") or a word character (e.g.
// "\w\w").
func buildPrefilter(postfix string, cfg Config) prefilter.Prefilter {
	litCfg := literal.Config{MaxLiterals: cfg.MaxLiterals, MaxClassSize: literal.DefaultConfig().MaxClassSize}
	seq := literal.Extract(postfix, litCfg)
	if seq.IsEmpty() {
		switch {
		case literal.LeadsWithDigit(postfix):
			return prefilter.NewDigitPrefilter()
		case literal.LeadsWithWord(postfix):
			return prefilter.NewWordPrefilter()
		default:
			return nil
		}
	}
	return prefilter.NewBuilder(seq, nil).Build()
}

// String returns the source pattern Regex was compiled from.
func (r *Regex) String() string {
	return r.pattern
}

// IsMatch reports whether the pattern matches anywhere in text.
func (r *Regex) IsMatch(text string) bool {
	return r.automaton.IsMatch(text)
}

// FindMatches returns every match of the pattern in text, scanning line by
// line (text is split on '\n'). Matches within a line are ordered by
// ascending Start; matches across lines are ordered by Line then Start.
// Empty text returns nil.
func (r *Regex) FindMatches(text string) []Match {
	return r.findMatches(text)
}
