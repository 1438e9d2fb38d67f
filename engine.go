package pergrex

import (
	"strings"

	"github.com/coregx/pergrex/prefilter"
	"github.com/coregx/pergrex/simd"
)

// findMatches is the prefilter-aware counterpart to automaton.FindMatches:
// it scans text line by line, using r.pf (when present) to skip lines that
// cannot possibly contain a match, and to bypass the simulator entirely
// when the prefilter's own match is already a complete proof.
//
// Per-line behavior is identical whether or not a prefilter is installed —
// only the work done to get there differs. This is the "Prefilter
// transparency" property: disabling EnablePrefilter changes performance,
// never results.
func (r *Regex) findMatches(text string) []Match {
	if text == "" {
		return nil
	}

	var matches []Match
	for lineNum, line := range strings.Split(text, "\n") {
		matches = append(matches, r.scanLine(line, lineNum)...)
	}
	return matches
}

func (r *Regex) scanLine(line string, lineNum int) []Match {
	if line == "" {
		return nil
	}
	if r.pf == nil {
		return r.automaton.FindMatchesInLine(line, lineNum)
	}

	haystack := []byte(line)

	if r.pf.IsComplete() {
		return r.scanCompleteLiteral(haystack, lineNum)
	}

	// The prefilter's literal is only a required substring, not a proof:
	// if it's absent everywhere in the line, no match can start anywhere
	// in the line either, so the simulator never needs to run.
	// The digit and word lead scanners only recognise ASCII bytes, while \d
	// and \w also accept non-ASCII digits and letters, so a line holding any
	// non-ASCII byte always goes to the simulator.
	if r.pf.Find(haystack, 0) == -1 {
		switch r.pf.(type) {
		case *prefilter.DigitPrefilter, *prefilter.WordPrefilter:
			if simd.IsASCII(haystack) {
				return nil
			}
		default:
			return nil
		}
	}
	return r.automaton.FindMatchesInLine(line, lineNum)
}

// scanCompleteLiteral handles the case where a prefilter hit alone proves a
// match (a pattern whose every match is exactly one of a fixed set of
// literal byte strings, e.g. "foo+bar" with no surrounding wildcards).
// It bypasses the NFA simulator entirely.
func (r *Regex) scanCompleteLiteral(haystack []byte, lineNum int) []Match {
	var matches []Match

	if mf, ok := r.pf.(prefilter.MatchFinder); ok {
		pos := 0
		for pos <= len(haystack) {
			start, end := mf.FindMatch(haystack, pos)
			if start == -1 {
				break
			}
			matches = append(matches, Match{Start: start, End: end, Line: lineNum})
			// Retry from the next start position rather than skipping to
			// end: a complete literal can overlap itself (e.g. "aa" against
			// "aaaa" matches at 0, 1, and 2), and regexp semantics require
			// every start position to be tried independently.
			pos = start + 1
		}
		return matches
	}

	litLen := r.pf.LiteralLen()
	pos := 0
	for pos <= len(haystack) {
		start := r.pf.Find(haystack, pos)
		if start == -1 {
			break
		}
		matches = append(matches, Match{Start: start, End: start + litLen, Line: lineNum})
		// Same overlap reasoning as above: advance one byte past the start
		// of this match, not past its end.
		pos = start + 1
	}
	return matches
}
