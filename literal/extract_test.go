package literal

import (
	"testing"

	"github.com/coregx/pergrex/syntax"
)

func postfixOf(t *testing.T, pattern string) string {
	t.Helper()
	postfix, err := syntax.ToPostfix(pattern)
	if err != nil {
		t.Fatalf("ToPostfix(%q): %v", pattern, err)
	}
	return postfix
}

func TestExtractSimpleLiteral(t *testing.T) {
	seq := Extract(postfixOf(t, "hello"), DefaultConfig())
	if seq.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", seq.Len())
	}
	lit := seq.Get(0)
	if string(lit.Bytes) != "hello" {
		t.Errorf("Bytes = %q, want %q", lit.Bytes, "hello")
	}
	if !lit.Complete {
		t.Error("Complete = false, want true for a bare literal pattern")
	}
}

func TestExtractUnionForksAlternatives(t *testing.T) {
	seq := Extract(postfixOf(t, "foo+bar"), DefaultConfig())
	if seq.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", seq.Len())
	}
	got := map[string]bool{}
	for i := 0; i < seq.Len(); i++ {
		got[string(seq.Get(i).Bytes)] = seq.Get(i).Complete
	}
	for _, want := range []string{"foo", "bar"} {
		if complete, ok := got[want]; !ok || !complete {
			t.Errorf("missing or incomplete alternative %q: %v", want, got)
		}
	}
}

func TestExtractCharacterClassExpandsToAlternatives(t *testing.T) {
	seq := Extract(postfixOf(t, "[abc]"), DefaultConfig())
	if seq.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", seq.Len())
	}
}

func TestExtractNegatedClassIsUnextractable(t *testing.T) {
	seq := Extract(postfixOf(t, "[^abc]"), DefaultConfig())
	if !seq.IsEmpty() {
		t.Errorf("IsEmpty() = false, want true for a negated class")
	}
}

func TestExtractDigitEscapeTerminatesRun(t *testing.T) {
	seq := Extract(postfixOf(t, `abc\d`), DefaultConfig())
	if seq.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", seq.Len())
	}
	lit := seq.Get(0)
	if string(lit.Bytes) != "abc" {
		t.Errorf("Bytes = %q, want %q", lit.Bytes, "abc")
	}
	if lit.Complete {
		t.Error("Complete = true, want false: a digit run follows and isn't captured")
	}
}

func TestExtractAlphanumericEscapeYieldsNoLiteral(t *testing.T) {
	seq := Extract(postfixOf(t, `\w`), DefaultConfig())
	if !seq.IsEmpty() {
		t.Errorf("IsEmpty() = false, want true for a bare \\w pattern")
	}
}

func TestExtractKleeneYieldsNoLiteral(t *testing.T) {
	seq := Extract(postfixOf(t, "a*"), DefaultConfig())
	if !seq.IsEmpty() {
		t.Errorf("IsEmpty() = false, want true: a starred literal may occur zero times")
	}
}

func TestExtractLiteralBeforeKleeneSuffixStaysRequired(t *testing.T) {
	seq := Extract(postfixOf(t, "ab*"), DefaultConfig())
	// "ab*" is "a" concatenated with "b*"; "a" alone is always present.
	if seq.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", seq.Len())
	}
	if string(seq.Get(0).Bytes) != "a" {
		t.Errorf("Bytes = %q, want %q", seq.Get(0).Bytes, "a")
	}
	if seq.Get(0).Complete {
		t.Error("Complete = true, want false: the trailing b* isn't accounted for")
	}
}

func TestExtractUnionCrossProductCapGivesUp(t *testing.T) {
	cfg := Config{MaxLiterals: 1, MaxClassSize: 16}
	seq := Extract(postfixOf(t, "foo+bar"), cfg)
	if !seq.IsEmpty() {
		t.Errorf("IsEmpty() = false, want true: union of 2 exceeds MaxLiterals=1")
	}
}

func TestExtractOversizedClassGivesUp(t *testing.T) {
	cfg := Config{MaxLiterals: 64, MaxClassSize: 2}
	seq := Extract(postfixOf(t, "[abc]"), cfg)
	if !seq.IsEmpty() {
		t.Errorf("IsEmpty() = false, want true: class of 3 exceeds MaxClassSize=2")
	}
}

func TestExtractGroupedConcatenation(t *testing.T) {
	seq := Extract(postfixOf(t, "(ab)c"), DefaultConfig())
	if seq.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", seq.Len())
	}
	if string(seq.Get(0).Bytes) != "abc" {
		t.Errorf("Bytes = %q, want %q", seq.Get(0).Bytes, "abc")
	}
	if !seq.Get(0).Complete {
		t.Error("Complete = false, want true: the whole pattern is a literal run")
	}
}
