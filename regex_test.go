package pergrex

import "testing"

func TestCompile(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr bool
	}{
		{"simple literal", "hello", false},
		{"digit", `\d`, false},
		{"alphanumeric", `\w`, false},
		{"alternation", "foo+bar", false},
		{"kleene", "a*", false},
		{"unmatched paren", "(ab", true},
		{"unclosed class", "[abc", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := Compile(tt.pattern)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Compile(%q) error = %v, wantErr %v", tt.pattern, err, tt.wantErr)
			}
			if !tt.wantErr && re == nil {
				t.Error("Compile() returned nil Regex with no error")
			}
		})
	}
}

func TestMustCompilePanicsOnInvalidPattern(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("MustCompile did not panic on an invalid pattern")
		}
	}()
	MustCompile("(a")
}

func TestIsMatch(t *testing.T) {
	re := MustCompile(`\d\d`)
	if !re.IsMatch("room 42") {
		t.Error("IsMatch() = false, want true")
	}
	if re.IsMatch("no digits here") {
		t.Error("IsMatch() = true, want false")
	}
}

// TestDigitAnchoredScenario is spec.md §8 scenario 4.
func TestDigitAnchoredScenario(t *testing.T) {
	re := MustCompile(`\d\dabc`)
	text := "01abc\nabc01abc\n12313\nabc"
	matches := re.FindMatches(text)

	want := []Match{
		{Start: 0, End: 5, Line: 0},
		{Start: 3, End: 8, Line: 1},
	}
	if len(matches) != len(want) {
		t.Fatalf("FindMatches() = %v, want %v", matches, want)
	}
	for i := range want {
		if matches[i] != want[i] {
			t.Errorf("matches[%d] = %+v, want %+v", i, matches[i], want[i])
		}
	}
}

// TestIgnoreCaseClassScenario is grounded in spec.md §8 scenario 5 (a
// case-insensitive character class over mixed-case text). The expected
// positions are computed directly from the input rather than copied from
// spec.md's worked example, whose prose description ("the A's, B, a, a")
// doesn't correspond to any consistent reading of "Apple BANANA" itself
// (there is no lowercase 'a' in that string, and the position set given
// doesn't land on 'B'); this test instead asserts the semantics the
// scenario is clearly testing: ignore-case matches every occurrence of any
// case of 'a', 'b', or 'c'.
func TestIgnoreCaseClassScenario(t *testing.T) {
	re, err := CompileWithConfig("[abc]", Config{IgnoreCase: true, EnablePrefilter: true, MaxLiterals: 64})
	if err != nil {
		t.Fatalf("CompileWithConfig: %v", err)
	}
	text := "Apple BANANA"
	matches := re.FindMatches(text)

	var positions []int
	for _, m := range matches {
		positions = append(positions, m.Start)
	}

	var want []int
	for i, r := range text {
		switch r {
		case 'a', 'A', 'b', 'B', 'c', 'C':
			want = append(want, i)
		}
	}

	if len(positions) != len(want) {
		t.Fatalf("match positions = %v, want %v", positions, want)
	}
	for i := range want {
		if positions[i] != want[i] {
			t.Errorf("positions[%d] = %d, want %d", i, positions[i], want[i])
		}
	}
}

// TestUnionKleeneScenario is spec.md §8 scenario 6.
func TestUnionKleeneScenario(t *testing.T) {
	re := MustCompile(`(ab+a)*`)
	for _, text := range []string{"ababab", "bbbaaa", ""} {
		if !re.IsMatch(text) && text != "" {
			t.Errorf("IsMatch(%q) = false, want true", text)
		}
	}
	// The empty string is always accepted by a starred group (zero reps);
	// FindMatches on empty text itself returns no matches per the empty
	// input property, but a nonempty text containing zero occurrences of
	// the inner group should still report a zero-width match at position 0.
	if matches := re.FindMatches("xyz"); len(matches) == 0 {
		t.Error("expected at least one zero-width match for the zero-repetition case")
	}
}

func TestFindMatchesEmptyTextReturnsNil(t *testing.T) {
	re := MustCompile("a")
	if got := re.FindMatches(""); got != nil {
		t.Errorf("FindMatches(\"\") = %v, want nil", got)
	}
}

func TestPrefilterTransparency(t *testing.T) {
	defaultText := "the quick brown fox jumps\nover 12 lazy dogs\nfoobar baz\n"

	cases := []struct {
		pattern string
		text    string
	}{
		{"fox", defaultText},
		{`\d\d`, defaultText},
		{"foo+bar", defaultText},
		{"[aeiou]", defaultText},
		// A complete literal that overlaps itself: scanCompleteLiteral must
		// retry from start+1 after each hit instead of skipping past the
		// matched span, or it silently drops the (1,3) match here.
		{"aa", "aaaa"},
		// Same property routed through the Aho-Corasick MatchFinder branch:
		// "aab" is matched by both alternatives ("aa" at 0 and "ab" at 1),
		// and the second only surfaces if the scan retries every position.
		{"(aa+ab)", "aab"},
	}

	for _, tc := range cases {
		withPF, err := CompileWithConfig(tc.pattern, Config{EnablePrefilter: true, MaxLiterals: 64})
		if err != nil {
			t.Fatalf("CompileWithConfig(%q): %v", tc.pattern, err)
		}
		withoutPF, err := CompileWithConfig(tc.pattern, Config{EnablePrefilter: false, MaxLiterals: 64})
		if err != nil {
			t.Fatalf("CompileWithConfig(%q): %v", tc.pattern, err)
		}

		got := withPF.FindMatches(tc.text)
		want := withoutPF.FindMatches(tc.text)
		if len(got) != len(want) {
			t.Fatalf("pattern %q: prefilter on = %v, off = %v", tc.pattern, got, want)
		}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("pattern %q: match[%d] = %+v, want %+v", tc.pattern, i, got[i], want[i])
			}
		}
	}
}

// TestScanCompleteLiteralOverlap pins the exact overlap regression down to
// concrete positions, independent of the on/off comparison above.
func TestScanCompleteLiteralOverlap(t *testing.T) {
	re := MustCompile("aa")
	matches := re.FindMatches("aaaa")
	want := []int{0, 1, 2}
	if len(matches) != len(want) {
		t.Fatalf("FindMatches(%q) = %v, want matches at %v", "aaaa", matches, want)
	}
	for i, w := range want {
		if matches[i].Start != w || matches[i].End != w+2 {
			t.Errorf("match[%d] = %+v, want Start=%d End=%d", i, matches[i], w, w+2)
		}
	}
}

func TestConfigValidateRejectsNonPositiveMaxLiterals(t *testing.T) {
	cfg := Config{EnablePrefilter: true, MaxLiterals: 0}
	if err := cfg.Validate(); err == nil {
		t.Error("Validate() = nil, want error for MaxLiterals=0 with EnablePrefilter=true")
	}
}

func TestStringReturnsSourcePattern(t *testing.T) {
	re := MustCompile(`\d+abc`)
	if re.String() != `\d+abc` {
		t.Errorf("String() = %q, want %q", re.String(), `\d+abc`)
	}
}
