package syntax

import "testing"

func TestToPostfix(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		want    string
	}{
		{"empty", "", ""},
		{"negative char group alone", "[^abc]", "[^abc]"},
		{"negative char group then atom", "[^abc]a", "[^abc]a?"},
		{"char group alone", "[abc]", "[abc]"},
		{"char group then atom", "[abc]a", "[abc]a?"},
		{"concat of groups", "(ab)(ab)", "ab?ab??"},
		{"complex", "a(a+b)*b", "aab+*?b?"},
		{"concat with char set", "[ab]c", "[ab]c?"},
		{"underscore", "a_b", "a_?b?"},
		{"long concat", "abcdefghijk", "ab?c?d?e?f?g?h?i?j?k?"},
		{"concat", "ab", "ab?"},
		{"decimal", `\d`, `\d`},
		{"word", `\w`, `\w`},
		{"union", "a+b", "ab+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToPostfix(tt.pattern)
			if err != nil {
				t.Fatalf("ToPostfix(%q) returned error: %v", tt.pattern, err)
			}
			if got != tt.want {
				t.Errorf("ToPostfix(%q) = %q, want %q", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestToPostfixUnbalanced(t *testing.T) {
	if _, err := ToPostfix("(ab"); err == nil {
		t.Error("expected error for unbalanced '('")
	}
	if _, err := ToPostfix("ab)"); err == nil {
		t.Error("expected error for unbalanced ')'")
	}
}
