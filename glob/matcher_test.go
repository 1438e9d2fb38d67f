package glob

import "testing"

func TestCompileRejectsUnclosedClass(t *testing.T) {
	if _, err := Compile("*.[abc"); err == nil {
		t.Error("Compile(\"*.[abc\") = nil error, want ErrUnclosedClass")
	}
}

func TestMatchStringLiteral(t *testing.T) {
	m, err := Compile("f.h")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !m.MatchString("f.h") {
		t.Error("expected exact literal match")
	}
	if m.MatchString("nested/f.h") {
		t.Error("a pattern with no wildcard should not match a longer path")
	}
}

func TestMatchStringStarCrossesSeparators(t *testing.T) {
	m, err := Compile("*.[abc]")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for _, path := range []string{"ext/file.a", "ext/file.b", "ext/file.c"} {
		if !m.MatchString(path) {
			t.Errorf("MatchString(%q) = false, want true", path)
		}
	}
	if m.MatchString("ext/file.d") {
		t.Error("MatchString(\"ext/file.d\") = true, want false")
	}
}

func TestMatchStringQuestionMarkSkipsOneChar(t *testing.T) {
	m, err := Compile("a??a")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for _, path := range []string{"abba", "acca"} {
		if !m.MatchString(path) {
			t.Errorf("MatchString(%q) = false, want true", path)
		}
	}
	if m.MatchString("a.txt") {
		t.Error("MatchString(\"a.txt\") = true, want false")
	}
}

func TestMatchStringBareStarMatchesEverything(t *testing.T) {
	m, err := Compile("*")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	for _, path := range []string{"a", "deep/nested/path.txt", ""} {
		if !m.MatchString(path) {
			t.Errorf("MatchString(%q) = false, want true", path)
		}
	}
}

func TestMatchStringCharacterSetSingleMember(t *testing.T) {
	m, err := Compile("[a]test")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if !m.MatchString("atest") {
		t.Error("expected [a]test to match atest")
	}
	if m.MatchString("btest") {
		t.Error("expected [a]test not to match btest")
	}
}
