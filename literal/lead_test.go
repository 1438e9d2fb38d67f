package literal

import "testing"

// postfixOf is the helper defined in extract_test.go.

func TestLeadsWithDigitBareDigitRun(t *testing.T) {
	if !LeadsWithDigit(postfixOf(t, `\d\d`)) {
		t.Error(`LeadsWithDigit(\d\d) = false, want true`)
	}
}

func TestLeadsWithDigitFollowedByLiteral(t *testing.T) {
	if !LeadsWithDigit(postfixOf(t, `\dabc`)) {
		t.Error(`LeadsWithDigit(\dabc) = false, want true`)
	}
}

func TestLeadsWithDigitFalseForLiteralLead(t *testing.T) {
	if LeadsWithDigit(postfixOf(t, `a\d`)) {
		t.Error(`LeadsWithDigit(a\d) = true, want false`)
	}
}

func TestLeadsWithDigitFalseForMixedUnion(t *testing.T) {
	if LeadsWithDigit(postfixOf(t, `(\d+a)`)) {
		t.Error(`LeadsWithDigit((\d+a)) = true, want false`)
	}
}

func TestLeadsWithDigitFalseUnderKleene(t *testing.T) {
	if LeadsWithDigit(postfixOf(t, `\d*abc`)) {
		t.Error(`LeadsWithDigit(\d*abc) = true, want false`)
	}
}

func TestLeadsWithDigitTrueForUnionOfDigitLeads(t *testing.T) {
	if !LeadsWithDigit(postfixOf(t, `(\d+\d)`)) {
		t.Error(`LeadsWithDigit((\d+\d)) = false, want true`)
	}
}

func TestLeadsWithWordBareWordRun(t *testing.T) {
	if !LeadsWithWord(postfixOf(t, `\w\w`)) {
		t.Error(`LeadsWithWord(\w\w) = false, want true`)
	}
}

func TestLeadsWithWordFollowedByLiteral(t *testing.T) {
	if !LeadsWithWord(postfixOf(t, `\w@host`)) {
		t.Error(`LeadsWithWord(\w@host) = false, want true`)
	}
}

func TestLeadsWithWordFalseForLiteralLead(t *testing.T) {
	if LeadsWithWord(postfixOf(t, `@\w`)) {
		t.Error(`LeadsWithWord(@\w) = true, want false`)
	}
}

func TestLeadsWithWordFalseForMixedUnion(t *testing.T) {
	if LeadsWithWord(postfixOf(t, `(\w+@)`)) {
		t.Error(`LeadsWithWord((\w+@)) = true, want false`)
	}
}

func TestLeadsWithWordFalseUnderKleene(t *testing.T) {
	if LeadsWithWord(postfixOf(t, `\w*abc`)) {
		t.Error(`LeadsWithWord(\w*abc) = true, want false`)
	}
}

func TestLeadsWithWordTrueForUnionOfWordLeads(t *testing.T) {
	if !LeadsWithWord(postfixOf(t, `(\w+\w)`)) {
		t.Error(`LeadsWithWord((\w+\w)) = false, want true`)
	}
}

func TestLeadsWithDigitFalseForWordEscape(t *testing.T) {
	if LeadsWithDigit(postfixOf(t, `\w\w`)) {
		t.Error(`LeadsWithDigit(\w\w) = true, want false`)
	}
}

func TestLeadsWithWordFalseForDigitEscape(t *testing.T) {
	if LeadsWithWord(postfixOf(t, `\d\d`)) {
		t.Error(`LeadsWithWord(\d\d) = true, want false`)
	}
}
