package literal

import "testing"

func TestLiteralBasic(t *testing.T) {
	tests := []struct {
		name     string
		bytes    []byte
		complete bool
		wantLen  int
	}{
		{"simple complete literal", []byte("hello"), true, 5},
		{"incomplete literal", []byte("test"), false, 4},
		{"empty literal", []byte{}, true, 0},
		{"single byte", []byte("x"), true, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lit := NewLiteral(tt.bytes, tt.complete)
			if got := len(lit.Bytes); got != tt.wantLen {
				t.Errorf("len(Bytes) = %d, want %d", got, tt.wantLen)
			}
			if lit.Complete != tt.complete {
				t.Errorf("Complete = %v, want %v", lit.Complete, tt.complete)
			}
		})
	}
}

func TestSeqCreation(t *testing.T) {
	tests := []struct {
		name     string
		literals []Literal
		wantLen  int
		isEmpty  bool
	}{
		{"empty sequence", []Literal{}, 0, true},
		{"single literal", []Literal{NewLiteral([]byte("test"), true)}, 1, false},
		{
			"multiple literals",
			[]Literal{
				NewLiteral([]byte("foo"), true),
				NewLiteral([]byte("bar"), true),
				NewLiteral([]byte("baz"), true),
			},
			3, false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := NewSeq(tt.literals...)
			if got := seq.Len(); got != tt.wantLen {
				t.Errorf("Len() = %d, want %d", got, tt.wantLen)
			}
			if got := seq.IsEmpty(); got != tt.isEmpty {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.isEmpty)
			}
		})
	}
}

func TestSeqGet(t *testing.T) {
	seq := NewSeq(
		NewLiteral([]byte("first"), true),
		NewLiteral([]byte("second"), false),
		NewLiteral([]byte("third"), true),
	)

	tests := []struct {
		index        int
		wantBytes    string
		wantComplete bool
	}{
		{0, "first", true},
		{1, "second", false},
		{2, "third", true},
	}

	for _, tt := range tests {
		lit := seq.Get(tt.index)
		if string(lit.Bytes) != tt.wantBytes {
			t.Errorf("Get(%d).Bytes = %q, want %q", tt.index, lit.Bytes, tt.wantBytes)
		}
		if lit.Complete != tt.wantComplete {
			t.Errorf("Get(%d).Complete = %v, want %v", tt.index, lit.Complete, tt.wantComplete)
		}
	}
}

func TestSeqNilBehavior(t *testing.T) {
	var seq *Seq

	if seq.Len() != 0 {
		t.Errorf("nil.Len() = %d, want 0", seq.Len())
	}
	if !seq.IsEmpty() {
		t.Errorf("nil.IsEmpty() = false, want true")
	}
}
