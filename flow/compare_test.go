package flow

import "testing"

func TestCompare_Numeric(t *testing.T) {
	tests := []struct {
		lhs  any
		op   string
		rhs  any
		want bool
	}{
		{"5", CompareLessThan, "10", true},
		{"10", CompareLessThan, "5", false},
		{5, CompareLessOrEqual, 5, true},
		{"3.5", CompareGreaterThan, "3", true},
		{"7", CompareEqual, "7.0", true},
		{"7", CompareNotEqual, "8", true},
		{"2", CompareGreaterOrEqual, "2", true},
	}
	for _, tc := range tests {
		got, err := Compare(tc.lhs, tc.op, tc.rhs)
		if err != nil {
			t.Fatalf("Compare(%v %s %v): %v", tc.lhs, tc.op, tc.rhs, err)
		}
		if got != tc.want {
			t.Fatalf("Compare(%v %s %v) = %v, want %v", tc.lhs, tc.op, tc.rhs, got, tc.want)
		}
	}
}

func TestCompare_String(t *testing.T) {
	// "5" < "10" numerically but "10" < "5" lexically once a side fails
	// to parse as a number.
	got, err := Compare("apple", CompareLessThan, "banana")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatal(`expected "apple" < "banana"`)
	}
	got, err = Compare("10", CompareLessThan, "5x")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatal(`expected lexical "10" < "5x"`)
	}
}

func TestCompare_Contains(t *testing.T) {
	got, err := Compare("hello world", CompareContains, "lo wo")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatal("expected substring match")
	}
	got, _ = Compare("hello", CompareContains, "xyz")
	if got {
		t.Fatal("expected no substring match")
	}
}

func TestCompare_Matches(t *testing.T) {
	got, err := Compare("sample-042.wav", CompareMatches, `\d+`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got {
		t.Fatal("expected pattern match")
	}
	if _, err := Compare("x", CompareMatches, "("); err == nil {
		t.Fatal("expected error for invalid pattern")
	}
}

func TestCompare_UnknownOperator(t *testing.T) {
	if _, err := Compare("1", "~=", "2"); err == nil {
		t.Fatal("expected error for unknown operator")
	}
}
