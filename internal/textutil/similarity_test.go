package textutil

import "testing"

func TestRatio(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "identical", a: "the hobbit", b: "the hobbit", want: 100},
		{name: "both empty", a: "", b: "", want: 100},
		{name: "one empty", a: "abc", b: "", want: 0},
		{name: "disjoint", a: "abc", b: "xyz", want: 0},
		{name: "single edit", a: "colour", b: "color", want: 83},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Ratio(tt.a, tt.b); got != tt.want {
				t.Errorf("Ratio(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}

	if Ratio("abc", "abd") != Ratio("abd", "abc") {
		t.Error("Ratio is not symmetric")
	}
}

func TestTokenSortRatio(t *testing.T) {
	if got := TokenSortRatio("the lord of the rings", "lord of the rings the"); got != 100 {
		t.Errorf("reordered words = %d, want 100", got)
	}
	if got := TokenSortRatio("the hobbit", "the silmarillion"); got == 100 {
		t.Error("different titles scored 100")
	}
}

func TestPartialRatio(t *testing.T) {
	if got := PartialRatio("the hobbit", "the hobbit or there and back again"); got != 100 {
		t.Errorf("substring = %d, want 100", got)
	}
	if got := PartialRatio("", "anything"); got != 0 {
		t.Errorf("empty shorter = %d, want 0", got)
	}
	if got := PartialRatio("abcd", "abcd"); got != 100 {
		t.Errorf("equal strings = %d, want 100", got)
	}
}

func TestDigitOnlyDifference(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want bool
	}{
		{name: "digits only differ", a: "book 2", b: "book 3", want: true},
		{name: "identical", a: "book", b: "book", want: false},
		{name: "letters differ", a: "book two", b: "book three", want: false},
		{name: "digit appended", a: "crisis2", b: "crisis", want: true},
		{name: "letter added", a: "crisis", b: "crisis b", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DigitOnlyDifference(tt.a, tt.b); got != tt.want {
				t.Errorf("DigitOnlyDifference(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}
