package matching

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestScoreIdentityAndEmpty(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"both empty", "", "", 1.0},
		{"left empty", "", "abc", 0.0},
		{"right empty", "abc", "", 0.0},
		{"identical", "Nimal Perera", "Nimal Perera", 1.0},
		{"identical after trim", "  Nimal Perera ", "Nimal Perera", 1.0},
		{"identical after casefold", "NIMAL PERERA", "nimal perera", 1.0},
		{"whitespace only is empty", "   ", "", 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Score(tt.a, tt.b)
			if !almostEqual(got, tt.want) {
				t.Errorf("Score(%q, %q) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestScoreSymmetry(t *testing.T) {
	pairs := [][2]string{
		{"Nimal Perera", "Nimal Perara"},
		{"Kamala", "Kamal"},
		{"abc", "xyz"},
		{"", "abc"},
		{"Saman Kumara", "Kumara Saman"},
	}
	for _, pair := range pairs {
		ab := Score(pair[0], pair[1])
		ba := Score(pair[1], pair[0])
		if !almostEqual(ab, ba) {
			t.Errorf("Score(%q, %q) = %v but Score(%q, %q) = %v", pair[0], pair[1], ab, pair[1], pair[0], ba)
		}
	}
}

func TestScoreSingleEdit(t *testing.T) {
	// One substitution over 12 characters: 1 - 1/12.
	got := Score("Nimal Perara", "Nimal Perera")
	want := 1.0 - 1.0/12.0
	if !almostEqual(got, want) {
		t.Errorf("Score(\"Nimal Perara\", \"Nimal Perera\") = %v, want %v", got, want)
	}
}

func TestScoreRange(t *testing.T) {
	pairs := [][2]string{
		{"a", "completely different string"},
		{"Nimal", "Perera"},
		{"x", "y"},
	}
	for _, pair := range pairs {
		got := Score(pair[0], pair[1])
		if got < 0.0 || got > 1.0 {
			t.Errorf("Score(%q, %q) = %v, outside [0,1]", pair[0], pair[1], got)
		}
	}
}
