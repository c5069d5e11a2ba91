package matching

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// Score returns a normalized name similarity in [0,1]:
// 1 - editDistance / max(len). Inputs are trimmed and lower-cased first.
// Case folding is ASCII-only, which is a known limitation for Sinhala and
// Tamil names; those scripts carry no case, so the distance itself still
// behaves, only Latin transliterations mix case.
//
// Two empty names are vacuously identical (1.0); one empty name shares
// nothing with a non-empty one (0.0).
func Score(nameA, nameB string) float64 {
	a := strings.ToLower(strings.TrimSpace(nameA))
	b := strings.ToLower(strings.TrimSpace(nameB))

	lenA := utf8.RuneCountInString(a)
	lenB := utf8.RuneCountInString(b)
	if lenA == 0 && lenB == 0 {
		return 1.0
	}
	if lenA == 0 || lenB == 0 {
		return 0.0
	}

	distance := levenshtein.ComputeDistance(a, b)
	longest := lenA
	if lenB > longest {
		longest = lenB
	}

	return 1.0 - float64(distance)/float64(longest)
}
