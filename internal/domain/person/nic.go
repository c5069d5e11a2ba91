package person

import (
	"regexp"
	"strings"
)

// Two canonical NIC formats: old-style 9 digits followed by V or X, and
// new-style 12 digits.
var (
	nicOldPattern = regexp.MustCompile(`^[0-9]{9}[VX]$`)
	nicNewPattern = regexp.MustCompile(`^[0-9]{12}$`)
)

// NormalizeNIC trims and upper-cases a NIC so that the two canonical formats
// compare case-insensitively ("123456789v" and "123456789V" are the same id).
func NormalizeNIC(nic string) string {
	return strings.ToUpper(strings.TrimSpace(nic))
}

// ValidNIC reports whether nic is in canonical form. Callers normalize first.
func ValidNIC(nic string) bool {
	return nicOldPattern.MatchString(nic) || nicNewPattern.MatchString(nic)
}
