package person

import "testing"

func TestNormalizeNIC(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"123456789v", "123456789V"},
		{" 123456789V ", "123456789V"},
		{"200012345678", "200012345678"},
		{"", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeNIC(tt.in); got != tt.want {
			t.Errorf("NormalizeNIC(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidNIC(t *testing.T) {
	tests := []struct {
		nic  string
		want bool
	}{
		{"123456789V", true},
		{"123456789X", true},
		{"200012345678", true},
		{"123456789v", false}, // callers normalize first
		{"123456789", false},
		{"12345678V", false},
		{"1234567890123", false},
		{"12345678901V", false},
		{"ABCDEFGHIV", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := ValidNIC(tt.nic); got != tt.want {
			t.Errorf("ValidNIC(%q) = %v, want %v", tt.nic, got, tt.want)
		}
	}
}
