package attendance

import "testing"

func TestValidPIN(t *testing.T) {
	tests := []struct {
		pin  string
		want bool
	}{
		{"1234", true},
		{"0000", true},
		{"9999", true},
		{"123", false},
		{"12345", false},
		{"12a4", false},
		{"", false},
		{" 123", false},
	}

	for _, tt := range tests {
		if got := validPIN(tt.pin); got != tt.want {
			t.Errorf("validPIN(%q) = %v, want %v", tt.pin, got, tt.want)
		}
	}
}
