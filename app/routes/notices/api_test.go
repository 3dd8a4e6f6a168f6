package notices

import "testing"

func TestFormatNoticeDate(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{"2025-01-02", "02 January"},
		{"2025-12-25", "25 December"},
		{"2024-02-29", "29 February"},
	}

	for _, tt := range tests {
		got, err := formatNoticeDate(tt.value)
		if err != nil {
			t.Errorf("formatNoticeDate(%q) returned error: %v", tt.value, err)
			continue
		}
		if got != tt.want {
			t.Errorf("formatNoticeDate(%q) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatNoticeDateRejectsMalformedInput(t *testing.T) {
	for _, value := range []string{"", "02 January", "2025-13-01", "25/12/2025"} {
		if _, err := formatNoticeDate(value); err == nil {
			t.Errorf("formatNoticeDate(%q) accepted malformed input", value)
		}
	}
}
