package helper

import "testing"

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"local prefix converted", "081234567890", "+6281234567890"},
		{"already international", "+6281234567890", "+6281234567890"},
		{"whitespace trimmed", "  081234567890 ", "+6281234567890"},
		{"foreign number untouched", "+14155550100", "+14155550100"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePhone(tt.input); got != tt.want {
				t.Errorf("NormalizePhone(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsValidIndonesianPhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid mobile", "+6281234567890", true},
		{"minimum digits", "+62812345678", true},
		{"too short", "+6281234", false},
		{"too long", "+62812345678901234", false},
		{"local format rejected", "081234567890", false},
		{"letters rejected", "+62812abc5678", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidIndonesianPhone(tt.input); got != tt.want {
				t.Errorf("IsValidIndonesianPhone(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
