package model

import "testing"

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"12.5", 12.5},
		{"  7 ", 7},
		{"-3.25", -3.25},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"12abc", 0},
	}

	for _, tt := range tests {
		if got := ParseNumber(tt.in); got != tt.want {
			t.Errorf("ParseNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsNumber(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"12.5", true},
		{" 0 ", true},
		{"-1", true},
		{"", false},
		{"twelve", false},
	}

	for _, tt := range tests {
		if got := IsNumber(tt.in); got != tt.want {
			t.Errorf("IsNumber(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{12.5, "12.5"},
		{12.50, "12.5"},
		{12.346, "12.35"},
		{7, "7"},
		{0, "0"},
		{30.48, "30.48"},
	}

	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
