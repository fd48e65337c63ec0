package service

import "testing"

func TestCleanNumeric(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  float64
	}{
		{"nil", nil, 0},
		{"empty string", "", 0},
		{"plain number string", "45", 45},
		{"dollar sign", "$45", 45},
		{"rupee prefix with separators", "Rs 1,200.50", 1200.5},
		{"spaces only", "   ", 0},
		{"letters only", "abc", 0},
		{"multiple decimal points", "1.2.3", 0},
		{"float64", 9500.25, 9500.25},
		{"int", 300, 300},
		{"large float stays plain", 1000000.0, 1000000},
		{"negative loses its sign", "-250", 250},
		{"bool stringified", true, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CleanNumeric(tt.input)
			if got != tt.want {
				t.Errorf("CleanNumeric(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRoundHelpers(t *testing.T) {
	if got := round2(1.23456); got != 1.23 {
		t.Errorf("round2(1.23456) = %v, want 1.23", got)
	}
	if got := round1(20.833333); got != 20.8 {
		t.Errorf("round1(20.833333) = %v, want 20.8", got)
	}
}

func TestSanitizeUTF8(t *testing.T) {
	valid := "budget ₹1200"
	if got := sanitizeUTF8(valid); got != valid {
		t.Errorf("valid string changed: %q", got)
	}

	invalid := "bud\xffget"
	if got := sanitizeUTF8(invalid); got != "budget" {
		t.Errorf("sanitizeUTF8(%q) = %q, want %q", invalid, got, "budget")
	}
}
