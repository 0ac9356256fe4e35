package normalize

import (
	"reflect"
	"testing"
)

func TestEmail(t *testing.T) {
	if got := Email("  Ana.Lopez@Example.COM "); got != "ana.lopez@example.com" {
		t.Errorf("Email() = %q", got)
	}
}

func TestUsername(t *testing.T) {
	if got := Username("  AnaLopez "); got != "AnaLopez" {
		t.Errorf("Username() = %q, case must be preserved", got)
	}
}

func TestCSVParam(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"blank", "   ", nil},
		{"single", "flour", []string{"flour"}},
		{"multi with spaces", " flour , apple ,", []string{"flour", "apple"}},
		{"only separators", ",,,", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CSVParam(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("CSVParam(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
