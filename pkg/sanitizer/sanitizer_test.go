package sanitizer

import (
	"reflect"
	"testing"
)

func TestTrimAndNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "Nimal Perera", "Nimal Perera"},
		{"surrounding whitespace", "  Nimal Perera  ", "Nimal Perera"},
		{"internal runs collapse", "Nimal   \t Perera", "Nimal Perera"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrimAndNormalize(tt.input); got != tt.want {
				t.Errorf("TrimAndNormalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"local sri lankan mobile", "0770306326", "+94770306326"},
		{"international format", "+94 77 030 6326", "+94770306326"},
		{"garbage", "not-a-phone", ""},
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

func TestNormalizeSlug(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"title case with spaces", "Misty Cave Room", "misty-cave-room"},
		{"already a slug", "treehouse-deluxe", "treehouse-deluxe"},
		{"punctuation collapses", "Day  Outing -- Falls!", "day-outing-falls"},
		{"leading and trailing junk", "--cabana--", "cabana"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeSlug(tt.input); got != tt.want {
				t.Errorf("NormalizeSlug(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeFeatures(t *testing.T) {
	got := NormalizeFeatures([]string{" Rain shower ", "Rain shower", "", "Private deck"})
	want := []string{"Rain shower", "Private deck"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeFeatures = %v, want %v", got, want)
	}
}
