package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"sudagala/pkg/model"
)

func TestDigitsOnly(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"already digits", "94770306326", "94770306326"},
		{"plus prefix", "+94770306326", "94770306326"},
		{"local leading zero", "0770306326", "94770306326"},
		{"spaces and punctuation", "+94 77 030-6326", "94770306326"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DigitsOnly(tt.input); got != tt.want {
				t.Errorf("DigitsOnly(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestBookingMessage(t *testing.T) {
	got := BookingMessage("Misty Treehouse", "2026-03-01", "2026-03-04", 7, model.TierHalfBoard)
	want := `Hi Sudagala, I'm interested in the "Misty Treehouse" for 2026-03-01 to 2026-03-04 for 7 guests (HB tier). Please confirm availability.`
	if got != want {
		t.Errorf("BookingMessage = %q, want %q", got, want)
	}
}

func TestHandoffURL(t *testing.T) {
	message := BookingMessage("Misty Treehouse", "2026-03-01", "2026-03-04", 7, model.TierHalfBoard)
	raw := HandoffURL("94770306326", message)

	if !strings.HasPrefix(raw, "https://wa.me/94770306326?text=") {
		t.Fatalf("unexpected URL prefix: %s", raw)
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("HandoffURL produced an unparseable URL: %v", err)
	}
	if got := parsed.Query().Get("text"); got != message {
		t.Errorf("decoded text = %q, want %q", got, message)
	}
}
