// Package whatsapp builds the pre-filled chat handoff a guest is sent to
// after a booking request is accepted. The resort confirms every booking in
// a WhatsApp conversation; the deep link opens that conversation with the
// booking details already typed.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"sudagala/pkg/model"
)

// messageTemplate is the agreed opener the resort's staff key their manual
// triage on. Do not reword it without coordinating with the front desk.
const messageTemplate = `Hi Sudagala, I'm interested in the "%s" for %s to %s for %d guests (%s tier). Please confirm availability.`

// DigitsOnly converts a phone number into the digits-only form wa.me links
// require: punctuation stripped, a leading local zero replaced with the
// Sri Lanka country code.
func DigitsOnly(number string) string {
	cleaned := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)

	if strings.HasPrefix(cleaned, "0") {
		return "94" + cleaned[1:]
	}
	return cleaned
}

// BookingMessage renders the handoff message for a booking request.
func BookingMessage(stayTitle, checkIn, checkOut string, guests int, tier model.Tier) string {
	return fmt.Sprintf(messageTemplate, stayTitle, checkIn, checkOut, guests, tier)
}

// HandoffURL builds the wa.me deep link that opens a chat with the business
// number and the message pre-filled. Spaces are escaped as %20, not +;
// WhatsApp renders a literal plus sign otherwise.
func HandoffURL(businessNumber, message string) string {
	encoded := strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	return fmt.Sprintf("https://wa.me/%s?text=%s", DigitsOnly(businessNumber), encoded)
}
