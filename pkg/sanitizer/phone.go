package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// Guests book in local format (07X...) or international; both normalize to
// E.164. Sri Lanka first since that is where nearly all bookings originate.
var supportedRegions = []string{
	"LK",
	"GB",
}

func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return ""
	}

	for _, region := range supportedRegions {
		parsed, err := phonenumbers.Parse(phone, region)
		if err != nil || !phonenumbers.IsValidNumber(parsed) {
			continue
		}
		return phonenumbers.Format(parsed, phonenumbers.E164)
	}
	return ""
}
