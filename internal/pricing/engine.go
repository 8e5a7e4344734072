// Package pricing implements the booking estimate engine: a pure mapping from
// (stay, date range, guest count, meal tier) to a quoted total. It performs no
// I/O and never fails; incomplete input yields a zero estimate, which the
// booking form treats as "nothing to quote yet" rather than an error.
package pricing

import (
	"math"
	"time"

	"sudagala/pkg/model"
)

// Estimate is the quoted outcome of a pricing run. Total is the authoritative
// charge; PerPersonRate is display data only and must never feed back into
// pricing.
type Estimate struct {
	Total         float64 `json:"total"`
	Nights        int     `json:"nights"`
	PerPersonRate float64 `json:"per_person_rate"`
}

// Nights computes the billable night count for a date range. Same-day and
// inverted ranges clamp to one night instead of erroring; the form lets
// guests pick dates freely and the quote must stay displayable.
func Nights(checkIn, checkOut time.Time) int {
	days := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	return max(1, days)
}

// Estimate prices a stay for the given inputs. Identical inputs always yield
// identical output.
func (t RateTable) Estimate(stay *model.Stay, checkIn, checkOut time.Time, guests int, tier model.Tier) Estimate {
	if checkIn.IsZero() || checkOut.IsZero() || guests <= 0 {
		return Estimate{}
	}

	// Day Outings are single-day experiences: the supplied range is ignored
	// and the tier does not apply.
	if stay.Category == model.CategoryDayOuting {
		base := stay.BasePriceLKR
		if base <= 0 {
			base = t.DayOutingFallbackLKR
		}
		total := base
		if stay.PricingType == model.PricingPerPerson {
			total = base * float64(guests)
		}
		return Estimate{Total: total, Nights: 1, PerPersonRate: base}
	}

	nights := Nights(checkIn, checkOut)
	baseRate := stay.TierRate(tier)

	if stay.PricingType == model.PricingPerPerson {
		rate := baseRate
		if stay.Category == model.CategoryTreehouse {
			switch {
			case guests >= t.TeamThreshold:
				rate = baseRate
			case guests >= t.MidGroupMin:
				rate = t.TreehouseMidGroup.For(tier)
			default:
				rate = baseRate * t.SmallGroupMultiplier
			}
		}
		return Estimate{
			Total:         rate * float64(guests) * float64(nights),
			Nights:        nights,
			PerPersonRate: rate,
		}
	}

	// Fixed pricing: below the team threshold the rate is per stay, not per
	// head. The per-person figure is informational.
	if guests >= t.TeamThreshold {
		rate := t.teamRates(stay.Category).For(tier)
		return Estimate{
			Total:         rate * float64(guests) * float64(nights),
			Nights:        nights,
			PerPersonRate: rate,
		}
	}

	return Estimate{
		Total:         baseRate * float64(nights),
		Nights:        nights,
		PerPersonRate: baseRate / float64(guests),
	}
}
