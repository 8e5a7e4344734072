package pricing

import "sudagala/pkg/model"

// TierRates holds one nightly/per-person rate per meal tier.
type TierRates struct {
	FB float64
	HB float64
	BB float64
}

func (r TierRates) For(tier model.Tier) float64 {
	switch tier {
	case model.TierHalfBoard:
		return r.HB
	case model.TierBedBreakfast:
		return r.BB
	default:
		return r.FB
	}
}

// RateTable is the versioned pricing configuration consumed by the estimate
// engine. The literal numbers are business constants agreed with the resort
// and must not be derived or rounded.
type RateTable struct {
	Version int

	// TeamThreshold is the guest count at or above which team/volume rates
	// apply. MidGroupMin is the lower bound of the Treehouse mid band.
	TeamThreshold int
	MidGroupMin   int

	// Treehouse per-person banding.
	TreehouseMidGroup    TierRates
	SmallGroupMultiplier float64

	// Fixed-price team overrides per category.
	CabanaTeam   TierRates
	CaveRoomTeam TierRates

	// DayOutingFallbackLKR stands in for a Day Outing base price that was
	// never configured on the stay record.
	DayOutingFallbackLKR float64
}

func DefaultRateTable() RateTable {
	return RateTable{
		Version: 1,

		TeamThreshold: 10,
		MidGroupMin:   6,

		TreehouseMidGroup:    TierRates{FB: 5400, HB: 4700, BB: 4200},
		SmallGroupMultiplier: 1.2,

		CabanaTeam:   TierRates{FB: 4900, HB: 4200, BB: 3700},
		CaveRoomTeam: TierRates{FB: 5900, HB: 5200, BB: 4700},

		DayOutingFallbackLKR: 10000,
	}
}

// teamRates returns the fixed-price team override for a category. Categories
// without a published team rate get the zero value, which prices to zero the
// same way the original rate sheet did.
func (t RateTable) teamRates(category model.Category) TierRates {
	switch category {
	case model.CategoryCabana:
		return t.CabanaTeam
	case model.CategoryCaveRoom:
		return t.CaveRoomTeam
	default:
		return TierRates{}
	}
}
