package pricing

import (
	"testing"
	"time"

	"sudagala/pkg/model"
)

func date(s string) time.Time {
	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func cabana() *model.Stay {
	return &model.Stay{
		Category:     model.CategoryCabana,
		PricingType:  model.PricingFixed,
		BasePriceLKR: 12000,
		PriceFB:      15000,
		PriceHB:      13500,
		PriceBB:      12500,
	}
}

func treehouse() *model.Stay {
	return &model.Stay{
		Category:     model.CategoryTreehouse,
		PricingType:  model.PricingPerPerson,
		BasePriceLKR: 4000,
		PriceFB:      4900,
		PriceHB:      4200,
		PriceBB:      3700,
	}
}

func TestEstimate_ZeroDefaults(t *testing.T) {
	table := DefaultRateTable()
	in := date("2026-03-01")
	out := date("2026-03-04")

	tests := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
		guests   int
	}{
		{"missing check-in", time.Time{}, out, 2},
		{"missing check-out", in, time.Time{}, 2},
		{"zero guests", in, out, 0},
		{"negative guests", in, out, -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Estimate(cabana(), tt.checkIn, tt.checkOut, tt.guests, model.TierFullBoard)
			if got != (Estimate{}) {
				t.Errorf("expected zero estimate, got %+v", got)
			}
		})
	}
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"one night", "2026-03-01", "2026-03-02", 1},
		{"three nights", "2026-03-01", "2026-03-04", 3},
		{"same day clamps to one", "2026-03-01", "2026-03-01", 1},
		{"inverted range clamps to one", "2026-03-04", "2026-03-01", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Nights(date(tt.checkIn), date(tt.checkOut)); got != tt.want {
				t.Errorf("Nights(%s, %s) = %d, want %d", tt.checkIn, tt.checkOut, got, tt.want)
			}
		})
	}
}

func TestEstimate_FixedSmallGroup(t *testing.T) {
	table := DefaultRateTable()
	stay := cabana()
	in := date("2026-03-01")
	out := date("2026-03-04") // 3 nights

	// Below the team threshold the quote is per stay: guest count must not
	// scale the total.
	for _, guests := range []int{1, 2, 5, 9} {
		got := table.Estimate(stay, in, out, guests, model.TierFullBoard)
		if got.Total != 15000*3 {
			t.Errorf("guests=%d: total = %v, want %v", guests, got.Total, 15000*3)
		}
		if got.Nights != 3 {
			t.Errorf("guests=%d: nights = %d, want 3", guests, got.Nights)
		}
		wantPerPerson := 15000.0 / float64(guests)
		if got.PerPersonRate != wantPerPerson {
			t.Errorf("guests=%d: per-person = %v, want %v", guests, got.PerPersonRate, wantPerPerson)
		}
	}
}

func TestEstimate_FixedTeamRates(t *testing.T) {
	table := DefaultRateTable()
	in := date("2026-03-01")
	out := date("2026-03-03") // 2 nights

	tests := []struct {
		name     string
		category model.Category
		tier     model.Tier
		guests   int
		wantRate float64
	}{
		{"cabana FB", model.CategoryCabana, model.TierFullBoard, 12, 4900},
		{"cabana HB", model.CategoryCabana, model.TierHalfBoard, 10, 4200},
		{"cabana BB", model.CategoryCabana, model.TierBedBreakfast, 15, 3700},
		{"cave room FB", model.CategoryCaveRoom, model.TierFullBoard, 10, 5900},
		{"cave room HB", model.CategoryCaveRoom, model.TierHalfBoard, 11, 5200},
		{"cave room BB", model.CategoryCaveRoom, model.TierBedBreakfast, 20, 4700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stay := cabana()
			stay.Category = tt.category
			got := table.Estimate(stay, in, out, tt.guests, tt.tier)

			if got.PerPersonRate != tt.wantRate {
				t.Errorf("per-person = %v, want %v", got.PerPersonRate, tt.wantRate)
			}
			want := tt.wantRate * float64(tt.guests) * 2
			if got.Total != want {
				t.Errorf("total = %v, want %v", got.Total, want)
			}
		})
	}
}

func TestEstimate_TreehouseBands(t *testing.T) {
	table := DefaultRateTable()
	stay := treehouse()
	in := date("2026-03-01")
	out := date("2026-03-02") // 1 night

	tests := []struct {
		name     string
		guests   int
		tier     model.Tier
		wantRate float64
	}{
		{"small group FB surcharge", 2, model.TierFullBoard, 4900 * 1.2},
		{"small group HB surcharge", 5, model.TierHalfBoard, 4200 * 1.2},
		{"mid band FB", 6, model.TierFullBoard, 5400},
		{"mid band HB", 7, model.TierHalfBoard, 4700},
		{"mid band BB", 9, model.TierBedBreakfast, 4200},
		{"team uses stay FB rate", 10, model.TierFullBoard, 4900},
		{"team uses stay HB rate", 14, model.TierHalfBoard, 4200},
		{"team uses stay BB rate", 25, model.TierBedBreakfast, 3700},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := table.Estimate(stay, in, out, tt.guests, tt.tier)

			if got.PerPersonRate != tt.wantRate {
				t.Errorf("per-person = %v, want %v", got.PerPersonRate, tt.wantRate)
			}
			want := tt.wantRate * float64(tt.guests)
			if got.Total != want {
				t.Errorf("total = %v, want %v", got.Total, want)
			}
		})
	}
}

func TestEstimate_DayOuting(t *testing.T) {
	table := DefaultRateTable()
	in := date("2026-03-01")
	out := date("2026-03-08") // long range, must be ignored

	t.Run("per person multiplies by guests", func(t *testing.T) {
		stay := &model.Stay{
			Category:     model.CategoryDayOuting,
			PricingType:  model.PricingPerPerson,
			BasePriceLKR: 3000,
		}
		got := table.Estimate(stay, in, out, 4, model.TierFullBoard)
		if got.Total != 12000 {
			t.Errorf("total = %v, want 12000", got.Total)
		}
		if got.Nights != 1 {
			t.Errorf("nights = %d, want 1", got.Nights)
		}
	})

	t.Run("fixed charges the base once", func(t *testing.T) {
		stay := &model.Stay{
			Category:     model.CategoryDayOuting,
			PricingType:  model.PricingFixed,
			BasePriceLKR: 3000,
		}
		got := table.Estimate(stay, in, out, 4, model.TierHalfBoard)
		if got.Total != 3000 {
			t.Errorf("total = %v, want 3000", got.Total)
		}
		if got.Nights != 1 {
			t.Errorf("nights = %d, want 1", got.Nights)
		}
	})

	t.Run("unset base price falls back", func(t *testing.T) {
		stay := &model.Stay{
			Category:    model.CategoryDayOuting,
			PricingType: model.PricingPerPerson,
		}
		got := table.Estimate(stay, in, out, 2, model.TierFullBoard)
		if got.Total != 20000 {
			t.Errorf("total = %v, want 20000", got.Total)
		}
	})
}

func TestEstimate_TierFallbackToBasePrice(t *testing.T) {
	table := DefaultRateTable()
	stay := cabana()
	stay.PriceHB = 0 // unset tier rate falls back to base_price_lkr

	got := table.Estimate(stay, date("2026-03-01"), date("2026-03-03"), 2, model.TierHalfBoard)
	if got.Total != 12000*2 {
		t.Errorf("total = %v, want %v", got.Total, 12000*2)
	}
}

func TestEstimate_EndToEndScenarios(t *testing.T) {
	table := DefaultRateTable()

	t.Run("cabana couple three nights", func(t *testing.T) {
		got := table.Estimate(cabana(), date("2026-03-01"), date("2026-03-04"), 2, model.TierFullBoard)
		if got.Total != 45000 {
			t.Errorf("total = %v, want 45000", got.Total)
		}
	})

	t.Run("cabana team twelve guests two nights", func(t *testing.T) {
		got := table.Estimate(cabana(), date("2026-03-01"), date("2026-03-03"), 12, model.TierFullBoard)
		if got.Total != 117600 {
			t.Errorf("total = %v, want 117600", got.Total)
		}
	})

	t.Run("treehouse seven guests half board", func(t *testing.T) {
		got := table.Estimate(treehouse(), date("2026-03-01"), date("2026-03-02"), 7, model.TierHalfBoard)
		if got.PerPersonRate != 4700 {
			t.Errorf("per-person = %v, want 4700", got.PerPersonRate)
		}
		if got.Total != 32900 {
			t.Errorf("total = %v, want 32900", got.Total)
		}
	})
}

func TestEstimate_Deterministic(t *testing.T) {
	table := DefaultRateTable()
	stay := treehouse()
	in := date("2026-03-01")
	out := date("2026-03-05")

	first := table.Estimate(stay, in, out, 7, model.TierBedBreakfast)
	for i := 0; i < 100; i++ {
		if got := table.Estimate(stay, in, out, 7, model.TierBedBreakfast); got != first {
			t.Fatalf("iteration %d: estimate %+v differs from first %+v", i, got, first)
		}
	}
}

func TestEstimate_ClampedRangesStillPrice(t *testing.T) {
	table := DefaultRateTable()
	stay := cabana()

	got := table.Estimate(stay, date("2026-03-04"), date("2026-03-01"), 2, model.TierFullBoard)
	if got.Nights != 1 {
		t.Errorf("nights = %d, want 1", got.Nights)
	}
	if got.Total != 15000 {
		t.Errorf("total = %v, want 15000", got.Total)
	}
}
