package model

import "time"

// Category identifies which rate-resolution branch applies to a stay.
type Category string

const (
	CategoryCabana    Category = "Cabana"
	CategoryCaveRoom  Category = "Cave Room"
	CategoryTreehouse Category = "Treehouse"
	CategoryDayOuting Category = "Day Outing"
)

// PricingType determines whether rates scale with guest count.
type PricingType string

const (
	PricingFixed     PricingType = "fixed"
	PricingPerPerson PricingType = "per_person"
)

// Tier is the meal-inclusion level: Full Board, Half Board, Bed & Breakfast.
type Tier string

const (
	TierFullBoard    Tier = "FB"
	TierHalfBoard    Tier = "HB"
	TierBedBreakfast Tier = "BB"
)

type Stay struct {
	ID           string      `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Title        string      `json:"title" bson:"title" validate:"required,min=2,max=100"`
	Slug         string      `json:"slug" bson:"slug" validate:"required,slug_format"`
	Category     Category    `json:"category" bson:"category" validate:"required,oneof=Cabana 'Cave Room' Treehouse 'Day Outing'"`
	Description  string      `json:"description" bson:"description" validate:"omitempty,max=2000"`
	BasePriceLKR float64     `json:"base_price_lkr" bson:"base_price_lkr" validate:"gte=0"`
	PriceFB      float64     `json:"price_fb" bson:"price_fb" validate:"gte=0"`
	PriceHB      float64     `json:"price_hb" bson:"price_hb" validate:"gte=0"`
	PriceBB      float64     `json:"price_bb" bson:"price_bb" validate:"gte=0"`
	PricingType  PricingType `json:"pricing_type" bson:"pricing_type" validate:"required,oneof=fixed per_person"`
	MinGuests    int         `json:"min_guests" bson:"min_guests" validate:"required,min=1"`
	MaxGuests    int         `json:"max_guests" bson:"max_guests" validate:"required,gtefield=MinGuests"`
	Features     []string    `json:"features" bson:"features" validate:"omitempty,max=30,dive,min=1,max=100"`
	ImageURL     string      `json:"image_url" bson:"image_url" validate:"omitempty,url"`
	Tagline      string      `json:"tagline,omitempty" bson:"tagline,omitempty" validate:"omitempty,max=200"`
	IsActive     bool        `json:"is_active" bson:"is_active"`
	CreatedAt    time.Time   `json:"created_at" bson:"created_at" validate:"omitempty"`
}

// TierRate resolves the nightly base rate for a meal tier, falling back to
// BasePriceLKR when the tier-specific rate is unset.
func (s *Stay) TierRate(tier Tier) float64 {
	var rate float64
	switch tier {
	case TierHalfBoard:
		rate = s.PriceHB
	case TierBedBreakfast:
		rate = s.PriceBB
	default:
		rate = s.PriceFB
	}
	if rate <= 0 {
		return s.BasePriceLKR
	}
	return rate
}

type StayUpdate struct {
	Title        *string      `json:"title,omitempty" validate:"omitempty,min=2,max=100"`
	Slug         *string      `json:"slug,omitempty" validate:"omitempty,slug_format"`
	Category     *Category    `json:"category,omitempty" validate:"omitempty,oneof=Cabana 'Cave Room' Treehouse 'Day Outing'"`
	Description  *string      `json:"description,omitempty" validate:"omitempty,max=2000"`
	BasePriceLKR *float64     `json:"base_price_lkr,omitempty" validate:"omitempty,gte=0"`
	PriceFB      *float64     `json:"price_fb,omitempty" validate:"omitempty,gte=0"`
	PriceHB      *float64     `json:"price_hb,omitempty" validate:"omitempty,gte=0"`
	PriceBB      *float64     `json:"price_bb,omitempty" validate:"omitempty,gte=0"`
	PricingType  *PricingType `json:"pricing_type,omitempty" validate:"omitempty,oneof=fixed per_person"`
	MinGuests    *int         `json:"min_guests,omitempty" validate:"omitempty,min=1"`
	MaxGuests    *int         `json:"max_guests,omitempty" validate:"omitempty,min=1"`
	Features     *[]string    `json:"features,omitempty" validate:"omitempty,max=30,dive,min=1,max=100"`
	ImageURL     *string      `json:"image_url,omitempty" validate:"omitempty,url"`
	Tagline      *string      `json:"tagline,omitempty" validate:"omitempty,max=200"`
	IsActive     *bool        `json:"is_active,omitempty"`
}
