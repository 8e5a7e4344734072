package model

import "time"

// DateLayout is the calendar-date format used on the booking form wire.
const DateLayout = "2006-01-02"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

// BookingDraft is the customer-entered form payload. It is ephemeral and is
// never persisted; a Booking is only written once the draft passes validation
// and pricing.
type BookingDraft struct {
	CustomerName string `json:"customer_name" validate:"required,min=2,max=100"`
	Phone        string `json:"phone" validate:"required,min=10,max=20"`
	CheckIn      string `json:"check_in" validate:"required"`
	CheckOut     string `json:"check_out" validate:"required"`
	Guests       int    `json:"guests" validate:"required,min=1"`
	Tier         Tier   `json:"tier" validate:"required,oneof=FB HB BB"`
}

func (d *BookingDraft) CheckInDate() (time.Time, error) {
	return time.Parse(DateLayout, d.CheckIn)
}

func (d *BookingDraft) CheckOutDate() (time.Time, error) {
	return time.Parse(DateLayout, d.CheckOut)
}

// Booking is the persisted record. TotalPrice is frozen at submission time
// and never recomputed.
type Booking struct {
	ID              string        `json:"id,omitempty" bson:"_id,omitempty" validate:"omitempty,mongodb"`
	Reference       string        `json:"reference" bson:"reference" validate:"required,uuid4"`
	CustomerName    string        `json:"customer_name" bson:"customer_name" validate:"required,min=2,max=100"`
	Phone           string        `json:"phone" bson:"phone" validate:"required,min=10,max=20"`
	CheckIn         string        `json:"check_in" bson:"check_in" validate:"required"`
	CheckOut        string        `json:"check_out" bson:"check_out" validate:"required"`
	Guests          int           `json:"guests" bson:"guests" validate:"required,min=1"`
	Tier            Tier          `json:"tier" bson:"tier" validate:"required,oneof=FB HB BB"`
	TotalPrice      float64       `json:"total_price" bson:"total_price" validate:"gte=0"`
	AccommodationID string        `json:"accommodation_id" bson:"accommodation_id" validate:"required"`
	Status          BookingStatus `json:"status" bson:"status" validate:"required,oneof=pending confirmed cancelled"`
	CreatedAt       time.Time     `json:"created_at" bson:"created_at" validate:"omitempty"`
}

type BookingStatusUpdate struct {
	Status BookingStatus `json:"status" validate:"required,oneof=confirmed cancelled"`
}
