package validator

import (
	"errors"
	"testing"

	"sudagala/pkg/logger"
	"sudagala/pkg/model"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Config{
		Level:   "info",
		Format:  logger.JSON,
		Service: "test",
	})
}

func validStay() *model.Stay {
	return &model.Stay{
		Title:        "Misty Cabana",
		Slug:         "misty-cabana",
		Category:     model.CategoryCabana,
		BasePriceLKR: 12000,
		PriceFB:      15000,
		PricingType:  model.PricingFixed,
		MinGuests:    1,
		MaxGuests:    4,
		IsActive:     true,
	}
}

func TestValidate(t *testing.T) {
	v := NewStayValidator(testLogger())

	tests := []struct {
		name      string
		mutate    func(*model.Stay)
		wantError bool
	}{
		{"valid stay", func(s *model.Stay) {}, false},
		{"valid cave room", func(s *model.Stay) {
			s.Category = model.CategoryCaveRoom
			s.Slug = "cave-room"
		}, false},
		{"unknown category", func(s *model.Stay) { s.Category = "Igloo" }, true},
		{"unknown pricing type", func(s *model.Stay) { s.PricingType = "hourly" }, true},
		{"max guests below min", func(s *model.Stay) { s.MinGuests = 6; s.MaxGuests = 2 }, true},
		{"bad slug", func(s *model.Stay) { s.Slug = "Misty Cabana!" }, true},
		{"missing title", func(s *model.Stay) { s.Title = "" }, true},
		{"no usable rate", func(s *model.Stay) { s.BasePriceLKR = 0; s.PriceFB = 0 }, true},
		{"day outing with base price only", func(s *model.Stay) {
			s.Category = model.CategoryDayOuting
			s.Slug = "falls-day-outing"
			s.PriceFB = 0
			s.BasePriceLKR = 3000
		}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stay := validStay()
			tt.mutate(stay)
			err := v.Validate(stay)
			if (err != nil) != tt.wantError {
				t.Errorf("Validate() error = %v, wantError %v", err, tt.wantError)
			}
		})
	}
}

func TestValidateUpdate_GuestBoundsCrossCheck(t *testing.T) {
	v := NewStayValidator(testLogger())

	minG := 6
	maxG := 2
	err := v.ValidateUpdate(&model.StayUpdate{MinGuests: &minG, MaxGuests: &maxG})
	if err == nil {
		t.Fatal("expected error for max_guests < min_guests")
	}

	var verrs ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if verrs[0].Field != "MaxGuests" {
		t.Errorf("field = %s, want MaxGuests", verrs[0].Field)
	}
}
