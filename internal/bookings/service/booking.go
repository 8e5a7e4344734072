// Package service coordinates booking submission: one draft in, one priced
// and persisted booking out, plus the WhatsApp handoff the guest completes
// the conversation on.
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	bookingerrors "sudagala/internal/bookings/errors"
	"sudagala/internal/bookings/repository"
	"sudagala/internal/bookings/validator"
	"sudagala/internal/pricing"
	"sudagala/pkg/config"
	apperrors "sudagala/pkg/errors"
	"sudagala/pkg/kafka"
	"sudagala/pkg/model"
	"sudagala/pkg/sanitizer"
	"sudagala/pkg/whatsapp"
)

// SubmissionState tracks where a submission attempt is in its lifecycle.
// There is no automatic retry: a Failed submission stays Failed and the
// guest resubmits, producing a fresh attempt with a fresh reference.
type SubmissionState string

const (
	StateIdle       SubmissionState = "idle"
	StateSubmitting SubmissionState = "submitting"
	StateSuccess    SubmissionState = "success"
	StateFailed     SubmissionState = "failed"
)

const EventTypeBookingCreated = "bookings.created"

// SubmissionResult is what a successful Submit hands back to the form: the
// persisted booking, the frozen quote, and the prefilled WhatsApp link.
type SubmissionResult struct {
	State       SubmissionState  `json:"state"`
	Booking     *model.Booking   `json:"booking"`
	Estimate    pricing.Estimate `json:"estimate"`
	WhatsAppURL string           `json:"whatsapp_url"`
}

// EstimateRequest prices a prospective stay without persisting anything.
type EstimateRequest struct {
	StaySlug string     `json:"stay_slug"`
	CheckIn  string     `json:"check_in"`
	CheckOut string     `json:"check_out"`
	Guests   int        `json:"guests"`
	Tier     model.Tier `json:"tier"`
}

// BookingCreatedEvent is the payload published after a booking is persisted.
type BookingCreatedEvent struct {
	Reference  string     `json:"reference"`
	BookingID  string     `json:"booking_id"`
	StaySlug   string     `json:"stay_slug"`
	CheckIn    string     `json:"check_in"`
	CheckOut   string     `json:"check_out"`
	Guests     int        `json:"guests"`
	Tier       model.Tier `json:"tier"`
	TotalPrice float64    `json:"total_price"`
}

// EventPublisher is the slice of the Kafka producer the coordinator uses.
// A nil publisher disables events entirely.
type EventPublisher interface {
	Publish(ctx context.Context, msg kafka.Message) error
}

type BookingService interface {
	Submit(ctx context.Context, staySlug string, draft *model.BookingDraft) (*SubmissionResult, error)
	Quote(ctx context.Context, req *EstimateRequest) (pricing.Estimate, error)
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error)
	UpdateStatus(ctx context.Context, id string, update *model.BookingStatusUpdate) error
	Delete(ctx context.Context, id string) error
}

type bookingService struct {
	repo      repository.BookingRepository
	stays     repository.StayReader
	validator *validator.BookingValidator
	rates     pricing.RateTable
	publisher EventPublisher
	cfg       *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	stays repository.StayReader,
	validator *validator.BookingValidator,
	rates pricing.RateTable,
	publisher EventPublisher,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:      repo,
		stays:     stays,
		validator: validator,
		rates:     rates,
		publisher: publisher,
		cfg:       cfg,
	}
}

// Submit runs the full intake pipeline: validate, sanitize, resolve the stay,
// price, persist, then hand off. The quoted total is computed exactly once
// and frozen on the booking; nothing downstream reprices it. On a persistence
// failure nothing is kept and the error surfaces verbatim to the caller.
func (s *bookingService) Submit(ctx context.Context, staySlug string, draft *model.BookingDraft) (*SubmissionResult, error) {
	state := StateSubmitting

	if err := s.validator.Validate(draft); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return nil, apperrors.Validation("Booking validation failed", map[string]any{
				"fields": validationErrs,
			})
		}
		return nil, apperrors.Internal("Failed to validate booking", err)
	}

	s.sanitizeDraft(draft)

	staySlug = sanitizer.NormalizeSlug(staySlug)
	stay, err := s.stays.FindActiveBySlug(ctx, staySlug)
	if err != nil {
		if errors.Is(err, bookingerrors.ErrStayNotFound) {
			return nil, apperrors.NotFound("Stay")
		}
		return nil, apperrors.Internal("Failed to resolve stay", err)
	}

	// Dates are guaranteed parseable past validation.
	checkIn, _ := draft.CheckInDate()
	checkOut, _ := draft.CheckOutDate()
	estimate := s.rates.Estimate(stay, checkIn, checkOut, draft.Guests, draft.Tier)

	booking := &model.Booking{
		Reference:       uuid.NewString(),
		CustomerName:    draft.CustomerName,
		Phone:           draft.Phone,
		CheckIn:         draft.CheckIn,
		CheckOut:        draft.CheckOut,
		Guests:          draft.Guests,
		Tier:            draft.Tier,
		TotalPrice:      estimate.Total,
		AccommodationID: stay.ID,
		Status:          model.BookingPending,
	}

	if err := s.repo.Create(ctx, booking); err != nil {
		if errors.Is(err, bookingerrors.ErrStayNotFound) {
			// The stay was deactivated mid-submission.
			return nil, apperrors.NotFound("Stay")
		}
		state = StateFailed
		s.cfg.Log.Error("Failed to persist booking",
			"reference", booking.Reference,
			"stay", staySlug,
			"state", state,
			"error", err,
		)
		return nil, apperrors.Internal("Failed to save booking", err)
	}

	s.publishCreated(booking, staySlug)

	message := whatsapp.BookingMessage(stay.Title, booking.CheckIn, booking.CheckOut, booking.Guests, booking.Tier)
	handoffURL := whatsapp.HandoffURL(s.cfg.WhatsAppBusinessNumber, message)

	state = StateSuccess
	s.cfg.Log.Info("Booking submitted",
		"reference", booking.Reference,
		"booking_id", booking.ID,
		"stay", staySlug,
		"total", booking.TotalPrice,
		"state", state,
	)

	return &SubmissionResult{
		State:       state,
		Booking:     booking,
		Estimate:    estimate,
		WhatsAppURL: handoffURL,
	}, nil
}

// Quote prices a prospective stay. Incomplete input is not an error: the
// engine returns a zero estimate, which the form renders as no quote yet.
func (s *bookingService) Quote(ctx context.Context, req *EstimateRequest) (pricing.Estimate, error) {
	slug := sanitizer.NormalizeSlug(req.StaySlug)
	stay, err := s.stays.FindActiveBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, bookingerrors.ErrStayNotFound) {
			return pricing.Estimate{}, apperrors.NotFound("Stay")
		}
		return pricing.Estimate{}, apperrors.Internal("Failed to resolve stay", err)
	}

	checkIn, _ := time.Parse(model.DateLayout, req.CheckIn)
	checkOut, _ := time.Parse(model.DateLayout, req.CheckOut)
	return s.rates.Estimate(stay, checkIn, checkOut, req.Guests, req.Tier), nil
}

func (s *bookingService) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	booking, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingerrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingerrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve booking", err)
	}

	return booking, nil
}

func (s *bookingService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, int64, error) {
	var count int64
	var bookings []*model.Booking
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count bookings", "error", errCount)
			errCount = apperrors.Internal("Failed to count bookings", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		bookings, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list bookings", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve bookings", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return bookings, count, nil
}

func (s *bookingService) UpdateStatus(ctx context.Context, id string, update *model.BookingStatusUpdate) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	if err := s.validator.ValidateStatusUpdate(update); err != nil {
		return apperrors.Validation("Invalid status update", map[string]any{"error": err.Error()})
	}

	if err := s.repo.UpdateStatus(ctx, id, update.Status); err != nil {
		if errors.Is(err, bookingerrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingerrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid booking ID format")
		}
		s.cfg.Log.Error("Failed to update booking status", "id", id, "error", err)
		return apperrors.Internal("Failed to update booking status", err)
	}

	s.cfg.Log.Info("Booking status updated", "id", id, "status", update.Status)
	return nil
}

func (s *bookingService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Booking ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, bookingerrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Booking", id)
		}
		if errors.Is(err, bookingerrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid booking ID format")
		}
		return apperrors.Internal("Failed to delete booking", err)
	}

	s.cfg.Log.Info("Booking deleted", "id", id)
	return nil
}

func (s *bookingService) sanitizeDraft(draft *model.BookingDraft) {
	draft.CustomerName = sanitizer.NormalizeName(draft.CustomerName)
	if normalized := sanitizer.NormalizePhone(draft.Phone); normalized != "" {
		draft.Phone = normalized
	}
}

// publishCreated emits the bookings.created event. Delivery is best effort:
// the booking is already persisted, so a broker outage logs a warning and
// the submission still succeeds.
func (s *bookingService) publishCreated(booking *model.Booking, staySlug string) {
	if s.publisher == nil {
		return
	}

	event := BookingCreatedEvent{
		Reference:  booking.Reference,
		BookingID:  booking.ID,
		StaySlug:   staySlug,
		CheckIn:    booking.CheckIn,
		CheckOut:   booking.CheckOut,
		Guests:     booking.Guests,
		Tier:       booking.Tier,
		TotalPrice: booking.TotalPrice,
	}

	msg, err := kafka.NewEvent(EventTypeBookingCreated, booking.Reference, event)
	if err != nil {
		s.cfg.Log.Warn("Failed to build booking event", "reference", booking.Reference, "error", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.publisher.Publish(ctx, msg); err != nil {
		s.cfg.Log.Warn("Failed to publish booking event", "reference", booking.Reference, "error", err)
	}
}
