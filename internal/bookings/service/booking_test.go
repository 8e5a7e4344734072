package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	bookingerrors "sudagala/internal/bookings/errors"
	"sudagala/internal/bookings/validator"
	"sudagala/internal/pricing"
	"sudagala/pkg/config"
	apperrors "sudagala/pkg/errors"
	"sudagala/pkg/kafka"
	"sudagala/pkg/logger"
	"sudagala/pkg/model"
)

type mockBookingRepo struct {
	createFn       func(ctx context.Context, booking *model.Booking) error
	findByIDFn     func(ctx context.Context, id string) (*model.Booking, error)
	findAllFn      func(ctx context.Context, limit int, offset int64) ([]*model.Booking, error)
	updateStatusFn func(ctx context.Context, id string, status model.BookingStatus) error
	deleteFn       func(ctx context.Context, id string) error
	countFn        func(ctx context.Context) (int64, error)
	created        []*model.Booking
}

func (m *mockBookingRepo) Create(ctx context.Context, booking *model.Booking) error {
	if m.createFn != nil {
		if err := m.createFn(ctx, booking); err != nil {
			return err
		}
	}
	booking.ID = "68b0f10a2f8fb814c8f3a1d2"
	m.created = append(m.created, booking)
	return nil
}

func (m *mockBookingRepo) FindByID(ctx context.Context, id string) (*model.Booking, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(ctx, id)
	}
	return nil, bookingerrors.ErrNotFound
}

func (m *mockBookingRepo) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Booking, error) {
	if m.findAllFn != nil {
		return m.findAllFn(ctx, limit, offset)
	}
	return nil, nil
}

func (m *mockBookingRepo) UpdateStatus(ctx context.Context, id string, status model.BookingStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, status)
	}
	return nil
}

func (m *mockBookingRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func (m *mockBookingRepo) Count(ctx context.Context) (int64, error) {
	if m.countFn != nil {
		return m.countFn(ctx)
	}
	return int64(len(m.created)), nil
}

type mockStayReader struct {
	stays map[string]*model.Stay
}

func (m *mockStayReader) FindActiveBySlug(ctx context.Context, slug string) (*model.Stay, error) {
	if stay, ok := m.stays[slug]; ok {
		return stay, nil
	}
	return nil, bookingerrors.ErrStayNotFound
}

type mockPublisher struct {
	published []kafka.Message
	err       error
}

func (m *mockPublisher) Publish(ctx context.Context, msg kafka.Message) error {
	if m.err != nil {
		return m.err
	}
	m.published = append(m.published, msg)
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		WhatsAppBusinessNumber: "94770306326",
		Log:                    logger.New(logger.Config{Level: "error", Format: "text", Output: io.Discard}),
	}
}

func treehouseStay() *model.Stay {
	return &model.Stay{
		ID:           "68b0f10a2f8fb814c8f3a0c1",
		Title:        "The Treehouse",
		Slug:         "the-treehouse",
		Category:     model.CategoryTreehouse,
		PricingType:  model.PricingPerPerson,
		BasePriceLKR: 6500,
		PriceFB:      6500,
		PriceHB:      5800,
		PriceBB:      5300,
		MinGuests:    2,
		MaxGuests:    12,
		IsActive:     true,
	}
}

func newTestService(repo *mockBookingRepo, stays *mockStayReader, pub EventPublisher) BookingService {
	cfg := testConfig()
	v := validator.NewBookingValidator(cfg.Log)
	return NewBookingService(repo, stays, v, pricing.DefaultRateTable(), pub, cfg)
}

func draft() *model.BookingDraft {
	return &model.BookingDraft{
		CustomerName: "Nimal Perera",
		Phone:        "0770123456",
		CheckIn:      "2026-09-12",
		CheckOut:     "2026-09-14",
		Guests:       7,
		Tier:         model.TierHalfBoard,
	}
}

func TestSubmit_Success(t *testing.T) {
	repo := &mockBookingRepo{}
	stays := &mockStayReader{stays: map[string]*model.Stay{"the-treehouse": treehouseStay()}}
	pub := &mockPublisher{}
	svc := newTestService(repo, stays, pub)

	result, err := svc.Submit(context.Background(), "the-treehouse", draft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.State != StateSuccess {
		t.Errorf("state = %q, want %q", result.State, StateSuccess)
	}
	if result.Booking.Status != model.BookingPending {
		t.Errorf("status = %q, want pending", result.Booking.Status)
	}
	if result.Booking.Reference == "" {
		t.Error("expected a submission reference")
	}

	// 7 guests in a Treehouse at HB: 4700 per person per night, 2 nights.
	wantTotal := 4700.0 * 7 * 2
	if result.Estimate.Total != wantTotal {
		t.Errorf("total = %v, want %v", result.Estimate.Total, wantTotal)
	}
	if result.Booking.TotalPrice != result.Estimate.Total {
		t.Errorf("frozen price %v does not match estimate %v", result.Booking.TotalPrice, result.Estimate.Total)
	}

	if len(repo.created) != 1 {
		t.Fatalf("expected 1 persisted booking, got %d", len(repo.created))
	}
	if repo.created[0].AccommodationID != "68b0f10a2f8fb814c8f3a0c1" {
		t.Errorf("accommodation id = %q", repo.created[0].AccommodationID)
	}
}

func TestSubmit_WhatsAppHandoff(t *testing.T) {
	repo := &mockBookingRepo{}
	stays := &mockStayReader{stays: map[string]*model.Stay{"the-treehouse": treehouseStay()}}
	svc := newTestService(repo, stays, nil)

	result, err := svc.Submit(context.Background(), "the-treehouse", draft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(result.WhatsAppURL, "https://wa.me/94770306326?text=") {
		t.Errorf("whatsapp url = %q", result.WhatsAppURL)
	}
	for _, want := range []string{"The%20Treehouse", "2026-09-12", "2026-09-14", "HB"} {
		if !strings.Contains(result.WhatsAppURL, want) {
			t.Errorf("whatsapp url missing %q: %s", want, result.WhatsAppURL)
		}
	}
}

func TestSubmit_NormalizesPhone(t *testing.T) {
	repo := &mockBookingRepo{}
	stays := &mockStayReader{stays: map[string]*model.Stay{"the-treehouse": treehouseStay()}}
	svc := newTestService(repo, stays, nil)

	result, err := svc.Submit(context.Background(), "the-treehouse", draft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Booking.Phone != "+94770123456" {
		t.Errorf("phone = %q, want +94770123456", result.Booking.Phone)
	}
}

func TestSubmit_ValidationFailureReportsAllFields(t *testing.T) {
	repo := &mockBookingRepo{}
	stays := &mockStayReader{stays: map[string]*model.Stay{"the-treehouse": treehouseStay()}}
	svc := newTestService(repo, stays, nil)

	d := draft()
	d.CustomerName = "A"
	d.Phone = "123"

	_, err := svc.Submit(context.Background(), "the-treehouse", d)
	if err == nil {
		t.Fatal("expected validation error")
	}

	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeValidation {
		t.Fatalf("expected validation AppError, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Error("invalid draft must not be persisted")
	}
}

func TestSubmit_UnknownStay(t *testing.T) {
	repo := &mockBookingRepo{}
	stays := &mockStayReader{stays: map[string]*model.Stay{}}
	svc := newTestService(repo, stays, nil)

	_, err := svc.Submit(context.Background(), "the-volcano", draft())
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeNotFound {
		t.Fatalf("expected not-found AppError, got %v", err)
	}
	if len(repo.created) != 0 {
		t.Error("unknown stay must not produce a booking")
	}
}

func TestSubmit_PersistenceFailureLeavesNoPartialState(t *testing.T) {
	dbErr := errors.New("connection reset by peer")
	repo := &mockBookingRepo{
		createFn: func(ctx context.Context, booking *model.Booking) error {
			return dbErr
		},
	}
	stays := &mockStayReader{stays: map[string]*model.Stay{"the-treehouse": treehouseStay()}}
	pub := &mockPublisher{}
	svc := newTestService(repo, stays, pub)

	result, err := svc.Submit(context.Background(), "the-treehouse", draft())
	if err == nil {
		t.Fatal("expected persistence error")
	}
	if result != nil {
		t.Error("failed submission must not return a result")
	}
	if !errors.Is(err, dbErr) {
		t.Errorf("persistence error must surface: got %v", err)
	}
	if len(pub.published) != 0 {
		t.Error("failed submission must not publish an event")
	}
}

func TestSubmit_PublishFailureDoesNotFailSubmission(t *testing.T) {
	repo := &mockBookingRepo{}
	stays := &mockStayReader{stays: map[string]*model.Stay{"the-treehouse": treehouseStay()}}
	pub := &mockPublisher{err: errors.New("broker unavailable")}
	svc := newTestService(repo, stays, pub)

	result, err := svc.Submit(context.Background(), "the-treehouse", draft())
	if err != nil {
		t.Fatalf("submission must succeed despite publish failure: %v", err)
	}
	if result.State != StateSuccess {
		t.Errorf("state = %q, want %q", result.State, StateSuccess)
	}
}

func TestSubmit_PublishesBookingCreated(t *testing.T) {
	repo := &mockBookingRepo{}
	stays := &mockStayReader{stays: map[string]*model.Stay{"the-treehouse": treehouseStay()}}
	pub := &mockPublisher{}
	svc := newTestService(repo, stays, pub)

	result, err := svc.Submit(context.Background(), "the-treehouse", draft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(pub.published) != 1 {
		t.Fatalf("expected 1 event, got %d", len(pub.published))
	}
	msg := pub.published[0]
	if msg.EventType() != EventTypeBookingCreated {
		t.Errorf("event type = %q, want %q", msg.EventType(), EventTypeBookingCreated)
	}
	if msg.Key != result.Booking.Reference {
		t.Errorf("event key = %q, want reference %q", msg.Key, result.Booking.Reference)
	}
}

func TestSubmit_FreshReferencePerAttempt(t *testing.T) {
	repo := &mockBookingRepo{}
	stays := &mockStayReader{stays: map[string]*model.Stay{"the-treehouse": treehouseStay()}}
	svc := newTestService(repo, stays, nil)

	first, err := svc.Submit(context.Background(), "the-treehouse", draft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := svc.Submit(context.Background(), "the-treehouse", draft())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Booking.Reference == second.Booking.Reference {
		t.Error("each submission attempt must get a fresh reference")
	}
}

func TestQuote_ZeroEstimateForIncompleteInput(t *testing.T) {
	repo := &mockBookingRepo{}
	stays := &mockStayReader{stays: map[string]*model.Stay{"the-treehouse": treehouseStay()}}
	svc := newTestService(repo, stays, nil)

	estimate, err := svc.Quote(context.Background(), &EstimateRequest{
		StaySlug: "the-treehouse",
		Guests:   4,
		Tier:     model.TierFullBoard,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if estimate.Total != 0 || estimate.Nights != 0 {
		t.Errorf("expected zero estimate without dates, got %+v", estimate)
	}
}

func TestUpdateStatus(t *testing.T) {
	var gotStatus model.BookingStatus
	repo := &mockBookingRepo{
		updateStatusFn: func(ctx context.Context, id string, status model.BookingStatus) error {
			gotStatus = status
			return nil
		},
	}
	svc := newTestService(repo, &mockStayReader{}, nil)

	err := svc.UpdateStatus(context.Background(), "68b0f10a2f8fb814c8f3a1d2", &model.BookingStatusUpdate{
		Status: model.BookingConfirmed,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotStatus != model.BookingConfirmed {
		t.Errorf("status = %q, want confirmed", gotStatus)
	}
}

func TestUpdateStatus_RejectsPending(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := newTestService(repo, &mockStayReader{}, nil)

	err := svc.UpdateStatus(context.Background(), "68b0f10a2f8fb814c8f3a1d2", &model.BookingStatusUpdate{
		Status: model.BookingPending,
	})
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeValidation {
		t.Fatalf("expected validation AppError, got %v", err)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo := &mockBookingRepo{}
	svc := newTestService(repo, &mockStayReader{}, nil)

	_, err := svc.GetByID(context.Background(), "68b0f10a2f8fb814c8f3a1d2")
	appErr := apperrors.AsAppError(err)
	if appErr == nil || appErr.Code != apperrors.CodeNotFound {
		t.Fatalf("expected not-found AppError, got %v", err)
	}
}
