package service

import (
	"context"
	"errors"
	"sync"

	stayserrors "sudagala/internal/stays/errors"
	"sudagala/internal/stays/repository"
	"sudagala/internal/stays/validator"
	"sudagala/pkg/config"
	apperrors "sudagala/pkg/errors"
	"sudagala/pkg/model"
	"sudagala/pkg/sanitizer"
)

type StayService interface {
	Create(ctx context.Context, stay *model.Stay) error
	GetByID(ctx context.Context, id string) (*model.Stay, error)
	GetBySlug(ctx context.Context, slug string) (*model.Stay, error)
	ListActive(ctx context.Context) ([]*model.Stay, error)
	GetAll(ctx context.Context, limit int, offset int64) ([]*model.Stay, int64, error)
	Update(ctx context.Context, id string, updates *model.StayUpdate) error
	Delete(ctx context.Context, id string) error
}

type stayService struct {
	repo      repository.StayRepository
	validator *validator.StayValidator
	cfg       *config.Config
}

func NewStayService(
	repo repository.StayRepository,
	validator *validator.StayValidator,
	cfg *config.Config,
) StayService {
	return &stayService{
		repo:      repo,
		validator: validator,
		cfg:       cfg,
	}
}

func (s *stayService) Create(ctx context.Context, stay *model.Stay) error {
	s.applyDefaults(stay)
	s.sanitize(stay)
	if err := s.validate(stay); err != nil {
		return err
	}

	if err := s.repo.Create(ctx, stay); err != nil {
		if errors.Is(err, stayserrors.ErrSlugTaken) {
			return apperrors.Conflict("A stay with this slug already exists")
		}
		s.cfg.Log.Error("Failed to create stay", "error", err)
		return apperrors.Internal("Failed to create stay", err)
	}

	s.cfg.Log.Info("Stay created successfully",
		"id", stay.ID,
		"slug", stay.Slug,
		"category", stay.Category,
	)
	return nil
}

func (s *stayService) GetByID(ctx context.Context, id string) (*model.Stay, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Stay ID cannot be empty")
	}

	stay, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, stayserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Stay", id)
		}
		if errors.Is(err, stayserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid stay ID format")
		}
		return nil, apperrors.Internal("Failed to retrieve stay", err)
	}

	return stay, nil
}

func (s *stayService) GetBySlug(ctx context.Context, slug string) (*model.Stay, error) {
	slug = sanitizer.NormalizeSlug(slug)
	if slug == "" {
		return nil, apperrors.InvalidInput("Stay slug cannot be empty")
	}

	stay, err := s.repo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, stayserrors.ErrNotFound) {
			return nil, apperrors.NotFound("Stay")
		}
		return nil, apperrors.Internal("Failed to retrieve stay", err)
	}

	return stay, nil
}

func (s *stayService) ListActive(ctx context.Context) ([]*model.Stay, error) {
	stays, err := s.repo.FindActive(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list active stays", "error", err)
		return nil, apperrors.Internal("Failed to retrieve stays", err)
	}

	return stays, nil
}

func (s *stayService) GetAll(ctx context.Context, limit int, offset int64) ([]*model.Stay, int64, error) {
	var count int64
	var stays []*model.Stay
	var errCount, errFind error
	var wg sync.WaitGroup
	wg.Add(2)

	go func() {
		defer wg.Done()
		count, errCount = s.repo.Count(ctx)
		if errCount != nil {
			s.cfg.Log.Error("Failed to count stays", "error", errCount)
			errCount = apperrors.Internal("Failed to count stays", errCount)
		}
	}()

	go func() {
		defer wg.Done()
		stays, errFind = s.repo.FindAll(ctx, limit, offset)
		if errFind != nil {
			s.cfg.Log.Error("Failed to list stays", "error", errFind)
			errFind = apperrors.Internal("Failed to retrieve stays", errFind)
		}
	}()

	wg.Wait()
	if errCount != nil {
		return nil, 0, errCount
	}
	if errFind != nil {
		return nil, 0, errFind
	}

	return stays, count, nil
}

func (s *stayService) Update(ctx context.Context, id string, updates *model.StayUpdate) error {
	if id == "" {
		return apperrors.InvalidInput("Stay ID cannot be empty")
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, stayserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Stay", id)
		}
		if errors.Is(err, stayserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid stay ID format")
		}
		return apperrors.Internal("Failed to check stay existence", err)
	}

	if err := s.validator.ValidateUpdate(updates); err != nil {
		s.cfg.Log.Warn("Stay update validation failed", "id", id, "error", err)
		return apperrors.Validation("Invalid update input", map[string]any{"error": err.Error()})
	}

	merged := s.mergeStayUpdates(existing, updates)
	s.sanitize(merged)
	if err := s.validate(merged); err != nil {
		return err
	}

	if err := s.repo.Update(ctx, id, merged); err != nil {
		if errors.Is(err, stayserrors.ErrSlugTaken) {
			return apperrors.Conflict("A stay with this slug already exists")
		}
		s.cfg.Log.Error("Failed to update stay", "id", id, "error", err)
		return apperrors.Internal("Failed to update stay", err)
	}

	s.cfg.Log.Info("Stay updated successfully", "id", id)
	return nil
}

func (s *stayService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.InvalidInput("Stay ID cannot be empty")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, stayserrors.ErrNotFound) {
			return apperrors.NotFoundWithID("Stay", id)
		}
		if errors.Is(err, stayserrors.ErrInvalidID) {
			return apperrors.InvalidInput("Invalid stay ID format")
		}
		return apperrors.Internal("Failed to delete stay", err)
	}

	s.cfg.Log.Info("Stay deleted successfully", "id", id)
	return nil
}

// --- Helpers ---

func (s *stayService) sanitize(stay *model.Stay) {
	stay.Title = sanitizer.NormalizeTitle(stay.Title)
	stay.Slug = sanitizer.NormalizeSlug(stay.Slug)
	stay.Description = sanitizer.TrimAndNormalize(stay.Description)
	stay.Tagline = sanitizer.TrimAndNormalize(stay.Tagline)
	stay.Features = sanitizer.NormalizeFeatures(stay.Features)
	if stay.ImageURL != "" {
		stay.ImageURL = sanitizer.NormalizeURL(stay.ImageURL)
	}
}

func (s *stayService) applyDefaults(stay *model.Stay) {
	if stay.Slug == "" {
		stay.Slug = sanitizer.NormalizeSlug(stay.Title)
	}
	if stay.MinGuests <= 0 {
		stay.MinGuests = 1
	}
	if stay.MaxGuests <= 0 {
		stay.MaxGuests = stay.MinGuests
	}
}

func (s *stayService) mergeStayUpdates(existing *model.Stay, updates *model.StayUpdate) *model.Stay {
	merged := *existing

	if updates.Title != nil {
		merged.Title = *updates.Title
	}
	if updates.Slug != nil {
		merged.Slug = *updates.Slug
	}
	if updates.Category != nil {
		merged.Category = *updates.Category
	}
	if updates.Description != nil {
		merged.Description = *updates.Description
	}
	if updates.BasePriceLKR != nil {
		merged.BasePriceLKR = *updates.BasePriceLKR
	}
	if updates.PriceFB != nil {
		merged.PriceFB = *updates.PriceFB
	}
	if updates.PriceHB != nil {
		merged.PriceHB = *updates.PriceHB
	}
	if updates.PriceBB != nil {
		merged.PriceBB = *updates.PriceBB
	}
	if updates.PricingType != nil {
		merged.PricingType = *updates.PricingType
	}
	if updates.MinGuests != nil {
		merged.MinGuests = *updates.MinGuests
	}
	if updates.MaxGuests != nil {
		merged.MaxGuests = *updates.MaxGuests
	}
	if updates.Features != nil {
		merged.Features = *updates.Features
	}
	if updates.ImageURL != nil {
		merged.ImageURL = *updates.ImageURL
	}
	if updates.Tagline != nil {
		merged.Tagline = *updates.Tagline
	}
	if updates.IsActive != nil {
		merged.IsActive = *updates.IsActive
	}

	return &merged
}

func (s *stayService) validate(stay *model.Stay) error {
	if err := s.validator.Validate(stay); err != nil {
		s.cfg.Log.Warn("Stay validation failed", "error", err)
		return apperrors.Validation("Stay validation failed", map[string]any{"error": err.Error()})
	}
	return nil
}
