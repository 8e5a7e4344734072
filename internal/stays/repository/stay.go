package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	stayserrors "sudagala/internal/stays/errors"
	"sudagala/pkg/config"
	"sudagala/pkg/model"
)

const (
	CollectionName = "stays"
)

type StayRepository interface {
	Create(ctx context.Context, stay *model.Stay) error
	FindByID(ctx context.Context, id string) (*model.Stay, error)
	FindBySlug(ctx context.Context, slug string) (*model.Stay, error)
	FindActive(ctx context.Context) ([]*model.Stay, error)
	FindAll(ctx context.Context, limit int, offset int64) ([]*model.Stay, error)
	Update(ctx context.Context, id string, stay *model.Stay) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
}

type mongoStayRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoStayRepository(cfg *config.Config) StayRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoStayRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoStayRepository) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			return context.WithTimeout(ctx, remaining)
		}
	}
	return context.WithTimeout(ctx, timeout)
}

func (r *mongoStayRepository) Create(ctx context.Context, stay *model.Stay) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	stay.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	result, err := r.collection.InsertOne(ctx, stay)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return stayserrors.ErrSlugTaken
		}
		return fmt.Errorf("failed to create stay: %w", err)
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		stay.ID = oid.Hex()
	}
	return nil
}

func (r *mongoStayRepository) FindByID(ctx context.Context, id string) (*model.Stay, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", stayserrors.ErrInvalidID, id)
	}

	var stay model.Stay
	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&stay)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, stayserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find stay: %w", err)
	}

	return &stay, nil
}

func (r *mongoStayRepository) FindBySlug(ctx context.Context, slug string) (*model.Stay, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var stay model.Stay
	err := r.collection.FindOne(ctx, bson.M{"slug": slug}).Decode(&stay)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, stayserrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find stay by slug: %w", err)
	}

	return &stay, nil
}

// FindActive returns the public catalog: active stays, oldest first, matching
// the order the marketing site presents them in.
func (r *mongoStayRepository) FindActive(ctx context.Context) ([]*model.Stay, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.collection.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find active stays: %w", err)
	}
	defer cursor.Close(ctx)

	var stays []*model.Stay
	if err = cursor.All(ctx, &stays); err != nil {
		return nil, fmt.Errorf("failed to decode stays: %w", err)
	}

	return stays, nil
}

// FindAll is the admin listing: every stay, newest first.
func (r *mongoStayRepository) FindAll(ctx context.Context, limit int, offset int64) ([]*model.Stay, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	limit = config.NormalizePaginationLimit(limit)
	offset = config.NormalizeOffset(offset)

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(offset)

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find stays: %w", err)
	}
	defer cursor.Close(ctx)

	var stays []*model.Stay
	if err = cursor.All(ctx, &stays); err != nil {
		return nil, fmt.Errorf("failed to decode stays: %w", err)
	}

	return stays, nil
}

func (r *mongoStayRepository) Update(ctx context.Context, id string, stay *model.Stay) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", stayserrors.ErrInvalidID, id)
	}

	update := bson.M{
		"$set": bson.M{
			"title":          stay.Title,
			"slug":           stay.Slug,
			"category":       stay.Category,
			"description":    stay.Description,
			"base_price_lkr": stay.BasePriceLKR,
			"price_fb":       stay.PriceFB,
			"price_hb":       stay.PriceHB,
			"price_bb":       stay.PriceBB,
			"pricing_type":   stay.PricingType,
			"min_guests":     stay.MinGuests,
			"max_guests":     stay.MaxGuests,
			"features":       stay.Features,
			"image_url":      stay.ImageURL,
			"tagline":        stay.Tagline,
			"is_active":      stay.IsActive,
		},
	}

	result, err := r.collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return stayserrors.ErrSlugTaken
		}
		return fmt.Errorf("failed to update stay: %w", err)
	}

	if result.MatchedCount == 0 {
		return stayserrors.ErrNotFound
	}

	return nil
}

func (r *mongoStayRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := r.withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("%w: %s", stayserrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to delete stay: %w", err)
	}

	if result.DeletedCount == 0 {
		return stayserrors.ErrNotFound
	}

	return nil
}

func (r *mongoStayRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := r.withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count stays: %w", err)
	}

	return count, nil
}
