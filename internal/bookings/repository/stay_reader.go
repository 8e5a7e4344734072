package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	bookingerrors "sudagala/internal/bookings/errors"
	"sudagala/pkg/config"
	"sudagala/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoStayReader struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoStayReader(cfg *config.Config) StayReader {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoStayReader{
		cfg:        cfg,
		collection: db.Collection(StaysCollectionName),
	}
}

func (r *mongoStayReader) FindActiveBySlug(ctx context.Context, slug string) (*model.Stay, error) {
	ctx, cancel := context.WithTimeout(ctx, r.readTimeout(ctx))
	defer cancel()

	var stay model.Stay
	err := r.collection.FindOne(ctx, bson.M{"slug": slug, "is_active": true}).Decode(&stay)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, bookingerrors.ErrStayNotFound
		}
		return nil, fmt.Errorf("failed to find stay by slug: %w", err)
	}

	return &stay, nil
}

func (r *mongoStayReader) readTimeout(ctx context.Context) time.Duration {
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < r.cfg.ReadTimeout {
			return remaining
		}
	}
	return r.cfg.ReadTimeout
}
