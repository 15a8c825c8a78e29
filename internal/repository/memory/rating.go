package memory

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type RatingRepository struct {
	store *Store
}

func (r *RatingRepository) Create(ctx context.Context, rating entities.Rating) (*entities.Rating, error) {
	defer r.store.lock(ctx)()

	if _, ok := r.store.state.listings[rating.ListingID]; !ok {
		return nil, entities.ErrListingNotFound
	}
	if _, ok := r.store.state.ratings[rating.ListingID]; ok {
		return nil, entities.ErrListingAlreadyRated
	}
	r.store.state.ratings[rating.ListingID] = rating
	return &rating, nil
}

func (r *RatingRepository) GetByListing(ctx context.Context, listingID string) (*entities.Rating, error) {
	defer r.store.lock(ctx)()

	rating, ok := r.store.state.ratings[listingID]
	if !ok {
		return nil, entities.ErrRatingNotFound
	}
	return &rating, nil
}

func (r *RatingRepository) IncrementPartnerRating(ctx context.Context, partnerID string, score int, updatedAt time.Time) (*entities.PartnerRating, error) {
	defer r.store.lock(ctx)()

	aggregate := r.store.state.partnerRatings[partnerID]
	aggregate.PartnerID = partnerID
	aggregate.ScoreSum += int64(score)
	aggregate.Count++
	aggregate.UpdatedAt = updatedAt
	r.store.state.partnerRatings[partnerID] = aggregate
	return &aggregate, nil
}

func (r *RatingRepository) GetPartnerRating(ctx context.Context, partnerID string) (*entities.PartnerRating, error) {
	defer r.store.lock(ctx)()

	aggregate, ok := r.store.state.partnerRatings[partnerID]
	if !ok {
		return nil, entities.ErrRatingNotFound
	}
	return &aggregate, nil
}
