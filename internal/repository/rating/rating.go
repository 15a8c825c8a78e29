package rating

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, rating entities.Rating) (*entities.Rating, error) {
	query := `INSERT INTO ratings (id, listing_id, farmer_id, partner_id, score, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, listing_id, farmer_id, partner_id, score, comment, created_at`

	var ratingModel RatingDB
	err := r.querier.QueryRow(
		ctx,
		query,
		rating.ID,
		rating.ListingID,
		rating.FarmerID,
		rating.PartnerID,
		int16(rating.Score),
		rating.Comment,
		rating.CreatedAt,
	).Scan(
		&ratingModel.ID,
		&ratingModel.ListingID,
		&ratingModel.FarmerID,
		&ratingModel.PartnerID,
		&ratingModel.Score,
		&ratingModel.Comment,
		&ratingModel.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, entities.ErrListingAlreadyRated
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return nil, entities.ErrListingNotFound
		}
		return nil, fmt.Errorf("unexpected rating repository create error: %w", err)
	}

	return ToDomain(&ratingModel), nil
}

func (r *Repository) GetByListing(ctx context.Context, listingID string) (*entities.Rating, error) {
	query := `SELECT id, listing_id, farmer_id, partner_id, score, comment, created_at
		FROM ratings
		WHERE listing_id = $1`

	var ratingModel RatingDB
	err := r.querier.QueryRow(ctx, query, listingID).Scan(
		&ratingModel.ID,
		&ratingModel.ListingID,
		&ratingModel.FarmerID,
		&ratingModel.PartnerID,
		&ratingModel.Score,
		&ratingModel.Comment,
		&ratingModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRatingNotFound
		}
		return nil, fmt.Errorf("unexpected rating repository get error: %w", err)
	}

	return ToDomain(&ratingModel), nil
}

func (r *Repository) IncrementPartnerRating(ctx context.Context, partnerID string, score int, updatedAt time.Time) (*entities.PartnerRating, error) {
	query := `INSERT INTO partner_ratings (partner_id, score_sum, rating_count, updated_at)
		VALUES ($1, $2, 1, $3)
		ON CONFLICT (partner_id) DO UPDATE
		SET score_sum = partner_ratings.score_sum + EXCLUDED.score_sum,
		    rating_count = partner_ratings.rating_count + 1,
		    updated_at = EXCLUDED.updated_at
		RETURNING partner_id, score_sum, rating_count, updated_at`

	var aggregate PartnerRatingDB
	err := r.querier.QueryRow(ctx, query, partnerID, int64(score), updatedAt).
		Scan(&aggregate.PartnerID, &aggregate.ScoreSum, &aggregate.Count, &aggregate.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("unexpected rating repository increment error: %w", err)
	}

	return PartnerToDomain(&aggregate), nil
}

func (r *Repository) GetPartnerRating(ctx context.Context, partnerID string) (*entities.PartnerRating, error) {
	query := `SELECT partner_id, score_sum, rating_count, updated_at
		FROM partner_ratings
		WHERE partner_id = $1`

	var aggregate PartnerRatingDB
	err := r.querier.QueryRow(ctx, query, partnerID).
		Scan(&aggregate.PartnerID, &aggregate.ScoreSum, &aggregate.Count, &aggregate.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrRatingNotFound
		}
		return nil, fmt.Errorf("unexpected rating repository get partner error: %w", err)
	}

	return PartnerToDomain(&aggregate), nil
}
