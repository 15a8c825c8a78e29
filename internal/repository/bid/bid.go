package bid

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create пишет ставку только если листинг к моменту bid.CreatedAt принимает ставки.
// Условие проверяется в том же запросе, что и вставка.
func (r *Repository) Create(ctx context.Context, bid entities.Bid) (*entities.Bid, error) {
	query := `INSERT INTO bids (id, listing_id, buyer_id, amount, created_at)
		SELECT $1, l.id, $3, $4::numeric, $5
		FROM listings l
		WHERE l.id = $2
		  AND l.status = 'open'
		  AND l.award_kind IS NULL
		  AND (l.bidding_end IS NULL OR l.bidding_end >= $5)
		FOR SHARE
		RETURNING ` + bidColumns

	var bidModel BidDB
	err := r.querier.QueryRow(ctx, query, bid.ID, bid.ListingID, bid.BuyerID, bid.Amount.String(), bid.CreatedAt).
		Scan(&bidModel.ID, &bidModel.ListingID, &bidModel.BuyerID, &bidModel.Amount, &bidModel.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.rejectReason(ctx, bid.ListingID)
		}
		return nil, fmt.Errorf("unexpected bid repository create error: %w", err)
	}

	return ToDomain(&bidModel)
}

// rejectReason различает отсутствующий листинг и листинг, не прошедший условие вставки.
func (r *Repository) rejectReason(ctx context.Context, listingID string) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM listings WHERE id = $1)`, listingID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected bid repository exists error: %w", err)
	}
	if !exists {
		return entities.ErrListingNotFound
	}
	return entities.ErrListingClosedForBids
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Bid, error) {
	query := `SELECT ` + bidColumns + ` FROM bids WHERE id = $1`

	var bidModel BidDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(&bidModel.ID, &bidModel.ListingID, &bidModel.BuyerID, &bidModel.Amount, &bidModel.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrBidNotFound
		}
		return nil, fmt.Errorf("unexpected bid repository getbyid error: %w", err)
	}

	return ToDomain(&bidModel)
}

// ListByListing отдаёт ставки по убыванию суммы, при равенстве по времени.
func (r *Repository) ListByListing(ctx context.Context, listingID string) ([]entities.Bid, error) {
	query := `SELECT ` + bidColumns + `
		FROM bids
		WHERE listing_id = $1
		ORDER BY amount DESC, created_at, id`

	rows, err := r.querier.Query(ctx, query, listingID)
	if err != nil {
		return nil, fmt.Errorf("unexpected bid repository list error: %w", err)
	}
	defer rows.Close()

	bidModels := make([]BidDB, 0, 8)
	for rows.Next() {
		var bidModel BidDB
		err := rows.Scan(&bidModel.ID, &bidModel.ListingID, &bidModel.BuyerID, &bidModel.Amount, &bidModel.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("unexpected bid repository list error: %w", err)
		}
		bidModels = append(bidModels, bidModel)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected bid repository list error: %w", err)
	}

	return ToDomainList(bidModels)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM bids WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("unexpected bid repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entities.ErrBidNotFound
	}
	return nil
}

func (r *Repository) DeleteOthers(ctx context.Context, listingID, keepBidID string) (int64, error) {
	result, err := r.querier.Exec(ctx, `DELETE FROM bids WHERE listing_id = $1 AND id <> $2`, listingID, keepBidID)
	if err != nil {
		return 0, fmt.Errorf("unexpected bid repository delete others error: %w", err)
	}
	return result.RowsAffected(), nil
}

func (r *Repository) DeleteByListing(ctx context.Context, listingID string) (int64, error) {
	result, err := r.querier.Exec(ctx, `DELETE FROM bids WHERE listing_id = $1`, listingID)
	if err != nil {
		return 0, fmt.Errorf("unexpected bid repository delete by listing error: %w", err)
	}
	return result.RowsAffected(), nil
}
