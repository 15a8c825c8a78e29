package listing

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
)

const paymentRefIndex = "listings_award_payment_ref_idx"

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, listingEntity entities.Listing) (*entities.Listing, error) {
	listingModel := FromDomain(&listingEntity)
	query := `INSERT INTO listings (id, owner_id, item_name, quantity, base_price, bidding_start, bidding_end,
			images, status, version, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ` + listingColumns

	var created ListingDB
	err := r.querier.QueryRow(
		ctx,
		query,
		listingModel.ID,
		listingModel.OwnerID,
		listingModel.ItemName,
		listingModel.Quantity,
		listingModel.BasePrice,
		listingModel.BiddingStart,
		listingModel.BiddingEnd,
		listingModel.Images,
		listingModel.Status,
		listingModel.Version,
		listingModel.CreatedAt,
		listingModel.UpdatedAt,
	).Scan(created.scanTargets()...)
	if err != nil {
		return nil, fmt.Errorf("unexpected listing repository create error: %w", err)
	}

	return ToDomain(&created)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Listing, error) {
	query := `SELECT ` + listingColumns + `
		FROM listings
		WHERE id = $1`

	var listingModel ListingDB
	err := r.querier.QueryRow(ctx, query, id).Scan(listingModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrListingNotFound
		}
		return nil, fmt.Errorf("unexpected listing repository getbyid error: %w", err)
	}

	return ToDomain(&listingModel)
}

// Update применяет изменения только при совпадении версии и увеличивает её.
func (r *Repository) Update(ctx context.Context, listingModify entities.ListingModify) (*entities.Listing, error) {
	builder := qb.
		Update("listings").
		Set("version", sq.Expr("version + 1")).
		Set("updated_at", listingModify.UpdatedAt)

	// опционные поля
	if listingModify.Status != nil {
		builder = builder.Set("status", listingModify.Status.String())
	}
	if listingModify.BiddingEnd != nil {
		builder = builder.Set("bidding_end", *listingModify.BiddingEnd)
	}
	if award := listingModify.Award; award != nil {
		builder = builder.
			Set("award_kind", award.Kind.String()).
			Set("award_bid_id", award.BidID).
			Set("award_buyer_id", award.BuyerID).
			Set("award_amount", sq.Expr("?::numeric", award.Amount.String())).
			Set("award_payment_ref", award.PaymentRef).
			Set("awarded_at", award.AwardedAt)
	}

	builder = builder.
		Where(sq.Eq{"id": listingModify.ID, "version": listingModify.ExpectedVersion}).
		Suffix("RETURNING " + listingColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected listing repository update error: %w", err)
	}

	var listingModel ListingDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(listingModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.missingOrStale(ctx, listingModify.ID)
		}
		if repository.IsPgConstraintViolation(err, repository.PgErrUniqueViolation, paymentRefIndex) {
			return nil, entities.ErrPaymentAlreadyUsed
		}
		return nil, fmt.Errorf("unexpected listing repository update error: %w", err)
	}

	return ToDomain(&listingModel)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	result, err := r.querier.Exec(ctx, `DELETE FROM listings WHERE id = $1`, id)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return entities.ErrListingReferenced
		}
		return fmt.Errorf("unexpected listing repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return entities.ErrListingNotFound
	}
	return nil
}

func (r *Repository) HasReferences(ctx context.Context, id string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM bids WHERE listing_id = $1)
		OR EXISTS (SELECT 1 FROM delivery_offers WHERE listing_id = $1)
		OR EXISTS (SELECT 1 FROM ratings WHERE listing_id = $1)`

	var referenced bool
	err := r.querier.QueryRow(ctx, query, id).Scan(&referenced)
	if err != nil {
		return false, fmt.Errorf("unexpected listing repository references error: %w", err)
	}
	return referenced, nil
}

func (r *Repository) CountExpiredOpen(ctx context.Context, now time.Time) (int64, error) {
	query := `SELECT COUNT(*)
		FROM listings
		WHERE status = 'open'
		  AND award_kind IS NULL
		  AND bidding_end IS NOT NULL
		  AND bidding_end < $1`

	var count int64
	err := r.querier.QueryRow(ctx, query, now).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected listing repository count expired error: %w", err)
	}
	return count, nil
}

// missingOrStale различает отсутствие листинга и устаревшую версию.
func (r *Repository) missingOrStale(ctx context.Context, id string) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM listings WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected listing repository update error: %w", err)
	}
	if !exists {
		return entities.ErrListingNotFound
	}
	return entities.ErrVersionConflict
}
