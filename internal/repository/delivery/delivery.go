package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"marketplace/internal/entities"
	"marketplace/internal/repository"
)

const acceptedOfferIndex = "delivery_offers_accepted_idx"

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create пишет оффер только если листинг в статусе awarded на момент вставки.
func (r *Repository) Create(ctx context.Context, offer entities.DeliveryOffer) (*entities.DeliveryOffer, error) {
	query := `INSERT INTO delivery_offers (id, listing_id, partner_id, amount, created_at, accepted, checkpoint)
		SELECT $1, l.id, $3, $4::numeric, $5, FALSE, $6
		FROM listings l
		WHERE l.id = $2 AND l.status = 'awarded'
		FOR SHARE
		RETURNING ` + offerColumns

	var offerModel DeliveryOfferDB
	err := r.querier.QueryRow(
		ctx,
		query,
		offer.ID,
		offer.ListingID,
		offer.PartnerID,
		offer.Amount.String(),
		offer.CreatedAt,
		int16(offer.Checkpoint),
	).Scan(offerModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.rejectReason(ctx, offer.ListingID)
		}
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&offerModel)
}

func (r *Repository) rejectReason(ctx context.Context, listingID string) error {
	var exists bool
	err := r.querier.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM listings WHERE id = $1)`, listingID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("unexpected delivery repository exists error: %w", err)
	}
	if !exists {
		return entities.ErrListingNotFound
	}
	return entities.ErrListingNotAwarded
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.DeliveryOffer, error) {
	return r.getOne(ctx, `SELECT `+offerColumns+` FROM delivery_offers WHERE id = $1`, id)
}

func (r *Repository) GetAccepted(ctx context.Context, listingID string) (*entities.DeliveryOffer, error) {
	return r.getOne(ctx, `SELECT `+offerColumns+` FROM delivery_offers WHERE listing_id = $1 AND accepted`, listingID)
}

func (r *Repository) ListByListing(ctx context.Context, listingID string) ([]entities.DeliveryOffer, error) {
	query := `SELECT ` + offerColumns + `
		FROM delivery_offers
		WHERE listing_id = $1
		ORDER BY created_at, id`

	rows, err := r.querier.Query(ctx, query, listingID)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}
	defer rows.Close()

	offerModels := make([]DeliveryOfferDB, 0, 4)
	for rows.Next() {
		var offerModel DeliveryOfferDB
		if err := rows.Scan(offerModel.scanTargets()...); err != nil {
			return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
		}
		offerModels = append(offerModels, offerModel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}

	return ToDomainList(offerModels)
}

// Accept опирается на частичный уникальный индекс: второй принятый оффер листинга
// отклоняется базой даже при гонке транзакций.
func (r *Repository) Accept(ctx context.Context, offerID string, acceptedAt time.Time) (*entities.DeliveryOffer, error) {
	query := `UPDATE delivery_offers
		SET accepted = TRUE, accepted_at = $2, checkpoint = 0
		WHERE id = $1 AND NOT accepted
		RETURNING ` + offerColumns

	var offerModel DeliveryOfferDB
	err := r.querier.QueryRow(ctx, query, offerID, acceptedAt).Scan(offerModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrAcceptedOfferExists
		}
		if repository.IsPgConstraintViolation(err, repository.PgErrUniqueViolation, acceptedOfferIndex) {
			return nil, entities.ErrAcceptedOfferExists
		}
		return nil, fmt.Errorf("unexpected delivery repository accept error: %w", err)
	}

	return ToDomain(&offerModel)
}

// AdvanceCheckpoint сдвигает прогресс только с ожидаемого чекпоинта.
func (r *Repository) AdvanceCheckpoint(ctx context.Context, offerID string, from, to entities.Checkpoint) (*entities.DeliveryOffer, error) {
	query := `UPDATE delivery_offers
		SET checkpoint = $3
		WHERE id = $1 AND accepted AND checkpoint = $2
		RETURNING ` + offerColumns

	var offerModel DeliveryOfferDB
	err := r.querier.QueryRow(ctx, query, offerID, int16(from), int16(to)).Scan(offerModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrVersionConflict
		}
		return nil, fmt.Errorf("unexpected delivery repository advance error: %w", err)
	}

	return ToDomain(&offerModel)
}

func (r *Repository) getOne(ctx context.Context, query string, arg string) (*entities.DeliveryOffer, error) {
	var offerModel DeliveryOfferDB
	err := r.querier.QueryRow(ctx, query, arg).Scan(offerModel.scanTargets()...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, entities.ErrDeliveryOfferNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	return ToDomain(&offerModel)
}
