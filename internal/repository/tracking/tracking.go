package tracking

import (
	"context"
	"fmt"
	"time"

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

func (r *Repository) Record(ctx context.Context, event entities.TrackingEvent) error {
	query := `INSERT INTO tracking_events (offer_id, checkpoint, reached_at) VALUES ($1, $2, $3)`

	_, err := r.querier.Exec(ctx, query, event.OfferID, int16(event.Checkpoint), event.ReachedAt)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return entities.ErrVersionConflict
		}
		if repository.IsPgErrorWithCode(err, repository.PgErrForeignKeyViolation) {
			return entities.ErrDeliveryOfferNotFound
		}
		return fmt.Errorf("unexpected tracking repository record error: %w", err)
	}
	return nil
}

func (r *Repository) ListByOffer(ctx context.Context, offerID string) ([]entities.TrackingEvent, error) {
	query := `SELECT offer_id, checkpoint, reached_at
		FROM tracking_events
		WHERE offer_id = $1
		ORDER BY checkpoint`

	rows, err := r.querier.Query(ctx, query, offerID)
	if err != nil {
		return nil, fmt.Errorf("unexpected tracking repository list error: %w", err)
	}
	defer rows.Close()

	events := make([]entities.TrackingEvent, 0, len(entities.TrackedCheckpoints))
	for rows.Next() {
		var (
			id         string
			checkpoint int16
			reachedAt  time.Time
		)
		if err := rows.Scan(&id, &checkpoint, &reachedAt); err != nil {
			return nil, fmt.Errorf("unexpected tracking repository list error: %w", err)
		}
		events = append(events, entities.TrackingEvent{
			OfferID:    id,
			Checkpoint: entities.Checkpoint(checkpoint),
			ReachedAt:  reachedAt.UTC(),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected tracking repository list error: %w", err)
	}
	return events, nil
}
