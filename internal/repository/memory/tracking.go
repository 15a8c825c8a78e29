package memory

import (
	"context"
	"slices"

	"marketplace/internal/entities"
)

type TrackingRepository struct {
	store *Store
}

func (r *TrackingRepository) Record(ctx context.Context, event entities.TrackingEvent) error {
	defer r.store.lock(ctx)()

	if _, ok := r.store.state.offers[event.OfferID]; !ok {
		return entities.ErrDeliveryOfferNotFound
	}
	events := r.store.state.tracking[event.OfferID]
	for _, e := range events {
		if e.Checkpoint == event.Checkpoint {
			return entities.ErrVersionConflict
		}
	}
	r.store.state.tracking[event.OfferID] = append(slices.Clone(events), event)
	return nil
}

func (r *TrackingRepository) ListByOffer(ctx context.Context, offerID string) ([]entities.TrackingEvent, error) {
	defer r.store.lock(ctx)()

	events := slices.Clone(r.store.state.tracking[offerID])
	slices.SortFunc(events, func(a, b entities.TrackingEvent) int {
		return int(a.Checkpoint) - int(b.Checkpoint)
	})
	return events, nil
}
