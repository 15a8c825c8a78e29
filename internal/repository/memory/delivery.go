package memory

import (
	"context"
	"slices"
	"strings"
	"time"

	"marketplace/internal/entities"
)

type OfferRepository struct {
	store *Store
}

func (r *OfferRepository) Create(ctx context.Context, offer entities.DeliveryOffer) (*entities.DeliveryOffer, error) {
	defer r.store.lock(ctx)()

	listing, ok := r.store.state.listings[offer.ListingID]
	if !ok {
		return nil, entities.ErrListingNotFound
	}
	if listing.Status != entities.ListingAwarded {
		return nil, entities.ErrListingNotAwarded
	}
	offer.Accepted = false
	offer.AcceptedAt = nil
	r.store.state.offers[offer.ID] = offer
	return &offer, nil
}

func (r *OfferRepository) GetByID(ctx context.Context, id string) (*entities.DeliveryOffer, error) {
	defer r.store.lock(ctx)()

	offer, ok := r.store.state.offers[id]
	if !ok {
		return nil, entities.ErrDeliveryOfferNotFound
	}
	return &offer, nil
}

func (r *OfferRepository) GetAccepted(ctx context.Context, listingID string) (*entities.DeliveryOffer, error) {
	defer r.store.lock(ctx)()

	offer, ok := r.store.state.acceptedOffer(listingID)
	if !ok {
		return nil, entities.ErrDeliveryOfferNotFound
	}
	return &offer, nil
}

func (r *OfferRepository) ListByListing(ctx context.Context, listingID string) ([]entities.DeliveryOffer, error) {
	defer r.store.lock(ctx)()

	result := make([]entities.DeliveryOffer, 0)
	for _, offer := range r.store.state.offers {
		if offer.ListingID == listingID {
			result = append(result, offer)
		}
	}

	slices.SortFunc(result, func(a, b entities.DeliveryOffer) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return result, nil
}

func (r *OfferRepository) Accept(ctx context.Context, offerID string, acceptedAt time.Time) (*entities.DeliveryOffer, error) {
	defer r.store.lock(ctx)()

	offer, ok := r.store.state.offers[offerID]
	if !ok {
		return nil, entities.ErrDeliveryOfferNotFound
	}
	if _, exists := r.store.state.acceptedOffer(offer.ListingID); exists {
		return nil, entities.ErrAcceptedOfferExists
	}

	offer.Accepted = true
	offer.AcceptedAt = &acceptedAt
	offer.Checkpoint = entities.CheckpointCreated
	r.store.state.offers[offerID] = offer
	return &offer, nil
}

func (r *OfferRepository) AdvanceCheckpoint(ctx context.Context, offerID string, from, to entities.Checkpoint) (*entities.DeliveryOffer, error) {
	defer r.store.lock(ctx)()

	offer, ok := r.store.state.offers[offerID]
	if !ok {
		return nil, entities.ErrDeliveryOfferNotFound
	}
	if !offer.Accepted || offer.Checkpoint != from {
		return nil, entities.ErrVersionConflict
	}

	offer.Checkpoint = to
	r.store.state.offers[offerID] = offer
	return &offer, nil
}

func (st *state) acceptedOffer(listingID string) (entities.DeliveryOffer, bool) {
	for _, offer := range st.offers {
		if offer.ListingID == listingID && offer.Accepted {
			return offer, true
		}
	}
	return entities.DeliveryOffer{}, false
}
