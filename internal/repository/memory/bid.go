package memory

import (
	"context"
	"slices"
	"strings"

	"marketplace/internal/entities"
)

type BidRepository struct {
	store *Store
}

func (r *BidRepository) Create(ctx context.Context, bid entities.Bid) (*entities.Bid, error) {
	defer r.store.lock(ctx)()

	listing, ok := r.store.state.listings[bid.ListingID]
	if !ok {
		return nil, entities.ErrListingNotFound
	}
	if !listing.AcceptsBidsAt(bid.CreatedAt) {
		return nil, entities.ErrListingClosedForBids
	}
	r.store.state.bids[bid.ID] = bid
	return &bid, nil
}

func (r *BidRepository) GetByID(ctx context.Context, id string) (*entities.Bid, error) {
	defer r.store.lock(ctx)()

	bid, ok := r.store.state.bids[id]
	if !ok {
		return nil, entities.ErrBidNotFound
	}
	return &bid, nil
}

// ListByListing отдаёт ставки по убыванию суммы, при равенстве по времени.
func (r *BidRepository) ListByListing(ctx context.Context, listingID string) ([]entities.Bid, error) {
	defer r.store.lock(ctx)()

	result := make([]entities.Bid, 0)
	for _, bid := range r.store.state.bids {
		if bid.ListingID == listingID {
			result = append(result, bid)
		}
	}

	slices.SortFunc(result, func(a, b entities.Bid) int {
		if c := b.Amount.Cmp(a.Amount); c != 0 {
			return c
		}
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return result, nil
}

func (r *BidRepository) Delete(ctx context.Context, id string) error {
	defer r.store.lock(ctx)()

	if _, ok := r.store.state.bids[id]; !ok {
		return entities.ErrBidNotFound
	}
	delete(r.store.state.bids, id)
	return nil
}

func (r *BidRepository) DeleteOthers(ctx context.Context, listingID, keepBidID string) (int64, error) {
	defer r.store.lock(ctx)()

	return r.deleteWhere(func(bid entities.Bid) bool {
		return bid.ListingID == listingID && bid.ID != keepBidID
	}), nil
}

func (r *BidRepository) DeleteByListing(ctx context.Context, listingID string) (int64, error) {
	defer r.store.lock(ctx)()

	return r.deleteWhere(func(bid entities.Bid) bool {
		return bid.ListingID == listingID
	}), nil
}

func (r *BidRepository) deleteWhere(match func(bid entities.Bid) bool) int64 {
	var deleted int64
	for id, bid := range r.store.state.bids {
		if match(bid) {
			delete(r.store.state.bids, id)
			deleted++
		}
	}
	return deleted
}
