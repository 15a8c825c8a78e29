package memory

import (
	"context"
	"slices"
	"time"

	"marketplace/internal/entities"
)

type ListingRepository struct {
	store *Store
}

func (r *ListingRepository) Create(ctx context.Context, listing entities.Listing) (*entities.Listing, error) {
	defer r.store.lock(ctx)()

	stored := cloneListing(listing)
	r.store.state.listings[listing.ID] = stored
	return pointerTo(cloneListing(stored)), nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id string) (*entities.Listing, error) {
	defer r.store.lock(ctx)()

	listing, ok := r.store.state.listings[id]
	if !ok {
		return nil, entities.ErrListingNotFound
	}
	return pointerTo(cloneListing(listing)), nil
}

func (r *ListingRepository) Update(ctx context.Context, listingModify entities.ListingModify) (*entities.Listing, error) {
	defer r.store.lock(ctx)()

	st := r.store.state
	listing, ok := st.listings[listingModify.ID]
	if !ok {
		return nil, entities.ErrListingNotFound
	}
	if listing.Version != listingModify.ExpectedVersion {
		return nil, entities.ErrVersionConflict
	}

	listing = cloneListing(listing)
	if listingModify.Status != nil {
		listing.Status = *listingModify.Status
	}
	if listingModify.BiddingEnd != nil {
		end := *listingModify.BiddingEnd
		listing.BiddingEnd = &end
	}
	if listingModify.Award != nil {
		award := cloneAward(*listingModify.Award)
		if award.PaymentRef != nil {
			if owner, used := st.paymentRefs[*award.PaymentRef]; used && owner != listing.ID {
				return nil, entities.ErrPaymentAlreadyUsed
			}
			st.paymentRefs[*award.PaymentRef] = listing.ID
		}
		listing.Award = &award
	}
	listing.Version++
	listing.UpdatedAt = listingModify.UpdatedAt

	st.listings[listing.ID] = listing
	return pointerTo(cloneListing(listing)), nil
}

func (r *ListingRepository) Delete(ctx context.Context, id string) error {
	defer r.store.lock(ctx)()

	if _, ok := r.store.state.listings[id]; !ok {
		return entities.ErrListingNotFound
	}
	if r.store.state.referenced(id) {
		return entities.ErrListingReferenced
	}
	delete(r.store.state.listings, id)
	return nil
}

func (r *ListingRepository) HasReferences(ctx context.Context, id string) (bool, error) {
	defer r.store.lock(ctx)()

	return r.store.state.referenced(id), nil
}

func (r *ListingRepository) CountExpiredOpen(ctx context.Context, now time.Time) (int64, error) {
	defer r.store.lock(ctx)()

	var count int64
	for _, listing := range r.store.state.listings {
		if listing.Status == entities.ListingOpen && listing.Award == nil && listing.BiddingClosedAt(now) {
			count++
		}
	}
	return count, nil
}

func (st *state) referenced(listingID string) bool {
	for _, bid := range st.bids {
		if bid.ListingID == listingID {
			return true
		}
	}
	for _, offer := range st.offers {
		if offer.ListingID == listingID {
			return true
		}
	}
	_, rated := st.ratings[listingID]
	return rated
}

func cloneListing(listing entities.Listing) entities.Listing {
	listing.Images = slices.Clone(listing.Images)
	if listing.Images == nil {
		listing.Images = []string{}
	}
	if listing.BiddingEnd != nil {
		end := *listing.BiddingEnd
		listing.BiddingEnd = &end
	}
	if listing.Award != nil {
		award := cloneAward(*listing.Award)
		listing.Award = &award
	}
	return listing
}

func cloneAward(award entities.Award) entities.Award {
	if award.BidID != nil {
		id := *award.BidID
		award.BidID = &id
	}
	if award.PaymentRef != nil {
		ref := *award.PaymentRef
		award.PaymentRef = &ref
	}
	return award
}

func pointerTo[T any](v T) *T {
	return &v
}
