package memory

import (
	"context"
	"maps"
	"slices"
	"sync"

	"marketplace/internal/entities"
)

type txKey struct{}

// Store: хранилище в памяти для локального запуска и тестов.
// Транзакции сериализуются мьютексом, при ошибке состояние откатывается к снимку.
type Store struct {
	mu    sync.Mutex
	state *state
}

type state struct {
	listings       map[string]entities.Listing
	bids           map[string]entities.Bid
	offers         map[string]entities.DeliveryOffer
	tracking       map[string][]entities.TrackingEvent
	ratings        map[string]entities.Rating
	partnerRatings map[string]entities.PartnerRating
	paymentRefs    map[string]string
}

func New() *Store {
	return &Store{
		state: &state{
			listings:       make(map[string]entities.Listing),
			bids:           make(map[string]entities.Bid),
			offers:         make(map[string]entities.DeliveryOffer),
			tracking:       make(map[string][]entities.TrackingEvent),
			ratings:        make(map[string]entities.Rating),
			partnerRatings: make(map[string]entities.PartnerRating),
			paymentRefs:    make(map[string]string),
		},
	}
}

// Do выполняет fn атомарно: либо все изменения применяются, либо ни одно.
func (s *Store) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	snapshot := s.state.clone()
	err := fn(context.WithValue(ctx, txKey{}, s))
	if err != nil {
		s.state = snapshot
		return err
	}
	return nil
}

func (s *Store) Listings() *ListingRepository {
	return &ListingRepository{store: s}
}

func (s *Store) Bids() *BidRepository {
	return &BidRepository{store: s}
}

func (s *Store) Offers() *OfferRepository {
	return &OfferRepository{store: s}
}

func (s *Store) Tracking() *TrackingRepository {
	return &TrackingRepository{store: s}
}

func (s *Store) Ratings() *RatingRepository {
	return &RatingRepository{store: s}
}

// lock берёт мьютекс, если вызов не внутри транзакции этого же хранилища.
func (s *Store) lock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, ok := ctx.Value(txKey{}).(*Store)
	return ok && owner == s
}

func (st *state) clone() *state {
	tracking := make(map[string][]entities.TrackingEvent, len(st.tracking))
	for id, events := range st.tracking {
		tracking[id] = slices.Clone(events)
	}

	return &state{
		listings:       maps.Clone(st.listings),
		bids:           maps.Clone(st.bids),
		offers:         maps.Clone(st.offers),
		tracking:       tracking,
		ratings:        maps.Clone(st.ratings),
		partnerRatings: maps.Clone(st.partnerRatings),
		paymentRefs:    maps.Clone(st.paymentRefs),
	}
}
