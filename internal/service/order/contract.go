//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type ListingRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Listing, error)
	Update(ctx context.Context, listingModify entities.ListingModify) (*entities.Listing, error)
}

type BidRepository interface {
	ListByListing(ctx context.Context, listingID string) ([]entities.Bid, error)
	DeleteByListing(ctx context.Context, listingID string) (int64, error)
}

type DeliveryOfferRepository interface {
	GetAccepted(ctx context.Context, listingID string) (*entities.DeliveryOffer, error)
}

type TrackingRepository interface {
	ListByOffer(ctx context.Context, offerID string) ([]entities.TrackingEvent, error)
}

type RatingRepository interface {
	GetByListing(ctx context.Context, listingID string) (*entities.Rating, error)
}

type PaymentGateway interface {
	GetPayment(ctx context.Context, reference string) (*entities.Payment, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type Clock interface {
	Now() time.Time
}

type Notifier interface {
	Notify(ctx context.Context, event entities.TransitionEvent)
}
