//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=fulfillment_test
package fulfillment

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type ListingRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Listing, error)
	Update(ctx context.Context, listingModify entities.ListingModify) (*entities.Listing, error)
}

type OfferRepository interface {
	GetAccepted(ctx context.Context, listingID string) (*entities.DeliveryOffer, error)
	AdvanceCheckpoint(ctx context.Context, offerID string, from, to entities.Checkpoint) (*entities.DeliveryOffer, error)
}

type TrackingRepository interface {
	Record(ctx context.Context, event entities.TrackingEvent) error
	ListByOffer(ctx context.Context, offerID string) ([]entities.TrackingEvent, error)
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
