//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type ListingRepository interface {
	GetByID(ctx context.Context, id string) (*entities.Listing, error)
	Update(ctx context.Context, listingModify entities.ListingModify) (*entities.Listing, error)
}

type Repository interface {
	Create(ctx context.Context, offer entities.DeliveryOffer) (*entities.DeliveryOffer, error)
	GetByID(ctx context.Context, id string) (*entities.DeliveryOffer, error)
	ListByListing(ctx context.Context, listingID string) ([]entities.DeliveryOffer, error)
	GetAccepted(ctx context.Context, listingID string) (*entities.DeliveryOffer, error)
	Accept(ctx context.Context, offerID string, acceptedAt time.Time) (*entities.DeliveryOffer, error)
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
