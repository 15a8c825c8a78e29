//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rating_test
package rating

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
}

type Repository interface {
	Create(ctx context.Context, rating entities.Rating) (*entities.Rating, error)
	GetByListing(ctx context.Context, listingID string) (*entities.Rating, error)
	IncrementPartnerRating(ctx context.Context, partnerID string, score int, updatedAt time.Time) (*entities.PartnerRating, error)
	GetPartnerRating(ctx context.Context, partnerID string) (*entities.PartnerRating, error)
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
