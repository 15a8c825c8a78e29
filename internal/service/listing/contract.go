//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=listing_test
package listing

import (
	"context"
	"time"

	"marketplace/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, listing entities.Listing) (*entities.Listing, error)
	GetByID(ctx context.Context, id string) (*entities.Listing, error)
	Update(ctx context.Context, listingModify entities.ListingModify) (*entities.Listing, error)
	Delete(ctx context.Context, id string) error
	HasReferences(ctx context.Context, id string) (bool, error)
	CountExpiredOpen(ctx context.Context, now time.Time) (int64, error)
}

type BidRepository interface {
	Create(ctx context.Context, bid entities.Bid) (*entities.Bid, error)
	GetByID(ctx context.Context, id string) (*entities.Bid, error)
	ListByListing(ctx context.Context, listingID string) ([]entities.Bid, error)
	Delete(ctx context.Context, id string) error
	DeleteOthers(ctx context.Context, listingID, keepBidID string) (int64, error)
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
