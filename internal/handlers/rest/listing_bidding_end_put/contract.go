//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=listing_bidding_end_put_test
package listing_bidding_end_put

import (
	"context"
	"time"

	"marketplace/internal/entities"
	"marketplace/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SetBiddingEnd(ctx context.Context, actor entities.Actor, listingID string, end time.Time) (*entities.Listing, error)
}
