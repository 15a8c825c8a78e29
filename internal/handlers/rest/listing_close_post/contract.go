//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=listing_close_post_test
package listing_close_post

import (
	"context"

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
	CloseListing(ctx context.Context, actor entities.Actor, listingID string) (*entities.Listing, error)
}
