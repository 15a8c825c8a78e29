//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=listing_post_test
package listing_post

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
	CreateListing(ctx context.Context, actor entities.Actor, create entities.ListingCreate) (*entities.Listing, error)
}
