//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=purchase_post_test
package purchase_post

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
	PurchaseListing(ctx context.Context, actor entities.Actor, listingID, paymentRef string) (*entities.Order, error)
}
