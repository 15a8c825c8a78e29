//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_offer_post_test
package delivery_offer_post

import (
	"context"

	"github.com/shopspring/decimal"
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
	SubmitDeliveryOffer(ctx context.Context, actor entities.Actor, listingID string, amount decimal.Decimal) (*entities.DeliveryOffer, error)
}
