//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_offers_get_test
package delivery_offers_get

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
	ListDeliveryOffers(ctx context.Context, actor entities.Actor, listingID string) ([]entities.DeliveryOffer, error)
}
