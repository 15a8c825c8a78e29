//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bid_post_test
package bid_post

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
	PlaceBid(ctx context.Context, actor entities.Actor, listingID string, amount decimal.Decimal) (*entities.Bid, error)
}
