//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=bidding_window_report_test
package bidding_window_report

import (
	"context"

	"marketplace/pkg/logger"
)

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	CountExpiredOpenListings(ctx context.Context) (int64, error)
}
