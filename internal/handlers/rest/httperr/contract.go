//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=httperr_test
package httperr

import "marketplace/pkg/logger"

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
