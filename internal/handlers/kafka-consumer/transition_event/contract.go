//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=transition_event_test
package transition_event

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
	ProcessTransition(ctx context.Context, event entities.TransitionEvent) (int, error)
}
