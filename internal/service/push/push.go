package push

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marketplace/internal/entities"
)

type Service struct {
	gateway Gateway
	factory MessageFactory
}

func New(gateway Gateway, factory MessageFactory) *Service {
	return &Service{
		gateway: gateway,
		factory: factory,
	}
}

// ProcessTransition рассылает пуш каждому получателю события.
// Возвращает число доставленных сообщений; ошибки отдельных получателей собираются вместе.
func (s *Service) ProcessTransition(ctx context.Context, event entities.TransitionEvent) (int, error) {
	if strings.TrimSpace(event.ListingID) == "" || event.Kind == "" {
		return 0, ErrInvalidEvent
	}

	build, err := s.factory.GetBuilder(event.Kind)
	if err != nil {
		return 0, err
	}

	var (
		sent int
		errs []error
	)
	for _, recipientID := range uniqueRecipients(event.Recipients) {
		// отмена контекста прерывает рассылку, сообщение перечитают
		if ctx.Err() != nil {
			return sent, ctx.Err()
		}

		err := s.gateway.Send(ctx, build(event, recipientID))
		if err != nil {
			errs = append(errs, fmt.Errorf("send push to %s: %w", recipientID, err))
			continue
		}
		sent++
	}

	return sent, errors.Join(errs...)
}

func uniqueRecipients(recipients []string) []string {
	seen := make(map[string]struct{}, len(recipients))
	result := make([]string, 0, len(recipients))
	for _, id := range recipients {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
