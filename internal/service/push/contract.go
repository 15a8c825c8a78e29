//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=push_test
package push

import (
	"context"

	"marketplace/internal/entities"
)

type Gateway interface {
	Send(ctx context.Context, message entities.PushMessage) error
}

type (
	BuildFn        func(event entities.TransitionEvent, recipientID string) entities.PushMessage
	MessageFactory interface {
		GetBuilder(kind entities.TransitionKind) (BuildFn, error)
	}
)
