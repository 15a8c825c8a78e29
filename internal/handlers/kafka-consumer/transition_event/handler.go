package transition_event

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"marketplace/internal/pkg/events"
	pushservice "marketplace/internal/service/push"
	"marketplace/pkg/logger"
)

type Handler struct {
	pushService              Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
}

func New(log handlerLogger, pushService Service, timeout time.Duration) *Handler {
	handlerLog := log.With(
		logger.NewField("handler", "transition.event"),
	)

	return &Handler{
		pushService:              pushService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("transition.event: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("transition.event: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение.
// true означает, что контекст отменён и сообщение нужно перечитать.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	event, err := events.UnmarshalTransition(message.Value)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("transition.event handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("listing", event.ListingID),
		logger.NewField("kind", event.Kind.String()),
		logger.NewField("offset", message.Offset),
	)

	msgLog.Info("transition.event processing")

	sent, err := h.pushService.ProcessTransition(ctx, event)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
				logger.NewField("sent", sent),
			).Warn("transition.event handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, pushservice.ErrUnknownEventKind),
			errors.Is(err, pushservice.ErrInvalidEvent):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("transition.event handler skipped invalid event")

		default:
			// доставка пушей best-effort, сообщение не перечитываем
			msgLog.With(
				logger.NewField("error", err),
				logger.NewField("sent", sent),
			).Warn("transition.event handler failed to deliver some pushes")
		}
		sess.MarkMessage(message, "")
		return false
	}

	msgLog.With(
		logger.NewField("sent", sent),
	).Info("transition.event: processed")

	sess.MarkMessage(message, "")
	return false
}
