package transition

import (
	"context"

	"github.com/IBM/sarama"
	"marketplace/internal/entities"
	"marketplace/internal/pkg/events"
	"marketplace/pkg/logger"
)

const (
	resultPublished = "published"
	resultFailed    = "failed"
)

// Publisher отправляет события переходов в топик после коммита.
// Ошибки доставки логируются и считаются, но вызывающему не возвращаются.
type Publisher struct {
	producer producer
	topic    string
	log      publisherLogger
}

func New(log publisherLogger, producer producer, topic string) *Publisher {
	return &Publisher{
		producer: producer,
		topic:    topic,
		log: log.With(
			logger.NewField("topic", topic),
		),
	}
}

func (p *Publisher) Notify(_ context.Context, event entities.TransitionEvent) {
	eventLog := p.log.With(
		logger.NewField("kind", event.Kind.String()),
		logger.NewField("listing", event.ListingID),
	)

	payload, err := events.MarshalTransition(event)
	if err != nil {
		notificationsTotal.WithLabelValues(event.Kind.String(), resultFailed).Inc()
		eventLog.Error("transition event encoding failed", logger.NewField("error", err))
		return
	}

	// ключ по листингу сохраняет порядок событий одного листинга в партиции
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(event.ListingID),
		Value: sarama.ByteEncoder(payload),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		notificationsTotal.WithLabelValues(event.Kind.String(), resultFailed).Inc()
		eventLog.Error("transition event publish failed", logger.NewField("error", err))
		return
	}

	notificationsTotal.WithLabelValues(event.Kind.String(), resultPublished).Inc()
	eventLog.Info("transition event published",
		logger.NewField("partition", partition),
		logger.NewField("offset", offset),
	)
}
