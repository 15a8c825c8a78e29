//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=transition_test
package transition

import (
	"github.com/IBM/sarama"
	"marketplace/pkg/logger"
)

type publisherLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type producer interface {
	SendMessage(msg *sarama.ProducerMessage) (partition int32, offset int64, err error)
}
