package app

import (
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/ticketorder/internal/domain"
	"github.com/vladislavdragonenkov/ticketorder/internal/messaging/kafka"
)

// initEventPublisher поднимает Kafka publisher, если заданы брокеры.
// Недоступная Kafka не мешает запуску: сервис продолжает работу без событий.
func initEventPublisher(cfg Config, logger *log.Entry) (domain.EventPublisher, *kafka.Producer) {
	if len(cfg.KafkaBrokers) == 0 {
		return kafka.NoopPublisher{}, nil
	}

	producer, err := kafka.NewProducer(cfg.KafkaBrokers, cfg.KafkaClientID)
	if err != nil {
		logger.WithError(err).Warn("failed to create kafka producer, continuing without kafka")
		return kafka.NoopPublisher{}, nil
	}

	logger.WithFields(log.Fields{
		"brokers": cfg.KafkaBrokers,
		"topic":   cfg.KafkaTopic,
	}).Info("kafka producer initialized")
	return kafka.NewOrderEventPublisher(producer, cfg.KafkaTopic), producer
}

// closeKafka закрывает producer, если он был создан.
func closeKafka(producer *kafka.Producer, logger *log.Entry) {
	if producer == nil {
		return
	}
	if err := producer.Close(); err != nil {
		logger.WithError(err).Warn("failed to close kafka producer")
		return
	}
	logger.Info("kafka producer closed")
}
