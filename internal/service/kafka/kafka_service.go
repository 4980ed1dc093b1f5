package kafka

import (
	"context"
	"encoding/json"

	"currencyconversion/internal/pkg/log_messages"
	"currencyconversion/internal/pkg/logger"
	"currencyconversion/internal/pkg/models"
	"currencyconversion/internal/service/interfaces"
)

// ConversionEventsPublisher handles publishing conversion audit events to Kafka.
type ConversionEventsPublisher struct {
	KafkaProducer interfaces.KafkaProducerInterface
}

// NewConversionEventsPublisher creates a new instance of ConversionEventsPublisher.
func NewConversionEventsPublisher(producer interfaces.KafkaProducerInterface) *ConversionEventsPublisher {
	return &ConversionEventsPublisher{
		KafkaProducer: producer,
	}
}

// PublishOutcome serializes and publishes a conversion outcome event.
func (s *ConversionEventsPublisher) PublishOutcome(ctx context.Context, event models.ConversionEventMessage) error {
	data, err := json.Marshal(event)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorSerializingConversionEvent, err)
		return err
	}
	err = s.KafkaProducer.Publish(ctx, data)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorPublishingConversionEvent, err)
		return err
	}
	logger.CtxInfo(ctx, log_messages.SuccessConversionEventPublished)
	return nil
}
