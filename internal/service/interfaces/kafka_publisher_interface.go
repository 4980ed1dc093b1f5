package interfaces

import (
	"context"

	"currencyconversion/internal/pkg/models"
)

type KafkaProducerInterface interface {
	Publish(ctx context.Context, value []byte) error
}

// ConversionEventsPublisherInterface fans conversion outcomes out to the
// compliance topic after the transaction has settled.
type ConversionEventsPublisherInterface interface {
	PublishOutcome(ctx context.Context, event models.ConversionEventMessage) error
}
