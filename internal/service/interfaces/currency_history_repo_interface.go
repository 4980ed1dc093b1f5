package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"currencyconversion/internal/pkg/store/models"
)

type CurrencyHistoryRepositoryInterface interface {
	// Record persists one reversible snapshot. It must run inside the same
	// transaction as the document update it describes.
	Record(ctx context.Context, entry *models.CurrencyHistory) error
}

type CurrencyHistoryStoreInterface interface {
	Create(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error)
}
