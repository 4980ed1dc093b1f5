package interfaces

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"currencyconversion/internal/pkg/store/models"
)

type ConversionLogsRepositoryInterface interface {
	// FindRecentSuccess returns the most recent SUCCESS log for the tenant
	// with a timestamp at or after the given instant, or nil when none exists.
	FindRecentSuccess(ctx context.Context, tenantID string, since time.Time) (*models.ConversionLog, error)
	CreatePartial(ctx context.Context, entry *models.ConversionLog) (primitive.ObjectID, error)
	MarkSuccess(ctx context.Context, id primitive.ObjectID, stats models.ConversionStatistics) error
	CreateFailed(ctx context.Context, entry *models.ConversionLog) error
}

type ConversionLogStoreInterface interface {
	FindOne(ctx context.Context, filter interface{}, opt *options.FindOneOptions) (models.ConversionLog, error)
	Create(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error)
	UpdateOne(ctx context.Context, filter interface{}, update interface{}) error
}
