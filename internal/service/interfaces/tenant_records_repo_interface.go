package interfaces

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type TenantRecordsRepositoryInterface interface {
	// FindEligible returns the tenant's documents in the named collection
	// that carry at least one allow-listed field with a strictly positive
	// value. Iteration order is unspecified.
	FindEligible(ctx context.Context, collection, tenantID string, fields []string) ([]bson.M, error)
	UpdateFields(ctx context.Context, collection string, id primitive.ObjectID, updates map[string]float64) error
}
