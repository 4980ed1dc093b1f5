package tenant_records

import (
	"context"
	"log/slog"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	mongodb "currencyconversion/internal/pkg/db/mongo"
	"currencyconversion/internal/pkg/log_messages"
	"currencyconversion/internal/pkg/logger"
	"currencyconversion/internal/pkg/store/repository"
	"currencyconversion/internal/service/interfaces"
)

// CollectionProvider resolves a collection name to its raw collection
// handle. Tests inject fakes here.
type CollectionProvider func(name string) interfaces.MongoRepositoryInterface

// TenantRecordsRepository reads and mutates the schema-flexible business
// documents (courses, payments, ...) scoped to one tenant. It is the only
// repository parameterized by collection name, since the conversion walks
// eight collections with one access pattern.
type TenantRecordsRepository struct {
	collections CollectionProvider
}

func NewTenantRecordsRepository(client *mongodb.MongoClient) *TenantRecordsRepository {
	return &TenantRecordsRepository{
		collections: func(name string) interfaces.MongoRepositoryInterface {
			return client.Database.Collection(name)
		},
	}
}

func NewTenantRecordsRepositoryWithProvider(provider CollectionProvider) *TenantRecordsRepository {
	return &TenantRecordsRepository{collections: provider}
}

// EligibilityFilter builds the tenant-scoped filter for documents carrying
// at least one allow-listed field with a strictly positive value. Tenant
// matching spans both tenantId and the legacy academyId key.
func EligibilityFilter(tenantID string, fields []string) bson.M {
	fieldGuards := make([]bson.M, 0, len(fields))
	for _, field := range fields {
		fieldGuards = append(fieldGuards, bson.M{field: bson.M{"$gt": 0}})
	}

	return bson.M{
		"$and": []bson.M{
			{"$or": []bson.M{
				{"tenantId": tenantID},
				{"academyId": tenantID},
			}},
			{"$or": fieldGuards},
		},
	}
}

func (tr *TenantRecordsRepository) FindEligible(
	ctx context.Context,
	collection, tenantID string,
	fields []string,
) ([]bson.M, error) {

	repo := repository.NewMongoRepository[bson.M](tr.collections(collection))

	docs, err := repo.Find(ctx, EligibilityFilter(tenantID, fields))
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorFetchingEligibleRecords, err,
			slog.String("collection", collection),
			slog.String("tenant_id", tenantID),
		)
		return nil, err
	}

	logger.CtxDebug(ctx, "Fetched eligible documents",
		slog.String("collection", collection),
		slog.String("tenant_id", tenantID),
		slog.Int("count", len(docs)),
	)
	return docs, nil
}

func (tr *TenantRecordsRepository) UpdateFields(
	ctx context.Context,
	collection string,
	id primitive.ObjectID,
	updates map[string]float64,
) error {

	repo := repository.NewMongoRepository[bson.M](tr.collections(collection))

	if err := repo.UpdateOne(ctx, bson.M{"_id": id}, updates); err != nil {
		logger.CtxError(ctx, log_messages.ErrorUpdatingEntityDocument, err,
			slog.String("collection", collection),
			slog.String("entity_id", id.Hex()),
		)
		return err
	}

	return nil
}
