package conversion_logs

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"currencyconversion/internal/pkg/consts"
	mongodb "currencyconversion/internal/pkg/db/mongo"
	"currencyconversion/internal/pkg/log_messages"
	"currencyconversion/internal/pkg/logger"
	"currencyconversion/internal/pkg/store/models"
	"currencyconversion/internal/pkg/store/repository"
	"currencyconversion/internal/service/interfaces"
)

type ConversionLogsRepository struct {
	repo interfaces.ConversionLogStoreInterface
}

func NewConversionLogsRepository(client *mongodb.MongoClient) *ConversionLogsRepository {
	collection := client.Database.Collection(consts.ConversionLogsCollection)
	repo := repository.NewMongoRepository[models.ConversionLog](collection)
	return &ConversionLogsRepository{repo: repo}
}

func NewConversionLogsRepositoryWithInterface(repo interfaces.ConversionLogStoreInterface) *ConversionLogsRepository {
	return &ConversionLogsRepository{repo: repo}
}

// FindRecentSuccess returns the newest SUCCESS log for the tenant with a
// timestamp at or after since, or nil when the cooldown window is clear.
func (cr *ConversionLogsRepository) FindRecentSuccess(
	ctx context.Context,
	tenantID string,
	since time.Time,
) (*models.ConversionLog, error) {

	filter := bson.M{
		"tenantId":  tenantID,
		"status":    consts.StatusSuccess,
		"timestamp": bson.M{"$gte": since},
	}
	opt := options.FindOne().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	entry, err := cr.repo.FindOne(ctx, filter, opt)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		logger.CtxError(ctx, log_messages.ErrorFetchingConversionLog, err, slog.String("tenant_id", tenantID))
		return nil, err
	}

	logger.CtxDebug(ctx, "Found recent successful conversion",
		slog.String("tenant_id", tenantID),
		slog.String("conversion_id", entry.ID.Hex()),
	)
	return &entry, nil
}

func (cr *ConversionLogsRepository) CreatePartial(
	ctx context.Context,
	entry *models.ConversionLog,
) (primitive.ObjectID, error) {

	entry.Status = consts.StatusPartial
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	result, err := cr.repo.Create(ctx, entry)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorCreatingConversionLog, err, slog.String("tenant_id", entry.TenantID))
		return primitive.NilObjectID, err
	}

	id, ok := result.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, mongo.ErrNilDocument
	}

	logger.CtxDebug(ctx, "Created PARTIAL conversion log",
		slog.String("tenant_id", entry.TenantID),
		slog.String("conversion_id", id.Hex()),
	)
	return id, nil
}

func (cr *ConversionLogsRepository) MarkSuccess(
	ctx context.Context,
	id primitive.ObjectID,
	stats models.ConversionStatistics,
) error {

	update := bson.M{
		"status":     consts.StatusSuccess,
		"statistics": stats,
	}

	if err := cr.repo.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		logger.CtxError(ctx, log_messages.ErrorUpdatingConversionLog, err, slog.String("conversion_id", id.Hex()))
		return err
	}

	return nil
}

// CreateFailed writes a standalone FAILED log entry. It is called outside
// the aborted transaction, so this record survives the rollback.
func (cr *ConversionLogsRepository) CreateFailed(ctx context.Context, entry *models.ConversionLog) error {

	entry.Status = consts.StatusFailed
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	if _, err := cr.repo.Create(ctx, entry); err != nil {
		logger.CtxError(ctx, log_messages.ErrorCreatingConversionLog, err, slog.String("tenant_id", entry.TenantID))
		return err
	}

	return nil
}
