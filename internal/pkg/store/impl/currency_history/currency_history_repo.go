package currency_history

import (
	"context"
	"log/slog"
	"time"

	"currencyconversion/internal/pkg/consts"
	mongodb "currencyconversion/internal/pkg/db/mongo"
	"currencyconversion/internal/pkg/log_messages"
	"currencyconversion/internal/pkg/logger"
	"currencyconversion/internal/pkg/store/models"
	"currencyconversion/internal/pkg/store/repository"
	"currencyconversion/internal/service/interfaces"
)

type CurrencyHistoryRepository struct {
	repo interfaces.CurrencyHistoryStoreInterface
}

func NewCurrencyHistoryRepository(client *mongodb.MongoClient) *CurrencyHistoryRepository {
	collection := client.Database.Collection(consts.CurrencyHistoryCollection)
	repo := repository.NewMongoRepository[models.CurrencyHistory](collection)
	return &CurrencyHistoryRepository{repo: repo}
}

func NewCurrencyHistoryRepositoryWithInterface(repo interfaces.CurrencyHistoryStoreInterface) *CurrencyHistoryRepository {
	return &CurrencyHistoryRepository{repo: repo}
}

// Record inserts one reversible snapshot. Records are append-only: nothing
// in this service updates or deletes them afterwards.
func (hr *CurrencyHistoryRepository) Record(ctx context.Context, entry *models.CurrencyHistory) error {

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now().UTC()
	}

	if _, err := hr.repo.Create(ctx, entry); err != nil {
		logger.CtxError(ctx, log_messages.ErrorCreatingCurrencyHistory, err,
			slog.String("tenant_id", entry.TenantID),
			slog.String("entity_type", string(entry.EntityType)),
			slog.String("entity_id", entry.EntityID.Hex()),
		)
		return err
	}

	logger.CtxDebug(ctx, "Recorded currency history snapshot",
		slog.String("entity_type", string(entry.EntityType)),
		slog.String("entity_id", entry.EntityID.Hex()),
		slog.Int("field_count", len(entry.ConvertedValues)),
	)
	return nil
}
