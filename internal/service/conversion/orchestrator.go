package conversion

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"currencyconversion/internal/pkg/consts"
	mongodb "currencyconversion/internal/pkg/db/mongo"
	"currencyconversion/internal/pkg/log_messages"
	"currencyconversion/internal/pkg/logger"
	"currencyconversion/internal/pkg/models"
	storemodels "currencyconversion/internal/pkg/store/models"
	"currencyconversion/internal/service/interfaces"
)

// runTransaction is an injectable hook that runs a transaction. Tests can replace
var runTransaction = func(
	ctx context.Context,
	mc *mongodb.MongoClient,
	cb func(ctx context.Context) (interface{}, error),
) (interface{}, error) {
	session, err := mc.Client.StartSession()
	if err != nil {
		return nil, fmt.Errorf("failed to start MongoDB session: %w", err)
	}
	defer session.EndSession(context.Background())

	wrapper := func(sc mongo.SessionContext) (interface{}, error) {
		return cb(sc)
	}
	return session.WithTransaction(ctx, wrapper)
}

// Orchestrator coordinates one currency re-denomination for one tenant:
// cooldown gate, rate resolution, the atomic walk across all entity types,
// statistics aggregation, and the SUCCESS/FAILED log lifecycle.
type Orchestrator struct {
	mongoClient  *mongodb.MongoClient
	logsRepo     interfaces.ConversionLogsRepositoryInterface
	historyRepo  interfaces.CurrencyHistoryRepositoryInterface
	recordsRepo  interfaces.TenantRecordsRepositoryInterface
	rateResolver interfaces.RateResolverInterface
	events       interfaces.ConversionEventsPublisherInterface
}

func NewOrchestrator(
	mongoClient *mongodb.MongoClient,
	logsRepo interfaces.ConversionLogsRepositoryInterface,
	historyRepo interfaces.CurrencyHistoryRepositoryInterface,
	recordsRepo interfaces.TenantRecordsRepositoryInterface,
	rateResolver interfaces.RateResolverInterface,
	events interfaces.ConversionEventsPublisherInterface,
) *Orchestrator {
	return &Orchestrator{
		mongoClient:  mongoClient,
		logsRepo:     logsRepo,
		historyRepo:  historyRepo,
		recordsRepo:  recordsRepo,
		rateResolver: rateResolver,
		events:       events,
	}
}

func (o *Orchestrator) Convert(
	ctx context.Context,
	req *models.ConversionRequest,
) (*models.ConversionResult, error) {

	if req.FromCurrency == "" || req.ToCurrency == "" {
		return nil, models.NewValidationError(log_messages.ErrorMissingCurrencyCodes)
	}

	// Outer identity short-circuit: no transaction, no log, no history.
	if req.FromCurrency == req.ToCurrency {
		logger.CtxInfo(ctx, log_messages.SkippedIdenticalCurrencyConversion,
			slog.String("tenant_id", req.Caller.TenantID),
			slog.String("currency", req.FromCurrency),
		)
		return &models.ConversionResult{
			ExchangeRate: 1,
			FromCurrency: req.FromCurrency,
			ToCurrency:   req.ToCurrency,
		}, nil
	}

	if err := o.checkCooldown(ctx, req.Caller.TenantID); err != nil {
		return nil, err
	}

	rate := o.rateResolver.ResolveRate(ctx, req.FromCurrency, req.ToCurrency)

	txResult, txErr := runTransaction(ctx, o.mongoClient, func(txCtx context.Context) (interface{}, error) {
		conversionID, err := o.logsRepo.CreatePartial(txCtx, o.buildLogEntry(req, rate))
		if err != nil {
			return nil, err
		}

		var stats storemodels.ConversionStatistics
		for _, target := range consts.ConversionTargets {
			if err := o.convertEntityType(txCtx, req, target, rate, conversionID, &stats); err != nil {
				return nil, err
			}
		}

		if err := o.logsRepo.MarkSuccess(txCtx, conversionID, stats); err != nil {
			return nil, err
		}

		return &stats, nil
	})
	if txErr != nil {
		logger.CtxError(ctx, log_messages.ErrorConversionTransactionFailed, txErr,
			slog.String("tenant_id", req.Caller.TenantID),
		)
		o.logFailedAttempt(ctx, req, rate, txErr)
		o.publishOutcome(ctx, req, rate, consts.StatusFailed, 0, txErr)
		return nil, txErr
	}

	stats := txResult.(*storemodels.ConversionStatistics)

	logger.CtxInfo(ctx, log_messages.SuccessConversionCommitted,
		slog.String("tenant_id", req.Caller.TenantID),
		slog.String("from", req.FromCurrency),
		slog.String("to", req.ToCurrency),
		slog.Float64("rate", rate),
		slog.Int("total_records_updated", stats.TotalRecordsUpdated),
	)

	o.publishOutcome(ctx, req, rate, consts.StatusSuccess, stats.TotalRecordsUpdated, nil)

	return &models.ConversionResult{
		ExchangeRate: rate,
		FromCurrency: req.FromCurrency,
		ToCurrency:   req.ToCurrency,
		Statistics:   stats,
	}, nil
}

// checkCooldown rejects the request when the tenant already committed a
// successful conversion inside the cooldown window. The throttle is
// tenant-global: any currency pair counts.
func (o *Orchestrator) checkCooldown(ctx context.Context, tenantID string) error {
	since := time.Now().UTC().Add(-consts.CooldownWindow)

	prior, err := o.logsRepo.FindRecentSuccess(ctx, tenantID, since)
	if err != nil {
		return err
	}
	if prior == nil {
		return nil
	}

	logger.CtxWarn(ctx, log_messages.ErrorConversionCooldownActive,
		slog.String("tenant_id", tenantID),
		slog.String("prior_conversion_id", prior.ID.Hex()),
	)
	return &models.CooldownActiveError{
		FromCurrency: prior.FromCurrency,
		ToCurrency:   prior.ToCurrency,
		Timestamp:    prior.Timestamp,
		ConvertedBy:  prior.ConvertedBy,
	}
}

// convertEntityType processes one entity type inside the transaction:
// locate eligible documents, convert each, write the update and its
// history snapshot, and bump the counter. Documents with no eligible
// positive field are skipped without any write.
func (o *Orchestrator) convertEntityType(
	ctx context.Context,
	req *models.ConversionRequest,
	target consts.ConversionTarget,
	rate float64,
	conversionID primitive.ObjectID,
	stats *storemodels.ConversionStatistics,
) error {

	docs, err := o.recordsRepo.FindEligible(ctx, target.Collection, req.Caller.TenantID, target.Fields)
	if err != nil {
		return err
	}

	for _, doc := range docs {
		updates, originals := ConvertFields(doc, target.Fields, rate)
		if len(updates) == 0 {
			continue
		}

		entityID, ok := doc["_id"].(primitive.ObjectID)
		if !ok {
			return fmt.Errorf("document in %s has a non-ObjectID _id", target.Collection)
		}

		if err := o.recordsRepo.UpdateFields(ctx, target.Collection, entityID, updates); err != nil {
			return err
		}

		history := &storemodels.CurrencyHistory{
			TenantID:        req.Caller.TenantID,
			ConversionID:    conversionID,
			EntityType:      target.EntityType,
			EntityID:        entityID,
			OriginalValues:  originals,
			ConvertedValues: updates,
			FromCurrency:    req.FromCurrency,
			ToCurrency:      req.ToCurrency,
			ExchangeRate:    rate,
		}
		if err := o.historyRepo.Record(ctx, history); err != nil {
			return err
		}

		stats.Increment(target.EntityType)
	}

	return nil
}

func (o *Orchestrator) buildLogEntry(req *models.ConversionRequest, rate float64) *storemodels.ConversionLog {
	return &storemodels.ConversionLog{
		TenantID:      req.Caller.TenantID,
		FromCurrency:  req.FromCurrency,
		ToCurrency:    req.ToCurrency,
		ExchangeRate:  rate,
		ConvertedBy:   req.Caller.UserEmail,
		ConvertedByID: req.Caller.UserID,
		Role:          req.Caller.Role,
		IPAddress:     req.Caller.IPAddress,
		UserAgent:     req.Caller.UserAgent,
		Timestamp:     time.Now().UTC(),
	}
}

// logFailedAttempt writes the standalone FAILED entry after rollback.
// Best-effort: a failure here is logged and swallowed so the caller still
// receives the original error.
func (o *Orchestrator) logFailedAttempt(
	ctx context.Context,
	req *models.ConversionRequest,
	rate float64,
	cause error,
) {
	entry := o.buildLogEntry(req, rate)
	entry.ErrorMessage = cause.Error()

	if err := o.logsRepo.CreateFailed(ctx, entry); err != nil {
		logger.CtxError(ctx, log_messages.ErrorWritingFailedConversionLog, err,
			slog.String("tenant_id", req.Caller.TenantID),
		)
	}
}

func (o *Orchestrator) publishOutcome(
	ctx context.Context,
	req *models.ConversionRequest,
	rate float64,
	status consts.ConversionStatus,
	totalUpdated int,
	cause error,
) {
	if o.events == nil {
		return
	}

	event := models.ConversionEventMessage{
		TenantID:            req.Caller.TenantID,
		Status:              status,
		FromCurrency:        req.FromCurrency,
		ToCurrency:          req.ToCurrency,
		ExchangeRate:        rate,
		TotalRecordsUpdated: totalUpdated,
		ConvertedBy:         req.Caller.UserEmail,
		Timestamp:           time.Now().UTC(),
	}
	if cause != nil {
		event.ErrorMessage = cause.Error()
	}

	// Audit fan-out is best-effort, the publisher logs its own failures.
	if err := o.events.PublishOutcome(ctx, event); err != nil {
		logger.CtxError(ctx, log_messages.ErrorPublishingConversionEvent, err,
			slog.String("tenant_id", req.Caller.TenantID),
		)
	}
}
