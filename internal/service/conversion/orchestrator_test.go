package conversion

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"currencyconversion/internal/pkg/consts"
	mongodb "currencyconversion/internal/pkg/db/mongo"
	"currencyconversion/internal/pkg/models"
	storemodels "currencyconversion/internal/pkg/store/models"
)

// minimal mocks implementing required methods

type mockLogsRepo struct {
	recent         *storemodels.ConversionLog
	recentErr      error
	partialID      primitive.ObjectID
	partialErr     error
	partialEntry   *storemodels.ConversionLog
	successID      primitive.ObjectID
	successStats   storemodels.ConversionStatistics
	successCalled  bool
	failedEntry    *storemodels.ConversionLog
	failedCalled   bool
	createFailsErr error
}

func (m *mockLogsRepo) FindRecentSuccess(ctx context.Context, tenantID string, since time.Time) (*storemodels.ConversionLog, error) {
	return m.recent, m.recentErr
}

func (m *mockLogsRepo) CreatePartial(ctx context.Context, entry *storemodels.ConversionLog) (primitive.ObjectID, error) {
	m.partialEntry = entry
	if m.partialErr != nil {
		return primitive.NilObjectID, m.partialErr
	}
	if m.partialID.IsZero() {
		m.partialID = primitive.NewObjectID()
	}
	return m.partialID, nil
}

func (m *mockLogsRepo) MarkSuccess(ctx context.Context, id primitive.ObjectID, stats storemodels.ConversionStatistics) error {
	m.successCalled = true
	m.successID = id
	m.successStats = stats
	return nil
}

func (m *mockLogsRepo) CreateFailed(ctx context.Context, entry *storemodels.ConversionLog) error {
	m.failedCalled = true
	m.failedEntry = entry
	return m.createFailsErr
}

type mockHistoryRepo struct {
	entries []*storemodels.CurrencyHistory
	err     error
}

func (m *mockHistoryRepo) Record(ctx context.Context, entry *storemodels.CurrencyHistory) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, entry)
	return nil
}

type mockRecordsRepo struct {
	docs       map[string][]bson.M
	findErr    error
	updates    []string
	updateErr  error
	updatedIDs []primitive.ObjectID
}

func (m *mockRecordsRepo) FindEligible(ctx context.Context, collection, tenantID string, fields []string) ([]bson.M, error) {
	if m.findErr != nil {
		return nil, m.findErr
	}
	return m.docs[collection], nil
}

func (m *mockRecordsRepo) UpdateFields(ctx context.Context, collection string, id primitive.ObjectID, updates map[string]float64) error {
	if m.updateErr != nil {
		return m.updateErr
	}
	m.updates = append(m.updates, collection)
	m.updatedIDs = append(m.updatedIDs, id)
	return nil
}

type fixedRateResolver struct {
	rate float64
}

func (r *fixedRateResolver) ResolveRate(ctx context.Context, from, to string) float64 {
	return r.rate
}

type mockEventsPublisher struct {
	events []models.ConversionEventMessage
	err    error
}

func (m *mockEventsPublisher) PublishOutcome(ctx context.Context, event models.ConversionEventMessage) error {
	m.events = append(m.events, event)
	return m.err
}

// stubTransaction replaces the session-backed transaction runner with a
// direct callback invocation for the duration of one test.
func stubTransaction(t *testing.T) {
	t.Helper()
	old := runTransaction
	runTransaction = func(ctx context.Context, mc *mongodb.MongoClient, cb func(ctx context.Context) (interface{}, error)) (interface{}, error) {
		return cb(ctx)
	}
	t.Cleanup(func() { runTransaction = old })
}

func newTestRequest() *models.ConversionRequest {
	return &models.ConversionRequest{
		Caller: models.CallerContext{
			TenantID:  "tenant-1",
			UserID:    "user-1",
			UserEmail: "admin@academy.test",
			Role:      "admin",
			IPAddress: "10.0.0.1",
			UserAgent: "test-agent",
		},
		FromCurrency: "USD",
		ToCurrency:   "INR",
	}
}

func TestConvertRejectsMissingCurrencies(t *testing.T) {
	orch := NewOrchestrator(nil, &mockLogsRepo{}, &mockHistoryRepo{}, &mockRecordsRepo{}, &fixedRateResolver{rate: 1}, nil)

	req := newTestRequest()
	req.ToCurrency = ""

	_, err := orch.Convert(context.Background(), req)

	var validationErr *models.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestConvertIdenticalCurrenciesShortCircuits(t *testing.T) {
	logs := &mockLogsRepo{}
	orch := NewOrchestrator(nil, logs, &mockHistoryRepo{}, &mockRecordsRepo{}, &fixedRateResolver{rate: 99}, nil)

	req := newTestRequest()
	req.ToCurrency = req.FromCurrency

	result, err := orch.Convert(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, float64(1), result.ExchangeRate)
	assert.Nil(t, result.Statistics)
	assert.Nil(t, logs.partialEntry)
	assert.False(t, logs.failedCalled)
}

func TestConvertCooldownActive(t *testing.T) {
	prior := &storemodels.ConversionLog{
		ID:           primitive.NewObjectID(),
		FromCurrency: "EUR",
		ToCurrency:   "USD",
		ConvertedBy:  "owner@academy.test",
		Timestamp:    time.Now().UTC().Add(-2 * time.Hour),
	}
	logs := &mockLogsRepo{recent: prior}
	orch := NewOrchestrator(nil, logs, &mockHistoryRepo{}, &mockRecordsRepo{}, &fixedRateResolver{rate: 2}, nil)

	_, err := orch.Convert(context.Background(), newTestRequest())

	var cooldownErr *models.CooldownActiveError
	require.ErrorAs(t, err, &cooldownErr)
	assert.Equal(t, "EUR", cooldownErr.FromCurrency)
	assert.Equal(t, "USD", cooldownErr.ToCurrency)
	assert.Equal(t, "owner@academy.test", cooldownErr.ConvertedBy)
	assert.Equal(t, prior.Timestamp, cooldownErr.Timestamp)
	assert.Nil(t, logs.partialEntry)
}

func TestConvertCooldownExpiredProceeds(t *testing.T) {
	stubTransaction(t)

	logs := &mockLogsRepo{}
	records := &mockRecordsRepo{docs: map[string][]bson.M{}}
	orch := NewOrchestrator(nil, logs, &mockHistoryRepo{}, records, &fixedRateResolver{rate: 2}, nil)

	result, err := orch.Convert(context.Background(), newTestRequest())

	require.NoError(t, err)
	assert.True(t, logs.successCalled)
	assert.Equal(t, 0, result.Statistics.TotalRecordsUpdated)
}

func TestConvertHappyPath(t *testing.T) {
	stubTransaction(t)

	courseID := primitive.NewObjectID()
	paymentID := primitive.NewObjectID()
	incomeID := primitive.NewObjectID()

	records := &mockRecordsRepo{docs: map[string][]bson.M{
		consts.CoursesCollection: {
			{"_id": courseID, "price": 1000.0},
		},
		consts.PaymentsCollection: {
			{"_id": paymentID, "courseFee": 500.0, "receivedAmount": 0.0},
		},
		consts.IncomesCollection: {
			{"_id": incomeID, "amount": 50.0, "totalAmount": 75.0},
		},
	}}
	logs := &mockLogsRepo{}
	history := &mockHistoryRepo{}
	events := &mockEventsPublisher{}
	orch := NewOrchestrator(nil, logs, history, records, &fixedRateResolver{rate: 2}, events)

	result, err := orch.Convert(context.Background(), newTestRequest())

	require.NoError(t, err)
	assert.Equal(t, float64(2), result.ExchangeRate)

	stats := result.Statistics
	require.NotNil(t, stats)
	assert.Equal(t, 1, stats.CoursesUpdated)
	assert.Equal(t, 1, stats.PaymentsUpdated)
	assert.Equal(t, 1, stats.IncomesUpdated)
	assert.Equal(t, 0, stats.ExpensesUpdated)
	assert.Equal(t, 3, stats.TotalRecordsUpdated)

	// PARTIAL entry was created, then the same id marked SUCCESS.
	require.NotNil(t, logs.partialEntry)
	assert.Equal(t, "tenant-1", logs.partialEntry.TenantID)
	assert.Equal(t, "admin@academy.test", logs.partialEntry.ConvertedBy)
	assert.True(t, logs.successCalled)
	assert.Equal(t, logs.partialID, logs.successID)
	assert.Equal(t, *stats, logs.successStats)

	// One history snapshot per mutated document, tied to the conversion.
	require.Len(t, history.entries, 3)
	for _, entry := range history.entries {
		assert.Equal(t, logs.partialID, entry.ConversionID)
		assert.Equal(t, float64(2), entry.ExchangeRate)
		assert.Equal(t, "USD", entry.FromCurrency)
		assert.Equal(t, "INR", entry.ToCurrency)
		assert.Equal(t, len(entry.OriginalValues), len(entry.ConvertedValues))
	}
	assert.Equal(t, map[string]float64{"price": 1000}, history.entries[0].OriginalValues)
	assert.Equal(t, map[string]float64{"price": 2000}, history.entries[0].ConvertedValues)

	// Outcome event published after commit.
	require.Len(t, events.events, 1)
	assert.Equal(t, consts.StatusSuccess, events.events[0].Status)
	assert.Equal(t, 3, events.events[0].TotalRecordsUpdated)
}

func TestConvertEntityOrderIsFixed(t *testing.T) {
	stubTransaction(t)

	docs := map[string][]bson.M{}
	for _, target := range consts.ConversionTargets {
		doc := bson.M{"_id": primitive.NewObjectID()}
		if target.Collection == consts.NotificationsCollection {
			doc["metadata"] = bson.M{"amount": 10.0}
		} else {
			doc[target.Fields[0]] = 10.0
		}
		docs[target.Collection] = []bson.M{doc}
	}
	records := &mockRecordsRepo{docs: docs}
	orch := NewOrchestrator(nil, &mockLogsRepo{}, &mockHistoryRepo{}, records, &fixedRateResolver{rate: 3}, nil)

	_, err := orch.Convert(context.Background(), newTestRequest())

	require.NoError(t, err)
	assert.Equal(t, []string{
		consts.CoursesCollection,
		consts.PaymentsCollection,
		consts.ProductsCollection,
		consts.MonthlySubscriptionsCollection,
		consts.SchedulesCollection,
		consts.NotificationsCollection,
		consts.IncomesCollection,
		consts.ExpensesCollection,
	}, records.updates)
}

func TestConvertSkipsDocumentsWithNoEligibleFields(t *testing.T) {
	stubTransaction(t)

	records := &mockRecordsRepo{docs: map[string][]bson.M{
		consts.CoursesCollection: {
			{"_id": primitive.NewObjectID(), "price": 0.0},
			{"_id": primitive.NewObjectID(), "title": "no price at all"},
		},
	}}
	history := &mockHistoryRepo{}
	orch := NewOrchestrator(nil, &mockLogsRepo{}, history, records, &fixedRateResolver{rate: 2}, nil)

	result, err := orch.Convert(context.Background(), newTestRequest())

	require.NoError(t, err)
	assert.Empty(t, records.updates)
	assert.Empty(t, history.entries)
	assert.Equal(t, 0, result.Statistics.TotalRecordsUpdated)
}

func TestConvertTransactionFailureWritesFailedLog(t *testing.T) {
	stubTransaction(t)

	updateErr := errors.New("write conflict")
	records := &mockRecordsRepo{
		docs: map[string][]bson.M{
			consts.CoursesCollection: {{"_id": primitive.NewObjectID(), "price": 10.0}},
		},
		updateErr: updateErr,
	}
	logs := &mockLogsRepo{}
	events := &mockEventsPublisher{}
	orch := NewOrchestrator(nil, logs, &mockHistoryRepo{}, records, &fixedRateResolver{rate: 2}, events)

	_, err := orch.Convert(context.Background(), newTestRequest())

	require.ErrorIs(t, err, updateErr)
	assert.False(t, logs.successCalled)

	// Standalone FAILED entry carries the cause.
	require.True(t, logs.failedCalled)
	assert.Equal(t, updateErr.Error(), logs.failedEntry.ErrorMessage)

	require.Len(t, events.events, 1)
	assert.Equal(t, consts.StatusFailed, events.events[0].Status)
	assert.Equal(t, updateErr.Error(), events.events[0].ErrorMessage)
}

func TestConvertFailedLogWriteFailureIsSwallowed(t *testing.T) {
	stubTransaction(t)

	records := &mockRecordsRepo{findErr: errors.New("network error")}
	logs := &mockLogsRepo{createFailsErr: errors.New("mongo down")}
	orch := NewOrchestrator(nil, logs, &mockHistoryRepo{}, records, &fixedRateResolver{rate: 2}, nil)

	_, err := orch.Convert(context.Background(), newTestRequest())

	assert.EqualError(t, err, "network error")
	assert.True(t, logs.failedCalled)
}

func TestConvertNonObjectIDDocumentAborts(t *testing.T) {
	stubTransaction(t)

	records := &mockRecordsRepo{docs: map[string][]bson.M{
		consts.CoursesCollection: {{"_id": "legacy-string-id", "price": 10.0}},
	}}
	logs := &mockLogsRepo{}
	orch := NewOrchestrator(nil, logs, &mockHistoryRepo{}, records, &fixedRateResolver{rate: 2}, nil)

	_, err := orch.Convert(context.Background(), newTestRequest())

	require.Error(t, err)
	assert.False(t, logs.successCalled)
	assert.True(t, logs.failedCalled)
}

func TestConvertCooldownLookupErrorPropagates(t *testing.T) {
	lookupErr := errors.New("mongo timeout")
	logs := &mockLogsRepo{recentErr: lookupErr}
	orch := NewOrchestrator(nil, logs, &mockHistoryRepo{}, &mockRecordsRepo{}, &fixedRateResolver{rate: 2}, nil)

	_, err := orch.Convert(context.Background(), newTestRequest())

	require.ErrorIs(t, err, lookupErr)
}
