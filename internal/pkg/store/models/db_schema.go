package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"currencyconversion/internal/pkg/consts"
)

// ConversionStatistics holds the per-entity-type counters of one conversion.
type ConversionStatistics struct {
	CoursesUpdated              int `bson:"coursesUpdated" json:"coursesUpdated"`
	PaymentsUpdated             int `bson:"paymentsUpdated" json:"paymentsUpdated"`
	ProductsUpdated             int `bson:"productsUpdated" json:"productsUpdated"`
	MonthlySubscriptionsUpdated int `bson:"monthlySubscriptionsUpdated" json:"monthlySubscriptionsUpdated"`
	SchedulesUpdated            int `bson:"schedulesUpdated" json:"schedulesUpdated"`
	NotificationsUpdated        int `bson:"notificationsUpdated" json:"notificationsUpdated"`
	IncomesUpdated              int `bson:"incomesUpdated" json:"incomesUpdated"`
	ExpensesUpdated             int `bson:"expensesUpdated" json:"expensesUpdated"`
	TotalRecordsUpdated         int `bson:"totalRecordsUpdated" json:"totalRecordsUpdated"`
}

// Increment bumps the counter for the given entity type and the total.
func (s *ConversionStatistics) Increment(entityType consts.EntityType) {
	switch entityType {
	case consts.EntityCourse:
		s.CoursesUpdated++
	case consts.EntityPayment:
		s.PaymentsUpdated++
	case consts.EntityProduct:
		s.ProductsUpdated++
	case consts.EntityMonthlySubscription:
		s.MonthlySubscriptionsUpdated++
	case consts.EntitySchedule:
		s.SchedulesUpdated++
	case consts.EntityNotification:
		s.NotificationsUpdated++
	case consts.EntityIncome:
		s.IncomesUpdated++
	case consts.EntityExpense:
		s.ExpensesUpdated++
	}
	s.TotalRecordsUpdated++
}

// ConversionLog is the append-only status record for one conversion attempt.
type ConversionLog struct {
	ID            primitive.ObjectID      `bson:"_id,omitempty"`
	TenantID      string                  `bson:"tenantId"`
	FromCurrency  string                  `bson:"fromCurrency"`
	ToCurrency    string                  `bson:"toCurrency"`
	ExchangeRate  float64                 `bson:"exchangeRate"`
	ConvertedBy   string                  `bson:"convertedBy"`
	ConvertedByID string                  `bson:"convertedById"`
	Role          string                  `bson:"role"`
	IPAddress     string                  `bson:"ipAddress"`
	UserAgent     string                  `bson:"userAgent"`
	Status        consts.ConversionStatus `bson:"status"`
	Statistics    ConversionStatistics    `bson:"statistics"`
	ErrorMessage  string                  `bson:"errorMessage,omitempty"`
	Timestamp     time.Time               `bson:"timestamp"`
}

// CurrencyHistory is the reversible before/after snapshot of one mutated
// document. It duplicates the parent conversion's currencies and rate so a
// single record is sufficient, alone, to reverse its document.
type CurrencyHistory struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	TenantID        string             `bson:"tenantId"`
	ConversionID    primitive.ObjectID `bson:"conversionId"`
	EntityType      consts.EntityType  `bson:"entityType"`
	EntityID        primitive.ObjectID `bson:"entityId"`
	OriginalValues  map[string]float64 `bson:"originalValues"`
	ConvertedValues map[string]float64 `bson:"convertedValues"`
	FromCurrency    string             `bson:"fromCurrency"`
	ToCurrency      string             `bson:"toCurrency"`
	ExchangeRate    float64            `bson:"exchangeRate"`
	CreatedAt       time.Time          `bson:"createdAt"`
}
