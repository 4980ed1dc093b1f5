package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"currencyconversion/internal/pkg/consts"
)

func TestStatisticsIncrement(t *testing.T) {
	var stats ConversionStatistics

	stats.Increment(consts.EntityCourse)
	stats.Increment(consts.EntityCourse)
	stats.Increment(consts.EntityPayment)
	stats.Increment(consts.EntityNotification)
	stats.Increment(consts.EntityExpense)

	assert.Equal(t, 2, stats.CoursesUpdated)
	assert.Equal(t, 1, stats.PaymentsUpdated)
	assert.Equal(t, 1, stats.NotificationsUpdated)
	assert.Equal(t, 1, stats.ExpensesUpdated)
	assert.Equal(t, 0, stats.IncomesUpdated)
	assert.Equal(t, 5, stats.TotalRecordsUpdated)
}

func TestStatisticsIncrementEveryEntityType(t *testing.T) {
	var stats ConversionStatistics

	for _, target := range consts.ConversionTargets {
		stats.Increment(target.EntityType)
	}

	assert.Equal(t, 1, stats.CoursesUpdated)
	assert.Equal(t, 1, stats.PaymentsUpdated)
	assert.Equal(t, 1, stats.ProductsUpdated)
	assert.Equal(t, 1, stats.MonthlySubscriptionsUpdated)
	assert.Equal(t, 1, stats.SchedulesUpdated)
	assert.Equal(t, 1, stats.NotificationsUpdated)
	assert.Equal(t, 1, stats.IncomesUpdated)
	assert.Equal(t, 1, stats.ExpensesUpdated)
	assert.Equal(t, len(consts.ConversionTargets), stats.TotalRecordsUpdated)
}
