package consts

import "time"

type EntityType string

const (
	EntityCourse              EntityType = "Course"
	EntityPayment             EntityType = "Payment"
	EntityProduct             EntityType = "Product"
	EntityMonthlySubscription EntityType = "MonthlySubscription"
	EntitySchedule            EntityType = "Schedule"
	EntityNotification        EntityType = "Notification"
	EntityIncome              EntityType = "Income"
	EntityExpense             EntityType = "Expense"
)

type ConversionStatus string

const (
	StatusPartial ConversionStatus = "PARTIAL"
	StatusSuccess ConversionStatus = "SUCCESS"
	StatusFailed  ConversionStatus = "FAILED"
)

const (
	// CooldownWindow is the tenant-level throttle after a successful conversion.
	CooldownWindow = 24 * time.Hour

	// RateCacheTTL matches the provider-side caching window for spot rates.
	RateCacheTTL = time.Hour
)

// ConversionTarget binds an entity type to its collection and the monetary
// fields eligible for re-denomination. Nested fields use dotted names.
type ConversionTarget struct {
	EntityType EntityType
	Collection string
	Fields     []string
}

// ConversionTargets lists every convertible entity type. The order here is
// the processing order of a conversion run and must stay deterministic.
var ConversionTargets = []ConversionTarget{
	{EntityType: EntityCourse, Collection: CoursesCollection, Fields: []string{"price"}},
	{EntityType: EntityPayment, Collection: PaymentsCollection, Fields: []string{
		"courseFee", "courseRegistrationFee", "studentRegistrationFee", "outstandingAmount", "receivedAmount",
	}},
	{EntityType: EntityProduct, Collection: ProductsCollection, Fields: []string{"price"}},
	{EntityType: EntityMonthlySubscription, Collection: MonthlySubscriptionsCollection, Fields: []string{
		"courseFee", "registrationFee", "originalMonthlyAmount", "discountedMonthlyAmount",
		"totalPaidAmount", "totalExpectedAmount", "remainingAmount",
	}},
	{EntityType: EntitySchedule, Collection: SchedulesCollection, Fields: []string{"price"}},
	{EntityType: EntityNotification, Collection: NotificationsCollection, Fields: []string{
		"metadata.amount", "metadata.dueAmount",
	}},
	{EntityType: EntityIncome, Collection: IncomesCollection, Fields: []string{"amount", "totalAmount"}},
	{EntityType: EntityExpense, Collection: ExpensesCollection, Fields: []string{"amount", "totalAmount"}},
}
