package consts

const ServiceName = "currency-conversion"

// Mongo collection names.
const (
	CoursesCollection              = "courses"
	PaymentsCollection             = "payments"
	ProductsCollection             = "products"
	MonthlySubscriptionsCollection = "monthlysubscriptions"
	SchedulesCollection            = "schedules"
	NotificationsCollection        = "notifications"
	IncomesCollection              = "incomes"
	ExpensesCollection             = "expenses"

	ConversionLogsCollection  = "conversionlogs"
	CurrencyHistoryCollection = "currencyhistories"
)
