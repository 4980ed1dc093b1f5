package router

import (
	"currencyconversion/internal/app/handlers"
	"currencyconversion/internal/app/middleware"
	"currencyconversion/internal/pkg/config"
	"currencyconversion/internal/pkg/consts"
	mongodb "currencyconversion/internal/pkg/db/mongo"
	"currencyconversion/internal/pkg/downstream"
	"currencyconversion/internal/pkg/store/impl/conversion_logs"
	"currencyconversion/internal/pkg/store/impl/currency_history"
	"currencyconversion/internal/pkg/store/impl/tenant_records"
	"currencyconversion/internal/pkg/store/repository"
	"currencyconversion/internal/service/conversion"
	"currencyconversion/internal/service/interfaces"
	kafkaService "currencyconversion/internal/service/kafka"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel"
)

func SetupRouter(
	cfg *config.AppConfig,
	mongoClient *mongodb.MongoClient,
	redisClient *redis.Client,
	producer interfaces.KafkaProducerInterface,
) *gin.Engine {

	r := gin.Default()
	meter := otel.Meter(consts.ServiceName)
	r.Use(otelgin.Middleware(consts.ServiceName))
	r.Use(middleware.NewMetricMiddleware(meter))

	redisAdapter := repository.NewRedisStoreAdapter(redisClient)

	logsRepo := conversion_logs.NewConversionLogsRepository(mongoClient)
	historyRepo := currency_history.NewCurrencyHistoryRepository(mongoClient)
	recordsRepo := tenant_records.NewTenantRecordsRepository(mongoClient)

	primaryClient := downstream.NewPrimaryRateClient(cfg.ExchangeRate)
	secondaryClient := downstream.NewSecondaryRateClient(cfg.ExchangeRate)
	rateResolver := conversion.NewRateResolver(primaryClient, secondaryClient, redisAdapter)

	eventsPublisher := kafkaService.NewConversionEventsPublisher(producer)

	orchestrator := conversion.NewOrchestrator(
		mongoClient,
		logsRepo,
		historyRepo,
		recordsRepo,
		rateResolver,
		eventsPublisher,
	)
	conversionHandler := handlers.NewConversionHandler(orchestrator)
	healthCheckHandler := handlers.NewHealthCheckHandler()

	r.POST("/AcademyServices/Currency/Convert", middleware.SessionContext(), conversionHandler.ConvertCurrency)
	r.GET("/AcademyServices/Currency/HealthCheck", healthCheckHandler.HealthCheck)

	return r
}
