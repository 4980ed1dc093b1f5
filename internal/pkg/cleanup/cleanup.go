package cleanup

import (
	"context"

	mongodb "currencyconversion/internal/pkg/db/mongo"
	redisdb "currencyconversion/internal/pkg/db/redis"
	"currencyconversion/internal/pkg/kafka"
	"currencyconversion/internal/pkg/logger"
)

func CleanupResources(
	ctx context.Context,
	mongoClient *mongodb.MongoClient,
	redisClient *redisdb.RedisClient,
	producer *kafka.KafkaProducer,
) {
	if mongoClient != nil && mongoClient.Client != nil {
		if err := mongodb.Disconnect(mongoClient.Client); err != nil {
			logger.CtxError(ctx, "Failed to disconnect from MongoDB", err)
		}
	}
	if redisClient != nil && redisClient.Client != nil {
		if err := redisdb.Disconnect(redisClient.Client); err != nil {
			logger.CtxError(ctx, "Failed to disconnect from Redis", err)
		}
	}
	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.CtxError(ctx, "Failed to close Kafka producer", err)
		}
	}
}
