package main

import (
	"context"
	"fmt"
	"log"

	"currencyconversion/internal/app/router"
	"currencyconversion/internal/pkg/cleanup"
	config "currencyconversion/internal/pkg/config"
	mongodb "currencyconversion/internal/pkg/db/mongo"
	redisdb "currencyconversion/internal/pkg/db/redis"
	"currencyconversion/internal/pkg/kafka"
	"currencyconversion/internal/pkg/logger"
)

func main() {

	ctx := context.Background()

	cfg, err := config.LoadFromConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger.Init(cfg.Logging.LogLevel)

	// Connect to MongoDB
	mongoClient, err := mongodb.ConnectToMongoDB(ctx, cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	// Connect to Redis
	redisClient, err := redisdb.ConnectToRedis(ctx, cfg.Redis, nil)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	// Kafka producer for conversion audit events
	producer, err := kafka.NewKafkaProducer(cfg.Kafka)
	if err != nil {
		log.Fatalf("Failed to create kafka producer: %v", err)
	}

	defer cleanup.CleanupResources(ctx, mongoClient, redisClient, producer)

	server := router.SetupRouter(cfg, mongoClient, redisClient.Client, producer)
	port := cfg.Server.Port

	if err := server.Run(":" + fmt.Sprintf("%d", port)); err != nil {
		logger.CtxError(ctx, "Failed to start server", err)
	}
}
