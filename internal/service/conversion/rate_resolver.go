package conversion

import (
	"context"
	"log/slog"

	"currencyconversion/internal/pkg/log_messages"
	"currencyconversion/internal/pkg/logger"
	"currencyconversion/internal/service/interfaces"
)

// RateResolver resolves a spot rate with provider failover. Resolution is
// fail-open: when both providers are down it returns 1 and logs a warning,
// so the conversion completes as a numeric no-op instead of blocking on
// provider availability.
type RateResolver struct {
	primary   interfaces.RateProviderInterface
	secondary interfaces.RateProviderInterface
	cache     interfaces.RedisStoreOperations
}

// NewRateResolver wires the two providers and an optional rate cache.
// Pass a nil cache to disable caching.
func NewRateResolver(
	primary, secondary interfaces.RateProviderInterface,
	cache interfaces.RedisStoreOperations,
) *RateResolver {
	return &RateResolver{
		primary:   primary,
		secondary: secondary,
		cache:     cache,
	}
}

func (r *RateResolver) ResolveRate(ctx context.Context, from, to string) float64 {

	if from == to {
		return 1
	}

	if rate, found := r.cachedRate(ctx, from, to); found {
		logger.CtxDebug(ctx, "Using cached exchange rate",
			slog.String("from", from),
			slog.String("to", to),
			slog.Float64("rate", rate),
		)
		return rate
	}

	if rate, err := r.primary.FetchRate(ctx, from, to); err == nil {
		r.storeRate(ctx, from, to, rate)
		return rate
	}

	if rate, err := r.secondary.FetchRate(ctx, from, to); err == nil {
		r.storeRate(ctx, from, to, rate)
		return rate
	}

	logger.CtxWarn(ctx, log_messages.WarnExchangeRateFallback,
		slog.String("from", from),
		slog.String("to", to),
	)
	return 1
}

func (r *RateResolver) cachedRate(ctx context.Context, from, to string) (float64, bool) {
	if r.cache == nil {
		return 0, false
	}

	rate, found, err := r.cache.GetRate(ctx, from, to)
	if err != nil {
		logger.CtxWarn(ctx, "Exchange rate cache lookup failed", slog.Any("error", err))
		return 0, false
	}
	return rate, found
}

func (r *RateResolver) storeRate(ctx context.Context, from, to string, rate float64) {
	if r.cache == nil {
		return
	}

	// Cache failures must never fail rate resolution.
	if err := r.cache.SaveRate(ctx, from, to, rate); err != nil {
		logger.CtxWarn(ctx, "Failed to cache exchange rate", slog.Any("error", err))
	}
}
