package interfaces

import "context"

// RateResolverInterface resolves a spot conversion rate between two
// currency codes. Resolution is fail-open: when every provider is
// unavailable the resolver returns 1 instead of an error, so callers can
// always proceed.
type RateResolverInterface interface {
	ResolveRate(ctx context.Context, from, to string) float64
}

// RateProviderInterface is one outbound FX provider.
type RateProviderInterface interface {
	FetchRate(ctx context.Context, from, to string) (float64, error)
}
