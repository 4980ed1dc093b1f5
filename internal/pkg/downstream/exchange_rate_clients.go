package downstream

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"currencyconversion/internal/pkg/config"
	"currencyconversion/internal/pkg/log_messages"
	"currencyconversion/internal/pkg/logger"
	"currencyconversion/internal/pkg/models"
)

// PrimaryRateClient queries the primary FX provider, which returns the
// whole rate table for a base currency: GET {base}/v4/latest/{from}.
type PrimaryRateClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewPrimaryRateClient(cfg config.ExchangeRateConfig) *PrimaryRateClient {
	return &PrimaryRateClient{
		baseURL: cfg.PrimaryBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

func (c *PrimaryRateClient) FetchRate(ctx context.Context, from, to string) (float64, error) {

	requestURL := fmt.Sprintf("%s/v4/latest/%s", c.baseURL, url.PathEscape(from))

	body, err := fetchRatesBody(ctx, c.httpClient, requestURL)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorPrimaryRateProviderFailed, err, slog.String("url", requestURL))
		return 0, err
	}

	rate, ok := body.Rates[to]
	if !ok || rate <= 0 {
		logger.CtxWarn(ctx, log_messages.ErrorRateMissingFromProviderBody,
			slog.String("provider", "primary"),
			slog.String("to", to),
		)
		return 0, fmt.Errorf("primary provider has no rate for %s", to)
	}

	return rate, nil
}

// SecondaryRateClient queries the failover FX provider with a direct pair
// lookup: GET {base}/latest?from={from}&to={to}.
type SecondaryRateClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewSecondaryRateClient(cfg config.ExchangeRateConfig) *SecondaryRateClient {
	return &SecondaryRateClient{
		baseURL: cfg.SecondaryBaseURL,
		httpClient: &http.Client{
			Timeout: cfg.HTTPTimeout,
		},
	}
}

func (c *SecondaryRateClient) FetchRate(ctx context.Context, from, to string) (float64, error) {

	requestURL := fmt.Sprintf("%s/latest?from=%s&to=%s", c.baseURL, url.QueryEscape(from), url.QueryEscape(to))

	body, err := fetchRatesBody(ctx, c.httpClient, requestURL)
	if err != nil {
		logger.CtxError(ctx, log_messages.ErrorSecondaryRateProviderFailed, err, slog.String("url", requestURL))
		return 0, err
	}

	rate, ok := body.Rates[to]
	if !ok || rate <= 0 {
		logger.CtxWarn(ctx, log_messages.ErrorRateMissingFromProviderBody,
			slog.String("provider", "secondary"),
			slog.String("to", to),
		)
		return 0, fmt.Errorf("secondary provider has no rate for %s", to)
	}

	return rate, nil
}

func fetchRatesBody(ctx context.Context, client *http.Client, requestURL string) (*models.ExchangeRateResponse, error) {

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build rate request: %w", err)
	}

	httpResp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("rate request failed: %w", err)
	}

	defer func() {
		if cerr := httpResp.Body.Close(); cerr != nil {
			logger.CtxError(ctx, "Failed to close rate provider response body", cerr)
		}
	}()

	if httpResp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("rate provider returned status %d", httpResp.StatusCode)
	}

	var body models.ExchangeRateResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf(log_messages.ErrorDecodingRateProviderResponse+": %w", err)
	}

	return &body, nil
}
