package models

import (
	storemodels "currencyconversion/internal/pkg/store/models"
)

// CallerContext carries the identity resolved by the auth gateway plus the
// request provenance captured for audit. It is threaded explicitly through
// every call instead of living in ambient request state.
type CallerContext struct {
	TenantID  string
	UserID    string
	UserEmail string
	Role      string
	IPAddress string
	UserAgent string
}

// ConvertCurrencyRequest is the inbound HTTP body.
type ConvertCurrencyRequest struct {
	FromCurrency string `json:"fromCurrency"`
	ToCurrency   string `json:"toCurrency"`
}

// ConversionRequest is the orchestrator's input: currencies plus the
// already-authenticated caller.
type ConversionRequest struct {
	Caller       CallerContext
	FromCurrency string
	ToCurrency   string
}

// ConversionResult is returned to the handler on success. Statistics is nil
// when the identity short-circuit fired and no persistence work happened.
type ConversionResult struct {
	ExchangeRate float64
	FromCurrency string
	ToCurrency   string
	Statistics   *storemodels.ConversionStatistics
}
