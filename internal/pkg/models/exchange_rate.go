package models

// ExchangeRateResponse is the shared response shape of both FX providers:
// a rates table keyed by currency code. The primary returns the whole
// table for the base currency, the secondary only the requested pair.
type ExchangeRateResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}
