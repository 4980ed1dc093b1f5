package models

import (
	"time"

	"currencyconversion/internal/pkg/consts"
)

// ConversionEventMessage is the audit event published to the compliance
// topic after a conversion attempt has settled.
type ConversionEventMessage struct {
	TenantID            string                  `json:"tenantId"`
	Status              consts.ConversionStatus `json:"status"`
	FromCurrency        string                  `json:"fromCurrency"`
	ToCurrency          string                  `json:"toCurrency"`
	ExchangeRate        float64                 `json:"exchangeRate"`
	TotalRecordsUpdated int                     `json:"totalRecordsUpdated"`
	ConvertedBy         string                  `json:"convertedBy"`
	ErrorMessage        string                  `json:"errorMessage,omitempty"`
	Timestamp           time.Time               `json:"timestamp"`
}
