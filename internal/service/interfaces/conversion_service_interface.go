package interfaces

import (
	"context"

	"currencyconversion/internal/pkg/models"
)

type ConversionServiceInterface interface {
	Convert(ctx context.Context, req *models.ConversionRequest) (*models.ConversionResult, error)
}
