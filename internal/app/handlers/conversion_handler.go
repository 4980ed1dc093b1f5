package handlers

import (
	"errors"
	"net/http"

	"currencyconversion/internal/app/middleware"
	"currencyconversion/internal/pkg/models"
	"currencyconversion/internal/service/interfaces"

	"github.com/gin-gonic/gin"
)

type ConversionHandler struct {
	service interfaces.ConversionServiceInterface
}

func NewConversionHandler(service interfaces.ConversionServiceInterface) *ConversionHandler {
	return &ConversionHandler{service: service}
}

// ConvertCurrency handles the tenant-wide currency conversion request.
func (h *ConversionHandler) ConvertCurrency(c *gin.Context) {
	caller, ok := middleware.CallerFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"success": false,
			"message": "Unauthorized",
		})
		return
	}

	var body models.ConvertCurrencyRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": err.Error(),
		})
		return
	}

	req := &models.ConversionRequest{
		Caller:       caller,
		FromCurrency: body.FromCurrency,
		ToCurrency:   body.ToCurrency,
	}

	result, err := h.service.Convert(c.Request.Context(), req)
	if err != nil {
		h.writeConversionError(c, err)
		return
	}

	response := gin.H{
		"success":      true,
		"exchangeRate": result.ExchangeRate,
		"fromCurrency": result.FromCurrency,
		"toCurrency":   result.ToCurrency,
	}
	if result.Statistics != nil {
		response["statistics"] = result.Statistics
	}
	c.JSON(http.StatusOK, response)
}

func (h *ConversionHandler) writeConversionError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": validationErr.Message,
		})
		return
	}

	var cooldownErr *models.CooldownActiveError
	if errors.As(err, &cooldownErr) {
		c.JSON(http.StatusTooManyRequests, gin.H{
			"success":        false,
			"message":        "a conversion was already performed in the last 24 hours",
			"lastConversion": cooldownErr,
		})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{
		"success": false,
		"message": "currency conversion failed",
		"details": err.Error(),
	})
}
