package log_messages

const (
	ErrorMissingCurrencyCodes          = "fromCurrency and toCurrency are required"
	ErrorConversionCooldownActive      = "a currency conversion was already performed for this tenant in the last 24 hours"
	ErrorFetchingConversionLog         = "error fetching document from conversionlogs mongoDB"
	ErrorCreatingConversionLog         = "error creating conversionlogs document"
	ErrorUpdatingConversionLog         = "error updating conversionlogs document"
	ErrorCreatingCurrencyHistory       = "error creating currencyhistories document"
	ErrorFetchingEligibleRecords       = "error fetching eligible documents from mongoDB"
	ErrorUpdatingEntityDocument        = "error updating entity document during conversion"
	ErrorConversionTransactionFailed   = "currency conversion transaction failed"
	ErrorWritingFailedConversionLog    = "failed to write FAILED conversion log entry"
	WarnExchangeRateFallback           = "all exchange rate providers failed, falling back to rate 1"
	ErrorPrimaryRateProviderFailed     = "primary exchange rate provider request failed"
	ErrorSecondaryRateProviderFailed   = "secondary exchange rate provider request failed"
	ErrorRateMissingFromProviderBody   = "exchange rate response has no rate for the requested currency"
	ErrorDecodingRateProviderResponse  = "failed to decode exchange rate provider response"
	ErrorSerializingConversionEvent    = "error serializing conversion audit event"
	ErrorPublishingConversionEvent     = "failed to publish conversion audit event to Kafka"
	SuccessConversionEventPublished    = "successfully published conversion audit event to Kafka"
	SuccessConversionCommitted         = "currency conversion committed"
	KafkaProducerCreated               = "kafka producer created successfully"
	SkippedIdenticalCurrencyConversion = "fromCurrency equals toCurrency, nothing to convert"
)
