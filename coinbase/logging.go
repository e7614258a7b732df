package coinbase

import (
	"context"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-converter/domain"
	"time"
)

// loggingService decorates a coinbase.Service with logging
type loggingService struct {
	next   Service
	logger log.Logger
}

// NewLoggingService return a new logging service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) ExchangeRates(ctx context.Context, currency domain.Currency) (quote domain.Quote, err error) {
	defer func(begin time.Time) {
		l := level.Debug(s.logger)
		if err != nil {
			l = level.Warn(s.logger)
		}
		l.Log(
			"method", "exchange_rates",
			"currency", currency,
			"rates", len(quote.Codes),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.ExchangeRates(ctx, currency)
}
