package convert

import (
	"context"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"go-currency-converter/domain"
	"go-currency-converter/symbols"
	"time"
)

// loggingService decorates a convert.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Convert(ctx context.Context, request domain.ConversionRequest, table symbols.Table) (result domain.ConversionResult, err error) {
	defer func(begin time.Time) {
		to := "all"
		if request.OutputCurrency != nil {
			to = string(*request.OutputCurrency)
		}
		l := level.Info(s.logger)
		if err != nil {
			l = level.Warn(s.logger)
		}
		l.Log(
			"method", "convert",
			"amount", request.Amount,
			"from", request.InputCurrency,
			"to", to,
			"resolved_from", result.Input.Currency,
			"outputs", len(result.Output),
			"took", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Convert(ctx, request, table)
}
