package exchange

import (
	"context"
	"fmt"
	"go-currency-converter/coinbase"
	"go-currency-converter/domain"
)

// Service the rate provider: lists the currencies quoted against a base
// and converts amounts between two currency codes.
// Every failure wraps domain.ErrRatesUnavailable.
type Service interface {
	Codes(ctx context.Context, base domain.Currency) ([]domain.Currency, error)
	Convert(ctx context.Context, amount domain.Amount, from domain.Currency, to domain.Currency) (domain.Exchanged, error)
}

// service rate provider backed by coinbase
type service struct {
	// coinbase coinbaseService to lookup exchange rates.
	coinbaseService coinbase.Service
}

// NewService constructs a valid Service
func NewService(s coinbase.Service) Service {
	return &service{
		coinbaseService: s,
	}
}

// Codes lists the currencies base is quoted against, in the order the source lists them.
func (s *service) Codes(ctx context.Context, base domain.Currency) ([]domain.Currency, error) {
	quote, err := s.coinbaseService.ExchangeRates(ctx, base)
	if err != nil {
		return nil, fmt.Errorf("%w for [%v]: %v", domain.ErrRatesUnavailable, base, err)
	}
	codes := make([]domain.Currency, len(quote.Codes))
	copy(codes, quote.Codes)
	return codes, nil
}

// Convert computes a conversion from one currency to another with the current exchange rate.
// Rates are fetched on every call.
func (s *service) Convert(ctx context.Context, amount domain.Amount, from domain.Currency, to domain.Currency) (domain.Exchanged, error) {
	quote, err := s.coinbaseService.ExchangeRates(ctx, from)
	if err != nil {
		return domain.Exchanged{}, fmt.Errorf("%w for [%v]: %v", domain.ErrRatesUnavailable, from, err)
	}

	rate, ok := quote.Rates[to]
	if !ok {
		return domain.Exchanged{}, fmt.Errorf("%w for [%v]: unknown 'to' currency: %v", domain.ErrRatesUnavailable, from, to)
	}

	result := domain.Exchanged{
		Rate:   rate,
		Amount: domain.Amount(float64(rate) * float64(amount)),
	}

	return result, nil
}
