package convert

import (
	"context"
	"fmt"
	"github.com/shopspring/decimal"
	"go-currency-converter/domain"
	"go-currency-converter/exchange"
	"go-currency-converter/symbols"
	"math"
	"strconv"
)

// Places decimal places converted amounts are rounded to
const Places = 2

// Service turns a ConversionRequest into a ConversionResult
type Service interface {
	Convert(ctx context.Context, request domain.ConversionRequest, table symbols.Table) (domain.ConversionResult, error)
}

type service struct {
	// rates the provider every conversion goes through
	rates exchange.Service
}

// NewService constructs a valid Service
func NewService(rates exchange.Service) Service {
	return &service{
		rates: rates,
	}
}

// Convert resolves the request's currency tokens through table, then converts the amount to the
// requested output currency, or to every currency the provider quotes for the input currency.
// The first provider failure aborts the whole conversion.
func (s *service) Convert(ctx context.Context, request domain.ConversionRequest, table symbols.Table) (domain.ConversionResult, error) {
	from := table.Resolve(request.InputCurrency)

	result := domain.ConversionResult{
		Input: domain.Input{
			Amount:   request.Amount,
			Currency: from,
		},
		Output: map[domain.Currency]domain.Amount{},
	}

	if request.OutputCurrency != nil {
		to := table.Resolve(*request.OutputCurrency)
		amount, err := s.convert(ctx, request.Amount, from, to)
		if err != nil {
			return domain.ConversionResult{}, err
		}
		result.Output[to] = amount
		return result, nil
	}

	codes, err := s.rates.Codes(ctx, from)
	if err != nil {
		return domain.ConversionResult{}, fmt.Errorf("convert from [%v]: %w", from, err)
	}
	for _, to := range codes {
		amount, err := s.convert(ctx, request.Amount, from, to)
		if err != nil {
			return domain.ConversionResult{}, err
		}
		result.Output[to] = amount
	}
	return result, nil
}

func (s *service) convert(ctx context.Context, amount domain.Amount, from domain.Currency, to domain.Currency) (domain.Amount, error) {
	ex, err := s.rates.Convert(ctx, amount, from, to)
	if err != nil {
		return 0, fmt.Errorf("convert [%v] -> [%v]: %w", from, to, err)
	}
	if f := float64(ex.Amount); math.IsInf(f, 0) || math.IsNaN(f) {
		return 0, domain.Usage(domain.ErrInvalidAmount,
			fmt.Sprintf("Error: converting %v %v to %v overflows.", amount, from, to))
	}
	return Round(ex.Amount), nil
}

// Round rounds an amount to Places decimals. The exact binary value of the
// float is rounded, so 2.675 (stored as 2.67499...) gives 2.67.
// Non-finite amounts are returned unchanged.
func Round(amount domain.Amount) domain.Amount {
	f := float64(amount)
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return amount
	}
	return domain.Amount(decimal.RequireFromString(strconv.FormatFloat(f, 'f', Places, 64)).InexactFloat64())
}
