package coinbase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"go-currency-converter/domain"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

const ApiUrlBase = "https://api.coinbase.com/v2"

// Service wraps the coinbase REST API
type Service interface {
	ExchangeRates(ctx context.Context, currency domain.Currency) (domain.Quote, error)
}

// service coinbase API
type service struct {
	// url base API url
	url string

	// client for HTTP requests
	client http.Client
}

// NewService constructs a valid coinbase Service.
// An empty url falls back to ApiUrlBase.
func NewService(url string, timeout time.Duration) Service {
	if url == "" {
		url = ApiUrlBase
	}
	return &service{
		url: strings.TrimRight(url, "/"),
		client: http.Client{
			Timeout: timeout,
		},
	}
}

// ExchangeRates loads the current exchange rates for a given currency.
// Rates are returned in the order coinbase lists them.
func (s *service) ExchangeRates(ctx context.Context, currency domain.Currency) (domain.Quote, error) {
	type Response struct {
		Data struct {
			Currency string
			Rates    orderedRates // maps currency codes to rates
		}
		Errors []struct {
			Id      string
			Message string
		}
	}

	url := fmt.Sprintf("%v/exchange-rates?currency=%v", s.url, currency)

	request, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("building http request: %w", err)
	}
	httpResponse, err := s.client.Do(request)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("http get: %w", err)
	}
	defer httpResponse.Body.Close()

	body, err := io.ReadAll(httpResponse.Body)
	if err != nil {
		return domain.Quote{}, fmt.Errorf("reading json: %w", err)
	}

	var response Response
	err = json.Unmarshal(body, &response)
	if err != nil && httpResponse.StatusCode == http.StatusOK {
		return domain.Quote{}, fmt.Errorf("decoding json: %w", err)
	}

	if httpResponse.StatusCode != http.StatusOK || len(response.Errors) > 0 {
		msg := http.StatusText(httpResponse.StatusCode)
		if len(response.Errors) > 0 {
			msg = response.Errors[0].Message
		}
		return domain.Quote{}, fmt.Errorf("coinbase status %d: %v", httpResponse.StatusCode, msg)
	}

	if len(response.Data.Rates.codes) == 0 {
		return domain.Quote{}, fmt.Errorf("no rates listed for [%v]", currency)
	}

	return domain.Quote{
		Base:  domain.Currency(response.Data.Currency),
		Codes: response.Data.Rates.codes,
		Rates: response.Data.Rates.rates,
	}, nil
}

// orderedRates decodes the coinbase rates object without losing the key order
type orderedRates struct {
	codes []domain.Currency
	rates domain.Rates
}

func (o *orderedRates) UnmarshalJSON(b []byte) error {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("rates: expected object, got %v", tok)
	}

	o.rates = domain.Rates{}
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return err
		}
		code := domain.Currency(tok.(string))

		var raw interface{}
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("rate [%v]: %w", code, err)
		}

		// coinbase sends rates as strings, tolerate bare numbers too
		var f float64
		switch v := raw.(type) {
		case string:
			f, err = strconv.ParseFloat(v, 64)
		case json.Number:
			f, err = v.Float64()
		default:
			err = fmt.Errorf("unexpected type %T", raw)
		}
		if err != nil {
			return fmt.Errorf("bad rate value [%v]: %w", code, err)
		}

		if _, seen := o.rates[code]; !seen {
			o.codes = append(o.codes, code)
		}
		o.rates[code] = domain.Rate(f)
	}

	_, err = dec.Token()
	return err
}
