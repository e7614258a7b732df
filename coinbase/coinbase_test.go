package coinbase

import (
	"context"
	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-currency-converter/domain"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestService_ExchangeRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.True(t, strings.HasSuffix(req.URL.String(), "/exchange-rates?currency=USD"))
		response := `{
			"data": {
				"currency": "USD",
				"rates": {
					"GBP": "0.75",
					"BCH": "1000.0",
					"EUR": "0.9",
					"AUD": 1.5
				}
			}
		}`
		_, _ = rw.Write([]byte(response))
	}))
	defer server.Close()

	s := NewService(server.URL, 5*time.Second)

	quote, err := s.ExchangeRates(context.Background(), "USD")

	require.NoError(t, err)
	assert.Equal(t, domain.Currency("USD"), quote.Base)
	assert.Equal(t, []domain.Currency{"GBP", "BCH", "EUR", "AUD"}, quote.Codes)
	assert.Equal(t, domain.Rate(1000.0), quote.Rates["BCH"])
	assert.Equal(t, domain.Rate(0.9), quote.Rates["EUR"])
	assert.Equal(t, domain.Rate(1.5), quote.Rates["AUD"])
}

func TestService_ExchangeRatesTrailingSlash(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "/v2/exchange-rates", req.URL.Path)
		_, _ = rw.Write([]byte(`{"data":{"currency":"EUR","rates":{"USD":"1.1"}}}`))
	}))
	defer server.Close()

	s := NewService(server.URL+"/v2/", time.Second)

	quote, err := s.ExchangeRates(context.Background(), "EUR")

	require.NoError(t, err)
	assert.Equal(t, []domain.Currency{"USD"}, quote.Codes)
}

func TestService_ExchangeRatesUnknownCurrency(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		rw.WriteHeader(http.StatusBadRequest)
		_, _ = rw.Write([]byte(`{"errors":[{"id":"invalid_request","message":"Invalid currency (XXX)"}]}`))
	}))
	defer server.Close()

	s := NewService(server.URL, time.Second)

	_, err := s.ExchangeRates(context.Background(), "XXX")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid currency (XXX)")
	assert.Contains(t, err.Error(), "400")
}

func TestService_ExchangeRatesBadPayloads(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"not json", http.StatusOK, `<html>`},
		{"bad rate", http.StatusOK, `{"data":{"currency":"USD","rates":{"EUR":"abc"}}}`},
		{"rates not an object", http.StatusOK, `{"data":{"currency":"USD","rates":["EUR"]}}`},
		{"no rates", http.StatusOK, `{"data":{"currency":"USD","rates":{}}}`},
		{"server error", http.StatusInternalServerError, ``},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
				rw.WriteHeader(tt.status)
				_, _ = rw.Write([]byte(tt.body))
			}))
			defer server.Close()

			_, err := NewService(server.URL, time.Second).ExchangeRates(context.Background(), "USD")
			assert.Error(t, err)
		})
	}
}

func TestService_ExchangeRatesTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		time.Sleep(50 * time.Millisecond)
		_, _ = rw.Write([]byte("{}"))
	}))
	defer server.Close()

	s := NewService(server.URL, 1*time.Millisecond)

	_, err := s.ExchangeRates(context.Background(), "USD")

	assert.NotNil(t, err)
	assert.True(t, strings.Contains(err.Error(), "Client.Timeout")) // fragile :-(
}

func TestLoggingService_ExchangeRates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(rw http.ResponseWriter, req *http.Request) {
		_, _ = rw.Write([]byte(`{"data":{"currency":"USD","rates":{"EUR":"0.9"}}}`))
	}))
	defer server.Close()

	var buf strings.Builder
	s := NewLoggingService(log.NewLogfmtLogger(&buf), NewService(server.URL, time.Second))

	quote, err := s.ExchangeRates(context.Background(), "USD")

	require.NoError(t, err)
	assert.Equal(t, domain.Rate(0.9), quote.Rates["EUR"])
	assert.Contains(t, buf.String(), "method=exchange_rates")
	assert.Contains(t, buf.String(), "currency=USD")
	assert.Contains(t, buf.String(), "rates=1")
}
