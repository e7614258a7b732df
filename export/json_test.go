package export

import (
	"encoding/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go-currency-converter/domain"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncode(t *testing.T) {
	result := domain.ConversionResult{
		Input:  domain.Input{Amount: 10, Currency: "USD"},
		Output: map[domain.Currency]domain.Amount{"GBP": 7.51, "EUR": 9.0, "AUD": 15.2},
	}

	var buf strings.Builder
	require.NoError(t, Encode(&buf, result))

	want := `{
    "input": {
        "amount": 10,
        "currency": "USD"
    },
    "output": {
        "AUD": 15.2,
        "EUR": 9.0,
        "GBP": 7.51
    }
}
`
	assert.Equal(t, want, buf.String())
}

func TestEncode_NonFinite(t *testing.T) {
	tests := []struct {
		name   string
		result domain.ConversionResult
	}{
		{"input", domain.ConversionResult{Input: domain.Input{Amount: domain.Amount(math.Inf(1)), Currency: "USD"}}},
		{"output", domain.ConversionResult{
			Input:  domain.Input{Amount: 1, Currency: "USD"},
			Output: map[domain.Currency]domain.Amount{"EUR": domain.Amount(math.NaN())},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			assert.Error(t, Encode(&buf, tt.result))
		})
	}
}

func TestJSON_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	result := domain.ConversionResult{
		Input:  domain.Input{Amount: 12.345, Currency: "EUR"},
		Output: map[domain.Currency]domain.Amount{"USD": 13.58, "JPY": 1999.99, "BTC": 0},
	}

	require.NoError(t, JSON(path, result))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var got struct {
		Input struct {
			Amount   float64
			Currency string
		}
		Output map[string]float64
	}
	require.NoError(t, json.Unmarshal(b, &got))

	assert.Equal(t, 12.345, got.Input.Amount)
	assert.Equal(t, "EUR", got.Input.Currency)
	assert.Equal(t, map[string]float64{"USD": 13.58, "JPY": 1999.99, "BTC": 0}, got.Output)
}

func TestJSON_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultPath)
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("x", 4096)), 0o644))

	result := domain.ConversionResult{
		Input:  domain.Input{Amount: 1, Currency: "USD"},
		Output: map[domain.Currency]domain.Amount{"EUR": 0.9},
	}
	require.NoError(t, JSON(path, result))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(b), "x")
	assert.True(t, json.Valid(b))
}

func TestJSON_WriteFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", DefaultPath)

	err := JSON(path, domain.ConversionResult{})

	assert.Error(t, err)
	assert.False(t, domain.Reportable(err))
}
