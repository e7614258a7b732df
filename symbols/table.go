package symbols

import (
	"context"
	"fmt"
	"go-currency-converter/domain"
)

// Anchor the base currency the table is built from. Its own symbol is always present.
const Anchor domain.Currency = "USD"

// SymbolFunc renders the display symbol of a currency code
type SymbolFunc func(code domain.Currency) string

// CodeLister lists the currency codes quoted against a base currency
type CodeLister interface {
	Codes(ctx context.Context, base domain.Currency) ([]domain.Currency, error)
}

// Table maps currency symbols to ISO codes. Read-only once built.
type Table map[string]domain.Currency

// Build queries the provider for every code quoted against the anchor currency and
// maps its symbol to it. The anchor is seeded first; when two codes render the same
// symbol the one listed last wins.
func Build(ctx context.Context, provider CodeLister, symbolFor SymbolFunc) (Table, error) {
	table := Table{}
	table[symbolFor(Anchor)] = Anchor

	codes, err := provider.Codes(ctx, Anchor)
	if err != nil {
		return nil, fmt.Errorf("building symbol table: %w", err)
	}
	for _, code := range codes {
		table[symbolFor(code)] = code
	}
	return table, nil
}

// Resolve returns the code mapped to token, or token itself when it is not a known symbol.
func (t Table) Resolve(token domain.Currency) domain.Currency {
	if code, ok := t[string(token)]; ok {
		return code
	}
	return token
}
