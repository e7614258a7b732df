package symbols

import (
	"fmt"
	"go-currency-converter/domain"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale locale whose CLDR data renders symbols when none is configured
var DefaultLocale = language.AmericanEnglish

// CLDR returns a SymbolFunc backed by the CLDR symbols of the given locale.
// Codes that are not ISO 4217 units render as themselves.
func CLDR(tag language.Tag) SymbolFunc {
	p := message.NewPrinter(tag)
	return func(code domain.Currency) string {
		unit, err := currency.ParseISO(string(code))
		if err != nil {
			return string(code)
		}
		return p.Sprint(currency.Symbol(unit))
	}
}

// ParseLocale parses a BCP 47 locale, falling back to DefaultLocale when s is empty.
func ParseLocale(s string) (language.Tag, error) {
	if s == "" {
		return DefaultLocale, nil
	}
	tag, err := language.Parse(s)
	if err != nil {
		return language.Und, fmt.Errorf("symbol locale [%v]: %w", s, err)
	}
	return tag, nil
}
