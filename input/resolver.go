package input

import (
	"errors"
	"flag"
	"fmt"
	"github.com/shopspring/decimal"
	"go-currency-converter/domain"
	"io"
	"math"
)

const (
	flagAmount         = "amount"
	flagInputCurrency  = "input_currency"
	flagOutputCurrency = "output_currency"
)

// ErrHelp returned when usage was requested with -h or --help
var ErrHelp = flag.ErrHelp

// Resolve parses command line arguments (without the program name) into a ConversionRequest.
// Usage is written to usage when parsing fails or help is requested.
func Resolve(args []string, usage io.Writer) (domain.ConversionRequest, error) {
	fs := flag.NewFlagSet("currency-converter", flag.ContinueOnError)
	fs.SetOutput(usage)

	amount := fs.String(flagAmount, "", "amount to convert")
	inputCurrency := fs.String(flagInputCurrency, "", "input currency, ISO code or symbol")
	outputCurrency := fs.String(flagOutputCurrency, "", "output currency, ISO code or symbol; every known currency when omitted")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return domain.ConversionRequest{}, ErrHelp
		}
		return domain.ConversionRequest{}, domain.Usage(domain.ErrInvalidParameter, fmt.Sprintf("Error: %v.", err))
	}
	if fs.NArg() > 0 {
		return domain.ConversionRequest{}, domain.Usage(domain.ErrInvalidParameter,
			fmt.Sprintf("Error: unexpected argument %q.", fs.Arg(0)))
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	if !set[flagAmount] {
		return domain.ConversionRequest{}, domain.Usage(domain.ErrMissingParameter, "Error: --amount parameter is missing.")
	}
	if !set[flagInputCurrency] {
		return domain.ConversionRequest{}, domain.Usage(domain.ErrMissingParameter, "Error: --input_currency parameter is missing.")
	}

	value, err := parseAmount(*amount)
	if err != nil {
		return domain.ConversionRequest{}, err
	}

	request := domain.ConversionRequest{
		Amount:        value,
		InputCurrency: domain.Currency(*inputCurrency),
	}
	if set[flagOutputCurrency] {
		out := domain.Currency(*outputCurrency)
		request.OutputCurrency = &out
	}
	return request, nil
}

func parseAmount(s string) (domain.Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, domain.Usage(domain.ErrInvalidAmount, fmt.Sprintf("Error: --amount %q is not a number.", s))
	}
	if d.IsNegative() {
		return 0, domain.Usage(domain.ErrInvalidAmount, fmt.Sprintf("Error: --amount %q must not be negative.", s))
	}
	f := d.InexactFloat64()
	if math.IsInf(f, 0) {
		return 0, domain.Usage(domain.ErrInvalidAmount, fmt.Sprintf("Error: --amount %q is too large.", s))
	}
	return domain.Amount(f), nil
}
