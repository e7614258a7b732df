package domain

// Currency a currency code, or before resolution a currency symbol
type Currency string

// Amount a monetary amount... which should be a float...
type Amount float64

// Exchanged result of converting an amount with a single rate
type Exchanged struct {
	Rate   Rate
	Amount Amount
}

// Rate an exchange rate
type Rate float64

type Rates map[Currency]Rate

// Quote exchange rates of one base currency.
// Codes keeps the order in which the rate source listed them.
type Quote struct {
	Base  Currency
	Codes []Currency
	Rates Rates
}

// ConversionRequest the validated command line input.
// OutputCurrency is nil when every known currency was asked for.
type ConversionRequest struct {
	Amount         Amount
	InputCurrency  Currency
	OutputCurrency *Currency
}

// Input the amount being converted and its resolved ISO code
type Input struct {
	Amount   Amount
	Currency Currency
}

// ConversionResult what gets exported once a conversion fully succeeds
type ConversionResult struct {
	Input  Input
	Output map[Currency]Amount
}
